package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vgmedeiros/pessoas-api/internal/application/dto"
	"github.com/vgmedeiros/pessoas-api/internal/application/usecase"
	"github.com/vgmedeiros/pessoas-api/internal/domain/entity"
)

// PersonHandler atende o CRUD de pessoas, seus contatos e a ficha em PDF.
type PersonHandler struct {
	uc *usecase.PersonUseCase
}

func NewPersonHandler(uc *usecase.PersonUseCase) *PersonHandler {
	return &PersonHandler{uc: uc}
}

// Create godoc
// @Summary      Criar pessoa
// @Tags         persons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreatePersonRequest  true  "dados da pessoa"
// @Success      201   {object}  dto.PersonResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/persons [post]
func (h *PersonHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePersonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if msg := validatePersonFields(in.Nome, in.CPF, in.DataNascimento, in.Sexo, in.Email, true); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION_ERROR", Message: msg})
	}
	out, err := h.uc.Create(in, GetUserID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pessoas
// @Tags         persons
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo de registros (padrão 20, teto 100)"
// @Param        offset  query  int  false  "deslocamento"
// @Success      200  {array}  dto.PersonResponse
// @Router       /api/v1/persons [get]
func (h *PersonHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION_ERROR", Message: "paginação inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Buscar pessoa
// @Tags         persons
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id da pessoa"
// @Success      200  {object}  dto.PersonResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/persons/{id} [get]
func (h *PersonHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar pessoa
// @Description  Atualiza os dados cadastrais. O CPF não é atualizável.
// @Tags         persons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "id da pessoa"
// @Param        body  body  dto.UpdatePersonRequest  true  "dados da pessoa"
// @Success      200  {object}  dto.PersonResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/persons/{id} [put]
func (h *PersonHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePersonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if msg := validatePersonFields(in.Nome, "", in.DataNascimento, in.Sexo, in.Email, false); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION_ERROR", Message: msg})
	}
	out, err := h.uc.Update(c.Params("id"), in, GetUserID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir pessoa
// @Tags         persons
// @Security     BearerAuth
// @Param        id  path  string  true  "id da pessoa"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/persons/{id} [delete]
func (h *PersonHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), GetUserID(c)); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// FichaPDF godoc
// @Summary      Ficha cadastral em PDF
// @Tags         persons
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "id da pessoa"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/persons/{id}/pdf [get]
func (h *PersonHandler) FichaPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.FichaPDF(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ficha-cadastral.pdf"`)
	return c.Send(pdf)
}

// AddContact godoc
// @Summary      Adicionar contato
// @Tags         persons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "id da pessoa"
// @Param        body  body  dto.ContactRequest  true  "tipo, valor, principal"
// @Success      201  {object}  dto.PersonResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/persons/{id}/contacts [post]
func (h *PersonHandler) AddContact(c *fiber.Ctx) error {
	in, msg := parseContactBody(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION_ERROR", Message: msg})
	}
	out, err := h.uc.AddContact(c.Params("id"), in, GetUserID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateContact godoc
// @Summary      Atualizar contato
// @Tags         persons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id         path  string  true  "id da pessoa"
// @Param        contactId  path  string  true  "id do contato"
// @Param        body       body  dto.ContactRequest  true  "tipo, valor, principal"
// @Success      200  {object}  dto.PersonResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/persons/{id}/contacts/{contactId} [put]
func (h *PersonHandler) UpdateContact(c *fiber.Ctx) error {
	in, msg := parseContactBody(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION_ERROR", Message: msg})
	}
	out, err := h.uc.UpdateContact(c.Params("id"), c.Params("contactId"), in, GetUserID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// RemoveContact godoc
// @Summary      Remover contato
// @Tags         persons
// @Security     BearerAuth
// @Param        id         path  string  true  "id da pessoa"
// @Param        contactId  path  string  true  "id do contato"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/persons/{id}/contacts/{contactId} [delete]
func (h *PersonHandler) RemoveContact(c *fiber.Ctx) error {
	if err := h.uc.RemoveContact(c.Params("id"), c.Params("contactId"), GetUserID(c)); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseContactBody(c *fiber.Ctx) (dto.ContactRequest, string) {
	var in dto.ContactRequest
	if err := c.BodyParser(&in); err != nil {
		return in, "corpo inválido"
	}
	if in.Tipo == "" || in.Valor == "" {
		return in, "tipo e valor são obrigatórios"
	}
	if !entity.TipoContatoValido(in.Tipo) {
		return in, "tipo deve ser Email, Telefone ou Celular"
	}
	if in.Tipo == entity.TipoEmail && !emailPattern.MatchString(in.Valor) {
		return in, "email em formato inválido"
	}
	return in, ""
}
