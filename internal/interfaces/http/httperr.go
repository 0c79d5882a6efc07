package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/vgmedeiros/pessoas-api/internal/application/dto"
	"github.com/vgmedeiros/pessoas-api/internal/domain"
)

// writeDomainError converte um erro de domínio no status HTTP e corpo
// apropriados. Erros não tipados viram 500 sem vazar detalhes internos.
func writeDomainError(c *fiber.Ctx, err error) error {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "INTERNAL_SERVER_ERROR",
			Message: "erro interno",
		})
	}
	return c.Status(statusForCode(derr.Code)).JSON(dto.ErrorResponse{
		Code:    derr.Code,
		Message: derr.Message,
		Details: derr.Details,
	})
}

func statusForCode(code string) int {
	switch code {
	case domain.CodePersonNotFound, domain.CodeUserNotFound, domain.CodeContactNotFound:
		return fiber.StatusNotFound
	case domain.CodeInvalidCredentials:
		return fiber.StatusUnauthorized
	case domain.CodeCannotEditOthersPerson, domain.CodeCannotDeleteOtherUsers, domain.CodeCannotDeleteSelf:
		return fiber.StatusForbidden
	case domain.CodeCPFExists, domain.CodeUsernameExists:
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}
