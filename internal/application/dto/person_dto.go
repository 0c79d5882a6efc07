package dto

import (
	"time"

	"github.com/vgmedeiros/pessoas-api/internal/domain/entity"
)

// CreatePersonRequest entrada para criar uma pessoa. Telefone e Celular,
// quando presentes, viram contatos iniciais junto com o Email.
type CreatePersonRequest struct {
	Nome           string `json:"nome"`
	CPF            string `json:"cpf"`
	DataNascimento string `json:"data_nascimento"` // YYYY-MM-DD
	Sexo           string `json:"sexo,omitempty"`
	Email          string `json:"email,omitempty"`
	Naturalidade   string `json:"naturalidade,omitempty"`
	Nacionalidade  string `json:"nacionalidade,omitempty"`
	Telefone       string `json:"telefone,omitempty"`
	Celular        string `json:"celular,omitempty"`
}

// UpdatePersonRequest entrada para atualizar uma pessoa. O CPF não aparece:
// é imutável após o cadastro.
type UpdatePersonRequest struct {
	Nome           string `json:"nome"`
	DataNascimento string `json:"data_nascimento"` // YYYY-MM-DD
	Sexo           string `json:"sexo,omitempty"`
	Email          string `json:"email,omitempty"`
	Naturalidade   string `json:"naturalidade,omitempty"`
	Nacionalidade  string `json:"nacionalidade,omitempty"`
	Telefone       string `json:"telefone,omitempty"`
	Celular        string `json:"celular,omitempty"`
}

// ContactRequest entrada para criar/atualizar um contato avulso.
type ContactRequest struct {
	Tipo      string `json:"tipo"`
	Valor     string `json:"valor"`
	Principal bool   `json:"principal"`
}

// ContactResponse saída de um contato.
type ContactResponse struct {
	ID        string `json:"id"`
	Tipo      string `json:"tipo"`
	Valor     string `json:"valor"`
	Principal bool   `json:"principal"`
}

// PersonResponse saída de uma pessoa com seus contatos.
type PersonResponse struct {
	ID              string            `json:"id"`
	Nome            string            `json:"nome"`
	CPF             string            `json:"cpf"`
	Sexo            string            `json:"sexo,omitempty"`
	Email           string            `json:"email,omitempty"`
	DataNascimento  string            `json:"data_nascimento"`
	Naturalidade    string            `json:"naturalidade,omitempty"`
	Nacionalidade   string            `json:"nacionalidade,omitempty"`
	Contatos        []ContactResponse `json:"contatos"`
	CriadoPorID     string            `json:"criado_por_id,omitempty"`
	AtualizadoPorID string            `json:"atualizado_por_id,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// ToPersonResponse mapeia a entidade para o DTO de saída.
func ToPersonResponse(p *entity.Person) *PersonResponse {
	if p == nil {
		return nil
	}
	contatos := make([]ContactResponse, 0, len(p.Contatos))
	for _, c := range p.Contatos {
		contatos = append(contatos, ContactResponse{
			ID:        c.ID,
			Tipo:      c.Tipo,
			Valor:     c.Valor,
			Principal: c.Principal,
		})
	}
	return &PersonResponse{
		ID:              p.ID,
		Nome:            p.Nome,
		CPF:             p.CPF,
		Sexo:            p.Sexo,
		Email:           p.Email,
		DataNascimento:  p.DataNascimento.Format(DateLayout),
		Naturalidade:    p.Naturalidade,
		Nacionalidade:   p.Nacionalidade,
		Contatos:        contatos,
		CriadoPorID:     p.CriadoPorID,
		AtualizadoPorID: p.AtualizadoPorID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
