package entity

import (
	"strings"

	"github.com/google/uuid"

	"github.com/vgmedeiros/pessoas-api/internal/domain"
)

// Tipos de contato reconhecidos.
const (
	TipoEmail    = "Email"
	TipoTelefone = "Telefone"
	TipoCelular  = "Celular"
)

// TipoContatoValido informa se tipo é um dos tipos reconhecidos.
func TipoContatoValido(tipo string) bool {
	switch tipo {
	case TipoEmail, TipoTelefone, TipoCelular:
		return true
	}
	return false
}

// Contact é uma entrada de contato de uma Person. No máximo um contato de
// cada tipo pode ser o principal; a Person garante essa invariante ao
// adicionar/atualizar.
type Contact struct {
	ID        string
	Tipo      string
	Valor     string
	Principal bool
	PessoaID  string
}

// NewContact cria um contato validado. Tipo e valor são obrigatórios.
func NewContact(tipo, valor string, principal bool, pessoaID string) (*Contact, error) {
	if strings.TrimSpace(tipo) == "" {
		return nil, domain.ErrRequiredField("tipo")
	}
	if strings.TrimSpace(valor) == "" {
		return nil, domain.ErrRequiredField("valor")
	}
	return &Contact{
		ID:        uuid.New().String(),
		Tipo:      tipo,
		Valor:     valor,
		Principal: principal,
		PessoaID:  pessoaID,
	}, nil
}

// Update substitui tipo, valor e flag principal. Valida antes de mutar.
func (c *Contact) Update(tipo, valor string, principal bool) error {
	if strings.TrimSpace(tipo) == "" {
		return domain.ErrRequiredField("tipo")
	}
	if strings.TrimSpace(valor) == "" {
		return domain.ErrRequiredField("valor")
	}
	c.Tipo = tipo
	c.Valor = valor
	c.Principal = principal
	return nil
}

// SetPrincipal marca ou desmarca o contato como principal do seu tipo.
func (c *Contact) SetPrincipal(principal bool) {
	c.Principal = principal
}
