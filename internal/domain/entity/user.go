package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vgmedeiros/pessoas-api/internal/domain"
)

// Role é o papel da conta. Enum fechado de dois valores; novos papéis
// entram aqui sem tocar os call sites que comparam por igualdade.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// RoleValida informa se r é um papel reconhecido.
func RoleValida(r Role) bool {
	return r == RoleUser || r == RoleAdmin
}

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// User é a identidade de login, opcionalmente vinculada a uma Person
// (referência por ID, não contenção: deletar um não exige deletar o outro).
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca texto plano no domínio
	Role         Role
	PersonID     string // vazio quando não vinculado
	Person       *Person
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser valida o username e devolve um User completo ou um erro tipado.
// A força da senha não é validada aqui: o hash chega pronto e opaco.
func NewUser(username, passwordHash string, role Role) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, domain.ErrInvalidUsername(username, "Username é obrigatório")
	}
	if len(username) < 3 {
		return nil, domain.ErrInvalidUsername(username, "Username deve ter pelo menos 3 caracteres")
	}
	if len(username) > 50 {
		return nil, domain.ErrInvalidUsername(username, "Username deve ter no máximo 50 caracteres")
	}
	if !usernamePattern.MatchString(username) {
		return nil, domain.ErrInvalidUsername(username, "Username só pode conter letras, números, pontos, hífens e underscores")
	}
	if strings.TrimSpace(passwordHash) == "" {
		return nil, domain.ErrRequiredField("password hash")
	}

	now := time.Now().UTC()
	return &User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// SetPerson vincula a conta a uma Person existente.
func (u *User) SetPerson(p *Person) error {
	if p == nil {
		return domain.ErrRequiredField("person")
	}
	u.PersonID = p.ID
	u.Person = p
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdatePassword substitui o hash da senha.
func (u *User) UpdatePassword(novoHash string) error {
	if strings.TrimSpace(novoHash) == "" {
		return domain.ErrRequiredField("password hash")
	}
	u.PasswordHash = novoHash
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateRole substitui o papel da conta.
func (u *User) UpdateRole(novo Role) {
	u.Role = novo
	u.UpdatedAt = time.Now().UTC()
}

// IsAdmin informa se a conta tem papel de administrador.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// CanEditPerson: admin edita qualquer pessoa; usuário comum só a própria.
func (u *User) CanEditPerson(personID string) bool {
	return u.IsAdmin() || (u.PersonID != "" && u.PersonID == personID)
}

// CanDeletePerson segue hoje a mesma regra de edição. Método separado para
// que uma regra mais estrita de deleção não precise tocar os call sites.
func (u *User) CanDeletePerson(personID string) bool {
	return u.CanEditPerson(personID)
}

// ValidateCanEditPerson é a variante que levanta a falha de autorização.
func (u *User) ValidateCanEditPerson(personID string) error {
	if !u.CanEditPerson(personID) {
		return domain.ErrCannotEditOthersPerson(personID, u.ID)
	}
	return nil
}

// ValidateCanDeletePerson idem, para o caminho de deleção.
func (u *User) ValidateCanDeletePerson(personID string) error {
	if !u.CanDeletePerson(personID) {
		return domain.ErrCannotEditOthersPerson(personID, u.ID)
	}
	return nil
}

// ValidateCanDeleteUser aplica as duas barreiras, nesta ordem:
//  1. permissão — admin ou a própria conta;
//  2. autoproteção — admin nunca deleta a própria conta.
//
// A ordem importa: usuário comum deletando outra conta recebe a falha de
// permissão, não a de autoproteção.
func (u *User) ValidateCanDeleteUser(targetUserID string) error {
	if !u.IsAdmin() && u.ID != targetUserID {
		return domain.ErrCannotDeleteOtherUsers(targetUserID, u.ID)
	}
	if u.IsAdmin() && u.ID == targetUserID {
		return domain.ErrCannotDeleteSelf()
	}
	return nil
}
