package domain

import (
	"errors"
	"fmt"
	"time"
)

// Códigos estáveis de falha de domínio. São o contrato com a camada HTTP,
// que os traduz em status codes; nunca renomear sem versionar a API.
const (
	CodeRequiredField = "REQUIRED_FIELD"

	CodePersonNotFound     = "PERSON_NOT_FOUND"
	CodeCPFExists          = "PERSON_CPF_EXISTS"
	CodeInvalidCPF         = "PERSON_INVALID_CPF"
	CodeInvalidBirthDate   = "PERSON_INVALID_BIRTH_DATE"
	CodeContactNotFound    = "PERSON_CONTACT_NOT_FOUND"
	CodeInvalidContactType = "PERSON_INVALID_CONTACT_TYPE"

	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeUsernameExists     = "USER_USERNAME_EXISTS"
	CodeInvalidCredentials = "USER_INVALID_CREDENTIALS"
	CodeInvalidUsername    = "USER_INVALID_USERNAME"
	CodeCannotDeleteSelf   = "USER_CANNOT_DELETE_SELF"

	CodeCannotEditOthersPerson = "AUTH_CANNOT_EDIT_OTHERS_PERSON"
	CodeCannotDeleteOtherUsers = "AUTH_CANNOT_DELETE_OTHER_USERS"
)

// Error é uma falha de domínio tipada: código estável, mensagem humana e
// detalhes estruturados. Toda violação de invariante ou negação de
// autorização é levantada como *Error no ponto de detecção.
type Error struct {
	Code    string
	Message string
	Details map[string]any
}

func (e *Error) Error() string { return e.Message }

// CodeOf devolve o código da falha de domínio, ou "" se err não for uma.
func CodeOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// IsCode informa se err é uma falha de domínio com o código dado.
func IsCode(err error, code string) bool {
	return CodeOf(err) == code
}

// ── Person ───────────────────────────────────────────────────────────────────

func ErrPersonNotFound(personID string) *Error {
	return &Error{
		Code:    CodePersonNotFound,
		Message: fmt.Sprintf("Pessoa com ID '%s' não foi encontrada", personID),
		Details: map[string]any{"person_id": personID},
	}
}

func ErrCPFAlreadyExists(cpf string) *Error {
	return &Error{
		Code:    CodeCPFExists,
		Message: fmt.Sprintf("CPF '%s' já está cadastrado no sistema", cpf),
		Details: map[string]any{"cpf": cpf},
	}
}

func ErrInvalidCPF(cpf string) *Error {
	return &Error{
		Code:    CodeInvalidCPF,
		Message: fmt.Sprintf("CPF '%s' não é válido", cpf),
		Details: map[string]any{"cpf": cpf},
	}
}

func ErrInvalidBirthDate(data time.Time) *Error {
	return &Error{
		Code:    CodeInvalidBirthDate,
		Message: fmt.Sprintf("Data de nascimento '%s' não pode ser no futuro", data.Format("02/01/2006")),
		Details: map[string]any{"birth_date": data.Format("2006-01-02")},
	}
}

func ErrContactNotFound(contactID string) *Error {
	return &Error{
		Code:    CodeContactNotFound,
		Message: fmt.Sprintf("Contato com ID '%s' não foi encontrado", contactID),
		Details: map[string]any{"contact_id": contactID},
	}
}

func ErrInvalidContactType(tipo string) *Error {
	return &Error{
		Code:    CodeInvalidContactType,
		Message: fmt.Sprintf("Tipo de contato '%s' não é válido", tipo),
		Details: map[string]any{"tipo": tipo},
	}
}

// ── User ─────────────────────────────────────────────────────────────────────

func ErrUserNotFound(userID string) *Error {
	return &Error{
		Code:    CodeUserNotFound,
		Message: fmt.Sprintf("Usuário com ID '%s' não foi encontrado", userID),
		Details: map[string]any{"user_id": userID},
	}
}

func ErrUsernameAlreadyExists(username string) *Error {
	return &Error{
		Code:    CodeUsernameExists,
		Message: fmt.Sprintf("Username '%s' já está em uso", username),
		Details: map[string]any{"username": username},
	}
}

func ErrInvalidCredentials() *Error {
	return &Error{Code: CodeInvalidCredentials, Message: "Credenciais inválidas"}
}

func ErrInvalidUsername(username, motivo string) *Error {
	return &Error{
		Code:    CodeInvalidUsername,
		Message: fmt.Sprintf("Username '%s' é inválido: %s", username, motivo),
		Details: map[string]any{"username": username, "reason": motivo},
	}
}

func ErrCannotDeleteSelf() *Error {
	return &Error{
		Code:    CodeCannotDeleteSelf,
		Message: "Administradores não podem deletar sua própria conta",
	}
}

// ── Autorização ──────────────────────────────────────────────────────────────

func ErrCannotEditOthersPerson(personID, actorID string) *Error {
	return &Error{
		Code:    CodeCannotEditOthersPerson,
		Message: "Você só pode editar seu próprio perfil ou ser um administrador",
		Details: map[string]any{"person_id": personID, "current_user_id": actorID},
	}
}

func ErrCannotDeleteOtherUsers(targetUserID, actorID string) *Error {
	return &Error{
		Code:    CodeCannotDeleteOtherUsers,
		Message: "Você só pode deletar sua própria conta ou ser um administrador",
		Details: map[string]any{"target_user_id": targetUserID, "current_user_id": actorID},
	}
}

// ── Campos obrigatórios ──────────────────────────────────────────────────────

func ErrRequiredField(campo string) *Error {
	return &Error{
		Code:    CodeRequiredField,
		Message: fmt.Sprintf("%s é obrigatório", campo),
		Details: map[string]any{"field": campo},
	}
}
