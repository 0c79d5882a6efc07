package dto

import (
	"time"

	"github.com/vgmedeiros/pessoas-api/internal/domain/entity"
)

// RegisterRequest entrada de registro: conta + dados da pessoa vinculada.
type RegisterRequest struct {
	Username string              `json:"username"`
	Password string              `json:"password"`
	Person   CreatePersonRequest `json:"person"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse saída com token JWT e o usuário autenticado.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UserResponse saída de um usuário (sem o hash da senha).
type UserResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Role      string          `json:"role"`
	Person    *PersonResponse `json:"person,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToUserResponse mapeia a entidade para o DTO de saída.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		Person:    ToPersonResponse(u.Person),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
