package repository

import "github.com/vgmedeiros/pessoas-api/internal/domain/entity"

// UserRepository define o porto de persistência para User (DIP).
// Métodos Get devolvem nil (sem erro) quando o registro não existe.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByIDWithPerson(id string) (*entity.User, error)
	GetByUsernameWithPerson(username string) (*entity.User, error)
	UsernameExists(username string) (bool, error)
	Update(u *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	Delete(id string) error
}
