package usecase

import (
	"github.com/vgmedeiros/pessoas-api/internal/application/dto"
	"github.com/vgmedeiros/pessoas-api/internal/domain"
	"github.com/vgmedeiros/pessoas-api/internal/domain/repository"
)

// UserTxRunner executa a exclusão de conta (pessoa + usuário) atomicamente.
// Implementado por postgres.TxRunner.
type UserTxRunner interface {
	RunExclusao(fn func(users repository.UserRepository, persons repository.PersonRepository) error) error
}

// UserUseCase casos de uso de contas de usuário.
type UserUseCase struct {
	userRepo repository.UserRepository
	tx       UserTxRunner
}

// NewUserUseCase constrói o caso de uso de usuários.
func NewUserUseCase(userRepo repository.UserRepository, tx UserTxRunner) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, tx: tx}
}

// List devolve uma página de usuários (rota restrita a admin no router).
func (uc *UserUseCase) List(limit, offset int) ([]*dto.UserResponse, error) {
	users, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserResponse(u))
	}
	return out, nil
}

// GetByID devolve um usuário com a pessoa vinculada.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByIDWithPerson(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound(id)
	}
	return dto.ToUserResponse(user), nil
}

// Delete remove uma conta após as duas barreiras de autorização (permissão e
// autoproteção, nesta ordem) e exclui em cascata a pessoa vinculada, na
// mesma transação.
func (uc *UserUseCase) Delete(targetID, actorID string) error {
	target, err := uc.userRepo.GetByIDWithPerson(targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrUserNotFound(targetID)
	}

	actor, err := uc.userRepo.GetByID(actorID)
	if err != nil {
		return err
	}
	if actor == nil {
		return domain.ErrUserNotFound(actorID)
	}

	if err := actor.ValidateCanDeleteUser(targetID); err != nil {
		return err
	}

	return uc.tx.RunExclusao(func(users repository.UserRepository, persons repository.PersonRepository) error {
		// O usuário aponta para a pessoa; remove primeiro a conta.
		if err := users.Delete(targetID); err != nil {
			return err
		}
		if target.PersonID != "" {
			return persons.Delete(target.PersonID)
		}
		return nil
	})
}
