package usecase_test

import (
	"github.com/vgmedeiros/pessoas-api/internal/domain/entity"
	"github.com/vgmedeiros/pessoas-api/internal/domain/repository"
)

// Fakes em memória para os casos de uso.

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[string]*entity.User{}} }

func (r *memUserRepo) Create(u *entity.User) error             { r.users[u.ID] = u; return nil }
func (r *memUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }
func (r *memUserRepo) GetByIDWithPerson(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *memUserRepo) GetByUsernameWithPerson(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) UsernameExists(username string) (bool, error) {
	u, _ := r.GetByUsernameWithPerson(username)
	return u != nil, nil
}
func (r *memUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}
func (r *memUserRepo) Delete(id string) error { delete(r.users, id); return nil }

type memPersonRepo struct {
	persons map[string]*entity.Person
}

func newMemPersonRepo() *memPersonRepo {
	return &memPersonRepo{persons: map[string]*entity.Person{}}
}

func (r *memPersonRepo) Create(p *entity.Person) error { r.persons[p.ID] = p; return nil }
func (r *memPersonRepo) GetByID(id string) (*entity.Person, error) {
	return r.persons[id], nil
}
func (r *memPersonRepo) List(limit, offset int) ([]*entity.Person, error) {
	out := make([]*entity.Person, 0, len(r.persons))
	for _, p := range r.persons {
		out = append(out, p)
	}
	return out, nil
}
func (r *memPersonRepo) Update(p *entity.Person) error { r.persons[p.ID] = p; return nil }
func (r *memPersonRepo) Delete(id string) error        { delete(r.persons, id); return nil }
func (r *memPersonRepo) Exists(id string) (bool, error) {
	_, ok := r.persons[id]
	return ok, nil
}
func (r *memPersonRepo) CPFExists(cpf, excludePersonID string) (bool, error) {
	for _, p := range r.persons {
		if p.CPF == cpf && p.ID != excludePersonID {
			return true, nil
		}
	}
	return false, nil
}

type memTx struct {
	users   *memUserRepo
	persons *memPersonRepo
}

func (t *memTx) RunExclusao(fn func(users repository.UserRepository, persons repository.PersonRepository) error) error {
	return fn(t.users, t.persons)
}

// fichaStub satisfaz usecase.FichaPDFGenerator sem gerar PDF de verdade.
type fichaStub struct{}

func (fichaStub) GenerateFichaPDF(p *entity.Person) ([]byte, error) {
	return []byte("%PDF-stub " + p.ID), nil
}
