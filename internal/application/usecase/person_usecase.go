package usecase

import (
	"github.com/vgmedeiros/pessoas-api/internal/application/dto"
	"github.com/vgmedeiros/pessoas-api/internal/domain"
	"github.com/vgmedeiros/pessoas-api/internal/domain/entity"
	"github.com/vgmedeiros/pessoas-api/internal/domain/repository"
)

// PersonUseCase casos de uso de cadastro de pessoas. Toda operação protegida
// recebe o actorID (do token) e resolve o ator na base para aplicar os
// predicados de autorização da entidade.
type PersonUseCase struct {
	personRepo repository.PersonRepository
	userRepo   repository.UserRepository
	pdf        FichaPDFGenerator
}

// NewPersonUseCase constrói o caso de uso de pessoas.
func NewPersonUseCase(personRepo repository.PersonRepository, userRepo repository.UserRepository, pdf FichaPDFGenerator) *PersonUseCase {
	return &PersonUseCase{personRepo: personRepo, userRepo: userRepo, pdf: pdf}
}

// Create cadastra uma pessoa. A unicidade do CPF é verificada antes da
// construção da entidade; email/telefone/celular viram contatos iniciais.
func (uc *PersonUseCase) Create(in dto.CreatePersonRequest, actorID string) (*dto.PersonResponse, error) {
	emUso, err := uc.personRepo.CPFExists(in.CPF, "")
	if err != nil {
		return nil, err
	}
	if emUso {
		return nil, domain.ErrCPFAlreadyExists(in.CPF)
	}

	nascimento, err := dto.ParseDate(in.DataNascimento)
	if err != nil {
		return nil, err
	}
	person, err := entity.NewPerson(in.Nome, in.CPF, nascimento, in.Sexo, in.Email, in.Naturalidade, in.Nacionalidade, actorID)
	if err != nil {
		return nil, err
	}
	if err := contatosIniciais(person, in.Email, in.Telefone, in.Celular); err != nil {
		return nil, err
	}

	if err := uc.personRepo.Create(person); err != nil {
		return nil, err
	}
	return dto.ToPersonResponse(person), nil
}

// List devolve uma página de pessoas com seus contatos.
func (uc *PersonUseCase) List(limit, offset int) ([]*dto.PersonResponse, error) {
	pessoas, err := uc.personRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PersonResponse, 0, len(pessoas))
	for _, p := range pessoas {
		out = append(out, dto.ToPersonResponse(p))
	}
	return out, nil
}

// GetByID devolve uma pessoa pelo ID.
func (uc *PersonUseCase) GetByID(id string) (*dto.PersonResponse, error) {
	person, err := uc.personRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, domain.ErrPersonNotFound(id)
	}
	return dto.ToPersonResponse(person), nil
}

// Update atualiza os campos mutáveis de uma pessoa (o CPF nunca). O ator
// precisa ser admin ou dono do cadastro. Os contatos são substituídos pelos
// derivados de email/telefone/celular, como no cadastro.
func (uc *PersonUseCase) Update(id string, in dto.UpdatePersonRequest, actorID string) (*dto.PersonResponse, error) {
	person, err := uc.personRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, domain.ErrPersonNotFound(id)
	}

	actor, err := uc.actor(actorID)
	if err != nil {
		return nil, err
	}
	if err := actor.ValidateCanEditPerson(person.ID); err != nil {
		return nil, err
	}

	nascimento, err := dto.ParseDate(in.DataNascimento)
	if err != nil {
		return nil, err
	}
	if err := person.UpdateInfo(in.Nome, nascimento, in.Sexo, in.Email, in.Naturalidade, in.Nacionalidade, actorID); err != nil {
		return nil, err
	}

	// Substitui os contatos: remove os existentes e recria a partir dos
	// campos informados.
	for _, c := range append([]*entity.Contact(nil), person.Contatos...) {
		person.RemoveContact(c.ID)
	}
	if err := contatosIniciais(person, in.Email, in.Telefone, in.Celular); err != nil {
		return nil, err
	}

	if err := uc.personRepo.Update(person); err != nil {
		return nil, err
	}
	return dto.ToPersonResponse(person), nil
}

// Delete remove uma pessoa e, em cascata, seus contatos.
func (uc *PersonUseCase) Delete(id, actorID string) error {
	existe, err := uc.personRepo.Exists(id)
	if err != nil {
		return err
	}
	if !existe {
		return domain.ErrPersonNotFound(id)
	}

	actor, err := uc.actor(actorID)
	if err != nil {
		return err
	}
	if err := actor.ValidateCanDeletePerson(id); err != nil {
		return err
	}
	return uc.personRepo.Delete(id)
}

// AddContact acrescenta um contato avulso a uma pessoa.
func (uc *PersonUseCase) AddContact(personID string, in dto.ContactRequest, actorID string) (*dto.PersonResponse, error) {
	person, actor, err := uc.personEActor(personID, actorID)
	if err != nil {
		return nil, err
	}
	if err := actor.ValidateCanEditPerson(person.ID); err != nil {
		return nil, err
	}
	if !entity.TipoContatoValido(in.Tipo) {
		return nil, domain.ErrInvalidContactType(in.Tipo)
	}

	contato, err := entity.NewContact(in.Tipo, in.Valor, in.Principal, person.ID)
	if err != nil {
		return nil, err
	}
	if err := person.AddContact(contato); err != nil {
		return nil, err
	}
	if err := uc.personRepo.Update(person); err != nil {
		return nil, err
	}
	return dto.ToPersonResponse(person), nil
}

// UpdateContact atualiza um contato existente de uma pessoa.
func (uc *PersonUseCase) UpdateContact(personID, contactID string, in dto.ContactRequest, actorID string) (*dto.PersonResponse, error) {
	person, actor, err := uc.personEActor(personID, actorID)
	if err != nil {
		return nil, err
	}
	if err := actor.ValidateCanEditPerson(person.ID); err != nil {
		return nil, err
	}
	if !entity.TipoContatoValido(in.Tipo) {
		return nil, domain.ErrInvalidContactType(in.Tipo)
	}

	if err := person.UpdateContact(contactID, in.Tipo, in.Valor, in.Principal); err != nil {
		return nil, err
	}
	if err := uc.personRepo.Update(person); err != nil {
		return nil, err
	}
	return dto.ToPersonResponse(person), nil
}

// RemoveContact remove um contato de uma pessoa. Sem efeito se o contato
// não existir.
func (uc *PersonUseCase) RemoveContact(personID, contactID, actorID string) error {
	person, actor, err := uc.personEActor(personID, actorID)
	if err != nil {
		return err
	}
	if err := actor.ValidateCanEditPerson(person.ID); err != nil {
		return err
	}
	person.RemoveContact(contactID)
	return uc.personRepo.Update(person)
}

func (uc *PersonUseCase) personEActor(personID, actorID string) (*entity.Person, *entity.User, error) {
	person, err := uc.personRepo.GetByID(personID)
	if err != nil {
		return nil, nil, err
	}
	if person == nil {
		return nil, nil, domain.ErrPersonNotFound(personID)
	}
	actor, err := uc.actor(actorID)
	if err != nil {
		return nil, nil, err
	}
	return person, actor, nil
}

// actor resolve o usuário autenticado; o PersonID vinculado vem da base,
// não do token, para refletir alterações feitas após a emissão.
func (uc *PersonUseCase) actor(actorID string) (*entity.User, error) {
	actor, err := uc.userRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrUserNotFound(actorID)
	}
	return actor, nil
}

// contatosIniciais materializa email/telefone/celular como contatos: email e
// telefone principais do seu tipo; celular principal apenas na ausência de
// telefone.
func contatosIniciais(p *entity.Person, email, telefone, celular string) error {
	if email != "" {
		if err := novoContato(p, entity.TipoEmail, email, true); err != nil {
			return err
		}
	}
	if telefone != "" {
		if err := novoContato(p, entity.TipoTelefone, telefone, true); err != nil {
			return err
		}
	}
	if celular != "" {
		if err := novoContato(p, entity.TipoCelular, celular, telefone == ""); err != nil {
			return err
		}
	}
	return nil
}

func novoContato(p *entity.Person, tipo, valor string, principal bool) error {
	c, err := entity.NewContact(tipo, valor, principal, p.ID)
	if err != nil {
		return err
	}
	return p.AddContact(c)
}
