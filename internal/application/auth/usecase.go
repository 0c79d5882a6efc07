package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vgmedeiros/pessoas-api/internal/application/dto"
	"github.com/vgmedeiros/pessoas-api/internal/domain"
	"github.com/vgmedeiros/pessoas-api/internal/domain/entity"
	"github.com/vgmedeiros/pessoas-api/internal/domain/repository"
	"github.com/vgmedeiros/pessoas-api/pkg/jwt"
)

// JWTConfig configuração para emissão de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TxRunner executa o cadastro (pessoa + usuário) atomicamente.
// Implementado por postgres.TxRunner.
type TxRunner interface {
	RunCadastro(fn func(users repository.UserRepository, persons repository.PersonRepository) error) error
}

// UseCase casos de uso de autenticação: registro e login.
type UseCase struct {
	userRepo   repository.UserRepository
	personRepo repository.PersonRepository
	tx         TxRunner
	jwtCfg     JWTConfig
}

// New constrói o caso de uso de auth.
func New(userRepo repository.UserRepository, personRepo repository.PersonRepository, tx TxRunner, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, personRepo: personRepo, tx: tx, jwtCfg: jwtCfg}
}

// Register cria a conta e o cadastro da pessoa vinculada em uma transação:
// verifica unicidade de username e CPF, hasheia a senha com bcrypt, monta as
// entidades (com os contatos iniciais) e persiste pessoa + usuário.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	exists, err := uc.userRepo.UsernameExists(in.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUsernameAlreadyExists(in.Username)
	}

	cpfEmUso, err := uc.personRepo.CPFExists(in.Person.CPF, "")
	if err != nil {
		return nil, err
	}
	if cpfEmUso {
		return nil, domain.ErrCPFAlreadyExists(in.Person.CPF)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := entity.NewUser(in.Username, string(hash), entity.RoleUser)
	if err != nil {
		return nil, err
	}

	nascimento, err := dto.ParseDate(in.Person.DataNascimento)
	if err != nil {
		return nil, err
	}
	person, err := entity.NewPerson(
		in.Person.Nome, in.Person.CPF, nascimento,
		in.Person.Sexo, in.Person.Email, in.Person.Naturalidade, in.Person.Nacionalidade,
		user.ID,
	)
	if err != nil {
		return nil, err
	}

	// Contatos iniciais: o email do cadastro vira o contato principal;
	// telefones entram como secundários.
	if in.Person.Email != "" {
		if err := addContato(person, entity.TipoEmail, in.Person.Email, true); err != nil {
			return nil, err
		}
	}
	if in.Person.Telefone != "" {
		if err := addContato(person, entity.TipoTelefone, in.Person.Telefone, false); err != nil {
			return nil, err
		}
	}
	if in.Person.Celular != "" {
		if err := addContato(person, entity.TipoCelular, in.Person.Celular, false); err != nil {
			return nil, err
		}
	}

	if err := user.SetPerson(person); err != nil {
		return nil, err
	}

	// Pessoa antes do usuário: users.person_id referencia persons.
	err = uc.tx.RunCadastro(func(users repository.UserRepository, persons repository.PersonRepository) error {
		if err := persons.Create(person); err != nil {
			return err
		}
		return users.Create(user)
	})
	if err != nil {
		return nil, err
	}

	return dto.ToUserResponse(user), nil
}

// Login verifica username/senha e emite o JWT. Usuário inexistente e senha
// incorreta produzem a mesma falha, sem distinguir qual dos dois ocorreu.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsernameWithPerson(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials()
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
		User:      *dto.ToUserResponse(user),
	}, nil
}

func addContato(p *entity.Person, tipo, valor string, principal bool) error {
	c, err := entity.NewContact(tipo, valor, principal, p.ID)
	if err != nil {
		return err
	}
	return p.AddContact(c)
}
