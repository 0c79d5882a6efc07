package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgmedeiros/pessoas-api/internal/application/usecase"
	"github.com/vgmedeiros/pessoas-api/internal/domain"
	"github.com/vgmedeiros/pessoas-api/internal/domain/entity"
)

const hashTeste = "$2a$10$abcdefghijklmnopqrstuv"

// contaComPessoa semeia um usuário com cadastro de pessoa vinculado.
func contaComPessoa(t *testing.T, users *memUserRepo, persons *memPersonRepo, username, cpf string, role entity.Role) *entity.User {
	t.Helper()
	u, err := entity.NewUser(username, hashTeste, role)
	require.NoError(t, err)
	p, err := entity.NewPerson("Titular "+username, cpf, dataNascimentoTeste(), "", "", "", "", u.ID)
	require.NoError(t, err)
	require.NoError(t, u.SetPerson(p))
	require.NoError(t, persons.Create(p))
	require.NoError(t, users.Create(u))
	return u
}

func buildUserUC() (*usecase.UserUseCase, *memUserRepo, *memPersonRepo) {
	users := newMemUserRepo()
	persons := newMemPersonRepo()
	uc := usecase.NewUserUseCase(users, &memTx{users: users, persons: persons})
	return uc, users, persons
}

func TestUserDelete_ComumApagaPropriaContaECascateiaPessoa(t *testing.T) {
	uc, users, persons := buildUserUC()
	u := contaComPessoa(t, users, persons, "vera", "52998224725", entity.RoleUser)

	require.NoError(t, uc.Delete(u.ID, u.ID))
	assert.Empty(t, users.users, "a conta deve ter sido removida")
	assert.Empty(t, persons.persons, "a pessoa vinculada cai junto")
}

func TestUserDelete_ComumNaoApagaOutraConta(t *testing.T) {
	uc, users, persons := buildUserUC()
	ator := contaComPessoa(t, users, persons, "vera", "52998224725", entity.RoleUser)
	alvo := contaComPessoa(t, users, persons, "joao", "11144477735", entity.RoleUser)

	err := uc.Delete(alvo.ID, ator.ID)
	assert.True(t, domain.IsCode(err, domain.CodeCannotDeleteOtherUsers), "esperava AUTH_CANNOT_DELETE_OTHER_USERS, obteve %v", err)
	assert.Len(t, users.users, 2, "nada pode ter sido removido")
	assert.Len(t, persons.persons, 2)
}

func TestUserDelete_AdminApagaOutraConta(t *testing.T) {
	uc, users, persons := buildUserUC()
	admin := contaComPessoa(t, users, persons, "admin", "52998224725", entity.RoleAdmin)
	alvo := contaComPessoa(t, users, persons, "joao", "11144477735", entity.RoleUser)

	require.NoError(t, uc.Delete(alvo.ID, admin.ID))
	assert.Len(t, users.users, 1)
	assert.Len(t, persons.persons, 1)
	assert.Contains(t, users.users, admin.ID)
}

func TestUserDelete_AdminNaoApagaPropriaConta(t *testing.T) {
	uc, users, persons := buildUserUC()
	admin := contaComPessoa(t, users, persons, "admin", "52998224725", entity.RoleAdmin)

	err := uc.Delete(admin.ID, admin.ID)
	assert.True(t, domain.IsCode(err, domain.CodeCannotDeleteSelf))
	assert.Len(t, users.users, 1)
}

func TestUserDelete_AlvoNaoEncontrado(t *testing.T) {
	uc, users, persons := buildUserUC()
	ator := contaComPessoa(t, users, persons, "vera", "52998224725", entity.RoleUser)

	err := uc.Delete("nao-existe", ator.ID)
	assert.True(t, domain.IsCode(err, domain.CodeUserNotFound))
}

func TestUserDelete_ContaSemPessoaVinculada(t *testing.T) {
	uc, users, _ := buildUserUC()
	u, err := entity.NewUser("semvinculo", hashTeste, entity.RoleUser)
	require.NoError(t, err)
	require.NoError(t, users.Create(u))

	require.NoError(t, uc.Delete(u.ID, u.ID))
	assert.Empty(t, users.users)
}

func TestUserGetByID_NaoEncontrado(t *testing.T) {
	uc, _, _ := buildUserUC()
	_, err := uc.GetByID("nao-existe")
	assert.True(t, domain.IsCode(err, domain.CodeUserNotFound))
}
