package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgmedeiros/pessoas-api/internal/domain"
	"github.com/vgmedeiros/pessoas-api/internal/domain/entity"
)

const cpfValido = "52998224725"

func novaPessoa(t *testing.T) *entity.Person {
	t.Helper()
	nascimento := time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)
	p, err := entity.NewPerson("Vera Gomes", cpfValido, nascimento, "F", "vera@example.com", "Recife", "Brasileira", "actor-1")
	require.NoError(t, err)
	return p
}

func TestNewPerson_CamposEMetadados(t *testing.T) {
	p := novaPessoa(t)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Vera Gomes", p.Nome)
	assert.Equal(t, cpfValido, p.CPF)
	assert.Equal(t, "actor-1", p.CriadoPorID)
	assert.Equal(t, "actor-1", p.AtualizadoPorID, "o criador entra como primeiro atualizador")
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	assert.Empty(t, p.Contatos)
}

func TestNewPerson_Invalidos(t *testing.T) {
	nascimento := time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		nome string
		cpf  string
		code string
	}{
		{"nome vazio", "", cpfValido, domain.CodeRequiredField},
		{"nome só espaços", "   ", cpfValido, domain.CodeRequiredField},
		{"cpf vazio", "Vera", "", domain.CodeRequiredField},
		{"cpf com dígito errado", "Vera", "12345678900", domain.CodeInvalidCPF},
		{"cpf repetido", "Vera", "11111111111", domain.CodeInvalidCPF},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := entity.NewPerson(tc.nome, tc.cpf, nascimento, "", "", "", "", "")
			assert.Nil(t, p)
			assert.True(t, domain.IsCode(err, tc.code), "esperava %s, obteve %v", tc.code, err)
		})
	}
}

// Nascer hoje é válido; amanhã não. A comparação é por dia calendário, não
// por instante.
func TestNewPerson_DataNascimentoNoFuturo(t *testing.T) {
	amanha := time.Now().UTC().AddDate(0, 0, 1)
	p, err := entity.NewPerson("Vera", cpfValido, amanha, "", "", "", "", "")
	assert.Nil(t, p)
	assert.True(t, domain.IsCode(err, domain.CodeInvalidBirthDate))

	hoje := time.Now().UTC()
	p, err = entity.NewPerson("Vera", cpfValido, hoje, "", "", "", "", "")
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestUpdateInfo_NaoTocaCPFNemCriador(t *testing.T) {
	p := novaPessoa(t)
	nascimento := time.Date(1985, 1, 2, 0, 0, 0, 0, time.UTC)

	err := p.UpdateInfo("Vera G. Medeiros", nascimento, "Feminino", "vg@example.com", "Olinda", "Brasileira", "actor-2")
	require.NoError(t, err)

	assert.Equal(t, "Vera G. Medeiros", p.Nome)
	assert.Equal(t, cpfValido, p.CPF, "CPF é imutável")
	assert.Equal(t, "actor-1", p.CriadoPorID)
	assert.Equal(t, "actor-2", p.AtualizadoPorID)
}

// Falha de validação não pode deixar a entidade meio-mutada.
func TestUpdateInfo_FalhaNaoMuta(t *testing.T) {
	p := novaPessoa(t)
	nomeAntes, nascAntes := p.Nome, p.DataNascimento

	err := p.UpdateInfo("", p.DataNascimento, "", "", "", "", "actor-2")
	assert.True(t, domain.IsCode(err, domain.CodeRequiredField))
	assert.Equal(t, nomeAntes, p.Nome)
	assert.Equal(t, nascAntes, p.DataNascimento)
	assert.Equal(t, "actor-1", p.AtualizadoPorID)

	err = p.UpdateInfo("Vera", time.Now().UTC().AddDate(0, 0, 2), "", "", "", "", "actor-2")
	assert.True(t, domain.IsCode(err, domain.CodeInvalidBirthDate))
	assert.Equal(t, nomeAntes, p.Nome)
}

func TestAddContact_RebaixaPrincipalDoMesmoTipo(t *testing.T) {
	p := novaPessoa(t)

	a, err := entity.NewContact(entity.TipoEmail, "a@example.com", true, p.ID)
	require.NoError(t, err)
	require.NoError(t, p.AddContact(a))

	tel, err := entity.NewContact(entity.TipoTelefone, "8133334444", true, p.ID)
	require.NoError(t, err)
	require.NoError(t, p.AddContact(tel))

	b, err := entity.NewContact(entity.TipoEmail, "b@example.com", true, p.ID)
	require.NoError(t, err)
	require.NoError(t, p.AddContact(b))

	assert.False(t, a.Principal, "o email anterior deve ser rebaixado")
	assert.True(t, b.Principal)
	assert.True(t, tel.Principal, "tipos diferentes não são afetados")
}

func TestAddContact_NilObrigatorio(t *testing.T) {
	p := novaPessoa(t)
	err := p.AddContact(nil)
	assert.True(t, domain.IsCode(err, domain.CodeRequiredField))
}

func TestUpdateContact_NaoEncontrado(t *testing.T) {
	p := novaPessoa(t)
	err := p.UpdateContact("nao-existe", entity.TipoEmail, "x@example.com", false)
	assert.True(t, domain.IsCode(err, domain.CodeContactNotFound))
}

// Valor inválido deve falhar antes de rebaixar qualquer outro contato.
func TestUpdateContact_FalhaNaoRebaixaOutros(t *testing.T) {
	p := novaPessoa(t)

	principal, err := entity.NewContact(entity.TipoEmail, "a@example.com", true, p.ID)
	require.NoError(t, err)
	require.NoError(t, p.AddContact(principal))

	outro, err := entity.NewContact(entity.TipoEmail, "b@example.com", false, p.ID)
	require.NoError(t, err)
	require.NoError(t, p.AddContact(outro))

	err = p.UpdateContact(outro.ID, entity.TipoEmail, "   ", true)
	assert.True(t, domain.IsCode(err, domain.CodeRequiredField))
	assert.True(t, principal.Principal, "o principal não pode ter sido rebaixado")
	assert.False(t, outro.Principal)
	assert.Equal(t, "b@example.com", outro.Valor)
}

func TestUpdateContact_PromoveEFazRebaixamento(t *testing.T) {
	p := novaPessoa(t)

	a, _ := entity.NewContact(entity.TipoCelular, "81911112222", true, p.ID)
	require.NoError(t, p.AddContact(a))
	b, _ := entity.NewContact(entity.TipoCelular, "81933334444", false, p.ID)
	require.NoError(t, p.AddContact(b))

	require.NoError(t, p.UpdateContact(b.ID, entity.TipoCelular, "81933334444", true))
	assert.False(t, a.Principal)
	assert.True(t, b.Principal)
}

func TestRemoveContact_SemEfeitoQuandoAusente(t *testing.T) {
	p := novaPessoa(t)
	c, _ := entity.NewContact(entity.TipoEmail, "a@example.com", false, p.ID)
	require.NoError(t, p.AddContact(c))

	p.RemoveContact("nao-existe")
	assert.Len(t, p.Contatos, 1)

	p.RemoveContact(c.ID)
	assert.Empty(t, p.Contatos)
}
