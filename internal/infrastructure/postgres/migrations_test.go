package postgres

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lerMigracaoInicial(t *testing.T) string {
	t.Helper()
	sql, err := migrationsFS.ReadFile("migrations/00001_create_tables.sql")
	require.NoError(t, err)
	return string(sql)
}

// users.person_id precisa desvincular (SET NULL) quando a pessoa é excluída:
// toda conta registrada aponta para sua pessoa, e excluir o próprio cadastro
// é uma operação autorizada. Um FK restritivo faria o DELETE falhar.
func TestMigracao_ExcluirPessoaDesvinculaConta(t *testing.T) {
	sql := lerMigracaoInicial(t)

	fkPersonID := regexp.MustCompile(`person_id\s+uuid\s+REFERENCES\s+persons\s*\(id\)\s+ON\s+DELETE\s+SET\s+NULL`)
	assert.True(t, fkPersonID.MatchString(sql),
		"users.person_id deve referenciar persons(id) com ON DELETE SET NULL")
}

// Os contatos pertencem à pessoa: caem junto com ela.
func TestMigracao_ContatosCaemComAPessoa(t *testing.T) {
	sql := lerMigracaoInicial(t)

	fkContato := regexp.MustCompile(`person_id\s+uuid\s+NOT\s+NULL\s+REFERENCES\s+persons\s*\(id\)\s+ON\s+DELETE\s+CASCADE`)
	assert.True(t, fkContato.MatchString(sql),
		"contacts.person_id deve cascatear a exclusão da pessoa")
}

// Unicidades do esquema: CPF, username e o vínculo um-para-um conta↔pessoa.
func TestMigracao_IndicesUnicos(t *testing.T) {
	sql := lerMigracaoInicial(t)

	assert.Contains(t, sql, "CREATE UNIQUE INDEX ux_persons_cpf ON persons (cpf)")
	assert.Contains(t, sql, "CREATE UNIQUE INDEX ux_users_username ON users (username)")
	assert.Contains(t, sql,
		"CREATE UNIQUE INDEX ux_users_person ON users (person_id) WHERE person_id IS NOT NULL",
		"duas contas não podem apontar para a mesma pessoa")
}

// O ciclo users↔persons é quebrado do lado de persons: criado_por e
// atualizado_por são colunas uuid sem FK.
func TestMigracao_AuditoriaSemFK(t *testing.T) {
	sql := lerMigracaoInicial(t)

	for _, col := range []string{"criado_por", "atualizado_por"} {
		linha := regexp.MustCompile(col + `\s+uuid\s*,`)
		assert.True(t, linha.MatchString(sql), "%s deve ser uuid sem REFERENCES", col)
		assert.False(t, strings.Contains(sql, col+" uuid REFERENCES"), "%s não pode ter FK", col)
	}
}
