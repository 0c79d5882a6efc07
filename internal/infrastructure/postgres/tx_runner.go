package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vgmedeiros/pessoas-api/internal/application/auth"
	"github.com/vgmedeiros/pessoas-api/internal/application/usecase"
	"github.com/vgmedeiros/pessoas-api/internal/domain/repository"
)

// TxRunner executa blocos de casos de uso dentro de uma transação pgx,
// entregando repositórios atados à transação. Commit só acontece se fn
// devolver nil; qualquer erro causa rollback.
type TxRunner struct {
	pool *pgxpool.Pool
}

var (
	_ auth.TxRunner        = (*TxRunner)(nil)
	_ usecase.UserTxRunner = (*TxRunner)(nil)
)

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCadastro roda o fluxo de registro (pessoa + usuário) atomicamente.
func (t *TxRunner) RunCadastro(fn func(users repository.UserRepository, persons repository.PersonRepository) error) error {
	return t.run(fn)
}

// RunExclusao roda o fluxo de exclusão de conta (usuário + pessoa vinculada)
// atomicamente.
func (t *TxRunner) RunExclusao(fn func(users repository.UserRepository, persons repository.PersonRepository) error) error {
	return t.run(fn)
}

func (t *TxRunner) run(fn func(users repository.UserRepository, persons repository.PersonRepository) error) error {
	ctx := context.Background()
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewUserRepository(tx), NewPersonRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
