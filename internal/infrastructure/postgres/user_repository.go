package postgres

import (
	"context"
	"fmt"

	"github.com/vgmedeiros/pessoas-api/internal/domain"
	"github.com/vgmedeiros/pessoas-api/internal/domain/entity"
)

// UserRepository implementa repository.UserRepository sobre pgx.
type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO users (id, username, password_hash, role, person_id,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Username, u.PasswordHash, string(u.Role),
		nullIfEmpty(u.PersonID), u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameAlreadyExists(u.Username)
		}
		return fmt.Errorf("inserir usuário: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	return r.getOne(`WHERE u.id = $1`, id)
}

// GetByIDWithPerson carrega o usuário e, se vinculado, sua Person com
// contatos.
func (r *UserRepository) GetByIDWithPerson(id string) (*entity.User, error) {
	u, err := r.getOne(`WHERE u.id = $1`, id)
	if err != nil || u == nil {
		return u, err
	}
	return u, r.attachPerson(u)
}

func (r *UserRepository) GetByUsernameWithPerson(username string) (*entity.User, error) {
	u, err := r.getOne(`WHERE u.username = $1`, username)
	if err != nil || u == nil {
		return u, err
	}
	return u, r.attachPerson(u)
}

func (r *UserRepository) UsernameExists(username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("verificar username: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) Update(u *entity.User) error {
	_, err := r.db.Exec(context.Background(), `
		UPDATE users
		SET username = $2, password_hash = $3, role = $4, person_id = $5,
		    updated_at = $6
		WHERE id = $1`,
		u.ID, u.Username, u.PasswordHash, string(u.Role),
		nullIfEmpty(u.PersonID), u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameAlreadyExists(u.Username)
		}
		return fmt.Errorf("atualizar usuário: %w", err)
	}
	return nil
}

func (r *UserRepository) List(limit, offset int) ([]*entity.User, error) {
	rows, err := r.db.Query(context.Background(), `
		SELECT u.id, u.username, u.password_hash, u.role, u.person_id,
		       u.created_at, u.updated_at
		FROM users u
		ORDER BY u.created_at DESC, u.id
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar usuários: %w", err)
	}
	defer rows.Close()
	var out []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar usuários: %w", err)
	}
	return out, nil
}

func (r *UserRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("excluir usuário: %w", err)
	}
	return nil
}

func (r *UserRepository) getOne(where string, arg any) (*entity.User, error) {
	rows, err := r.db.Query(context.Background(), `
		SELECT u.id, u.username, u.password_hash, u.role, u.person_id,
		       u.created_at, u.updated_at
		FROM users u
		`+where, arg)
	if err != nil {
		return nil, fmt.Errorf("buscar usuário: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("buscar usuário: %w", err)
		}
		return nil, nil
	}
	return scanUser(rows)
}

// attachPerson carrega a Person vinculada (com contatos) reaproveitando o
// PersonRepository do mesmo DBTX.
func (r *UserRepository) attachPerson(u *entity.User) error {
	if u.PersonID == "" {
		return nil
	}
	p, err := NewPersonRepository(r.db).GetByID(u.PersonID)
	if err != nil {
		return err
	}
	u.Person = p
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*entity.User, error) {
	var u entity.User
	var role string
	var personID *string
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &role,
		&personID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, fmt.Errorf("ler usuário: %w", err)
	}
	u.Role = entity.Role(role)
	u.PersonID = orEmpty(personID)
	return &u, nil
}
