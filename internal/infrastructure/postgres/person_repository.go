package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vgmedeiros/pessoas-api/internal/domain"
	"github.com/vgmedeiros/pessoas-api/internal/domain/entity"
)

// PersonRepository implementa repository.PersonRepository sobre pgx.
// Recebe DBTX para poder operar tanto no pool quanto dentro de uma transação.
type PersonRepository struct {
	db DBTX
}

func NewPersonRepository(db DBTX) *PersonRepository {
	return &PersonRepository{db: db}
}

const personColumns = `id, nome, cpf, sexo, email, data_nascimento,
       naturalidade, nacionalidade, criado_por, atualizado_por,
       created_at, updated_at`

func (r *PersonRepository) Create(p *entity.Person) error {
	ctx := context.Background()
	_, err := r.db.Exec(ctx, `
		INSERT INTO persons (id, nome, cpf, sexo, email, data_nascimento,
		                     naturalidade, nacionalidade, criado_por,
		                     atualizado_por, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.Nome, p.CPF, nullIfEmpty(p.Sexo), nullIfEmpty(p.Email),
		p.DataNascimento, nullIfEmpty(p.Naturalidade), nullIfEmpty(p.Nacionalidade),
		nullIfEmpty(p.CriadoPorID), nullIfEmpty(p.AtualizadoPorID),
		p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCPFAlreadyExists(p.CPF)
		}
		return fmt.Errorf("inserir pessoa: %w", err)
	}
	if err := r.insertContacts(ctx, p); err != nil {
		return err
	}
	return nil
}

func (r *PersonRepository) GetByID(id string) (*entity.Person, error) {
	ctx := context.Background()
	rows, err := r.db.Query(ctx, `
		SELECT `+personColumns+`
		FROM persons
		WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("buscar pessoa: %w", err)
	}
	persons, err := scanPersons(rows)
	if err != nil {
		return nil, err
	}
	if len(persons) == 0 {
		return nil, nil
	}
	p := persons[0]
	if err := r.loadContacts(ctx, []*entity.Person{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PersonRepository) List(limit, offset int) ([]*entity.Person, error) {
	ctx := context.Background()
	rows, err := r.db.Query(ctx, `
		SELECT `+personColumns+`
		FROM persons
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar pessoas: %w", err)
	}
	persons, err := scanPersons(rows)
	if err != nil {
		return nil, err
	}
	if err := r.loadContacts(ctx, persons); err != nil {
		return nil, err
	}
	return persons, nil
}

// Update regrava os dados da pessoa e substitui seus contatos pelo conjunto
// atual do agregado. O CPF nunca é atualizado.
func (r *PersonRepository) Update(p *entity.Person) error {
	ctx := context.Background()
	_, err := r.db.Exec(ctx, `
		UPDATE persons
		SET nome = $2, sexo = $3, email = $4, data_nascimento = $5,
		    naturalidade = $6, nacionalidade = $7, atualizado_por = $8,
		    updated_at = $9
		WHERE id = $1`,
		p.ID, p.Nome, nullIfEmpty(p.Sexo), nullIfEmpty(p.Email),
		p.DataNascimento, nullIfEmpty(p.Naturalidade), nullIfEmpty(p.Nacionalidade),
		nullIfEmpty(p.AtualizadoPorID), p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("atualizar pessoa: %w", err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE person_id = $1`, p.ID); err != nil {
		return fmt.Errorf("limpar contatos: %w", err)
	}
	return r.insertContacts(ctx, p)
}

// Delete remove a pessoa; os contatos caem junto (ON DELETE CASCADE).
func (r *PersonRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM persons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("excluir pessoa: %w", err)
	}
	return nil
}

func (r *PersonRepository) Exists(id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM persons WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("verificar pessoa: %w", err)
	}
	return exists, nil
}

func (r *PersonRepository) CPFExists(cpf, excludePersonID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(context.Background(), `
		SELECT EXISTS (
			SELECT 1 FROM persons
			WHERE cpf = $1 AND ($2 = '' OR id::text <> $2)
		)`, cpf, excludePersonID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("verificar CPF: %w", err)
	}
	return exists, nil
}

func (r *PersonRepository) insertContacts(ctx context.Context, p *entity.Person) error {
	for _, c := range p.Contatos {
		_, err := r.db.Exec(ctx, `
			INSERT INTO contacts (id, person_id, tipo, valor, principal)
			VALUES ($1, $2, $3, $4, $5)`,
			c.ID, p.ID, c.Tipo, c.Valor, c.Principal)
		if err != nil {
			return fmt.Errorf("inserir contato: %w", err)
		}
	}
	return nil
}

// loadContacts popula Contatos das pessoas dadas em uma única consulta.
func (r *PersonRepository) loadContacts(ctx context.Context, persons []*entity.Person) error {
	if len(persons) == 0 {
		return nil
	}
	ids := make([]string, len(persons))
	byID := make(map[string]*entity.Person, len(persons))
	for i, p := range persons {
		ids[i] = p.ID
		byID[p.ID] = p
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, person_id, tipo, valor, principal
		FROM contacts
		WHERE person_id = ANY($1::uuid[])
		ORDER BY tipo, id`, ids)
	if err != nil {
		return fmt.Errorf("buscar contatos: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c entity.Contact
		if err := rows.Scan(&c.ID, &c.PessoaID, &c.Tipo, &c.Valor, &c.Principal); err != nil {
			return fmt.Errorf("ler contato: %w", err)
		}
		if p, ok := byID[c.PessoaID]; ok {
			p.Contatos = append(p.Contatos, &c)
		}
	}
	return rows.Err()
}

// scanPersons consome rows de SELECT personColumns, mapeando NULL para "".
func scanPersons(rows pgx.Rows) ([]*entity.Person, error) {
	defer rows.Close()
	var out []*entity.Person
	for rows.Next() {
		var p entity.Person
		var sexo, email, naturalidade, nacionalidade, criadoPor, atualizadoPor *string
		if err := rows.Scan(&p.ID, &p.Nome, &p.CPF, &sexo, &email,
			&p.DataNascimento, &naturalidade, &nacionalidade,
			&criadoPor, &atualizadoPor, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ler pessoa: %w", err)
		}
		p.Sexo = orEmpty(sexo)
		p.Email = orEmpty(email)
		p.Naturalidade = orEmpty(naturalidade)
		p.Nacionalidade = orEmpty(nacionalidade)
		p.CriadoPorID = orEmpty(criadoPor)
		p.AtualizadoPorID = orEmpty(atualizadoPor)
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar pessoas: %w", err)
	}
	return out, nil
}
