package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vgmedeiros/pessoas-api/internal/domain"
	"github.com/vgmedeiros/pessoas-api/pkg/cpf"
)

// Person é o registro cadastral de uma pessoa física. O CPF é imutável após
// a criação; a unicidade do CPF entre registros é responsabilidade da camada
// de persistência (verificação prévia + índice único).
type Person struct {
	ID              string
	Nome            string
	CPF             string
	Sexo            string // opcional: M, F, Masculino, Feminino
	Email           string
	DataNascimento  time.Time
	Naturalidade    string
	Nacionalidade   string
	CriadoPorID     string // user id; vazio quando criado sem ator
	AtualizadoPorID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Contatos        []*Contact
}

// NewPerson valida todas as invariantes e devolve uma Person completa, ou um
// erro tipado sem nunca produzir instância parcialmente válida.
func NewPerson(nome, numCPF string, dataNascimento time.Time, sexo, email, naturalidade, nacionalidade, criadoPorID string) (*Person, error) {
	if strings.TrimSpace(nome) == "" {
		return nil, domain.ErrRequiredField("nome")
	}
	if strings.TrimSpace(numCPF) == "" {
		return nil, domain.ErrRequiredField("cpf")
	}
	if !cpf.IsValid(numCPF) {
		return nil, domain.ErrInvalidCPF(numCPF)
	}
	if dataNoFuturo(dataNascimento) {
		return nil, domain.ErrInvalidBirthDate(dataNascimento)
	}

	now := time.Now().UTC()
	return &Person{
		ID:              uuid.New().String(),
		Nome:            nome,
		CPF:             numCPF,
		Sexo:            sexo,
		Email:           email,
		DataNascimento:  dataNascimento,
		Naturalidade:    naturalidade,
		Nacionalidade:   nacionalidade,
		CriadoPorID:     criadoPorID,
		AtualizadoPorID: criadoPorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// UpdateInfo revalida os campos mutáveis e os sobrescreve. O CPF não é
// alterável por este caminho. Valida tudo antes de mutar qualquer campo.
func (p *Person) UpdateInfo(nome string, dataNascimento time.Time, sexo, email, naturalidade, nacionalidade, atualizadoPorID string) error {
	if strings.TrimSpace(nome) == "" {
		return domain.ErrRequiredField("nome")
	}
	if dataNoFuturo(dataNascimento) {
		return domain.ErrInvalidBirthDate(dataNascimento)
	}

	p.Nome = nome
	p.DataNascimento = dataNascimento
	p.Sexo = sexo
	p.Email = email
	p.Naturalidade = naturalidade
	p.Nacionalidade = nacionalidade
	p.AtualizadoPorID = atualizadoPorID
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// AddContact acrescenta um contato. Se o contato chega marcado como
// principal, os demais contatos do mesmo tipo são rebaixados antes: no
// máximo um principal por tipo.
func (p *Person) AddContact(contato *Contact) error {
	if contato == nil {
		return domain.ErrRequiredField("contato")
	}
	if contato.Principal {
		for _, c := range p.Contatos {
			if c.Tipo == contato.Tipo {
				c.SetPrincipal(false)
			}
		}
	}
	p.Contatos = append(p.Contatos, contato)
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// RemoveContact remove o contato pelo ID. Sem efeito se não existir.
func (p *Person) RemoveContact(contactID string) {
	for i, c := range p.Contatos {
		if c.ID == contactID {
			p.Contatos = append(p.Contatos[:i], p.Contatos[i+1:]...)
			p.UpdatedAt = time.Now().UTC()
			return
		}
	}
}

// UpdateContact atualiza um contato existente, mantendo a invariante de um
// único principal por tipo.
func (p *Person) UpdateContact(contactID, tipo, valor string, principal bool) error {
	var alvo *Contact
	for _, c := range p.Contatos {
		if c.ID == contactID {
			alvo = c
			break
		}
	}
	if alvo == nil {
		return domain.ErrContactNotFound(contactID)
	}

	// Valida antes de rebaixar os demais: falha aqui não pode deixar a
	// coleção meio-mutada.
	if strings.TrimSpace(tipo) == "" {
		return domain.ErrRequiredField("tipo")
	}
	if strings.TrimSpace(valor) == "" {
		return domain.ErrRequiredField("valor")
	}

	if principal {
		for _, c := range p.Contatos {
			if c.Tipo == tipo && c.ID != contactID {
				c.SetPrincipal(false)
			}
		}
	}
	if err := alvo.Update(tipo, valor, principal); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// FindContact devolve o contato pelo ID, ou nil.
func (p *Person) FindContact(contactID string) *Contact {
	for _, c := range p.Contatos {
		if c.ID == contactID {
			return c
		}
	}
	return nil
}

// dataNoFuturo compara por dia calendário (UTC): nascer hoje é válido,
// amanhã não.
func dataNoFuturo(d time.Time) bool {
	ano, mes, dia := d.UTC().Date()
	hAno, hMes, hDia := time.Now().UTC().Date()
	data := time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
	hoje := time.Date(hAno, hMes, hDia, 0, 0, 0, 0, time.UTC)
	return data.After(hoje)
}
