package repository

import "github.com/vgmedeiros/pessoas-api/internal/domain/entity"

// PersonRepository define o porto de persistência para Person (DIP).
// GetByID carrega a pessoa com seus contatos; métodos Get devolvem nil
// (sem erro) quando o registro não existe.
type PersonRepository interface {
	Create(p *entity.Person) error
	GetByID(id string) (*entity.Person, error)
	List(limit, offset int) ([]*entity.Person, error)
	Update(p *entity.Person) error
	Delete(id string) error
	Exists(id string) (bool, error)
	// CPFExists verifica unicidade do CPF; excludePersonID ("" = nenhum)
	// permite ignorar o próprio registro em atualizações.
	CPFExists(cpf, excludePersonID string) (bool, error)
}
