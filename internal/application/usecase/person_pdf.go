package usecase

import (
	"github.com/vgmedeiros/pessoas-api/internal/domain"
	"github.com/vgmedeiros/pessoas-api/internal/domain/entity"
)

// FichaPDFGenerator gera a ficha cadastral em PDF de uma pessoa.
// Implementado por pdf.MarotoFichaGenerator.
type FichaPDFGenerator interface {
	GenerateFichaPDF(p *entity.Person) ([]byte, error)
}

// FichaPDF devolve os bytes do PDF da ficha cadastral da pessoa.
func (uc *PersonUseCase) FichaPDF(id string) ([]byte, error) {
	person, err := uc.personRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, domain.ErrPersonNotFound(id)
	}
	return uc.pdf.GenerateFichaPDF(person)
}
