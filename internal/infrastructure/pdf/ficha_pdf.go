// Package pdf gera a "ficha cadastral" de uma pessoa em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome + CPF             │  Emitida em <data>        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  IDENTIFICAÇÃO: sexo / nascimento / naturalidade / nac.     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Tipo | Valor | Principal                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/vgmedeiros/pessoas-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoFichaGenerator implementa usecase.FichaPDFGenerator usando Maroto v2.
type MarotoFichaGenerator struct{}

func NewMarotoFichaGenerator() *MarotoFichaGenerator { return &MarotoFichaGenerator{} }

// GenerateFichaPDF gera o PDF da ficha e devolve seus bytes.
func (g *MarotoFichaGenerator) GenerateFichaPDF(p *entity.Person) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha Cadastral", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(identificacaoRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(contatosHeaderRow())
	for _, r := range contatosRows(p.Contatos) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nome + CPF (esq) e data de emissão (dir).
func headerRow(p *entity.Person) core.Row {
	emitida := time.Now().Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(p.Nome, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CPF: "+formatCPF(p.CPF), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FICHA CADASTRAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitida em "+emitida, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// identificacaoRow: dados de identificação da pessoa.
func identificacaoRow(p *entity.Person) core.Row {
	nascimento := p.DataNascimento.Format("02/01/2006")
	return row.New(20).Add(
		col.New(12).Add(
			text.New("IDENTIFICAÇÃO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Sexo: %s   |   Nascimento: %s",
				nonEmpty(p.Sexo, "—"), nascimento,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
			text.New(fmt.Sprintf("Naturalidade: %s   |   Nacionalidade: %s   |   Email: %s",
				nonEmpty(p.Naturalidade, "—"),
				nonEmpty(p.Nacionalidade, "—"),
				nonEmpty(p.Email, "—"),
			), props.Text{Size: 8, Top: 13, Color: colorGray}),
		),
	)
}

// contatosHeaderRow: cabeçalho da tabela de contatos.
func contatosHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Tipo", 3, align.Left),
		h("Valor", 7, align.Left),
		h("Principal", 2, align.Center),
	)
}

// contatosRows: uma linha por contato.
func contatosRows(contatos []*entity.Contact) []core.Row {
	result := make([]core.Row, 0, len(contatos))
	for _, c := range contatos {
		principal := "Não"
		if c.Principal {
			principal = "Sim"
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				c.Tipo,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(7).Add(text.New(
				c.Valor,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				principal,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// formatCPF aplica a máscara 000.000.000-00 quando o CPF tem 11 dígitos.
func formatCPF(cpf string) string {
	if len(cpf) != 11 {
		return cpf
	}
	return cpf[:3] + "." + cpf[3:6] + "." + cpf[6:9] + "-" + cpf[9:]
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
