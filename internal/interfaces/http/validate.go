package http

import (
	"regexp"

	"github.com/vgmedeiros/pessoas-api/internal/application/dto"
)

// Validação de entrada nos handlers: regras de forma (tamanhos, formatos,
// enums) ficam aqui; invariantes de negócio ficam nas entidades.
var (
	cpfPattern   = regexp.MustCompile(`^\d{11}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

var sexosValidos = map[string]bool{
	"M": true, "F": true, "Masculino": true, "Feminino": true,
}

// validatePersonFields valida os campos comuns de criação/atualização de
// pessoa. cpf vazio é aceito aqui (update não envia CPF); requireCPF liga a
// obrigatoriedade.
func validatePersonFields(nome, cpf, dataNascimento, sexo, email string, requireCPF bool) string {
	if nome == "" {
		return "nome é obrigatório"
	}
	if len(nome) > 100 {
		return "nome deve ter no máximo 100 caracteres"
	}
	if requireCPF {
		if cpf == "" {
			return "cpf é obrigatório"
		}
		if !cpfPattern.MatchString(cpf) {
			return "cpf deve ter exatamente 11 dígitos numéricos"
		}
	}
	if dataNascimento == "" {
		return "data_nascimento é obrigatória"
	}
	if _, err := dto.ParseDate(dataNascimento); err != nil {
		return "data_nascimento deve estar no formato YYYY-MM-DD"
	}
	if sexo != "" && !sexosValidos[sexo] {
		return "sexo deve ser M, F, Masculino ou Feminino"
	}
	if email != "" && !emailPattern.MatchString(email) {
		return "email em formato inválido"
	}
	return ""
}
