package cpf

import "unicode"

// IsValid verifica se um CPF (com ou sem pontos/traço) possui dígitos
// verificadores corretos segundo o algoritmo módulo 11 da Receita Federal.
// cpf pode ser "111.444.777-35" ou "11144477735".
//
// Sequências com todos os dígitos iguais ("00000000000", "11111111111", ...)
// são rejeitadas mesmo quando o checksum fecharia: são valores de preenchimento
// comuns e nunca correspondem a documentos reais.
func IsValid(cpf string) bool {
	digits := extractDigits(cpf)
	if len(digits) != 11 {
		return false
	}
	if allEqual(digits) {
		return false
	}

	// Primeiro dígito verificador: pesos 10..2 sobre os 9 primeiros dígitos.
	var sum int
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * (10 - i)
	}
	if digits[9] != expectedDigit(sum) {
		return false
	}

	// Segundo dígito verificador: pesos 11..2 sobre os 10 primeiros dígitos,
	// incluindo o primeiro dígito verificador já validado.
	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * (11 - i)
	}
	return digits[10] == expectedDigit(sum)
}

// expectedDigit aplica a regra do módulo 11: resto < 2 resulta em 0,
// caso contrário 11 - resto.
func expectedDigit(sum int) byte {
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

func allEqual(digits []byte) bool {
	for _, d := range digits {
		if d != digits[0] {
			return false
		}
	}
	return true
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
