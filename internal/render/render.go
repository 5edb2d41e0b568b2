// Package render monta as respostas textuais dos tools, em markdown ou
// JSON. Só o markdown é truncado; o JSON sai inteiro.
package render

import (
	"fmt"
	"strconv"
)

// CharacterLimit é o teto de caracteres de uma resposta markdown
const CharacterLimit = 25000

const truncationNotice = "\n\n⚠️ **Response truncated** - Showing the first 25000 characters of the full data. Use filter or pagination parameters to see more results."

// FormatCurrency converte um valor em centavos (como string, do jeito que a
// API devolve) para o formato monetário. Valores ilegíveis voltam crus.
func FormatCurrency(amount string) string {
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return fmt.Sprintf("%s (raw)", amount)
	}
	return fmt.Sprintf("%.2f EUR", value/100)
}

// FormatCents formata um valor em centavos já numérico
func FormatCents(cents int) string {
	return fmt.Sprintf("%.2f EUR", float64(cents)/100)
}

func FormatPercentage(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

// Truncate corta o conteúdo no limite e anexa o aviso fixo. Conteúdo dentro
// do limite volta intacto.
func Truncate(content string) string {
	if len(content) <= CharacterLimit {
		return content
	}
	return content[:CharacterLimit] + truncationNotice
}

// percentageFromString interpreta a CTR que a API devolve como string
func percentageFromString(value string) string {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		parsed = 0
	}
	return FormatPercentage(parsed)
}

// intFromAny interpreta um número vindo de um mapa JSON, onde inteiros
// podem chegar como float64
func intFromAny(v any, fallback int) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case string:
		if parsed, err := strconv.Atoi(n); err == nil {
			return parsed
		}
	}
	return fallback
}
