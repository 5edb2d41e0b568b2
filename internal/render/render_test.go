package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{
			name:     "Centavos são convertidos para a unidade monetária",
			amount:   "12345",
			expected: "123.45 EUR",
		},
		{
			name:     "Zero é formatado com duas casas",
			amount:   "0",
			expected: "0.00 EUR",
		},
		{
			name:     "Valor decimal da API é aceito",
			amount:   "1050.25",
			expected: "10.50 EUR",
		},
		{
			name:     "Valor ilegível volta cru com marcador",
			amount:   "n/a",
			expected: "n/a (raw)",
		},
		{
			name:     "String vazia volta crua com marcador",
			amount:   "",
			expected: " (raw)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.amount))
		})
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "50.00 EUR", FormatCents(5000))
	assert.Equal(t, "0.99 EUR", FormatCents(99))
	assert.Equal(t, "-1.00 EUR", FormatCents(-100))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "2.50%", FormatPercentage(2.5))
	assert.Equal(t, "0.00%", FormatPercentage(0))
}

func TestTruncate(t *testing.T) {
	t.Run("Conteúdo dentro do limite volta intacto", func(t *testing.T) {
		content := strings.Repeat("a", CharacterLimit)
		assert.Equal(t, content, Truncate(content))
	})

	t.Run("Conteúdo acima do limite é cortado com o aviso", func(t *testing.T) {
		content := strings.Repeat("a", CharacterLimit+1)
		result := Truncate(content)

		assert.True(t, strings.HasPrefix(result, strings.Repeat("a", CharacterLimit)))
		assert.True(t, strings.HasSuffix(result, truncationNotice))
		assert.Equal(t, CharacterLimit+len(truncationNotice), len(result))
	})

	t.Run("Conteúdo vazio volta vazio", func(t *testing.T) {
		assert.Equal(t, "", Truncate(""))
	})
}

func TestIntFromAny(t *testing.T) {
	assert.Equal(t, 25, intFromAny(25, 0))
	assert.Equal(t, 25, intFromAny(float64(25), 0))
	assert.Equal(t, 25, intFromAny("25", 0))
	assert.Equal(t, 18, intFromAny("abc", 18))
	assert.Equal(t, 18, intFromAny(nil, 18))
}

func TestGenderSummary(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{
			name:     "Lista vazia significa todos",
			value:    []int{},
			expected: "All",
		},
		{
			name:     "Valor ausente significa todos",
			value:    nil,
			expected: "All",
		},
		{
			name:     "Somente homens",
			value:    []int{1},
			expected: "Men",
		},
		{
			name:     "Homens e mulheres",
			value:    []int{1, 2},
			expected: "Men, Women",
		},
		{
			name:     "Lista vinda de JSON decodificado usa float64",
			value:    []any{float64(2)},
			expected: "Women",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, genderSummary(tt.value))
		})
	}
}
