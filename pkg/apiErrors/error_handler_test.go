package apiErrors

import (
	"net"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/meta-ads-mcp/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Erro nulo produz mensagem de fallback",
			err:      nil,
			expected: "Unexpected error: normalizer invoked without an error",
		},
		{
			name:     "Erro de validação passa a mensagem sem alteração",
			err:      domain.NewValidationError("limit must be between 1 and 100"),
			expected: "limit must be between 1 and 100",
		},
		{
			name:     "Erro de validação embrulhado ainda é reconhecido",
			err:      errors.Wrap(domain.NewValidationError("adset_id is required"), "update budget"),
			expected: "adset_id is required",
		},
		{
			name:     "Mutação rejeitada identifica a operação",
			err:      domain.MutationRejectedError{Operation: "budget update"},
			expected: "Error: Meta did not confirm the budget update. Check the parameters and the object in Ads Manager.",
		},
		{
			name:     "Token ausente aponta a variável de ambiente",
			err:      ConfigurationError{EnvVar: "META_ACCESS_TOKEN"},
			expected: "Error: META_ACCESS_TOKEN not found. Set the environment variable with your Meta access token. See README.md for instructions on how to obtain one.",
		},
		{
			name: "400 com envelope completo monta todos os campos",
			err: UpstreamStatusError{
				StatusCode: http.StatusBadRequest,
				Detail: &UpstreamDetail{
					Message:        "Invalid parameter",
					Code:           100,
					Subcode:        1487888,
					ErrorUserTitle: "Budget Too Low",
					ErrorUserMsg:   "The budget must be at least $1.00",
					FBTraceID:      "AbCdEf123",
				},
			},
			expected: "Error: Invalid parameter\nCode: 100\nSubcode: 1487888\nTitle: Budget Too Low\nDetails: The budget must be at least $1.00\nTrace ID: AbCdEf123",
		},
		{
			name: "400 com envelope parcial omite campos ausentes",
			err: UpstreamStatusError{
				StatusCode: http.StatusBadRequest,
				Detail:     &UpstreamDetail{Message: "Invalid parameter", Code: 100},
			},
			expected: "Error: Invalid parameter\nCode: 100",
		},
		{
			name:     "400 sem envelope produz mensagem genérica",
			err:      UpstreamStatusError{StatusCode: http.StatusBadRequest},
			expected: "Error: invalid request. Check the provided parameters.",
		},
		{
			name:     "401 indica token inválido ou expirado",
			err:      UpstreamStatusError{StatusCode: http.StatusUnauthorized},
			expected: "Error: access token invalid or expired. Generate a new token and update META_ACCESS_TOKEN.",
		},
		{
			name:     "403 indica permissões insuficientes",
			err:      UpstreamStatusError{StatusCode: http.StatusForbidden},
			expected: "Error: insufficient permissions. Check that the token has the required permissions (ads_management, ads_read).",
		},
		{
			name:     "404 indica ID incorreto",
			err:      UpstreamStatusError{StatusCode: http.StatusNotFound},
			expected: "Error: resource not found. Check that the ID is correct.",
		},
		{
			name:     "429 indica rate limit",
			err:      UpstreamStatusError{StatusCode: http.StatusTooManyRequests},
			expected: "Error: rate limit reached. Wait a few minutes before retrying.",
		},
		{
			name:     "500 indica problema temporário com o status",
			err:      UpstreamStatusError{StatusCode: http.StatusInternalServerError},
			expected: "Error: temporary problem with Meta servers (status 500). Retry in a few minutes.",
		},
		{
			name:     "503 também cai na faixa de servidor",
			err:      UpstreamStatusError{StatusCode: http.StatusServiceUnavailable},
			expected: "Error: temporary problem with Meta servers (status 503). Retry in a few minutes.",
		},
		{
			name:     "Status fora das faixas conhecidas vira mensagem genérica",
			err:      UpstreamStatusError{StatusCode: http.StatusConflict},
			expected: "API error: status code 409",
		},
		{
			name:     "Timeout de transporte sugere reduzir a consulta",
			err:      TransportError{Timeout: true, Err: errors.New("context deadline exceeded")},
			expected: "Error: request timed out. Retry, or reduce the amount of data requested.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.err))
		})
	}
}

func TestNormalizeFallback(t *testing.T) {
	t.Run("Falha de conexão sem timeout cai no fallback", func(t *testing.T) {
		err := TransportError{Err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}}
		msg := Normalize(err)
		assert.Contains(t, msg, "Unexpected error:")
	})

	t.Run("Erro desconhecido exibe o tipo e a mensagem", func(t *testing.T) {
		msg := Normalize(errors.New("boom"))
		assert.Contains(t, msg, "Unexpected error:")
		assert.Contains(t, msg, "boom")
	})
}
