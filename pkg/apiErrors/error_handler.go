package apiErrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/vfg2006/meta-ads-mcp/internal/domain"
)

// ConfigurationError indica credencial ausente na configuração do processo
type ConfigurationError struct {
	EnvVar string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("%s not set", e.EnvVar)
}

// TransportError indica falha antes de uma resposta HTTP: timeout ou erro
// de conexão
type TransportError struct {
	Timeout bool
	Err     error
}

func (e TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request timeout: %v", e.Err)
	}
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e TransportError) Unwrap() error {
	return e.Err
}

// UpstreamDetail são os campos do envelope de erro da Graph API relevantes
// para o chamador. Cada campo só é exibido quando presente.
type UpstreamDetail struct {
	Message        string
	Code           int
	Subcode        int
	ErrorUserTitle string
	ErrorUserMsg   string
	FBTraceID      string
}

// UpstreamStatusError indica uma resposta HTTP não-2xx do upstream
type UpstreamStatusError struct {
	StatusCode int
	Detail     *UpstreamDetail
}

func (e UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// Normalize converte qualquer falha de validação ou de gateway em uma única
// mensagem legível, sem vazar a credencial. Nunca retorna vazio e nunca
// gera pânico: é a última linha de defesa antes do chamador.
func Normalize(err error) string {
	if err == nil {
		return "Unexpected error: normalizer invoked without an error"
	}

	var validationErr domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	var rejectedErr domain.MutationRejectedError
	if errors.As(err, &rejectedErr) {
		return fmt.Sprintf("Error: Meta did not confirm the %s. Check the parameters and the object in Ads Manager.", rejectedErr.Operation)
	}

	var configErr ConfigurationError
	if errors.As(err, &configErr) {
		return fmt.Sprintf("Error: %s not found. Set the environment variable with your Meta access token. See README.md for instructions on how to obtain one.", configErr.EnvVar)
	}

	var statusErr UpstreamStatusError
	if errors.As(err, &statusErr) {
		return normalizeStatus(statusErr)
	}

	var transportErr TransportError
	if errors.As(err, &transportErr) && transportErr.Timeout {
		return "Error: request timed out. Retry, or reduce the amount of data requested."
	}

	return fmt.Sprintf("Unexpected error: %T - %v", err, err)
}

func normalizeStatus(err UpstreamStatusError) string {
	switch {
	case err.StatusCode == http.StatusBadRequest:
		return normalizeBadRequest(err.Detail)
	case err.StatusCode == http.StatusUnauthorized:
		return "Error: access token invalid or expired. Generate a new token and update META_ACCESS_TOKEN."
	case err.StatusCode == http.StatusForbidden:
		return "Error: insufficient permissions. Check that the token has the required permissions (ads_management, ads_read)."
	case err.StatusCode == http.StatusNotFound:
		return "Error: resource not found. Check that the ID is correct."
	case err.StatusCode == http.StatusTooManyRequests:
		return "Error: rate limit reached. Wait a few minutes before retrying."
	case err.StatusCode >= http.StatusInternalServerError:
		return fmt.Sprintf("Error: temporary problem with Meta servers (status %d). Retry in a few minutes.", err.StatusCode)
	default:
		return fmt.Sprintf("API error: status code %d", err.StatusCode)
	}
}

// normalizeBadRequest monta a mensagem de 400 com os campos do envelope de
// erro, cada um incluído apenas quando presente
func normalizeBadRequest(detail *UpstreamDetail) string {
	if detail == nil || detail.Message == "" {
		return "Error: invalid request. Check the provided parameters."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s", detail.Message)
	if detail.Code != 0 {
		fmt.Fprintf(&b, "\nCode: %d", detail.Code)
	}
	if detail.Subcode != 0 {
		fmt.Fprintf(&b, "\nSubcode: %d", detail.Subcode)
	}
	if detail.ErrorUserTitle != "" {
		fmt.Fprintf(&b, "\nTitle: %s", detail.ErrorUserTitle)
	}
	if detail.ErrorUserMsg != "" {
		fmt.Fprintf(&b, "\nDetails: %s", detail.ErrorUserMsg)
	}
	if detail.FBTraceID != "" {
		fmt.Fprintf(&b, "\nTrace ID: %s", detail.FBTraceID)
	}
	return b.String()
}
