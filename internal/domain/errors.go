package domain

import "fmt"

// ValidationError indica entrada malformada ou contraditória, detectada
// antes de qualquer chamada de rede. A mensagem é mostrada ao chamador
// exatamente como está.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) ValidationError {
	return ValidationError{Message: message}
}

// MutationRejectedError indica que a Graph API aceitou a requisição de
// escrita mas respondeu com success=false. A ausência do campo success não
// é rejeição.
type MutationRejectedError struct {
	Operation string
}

func (e MutationRejectedError) Error() string {
	return fmt.Sprintf("%s rejected by the API", e.Operation)
}
