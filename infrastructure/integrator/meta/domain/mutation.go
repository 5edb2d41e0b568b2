package metadomain

// MutationResult é a resposta de uma operação de escrita da Graph API.
// Criações retornam um id; atualizações retornam um flag success. Os dois
// sinais são independentes do status HTTP: uma resposta 2xx ainda pode
// carregar success=false (rejeição de domínio).
type MutationResult struct {
	ID      string `json:"id,omitempty"`
	Success *bool  `json:"success,omitempty"`
}

// Rejected indica rejeição explícita de domínio pelo upstream. A ausência
// do flag não é tratada como falha: só success=false rejeita.
func (m MutationResult) Rejected() bool {
	return m.Success != nil && !*m.Success
}
