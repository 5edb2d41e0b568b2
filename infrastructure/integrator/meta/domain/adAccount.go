package metadomain

// Business é a referência ao business manager dono de uma conta
type Business struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// AdAccount é uma conta de anúncios retornada por me/adaccounts
type AdAccount struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Currency      string    `json:"currency,omitempty"`
	AccountStatus int       `json:"account_status,omitempty"`
	TimezoneName  string    `json:"timezone_name,omitempty"`
	Business      *Business `json:"business,omitempty"`
}

// StatusLabel converte o código numérico de status da conta para texto
func (a AdAccount) StatusLabel() string {
	switch a.AccountStatus {
	case 1:
		return "ACTIVE"
	case 2:
		return "DISABLED"
	case 3:
		return "UNSETTLED"
	default:
		return "UNKNOWN"
	}
}
