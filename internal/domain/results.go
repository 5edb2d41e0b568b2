package domain

// TargetingUpdate é o resultado de uma atualização demográfica aplicada.
// Targeting é o mapa completo enviado à API, já com a mesclagem feita.
type TargetingUpdate struct {
	AdSetID   string         `json:"adset_id"`
	AdSetName string         `json:"adset_name"`
	Targeting map[string]any `json:"targeting"`
}

// BudgetUpdate é o resultado de uma troca de orçamento diário. O orçamento
// anterior vem como string em centavos, do jeito que a API devolve.
type BudgetUpdate struct {
	AdSetID             string `json:"adset_id"`
	AdSetName           string `json:"adset_name"`
	PreviousDailyBudget string `json:"previous_daily_budget"`
	NewDailyBudget      int    `json:"new_daily_budget"`
	Status              string `json:"status"`
}

// StatusUpdate é o resultado de uma ativação ou pausa. Changed falso
// significa que o estado pedido já estava aplicado e nenhuma escrita foi
// feita.
type StatusUpdate struct {
	AdSetID        string `json:"adset_id"`
	AdSetName      string `json:"adset_name"`
	PreviousStatus string `json:"previous_status"`
	NewStatus      string `json:"new_status"`
	Changed        bool   `json:"changed"`
	DailyBudget    string `json:"daily_budget,omitempty"`
}

// CreatedEntity identifica um objeto recém-criado na hierarquia
type CreatedEntity struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id,omitempty"`
}
