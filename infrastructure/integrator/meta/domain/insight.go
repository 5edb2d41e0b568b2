package metadomain

import "strconv"

// Action é um par tipo/valor de conversão da Insights API
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Insight é um registro de métricas da Insights API. Valores numéricos
// chegam como strings; campos de breakdown só aparecem quando a dimensão
// correspondente foi solicitada.
type Insight struct {
	Impressions       string   `json:"impressions,omitempty"`
	Clicks            string   `json:"clicks,omitempty"`
	Spend             string   `json:"spend,omitempty"`
	CPM               string   `json:"cpm,omitempty"`
	CPC               string   `json:"cpc,omitempty"`
	CTR               string   `json:"ctr,omitempty"`
	Reach             string   `json:"reach,omitempty"`
	Frequency         string   `json:"frequency,omitempty"`
	Actions           []Action `json:"actions,omitempty"`
	CostPerActionType []Action `json:"cost_per_action_type,omitempty"`
	ActionValues      []Action `json:"action_values,omitempty"`
	DateStart         string   `json:"date_start,omitempty"`
	DateStop          string   `json:"date_stop,omitempty"`

	// Dimensões de breakdown
	Age               string `json:"age,omitempty"`
	Gender            string `json:"gender,omitempty"`
	Country           string `json:"country,omitempty"`
	Region            string `json:"region,omitempty"`
	PublisherPlatform string `json:"publisher_platform,omitempty"`
	DevicePlatform    string `json:"device_platform,omitempty"`
}

// ClickCount interpreta o campo clicks para ordenação; valores malformados
// contam como zero
func (i Insight) ClickCount() int {
	n, err := strconv.Atoi(i.Clicks)
	if err != nil {
		return 0
	}
	return n
}

// TotalActions soma os valores de todas as conversões do registro
func (i Insight) TotalActions() int {
	total := 0
	for _, a := range i.Actions {
		if v, err := strconv.Atoi(a.Value); err == nil {
			total += v
		}
	}
	return total
}
