package metadomain

// Campaign é uma campanha retornada por {account_id}/campaigns.
// Orçamentos chegam como strings de centavos.
type Campaign struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Objective      string `json:"objective,omitempty"`
	Status         string `json:"status,omitempty"`
	DailyBudget    string `json:"daily_budget,omitempty"`
	LifetimeBudget string `json:"lifetime_budget,omitempty"`
	StartTime      string `json:"start_time,omitempty"`
	StopTime       string `json:"stop_time,omitempty"`
}

// AdSet é um conjunto de anúncios retornado por {campaign_id}/adsets
type AdSet struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Status           string         `json:"status,omitempty"`
	DailyBudget      string         `json:"daily_budget,omitempty"`
	LifetimeBudget   string         `json:"lifetime_budget,omitempty"`
	OptimizationGoal string         `json:"optimization_goal,omitempty"`
	BillingEvent     string         `json:"billing_event,omitempty"`
	StartTime        string         `json:"start_time,omitempty"`
	EndTime          string         `json:"end_time,omitempty"`
	Targeting        map[string]any `json:"targeting,omitempty"`
}

// CreativeRef é a referência resumida ao creative embutida em um anúncio
type CreativeRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Ad é um anúncio retornado por {adset_id}/ads
type Ad struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Status   string       `json:"status,omitempty"`
	Creative *CreativeRef `json:"creative,omitempty"`
}

// Creative é o payload criativo completo de um anúncio
type Creative struct {
	ID               string         `json:"id,omitempty"`
	Name             string         `json:"name,omitempty"`
	Title            string         `json:"title,omitempty"`
	Body             string         `json:"body,omitempty"`
	ImageURL         string         `json:"image_url,omitempty"`
	LinkURL          string         `json:"link_url,omitempty"`
	CallToActionType string         `json:"call_to_action_type,omitempty"`
	ObjectStorySpec  map[string]any `json:"object_story_spec,omitempty"`
	AssetFeedSpec    map[string]any `json:"asset_feed_spec,omitempty"`
}
