package domain

import (
	"fmt"
	"strings"

	"github.com/vfg2006/meta-ads-mcp/pkg/utils"
)

// Limites aplicados na validação de entrada. Espelham os limites aceitos
// pela Marketing API.
const (
	LimitMin     = 1
	LimitMax     = 100
	DefaultLimit = 25

	AgeLowerBound = 18
	AgeUpperBound = 65

	// Orçamentos em centavos
	BudgetMin = 100

	NameMaxLength = 400

	MaxBreakdowns = 4

	TimeIncrementMin = 1
	TimeIncrementMax = 90
)

const accountPrefix = "act_"

// EnsureAccountPrefix normaliza um ID de conta para o formato act_XXXX.
// É idempotente: um ID já prefixado não é alterado.
func EnsureAccountPrefix(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return id
	}
	if !strings.HasPrefix(id, accountPrefix) {
		return accountPrefix + id
	}
	return id
}

func validateLimit(limit *int) error {
	if limit == nil {
		return nil
	}
	if *limit < LimitMin || *limit > LimitMax {
		return NewValidationError(fmt.Sprintf("limit must be between %d and %d", LimitMin, LimitMax))
	}
	return nil
}

func limitOrDefault(limit *int) int {
	if limit == nil {
		return DefaultLimit
	}
	return *limit
}

func validateResponseFormat(format ResponseFormat) error {
	if !format.IsValid() {
		return invalidEnumError("response_format", format)
	}
	return nil
}

// validateDateRange aplica a invariante de completude: since e until devem
// vir juntos ou não vir. Datas presentes precisam estar em YYYY-MM-DD.
func validateDateRange(since, until string) error {
	if (since == "") != (until == "") {
		return NewValidationError("if you use custom dates, you must specify both 'since' and 'until'")
	}
	if since != "" {
		if _, err := utils.ParseDate(since); err != nil {
			return NewValidationError(fmt.Sprintf("'since' must be a date in YYYY-MM-DD format, got %q", since))
		}
		if _, err := utils.ParseDate(until); err != nil {
			return NewValidationError(fmt.Sprintf("'until' must be a date in YYYY-MM-DD format, got %q", until))
		}
	}
	return nil
}

func validateAge(field string, age *int) error {
	if age == nil {
		return nil
	}
	if *age < AgeLowerBound || *age > AgeUpperBound {
		return NewValidationError(fmt.Sprintf("%s must be between %d and %d", field, AgeLowerBound, AgeUpperBound))
	}
	return nil
}

func validateBudget(field string, budget *int) error {
	if budget == nil {
		return nil
	}
	if *budget < BudgetMin {
		return NewValidationError(fmt.Sprintf("%s must be at least %d cents", field, BudgetMin))
	}
	return nil
}

func validateGenders(genders []int) error {
	for _, g := range genders {
		if g != 1 && g != 2 {
			return NewValidationError("gender values must be 1 (men) or 2 (women)")
		}
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return NewValidationError("name is required")
	}
	if len(name) > NameMaxLength {
		return NewValidationError(fmt.Sprintf("name must be at most %d characters", NameMaxLength))
	}
	return nil
}

// ListAccountsInput são os parâmetros do tool de listagem de contas
type ListAccountsInput struct {
	Limit          *int           `json:"limit,omitempty"`
	ResponseFormat ResponseFormat `json:"response_format,omitempty"`
}

func (in *ListAccountsInput) Validate() error {
	if in.ResponseFormat == "" {
		in.ResponseFormat = FormatMarkdown
	}
	if err := validateLimit(in.Limit); err != nil {
		return err
	}
	return validateResponseFormat(in.ResponseFormat)
}

func (in *ListAccountsInput) EffectiveLimit() int {
	return limitOrDefault(in.Limit)
}

// ListCampaignsInput são os parâmetros da listagem de campanhas de uma conta
type ListCampaignsInput struct {
	AccountID      string         `json:"account_id"`
	Limit          *int           `json:"limit,omitempty"`
	ResponseFormat ResponseFormat `json:"response_format,omitempty"`
}

func (in *ListCampaignsInput) Validate() error {
	in.AccountID = EnsureAccountPrefix(in.AccountID)
	if in.ResponseFormat == "" {
		in.ResponseFormat = FormatMarkdown
	}

	if in.AccountID == "" {
		return NewValidationError("account_id is required")
	}
	if err := validateLimit(in.Limit); err != nil {
		return err
	}
	return validateResponseFormat(in.ResponseFormat)
}

func (in *ListCampaignsInput) EffectiveLimit() int {
	return limitOrDefault(in.Limit)
}

// ListAdSetsInput são os parâmetros da listagem de ad sets de uma campanha
type ListAdSetsInput struct {
	CampaignID     string         `json:"campaign_id"`
	Limit          *int           `json:"limit,omitempty"`
	ResponseFormat ResponseFormat `json:"response_format,omitempty"`
}

func (in *ListAdSetsInput) Validate() error {
	in.CampaignID = strings.TrimSpace(in.CampaignID)
	if in.ResponseFormat == "" {
		in.ResponseFormat = FormatMarkdown
	}

	if in.CampaignID == "" {
		return NewValidationError("campaign_id is required")
	}
	if err := validateLimit(in.Limit); err != nil {
		return err
	}
	return validateResponseFormat(in.ResponseFormat)
}

func (in *ListAdSetsInput) EffectiveLimit() int {
	return limitOrDefault(in.Limit)
}

// ListAdsInput são os parâmetros da listagem de anúncios de um ad set
type ListAdsInput struct {
	AdSetID        string         `json:"adset_id"`
	Limit          *int           `json:"limit,omitempty"`
	ResponseFormat ResponseFormat `json:"response_format,omitempty"`
}

func (in *ListAdsInput) Validate() error {
	in.AdSetID = strings.TrimSpace(in.AdSetID)
	if in.ResponseFormat == "" {
		in.ResponseFormat = FormatMarkdown
	}

	if in.AdSetID == "" {
		return NewValidationError("adset_id is required")
	}
	if err := validateLimit(in.Limit); err != nil {
		return err
	}
	return validateResponseFormat(in.ResponseFormat)
}

func (in *ListAdsInput) EffectiveLimit() int {
	return limitOrDefault(in.Limit)
}

// GetInsightsInput são os parâmetros de consulta de métricas de performance
type GetInsightsInput struct {
	ObjectID       string         `json:"object_id"`
	Level          InsightLevel   `json:"level,omitempty"`
	DatePreset     DatePreset     `json:"date_preset,omitempty"`
	Since          string         `json:"since,omitempty"`
	Until          string         `json:"until,omitempty"`
	TimeIncrement  *int           `json:"time_increment,omitempty"`
	ResponseFormat ResponseFormat `json:"response_format,omitempty"`
}

func (in *GetInsightsInput) Validate() error {
	in.ObjectID = strings.TrimSpace(in.ObjectID)
	in.Since = strings.TrimSpace(in.Since)
	in.Until = strings.TrimSpace(in.Until)
	if in.Level == "" {
		in.Level = LevelAccount
	}
	if in.DatePreset == "" {
		in.DatePreset = PresetLast30D
	}
	if in.ResponseFormat == "" {
		in.ResponseFormat = FormatMarkdown
	}

	if in.ObjectID == "" {
		return NewValidationError("object_id is required")
	}
	if !in.Level.IsValid() {
		return invalidEnumError("level", in.Level)
	}
	if !in.DatePreset.IsValid() {
		return invalidEnumError("date_preset", in.DatePreset)
	}
	if in.TimeIncrement != nil && (*in.TimeIncrement < TimeIncrementMin || *in.TimeIncrement > TimeIncrementMax) {
		return NewValidationError(fmt.Sprintf("time_increment must be between %d and %d", TimeIncrementMin, TimeIncrementMax))
	}
	if err := validateDateRange(in.Since, in.Until); err != nil {
		return err
	}
	return validateResponseFormat(in.ResponseFormat)
}

// HasCustomRange indica se o intervalo explícito deve prevalecer sobre o preset
func (in *GetInsightsInput) HasCustomRange() bool {
	return in.Since != "" && in.Until != ""
}

// PeriodLabel descreve o período consultado para exibição
func (in *GetInsightsInput) PeriodLabel() string {
	if in.HasCustomRange() {
		return fmt.Sprintf("%s - %s", in.Since, in.Until)
	}
	return string(in.DatePreset)
}

// GetCreativeInput são os parâmetros da consulta do creative de um anúncio
type GetCreativeInput struct {
	AdID           string         `json:"ad_id"`
	ResponseFormat ResponseFormat `json:"response_format,omitempty"`
}

func (in *GetCreativeInput) Validate() error {
	in.AdID = strings.TrimSpace(in.AdID)
	if in.ResponseFormat == "" {
		in.ResponseFormat = FormatMarkdown
	}

	if in.AdID == "" {
		return NewValidationError("ad_id is required")
	}
	return validateResponseFormat(in.ResponseFormat)
}

// GenerateReportInput são os parâmetros de geração de relatório com breakdowns
type GenerateReportInput struct {
	ObjectID       string          `json:"object_id"`
	Breakdowns     []BreakdownType `json:"breakdowns,omitempty"`
	DatePreset     DatePreset      `json:"date_preset,omitempty"`
	Since          string          `json:"since,omitempty"`
	Until          string          `json:"until,omitempty"`
	ResponseFormat ResponseFormat  `json:"response_format,omitempty"`
}

func (in *GenerateReportInput) Validate() error {
	in.ObjectID = strings.TrimSpace(in.ObjectID)
	in.Since = strings.TrimSpace(in.Since)
	in.Until = strings.TrimSpace(in.Until)
	if len(in.Breakdowns) == 0 {
		in.Breakdowns = []BreakdownType{BreakdownAge}
	}
	if in.DatePreset == "" {
		in.DatePreset = PresetLast30D
	}
	if in.ResponseFormat == "" {
		in.ResponseFormat = FormatMarkdown
	}

	if in.ObjectID == "" {
		return NewValidationError("object_id is required")
	}
	if len(in.Breakdowns) > MaxBreakdowns {
		return NewValidationError(fmt.Sprintf("you can specify at most %d breakdowns", MaxBreakdowns))
	}
	for _, b := range in.Breakdowns {
		if !b.IsValid() {
			return invalidEnumError("breakdowns", b)
		}
	}
	if !in.DatePreset.IsValid() {
		return invalidEnumError("date_preset", in.DatePreset)
	}
	if err := validateDateRange(in.Since, in.Until); err != nil {
		return err
	}
	return validateResponseFormat(in.ResponseFormat)
}

func (in *GenerateReportInput) HasCustomRange() bool {
	return in.Since != "" && in.Until != ""
}

func (in *GenerateReportInput) PeriodLabel() string {
	if in.HasCustomRange() {
		return fmt.Sprintf("%s - %s", in.Since, in.Until)
	}
	return string(in.DatePreset)
}

// UpdateAdSetTargetingInput são os parâmetros de atualização demográfica de
// um ad set. Genders nulo ou vazio significa "todos os gêneros" (remove o
// filtro existente).
type UpdateAdSetTargetingInput struct {
	AdSetID        string         `json:"adset_id"`
	AgeMin         *int           `json:"age_min,omitempty"`
	AgeMax         *int           `json:"age_max,omitempty"`
	Genders        []int          `json:"genders,omitempty"`
	ResponseFormat ResponseFormat `json:"response_format,omitempty"`
}

func (in *UpdateAdSetTargetingInput) Validate() error {
	in.AdSetID = strings.TrimSpace(in.AdSetID)
	if in.ResponseFormat == "" {
		in.ResponseFormat = FormatMarkdown
	}

	if in.AdSetID == "" {
		return NewValidationError("adset_id is required")
	}
	if err := validateAge("age_min", in.AgeMin); err != nil {
		return err
	}
	if err := validateAge("age_max", in.AgeMax); err != nil {
		return err
	}
	if err := validateGenders(in.Genders); err != nil {
		return err
	}
	if in.AgeMin != nil && in.AgeMax != nil && *in.AgeMax < *in.AgeMin {
		return NewValidationError("age_max must be greater than or equal to age_min")
	}
	return validateResponseFormat(in.ResponseFormat)
}

// UpdateAdSetBudgetInput são os parâmetros de atualização do orçamento diário
type UpdateAdSetBudgetInput struct {
	AdSetID        string         `json:"adset_id"`
	DailyBudget    int            `json:"daily_budget"`
	ResponseFormat ResponseFormat `json:"response_format,omitempty"`
}

func (in *UpdateAdSetBudgetInput) Validate() error {
	in.AdSetID = strings.TrimSpace(in.AdSetID)
	if in.ResponseFormat == "" {
		in.ResponseFormat = FormatMarkdown
	}

	if in.AdSetID == "" {
		return NewValidationError("adset_id is required")
	}
	if in.DailyBudget < BudgetMin {
		return NewValidationError(fmt.Sprintf("daily_budget must be at least %d cents", BudgetMin))
	}
	return validateResponseFormat(in.ResponseFormat)
}

// UpdateAdSetStatusInput são os parâmetros de ativação/pausa de um ad set
type UpdateAdSetStatusInput struct {
	AdSetID        string         `json:"adset_id"`
	Status         EntityStatus   `json:"status"`
	ResponseFormat ResponseFormat `json:"response_format,omitempty"`
}

func (in *UpdateAdSetStatusInput) Validate() error {
	in.AdSetID = strings.TrimSpace(in.AdSetID)
	if in.ResponseFormat == "" {
		in.ResponseFormat = FormatMarkdown
	}

	if in.AdSetID == "" {
		return NewValidationError("adset_id is required")
	}
	if !in.Status.IsValid() {
		return invalidEnumError("status", in.Status)
	}
	return validateResponseFormat(in.ResponseFormat)
}

// CreateCampaignInput são os parâmetros de criação de uma campanha
type CreateCampaignInput struct {
	AccountID           string            `json:"account_id"`
	Name                string            `json:"name"`
	Objective           CampaignObjective `json:"objective"`
	Status              EntityStatus      `json:"status,omitempty"`
	DailyBudget         *int              `json:"daily_budget,omitempty"`
	LifetimeBudget      *int              `json:"lifetime_budget,omitempty"`
	SpecialAdCategories []string          `json:"special_ad_categories,omitempty"`
	ResponseFormat      ResponseFormat    `json:"response_format,omitempty"`
}

func (in *CreateCampaignInput) Validate() error {
	in.AccountID = EnsureAccountPrefix(in.AccountID)
	in.Name = strings.TrimSpace(in.Name)
	if in.Status == "" {
		// PAUSED por padrão: a campanha só entra em leilão após revisão
		in.Status = StatusPaused
	}
	if len(in.SpecialAdCategories) == 0 {
		in.SpecialAdCategories = []string{"NONE"}
	}
	if in.ResponseFormat == "" {
		in.ResponseFormat = FormatMarkdown
	}

	if in.AccountID == "" {
		return NewValidationError("account_id is required")
	}
	if err := validateName(in.Name); err != nil {
		return err
	}
	if !in.Objective.IsValid() {
		return invalidEnumError("objective", in.Objective)
	}
	if !in.Status.IsValid() {
		return invalidEnumError("status", in.Status)
	}
	if err := validateBudget("daily_budget", in.DailyBudget); err != nil {
		return err
	}
	if err := validateBudget("lifetime_budget", in.LifetimeBudget); err != nil {
		return err
	}
	if in.DailyBudget == nil && in.LifetimeBudget == nil {
		return NewValidationError("you must specify either daily_budget or lifetime_budget")
	}
	if in.DailyBudget != nil && in.LifetimeBudget != nil {
		return NewValidationError("you cannot specify both daily_budget and lifetime_budget")
	}
	return validateResponseFormat(in.ResponseFormat)
}

// CreateAdSetInput são os parâmetros de criação de um ad set
type CreateAdSetInput struct {
	CampaignID       string           `json:"campaign_id"`
	Name             string           `json:"name"`
	OptimizationGoal OptimizationGoal `json:"optimization_goal"`
	BillingEvent     BillingEvent     `json:"billing_event"`
	BidAmount        *int             `json:"bid_amount,omitempty"`
	DailyBudget      *int             `json:"daily_budget,omitempty"`
	LifetimeBudget   *int             `json:"lifetime_budget,omitempty"`
	Targeting        map[string]any   `json:"targeting"`
	StartTime        string           `json:"start_time,omitempty"`
	EndTime          string           `json:"end_time,omitempty"`
	Status           EntityStatus     `json:"status,omitempty"`
	ResponseFormat   ResponseFormat   `json:"response_format,omitempty"`
}

func (in *CreateAdSetInput) Validate() error {
	in.CampaignID = strings.TrimSpace(in.CampaignID)
	in.Name = strings.TrimSpace(in.Name)
	in.StartTime = strings.TrimSpace(in.StartTime)
	in.EndTime = strings.TrimSpace(in.EndTime)
	if in.Status == "" {
		in.Status = StatusPaused
	}
	if in.ResponseFormat == "" {
		in.ResponseFormat = FormatMarkdown
	}

	if in.CampaignID == "" {
		return NewValidationError("campaign_id is required")
	}
	if err := validateName(in.Name); err != nil {
		return err
	}
	if !in.OptimizationGoal.IsValid() {
		return invalidEnumError("optimization_goal", in.OptimizationGoal)
	}
	if !in.BillingEvent.IsValid() {
		return invalidEnumError("billing_event", in.BillingEvent)
	}
	if in.BidAmount != nil && *in.BidAmount < 1 {
		return NewValidationError("bid_amount must be at least 1 cent")
	}
	if err := validateBudget("daily_budget", in.DailyBudget); err != nil {
		return err
	}
	if err := validateBudget("lifetime_budget", in.LifetimeBudget); err != nil {
		return err
	}
	if in.DailyBudget != nil && in.LifetimeBudget != nil {
		return NewValidationError("you cannot specify both daily_budget and lifetime_budget")
	}
	if !in.Status.IsValid() {
		return invalidEnumError("status", in.Status)
	}
	if err := ValidateTargeting(in.Targeting); err != nil {
		return err
	}
	return validateResponseFormat(in.ResponseFormat)
}

// ValidateTargeting verifica as chaves obrigatórias do mapa de targeting.
// O restante do mapa é repassado à API sem interpretação.
func ValidateTargeting(targeting map[string]any) error {
	if targeting == nil {
		return NewValidationError("targeting is required")
	}
	if _, ok := targeting["geo_locations"]; !ok {
		return NewValidationError("targeting must include 'geo_locations' with countries, regions or cities")
	}

	auto, ok := targeting["targeting_automation"]
	if !ok {
		return NewValidationError("targeting must include 'targeting_automation' with advantage_audience (0 or 1)")
	}
	autoMap, ok := auto.(map[string]any)
	if !ok {
		return NewValidationError("'targeting_automation' must be an object with advantage_audience (0 or 1)")
	}
	if _, ok := autoMap["advantage_audience"]; !ok {
		return NewValidationError("targeting_automation must include 'advantage_audience' (0=disabled, 1=enabled)")
	}
	return nil
}
