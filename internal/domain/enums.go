package domain

import (
	"fmt"
	"strings"
)

// ResponseFormat define o formato de saída de um tool
type ResponseFormat string

const (
	FormatMarkdown ResponseFormat = "markdown"
	FormatJSON     ResponseFormat = "json"
)

func (f ResponseFormat) IsValid() bool {
	return f == FormatMarkdown || f == FormatJSON
}

// DatePreset é um período relativo aceito pela Insights API
type DatePreset string

const (
	PresetToday       DatePreset = "today"
	PresetYesterday   DatePreset = "yesterday"
	PresetLast3D      DatePreset = "last_3d"
	PresetLast7D      DatePreset = "last_7d"
	PresetLast14D     DatePreset = "last_14d"
	PresetLast30D     DatePreset = "last_30d"
	PresetLast90D     DatePreset = "last_90d"
	PresetThisMonth   DatePreset = "this_month"
	PresetLastMonth   DatePreset = "last_month"
	PresetThisQuarter DatePreset = "this_quarter"
	PresetLifetime    DatePreset = "lifetime"
)

var datePresets = map[DatePreset]struct{}{
	PresetToday:       {},
	PresetYesterday:   {},
	PresetLast3D:      {},
	PresetLast7D:      {},
	PresetLast14D:     {},
	PresetLast30D:     {},
	PresetLast90D:     {},
	PresetThisMonth:   {},
	PresetLastMonth:   {},
	PresetThisQuarter: {},
	PresetLifetime:    {},
}

func (p DatePreset) IsValid() bool {
	_, ok := datePresets[p]
	return ok
}

// BreakdownType é uma dimensão de segmentação de relatórios
type BreakdownType string

const (
	BreakdownAge            BreakdownType = "age"
	BreakdownGender         BreakdownType = "gender"
	BreakdownCountry        BreakdownType = "country"
	BreakdownRegion         BreakdownType = "region"
	BreakdownPlacement      BreakdownType = "publisher_platform"
	BreakdownDevicePlatform BreakdownType = "device_platform"
	BreakdownAgeGender      BreakdownType = "age,gender"
)

var breakdownTypes = map[BreakdownType]struct{}{
	BreakdownAge:            {},
	BreakdownGender:         {},
	BreakdownCountry:        {},
	BreakdownRegion:         {},
	BreakdownPlacement:      {},
	BreakdownDevicePlatform: {},
	BreakdownAgeGender:      {},
}

func (b BreakdownType) IsValid() bool {
	_, ok := breakdownTypes[b]
	return ok
}

// CampaignObjective é o objetivo de uma campanha (família OUTCOME_*)
type CampaignObjective string

const (
	ObjectiveAwareness    CampaignObjective = "OUTCOME_AWARENESS"
	ObjectiveEngagement   CampaignObjective = "OUTCOME_ENGAGEMENT"
	ObjectiveLeads        CampaignObjective = "OUTCOME_LEADS"
	ObjectiveSales        CampaignObjective = "OUTCOME_SALES"
	ObjectiveTraffic      CampaignObjective = "OUTCOME_TRAFFIC"
	ObjectiveAppPromotion CampaignObjective = "OUTCOME_APP_PROMOTION"
)

var campaignObjectives = map[CampaignObjective]struct{}{
	ObjectiveAwareness:    {},
	ObjectiveEngagement:   {},
	ObjectiveLeads:        {},
	ObjectiveSales:        {},
	ObjectiveTraffic:      {},
	ObjectiveAppPromotion: {},
}

func (o CampaignObjective) IsValid() bool {
	_, ok := campaignObjectives[o]
	return ok
}

// EntityStatus cobre campanhas e ad sets: a Graph API aceita os mesmos dois
// valores para criação e alteração de estado
type EntityStatus string

const (
	StatusActive EntityStatus = "ACTIVE"
	StatusPaused EntityStatus = "PAUSED"
)

func (s EntityStatus) IsValid() bool {
	return s == StatusActive || s == StatusPaused
}

// OptimizationGoal é o objetivo de otimização de um ad set
type OptimizationGoal string

const (
	GoalReach              OptimizationGoal = "REACH"
	GoalImpressions        OptimizationGoal = "IMPRESSIONS"
	GoalLinkClicks         OptimizationGoal = "LINK_CLICKS"
	GoalLandingPageViews   OptimizationGoal = "LANDING_PAGE_VIEWS"
	GoalOffsiteConversions OptimizationGoal = "OFFSITE_CONVERSIONS"
	GoalQualityLead        OptimizationGoal = "QUALITY_LEAD"
	GoalValue              OptimizationGoal = "VALUE"
	GoalThruplay           OptimizationGoal = "THRUPLAY"
)

var optimizationGoals = map[OptimizationGoal]struct{}{
	GoalReach:              {},
	GoalImpressions:        {},
	GoalLinkClicks:         {},
	GoalLandingPageViews:   {},
	GoalOffsiteConversions: {},
	GoalQualityLead:        {},
	GoalValue:              {},
	GoalThruplay:           {},
}

func (g OptimizationGoal) IsValid() bool {
	_, ok := optimizationGoals[g]
	return ok
}

// BillingEvent é o evento de cobrança de um ad set
type BillingEvent string

const (
	BillingImpressions BillingEvent = "IMPRESSIONS"
	BillingLinkClicks  BillingEvent = "LINK_CLICKS"
	BillingThruplay    BillingEvent = "THRUPLAY"
)

func (b BillingEvent) IsValid() bool {
	return b == BillingImpressions || b == BillingLinkClicks || b == BillingThruplay
}

// InsightLevel é o nível de agregação de métricas
type InsightLevel string

const (
	LevelAccount  InsightLevel = "account"
	LevelCampaign InsightLevel = "campaign"
	LevelAdSet    InsightLevel = "adset"
	LevelAd       InsightLevel = "ad"
)

func (l InsightLevel) IsValid() bool {
	switch l {
	case LevelAccount, LevelCampaign, LevelAdSet, LevelAd:
		return true
	}
	return false
}

// JoinBreakdowns monta o valor do parâmetro breakdowns da Insights API
func JoinBreakdowns(breakdowns []BreakdownType) string {
	parts := make([]string, 0, len(breakdowns))
	for _, b := range breakdowns {
		parts = append(parts, string(b))
	}
	return strings.Join(parts, ",")
}

func invalidEnumError(field string, value any) error {
	return NewValidationError(fmt.Sprintf("invalid value for %s: %v", field, value))
}
