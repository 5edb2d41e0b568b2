package render

import (
	"fmt"
	"strconv"

	metadomain "github.com/vfg2006/meta-ads-mcp/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-mcp/internal/domain"
	"github.com/vfg2006/meta-ads-mcp/pkg/utils"
)

// Documentos JSON com ordem de campos estável. O JSON nunca é truncado.

type accountsDocument struct {
	Total    int                    `json:"total"`
	Count    int                    `json:"count"`
	Accounts []metadomain.AdAccount `json:"accounts"`
}

type campaignsDocument struct {
	AccountID string                `json:"account_id"`
	Total     int                   `json:"total"`
	Count     int                   `json:"count"`
	Campaigns []metadomain.Campaign `json:"campaigns"`
}

type adSetsDocument struct {
	CampaignID string             `json:"campaign_id"`
	Total      int                `json:"total"`
	Count      int                `json:"count"`
	AdSets     []metadomain.AdSet `json:"adsets"`
}

type adsDocument struct {
	AdSetID string          `json:"adset_id"`
	Total   int             `json:"total"`
	Count   int             `json:"count"`
	Ads     []metadomain.Ad `json:"ads"`
}

type insightsDocument struct {
	ObjectID string               `json:"object_id"`
	Level    string               `json:"level"`
	Period   string               `json:"period"`
	Total    int                  `json:"total"`
	Insights []metadomain.Insight `json:"insights"`
}

type creativeDocument struct {
	AdID     string               `json:"ad_id"`
	Creative *metadomain.Creative `json:"creative"`
}

type reportDocument struct {
	ObjectID      string               `json:"object_id"`
	Breakdowns    string               `json:"breakdowns"`
	Period        string               `json:"period"`
	TotalSegments int                  `json:"total_segments"`
	Insights      []metadomain.Insight `json:"insights"`
}

type targetingUpdateDocument struct {
	Success          bool           `json:"success"`
	AdSetID          string         `json:"adset_id"`
	AdSetName        string         `json:"adset_name"`
	UpdatedTargeting map[string]any `json:"updated_targeting"`
}

type budgetUpdateDocument struct {
	Success         bool   `json:"success"`
	AdSetID         string `json:"adset_id"`
	AdSetName       string `json:"adset_name"`
	OldBudgetCents  int    `json:"old_budget_cents"`
	NewBudgetCents  int    `json:"new_budget_cents"`
	DifferenceCents int    `json:"difference_cents"`
}

type statusUpdateDocument struct {
	Success   bool   `json:"success"`
	AdSetID   string `json:"adset_id"`
	AdSetName string `json:"adset_name"`
	OldStatus string `json:"old_status,omitempty"`
	NewStatus string `json:"new_status,omitempty"`
	Status    string `json:"status,omitempty"`
	Changed   bool   `json:"changed"`
	Message   string `json:"message,omitempty"`
}

type campaignCreatedDocument struct {
	Success        bool   `json:"success"`
	CampaignID     string `json:"campaign_id"`
	CampaignName   string `json:"campaign_name"`
	AccountID      string `json:"account_id"`
	Objective      string `json:"objective"`
	Status         string `json:"status"`
	DailyBudget    *int   `json:"daily_budget,omitempty"`
	LifetimeBudget *int   `json:"lifetime_budget,omitempty"`
}

type adSetCreatedDocument struct {
	Success          bool           `json:"success"`
	AdSetID          string         `json:"adset_id"`
	AdSetName        string         `json:"adset_name"`
	CampaignID       string         `json:"campaign_id"`
	OptimizationGoal string         `json:"optimization_goal"`
	BillingEvent     string         `json:"billing_event"`
	Status           string         `json:"status"`
	Targeting        map[string]any `json:"targeting"`
	BidAmount        *int           `json:"bid_amount,omitempty"`
	DailyBudget      *int           `json:"daily_budget,omitempty"`
	LifetimeBudget   *int           `json:"lifetime_budget,omitempty"`
}

// Accounts formata a lista de contas no formato pedido
func Accounts(in *domain.ListAccountsInput, accounts []metadomain.AdAccount) (string, error) {
	if len(accounts) == 0 {
		return "No ad accounts found. Check the token permissions.", nil
	}
	if in.ResponseFormat == domain.FormatJSON {
		return utils.PrettyJson(accountsDocument{
			Total:    len(accounts),
			Count:    len(accounts),
			Accounts: accounts,
		})
	}
	return accountsMarkdown(accounts), nil
}

func Campaigns(in *domain.ListCampaignsInput, campaigns []metadomain.Campaign) (string, error) {
	if len(campaigns) == 0 {
		return fmt.Sprintf("No campaigns found for account %s.", in.AccountID), nil
	}
	if in.ResponseFormat == domain.FormatJSON {
		return utils.PrettyJson(campaignsDocument{
			AccountID: in.AccountID,
			Total:     len(campaigns),
			Count:     len(campaigns),
			Campaigns: campaigns,
		})
	}
	return campaignsMarkdown(in.AccountID, campaigns), nil
}

func AdSets(in *domain.ListAdSetsInput, adSets []metadomain.AdSet) (string, error) {
	if len(adSets) == 0 {
		return fmt.Sprintf("No ad sets found for campaign %s.", in.CampaignID), nil
	}
	if in.ResponseFormat == domain.FormatJSON {
		return utils.PrettyJson(adSetsDocument{
			CampaignID: in.CampaignID,
			Total:      len(adSets),
			Count:      len(adSets),
			AdSets:     adSets,
		})
	}
	return adSetsMarkdown(in.CampaignID, adSets), nil
}

func Ads(in *domain.ListAdsInput, ads []metadomain.Ad) (string, error) {
	if len(ads) == 0 {
		return fmt.Sprintf("No ads found for ad set %s.", in.AdSetID), nil
	}
	if in.ResponseFormat == domain.FormatJSON {
		return utils.PrettyJson(adsDocument{
			AdSetID: in.AdSetID,
			Total:   len(ads),
			Count:   len(ads),
			Ads:     ads,
		})
	}
	return adsMarkdown(in.AdSetID, ads), nil
}

func Insights(in *domain.GetInsightsInput, insights []metadomain.Insight) (string, error) {
	if len(insights) == 0 {
		return fmt.Sprintf("No insight data available for %s in the selected period.", in.ObjectID), nil
	}
	if in.ResponseFormat == domain.FormatJSON {
		return utils.PrettyJson(insightsDocument{
			ObjectID: in.ObjectID,
			Level:    string(in.Level),
			Period:   in.PeriodLabel(),
			Total:    len(insights),
			Insights: insights,
		})
	}
	return insightsMarkdown(in, insights), nil
}

func Creative(in *domain.GetCreativeInput, creative *metadomain.Creative) (string, error) {
	if creative == nil {
		return fmt.Sprintf("No creative found for ad %s.", in.AdID), nil
	}
	if in.ResponseFormat == domain.FormatJSON {
		return utils.PrettyJson(creativeDocument{
			AdID:     in.AdID,
			Creative: creative,
		})
	}
	return creativeMarkdown(in.AdID, creative), nil
}

func Report(in *domain.GenerateReportInput, insights []metadomain.Insight) (string, error) {
	if len(insights) == 0 {
		return fmt.Sprintf("No data available for the requested breakdowns in the period %s.", in.PeriodLabel()), nil
	}
	if in.ResponseFormat == domain.FormatJSON {
		return utils.PrettyJson(reportDocument{
			ObjectID:      in.ObjectID,
			Breakdowns:    domain.JoinBreakdowns(in.Breakdowns),
			Period:        in.PeriodLabel(),
			TotalSegments: len(insights),
			Insights:      insights,
		})
	}
	return reportMarkdown(in, insights), nil
}

func TargetingUpdated(format domain.ResponseFormat, update *domain.TargetingUpdate) (string, error) {
	if format == domain.FormatJSON {
		return utils.PrettyJson(targetingUpdateDocument{
			Success:          true,
			AdSetID:          update.AdSetID,
			AdSetName:        update.AdSetName,
			UpdatedTargeting: update.Targeting,
		})
	}
	return targetingUpdateMarkdown(update), nil
}

func BudgetUpdated(format domain.ResponseFormat, update *domain.BudgetUpdate) (string, error) {
	if format == domain.FormatJSON {
		oldBudget, err := strconv.Atoi(update.PreviousDailyBudget)
		if err != nil {
			oldBudget = 0
		}
		return utils.PrettyJson(budgetUpdateDocument{
			Success:         true,
			AdSetID:         update.AdSetID,
			AdSetName:       update.AdSetName,
			OldBudgetCents:  oldBudget,
			NewBudgetCents:  update.NewDailyBudget,
			DifferenceCents: update.NewDailyBudget - oldBudget,
		})
	}
	return budgetUpdateMarkdown(update), nil
}

func StatusUpdated(format domain.ResponseFormat, update *domain.StatusUpdate) (string, error) {
	if format == domain.FormatJSON {
		doc := statusUpdateDocument{
			Success:   true,
			AdSetID:   update.AdSetID,
			AdSetName: update.AdSetName,
			Changed:   update.Changed,
		}
		if update.Changed {
			doc.OldStatus = update.PreviousStatus
			doc.NewStatus = update.NewStatus
		} else {
			doc.Status = update.NewStatus
			doc.Message = "Ad set already in the requested status"
		}
		return utils.PrettyJson(doc)
	}
	return statusUpdateMarkdown(update), nil
}

func CampaignCreated(in *domain.CreateCampaignInput, created *domain.CreatedEntity) (string, error) {
	if in.ResponseFormat == domain.FormatJSON {
		return utils.PrettyJson(campaignCreatedDocument{
			Success:        true,
			CampaignID:     created.ID,
			CampaignName:   in.Name,
			AccountID:      in.AccountID,
			Objective:      string(in.Objective),
			Status:         string(in.Status),
			DailyBudget:    in.DailyBudget,
			LifetimeBudget: in.LifetimeBudget,
		})
	}
	return campaignCreatedMarkdown(in, created), nil
}

func AdSetCreated(in *domain.CreateAdSetInput, created *domain.CreatedEntity) (string, error) {
	if in.ResponseFormat == domain.FormatJSON {
		return utils.PrettyJson(adSetCreatedDocument{
			Success:          true,
			AdSetID:          created.ID,
			AdSetName:        in.Name,
			CampaignID:       in.CampaignID,
			OptimizationGoal: string(in.OptimizationGoal),
			BillingEvent:     string(in.BillingEvent),
			Status:           string(in.Status),
			Targeting:        in.Targeting,
			BidAmount:        in.BidAmount,
			DailyBudget:      in.DailyBudget,
			LifetimeBudget:   in.LifetimeBudget,
		})
	}
	return adSetCreatedMarkdown(in, created), nil
}
