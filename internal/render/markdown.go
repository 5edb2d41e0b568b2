package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	metadomain "github.com/vfg2006/meta-ads-mcp/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-mcp/internal/domain"
)

const maxReportSegments = 20

func accountsMarkdown(accounts []metadomain.AdAccount) string {
	lines := []string{"# Meta Ad Accounts\n"}
	lines = append(lines, fmt.Sprintf("Found %d accounts\n", len(accounts)))

	for _, acc := range accounts {
		lines = append(lines, fmt.Sprintf("## %s (%s)", acc.Name, acc.ID))
		lines = append(lines, fmt.Sprintf("- **Currency**: %s", acc.Currency))
		lines = append(lines, fmt.Sprintf("- **Status**: %s", acc.StatusLabel()))
		lines = append(lines, fmt.Sprintf("- **Timezone**: %s", orNA(acc.TimezoneName)))
		if acc.Business != nil {
			lines = append(lines, fmt.Sprintf("- **Business**: %s", orNA(acc.Business.Name)))
		}
		lines = append(lines, "")
	}

	return Truncate(strings.Join(lines, "\n"))
}

func campaignsMarkdown(accountID string, campaigns []metadomain.Campaign) string {
	lines := []string{"# Ad Campaigns\n"}
	lines = append(lines, fmt.Sprintf("Account: %s", accountID))
	lines = append(lines, fmt.Sprintf("Found %d campaigns\n", len(campaigns)))

	for _, camp := range campaigns {
		lines = append(lines, fmt.Sprintf("## %s (%s)", camp.Name, camp.ID))
		lines = append(lines, fmt.Sprintf("- **Objective**: %s", orNA(camp.Objective)))
		lines = append(lines, fmt.Sprintf("- **Status**: %s", orNA(camp.Status)))

		if camp.DailyBudget != "" {
			lines = append(lines, fmt.Sprintf("- **Daily budget**: %s", FormatCurrency(camp.DailyBudget)))
		} else if camp.LifetimeBudget != "" {
			lines = append(lines, fmt.Sprintf("- **Lifetime budget**: %s", FormatCurrency(camp.LifetimeBudget)))
		}

		if camp.StartTime != "" {
			lines = append(lines, fmt.Sprintf("- **Start**: %s", camp.StartTime))
		}
		if camp.StopTime != "" {
			lines = append(lines, fmt.Sprintf("- **End**: %s", camp.StopTime))
		}
		lines = append(lines, "")
	}

	return Truncate(strings.Join(lines, "\n"))
}

func adSetsMarkdown(campaignID string, adSets []metadomain.AdSet) string {
	lines := []string{"# Ad Sets\n"}
	lines = append(lines, fmt.Sprintf("Campaign: %s", campaignID))
	lines = append(lines, fmt.Sprintf("Found %d ad sets\n", len(adSets)))

	for _, adSet := range adSets {
		lines = append(lines, fmt.Sprintf("## %s (%s)", adSet.Name, adSet.ID))
		lines = append(lines, fmt.Sprintf("- **Status**: %s", orNA(adSet.Status)))

		if adSet.DailyBudget != "" {
			lines = append(lines, fmt.Sprintf("- **Daily budget**: %s", FormatCurrency(adSet.DailyBudget)))
		} else if adSet.LifetimeBudget != "" {
			lines = append(lines, fmt.Sprintf("- **Lifetime budget**: %s", FormatCurrency(adSet.LifetimeBudget)))
		}

		if adSet.OptimizationGoal != "" {
			lines = append(lines, fmt.Sprintf("- **Optimization**: %s", adSet.OptimizationGoal))
		}
		if adSet.BillingEvent != "" {
			lines = append(lines, fmt.Sprintf("- **Billing**: %s", adSet.BillingEvent))
		}
		if adSet.StartTime != "" {
			lines = append(lines, fmt.Sprintf("- **Start**: %s", adSet.StartTime))
		}
		if adSet.EndTime != "" {
			lines = append(lines, fmt.Sprintf("- **End**: %s", adSet.EndTime))
		}
		lines = append(lines, "")
	}

	return Truncate(strings.Join(lines, "\n"))
}

func adsMarkdown(adSetID string, ads []metadomain.Ad) string {
	lines := []string{"# Ads\n"}
	lines = append(lines, fmt.Sprintf("Ad Set: %s", adSetID))
	lines = append(lines, fmt.Sprintf("Found %d ads\n", len(ads)))

	for _, ad := range ads {
		lines = append(lines, fmt.Sprintf("## %s (%s)", ad.Name, ad.ID))
		lines = append(lines, fmt.Sprintf("- **Status**: %s", orNA(ad.Status)))

		if ad.Creative != nil {
			lines = append(lines, fmt.Sprintf("- **Creative ID**: %s", orNA(ad.Creative.ID)))
			lines = append(lines, fmt.Sprintf("- **Creative name**: %s", orNA(ad.Creative.Name)))
		}

		lines = append(lines, fmt.Sprintf("- *Use meta_ads_get_creative with ID %s for full details*", ad.ID))
		lines = append(lines, "")
	}

	return Truncate(strings.Join(lines, "\n"))
}

func insightsMarkdown(in *domain.GetInsightsInput, insights []metadomain.Insight) string {
	lines := []string{"# Performance Metrics\n"}
	lines = append(lines, fmt.Sprintf("Object: %s", in.ObjectID))
	lines = append(lines, fmt.Sprintf("Period: %s", in.PeriodLabel()))
	lines = append(lines, fmt.Sprintf("Level: %s\n", in.Level))

	for idx, insight := range insights {
		if in.TimeIncrement != nil {
			period := fmt.Sprintf("%s - %s", orNA(insight.DateStart), orNA(insight.DateStop))
			lines = append(lines, fmt.Sprintf("## Period %d: %s", idx+1, period))
		} else {
			lines = append(lines, "## Total Metrics")
		}

		lines = append(lines, fmt.Sprintf("- **Impressions**: %s", orZero(insight.Impressions)))
		lines = append(lines, fmt.Sprintf("- **Clicks**: %s", orZero(insight.Clicks)))
		lines = append(lines, fmt.Sprintf("- **Spend**: %s", FormatCurrency(orZero(insight.Spend))))
		lines = append(lines, fmt.Sprintf("- **CPM**: %s", FormatCurrency(orZero(insight.CPM))))
		lines = append(lines, fmt.Sprintf("- **CPC**: %s", FormatCurrency(orZero(insight.CPC))))
		lines = append(lines, fmt.Sprintf("- **CTR**: %s", percentageFromString(insight.CTR)))
		lines = append(lines, fmt.Sprintf("- **Reach**: %s", orZero(insight.Reach)))
		lines = append(lines, fmt.Sprintf("- **Frequency**: %s", orZero(insight.Frequency)))

		if len(insight.Actions) > 0 {
			lines = append(lines, "- **Conversions**:")
			actions := insight.Actions
			if len(actions) > 5 {
				actions = actions[:5]
			}
			for _, action := range actions {
				lines = append(lines, fmt.Sprintf("  - %s: %s", action.ActionType, action.Value))
			}
		}
		lines = append(lines, "")
	}

	return Truncate(strings.Join(lines, "\n"))
}

func creativeMarkdown(adID string, creative *metadomain.Creative) string {
	lines := []string{"# Creative Details\n"}
	lines = append(lines, fmt.Sprintf("Ad ID: %s", adID))
	lines = append(lines, fmt.Sprintf("Creative ID: %s\n", orNA(creative.ID)))

	if creative.Name != "" {
		lines = append(lines, fmt.Sprintf("## %s\n", creative.Name))
	}
	if creative.Title != "" {
		lines = append(lines, "### Title")
		lines = append(lines, creative.Title+"\n")
	}
	if creative.Body != "" {
		lines = append(lines, "### Body Text")
		lines = append(lines, creative.Body+"\n")
	}
	if creative.LinkURL != "" {
		lines = append(lines, fmt.Sprintf("**Link**: %s", creative.LinkURL))
	}
	if creative.CallToActionType != "" {
		lines = append(lines, fmt.Sprintf("**Call to Action**: %s", creative.CallToActionType))
	}
	if creative.ImageURL != "" {
		lines = append(lines, fmt.Sprintf("**Image**: %s", creative.ImageURL))
	}

	if spec := creative.ObjectStorySpec; spec != nil {
		lines = append(lines, "\n### Placement Configuration")
		if pageID, ok := spec["page_id"]; ok {
			lines = append(lines, fmt.Sprintf("- **Page ID**: %v", pageID))
		}
		if actorID, ok := spec["instagram_actor_id"]; ok {
			lines = append(lines, fmt.Sprintf("- **Instagram Actor ID**: %v", actorID))
		}
		if linkData, ok := spec["link_data"].(map[string]any); ok {
			if link, ok := linkData["link"]; ok {
				lines = append(lines, fmt.Sprintf("- **Link**: %v", link))
			}
			if message, ok := linkData["message"]; ok {
				lines = append(lines, fmt.Sprintf("- **Message**: %v", message))
			}
		}
	}

	if creative.AssetFeedSpec != nil {
		lines = append(lines, "\n### Asset Feed (Dynamic Ad)")
		lines = append(lines, "*Dynamic ad configuration present*")
	}

	return strings.Join(lines, "\n")
}

var genderLabels = map[string]string{
	"male":    "Men",
	"female":  "Women",
	"unknown": "Unknown",
}

// reportMarkdown ordena os segmentos por cliques e mostra só os melhores,
// com um aviso sobre o restante
func reportMarkdown(in *domain.GenerateReportInput, insights []metadomain.Insight) string {
	lines := []string{"# Breakdown Report\n"}
	lines = append(lines, fmt.Sprintf("Object: %s", in.ObjectID))
	lines = append(lines, fmt.Sprintf("Period: %s", in.PeriodLabel()))
	lines = append(lines, fmt.Sprintf("Breakdown: %s\n", domain.JoinBreakdowns(in.Breakdowns)))
	lines = append(lines, fmt.Sprintf("Total segments: %d\n", len(insights)))

	sorted := make([]metadomain.Insight, len(insights))
	copy(sorted, insights)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ClickCount() > sorted[j].ClickCount()
	})

	shown := sorted
	if len(shown) > maxReportSegments {
		shown = shown[:maxReportSegments]
	}

	for idx, insight := range shown {
		lines = append(lines, fmt.Sprintf("## %d. %s", idx+1, segmentTitle(insight, idx+1)))
		lines = append(lines, fmt.Sprintf("- **Impressions**: %s", orZero(insight.Impressions)))
		lines = append(lines, fmt.Sprintf("- **Clicks**: %s", orZero(insight.Clicks)))
		lines = append(lines, fmt.Sprintf("- **Spend**: %s", FormatCurrency(orZero(insight.Spend))))
		lines = append(lines, fmt.Sprintf("- **CTR**: %s", percentageFromString(insight.CTR)))
		lines = append(lines, fmt.Sprintf("- **CPC**: %s", FormatCurrency(orZero(insight.CPC))))

		if insight.Reach != "" {
			lines = append(lines, fmt.Sprintf("- **Reach**: %s", insight.Reach))
		}
		if len(insight.Actions) > 0 {
			lines = append(lines, fmt.Sprintf("- **Total conversions**: %d", insight.TotalActions()))
		}
		lines = append(lines, "")
	}

	if len(sorted) > maxReportSegments {
		lines = append(lines, fmt.Sprintf("\n*Showing the top %d segments of %d total*", maxReportSegments, len(insights)))
		lines = append(lines, "*Use filters or different parameters to see other segments*\n")
	}

	return Truncate(strings.Join(lines, "\n"))
}

func segmentTitle(insight metadomain.Insight, position int) string {
	parts := []string{}
	if insight.Age != "" {
		parts = append(parts, fmt.Sprintf("Age: %s", insight.Age))
	}
	if insight.Gender != "" {
		label, ok := genderLabels[insight.Gender]
		if !ok {
			label = insight.Gender
		}
		parts = append(parts, fmt.Sprintf("Gender: %s", label))
	}
	if insight.Country != "" {
		parts = append(parts, fmt.Sprintf("Country: %s", insight.Country))
	}
	if insight.Region != "" {
		parts = append(parts, fmt.Sprintf("Region: %s", insight.Region))
	}
	if insight.PublisherPlatform != "" {
		parts = append(parts, fmt.Sprintf("Platform: %s", insight.PublisherPlatform))
	}
	if insight.DevicePlatform != "" {
		parts = append(parts, fmt.Sprintf("Device: %s", insight.DevicePlatform))
	}

	if len(parts) == 0 {
		return fmt.Sprintf("Segment %d", position)
	}
	return strings.Join(parts, " | ")
}

func targetingUpdateMarkdown(update *domain.TargetingUpdate) string {
	lines := []string{"# ✅ Ad Set Targeting Updated\n"}
	lines = append(lines, fmt.Sprintf("**Ad Set**: %s", update.AdSetName))
	lines = append(lines, fmt.Sprintf("**ID**: %s\n", update.AdSetID))

	lines = append(lines, "## New Demographic Targeting\n")

	ageMin := intFromAny(update.Targeting["age_min"], domain.AgeLowerBound)
	ageMax := intFromAny(update.Targeting["age_max"], domain.AgeUpperBound)
	lines = append(lines, fmt.Sprintf("- **Age**: %d-%d years", ageMin, ageMax))
	lines = append(lines, fmt.Sprintf("- **Gender**: %s", genderSummary(update.Targeting["genders"])))

	lines = append(lines, "\n*Other targeting settings (geo, interests, etc.) remain unchanged*")

	return strings.Join(lines, "\n")
}

// genderSummary descreve o filtro de gênero do mapa de targeting, onde a
// lista pode conter ints ou float64s conforme a origem do mapa
func genderSummary(v any) string {
	var genders []int
	switch list := v.(type) {
	case []int:
		genders = list
	case []any:
		for _, g := range list {
			genders = append(genders, intFromAny(g, 0))
		}
	}

	if len(genders) == 0 {
		return "All"
	}

	labels := make([]string, 0, len(genders))
	for _, g := range genders {
		switch g {
		case 1:
			labels = append(labels, "Men")
		case 2:
			labels = append(labels, "Women")
		default:
			labels = append(labels, strconv.Itoa(g))
		}
	}
	return strings.Join(labels, ", ")
}

func budgetUpdateMarkdown(update *domain.BudgetUpdate) string {
	lines := []string{"# ✅ Ad Set Budget Updated\n"}
	lines = append(lines, fmt.Sprintf("**Ad Set**: %s", update.AdSetName))
	lines = append(lines, fmt.Sprintf("**ID**: %s", update.AdSetID))
	lines = append(lines, fmt.Sprintf("**Status**: %s\n", orNA(update.Status)))

	oldBudget, err := strconv.Atoi(update.PreviousDailyBudget)
	if err != nil {
		oldBudget = 0
	}

	lines = append(lines, "## Budget Change\n")
	lines = append(lines, fmt.Sprintf("- **Previous budget**: %s/day", FormatCents(oldBudget)))
	lines = append(lines, fmt.Sprintf("- **New budget**: %s/day", FormatCents(update.NewDailyBudget)))

	diff := update.NewDailyBudget - oldBudget
	var diffPct float64
	if oldBudget > 0 {
		diffPct = float64(diff) / float64(oldBudget) * 100
	}

	switch {
	case diff > 0:
		lines = append(lines, fmt.Sprintf("- **Change**: +%s (+%.1f%%) 📈", FormatCents(diff), diffPct))
	case diff < 0:
		lines = append(lines, fmt.Sprintf("- **Change**: %s (%.1f%%) 📉", FormatCents(diff), diffPct))
	default:
		lines = append(lines, "- **Change**: No change")
	}

	lines = append(lines, "\n*The new budget applies starting with the next auction*")

	return strings.Join(lines, "\n")
}

func statusUpdateMarkdown(update *domain.StatusUpdate) string {
	if !update.Changed {
		return fmt.Sprintf("# ℹ️ No Change Needed\n\nThe ad set **%s** is already in status **%s**.", update.AdSetName, update.NewStatus)
	}

	budget, err := strconv.Atoi(update.DailyBudget)
	if err != nil {
		budget = 0
	}

	lines := []string{"# ✅ Ad Set Status Changed\n"}
	lines = append(lines, fmt.Sprintf("**Ad Set**: %s", update.AdSetName))
	lines = append(lines, fmt.Sprintf("**ID**: %s", update.AdSetID))
	lines = append(lines, fmt.Sprintf("**Budget**: %s/day\n", FormatCents(budget)))

	lines = append(lines, "## Status Change\n")
	lines = append(lines, fmt.Sprintf("- **Previous status**: %s", update.PreviousStatus))
	lines = append(lines, fmt.Sprintf("- **New status**: %s", update.NewStatus))

	if update.NewStatus == string(domain.StatusActive) {
		lines = append(lines, "\n✅ **The ad set is now ACTIVE** and competing in auctions.")
		lines = append(lines, "Ads will start being delivered according to the configured targeting.")
	} else {
		lines = append(lines, "\n⏸️ **The ad set is now PAUSED** and not spending budget.")
		lines = append(lines, "Ads will not be delivered until you reactivate the ad set.")
	}

	return strings.Join(lines, "\n")
}

func campaignCreatedMarkdown(in *domain.CreateCampaignInput, created *domain.CreatedEntity) string {
	lines := []string{"# ✅ Campaign Created\n"}
	lines = append(lines, fmt.Sprintf("**Name**: %s", in.Name))
	lines = append(lines, fmt.Sprintf("**ID**: %s", created.ID))
	lines = append(lines, fmt.Sprintf("**Account**: %s\n", in.AccountID))

	lines = append(lines, "## Configuration\n")
	lines = append(lines, fmt.Sprintf("- **Objective**: %s", in.Objective))
	lines = append(lines, fmt.Sprintf("- **Status**: %s", in.Status))

	if in.DailyBudget != nil {
		lines = append(lines, fmt.Sprintf("- **Daily budget**: %s", FormatCents(*in.DailyBudget)))
	} else if in.LifetimeBudget != nil {
		lines = append(lines, fmt.Sprintf("- **Lifetime budget**: %s", FormatCents(*in.LifetimeBudget)))
	}

	if len(in.SpecialAdCategories) > 0 {
		lines = append(lines, fmt.Sprintf("- **Special categories**: %s", strings.Join(in.SpecialAdCategories, ", ")))
	}

	lines = append(lines, "\n## Next Steps\n")
	lines = append(lines, "1. ✅ Campaign created")
	lines = append(lines, fmt.Sprintf("2. ⏭️ Create ad sets with `meta_ads_create_adset` using campaign_id: %s", created.ID))
	lines = append(lines, "3. ⏭️ Create ads inside the ad sets")
	lines = append(lines, "4. ⏭️ Activate the campaign when everything is configured")

	if in.Status == domain.StatusPaused {
		lines = append(lines, "\n⏸️ *The campaign is PAUSED. Finish configuring it before activating.*")
	}

	return strings.Join(lines, "\n")
}

func adSetCreatedMarkdown(in *domain.CreateAdSetInput, created *domain.CreatedEntity) string {
	lines := []string{"# ✅ Ad Set Created\n"}
	lines = append(lines, fmt.Sprintf("**Name**: %s", in.Name))
	lines = append(lines, fmt.Sprintf("**ID**: %s", created.ID))
	lines = append(lines, fmt.Sprintf("**Campaign**: %s\n", in.CampaignID))

	lines = append(lines, "## Configuration\n")
	lines = append(lines, fmt.Sprintf("- **Optimization goal**: %s", in.OptimizationGoal))
	lines = append(lines, fmt.Sprintf("- **Billing event**: %s", in.BillingEvent))
	lines = append(lines, fmt.Sprintf("- **Status**: %s", in.Status))

	if in.BidAmount != nil {
		lines = append(lines, fmt.Sprintf("- **Bid amount**: %s", FormatCents(*in.BidAmount)))
	}
	if in.DailyBudget != nil {
		lines = append(lines, fmt.Sprintf("- **Daily budget**: %s", FormatCents(*in.DailyBudget)))
	} else if in.LifetimeBudget != nil {
		lines = append(lines, fmt.Sprintf("- **Lifetime budget**: %s", FormatCents(*in.LifetimeBudget)))
	}

	lines = append(lines, "\n## Targeting\n")
	if geo, ok := in.Targeting["geo_locations"].(map[string]any); ok {
		if countries, ok := geo["countries"].([]any); ok {
			names := make([]string, 0, len(countries))
			for _, c := range countries {
				names = append(names, fmt.Sprintf("%v", c))
			}
			lines = append(lines, fmt.Sprintf("- **Countries**: %s", strings.Join(names, ", ")))
		}
		if regions, ok := geo["regions"].([]any); ok {
			lines = append(lines, fmt.Sprintf("- **Regions**: %d regions", len(regions)))
		}
		if cities, ok := geo["cities"].([]any); ok {
			lines = append(lines, fmt.Sprintf("- **Cities**: %d cities", len(cities)))
		}
	}

	_, hasAgeMin := in.Targeting["age_min"]
	_, hasAgeMax := in.Targeting["age_max"]
	if hasAgeMin || hasAgeMax {
		ageMin := intFromAny(in.Targeting["age_min"], domain.AgeLowerBound)
		ageMax := intFromAny(in.Targeting["age_max"], domain.AgeUpperBound)
		lines = append(lines, fmt.Sprintf("- **Age**: %d-%d years", ageMin, ageMax))
	}
	if genders, ok := in.Targeting["genders"]; ok {
		lines = append(lines, fmt.Sprintf("- **Gender**: %s", genderSummary(genders)))
	}

	if in.StartTime != "" || in.EndTime != "" {
		lines = append(lines, "\n## Scheduling\n")
		if in.StartTime != "" {
			lines = append(lines, fmt.Sprintf("- **Start**: %s", in.StartTime))
		}
		if in.EndTime != "" {
			lines = append(lines, fmt.Sprintf("- **End**: %s", in.EndTime))
		}
	}

	lines = append(lines, "\n## Next Steps\n")
	lines = append(lines, "1. ✅ Ad set created")
	lines = append(lines, fmt.Sprintf("2. ⏭️ Create ads inside ad set %s", created.ID))
	lines = append(lines, "3. ⏭️ Activate the ad set with `meta_ads_update_adset_status` when ready")

	if in.Status == domain.StatusPaused {
		lines = append(lines, "\n⏸️ *The ad set is PAUSED. Create the ads before activating it.*")
	}

	return strings.Join(lines, "\n")
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func orZero(value string) string {
	if value == "" {
		return "0"
	}
	return value
}
