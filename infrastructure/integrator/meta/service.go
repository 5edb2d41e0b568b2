package meta

import (
	"context"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-ads-mcp/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-mcp/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-mcp/internal/config"
	"github.com/vfg2006/meta-ads-mcp/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MetaIntegrator orquestra as operações sobre a hierarquia de anúncios.
// As leituras são repasses diretos; as mutações leem o estado atual antes
// de escrever.
type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) ListAdAccounts(ctx context.Context, in *domain.ListAccountsInput) ([]metadomain.AdAccount, error) {
	accounts, err := s.Client.ListAdAccounts(ctx, in.EffectiveLimit())
	if err != nil {
		logrus.WithError(err).Error("accounts: failed to list ad accounts")
		return nil, err
	}

	logrus.WithField("total_accounts", len(accounts)).Debug("accounts: retrieved ad accounts")
	return accounts, nil
}

func (s *MetaIntegrator) ListCampaigns(ctx context.Context, in *domain.ListCampaignsInput) ([]metadomain.Campaign, error) {
	campaigns, err := s.Client.ListCampaigns(ctx, in.AccountID, in.EffectiveLimit())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": in.AccountID,
			"error":      err.Error(),
		}).Error("campaigns: failed to list campaigns")
		return nil, err
	}

	return campaigns, nil
}

func (s *MetaIntegrator) ListAdSets(ctx context.Context, in *domain.ListAdSetsInput) ([]metadomain.AdSet, error) {
	adSets, err := s.Client.ListAdSets(ctx, in.CampaignID, in.EffectiveLimit())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": in.CampaignID,
			"error":       err.Error(),
		}).Error("adsets: failed to list ad sets")
		return nil, err
	}

	return adSets, nil
}

func (s *MetaIntegrator) ListAds(ctx context.Context, in *domain.ListAdsInput) ([]metadomain.Ad, error) {
	ads, err := s.Client.ListAds(ctx, in.AdSetID, in.EffectiveLimit())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": in.AdSetID,
			"error":    err.Error(),
		}).Error("ads: failed to list ads")
		return nil, err
	}

	return ads, nil
}

func (s *MetaIntegrator) GetInsights(ctx context.Context, in *domain.GetInsightsInput) ([]metadomain.Insight, error) {
	params := url.Values{}
	params.Set("level", string(in.Level))
	applyPeriod(params, in.HasCustomRange(), in.Since, in.Until, in.DatePreset)
	if in.TimeIncrement != nil {
		params.Set("time_increment", strconv.Itoa(*in.TimeIncrement))
	}

	insights, err := s.Client.GetInsights(ctx, in.ObjectID, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"object_id": in.ObjectID,
			"level":     in.Level,
			"error":     err.Error(),
		}).Error("insights: failed to get insights")
		return nil, err
	}

	return insights, nil
}

func (s *MetaIntegrator) GetAdCreative(ctx context.Context, in *domain.GetCreativeInput) (*metadomain.Creative, error) {
	creative, err := s.Client.GetAdCreative(ctx, in.AdID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": in.AdID,
			"error": err.Error(),
		}).Error("ads: failed to get ad creative")
		return nil, err
	}

	return creative, nil
}

func (s *MetaIntegrator) GenerateReport(ctx context.Context, in *domain.GenerateReportInput) ([]metadomain.Insight, error) {
	params := url.Values{}
	params.Set("breakdowns", domain.JoinBreakdowns(in.Breakdowns))
	applyPeriod(params, in.HasCustomRange(), in.Since, in.Until, in.DatePreset)

	insights, err := s.Client.GetInsights(ctx, in.ObjectID, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"object_id":  in.ObjectID,
			"breakdowns": domain.JoinBreakdowns(in.Breakdowns),
			"error":      err.Error(),
		}).Error("insights: failed to generate breakdown report")
		return nil, err
	}

	return insights, nil
}

// UpdateAdSetTargeting mescla os campos demográficos pedidos sobre o
// targeting vigente e envia o mapa completo de volta. Genders vazio remove
// o filtro de gênero existente.
func (s *MetaIntegrator) UpdateAdSetTargeting(ctx context.Context, in *domain.UpdateAdSetTargetingInput) (*domain.TargetingUpdate, error) {
	current, err := s.Client.GetAdSetFields(ctx, in.AdSetID, "name,targeting")
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": in.AdSetID,
			"error":    err.Error(),
		}).Error("adsets: failed to read current targeting")
		return nil, err
	}

	targeting := current.Targeting
	if targeting == nil {
		targeting = map[string]any{}
	}
	if in.AgeMin != nil {
		targeting["age_min"] = *in.AgeMin
	}
	if in.AgeMax != nil {
		targeting["age_max"] = *in.AgeMax
	}
	if len(in.Genders) > 0 {
		targeting["genders"] = in.Genders
	} else {
		delete(targeting, "genders")
	}

	encoded, err := json.Marshal(targeting)
	if err != nil {
		return nil, errors.Wrap(err, "encoding targeting")
	}

	params := url.Values{}
	params.Set("targeting", string(encoded))

	result, err := s.Client.UpdateAdSet(ctx, in.AdSetID, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": in.AdSetID,
			"error":    err.Error(),
		}).Error("adsets: failed to update targeting")
		return nil, err
	}
	if result.Rejected() {
		return nil, domain.MutationRejectedError{Operation: "targeting update"}
	}

	logrus.WithField("adset_id", in.AdSetID).Info("adsets: targeting updated")

	return &domain.TargetingUpdate{
		AdSetID:   in.AdSetID,
		AdSetName: current.Name,
		Targeting: targeting,
	}, nil
}

func (s *MetaIntegrator) UpdateAdSetBudget(ctx context.Context, in *domain.UpdateAdSetBudgetInput) (*domain.BudgetUpdate, error) {
	current, err := s.Client.GetAdSetFields(ctx, in.AdSetID, "name,daily_budget,status")
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": in.AdSetID,
			"error":    err.Error(),
		}).Error("adsets: failed to read current budget")
		return nil, err
	}

	params := url.Values{}
	params.Set("daily_budget", strconv.Itoa(in.DailyBudget))

	result, err := s.Client.UpdateAdSet(ctx, in.AdSetID, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": in.AdSetID,
			"error":    err.Error(),
		}).Error("adsets: failed to update daily budget")
		return nil, err
	}
	if result.Rejected() {
		return nil, domain.MutationRejectedError{Operation: "budget update"}
	}

	logrus.WithFields(logrus.Fields{
		"adset_id":     in.AdSetID,
		"daily_budget": in.DailyBudget,
	}).Info("adsets: daily budget updated")

	return &domain.BudgetUpdate{
		AdSetID:             in.AdSetID,
		AdSetName:           current.Name,
		PreviousDailyBudget: current.DailyBudget,
		NewDailyBudget:      in.DailyBudget,
		Status:              current.Status,
	}, nil
}

// UpdateAdSetStatus pausa ou reativa um ad set. Quando o estado pedido já
// está aplicado, nenhuma escrita é feita e Changed volta falso.
func (s *MetaIntegrator) UpdateAdSetStatus(ctx context.Context, in *domain.UpdateAdSetStatusInput) (*domain.StatusUpdate, error) {
	current, err := s.Client.GetAdSetFields(ctx, in.AdSetID, "name,status,daily_budget")
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": in.AdSetID,
			"error":    err.Error(),
		}).Error("adsets: failed to read current status")
		return nil, err
	}

	update := &domain.StatusUpdate{
		AdSetID:        in.AdSetID,
		AdSetName:      current.Name,
		PreviousStatus: current.Status,
		NewStatus:      string(in.Status),
		DailyBudget:    current.DailyBudget,
	}

	if current.Status == string(in.Status) {
		logrus.WithFields(logrus.Fields{
			"adset_id": in.AdSetID,
			"status":   in.Status,
		}).Debug("adsets: status already applied, skipping write")
		return update, nil
	}

	params := url.Values{}
	params.Set("status", string(in.Status))

	result, err := s.Client.UpdateAdSet(ctx, in.AdSetID, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": in.AdSetID,
			"error":    err.Error(),
		}).Error("adsets: failed to update status")
		return nil, err
	}
	if result.Rejected() {
		return nil, domain.MutationRejectedError{Operation: "status update"}
	}

	logrus.WithFields(logrus.Fields{
		"adset_id": in.AdSetID,
		"from":     current.Status,
		"to":       in.Status,
	}).Info("adsets: status updated")

	update.Changed = true
	return update, nil
}

func (s *MetaIntegrator) CreateCampaign(ctx context.Context, in *domain.CreateCampaignInput) (*domain.CreatedEntity, error) {
	categories, err := json.Marshal(in.SpecialAdCategories)
	if err != nil {
		return nil, errors.Wrap(err, "encoding special_ad_categories")
	}

	params := url.Values{}
	params.Set("name", in.Name)
	params.Set("objective", string(in.Objective))
	params.Set("status", string(in.Status))
	params.Set("special_ad_categories", string(categories))
	if in.DailyBudget != nil {
		params.Set("daily_budget", strconv.Itoa(*in.DailyBudget))
	}
	if in.LifetimeBudget != nil {
		params.Set("lifetime_budget", strconv.Itoa(*in.LifetimeBudget))
	}

	result, err := s.Client.CreateCampaign(ctx, in.AccountID, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": in.AccountID,
			"error":      err.Error(),
		}).Error("campaigns: failed to create campaign")
		return nil, err
	}
	if result.Rejected() || result.ID == "" {
		return nil, domain.MutationRejectedError{Operation: "campaign creation"}
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  in.AccountID,
		"campaign_id": result.ID,
	}).Info("campaigns: campaign created")

	return &domain.CreatedEntity{ID: result.ID, AccountID: in.AccountID}, nil
}

// CreateAdSet resolve a conta dona da campanha antes de criar, porque o
// endpoint de criação é da conta e não da campanha
func (s *MetaIntegrator) CreateAdSet(ctx context.Context, in *domain.CreateAdSetInput) (*domain.CreatedEntity, error) {
	accountID, err := s.Client.GetCampaignAccountID(ctx, in.CampaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": in.CampaignID,
			"error":       err.Error(),
		}).Error("adsets: failed to resolve campaign account")
		return nil, err
	}
	accountID = domain.EnsureAccountPrefix(accountID)

	targeting, err := json.Marshal(in.Targeting)
	if err != nil {
		return nil, errors.Wrap(err, "encoding targeting")
	}

	params := url.Values{}
	params.Set("name", in.Name)
	params.Set("campaign_id", in.CampaignID)
	params.Set("optimization_goal", string(in.OptimizationGoal))
	params.Set("billing_event", string(in.BillingEvent))
	params.Set("status", string(in.Status))
	params.Set("targeting", string(targeting))
	if in.BidAmount != nil {
		params.Set("bid_amount", strconv.Itoa(*in.BidAmount))
	}
	if in.DailyBudget != nil {
		params.Set("daily_budget", strconv.Itoa(*in.DailyBudget))
	}
	if in.LifetimeBudget != nil {
		params.Set("lifetime_budget", strconv.Itoa(*in.LifetimeBudget))
	}
	if in.StartTime != "" {
		params.Set("start_time", in.StartTime)
	}
	if in.EndTime != "" {
		params.Set("end_time", in.EndTime)
	}

	result, err := s.Client.CreateAdSet(ctx, accountID, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  accountID,
			"campaign_id": in.CampaignID,
			"error":       err.Error(),
		}).Error("adsets: failed to create ad set")
		return nil, err
	}
	if result.Rejected() || result.ID == "" {
		return nil, domain.MutationRejectedError{Operation: "ad set creation"}
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"adset_id":   result.ID,
	}).Info("adsets: ad set created")

	return &domain.CreatedEntity{ID: result.ID, AccountID: accountID}, nil
}

// applyPeriod escolhe entre time_range explícito e date_preset. O intervalo
// explícito prevalece quando presente.
func applyPeriod(params url.Values, custom bool, since, until string, preset domain.DatePreset) {
	if custom {
		timeRange, _ := json.Marshal(map[string]string{"since": since, "until": until})
		params.Set("time_range", string(timeRange))
		return
	}
	params.Set("date_preset", string(preset))
}
