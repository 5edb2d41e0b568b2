package meta

import (
	"context"
	"net/url"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/meta-ads-mcp/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-mcp/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/meta-ads-mcp/internal/domain"
	"go.uber.org/mock/gomock"
)

func boolPtr(v bool) *bool {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func TestListAdAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	service := New(nil, client)

	t.Run("Sem limite explícito usa o limite padrão", func(t *testing.T) {
		client.EXPECT().
			ListAdAccounts(gomock.Any(), domain.DefaultLimit).
			Return([]metadomain.AdAccount{{ID: "act_123", Name: "Loja"}}, nil)

		in := &domain.ListAccountsInput{}
		require.NoError(t, in.Validate())

		accounts, err := service.ListAdAccounts(context.Background(), in)
		require.NoError(t, err)
		require.Len(t, accounts, 1)
		assert.Equal(t, "act_123", accounts[0].ID)
	})

	t.Run("Erro do gateway é repassado ao chamador", func(t *testing.T) {
		client.EXPECT().
			ListAdAccounts(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("boom"))

		_, err := service.ListAdAccounts(context.Background(), &domain.ListAccountsInput{})
		require.Error(t, err)
	})
}

func TestGetInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	service := New(nil, client)

	tests := []struct {
		name     string
		input    *domain.GetInsightsInput
		validate func(t *testing.T, params url.Values)
	}{
		{
			name:  "Sem intervalo explícito envia o date_preset",
			input: &domain.GetInsightsInput{ObjectID: "act_123", DatePreset: domain.PresetLast7D},
			validate: func(t *testing.T, params url.Values) {
				assert.Equal(t, "last_7d", params.Get("date_preset"))
				assert.Empty(t, params.Get("time_range"))
				assert.Equal(t, "account", params.Get("level"))
			},
		},
		{
			name: "Intervalo explícito prevalece sobre o preset",
			input: &domain.GetInsightsInput{
				ObjectID:   "act_123",
				Since:      "2025-01-01",
				Until:      "2025-01-31",
				DatePreset: domain.PresetLast7D,
			},
			validate: func(t *testing.T, params url.Values) {
				assert.Empty(t, params.Get("date_preset"))
				assert.JSONEq(t, `{"since":"2025-01-01","until":"2025-01-31"}`, params.Get("time_range"))
			},
		},
		{
			name: "Time increment é enviado quando presente",
			input: &domain.GetInsightsInput{
				ObjectID:      "123",
				Level:         domain.LevelCampaign,
				TimeIncrement: intPtr(7),
			},
			validate: func(t *testing.T, params url.Values) {
				assert.Equal(t, "7", params.Get("time_increment"))
				assert.Equal(t, "campaign", params.Get("level"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.input.Validate())

			var captured url.Values
			client.EXPECT().
				GetInsights(gomock.Any(), tt.input.ObjectID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, params url.Values) ([]metadomain.Insight, error) {
					captured = params
					return []metadomain.Insight{{Impressions: "100"}}, nil
				})

			insights, err := service.GetInsights(context.Background(), tt.input)
			require.NoError(t, err)
			require.Len(t, insights, 1)
			tt.validate(t, captured)
		})
	}
}

func TestGenerateReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	service := New(nil, client)

	in := &domain.GenerateReportInput{
		ObjectID:   "act_123",
		Breakdowns: []domain.BreakdownType{domain.BreakdownAge, domain.BreakdownGender},
	}
	require.NoError(t, in.Validate())

	var captured url.Values
	client.EXPECT().
		GetInsights(gomock.Any(), "act_123", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params url.Values) ([]metadomain.Insight, error) {
			captured = params
			return []metadomain.Insight{{Age: "25-34", Clicks: "10"}}, nil
		})

	insights, err := service.GenerateReport(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, insights, 1)

	assert.Equal(t, "age,gender", captured.Get("breakdowns"))
	assert.Equal(t, "last_30d", captured.Get("date_preset"))
}

func TestUpdateAdSetTargeting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	service := New(nil, client)

	t.Run("Campos pedidos são mesclados sobre o targeting vigente", func(t *testing.T) {
		current := &metadomain.AdSet{
			ID:   "111",
			Name: "Brasil 25-55",
			Targeting: map[string]any{
				"age_min":       float64(18),
				"age_max":       float64(65),
				"genders":       []any{float64(1)},
				"geo_locations": map[string]any{"countries": []any{"BR"}},
			},
		}

		client.EXPECT().
			GetAdSetFields(gomock.Any(), "111", "name,targeting").
			Return(current, nil)

		var captured url.Values
		client.EXPECT().
			UpdateAdSet(gomock.Any(), "111", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, params url.Values) (*metadomain.MutationResult, error) {
				captured = params
				return &metadomain.MutationResult{Success: boolPtr(true)}, nil
			})

		in := &domain.UpdateAdSetTargetingInput{
			AdSetID: "111",
			AgeMin:  intPtr(25),
			AgeMax:  intPtr(55),
		}
		require.NoError(t, in.Validate())

		update, err := service.UpdateAdSetTargeting(context.Background(), in)
		require.NoError(t, err)

		assert.Equal(t, "Brasil 25-55", update.AdSetName)
		assert.Equal(t, 25, update.Targeting["age_min"])
		assert.Equal(t, 55, update.Targeting["age_max"])
		// Genders não informado remove o filtro existente
		assert.NotContains(t, update.Targeting, "genders")
		// As demais chaves do targeting vigente são preservadas
		assert.Contains(t, update.Targeting, "geo_locations")

		encoded := captured.Get("targeting")
		assert.Contains(t, encoded, `"age_min":25`)
		assert.Contains(t, encoded, `"age_max":55`)
		assert.Contains(t, encoded, `"geo_locations"`)
		assert.NotContains(t, encoded, `"genders"`)
	})

	t.Run("Genders informado substitui o filtro", func(t *testing.T) {
		client.EXPECT().
			GetAdSetFields(gomock.Any(), "111", "name,targeting").
			Return(&metadomain.AdSet{ID: "111", Name: "Brasil"}, nil)

		client.EXPECT().
			UpdateAdSet(gomock.Any(), "111", gomock.Any()).
			Return(&metadomain.MutationResult{Success: boolPtr(true)}, nil)

		in := &domain.UpdateAdSetTargetingInput{AdSetID: "111", Genders: []int{2}}
		require.NoError(t, in.Validate())

		update, err := service.UpdateAdSetTargeting(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, []int{2}, update.Targeting["genders"])
	})

	t.Run("Rejeição da API vira erro de mutação", func(t *testing.T) {
		client.EXPECT().
			GetAdSetFields(gomock.Any(), "111", "name,targeting").
			Return(&metadomain.AdSet{ID: "111", Name: "Brasil"}, nil)

		client.EXPECT().
			UpdateAdSet(gomock.Any(), "111", gomock.Any()).
			Return(&metadomain.MutationResult{Success: boolPtr(false)}, nil)

		in := &domain.UpdateAdSetTargetingInput{AdSetID: "111", AgeMin: intPtr(30)}
		require.NoError(t, in.Validate())

		_, err := service.UpdateAdSetTargeting(context.Background(), in)
		require.Error(t, err)

		var rejected domain.MutationRejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, "targeting update", rejected.Operation)
	})
}

func TestUpdateAdSetBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	service := New(nil, client)

	t.Run("Orçamento anterior é capturado antes da escrita", func(t *testing.T) {
		client.EXPECT().
			GetAdSetFields(gomock.Any(), "111", "name,daily_budget,status").
			Return(&metadomain.AdSet{ID: "111", Name: "Brasil", DailyBudget: "5000", Status: "ACTIVE"}, nil)

		var captured url.Values
		client.EXPECT().
			UpdateAdSet(gomock.Any(), "111", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, params url.Values) (*metadomain.MutationResult, error) {
				captured = params
				return &metadomain.MutationResult{Success: boolPtr(true)}, nil
			})

		in := &domain.UpdateAdSetBudgetInput{AdSetID: "111", DailyBudget: 7500}
		require.NoError(t, in.Validate())

		update, err := service.UpdateAdSetBudget(context.Background(), in)
		require.NoError(t, err)

		assert.Equal(t, "7500", captured.Get("daily_budget"))
		assert.Equal(t, "5000", update.PreviousDailyBudget)
		assert.Equal(t, 7500, update.NewDailyBudget)
		assert.Equal(t, "ACTIVE", update.Status)
	})

	t.Run("Rejeição da API vira erro de mutação", func(t *testing.T) {
		client.EXPECT().
			GetAdSetFields(gomock.Any(), "111", "name,daily_budget,status").
			Return(&metadomain.AdSet{ID: "111", Name: "Brasil"}, nil)

		client.EXPECT().
			UpdateAdSet(gomock.Any(), "111", gomock.Any()).
			Return(&metadomain.MutationResult{Success: boolPtr(false)}, nil)

		in := &domain.UpdateAdSetBudgetInput{AdSetID: "111", DailyBudget: 7500}
		require.NoError(t, in.Validate())

		_, err := service.UpdateAdSetBudget(context.Background(), in)

		var rejected domain.MutationRejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, "budget update", rejected.Operation)
	})
}

func TestUpdateAdSetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	service := New(nil, client)

	t.Run("Status já aplicado não gera escrita", func(t *testing.T) {
		client.EXPECT().
			GetAdSetFields(gomock.Any(), "111", "name,status,daily_budget").
			Return(&metadomain.AdSet{ID: "111", Name: "Brasil", Status: "ACTIVE", DailyBudget: "5000"}, nil)

		in := &domain.UpdateAdSetStatusInput{AdSetID: "111", Status: domain.StatusActive}
		require.NoError(t, in.Validate())

		update, err := service.UpdateAdSetStatus(context.Background(), in)
		require.NoError(t, err)

		assert.False(t, update.Changed)
		assert.Equal(t, "ACTIVE", update.NewStatus)
		assert.Equal(t, "5000", update.DailyBudget)
	})

	t.Run("Mudança de status envia a escrita e marca Changed", func(t *testing.T) {
		client.EXPECT().
			GetAdSetFields(gomock.Any(), "111", "name,status,daily_budget").
			Return(&metadomain.AdSet{ID: "111", Name: "Brasil", Status: "PAUSED", DailyBudget: "5000"}, nil)

		var captured url.Values
		client.EXPECT().
			UpdateAdSet(gomock.Any(), "111", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, params url.Values) (*metadomain.MutationResult, error) {
				captured = params
				return &metadomain.MutationResult{Success: boolPtr(true)}, nil
			})

		in := &domain.UpdateAdSetStatusInput{AdSetID: "111", Status: domain.StatusActive}
		require.NoError(t, in.Validate())

		update, err := service.UpdateAdSetStatus(context.Background(), in)
		require.NoError(t, err)

		assert.Equal(t, "ACTIVE", captured.Get("status"))
		assert.True(t, update.Changed)
		assert.Equal(t, "PAUSED", update.PreviousStatus)
		assert.Equal(t, "ACTIVE", update.NewStatus)
	})
}

func TestCreateCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	service := New(nil, client)

	newInput := func() *domain.CreateCampaignInput {
		in := &domain.CreateCampaignInput{
			AccountID:   "123",
			Name:        "Promo Verão",
			Objective:   "OUTCOME_SALES",
			DailyBudget: intPtr(5000),
		}
		if err := in.Validate(); err != nil {
			t.Fatal(err)
		}
		return in
	}

	t.Run("Parâmetros da campanha são serializados para a conta", func(t *testing.T) {
		var captured url.Values
		client.EXPECT().
			CreateCampaign(gomock.Any(), "act_123", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, params url.Values) (*metadomain.MutationResult, error) {
				captured = params
				return &metadomain.MutationResult{ID: "120210000000000"}, nil
			})

		created, err := service.CreateCampaign(context.Background(), newInput())
		require.NoError(t, err)

		assert.Equal(t, "120210000000000", created.ID)
		assert.Equal(t, "act_123", created.AccountID)
		assert.Equal(t, "Promo Verão", captured.Get("name"))
		assert.Equal(t, "OUTCOME_SALES", captured.Get("objective"))
		assert.Equal(t, "PAUSED", captured.Get("status"))
		assert.Equal(t, `["NONE"]`, captured.Get("special_ad_categories"))
		assert.Equal(t, "5000", captured.Get("daily_budget"))
		assert.Empty(t, captured.Get("lifetime_budget"))
	})

	t.Run("Resposta sem ID vira erro de mutação", func(t *testing.T) {
		client.EXPECT().
			CreateCampaign(gomock.Any(), "act_123", gomock.Any()).
			Return(&metadomain.MutationResult{}, nil)

		_, err := service.CreateCampaign(context.Background(), newInput())

		var rejected domain.MutationRejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, "campaign creation", rejected.Operation)
	})
}

func TestCreateAdSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	service := New(nil, client)

	newInput := func() *domain.CreateAdSetInput {
		in := &domain.CreateAdSetInput{
			CampaignID:       "222",
			Name:             "Brasil 25-55",
			OptimizationGoal: "LINK_CLICKS",
			BillingEvent:     "IMPRESSIONS",
			DailyBudget:      intPtr(2000),
			Targeting: map[string]any{
				"geo_locations":        map[string]any{"countries": []any{"BR"}},
				"targeting_automation": map[string]any{"advantage_audience": 0},
			},
			StartTime: "2025-02-01T00:00:00-0300",
		}
		if err := in.Validate(); err != nil {
			t.Fatal(err)
		}
		return in
	}

	t.Run("A conta dona da campanha é resolvida e prefixada", func(t *testing.T) {
		client.EXPECT().
			GetCampaignAccountID(gomock.Any(), "222").
			Return("987", nil)

		var captured url.Values
		client.EXPECT().
			CreateAdSet(gomock.Any(), "act_987", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, params url.Values) (*metadomain.MutationResult, error) {
				captured = params
				return &metadomain.MutationResult{ID: "120220000000000"}, nil
			})

		created, err := service.CreateAdSet(context.Background(), newInput())
		require.NoError(t, err)

		assert.Equal(t, "120220000000000", created.ID)
		assert.Equal(t, "act_987", created.AccountID)
		assert.Equal(t, "222", captured.Get("campaign_id"))
		assert.Equal(t, "LINK_CLICKS", captured.Get("optimization_goal"))
		assert.Equal(t, "IMPRESSIONS", captured.Get("billing_event"))
		assert.Equal(t, "2000", captured.Get("daily_budget"))
		assert.Equal(t, "2025-02-01T00:00:00-0300", captured.Get("start_time"))
		assert.Contains(t, captured.Get("targeting"), `"geo_locations"`)
		assert.Contains(t, captured.Get("targeting"), `"targeting_automation"`)
	})

	t.Run("Falha ao resolver a conta interrompe a criação", func(t *testing.T) {
		client.EXPECT().
			GetCampaignAccountID(gomock.Any(), "222").
			Return("", errors.New("boom"))

		_, err := service.CreateAdSet(context.Background(), newInput())
		require.Error(t, err)
	})

	t.Run("Success falso vira erro de mutação mesmo com ID", func(t *testing.T) {
		client.EXPECT().
			GetCampaignAccountID(gomock.Any(), "222").
			Return("act_987", nil)

		client.EXPECT().
			CreateAdSet(gomock.Any(), "act_987", gomock.Any()).
			Return(&metadomain.MutationResult{ID: "120220000000000", Success: boolPtr(false)}, nil)

		_, err := service.CreateAdSet(context.Background(), newInput())

		var rejected domain.MutationRejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, "ad set creation", rejected.Operation)
	})
}
