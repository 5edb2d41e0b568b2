package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func TestEnsureAccountPrefix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "ID numérico recebe o prefixo",
			input:    "123456789",
			expected: "act_123456789",
		},
		{
			name:     "ID já prefixado não é alterado",
			input:    "act_123456789",
			expected: "act_123456789",
		},
		{
			name:     "Normalização é idempotente",
			input:    EnsureAccountPrefix("987654"),
			expected: "act_987654",
		},
		{
			name:     "Espaços nas bordas são removidos",
			input:    "  123456789  ",
			expected: "act_123456789",
		},
		{
			name:     "Vazio permanece vazio",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EnsureAccountPrefix(tt.input))
		})
	}
}

func TestListCampaignsInput_Validate(t *testing.T) {
	tests := []struct {
		name        string
		input       *ListCampaignsInput
		expectedErr string
		validate    func(t *testing.T, in *ListCampaignsInput)
	}{
		{
			name:  "Entrada mínima aplica defaults",
			input: &ListCampaignsInput{AccountID: "123"},
			validate: func(t *testing.T, in *ListCampaignsInput) {
				assert.Equal(t, "act_123", in.AccountID)
				assert.Equal(t, FormatMarkdown, in.ResponseFormat)
				assert.Equal(t, DefaultLimit, in.EffectiveLimit())
			},
		},
		{
			name:        "Conta ausente é rejeitada",
			input:       &ListCampaignsInput{},
			expectedErr: "account_id is required",
		},
		{
			name:        "Limit abaixo do mínimo é rejeitado",
			input:       &ListCampaignsInput{AccountID: "123", Limit: intPtr(0)},
			expectedErr: "limit must be between 1 and 100",
		},
		{
			name:        "Limit acima do máximo é rejeitado",
			input:       &ListCampaignsInput{AccountID: "123", Limit: intPtr(101)},
			expectedErr: "limit must be between 1 and 100",
		},
		{
			name:  "Limit no teto é aceito",
			input: &ListCampaignsInput{AccountID: "123", Limit: intPtr(100)},
			validate: func(t *testing.T, in *ListCampaignsInput) {
				assert.Equal(t, 100, in.EffectiveLimit())
			},
		},
		{
			name:        "Formato desconhecido é rejeitado",
			input:       &ListCampaignsInput{AccountID: "123", ResponseFormat: "xml"},
			expectedErr: "invalid value for response_format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.IsType(t, ValidationError{}, err)
				assert.Equal(t, tt.expectedErr, err.Error())
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, tt.input)
			}
		})
	}
}

func TestGetInsightsInput_Validate(t *testing.T) {
	tests := []struct {
		name        string
		input       *GetInsightsInput
		expectedErr string
		validate    func(t *testing.T, in *GetInsightsInput)
	}{
		{
			name:  "Defaults de level, preset e formato",
			input: &GetInsightsInput{ObjectID: "act_1"},
			validate: func(t *testing.T, in *GetInsightsInput) {
				assert.Equal(t, LevelAccount, in.Level)
				assert.Equal(t, PresetLast30D, in.DatePreset)
				assert.Equal(t, FormatMarkdown, in.ResponseFormat)
				assert.False(t, in.HasCustomRange())
				assert.Equal(t, "last_30d", in.PeriodLabel())
			},
		},
		{
			name:        "Objeto ausente é rejeitado",
			input:       &GetInsightsInput{},
			expectedErr: "object_id is required",
		},
		{
			name:        "Since sem until é rejeitado",
			input:       &GetInsightsInput{ObjectID: "act_1", Since: "2025-01-01"},
			expectedErr: "if you use custom dates, you must specify both 'since' and 'until'",
		},
		{
			name:        "Until sem since é rejeitado",
			input:       &GetInsightsInput{ObjectID: "act_1", Until: "2025-01-31"},
			expectedErr: "if you use custom dates, you must specify both 'since' and 'until'",
		},
		{
			name:        "Data fora do formato é rejeitada",
			input:       &GetInsightsInput{ObjectID: "act_1", Since: "01/01/2025", Until: "2025-01-31"},
			expectedErr: `'since' must be a date in YYYY-MM-DD format, got "01/01/2025"`,
		},
		{
			name:  "Intervalo completo prevalece sobre o preset",
			input: &GetInsightsInput{ObjectID: "act_1", Since: "2025-01-01", Until: "2025-01-31", DatePreset: PresetLast7D},
			validate: func(t *testing.T, in *GetInsightsInput) {
				assert.True(t, in.HasCustomRange())
				assert.Equal(t, "2025-01-01 - 2025-01-31", in.PeriodLabel())
			},
		},
		{
			name:        "Preset desconhecido é rejeitado",
			input:       &GetInsightsInput{ObjectID: "act_1", DatePreset: "last_365d"},
			expectedErr: "invalid value for date_preset: last_365d",
		},
		{
			name:        "Level desconhecido é rejeitado",
			input:       &GetInsightsInput{ObjectID: "act_1", Level: "creative"},
			expectedErr: "invalid value for level: creative",
		},
		{
			name:        "Time increment acima do teto é rejeitado",
			input:       &GetInsightsInput{ObjectID: "act_1", TimeIncrement: intPtr(91)},
			expectedErr: "time_increment must be between 1 and 90",
		},
		{
			name:        "Time increment zero é rejeitado",
			input:       &GetInsightsInput{ObjectID: "act_1", TimeIncrement: intPtr(0)},
			expectedErr: "time_increment must be between 1 and 90",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr, err.Error())
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, tt.input)
			}
		})
	}
}

func TestGenerateReportInput_Validate(t *testing.T) {
	tests := []struct {
		name        string
		input       *GenerateReportInput
		expectedErr string
		validate    func(t *testing.T, in *GenerateReportInput)
	}{
		{
			name:  "Breakdown default é idade",
			input: &GenerateReportInput{ObjectID: "act_1"},
			validate: func(t *testing.T, in *GenerateReportInput) {
				assert.Equal(t, []BreakdownType{BreakdownAge}, in.Breakdowns)
			},
		},
		{
			name: "Mais de quatro breakdowns é rejeitado",
			input: &GenerateReportInput{
				ObjectID:   "act_1",
				Breakdowns: []BreakdownType{BreakdownAge, BreakdownGender, BreakdownCountry, BreakdownRegion, BreakdownPlacement},
			},
			expectedErr: "you can specify at most 4 breakdowns",
		},
		{
			name:        "Breakdown desconhecido é rejeitado",
			input:       &GenerateReportInput{ObjectID: "act_1", Breakdowns: []BreakdownType{"hour"}},
			expectedErr: "invalid value for breakdowns: hour",
		},
		{
			name:  "Breakdown combinado idade e gênero é aceito",
			input: &GenerateReportInput{ObjectID: "act_1", Breakdowns: []BreakdownType{BreakdownAgeGender}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr, err.Error())
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, tt.input)
			}
		})
	}
}

func TestUpdateAdSetTargetingInput_Validate(t *testing.T) {
	tests := []struct {
		name        string
		input       *UpdateAdSetTargetingInput
		expectedErr string
	}{
		{
			name:  "Somente idades é aceito",
			input: &UpdateAdSetTargetingInput{AdSetID: "111", AgeMin: intPtr(25), AgeMax: intPtr(44)},
		},
		{
			name:        "Idade mínima abaixo do piso é rejeitada",
			input:       &UpdateAdSetTargetingInput{AdSetID: "111", AgeMin: intPtr(17)},
			expectedErr: "age_min must be between 18 and 65",
		},
		{
			name:        "Idade máxima acima do teto é rejeitada",
			input:       &UpdateAdSetTargetingInput{AdSetID: "111", AgeMax: intPtr(66)},
			expectedErr: "age_max must be between 18 and 65",
		},
		{
			name:        "Idade máxima menor que a mínima é rejeitada",
			input:       &UpdateAdSetTargetingInput{AdSetID: "111", AgeMin: intPtr(40), AgeMax: intPtr(30)},
			expectedErr: "age_max must be greater than or equal to age_min",
		},
		{
			name:  "Idades iguais são aceitas",
			input: &UpdateAdSetTargetingInput{AdSetID: "111", AgeMin: intPtr(30), AgeMax: intPtr(30)},
		},
		{
			name:        "Gênero fora do domínio é rejeitado",
			input:       &UpdateAdSetTargetingInput{AdSetID: "111", Genders: []int{3}},
			expectedErr: "gender values must be 1 (men) or 2 (women)",
		},
		{
			name:  "Genders vazio significa todos os gêneros",
			input: &UpdateAdSetTargetingInput{AdSetID: "111", Genders: []int{}},
		},
		{
			name:        "Ad set ausente é rejeitado",
			input:       &UpdateAdSetTargetingInput{},
			expectedErr: "adset_id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr, err.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUpdateAdSetBudgetInput_Validate(t *testing.T) {
	tests := []struct {
		name        string
		input       *UpdateAdSetBudgetInput
		expectedErr string
	}{
		{
			name:  "Orçamento no mínimo é aceito",
			input: &UpdateAdSetBudgetInput{AdSetID: "111", DailyBudget: 100},
		},
		{
			name:        "Orçamento abaixo do mínimo é rejeitado",
			input:       &UpdateAdSetBudgetInput{AdSetID: "111", DailyBudget: 99},
			expectedErr: "daily_budget must be at least 100 cents",
		},
		{
			name:        "Orçamento ausente é rejeitado",
			input:       &UpdateAdSetBudgetInput{AdSetID: "111"},
			expectedErr: "daily_budget must be at least 100 cents",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr, err.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCreateCampaignInput_Validate(t *testing.T) {
	base := func() *CreateCampaignInput {
		return &CreateCampaignInput{
			AccountID:   "123",
			Name:        "Promo Verão 2025",
			Objective:   "OUTCOME_SALES",
			DailyBudget: intPtr(5000),
		}
	}

	t.Run("Entrada completa aplica defaults de status e categorias", func(t *testing.T) {
		in := base()
		require.NoError(t, in.Validate())
		assert.Equal(t, "act_123", in.AccountID)
		assert.Equal(t, StatusPaused, in.Status)
		assert.Equal(t, []string{"NONE"}, in.SpecialAdCategories)
	})

	t.Run("Nenhum orçamento é rejeitado", func(t *testing.T) {
		in := base()
		in.DailyBudget = nil
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "you must specify either daily_budget or lifetime_budget", err.Error())
	})

	t.Run("Os dois orçamentos juntos são rejeitados", func(t *testing.T) {
		in := base()
		in.LifetimeBudget = intPtr(100000)
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "you cannot specify both daily_budget and lifetime_budget", err.Error())
	})

	t.Run("Objetivo desconhecido é rejeitado", func(t *testing.T) {
		in := base()
		in.Objective = "CONVERSIONS"
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "invalid value for objective: CONVERSIONS", err.Error())
	})

	t.Run("Nome vazio é rejeitado", func(t *testing.T) {
		in := base()
		in.Name = "   "
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "name is required", err.Error())
	})

	t.Run("Nome acima de 400 caracteres é rejeitado", func(t *testing.T) {
		in := base()
		for len(in.Name) <= NameMaxLength {
			in.Name += in.Name
		}
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "name must be at most 400 characters", err.Error())
	})

	t.Run("Orçamento abaixo do mínimo é rejeitado", func(t *testing.T) {
		in := base()
		in.DailyBudget = intPtr(50)
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "daily_budget must be at least 100 cents", err.Error())
	})
}

func TestCreateAdSetInput_Validate(t *testing.T) {
	validTargeting := func() map[string]any {
		return map[string]any{
			"geo_locations":        map[string]any{"countries": []any{"BR"}},
			"targeting_automation": map[string]any{"advantage_audience": 0},
		}
	}

	base := func() *CreateAdSetInput {
		return &CreateAdSetInput{
			CampaignID:       "222",
			Name:             "Brasil 25-55",
			OptimizationGoal: "LINK_CLICKS",
			BillingEvent:     "IMPRESSIONS",
			BidAmount:        intPtr(200),
			DailyBudget:      intPtr(2000),
			Targeting:        validTargeting(),
		}
	}

	t.Run("Entrada completa é aceita com status default PAUSED", func(t *testing.T) {
		in := base()
		require.NoError(t, in.Validate())
		assert.Equal(t, StatusPaused, in.Status)
	})

	t.Run("Targeting ausente é rejeitado", func(t *testing.T) {
		in := base()
		in.Targeting = nil
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "targeting is required", err.Error())
	})

	t.Run("Targeting sem geo_locations é rejeitado", func(t *testing.T) {
		in := base()
		delete(in.Targeting, "geo_locations")
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "targeting must include 'geo_locations' with countries, regions or cities", err.Error())
	})

	t.Run("Targeting sem targeting_automation é rejeitado", func(t *testing.T) {
		in := base()
		delete(in.Targeting, "targeting_automation")
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "targeting must include 'targeting_automation' with advantage_audience (0 or 1)", err.Error())
	})

	t.Run("Targeting_automation sem advantage_audience é rejeitado", func(t *testing.T) {
		in := base()
		in.Targeting["targeting_automation"] = map[string]any{}
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "targeting_automation must include 'advantage_audience' (0=disabled, 1=enabled)", err.Error())
	})

	t.Run("Os dois orçamentos juntos são rejeitados", func(t *testing.T) {
		in := base()
		in.LifetimeBudget = intPtr(50000)
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "you cannot specify both daily_budget and lifetime_budget", err.Error())
	})

	t.Run("Nenhum orçamento é aceito na criação de ad set", func(t *testing.T) {
		// O orçamento pode estar definido no nível da campanha
		in := base()
		in.DailyBudget = nil
		require.NoError(t, in.Validate())
	})

	t.Run("Bid zero é rejeitado", func(t *testing.T) {
		in := base()
		in.BidAmount = intPtr(0)
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "bid_amount must be at least 1 cent", err.Error())
	})

	t.Run("Evento de cobrança desconhecido é rejeitado", func(t *testing.T) {
		in := base()
		in.BillingEvent = "CLICKS"
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "invalid value for billing_event: CLICKS", err.Error())
	})
}

func TestUpdateAdSetStatusInput_Validate(t *testing.T) {
	t.Run("Status válido é aceito", func(t *testing.T) {
		in := &UpdateAdSetStatusInput{AdSetID: "111", Status: StatusActive}
		require.NoError(t, in.Validate())
	})

	t.Run("Status fora do domínio é rejeitado", func(t *testing.T) {
		in := &UpdateAdSetStatusInput{AdSetID: "111", Status: "ARCHIVED"}
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, "invalid value for status: ARCHIVED", err.Error())
	})
}
