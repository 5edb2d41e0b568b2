// Package mcp expõe as operações do integrador como tools MCP. Toda
// resposta é texto: dados formatados em caso de sucesso, mensagem
// normalizada em caso de falha. Handlers nunca devolvem erro Go para
// falhas de domínio.
package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-ads-mcp/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-mcp/internal/domain"
	"github.com/vfg2006/meta-ads-mcp/internal/render"
	"github.com/vfg2006/meta-ads-mcp/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-mcp/pkg/utils"
)

// Integrator é a superfície do orquestrador consumida pelos tools
type Integrator interface {
	ListAdAccounts(ctx context.Context, in *domain.ListAccountsInput) ([]metadomain.AdAccount, error)
	ListCampaigns(ctx context.Context, in *domain.ListCampaignsInput) ([]metadomain.Campaign, error)
	ListAdSets(ctx context.Context, in *domain.ListAdSetsInput) ([]metadomain.AdSet, error)
	ListAds(ctx context.Context, in *domain.ListAdsInput) ([]metadomain.Ad, error)
	GetInsights(ctx context.Context, in *domain.GetInsightsInput) ([]metadomain.Insight, error)
	GetAdCreative(ctx context.Context, in *domain.GetCreativeInput) (*metadomain.Creative, error)
	GenerateReport(ctx context.Context, in *domain.GenerateReportInput) ([]metadomain.Insight, error)
	UpdateAdSetTargeting(ctx context.Context, in *domain.UpdateAdSetTargetingInput) (*domain.TargetingUpdate, error)
	UpdateAdSetBudget(ctx context.Context, in *domain.UpdateAdSetBudgetInput) (*domain.BudgetUpdate, error)
	UpdateAdSetStatus(ctx context.Context, in *domain.UpdateAdSetStatusInput) (*domain.StatusUpdate, error)
	CreateCampaign(ctx context.Context, in *domain.CreateCampaignInput) (*domain.CreatedEntity, error)
	CreateAdSet(ctx context.Context, in *domain.CreateAdSetInput) (*domain.CreatedEntity, error)
}

// MCPHandler adapta o integrador para o protocolo MCP
type MCPHandler struct {
	integrator Integrator
}

func NewMCPHandler(integrator Integrator) *MCPHandler {
	return &MCPHandler{integrator: integrator}
}

func textResult(text string) *sdk.CallToolResult {
	return &sdk.CallToolResult{
		Content: []sdk.Content{
			&sdk.TextContent{Text: text},
		},
	}
}

// errorResult converte qualquer falha na mensagem normalizada, marcada
// como erro no protocolo
func errorResult(tool, invocationID string, err error) *sdk.CallToolResult {
	message := apiErrors.Normalize(err)
	logrus.WithFields(logrus.Fields{
		"tool":          tool,
		"invocation_id": invocationID,
		"error":         err.Error(),
	}).Warn("mcp: tool call failed")

	return &sdk.CallToolResult{
		IsError: true,
		Content: []sdk.Content{
			&sdk.TextContent{Text: message},
		},
	}
}

// invocationID gera o identificador de rastreio de uma chamada de tool. A
// falha na geração não interrompe a chamada.
func invocationID() string {
	id, err := utils.GenerateID()
	if err != nil {
		return "unknown"
	}
	return id
}

func logCall(tool, invocationID string) {
	logrus.WithFields(logrus.Fields{
		"tool":          tool,
		"invocation_id": invocationID,
	}).Debug("mcp: tool called")
}

func (h *MCPHandler) HandleListAccounts(ctx context.Context, _ *sdk.CallToolRequest, input domain.ListAccountsInput) (*sdk.CallToolResult, any, error) {
	id := invocationID()
	logCall("meta_ads_list_accounts", id)

	if err := input.Validate(); err != nil {
		return errorResult("meta_ads_list_accounts", id, err), nil, nil
	}

	accounts, err := h.integrator.ListAdAccounts(ctx, &input)
	if err != nil {
		return errorResult("meta_ads_list_accounts", id, err), nil, nil
	}

	text, err := render.Accounts(&input, accounts)
	if err != nil {
		return errorResult("meta_ads_list_accounts", id, err), nil, nil
	}
	return textResult(text), nil, nil
}

func (h *MCPHandler) HandleListCampaigns(ctx context.Context, _ *sdk.CallToolRequest, input domain.ListCampaignsInput) (*sdk.CallToolResult, any, error) {
	id := invocationID()
	logCall("meta_ads_list_campaigns", id)

	if err := input.Validate(); err != nil {
		return errorResult("meta_ads_list_campaigns", id, err), nil, nil
	}

	campaigns, err := h.integrator.ListCampaigns(ctx, &input)
	if err != nil {
		return errorResult("meta_ads_list_campaigns", id, err), nil, nil
	}

	text, err := render.Campaigns(&input, campaigns)
	if err != nil {
		return errorResult("meta_ads_list_campaigns", id, err), nil, nil
	}
	return textResult(text), nil, nil
}

func (h *MCPHandler) HandleListAdSets(ctx context.Context, _ *sdk.CallToolRequest, input domain.ListAdSetsInput) (*sdk.CallToolResult, any, error) {
	id := invocationID()
	logCall("meta_ads_list_adsets", id)

	if err := input.Validate(); err != nil {
		return errorResult("meta_ads_list_adsets", id, err), nil, nil
	}

	adSets, err := h.integrator.ListAdSets(ctx, &input)
	if err != nil {
		return errorResult("meta_ads_list_adsets", id, err), nil, nil
	}

	text, err := render.AdSets(&input, adSets)
	if err != nil {
		return errorResult("meta_ads_list_adsets", id, err), nil, nil
	}
	return textResult(text), nil, nil
}

func (h *MCPHandler) HandleListAds(ctx context.Context, _ *sdk.CallToolRequest, input domain.ListAdsInput) (*sdk.CallToolResult, any, error) {
	id := invocationID()
	logCall("meta_ads_list_ads", id)

	if err := input.Validate(); err != nil {
		return errorResult("meta_ads_list_ads", id, err), nil, nil
	}

	ads, err := h.integrator.ListAds(ctx, &input)
	if err != nil {
		return errorResult("meta_ads_list_ads", id, err), nil, nil
	}

	text, err := render.Ads(&input, ads)
	if err != nil {
		return errorResult("meta_ads_list_ads", id, err), nil, nil
	}
	return textResult(text), nil, nil
}

func (h *MCPHandler) HandleGetInsights(ctx context.Context, _ *sdk.CallToolRequest, input domain.GetInsightsInput) (*sdk.CallToolResult, any, error) {
	id := invocationID()
	logCall("meta_ads_get_insights", id)

	if err := input.Validate(); err != nil {
		return errorResult("meta_ads_get_insights", id, err), nil, nil
	}

	insights, err := h.integrator.GetInsights(ctx, &input)
	if err != nil {
		return errorResult("meta_ads_get_insights", id, err), nil, nil
	}

	text, err := render.Insights(&input, insights)
	if err != nil {
		return errorResult("meta_ads_get_insights", id, err), nil, nil
	}
	return textResult(text), nil, nil
}

func (h *MCPHandler) HandleGetCreative(ctx context.Context, _ *sdk.CallToolRequest, input domain.GetCreativeInput) (*sdk.CallToolResult, any, error) {
	id := invocationID()
	logCall("meta_ads_get_creative", id)

	if err := input.Validate(); err != nil {
		return errorResult("meta_ads_get_creative", id, err), nil, nil
	}

	creative, err := h.integrator.GetAdCreative(ctx, &input)
	if err != nil {
		return errorResult("meta_ads_get_creative", id, err), nil, nil
	}

	text, err := render.Creative(&input, creative)
	if err != nil {
		return errorResult("meta_ads_get_creative", id, err), nil, nil
	}
	return textResult(text), nil, nil
}

func (h *MCPHandler) HandleGenerateReport(ctx context.Context, _ *sdk.CallToolRequest, input domain.GenerateReportInput) (*sdk.CallToolResult, any, error) {
	id := invocationID()
	logCall("meta_ads_generate_report", id)

	if err := input.Validate(); err != nil {
		return errorResult("meta_ads_generate_report", id, err), nil, nil
	}

	insights, err := h.integrator.GenerateReport(ctx, &input)
	if err != nil {
		return errorResult("meta_ads_generate_report", id, err), nil, nil
	}

	text, err := render.Report(&input, insights)
	if err != nil {
		return errorResult("meta_ads_generate_report", id, err), nil, nil
	}
	return textResult(text), nil, nil
}

func (h *MCPHandler) HandleUpdateAdSetTargeting(ctx context.Context, _ *sdk.CallToolRequest, input domain.UpdateAdSetTargetingInput) (*sdk.CallToolResult, any, error) {
	id := invocationID()
	logCall("meta_ads_update_adset_targeting", id)

	if err := input.Validate(); err != nil {
		return errorResult("meta_ads_update_adset_targeting", id, err), nil, nil
	}

	update, err := h.integrator.UpdateAdSetTargeting(ctx, &input)
	if err != nil {
		return errorResult("meta_ads_update_adset_targeting", id, err), nil, nil
	}

	text, err := render.TargetingUpdated(input.ResponseFormat, update)
	if err != nil {
		return errorResult("meta_ads_update_adset_targeting", id, err), nil, nil
	}
	return textResult(text), nil, nil
}

func (h *MCPHandler) HandleUpdateAdSetBudget(ctx context.Context, _ *sdk.CallToolRequest, input domain.UpdateAdSetBudgetInput) (*sdk.CallToolResult, any, error) {
	id := invocationID()
	logCall("meta_ads_update_adset_budget", id)

	if err := input.Validate(); err != nil {
		return errorResult("meta_ads_update_adset_budget", id, err), nil, nil
	}

	update, err := h.integrator.UpdateAdSetBudget(ctx, &input)
	if err != nil {
		return errorResult("meta_ads_update_adset_budget", id, err), nil, nil
	}

	text, err := render.BudgetUpdated(input.ResponseFormat, update)
	if err != nil {
		return errorResult("meta_ads_update_adset_budget", id, err), nil, nil
	}
	return textResult(text), nil, nil
}

func (h *MCPHandler) HandleUpdateAdSetStatus(ctx context.Context, _ *sdk.CallToolRequest, input domain.UpdateAdSetStatusInput) (*sdk.CallToolResult, any, error) {
	id := invocationID()
	logCall("meta_ads_update_adset_status", id)

	if err := input.Validate(); err != nil {
		return errorResult("meta_ads_update_adset_status", id, err), nil, nil
	}

	update, err := h.integrator.UpdateAdSetStatus(ctx, &input)
	if err != nil {
		return errorResult("meta_ads_update_adset_status", id, err), nil, nil
	}

	text, err := render.StatusUpdated(input.ResponseFormat, update)
	if err != nil {
		return errorResult("meta_ads_update_adset_status", id, err), nil, nil
	}
	return textResult(text), nil, nil
}

func (h *MCPHandler) HandleCreateCampaign(ctx context.Context, _ *sdk.CallToolRequest, input domain.CreateCampaignInput) (*sdk.CallToolResult, any, error) {
	id := invocationID()
	logCall("meta_ads_create_campaign", id)

	if err := input.Validate(); err != nil {
		return errorResult("meta_ads_create_campaign", id, err), nil, nil
	}

	created, err := h.integrator.CreateCampaign(ctx, &input)
	if err != nil {
		return errorResult("meta_ads_create_campaign", id, err), nil, nil
	}

	text, err := render.CampaignCreated(&input, created)
	if err != nil {
		return errorResult("meta_ads_create_campaign", id, err), nil, nil
	}
	return textResult(text), nil, nil
}

func (h *MCPHandler) HandleCreateAdSet(ctx context.Context, _ *sdk.CallToolRequest, input domain.CreateAdSetInput) (*sdk.CallToolResult, any, error) {
	id := invocationID()
	logCall("meta_ads_create_adset", id)

	if err := input.Validate(); err != nil {
		return errorResult("meta_ads_create_adset", id, err), nil, nil
	}

	created, err := h.integrator.CreateAdSet(ctx, &input)
	if err != nil {
		return errorResult("meta_ads_create_adset", id, err), nil, nil
	}

	text, err := render.AdSetCreated(&input, created)
	if err != nil {
		return errorResult("meta_ads_create_adset", id, err), nil, nil
	}
	return textResult(text), nil, nil
}

func boolPtr(v bool) *bool {
	return &v
}

func readOnlyAnnotations(title string) *sdk.ToolAnnotations {
	return &sdk.ToolAnnotations{
		Title:           title,
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(true),
	}
}

func mutationAnnotations(title string, idempotent bool) *sdk.ToolAnnotations {
	return &sdk.ToolAnnotations{
		Title:           title,
		ReadOnlyHint:    false,
		DestructiveHint: boolPtr(false),
		IdempotentHint:  idempotent,
		OpenWorldHint:   boolPtr(false),
	}
}

// RegisterTools registra todos os tools no servidor MCP
func (h *MCPHandler) RegisterTools(mcpServer *sdk.Server) {
	sdk.AddTool(mcpServer, &sdk.Tool{
		Name:        "meta_ads_list_accounts",
		Description: "List the Meta ad accounts accessible with the configured access token",
		Annotations: readOnlyAnnotations("List Meta Ad Accounts"),
	}, h.HandleListAccounts)

	sdk.AddTool(mcpServer, &sdk.Tool{
		Name:        "meta_ads_list_campaigns",
		Description: "List the campaigns of an ad account, with objective, status and budget",
		Annotations: readOnlyAnnotations("List Campaigns of an Account"),
	}, h.HandleListCampaigns)

	sdk.AddTool(mcpServer, &sdk.Tool{
		Name:        "meta_ads_list_adsets",
		Description: "List the ad sets of a campaign, with budget, optimization and scheduling",
		Annotations: readOnlyAnnotations("List Ad Sets of a Campaign"),
	}, h.HandleListAdSets)

	sdk.AddTool(mcpServer, &sdk.Tool{
		Name:        "meta_ads_list_ads",
		Description: "List the ads of an ad set, with status and creative reference",
		Annotations: readOnlyAnnotations("List Ads of an Ad Set"),
	}, h.HandleListAds)

	sdk.AddTool(mcpServer, &sdk.Tool{
		Name:        "meta_ads_get_insights",
		Description: "Get performance metrics for an account, campaign, ad set or ad",
		Annotations: readOnlyAnnotations("Get Performance Metrics"),
	}, h.HandleGetInsights)

	sdk.AddTool(mcpServer, &sdk.Tool{
		Name:        "meta_ads_get_creative",
		Description: "Get the full creative details of an ad (texts, images, links, CTA)",
		Annotations: readOnlyAnnotations("Get Ad Creative Details"),
	}, h.HandleGetCreative)

	sdk.AddTool(mcpServer, &sdk.Tool{
		Name:        "meta_ads_generate_report",
		Description: "Generate a performance report segmented by age, gender, country, region or placement",
		Annotations: readOnlyAnnotations("Generate Breakdown Report"),
	}, h.HandleGenerateReport)

	sdk.AddTool(mcpServer, &sdk.Tool{
		Name:        "meta_ads_update_adset_targeting",
		Description: "Update the demographic targeting (age and gender) of an ad set",
		Annotations: mutationAnnotations("Update Ad Set Targeting", true),
	}, h.HandleUpdateAdSetTargeting)

	sdk.AddTool(mcpServer, &sdk.Tool{
		Name:        "meta_ads_update_adset_budget",
		Description: "Update the daily budget of an ad set (value in cents)",
		Annotations: mutationAnnotations("Update Ad Set Budget", true),
	}, h.HandleUpdateAdSetBudget)

	sdk.AddTool(mcpServer, &sdk.Tool{
		Name:        "meta_ads_update_adset_status",
		Description: "Activate or pause an ad set",
		Annotations: mutationAnnotations("Change Ad Set Status", true),
	}, h.HandleUpdateAdSetStatus)

	sdk.AddTool(mcpServer, &sdk.Tool{
		Name:        "meta_ads_create_campaign",
		Description: "Create a new campaign with objective, budget and status",
		Annotations: mutationAnnotations("Create Campaign", false),
	}, h.HandleCreateCampaign)

	sdk.AddTool(mcpServer, &sdk.Tool{
		Name:        "meta_ads_create_adset",
		Description: "Create a new ad set inside a campaign, with targeting and optimization",
		Annotations: mutationAnnotations("Create Ad Set", false),
	}, h.HandleCreateAdSet)
}
