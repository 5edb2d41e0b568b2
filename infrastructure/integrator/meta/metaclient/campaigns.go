package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	metadomain "github.com/vfg2006/meta-ads-mcp/infrastructure/integrator/meta/domain"
)

const campaignFields = "id,name,objective,status,daily_budget,lifetime_budget,start_time,stop_time"

type responseCampaigns struct {
	Data []metadomain.Campaign `json:"data"`
}

// ListCampaigns lista as campanhas de uma conta de anúncio
func (c *MetaClient) ListCampaigns(ctx context.Context, accountID string, limit int) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Set("fields", campaignFields)
	params.Set("limit", strconv.Itoa(limit))

	var response responseCampaigns
	endpoint := fmt.Sprintf("%s/campaigns", accountID)
	if err := c.request(ctx, http.MethodGet, endpoint, params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

type responseCampaignAccount struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
}

// GetCampaignAccountID resolve a conta dona de uma campanha. A Graph API
// devolve o account_id sem o prefixo "act_".
func (c *MetaClient) GetCampaignAccountID(ctx context.Context, campaignID string) (string, error) {
	params := url.Values{}
	params.Set("fields", "account_id")

	var response responseCampaignAccount
	if err := c.request(ctx, http.MethodGet, campaignID, params, &response); err != nil {
		return "", err
	}

	return response.AccountID, nil
}

// CreateCampaign cria uma campanha na conta informada. Os parâmetros já
// chegam montados pelo orquestrador.
func (c *MetaClient) CreateCampaign(ctx context.Context, accountID string, params url.Values) (*metadomain.MutationResult, error) {
	var result metadomain.MutationResult
	endpoint := fmt.Sprintf("%s/campaigns", accountID)
	if err := c.request(ctx, http.MethodPost, endpoint, params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
