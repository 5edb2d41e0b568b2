package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	metadomain "github.com/vfg2006/meta-ads-mcp/infrastructure/integrator/meta/domain"
)

const adSetFields = "id,name,status,daily_budget,lifetime_budget,optimization_goal,billing_event,start_time,end_time"

type responseAdSets struct {
	Data []metadomain.AdSet `json:"data"`
}

// ListAdSets lista os conjuntos de anúncios de uma campanha
func (c *MetaClient) ListAdSets(ctx context.Context, campaignID string, limit int) ([]metadomain.AdSet, error) {
	params := url.Values{}
	params.Set("fields", adSetFields)
	params.Set("limit", strconv.Itoa(limit))

	var response responseAdSets
	endpoint := fmt.Sprintf("%s/adsets", campaignID)
	if err := c.request(ctx, http.MethodGet, endpoint, params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// GetAdSetFields busca um subconjunto de campos de um conjunto de anúncios.
// As mutações leem o estado atual antes de escrever, cada uma com a sua
// lista de campos.
func (c *MetaClient) GetAdSetFields(ctx context.Context, adSetID string, fields string) (*metadomain.AdSet, error) {
	params := url.Values{}
	params.Set("fields", fields)

	var adSet metadomain.AdSet
	if err := c.request(ctx, http.MethodGet, adSetID, params, &adSet); err != nil {
		return nil, err
	}

	return &adSet, nil
}

// UpdateAdSet aplica uma escrita parcial sobre o conjunto de anúncios
func (c *MetaClient) UpdateAdSet(ctx context.Context, adSetID string, params url.Values) (*metadomain.MutationResult, error) {
	var result metadomain.MutationResult
	if err := c.request(ctx, http.MethodPost, adSetID, params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// CreateAdSet cria um conjunto de anúncios na conta informada
func (c *MetaClient) CreateAdSet(ctx context.Context, accountID string, params url.Values) (*metadomain.MutationResult, error) {
	var result metadomain.MutationResult
	endpoint := fmt.Sprintf("%s/adsets", accountID)
	if err := c.request(ctx, http.MethodPost, endpoint, params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
