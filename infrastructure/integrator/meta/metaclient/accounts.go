package metaclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	metadomain "github.com/vfg2006/meta-ads-mcp/infrastructure/integrator/meta/domain"
)

const adAccountFields = "id,name,currency,account_status,timezone_name,business"

type responseAdAccounts struct {
	Data []metadomain.AdAccount `json:"data"`
}

// ListAdAccounts lista as contas de anúncio acessíveis pela credencial atual
func (c *MetaClient) ListAdAccounts(ctx context.Context, limit int) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Set("fields", adAccountFields)
	params.Set("limit", strconv.Itoa(limit))

	var response responseAdAccounts
	if err := c.request(ctx, http.MethodGet, "me/adaccounts", params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}
