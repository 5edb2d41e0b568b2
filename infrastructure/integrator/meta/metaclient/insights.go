package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	metadomain "github.com/vfg2006/meta-ads-mcp/infrastructure/integrator/meta/domain"
)

const insightFields = "impressions,clicks,spend,cpm,cpc,ctr,reach,frequency,actions,cost_per_action_type,action_values"

type responseInsights struct {
	Data []metadomain.Insight `json:"data"`
}

// GetInsights consulta métricas de desempenho de qualquer objeto da
// hierarquia. O chamador monta level, período e breakdowns; o campo fields
// é fixado aqui quando ausente.
func (c *MetaClient) GetInsights(ctx context.Context, objectID string, params url.Values) ([]metadomain.Insight, error) {
	if params == nil {
		params = url.Values{}
	}
	if params.Get("fields") == "" {
		params.Set("fields", insightFields)
	}

	var response responseInsights
	endpoint := fmt.Sprintf("%s/insights", objectID)
	if err := c.request(ctx, http.MethodGet, endpoint, params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}
