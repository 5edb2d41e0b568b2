package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	metadomain "github.com/vfg2006/meta-ads-mcp/infrastructure/integrator/meta/domain"
)

const (
	adFields       = "id,name,status,creative{id,name}"
	creativeFields = "creative{id,name,title,body,image_url,link_url,call_to_action_type,object_story_spec,asset_feed_spec}"
)

type responseAds struct {
	Data []metadomain.Ad `json:"data"`
}

// ListAds lista os anúncios de um conjunto de anúncios
func (c *MetaClient) ListAds(ctx context.Context, adSetID string, limit int) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Set("fields", adFields)
	params.Set("limit", strconv.Itoa(limit))

	var response responseAds
	endpoint := fmt.Sprintf("%s/ads", adSetID)
	if err := c.request(ctx, http.MethodGet, endpoint, params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

type responseAdCreative struct {
	ID       string               `json:"id"`
	Creative *metadomain.Creative `json:"creative"`
}

// GetAdCreative busca o criativo completo de um anúncio. O criativo pode
// não existir, caso em que o retorno é nil sem erro.
func (c *MetaClient) GetAdCreative(ctx context.Context, adID string) (*metadomain.Creative, error) {
	params := url.Values{}
	params.Set("fields", creativeFields)

	var response responseAdCreative
	if err := c.request(ctx, http.MethodGet, adID, params, &response); err != nil {
		return nil, err
	}

	return response.Creative, nil
}
