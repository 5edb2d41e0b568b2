package metaclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-ads-mcp/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-mcp/internal/config"
	"github.com/vfg2006/meta-ads-mcp/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TokenProvider obtém a credencial de acesso no momento da chamada. A
// leitura é sempre fresca: não há cache de token entre invocações.
type TokenProvider func() (string, error)

// EnvTokenProvider lê a credencial de uma variável de ambiente. Ausência é
// erro de configuração, nunca um default silencioso.
func EnvTokenProvider(envVar string) TokenProvider {
	return func() (string, error) {
		token := os.Getenv(envVar)
		if token == "" {
			return "", apiErrors.ConfigurationError{EnvVar: envVar}
		}
		return token, nil
	}
}

type Client interface {
	ListAdAccounts(ctx context.Context, limit int) ([]metadomain.AdAccount, error)
	ListCampaigns(ctx context.Context, accountID string, limit int) ([]metadomain.Campaign, error)
	ListAdSets(ctx context.Context, campaignID string, limit int) ([]metadomain.AdSet, error)
	ListAds(ctx context.Context, adSetID string, limit int) ([]metadomain.Ad, error)
	GetInsights(ctx context.Context, objectID string, params url.Values) ([]metadomain.Insight, error)
	GetAdCreative(ctx context.Context, adID string) (*metadomain.Creative, error)
	GetAdSetFields(ctx context.Context, adSetID string, fields string) (*metadomain.AdSet, error)
	GetCampaignAccountID(ctx context.Context, campaignID string) (string, error)
	CreateCampaign(ctx context.Context, accountID string, params url.Values) (*metadomain.MutationResult, error)
	CreateAdSet(ctx context.Context, accountID string, params url.Values) (*metadomain.MutationResult, error)
	UpdateAdSet(ctx context.Context, adSetID string, params url.Values) (*metadomain.MutationResult, error)
}

type MetaClient struct {
	Cfg           *config.Config
	HTTPClient    *http.Client
	TokenProvider TokenProvider
}

func NewClient(cfg *config.Config, tokenProvider TokenProvider) Client {
	return &MetaClient{
		Cfg:           cfg,
		HTTPClient:    &http.Client{},
		TokenProvider: tokenProvider,
	}
}

// request executa exatamente uma chamada contra a Graph API e decodifica o
// corpo JSON em out. Todos os parâmetros, inclusive de operações de escrita,
// vão na query string: é o canal uniforme que a Graph API aceita para
// leituras e escritas. Não há retry.
func (c *MetaClient) request(ctx context.Context, method, endpoint string, params url.Values, out any) error {
	token, err := c.TokenProvider()
	if err != nil {
		return err
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", token)

	requestURL := fmt.Sprintf("%s/%s?%s", c.Cfg.Meta.URL, endpoint, params.Encode())

	ctx, cancel := context.WithTimeout(ctx, c.Cfg.Meta.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", endpoint, err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return classifyTransportError(endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErrors.TransportError{Err: fmt.Errorf("reading response from %s: %w", endpoint, err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.statusError(endpoint, resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithFields(logrus.Fields{
			"endpoint": endpoint,
			"error":    err.Error(),
		}).Error("meta: failed to decode JSON response")
		return fmt.Errorf("decoding response from %s: %w", endpoint, err)
	}

	return nil
}

// classifyTransportError separa timeout de falha de conexão e remove a query
// string (que carrega a credencial) de qualquer URL embutida no erro
func classifyTransportError(endpoint string, err error) error {
	timeout := errors.Is(err, context.DeadlineExceeded)
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			timeout = true
		}
		err = fmt.Errorf("%s %s: %w", urlErr.Op, stripQuery(urlErr.URL), urlErr.Err)
	}

	logrus.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"timeout":  timeout,
	}).Error("meta: request failed before a response")

	return apiErrors.TransportError{Timeout: timeout, Err: err}
}

func stripQuery(rawURL string) string {
	if idx := strings.IndexByte(rawURL, '?'); idx >= 0 {
		return rawURL[:idx]
	}
	return rawURL
}

// statusError interpreta o envelope de erro da Graph API quando presente
func (c *MetaClient) statusError(endpoint string, statusCode int, body []byte) error {
	statusErr := apiErrors.UpstreamStatusError{StatusCode: statusCode}

	var envelope metadomain.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && !envelope.Error.IsEmpty() {
		statusErr.Detail = &apiErrors.UpstreamDetail{
			Message:        envelope.Error.Message,
			Code:           envelope.Error.Code,
			Subcode:        envelope.Error.ErrorSubcode,
			ErrorUserTitle: envelope.Error.ErrorUserTitle,
			ErrorUserMsg:   envelope.Error.ErrorUserMsg,
			FBTraceID:      envelope.Error.FBTraceID,
		}
	}

	fields := logrus.Fields{
		"endpoint":    endpoint,
		"status_code": statusCode,
	}
	if statusErr.Detail != nil {
		fields["fbtrace_id"] = statusErr.Detail.FBTraceID
		fields["error_code"] = statusErr.Detail.Code
	}
	logrus.WithFields(fields).Error("meta: upstream returned an error status")

	return statusErr
}
