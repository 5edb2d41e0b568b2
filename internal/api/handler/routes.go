package handler

import (
	"net/http"

	"github.com/vfg2006/meta-ads-mcp/internal/api/handler/router"
	"github.com/vfg2006/meta-ads-mcp/pkg/middleware"
)

// Vazão generosa para um único cliente MCP; o gargalo real é o rate limit
// do upstream.
const (
	mcpRequestsPerSecond = 10
	mcpBurst             = 20
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// MCP expõe o endpoint streamable do protocolo. GET serve o canal de
// eventos, POST as mensagens e DELETE encerra a sessão.
func MCP(mcpHandler http.Handler) []router.Route {
	limiter := middleware.RateLimitMiddleware(mcpRequestsPerSecond, mcpBurst)

	return []router.Route{
		{
			Path:        "/mcp",
			Method:      http.MethodGet,
			Handler:     mcpHandler,
			Middlewares: []func(http.Handler) http.Handler{limiter},
		},
		{
			Path:        "/mcp",
			Method:      http.MethodPost,
			Handler:     mcpHandler,
			Middlewares: []func(http.Handler) http.Handler{limiter},
		},
		{
			Path:        "/mcp",
			Method:      http.MethodDelete,
			Handler:     mcpHandler,
			Middlewares: []func(http.Handler) http.Handler{limiter},
		},
	}
}
