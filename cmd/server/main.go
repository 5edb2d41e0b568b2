// Servidor MCP para a Meta Marketing API.
//
// Uso:
//
//	server serve                  # transporte stdio (padrão)
//	server serve --transport http # endpoint streamable em /mcp
//	server version
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-ads-mcp/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-ads-mcp/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-mcp/internal/api"
	"github.com/vfg2006/meta-ads-mcp/internal/config"
	"github.com/vfg2006/meta-ads-mcp/internal/mcp"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "meta-ads-mcp",
		Short: "Servidor MCP para gestão de campanhas na Meta Marketing API",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var transport string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Inicia o servidor MCP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(transport)
		},
	}

	cmd.Flags().StringVarP(&transport, "transport", "t", "stdio", "transporte MCP (stdio ou http)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Mostra a versão",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

func runServe(transport string) error {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tokenProvider := metaclient.EnvTokenProvider(cfg.Meta.TokenEnvVar)
	metaClient := metaclient.NewClient(cfg, tokenProvider)
	metaIntegrator := meta.New(cfg, metaClient)

	mcpServer := sdk.NewServer(&sdk.Implementation{
		Name:    "meta-ads-mcp",
		Version: version,
	}, nil)

	mcpHandler := mcp.NewMCPHandler(metaIntegrator)
	mcpHandler.RegisterTools(mcpServer)

	switch transport {
	case "stdio":
		logrus.Info("Servidor MCP iniciando no transporte stdio")
		return mcpServer.Run(ctx, &sdk.StdioTransport{})
	case "http":
		server, err := api.New(cfg, mcpServer)
		if err != nil {
			return err
		}
		return server.Run(ctx)
	default:
		return fmt.Errorf("transporte não suportado: %s", transport)
	}
}

// configureLogger define o formato dos logs. Logs vão para stderr, o que
// mantém o stdout livre para o transporte stdio do MCP.
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
