package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/kcsbuilding/guttergauge/internal/access"
	"github.com/kcsbuilding/guttergauge/internal/catalog"
	"github.com/kcsbuilding/guttergauge/internal/match"
	"github.com/kcsbuilding/guttergauge/internal/server"
)

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the matching API over HTTP",
	Long: `Start an HTTP server exposing:

  GET /health
  GET /api/match?base=&face=&back=&region=&category=&top_n=
  GET /api/catalog/stats

API routes use Basic auth; the password is checked against the team and
admin hashes in the access block. The server will not start without a
team password hash.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()
	if !verboseFlag {
		// Request logs are Info level
		logger.SetLevel(hclog.Info)
	}

	gate, err := access.NewGate(cfg.Access.TeamPasswordHash, cfg.Access.AdminPasswordHash)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Options{
		Provider: catalog.NewProvider(cfg.CatalogSource(), cfg.CacheTTL(), logger.Named("catalog")),
		Engine:   match.NewEngine(cfg.Search.TopN, logger.Named("match")),
		Gate:     gate,
		Logger:   logger.Named("server"),
		Region:   cfg.Search.Region,
		Category: cfg.Search.Category,
		MinTier:  cfg.MinTier(),
	})
	if err != nil {
		return err
	}

	addr := firstNonEmpty(addrFlag, cfg.Server.Addr)
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx, addr); err != nil {
		return fmt.Errorf("serve %s: %w", addr, err)
	}
	return nil
}
