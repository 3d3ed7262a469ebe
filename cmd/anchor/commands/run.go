// ABOUTME: Run command: assembles storage, services, and the interactive shell
// ABOUTME: This is also the root command's default action
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/anchorup/anchor/internal/ai"
	"github.com/anchorup/anchor/internal/cli"
	"github.com/anchorup/anchor/internal/community"
	"github.com/anchorup/anchor/internal/config"
	"github.com/anchorup/anchor/internal/kvstore"
	"github.com/anchorup/anchor/internal/logging"
	"github.com/anchorup/anchor/internal/profile"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive companion",
		RunE:  runApp,
	}
}

func runApp(cmd *cobra.Command, args []string) error {
	// Load .env for the API key
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, debugFlag)

	kvc, err := kvstore.Open(kvstore.Config{
		Host:     cfg.CharmHost,
		DBName:   cfg.CharmDBName,
		AutoSync: cfg.AutoSync,
	})
	if err != nil {
		return fmt.Errorf("opening profile storage: %w", err)
	}
	defer func() { _ = kvc.Close() }()

	aiClient, err := ai.NewClient(cfg)
	if err != nil {
		return err
	}

	store := profile.NewStore(kvc, logger)
	comm := community.NewMock(cfg.CommunityLatency)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Voice devices are bound per deployment; without a configured audio
	// stack the voice screen degrades gracefully.
	app := cli.NewApp(cfg, store, comm, aiClient, nil, os.Stdin, os.Stdout, logger)
	return app.Run(ctx)
}
