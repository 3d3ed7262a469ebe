// ABOUTME: Profile command: inspect and export the persisted profile without starting the shell
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anchorup/anchor/internal/config"
	"github.com/anchorup/anchor/internal/kvstore"
	"github.com/anchorup/anchor/internal/logging"
	"github.com/anchorup/anchor/internal/profile"
)

var profileFormat string

// NewProfileCmd creates the profile command with its subcommands.
func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the saved profile",
		RunE:  runProfileShow,
	}
	cmd.Flags().StringVar(&profileFormat, "format", "table", "Output format (table|json)")
	cmd.AddCommand(&cobra.Command{
		Use:   "export",
		Short: "Export the saved profile as JSON",
		RunE:  runProfileExport,
	})
	return cmd
}

func openStore() (*profile.Store, func(), error) {
	cfg, err := config.LoadStorage()
	if err != nil {
		return nil, nil, err
	}

	kvc, err := kvstore.Open(kvstore.Config{
		Host:     cfg.CharmHost,
		DBName:   cfg.CharmDBName,
		AutoSync: cfg.AutoSync,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("opening profile storage: %w", err)
	}

	logger := logging.New(os.Stderr, debugFlag)
	return profile.NewStore(kvc, logger), func() { _ = kvc.Close() }, nil
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	p := store.Load()
	if p == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved profile on this device.")
		return nil
	}

	out := cmd.OutOrStdout()
	if profileFormat == "json" {
		data, merr := json.MarshalIndent(p, "", "  ")
		if merr != nil {
			return fmt.Errorf("marshaling profile: %w", merr)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "%s\n", p.DisplayName())
	fmt.Fprintf(out, "Sober since: %s\n", p.SoberDate.Format("2006-01-02"))
	fmt.Fprintf(out, "Journal entries: %d\n", len(p.JournalEntries))
	fmt.Fprintf(out, "Goals: %d\n", len(p.Goals))
	return nil
}

func runProfileExport(cmd *cobra.Command, args []string) error {
	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	if store.Load() == nil {
		return fmt.Errorf("no saved profile to export")
	}

	path, err := store.Export()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}
