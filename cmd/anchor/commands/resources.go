// ABOUTME: Resources command: crisis hotlines offline, grounded search when a query is given
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/anchorup/anchor/internal/ai"
	"github.com/anchorup/anchor/internal/community"
	"github.com/anchorup/anchor/internal/config"
)

// NewResourcesCmd creates the resources command.
func NewResourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources [query]",
		Short: "Show crisis hotlines, or search for local recovery resources",
		Long: `Without arguments, print the bundled emergency hotlines. Works offline,
no account needed.

With a query, run one grounded search for local recovery resources:

  anchor resources "AA meetings in Austin"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runResources,
	}
}

func runResources(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for _, r := range community.CrisisResources() {
			fmt.Fprintf(out, "%s — %s\n", r.Title, r.Phone)
			fmt.Fprintf(out, "  %s\n", r.Description)
			fmt.Fprintf(out, "  %s\n", r.URL)
		}
		return nil
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, err := ai.NewClient(cfg)
	if err != nil {
		return err
	}

	res, err := client.SearchResources(cmd.Context(),
		fmt.Sprintf("Find local recovery resources, support groups, or detox centers for: %s", args[0]))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, res.Text)
	if len(res.Citations) > 0 {
		fmt.Fprintln(out, "\nSources:")
		for _, c := range res.Citations {
			fmt.Fprintf(out, "  %s — %s\n", c.Title, c.URL)
		}
	}
	return nil
}
