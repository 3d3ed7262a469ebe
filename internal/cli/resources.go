// ABOUTME: Resources screen: bundled crisis hotlines plus grounded AI search with citations
package cli

import (
	"context"
	"fmt"

	"github.com/anchorup/anchor/internal/community"
	"github.com/anchorup/anchor/internal/router"
)

func (a *App) resourcesScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n🆘 Emergency Hotlines")
	for _, r := range community.CrisisResources() {
		fmt.Fprintf(a.out, "— %s (%s)\n  %s\n  %s\n", r.Title, r.Phone, r.Description, r.URL)
	}

	query, err := a.promptLine("\nSearch for local recovery resources (or press Enter to go back)")
	if err != nil {
		return err
	}
	if query == "" {
		a.router.Navigate(router.ViewHome)
		return nil
	}

	res, serr := a.ai.SearchResources(ctx,
		fmt.Sprintf("Find local recovery resources, support groups, or detox centers for: %s", query))
	if serr != nil {
		// The hotlines above still stand; only the search degrades
		fmt.Fprintln(a.out, "The search isn't available right now. The hotlines above are always there.")
		a.logger.Warn("resource search failed", "error", serr)
		return nil
	}

	fmt.Fprintf(a.out, "\n%s\n", res.Text)
	if len(res.Citations) > 0 {
		fmt.Fprintln(a.out, "\nSources:")
		for _, c := range res.Citations {
			fmt.Fprintf(a.out, "  • %s — %s\n", c.Title, c.URL)
		}
	}
	return nil
}
