// ABOUTME: Street outreach screen: impact packages and recent miracles
package cli

import (
	"context"
	"fmt"

	"github.com/anchorup/anchor/internal/router"
)

func (a *App) outreachScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n🕊 Street Outreach")

	packages, err := a.community.ImpactPackages(ctx)
	if err != nil {
		return fmt.Errorf("loading packages: %w", err)
	}
	miracles, err := a.community.RecentMiracles(ctx)
	if err != nil {
		return fmt.Errorf("loading updates: %w", err)
	}

	fmt.Fprintln(a.out, "Recent miracles:")
	for _, m := range miracles {
		fmt.Fprintf(a.out, "  ✨ %s\n", m)
	}

	labels := make([]string, 0, len(packages)+1)
	fmt.Fprintln(a.out, "\nGive an impact package:")
	for _, p := range packages {
		fmt.Fprintf(a.out, "  %s (%s) — %s\n    includes: %v\n", p.Title, p.Cost, p.Description, p.Items)
		labels = append(labels, fmt.Sprintf("%s (%s)", p.Title, p.Cost))
	}
	labels = append(labels, "Back")

	choice, err := a.promptChoice("\nGive today?", labels)
	if err != nil {
		return err
	}
	if choice >= 0 && choice < len(packages) {
		if err := a.community.Donate(ctx, packages[choice].ID); err != nil {
			return fmt.Errorf("donating: %w", err)
		}
		fmt.Fprintf(a.out, "Thank you. One %s is on its way to the street.\n", packages[choice].Title)
		return nil
	}

	a.router.Navigate(router.ViewCommunity)
	return nil
}
