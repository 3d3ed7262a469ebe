// ABOUTME: Broken Chains screen: shared victory stories with praise
package cli

import (
	"context"
	"fmt"

	"github.com/anchorup/anchor/internal/router"
)

func (a *App) testimoniesScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n⛓ Broken Chains")
	fmt.Fprintln(a.out, `"As iron sharpens iron..." — Proverbs 27:17`)

	stories, err := a.community.Testimonies(ctx)
	if err != nil {
		return fmt.Errorf("loading testimonies: %w", err)
	}

	labels := make([]string, 0, 2*len(stories)+1)
	for _, t := range stories {
		fmt.Fprintf(a.out, "\n[%s] %s\n  \"%s\"\n  — %s  🙌 %d\n", t.Category, t.Title, t.Content, t.UserName, t.PraiseCount)
	}
	for _, t := range stories {
		labels = append(labels, fmt.Sprintf("Praise \"%s\"", t.Title))
	}
	for _, t := range stories {
		labels = append(labels, fmt.Sprintf("Share \"%s\"", t.Title))
	}
	labels = append(labels, "Back")

	choice, err := a.promptChoice("\nLift someone up?", labels)
	if err != nil {
		return err
	}

	switch {
	case choice >= 0 && choice < len(stories):
		total, perr := a.community.PraiseTestimony(ctx, stories[choice].ID)
		if perr != nil {
			return fmt.Errorf("praising testimony: %w", perr)
		}
		fmt.Fprintf(a.out, "🙌 %d hands raised for %s.\n", total, stories[choice].UserName)
	case choice >= len(stories) && choice < 2*len(stories):
		fmt.Fprintf(a.out, "Copy and send: %s\n", stories[choice-len(stories)].ShareText())
	default:
		a.router.Navigate(router.ViewCommunity)
	}
	return nil
}
