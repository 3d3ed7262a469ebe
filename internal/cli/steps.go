// ABOUTME: Step studies screen: the twelve steps with principles, scripture, and study questions
package cli

import (
	"context"
	"fmt"

	"github.com/anchorup/anchor/internal/community"
	"github.com/anchorup/anchor/internal/router"
)

func (a *App) twelveStepsScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n👣 Step Studies")

	steps := community.Steps()
	labels := make([]string, len(steps))
	for i, s := range steps {
		labels[i] = fmt.Sprintf("Step %d — %s (%s)", s.Number, s.Title, s.Principle)
	}

	si, err := a.promptChoice("Which step are you working?", labels)
	if err != nil {
		return err
	}
	if si == -1 {
		a.router.Navigate(router.ViewTools)
		return nil
	}

	s := steps[si]
	fmt.Fprintf(a.out, "\nStep %d: %s\n%s\n\n%s\n\nQuestions to sit with:\n", s.Number, s.Title, s.Description, s.Scripture)
	for _, q := range s.Questions {
		fmt.Fprintf(a.out, "  • %s\n", q)
	}
	return nil
}
