// ABOUTME: Coping tools screen: box breathing and 5-4-3-2-1 grounding, plus the deeper toolkit
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/anchorup/anchor/internal/router"
)

// sleepFn is a test seam so the breathing pacer runs instantly in tests.
var sleepFn = time.Sleep

func (a *App) toolsScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n🧰 Coping Tools — quick exercises to center yourself during a craving.")

	choice, err := a.promptChoice("", []string{
		"Box breathing",
		"5-4-3-2-1 grounding",
		"Journal",
		"Step studies",
		"Scripture bank",
		"Back home",
	})
	if err != nil {
		return err
	}

	switch choice {
	case 0:
		a.breathingTool(ctx)
	case 1:
		return a.groundingTool()
	case 2:
		a.router.Navigate(router.ViewJournal)
	case 3:
		a.router.Navigate(router.ViewTwelveSteps)
	case 4:
		a.router.Navigate(router.ViewScriptureBank)
	default:
		a.router.Navigate(router.ViewHome)
	}
	return nil
}

// breathingTool paces three rounds of 4-4-4 box breathing.
func (a *App) breathingTool(ctx context.Context) {
	fmt.Fprintln(a.out, "\nFollow along. Inhale deep, hold gently, and release slowly.")
	for round := 0; round < 3; round++ {
		for _, phase := range []string{"Inhale", "Hold", "Exhale"} {
			if ctx.Err() != nil {
				return
			}
			fmt.Fprintf(a.out, "  %s", phase)
			for s := 4; s >= 1; s-- {
				fmt.Fprintf(a.out, " %d", s)
				sleepFn(time.Second)
			}
			fmt.Fprintln(a.out)
		}
	}
	fmt.Fprintln(a.out, "Well done. Notice how your body feels now.")
}

// groundingTool walks the 5-4-3-2-1 senses exercise one step at a time.
func (a *App) groundingTool() error {
	steps := []struct{ label, desc string }{
		{"5 things you see", "Identify 5 visual objects around you."},
		{"4 things you feel", "Notice 4 physical sensations (the seat, the breeze, etc)."},
		{"3 things you hear", "Listen for 3 distinct sounds in your environment."},
		{"2 things you smell", "Try to detect 2 different scents."},
		{"1 thing you taste", "Notice 1 flavor or just the sensation of your mouth."},
	}

	fmt.Fprintln(a.out, "\n5-4-3-2-1 Grounding")
	for _, s := range steps {
		fmt.Fprintf(a.out, "\n%s\n%s\n", s.label, s.desc)
		if _, err := a.promptLine("Press Enter when you're ready for the next step"); err != nil {
			return err
		}
	}
	fmt.Fprintln(a.out, "You made it through. You are here, and you are safe.")
	return nil
}
