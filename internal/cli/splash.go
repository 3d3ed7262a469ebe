// ABOUTME: Splash and login screens: resume a kept profile or start a fresh one
// ABOUTME: Validation failures re-prompt; nothing is persisted until the form passes
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/anchorup/anchor/internal/models"
	"github.com/anchorup/anchor/internal/profile"
)

func (a *App) splashScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n⚓ ANCHOR — Hope. Recovery. Freedom.")
	fmt.Fprintln(a.out, `"We have this hope as an anchor for the soul, firm and secure." — Hebrews 6:19`)

	choice, err := a.promptChoice("\nHow would you like to begin?", []string{
		"Start my journey (new profile)",
		"I've been here before (resume)",
		"Quit",
	})
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		if p := a.profiles.Resume(); p != nil {
			fmt.Fprintf(a.out, "Welcome back, %s. Day %d.\n", p.DisplayName(), p.DaysSober(timeNow()))
			return nil
		}
		fmt.Fprintln(a.out, "No saved journey found on this device. Let's start a new one.")
		return a.loginForm(ctx)
	case 2, -1:
		return errQuit
	default:
		return a.loginForm(ctx)
	}
}

func (a *App) loginForm(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		name, err := a.promptLine("What should we call you?")
		if err != nil {
			return err
		}

		titles := []string{"Sister", "Brother", "No title"}
		ti, err := a.promptChoice("Choose a title:", titles)
		if err != nil {
			return err
		}
		title := models.TitleNone
		switch ti {
		case 0:
			title = models.TitleSister
		case 1:
			title = models.TitleBrother
		}

		sober, err := a.promptDate("When did your sobriety begin?")
		if err != nil {
			return err
		}

		p, cerr := a.profiles.CreateFromLogin(name, title, sober)
		if cerr != nil {
			switch {
			case errors.Is(cerr, profile.ErrEmptyName):
				fmt.Fprintln(a.out, "We need a name to walk with you. Try again.")
			case errors.Is(cerr, profile.ErrFutureSoberDate):
				fmt.Fprintln(a.out, "That date is in the future. Every journey starts today or earlier.")
			default:
				fmt.Fprintf(a.out, "Could not save your profile: %v\n", cerr)
			}
			continue
		}

		fmt.Fprintf(a.out, "Welcome, %s. Day %d of your journey.\n", p.DisplayName(), p.DaysSober(timeNow()))
		return nil
	}
}
