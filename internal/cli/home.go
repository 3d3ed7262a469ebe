// ABOUTME: Home screen: the daily anchor view and the jump-off point to every other screen
// ABOUTME: Shows days sober and an encouragement verse before the main menu
package cli

import (
	"context"
	"fmt"

	"github.com/anchorup/anchor/internal/community"
	"github.com/anchorup/anchor/internal/models"
	"github.com/anchorup/anchor/internal/router"
)

func (a *App) homeScreen(ctx context.Context) error {
	p := a.profiles.Current()
	if p == nil {
		return a.splashScreen(ctx)
	}

	fmt.Fprintf(a.out, "\n⚓ Day %d — %s\n", p.DaysSober(timeNow()), p.DisplayName())
	if p.FaithMode {
		if vs := community.Verses(models.VersePromises); len(vs) > 0 {
			v := vs[p.DaysSober(timeNow())%len(vs)]
			fmt.Fprintf(a.out, "%s — %s\n", v.Text, v.Reference)
		}
	}

	options := []string{
		"Talk it out (text support)",
		"Voice support",
		"My toolkit",
		"Community",
		"Resources & hotlines",
		"My profile",
		"Log out",
		"Quit",
	}
	choice, err := a.promptChoice("Where do you want to go?", options)
	if err != nil {
		return err
	}

	switch choice {
	case 0:
		a.router.Navigate(router.ViewTextSupport)
	case 1:
		a.router.Navigate(router.ViewVoiceSupport)
	case 2:
		a.router.Navigate(router.ViewTools)
	case 3:
		a.router.Navigate(router.ViewCommunity)
	case 4:
		a.router.Navigate(router.ViewResources)
	case 5:
		a.router.Navigate(router.ViewProfile)
	case 6:
		a.logout()
		return a.splashScreen(ctx)
	case 7:
		return errQuit
	}
	return nil
}
