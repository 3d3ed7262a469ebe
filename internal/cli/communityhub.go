// ABOUTME: Community hub linking to fellowship, meetings, sponsors, testimonies, and outreach
package cli

import (
	"context"

	"github.com/anchorup/anchor/internal/router"
)

func (a *App) communityScreen(ctx context.Context) error {
	choice, err := a.promptChoice("\n🤝 Community", []string{
		"Human fellowship (peer line)",
		"Meetings",
		"Find a sponsor",
		"Sponsor chat",
		"Broken Chains (testimonies)",
		"Prayer wall",
		"Street outreach",
		"Back home",
	})
	if err != nil {
		return err
	}

	switch choice {
	case 0:
		a.router.Navigate(router.ViewPeerConnect)
	case 1:
		a.router.Navigate(router.ViewMeetings)
	case 2:
		a.router.Navigate(router.ViewSponsorMatch)
	case 3:
		a.router.Navigate(router.ViewSponsorChat)
	case 4:
		a.router.Navigate(router.ViewTestimonies)
	case 5:
		a.router.Navigate(router.ViewPrayerWall)
	case 6:
		a.router.Navigate(router.ViewOutreach)
	default:
		a.router.Navigate(router.ViewHome)
	}
	return nil
}
