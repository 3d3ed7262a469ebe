// ABOUTME: Sponsor match screen: browse sponsor profiles and file one pending request
package cli

import (
	"context"
	"fmt"

	"github.com/anchorup/anchor/internal/profile"
	"github.com/anchorup/anchor/internal/router"
)

func (a *App) sponsorMatchScreen(ctx context.Context) error {
	p := a.profiles.Current()
	if p == nil {
		a.router.Navigate(router.ViewHome)
		return nil
	}

	fmt.Fprintln(a.out, "\n🧭 Find Your Sponsor")
	fmt.Fprintln(a.out, `"Steady in the storm together."`)

	sponsors, err := a.community.Sponsors(ctx)
	if err != nil {
		return fmt.Errorf("loading sponsors: %w", err)
	}

	labels := make([]string, 0, len(sponsors)+1)
	for _, s := range sponsors {
		status := ""
		switch {
		case p.AssignedSponsorID == s.ID:
			status = " [your sponsor]"
		case p.PendingSponsorID == s.ID:
			status = " [pending]"
		}
		labels = append(labels, fmt.Sprintf("%s — %s sober, %v, availability %s%s",
			s.Name, s.SoberTime, s.Specialty, s.Availability, status))
	}
	labels = append(labels, "Back")

	choice, err := a.promptChoice("Request a sponsor:", labels)
	if err != nil {
		return err
	}
	if choice < 0 || choice >= len(sponsors) {
		a.router.Navigate(router.ViewCommunity)
		return nil
	}

	s := sponsors[choice]
	fmt.Fprintf(a.out, "%s\n", s.Bio)
	if p.AssignedSponsorID == s.ID || p.PendingSponsorID == s.ID {
		fmt.Fprintln(a.out, "You've already reached out here.")
		return nil
	}

	if err := a.profiles.Apply(profile.RequestSponsor{SponsorID: s.ID}); err != nil {
		return fmt.Errorf("requesting sponsor: %w", err)
	}
	fmt.Fprintf(a.out, "Request sent to %s. You'll be connected once they accept.\n", s.Name)
	return nil
}
