// ABOUTME: Sponsor chat screen: reachable once a request is filed, accepted on first contact
package cli

import (
	"context"
	"fmt"

	"github.com/anchorup/anchor/internal/models"
	"github.com/anchorup/anchor/internal/profile"
	"github.com/anchorup/anchor/internal/router"
)

func (a *App) sponsorChatScreen(ctx context.Context) error {
	p := a.profiles.Current()
	if p == nil {
		a.router.Navigate(router.ViewHome)
		return nil
	}

	sponsorID := p.AssignedSponsorID
	if sponsorID == "" {
		if p.PendingSponsorID == "" {
			fmt.Fprintln(a.out, "You don't have a sponsor yet. Find one in the community.")
			a.router.Navigate(router.ViewSponsorMatch)
			return nil
		}
		sponsorID = p.PendingSponsorID
	}

	sponsor, err := a.community.SponsorByID(ctx, sponsorID)
	if err != nil {
		return fmt.Errorf("loading sponsor: %w", err)
	}

	// A pending request becomes a sponsorship the moment the sponsor
	// answers the chat.
	if p.AssignedSponsorID == "" {
		if err := a.profiles.Apply(profile.AssignSponsor{SponsorID: sponsor.ID}); err != nil {
			return fmt.Errorf("accepting sponsorship: %w", err)
		}
		fmt.Fprintf(a.out, "\n🤝 %s accepted your request. You have a sponsor now.\n", sponsor.Name)
	}

	fmt.Fprintf(a.out, "\n💬 Chat with %s — an empty line leaves the chat.\n", sponsor.Name)
	a.renderMessage(models.NewMessage(models.SenderOther, sponsor.Name,
		"Good to see you checking in. How is today treating you?", timeNow()))

	for {
		line, err := a.promptLine("")
		if err != nil {
			return err
		}
		if line == "" {
			a.router.Navigate(router.ViewCommunity)
			return nil
		}
		a.renderMessage(models.NewMessage(models.SenderUser, p.Name, line, timeNow()))
		a.renderMessage(models.NewMessage(models.SenderOther, sponsor.Name,
			"I hear you. One day at a time — call me any time you need to.", timeNow()))
	}
}
