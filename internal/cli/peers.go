// ABOUTME: Human fellowship screen: peer-line volunteers, callbacks, and starting video calls
package cli

import (
	"context"
	"fmt"

	"github.com/anchorup/anchor/internal/models"
	"github.com/anchorup/anchor/internal/router"
)

func (a *App) peerConnectScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n🤲 Human Fellowship")
	fmt.Fprintln(a.out, `"Bear one another's burdens." — Galatians 6:2`)

	vols, err := a.community.Volunteers(ctx)
	if err != nil {
		return fmt.Errorf("loading volunteers: %w", err)
	}

	labels := make([]string, 0, len(vols)+2)
	for _, v := range vols {
		labels = append(labels, fmt.Sprintf("%s %s — %d years, %s [%s]",
			v.Title, v.Name, v.SoberYears, v.Specialty, v.Status))
	}
	labels = append(labels, "Request a callback", "Back home")

	choice, err := a.promptChoice("Who would you like to reach?", labels)
	if err != nil {
		return err
	}

	switch {
	case choice >= 0 && choice < len(vols):
		v := vols[choice]
		if v.Status != models.VolunteerOnline {
			fmt.Fprintf(a.out, "%s %s isn't available right now. Try another sister or brother.\n", v.Title, v.Name)
			return nil
		}
		a.router.StartCall(models.CallPeer{Name: v.Name, Title: v.Title})
	case choice == len(vols):
		if err := a.community.RequestCallback(ctx); err != nil {
			return fmt.Errorf("requesting callback: %w", err)
		}
		fmt.Fprintln(a.out, "Request sent. A volunteer will reach out soon.")
	default:
		a.router.Navigate(router.ViewHome)
	}
	return nil
}
