// ABOUTME: Meetings screen: upcoming fellowship meetings with one-tap join
package cli

import (
	"context"
	"fmt"

	"github.com/anchorup/anchor/internal/router"
)

func (a *App) meetingsScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n🗓 Upcoming Meetings")

	meetings, err := a.community.Meetings(ctx)
	if err != nil {
		return fmt.Errorf("loading meetings: %w", err)
	}

	labels := make([]string, 0, len(meetings)+1)
	for _, m := range meetings {
		labels = append(labels, fmt.Sprintf("[%s] %s — %s, hosted by %s", m.Type, m.Title, m.Time, m.Host))
	}
	labels = append(labels, "Back home")

	choice, err := a.promptChoice("Join a meeting?", labels)
	if err != nil {
		return err
	}

	if choice >= 0 && choice < len(meetings) {
		m := meetings[choice]
		fmt.Fprintf(a.out, "%s\n", m.Description)
		a.router.JoinMeeting(m)
		return nil
	}

	a.router.Navigate(router.ViewHome)
	return nil
}
