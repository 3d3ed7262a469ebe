// ABOUTME: Meeting room screen: renders only while a meeting is joined; leaving returns to the list
package cli

import (
	"context"
	"fmt"

	"github.com/anchorup/anchor/internal/router"
)

func (a *App) meetingRoomScreen(ctx context.Context, sess router.Session) error {
	m := sess.ActiveMeeting
	fmt.Fprintf(a.out, "\n🪑 %s — hosted by %s\n", m.Title, m.Host)

	participants, err := a.community.Participants(ctx, m.ID)
	if err != nil {
		a.router.LeaveMeeting()
		return fmt.Errorf("joining %q: %w", m.Title, err)
	}

	fmt.Fprintln(a.out, "In the room:")
	for _, p := range participants {
		fmt.Fprintf(a.out, "  • %s (%s)\n", p.Name, p.Role)
	}

	if _, err := a.promptChoice("", []string{"Leave meeting"}); err != nil {
		return err
	}

	a.router.LeaveMeeting()
	fmt.Fprintln(a.out, "Keep coming back. It works if you work it.")
	return nil
}
