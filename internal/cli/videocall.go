// ABOUTME: Video call screen: renders only while a peer is connected; hanging up returns to fellowship
package cli

import (
	"context"
	"fmt"

	"github.com/anchorup/anchor/internal/router"
)

func (a *App) videoCallScreen(ctx context.Context, sess router.Session) error {
	peer := sess.ActiveCallPeer
	fmt.Fprintf(a.out, "\n📹 In call with %s %s\n", peer.Title, peer.Name)

	if _, err := a.promptChoice("", []string{"Hang up"}); err != nil {
		return err
	}

	a.router.EndCall()
	fmt.Fprintln(a.out, "Call ended. Fellowship is a phone call away, any time.")
	return nil
}
