// ABOUTME: Text support screen: a chat session with the companion, history kept for the screen's life
// ABOUTME: A failed turn gets a calm canned apology pointing at 988; the session itself survives
package cli

import (
	"context"
	"fmt"

	"github.com/anchorup/anchor/internal/models"
	"github.com/anchorup/anchor/internal/router"
)

const supportFallback = "I'm having trouble connecting right now, but you are not alone. " +
	"If you are in crisis, please call or text 988 — someone is there for you around the clock."

func (a *App) textSupportScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n💬 Anchor is here. Type what's on your mind; an empty line ends the chat.")

	session := a.ai.OpenChat()
	for {
		line, err := a.promptLine("")
		if err != nil {
			return err
		}
		if line == "" {
			a.router.Navigate(router.ViewHome)
			return nil
		}

		reply, serr := session.Send(ctx, line)
		if serr != nil {
			fmt.Fprintln(a.out, supportFallback)
			a.logger.Warn("support chat turn failed", "error", serr)
			continue
		}
		fmt.Fprintln(a.out)
		a.renderMessage(models.NewMessage(models.SenderAI, "Anchor", reply, timeNow()))
	}
}
