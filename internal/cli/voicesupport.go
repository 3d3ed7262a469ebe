// ABOUTME: Voice support screen: opens devices, runs the live session, prints transcripts
// ABOUTME: Any device or dial failure aborts back to the previous screen with the mic released
package cli

import (
	"context"
	"fmt"

	"github.com/anchorup/anchor/internal/ai/voice"
	"github.com/anchorup/anchor/internal/router"
)

func (a *App) voiceSupportScreen(ctx context.Context) error {
	defer a.router.Navigate(router.ViewHome)

	if a.voice == nil {
		fmt.Fprintln(a.out, "Voice support isn't available on this device. The text companion is always here.")
		return nil
	}

	capture, err := a.voice.OpenCapture(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Couldn't open the microphone: %v\n", err)
		return nil
	}

	transport, err := a.voice.DialTransport(ctx)
	if err != nil {
		_ = capture.Close()
		fmt.Fprintf(a.out, "Couldn't reach the voice companion: %v\n", err)
		return nil
	}

	sink, clock, err := a.voice.OpenPlayback()
	if err != nil {
		_ = capture.Close()
		_ = transport.Close()
		fmt.Fprintf(a.out, "Couldn't open audio playback: %v\n", err)
		return nil
	}

	fmt.Fprintln(a.out, "\n🎙 You're connected. Speak freely; press Ctrl+C or hang up to end.")

	session := voice.Start(transport, capture, sink, clock, a.logger)
	defer session.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-session.Done():
			fmt.Fprintln(a.out, "The call has ended. You did well reaching out.")
			return nil
		case text, ok := <-session.Transcripts():
			if !ok {
				<-session.Done()
				fmt.Fprintln(a.out, "The call has ended. You did well reaching out.")
				return nil
			}
			fmt.Fprintf(a.out, "  %s\n", text)
		}
	}
}
