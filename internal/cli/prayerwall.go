// ABOUTME: Prayer wall screen: session-local prayer requests lifted by the fellowship
package cli

import (
	"context"
	"fmt"

	"github.com/anchorup/anchor/internal/router"
)

var seedPrayers = []string{
	"Pray for Brother Mark's first week in Safe Harbor.",
	"Sister Elena asks for strength through day 30.",
	"An anonymous brother is facing his first sober holiday.",
}

func (a *App) prayerWallScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n🙏 Prayer Wall")
	for _, p := range a.prayers() {
		fmt.Fprintf(a.out, "  🕯 %s\n", p)
	}

	line, err := a.promptLine("Add a prayer request (or press Enter to go back)")
	if err != nil {
		return err
	}
	if line != "" {
		a.sessionPrayers = append(a.sessionPrayers, line)
		fmt.Fprintln(a.out, "Your request is on the wall. The fellowship is praying with you.")
		return nil
	}

	a.router.Navigate(router.ViewCommunity)
	return nil
}

func (a *App) prayers() []string {
	return append(append([]string(nil), seedPrayers...), a.sessionPrayers...)
}
