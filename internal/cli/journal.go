// ABOUTME: Journal screen: newest-first entries, mood-tagged writing, rotating reflection prompts
package cli

import (
	"context"
	"fmt"

	"github.com/anchorup/anchor/internal/community"
	"github.com/anchorup/anchor/internal/models"
	"github.com/anchorup/anchor/internal/profile"
	"github.com/anchorup/anchor/internal/router"
)

func (a *App) journalScreen(ctx context.Context) error {
	p := a.profiles.Current()
	if p == nil {
		a.router.Navigate(router.ViewHome)
		return nil
	}

	fmt.Fprintln(a.out, "\n📓 Journal")
	if len(p.JournalEntries) == 0 {
		fmt.Fprintln(a.out, "No entries yet. Tonight is a good night to start.")
	}
	for _, e := range p.JournalEntries {
		fmt.Fprintf(a.out, "— [%s] %s\n  %s\n", e.Mood, e.CreatedAt.Format("Jan 2, 3:04 PM"), e.Text)
	}

	choice, err := a.promptChoice("What would you like to do?", []string{
		"Write an entry",
		"Reflect on a prompt",
		"Back",
	})
	if err != nil {
		return err
	}

	switch choice {
	case 0:
		return a.writeEntry()
	case 1:
		return a.writeReflection()
	default:
		a.router.Navigate(router.ViewTools)
	}
	return nil
}

func (a *App) writeEntry() error {
	text, err := a.promptLine("What's on your heart?")
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}

	moods := models.Moods()
	labels := make([]string, len(moods))
	for i, m := range moods {
		labels[i] = string(m)
	}
	mi, err := a.promptChoice("How are you feeling?", labels)
	if err != nil {
		return err
	}
	mood := models.MoodPeaceful
	if mi >= 0 {
		mood = moods[mi]
	}

	entry := models.NewJournalEntry(text, mood, timeNow())
	if err := a.profiles.Apply(profile.AppendJournalEntry{Entry: entry}); err != nil {
		return fmt.Errorf("saving journal entry: %w", err)
	}
	fmt.Fprintln(a.out, "Saved. Thank you for showing up for yourself.")
	return nil
}

func (a *App) writeReflection() error {
	prompts := community.ReflectionPrompts()
	p := a.profiles.Current()
	idx := len(p.JournalEntries) % len(prompts)

	fmt.Fprintf(a.out, "Tonight's prompt: %s\n", prompts[idx])
	text, err := a.promptLine("Your reflection")
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}

	entry := models.NewReflectionEntry(prompts[idx], text, timeNow())
	if err := a.profiles.Apply(profile.AppendJournalEntry{Entry: entry}); err != nil {
		return fmt.Errorf("saving reflection: %w", err)
	}
	fmt.Fprintln(a.out, "Saved with gratitude.")
	return nil
}
