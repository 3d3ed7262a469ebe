// ABOUTME: Scripture bank screen: category-filtered verses with reflect-to-journal
package cli

import (
	"context"
	"fmt"

	"github.com/anchorup/anchor/internal/community"
	"github.com/anchorup/anchor/internal/models"
	"github.com/anchorup/anchor/internal/profile"
	"github.com/anchorup/anchor/internal/router"
)

func (a *App) scriptureScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n📖 Scripture Bank")

	cats := models.VerseCategories()
	labels := []string{"All"}
	for _, c := range cats {
		labels = append(labels, string(c))
	}
	ci, err := a.promptChoice("Which category?", labels)
	if err != nil {
		return err
	}
	if ci == -1 {
		a.router.Navigate(router.ViewTools)
		return nil
	}

	category := models.VerseCategory("All")
	if ci > 0 {
		category = cats[ci-1]
	}
	verses := community.Verses(category)

	refs := make([]string, len(verses))
	for i, v := range verses {
		fmt.Fprintf(a.out, "\n%s\n  — %s (%s)\n", v.Text, v.Reference, v.Category)
		refs[i] = v.Reference
	}

	vi, err := a.promptChoice("\nReflect on a verse in your journal?", refs)
	if err != nil {
		return err
	}
	if vi == -1 {
		a.router.Navigate(router.ViewTools)
		return nil
	}

	text, err := a.promptLine(fmt.Sprintf("What does %s say to you tonight?", verses[vi].Reference))
	if err != nil {
		return err
	}
	if text != "" {
		entry := models.NewReflectionEntry(verses[vi].Reference, text, timeNow())
		if err := a.profiles.Apply(profile.AppendJournalEntry{Entry: entry}); err != nil {
			return fmt.Errorf("saving reflection: %w", err)
		}
		fmt.Fprintln(a.out, "Saved to your journal.")
	}
	a.router.Navigate(router.ViewTools)
	return nil
}
