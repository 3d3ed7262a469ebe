// ABOUTME: Profile screen: identity, milestones, preferences, goals, export, and logout
package cli

import (
	"context"
	"fmt"

	"github.com/anchorup/anchor/internal/models"
	"github.com/anchorup/anchor/internal/profile"
	"github.com/anchorup/anchor/internal/router"
	"github.com/google/uuid"
)

func (a *App) profileScreen(ctx context.Context) error {
	p := a.profiles.Current()
	if p == nil {
		a.router.Navigate(router.ViewHome)
		return nil
	}

	fmt.Fprintf(a.out, "\n👤 %s\n", p.DisplayName())
	fmt.Fprintf(a.out, "Sober since %s — day %d\n", p.SoberDate.Format("January 2, 2006"), p.DaysSober(timeNow()))
	fmt.Fprintf(a.out, "Avatar: %s  •  Faith mode: %s  •  Reminders: %s\n",
		p.AvatarColor, onOff(p.FaithMode), onOff(p.RemindersEnabled))
	if len(p.Goals) > 0 {
		fmt.Fprintln(a.out, "Goals:")
		for _, g := range p.Goals {
			mark := " "
			if g.Completed {
				mark = "✓"
			}
			fmt.Fprintf(a.out, "  [%s] %s\n", mark, g.Text)
		}
	}

	choice, err := a.promptChoice("\nProfile options:", []string{
		"Toggle faith mode",
		"Toggle reminders",
		"Change avatar color",
		"Add a goal",
		"Complete a goal",
		"Export my data",
		"Log out",
		"Back home",
	})
	if err != nil {
		return err
	}

	switch choice {
	case 0:
		return a.profiles.Apply(profile.SetFaithMode{Enabled: !p.FaithMode})
	case 1:
		return a.profiles.Apply(profile.SetReminders{Enabled: !p.RemindersEnabled})
	case 2:
		colors := []string{"indigo", "emerald", "amber", "rose", "sky", "orange"}
		ci, cerr := a.promptChoice("Pick a color:", colors)
		if cerr != nil {
			return cerr
		}
		if ci >= 0 {
			return a.profiles.Apply(profile.SetAvatarColor{Color: colors[ci]})
		}
	case 3:
		text, perr := a.promptLine("What goal are you setting?")
		if perr != nil {
			return perr
		}
		if text != "" {
			return a.profiles.Apply(profile.AddGoal{Goal: models.Goal{ID: uuid.NewString(), Text: text}})
		}
	case 4:
		var open []models.Goal
		for _, g := range p.Goals {
			if !g.Completed {
				open = append(open, g)
			}
		}
		if len(open) == 0 {
			fmt.Fprintln(a.out, "No open goals. Set one and chase it.")
			return nil
		}
		labels := make([]string, len(open))
		for i, g := range open {
			labels[i] = g.Text
		}
		gi, gerr := a.promptChoice("Which goal did you finish?", labels)
		if gerr != nil {
			return gerr
		}
		if gi >= 0 {
			if err := a.profiles.Apply(profile.CompleteGoal{GoalID: open[gi].ID}); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "🎉 That's a victory. Write it in your journal.")
		}
	case 5:
		path, eerr := a.profiles.Export()
		if eerr != nil {
			return fmt.Errorf("exporting profile: %w", eerr)
		}
		fmt.Fprintf(a.out, "Exported to %s\n", path)
	case 6:
		a.logout()
		return a.splashScreen(ctx)
	default:
		a.router.Navigate(router.ViewHome)
	}
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
