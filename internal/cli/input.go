// ABOUTME: Prompt helpers for the interactive shell
// ABOUTME: Line, choice, and date prompts reading from the app's buffered reader
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// promptLine prints a prompt and reads one trimmed line.
func (a *App) promptLine(prompt string) (string, error) {
	fmt.Fprintf(a.out, "%s\n> ", prompt)
	line, err := a.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptChoice prints numbered options and reads a selection, retrying
// until the input resolves to one of them. An empty line picks nothing
// and returns -1.
func (a *App) promptChoice(prompt string, options []string) (int, error) {
	fmt.Fprintln(a.out, prompt)
	for i, opt := range options {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, opt)
	}

	for {
		line, err := a.promptLine("Pick a number (or press Enter to go back)")
		if err != nil {
			return 0, err
		}
		if line == "" {
			return -1, nil
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintf(a.out, "Please enter a number between 1 and %d.\n", len(options))
			continue
		}
		return n - 1, nil
	}
}

// promptDate reads a YYYY-MM-DD date, retrying on anything it cannot
// parse.
func (a *App) promptDate(prompt string) (time.Time, error) {
	for {
		line, err := a.promptLine(prompt + " (YYYY-MM-DD)")
		if err != nil {
			return time.Time{}, err
		}
		d, perr := time.Parse("2006-01-02", line)
		if perr != nil {
			fmt.Fprintln(a.out, "That doesn't look like a date. Try something like 2024-11-03.")
			continue
		}
		return d, nil
	}
}
