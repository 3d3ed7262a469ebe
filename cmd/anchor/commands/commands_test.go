// ABOUTME: Tests for the offline commands
// ABOUTME: Verifies version output and the bundled resources listing
package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCmd_Output(t *testing.T) {
	original := versionInfo
	defer func() { versionInfo = original }()

	SetVersion("1.2.3", "abc123", "2026-01-31")

	cmd := NewVersionCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.Run(cmd, nil)

	out := buf.String()
	if !strings.Contains(out, "Anchor 1.2.3") {
		t.Errorf("output missing version: %q", out)
	}
	if !strings.Contains(out, "abc123") {
		t.Errorf("output missing commit: %q", out)
	}
}

func TestResourcesCmd_ListsHotlines(t *testing.T) {
	cmd := NewResourcesCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("resources command failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"988", "SAMHSA", "Crisis Text Line"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"run", "profile", "resources", "version"} {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}
