package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func plainOutput(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestStylesArePlainWithoutColor(t *testing.T) {
	plainOutput(t)

	for name, fn := range map[string]func(string) string{
		"Amber": Amber, "Yellow": Yellow, "Cyan": Cyan, "Green": Green,
		"Red": Red, "Bold": Bold, "Dim": Dim,
	} {
		if got := fn("text"); got != "text" {
			t.Errorf("%s(%q) = %q, want unchanged text", name, "text", got)
		}
	}
}

func TestLink(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		plainOutput(t)
		got := Link("docs", "https://example.com")
		if got != "docs (https://example.com)" {
			t.Errorf("Link() = %q", got)
		}
	})

	t.Run("ansi", func(t *testing.T) {
		prev := lipgloss.ColorProfile()
		lipgloss.SetColorProfile(termenv.ANSI)
		t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

		got := Link("docs", "https://example.com")
		if !strings.HasPrefix(got, "\x1b]8;;https://example.com") {
			t.Errorf("Link() = %q, want OSC 8 prefix", got)
		}
		if !strings.Contains(got, "docs") {
			t.Errorf("Link() = %q, want link text", got)
		}
	})
}

func TestNextSteps(t *testing.T) {
	plainOutput(t)
	var buf bytes.Buffer
	NextSteps(&buf, "my-app")
	out := buf.String()

	for _, want := range []string{
		"Done! Your Bearnie project is ready.",
		"1. cd my-app",
		"2. npm install",
		"3. npx bearnie add button card",
		"4. npm run dev",
		"bearnie.dev/docs/components (https://bearnie.dev/docs/components)",
		"Made by Michael (https://michaelandreuzza.com) at Lexington Themes",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("NextSteps output missing %q\n--- output ---\n%s", want, out)
		}
	}
}

func TestMessages(t *testing.T) {
	plainOutput(t)

	tests := []struct {
		name  string
		write func(*bytes.Buffer)
		want  string
	}{
		{"banner", func(b *bytes.Buffer) { Banner(b) }, "Hey! Let's create your Bearnie project."},
		{"cancelled", func(b *bytes.Buffer) { Cancelled(b) }, "Cancelled."},
		{"creating", func(b *bytes.Buffer) { Creating(b, "/tmp/my-app") }, "Creating project in /tmp/my-app"},
		{"created", func(b *bytes.Buffer) { Created(b) }, "✓ Created project files"},
		{"warning", func(b *bytes.Buffer) { Warning(b, "node missing") }, "! node missing"},
		{"error", func(b *bytes.Buffer) { Error(b, errors.New("boom")) }, "Error: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.write(&buf)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestErrorColorFollowsWriter(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	var buf bytes.Buffer
	Error(&buf, errors.New("boom"))

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("Error() wrote escape codes to a plain writer: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Error: boom") {
		t.Errorf("Error() = %q, want Error: boom", buf.String())
	}
}
