package main

import (
	"fmt"
	"os"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	lipgloss "github.com/charmbracelet/lipgloss"
	term "golang.org/x/term"

	schema "github.com/mckinsey/ark-go/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	stylePending  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleRunning  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	styleDone     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleError    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleCanceled = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	styleUnknown  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// renderPhase returns the phase coloured for terminal output.
func renderPhase(phase schema.Phase) string {
	switch phase {
	case schema.PhasePending:
		return stylePending.Render(string(phase))
	case schema.PhaseRunning:
		return styleRunning.Render(string(phase))
	case schema.PhaseDone:
		return styleDone.Render(string(phase))
	case schema.PhaseError:
		return styleError.Render(string(phase))
	case schema.PhaseCanceled:
		return styleCanceled.Render(string(phase))
	default:
		return styleUnknown.Render(string(phase))
	}
}

// renderMarkdown renders text as markdown to stdout, falling back to
// plain output when the terminal cannot be styled.
func renderMarkdown(text string) error {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		fmt.Println(text)
		return nil
	}
	out, err := renderer.Render(text)
	if err != nil {
		fmt.Println(text)
		return nil
	}
	fmt.Print(out)
	return nil
}
