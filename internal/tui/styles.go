package tui

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles of the viewer.
type Styles struct {
	App         lipgloss.Style
	Title       lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
	FilterOn    lipgloss.Style
	FilterOff   lipgloss.Style
	GroupHeader lipgloss.Style
	Time        lipgloss.Style
	Variant     lipgloss.Style
	Gallery     lipgloss.Style
	Recap       lipgloss.Style
	Muted       lipgloss.Style
}

// DefaultStyles returns the default palette.
func DefaultStyles() Styles {
	primary := lipgloss.Color("99")
	secondary := lipgloss.Color("39")
	accent := lipgloss.Color("212")
	muted := lipgloss.Color("240")
	errorColor := lipgloss.Color("196")

	return Styles{
		App:         lipgloss.NewStyle().Padding(0, 1),
		Title:       lipgloss.NewStyle().Bold(true).Foreground(primary),
		Status:      lipgloss.NewStyle().Foreground(muted),
		Error:       lipgloss.NewStyle().Foreground(errorColor),
		FilterOn:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(secondary).Padding(0, 1),
		FilterOff:   lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		GroupHeader: lipgloss.NewStyle().Bold(true).Foreground(secondary).MarginTop(1),
		Time:        lipgloss.NewStyle().Foreground(muted),
		Variant:     lipgloss.NewStyle().Foreground(accent),
		Gallery:     lipgloss.NewStyle().Foreground(accent).Italic(true),
		Recap:       lipgloss.NewStyle().Foreground(secondary),
		Muted:       lipgloss.NewStyle().Foreground(muted),
	}
}

// PlainStyles renders without colors or margins, for piped output.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		App: plain, Title: plain, Status: plain, Error: plain,
		FilterOn: plain, FilterOff: plain, GroupHeader: plain, Time: plain,
		Variant: plain, Gallery: plain, Recap: plain, Muted: plain,
	}
}
