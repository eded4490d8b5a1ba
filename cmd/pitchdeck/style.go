package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Status tags printed by doctor.
const (
	tagOK    = "[OK]"
	tagWarn  = "[WARN]"
	tagError = "[ERROR]"
)

var (
	styleOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A")).Bold(true)
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true)
	styleTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A2BE2")).Bold(true)
)

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// painter renders status tags, colored only when writing to a terminal.
type painter struct {
	color bool
}

func (p painter) tag(tag string) string {
	if !p.color {
		return tag
	}
	switch tag {
	case tagOK:
		return styleOK.Render(tag)
	case tagWarn:
		return styleWarn.Render(tag)
	case tagError:
		return styleError.Render(tag)
	}
	return tag
}

func (p painter) title(s string) string {
	if !p.color {
		return s
	}
	return styleTitle.Render(s)
}
