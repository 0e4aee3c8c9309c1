package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Highlighter colors one script line for display. Implementations are
// selected at startup based on terminal capability; callers never
// branch on which one they got.
type Highlighter interface {
	Highlight(line string) string
}

// NoopHighlighter passes lines through unchanged, for terminals without
// color support.
type NoopHighlighter struct{}

// Highlight returns the line as-is.
func (NoopHighlighter) Highlight(line string) string {
	return line
}

// ShellHighlighter applies a small ANSI color scheme for sh scripts:
// comments, the leading command word, and single-quoted strings.
type ShellHighlighter struct {
	comment lipgloss.Style
	command lipgloss.Style
	str     lipgloss.Style
}

// NewShellHighlighter builds the default scheme.
func NewShellHighlighter() ShellHighlighter {
	return ShellHighlighter{
		comment: lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
		command: lipgloss.NewStyle().Foreground(lipgloss.Color("#7B61FF")).Bold(true),
		str:     lipgloss.NewStyle().Foreground(lipgloss.Color("#73F59F")),
	}
}

// Highlight colors a single line.
func (h ShellHighlighter) Highlight(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return line
	}
	if strings.HasPrefix(trimmed, "#") {
		return h.comment.Render(line)
	}

	var sb strings.Builder
	rest := line

	// Leading command word, keeping indentation intact.
	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	sb.WriteString(indent)
	rest = rest[len(indent):]
	if word, tail, ok := strings.Cut(rest, " "); ok {
		sb.WriteString(h.command.Render(word))
		sb.WriteString(" ")
		rest = tail
	} else {
		sb.WriteString(h.command.Render(rest))
		return sb.String()
	}

	// Single-quoted spans.
	for {
		open := strings.IndexByte(rest, '\'')
		if open < 0 {
			sb.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open+1:], '\'')
		if end < 0 {
			sb.WriteString(rest)
			break
		}
		sb.WriteString(rest[:open])
		sb.WriteString(h.str.Render(rest[open : open+end+2]))
		rest = rest[open+end+2:]
	}
	return sb.String()
}

// DetectHighlighter picks the best highlighter the terminal supports.
func DetectHighlighter() Highlighter {
	if lipgloss.ColorProfile() == termenv.Ascii {
		return NoopHighlighter{}
	}
	return NewShellHighlighter()
}
