package editor

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestHighlighters(t *testing.T) {
	t.Run("noop_passes_through", func(t *testing.T) {
		hl := NoopHighlighter{}
		for _, line := range []string{"", "# comment", "remove_cmd '/a b'"} {
			assert.Equal(t, line, hl.Highlight(line))
		}
	})

	t.Run("shell_preserves_text", func(t *testing.T) {
		// Pin the profile so styling is a no-op and content survival is
		// checkable byte for byte.
		old := lipgloss.ColorProfile()
		lipgloss.SetColorProfile(termenv.Ascii)
		defer lipgloss.SetColorProfile(old)

		hl := NewShellHighlighter()
		cases := []string{
			"",
			"   ",
			"# generated by the planner",
			"remove_cmd '/data/dup one'",
			"  keep_path '/data/orig'",
			"rm -f unquoted",
			"echo 'unterminated",
		}
		for _, line := range cases {
			assert.Equal(t, line, hl.Highlight(line))
		}
	})

	t.Run("detect_returns_some_highlighter", func(t *testing.T) {
		assert.NotNil(t, DetectHighlighter())
	})
}

func stripSpaces(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r != ' ' && r != '\t' {
			out = append(out, r)
		}
	}
	return string(out)
}
