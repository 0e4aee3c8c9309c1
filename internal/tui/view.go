package tui

import (
	"strings"

	"scour/internal/editor"
	"scour/internal/elevate"
	"scour/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// View implements tea.Model
func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Theme.Title.Render("scour " + m.version + " · review the cleanup script"))
	sb.WriteString("\n")

	left := styles.Theme.Pane.Render(m.renderLeftPane())
	right := m.renderRightPane()
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))

	if m.err != nil {
		sb.WriteString("\n" + styles.Theme.Danger.Render("✗ "+m.err.Error()))
	} else if m.status != "" {
		sb.WriteString("\n" + styles.Theme.Status.Render(m.status))
	}

	sb.WriteString("\n" + m.help.View(m.keys))

	return styles.Theme.App.Render(sb.String())
}

func (m *Model) renderLeftPane() string {
	switch m.state.Pane {
	case editor.PaneChooser:
		return m.renderChooser()
	case editor.PaneProgress:
		return m.renderProgress()
	default:
		return m.viewport.View()
	}
}

func (m *Model) renderChooser() string {
	var sb strings.Builder
	sb.WriteString(styles.Theme.Title.Render("Save script"))
	sb.WriteString("\n\n")
	sb.WriteString(m.destInput.View())
	sb.WriteString("\n\nFiletype: ")
	for i, f := range formatChoices() {
		if i > 0 {
			sb.WriteString("  ")
		}
		if f == m.flow.Format() {
			sb.WriteString(styles.Theme.Emphasis.Render("[" + string(f) + "]"))
		} else {
			sb.WriteString(styles.Theme.Dim.Render(string(f)))
		}
	}
	sb.WriteString("\n\n")
	if m.flow.CanSave() {
		sb.WriteString(styles.Theme.Help.Render("enter to save, tab to change filetype, esc to cancel"))
	} else {
		sb.WriteString(styles.Theme.Dim.Render("type a destination path to enable saving"))
	}
	return sb.String()
}

func (m *Model) renderProgress() string {
	var sb strings.Builder
	sb.WriteString(styles.Theme.Emphasis.Render(humanize.Bytes(m.track.SizeSum())))
	sb.WriteString(styles.Theme.Dim.Render(" removed"))
	if m.track.LastPath() != "" {
		sb.WriteString("\n\n")
		sb.WriteString(styles.Theme.Dim.Render(m.track.LastPrefix()) + " " + m.track.LastPath())
	}
	return sb.String()
}

func (m *Model) renderRightPane() string {
	switch m.state.Screen {
	case editor.ScreenRunning:
		return m.renderRunningScreen()
	case editor.ScreenFinished:
		return m.renderFinishedScreen()
	default:
		return m.renderScriptScreen()
	}
}

func (m *Model) renderScriptScreen() string {
	var sb strings.Builder

	icon := m.mode.Severity().Icon()
	if m.mode.DryRun() {
		sb.WriteString(styles.Theme.Warning.Render(icon + "  dry run"))
	} else {
		sb.WriteString(styles.Theme.Danger.Render(icon + "  REAL RUN"))
	}
	sb.WriteString("\n\n")
	sb.WriteString(styles.Theme.Emphasis.Render("Review the script on the left!"))
	sb.WriteString("\n")
	sb.WriteString("When done, press " + styles.Theme.Emphasis.Render("r") + " to run it.")
	sb.WriteString("\n\n")

	switch m.auth.Status() {
	case elevate.StatusAuthorized:
		sb.WriteString(styles.Theme.Help.Render("🔓 privileges available"))
	case elevate.StatusLocked:
		sb.WriteString(styles.Theme.Help.Render("🔒 locked, press u to unlock (" + m.auth.Helper() + ")"))
	default:
		sb.WriteString(styles.Theme.Dim.Render("🔒 no elevation helper found"))
	}

	if n := m.idx.ProtectedCount(); n > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.Theme.Warning.Render("⚠ script touches protected paths"))
	}
	return sb.String()
}

func (m *Model) renderRunningScreen() string {
	var sb strings.Builder
	sb.WriteString(m.spin.View())
	if m.state.DryRun {
		sb.WriteString(" simulating…")
	} else {
		sb.WriteString(" scouring, cross your fingers")
	}
	return styles.Theme.Help.Render(sb.String())
}

func (m *Model) renderFinishedScreen() string {
	var sb strings.Builder
	sb.WriteString(styles.Theme.Emphasis.Render("✔ All went well!"))
	sb.WriteString("\n\n")
	sb.WriteString(styles.Theme.Emphasis.Render(humanize.Bytes(m.track.SizeSum())))
	sb.WriteString(styles.Theme.Dim.Render(" removed in total"))
	sb.WriteString("\n\n")
	sb.WriteString(styles.Theme.Help.Render("press b to go back to the script"))
	return sb.String()
}
