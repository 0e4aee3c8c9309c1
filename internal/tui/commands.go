package tui

import (
	"context"

	"scour/internal/editor"
	"scour/internal/elevate"
	"scour/internal/script"
	"scour/internal/tui/messages"
	"scour/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
)

// waitForEvent marshals one runner event onto the UI loop. Progress
// handlers re-issue it until the terminal finished event arrives.
func waitForEvent(ch <-chan script.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		switch ev := ev.(type) {
		case script.LineEvent:
			return messages.ScriptLineMsg{Prefix: ev.Prefix, Path: ev.Path}
		case script.FinishedEvent:
			return messages.ScriptFinishedMsg{Err: ev.Err}
		}
		return nil
	}
}

// waitForEdit marshals one script watcher event onto the UI loop.
func waitForEdit(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Channel(); !ok {
			return nil
		}
		return messages.ScriptEditedMsg{}
	}
}

// confirmSave runs the save flow off the input handler. Destination and
// format are captured here, on the UI loop; the chooser stays live until
// the result message arrives, and its edits must not touch this write.
func confirmSave(flow *editor.SaveFlow) tea.Cmd {
	dest := flow.Destination()
	format := flow.Format()
	return func() tea.Msg {
		return messages.SaveResultMsg{Path: dest, Err: flow.SaveTo(dest, format)}
	}
}

// unlock validates privileges through the elevation helper.
func unlock(auth *elevate.Authority) tea.Cmd {
	return func() tea.Msg {
		return messages.UnlockResultMsg{Err: auth.Unlock(context.Background())}
	}
}
