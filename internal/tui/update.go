package tui

import (
	"context"

	"scour/internal/editor"
	"scour/internal/elevate"
	"scour/internal/errors"
	"scour/internal/index"
	"scour/internal/tui/messages"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		if m.state.Screen == editor.ScreenRunning {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case messages.ScriptLineMsg:
		// A stale line can trail in after the run finished and the
		// channel was dropped; re-subscribing would block forever.
		if m.events == nil {
			return m, nil
		}
		m.track.Push(msg.Prefix, msg.Path)
		return m, waitForEvent(m.events)

	case messages.ScriptFinishedMsg:
		next, ok := editor.Apply(m.state, editor.RunFinished{})
		if !ok {
			return m, nil
		}
		m.state = next
		m.err = msg.Err
		m.events = nil
		if m.runCancel != nil {
			m.runCancel()
			m.runCancel = nil
		}
		return m, nil

	case messages.ScriptEditedMsg:
		var cmd tea.Cmd
		if m.watcher != nil {
			cmd = waitForEdit(m.watcher)
		}
		// Never reload under a running script; the next go-back re-reads.
		if m.state.Screen == editor.ScreenScript {
			m.reloadScript("script changed on disk, reloaded")
		}
		return m, cmd

	case messages.SaveResultMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		next, ok := editor.Apply(m.state, editor.SaveDone{})
		if ok {
			m.state = next
		}
		m.err = nil
		m.status = "saved to " + msg.Path
		return m, nil

	case messages.UnlockResultMsg:
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.err = nil
			m.status = "privileges unlocked"
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even mid-run.
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.state.Screen == editor.ScreenScript && m.state.Pane == editor.PaneChooser {
		return m.handleChooserKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.state.Screen == editor.ScreenRunning {
			return m, nil
		}
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Run):
		return m, m.startRun()

	case key.Matches(msg, m.keys.DryRun):
		m.mode.Toggle()
		return m, nil

	case key.Matches(msg, m.keys.Save):
		next, ok := editor.Apply(m.state, editor.SavePressed{})
		if !ok {
			return m, nil
		}
		m.state = next
		m.destInput.SetValue(m.flow.Destination())
		m.destInput.CursorEnd()
		return m, m.destInput.Focus()

	case key.Matches(msg, m.keys.Unlock):
		if m.auth.Status() != elevate.StatusLocked {
			return m, nil
		}
		m.status = "unlocking via " + m.auth.Helper()
		return m, unlock(m.auth)

	case key.Matches(msg, m.keys.Reload):
		if m.state.Screen == editor.ScreenScript {
			m.reloadScript("script reloaded")
		}
		return m, nil

	case key.Matches(msg, m.keys.GoBack):
		next, ok := editor.Apply(m.state, editor.GoBackPressed{})
		if !ok {
			break
		}
		m.state = next
		m.mode.SetEnabled(true)
		m.err = nil
		m.status = ""
		// Mirror of entering the view: re-read the active script.
		m.reloadScript("")
		return m, nil
	}

	// Remaining keys scroll the script.
	if m.state.Pane == editor.PaneScript {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleChooserKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		next, ok := editor.Apply(m.state, editor.SaveCancelled{})
		if ok {
			m.state = next
			m.destInput.Blur()
		}
		return m, nil

	case key.Matches(msg, m.keys.Format):
		m.flow.SelectFormat(m.flow.Format().Next())
		m.destInput.SetValue(m.flow.Destination())
		m.destInput.CursorEnd()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if !m.flow.CanSave() {
			return m, nil
		}
		m.destInput.Blur()
		return m, confirmSave(m.flow)
	}

	var cmd tea.Cmd
	m.destInput, cmd = m.destInput.Update(msg)
	m.flow.SelectDestination(m.destInput.Value())
	return m, cmd
}

// startRun captures the run mode, flips the state machine to the
// running screen, and hooks the runner's event stream into the UI loop.
func (m *Model) startRun() tea.Cmd {
	if m.state.RunDisabled() {
		return nil
	}
	if m.scr.IsDummy() {
		m.status = "no script loaded"
		return nil
	}

	dryRun := m.mode.DryRun()
	if !dryRun && m.idx.ProtectedCount() > 0 {
		m.err = errors.Newf("refusing real run: %d protected paths in script", m.idx.ProtectedCount())
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := m.scr.Run(ctx, dryRun)
	if err != nil {
		cancel()
		m.err = err
		return nil
	}

	next, _ := editor.Apply(m.state, editor.RunPressed{DryRun: dryRun})
	m.state = next
	m.mode.SetEnabled(false)
	m.track = editor.NewTracker(m.idx)
	m.events = ch
	m.runCancel = cancel
	m.err = nil
	m.status = ""
	return tea.Batch(m.spin.Tick, waitForEvent(ch))
}

// reloadScript re-reads the script from disk and rebuilds the index.
func (m *Model) reloadScript(status string) {
	if m.scr.IsDummy() {
		return
	}
	if err := m.scr.Reload(); err != nil {
		m.err = err
		return
	}
	ix, err := index.Attach(m.scr, m.cfg)
	if err != nil {
		m.err = err
		return
	}
	m.idx = ix
	m.setScriptContent()
	if status != "" {
		m.status = status
	}
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	if m.runCancel != nil {
		m.runCancel()
		m.runCancel = nil
	}
	if m.watcher != nil {
		m.watcher.Stop()
	}
	return m, tea.Quit
}

func (m *Model) resize() {
	leftWidth := m.width * 2 / 3
	if leftWidth < 24 {
		leftWidth = 24
	}
	contentHeight := m.height - 8
	if contentHeight < 4 {
		contentHeight = 4
	}
	m.viewport.Width = leftWidth
	m.viewport.Height = contentHeight
	m.destInput.Width = leftWidth - 4
	m.help.Width = m.width
}
