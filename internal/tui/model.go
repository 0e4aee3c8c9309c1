// Package tui implements the terminal review-and-run panel: the script
// on the left, the run controls on the right, and the
// script/running/finished screen cycle driven by the editor state
// machine.
package tui

import (
	"context"
	"strings"

	"scour/internal/config"
	"scour/internal/editor"
	"scour/internal/elevate"
	"scour/internal/index"
	"scour/internal/log"
	"scour/internal/script"
	"scour/internal/tui/styles"
	"scour/internal/watch"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type Model struct {
	cfg     *config.Config
	version string

	// Domain state
	scr   *script.Script
	idx   *index.Index
	state editor.State
	mode  *editor.RunMode
	track *editor.Tracker
	flow  *editor.SaveFlow
	auth  *elevate.Authority
	hl    editor.Highlighter

	// Widgets
	viewport  viewport.Model
	destInput textinput.Model
	spin      spinner.Model
	help      help.Model
	keys      keyMap

	// Run plumbing
	events    <-chan script.Event
	watcher   *watch.Watcher
	runCancel context.CancelFunc

	width    int
	height   int
	showHelp bool
	status   string
	err      error
}

// New creates the panel with the placeholder script. Call LoadScript to
// open a real one.
func New(cfg *config.Config, version string) *Model {
	styles.Apply(cfg)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Theme.Help

	ti := textinput.New()
	ti.Placeholder = "destination path"
	ti.CharLimit = 512

	vp := viewport.New(72, 20)

	m := &Model{
		cfg:       cfg,
		version:   version,
		scr:       script.NewDummy(),
		idx:       index.Build(nil, nil),
		state:     editor.NewState(),
		mode:      editor.NewRunMode(),
		auth:      elevate.New(),
		hl:        editor.DetectHighlighter(),
		viewport:  vp,
		destInput: ti,
		spin:      s,
		help:      help.New(),
		keys:      newKeyMap(),
	}
	m.mode.Set(cfg.Settings.DryRun)
	m.track = editor.NewTracker(m.idx)
	m.flow = editor.NewSaveFlow(m.scr)
	m.setScriptContent()
	return m
}

// LoadScript opens a generated cleanup script and starts watching it
// for external edits.
func (m *Model) LoadScript(path string) error {
	s, err := script.Load(path)
	if err != nil {
		return err
	}
	ix, err := index.Attach(s, m.cfg)
	if err != nil {
		return err
	}

	if m.watcher != nil {
		m.watcher.Stop()
		m.watcher = nil
	}
	w, err := watch.New(path)
	if err != nil {
		// Watching is best-effort; the panel still works without it.
		log.Warn("Cannot watch script: %v", err)
	} else if err := w.Start(); err == nil {
		m.watcher = w
	}

	m.scr = s
	m.idx = ix
	m.flow = editor.NewSaveFlow(m.scr)
	m.setScriptContent()
	return nil
}

// Script returns the current script. It is never nil; before a real
// script is loaded a placeholder stands in.
func (m *Model) Script() *script.Script {
	return m.scr
}

// State exposes the orchestration state, mainly for tests.
func (m *Model) State() editor.State {
	return m.state
}

// Mode exposes the run mode toggle, mainly for tests.
func (m *Model) Mode() *editor.RunMode {
	return m.mode
}

// Tracker exposes the progress tracker of the current run.
func (m *Model) Tracker() *editor.Tracker {
	return m.track
}

// SaveFlow exposes the save flow, mainly for tests.
func (m *Model) SaveFlow() *editor.SaveFlow {
	return m.flow
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.watcher != nil {
		cmds = append(cmds, waitForEdit(m.watcher))
	}
	return tea.Batch(cmds...)
}

// setScriptContent refreshes the viewport from the current script,
// running every line through the highlighter.
func (m *Model) setScriptContent() {
	m.viewport.SetContent(highlightAll(m.hl, m.scr.Read()))
	m.viewport.GotoTop()
}

func highlightAll(hl editor.Highlighter, content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = hl.Highlight(line)
	}
	return strings.Join(lines, "\n")
}

func formatChoices() []script.Format {
	return script.Formats()
}
