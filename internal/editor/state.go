// Package editor holds the control logic of the review-and-run panel,
// independent of any UI toolkit: the screen state machine, the run mode
// toggle, the progress tracker, and the save flow.
package editor

// Screen identifies which of the panel's right-hand screens is visible.
// Exactly one is active at a time.
type Screen int

const (
	// ScreenScript shows the reviewable script with the run controls
	ScreenScript Screen = iota
	// ScreenRunning shows the in-flight execution progress
	ScreenRunning
	// ScreenFinished shows the completion screen with the go-back action
	ScreenFinished
)

func (s Screen) String() string {
	switch s {
	case ScreenScript:
		return "script"
	case ScreenRunning:
		return "running"
	case ScreenFinished:
		return "finished"
	}
	return "unknown"
}

// Pane identifies the left-hand sub-state while on the script screen.
type Pane int

const (
	// PaneScript shows the script content
	PaneScript Pane = iota
	// PaneChooser shows the save destination chooser
	PaneChooser
	// PaneProgress shows the per-path progress list during a run
	PaneProgress
)

func (p Pane) String() string {
	switch p {
	case PaneScript:
		return "script"
	case PaneChooser:
		return "chooser"
	case PaneProgress:
		return "progress"
	}
	return "unknown"
}

// State is the panel's orchestration state. Transitions are pure: Apply
// maps (State, Event) to a new State so the machine is testable without
// a live UI.
type State struct {
	Screen Screen
	Pane   Pane
	// DryRun is the run mode captured at the moment the run was
	// triggered. It is not re-read while the run is in flight.
	DryRun bool
}

// NewState returns the initial panel state.
func NewState() State {
	return State{Screen: ScreenScript, Pane: PaneScript, DryRun: true}
}

// RunDisabled reports whether the run controls must reject input.
func (s State) RunDisabled() bool {
	return s.Screen != ScreenScript
}

// Event is a state machine input.
type Event interface {
	event()
}

// RunPressed is the user's run action, carrying the toggle value at
// click time.
type RunPressed struct {
	DryRun bool
}

// RunFinished is the runner's terminal completion signal. No user input
// produces it.
type RunFinished struct{}

// GoBackPressed returns from the finished screen to the script screen.
type GoBackPressed struct{}

// SavePressed opens the save destination chooser.
type SavePressed struct{}

// SaveDone reports a successful save; the chooser reverts to the script.
type SaveDone struct{}

// SaveCancelled abandons the chooser without saving.
type SaveCancelled struct{}

func (RunPressed) event()    {}
func (RunFinished) event()   {}
func (GoBackPressed) event() {}
func (SavePressed) event()   {}
func (SaveDone) event()      {}
func (SaveCancelled) event() {}

// Apply advances the state machine. The second return value reports
// whether the event was legal in the given state; illegal events leave
// the state untouched.
//
// The only screen cycle is Script -> Running -> Finished -> Script.
func Apply(s State, ev Event) (State, bool) {
	switch ev := ev.(type) {
	case RunPressed:
		if s.Screen != ScreenScript {
			return s, false
		}
		s.Screen = ScreenRunning
		s.Pane = PaneProgress
		s.DryRun = ev.DryRun
		return s, true

	case RunFinished:
		if s.Screen != ScreenRunning {
			return s, false
		}
		s.Screen = ScreenFinished
		return s, true

	case GoBackPressed:
		if s.Screen != ScreenFinished {
			return s, false
		}
		s.Screen = ScreenScript
		s.Pane = PaneScript
		return s, true

	case SavePressed:
		if s.Screen != ScreenScript || s.Pane != PaneScript {
			return s, false
		}
		s.Pane = PaneChooser
		return s, true

	case SaveDone, SaveCancelled:
		if s.Screen != ScreenScript || s.Pane != PaneChooser {
			return s, false
		}
		s.Pane = PaneScript
		return s, true
	}
	return s, false
}
