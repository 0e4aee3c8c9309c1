package editor

// Severity is the visual weight of the run control.
type Severity int

const (
	// SeverityWarning marks a simulated (dry) run
	SeverityWarning Severity = iota
	// SeverityDanger marks a real, destructive run
	SeverityDanger
)

// Icon returns the indicator glyph for the severity.
func (s Severity) Icon() string {
	if s == SeverityDanger {
		return "☠"
	}
	return "⚠"
}

func (s Severity) String() string {
	if s == SeverityDanger {
		return "danger"
	}
	return "warning"
}

// RunMode tracks the dry-run flag and its dependent severity indicator.
// Updates flow one way: Set changes the flag and refreshes the
// indicator, whether the change came from user input or a programmatic
// rebind.
type RunMode struct {
	dryRun   bool
	enabled  bool
	severity Severity
}

// NewRunMode returns the default mode: dry-run on, control enabled.
func NewRunMode() *RunMode {
	m := &RunMode{enabled: true}
	m.Set(true)
	return m
}

// Set applies the dry-run flag and refreshes the severity indicator.
func (m *RunMode) Set(dryRun bool) {
	m.dryRun = dryRun
	if dryRun {
		m.severity = SeverityWarning
	} else {
		m.severity = SeverityDanger
	}
}

// Toggle flips the dry-run flag. Ignored while the control is disabled,
// i.e. during a run.
func (m *RunMode) Toggle() {
	if !m.enabled {
		return
	}
	m.Set(!m.dryRun)
}

// DryRun returns the current flag value.
func (m *RunMode) DryRun() bool {
	return m.dryRun
}

// SetEnabled enables or disables the control. Disabling prevents races
// between user input and an in-flight execution.
func (m *RunMode) SetEnabled(enabled bool) {
	m.enabled = enabled
}

// Enabled reports whether the control accepts input.
func (m *RunMode) Enabled() bool {
	return m.enabled
}

// Severity returns the current indicator state.
func (m *RunMode) Severity() Severity {
	return m.severity
}
