package messages

// ScriptLineMsg is one progress line from the running script, already
// split into its classification prefix and path.
type ScriptLineMsg struct {
	Prefix string
	Path   string
}

// ScriptFinishedMsg is the runner's terminal completion signal.
type ScriptFinishedMsg struct {
	Err error
}

// ScriptEditedMsg reports an external modification of the script file.
type ScriptEditedMsg struct{}

// SaveResultMsg reports the outcome of a confirmed save.
type SaveResultMsg struct {
	Path string
	Err  error
}

// UnlockResultMsg reports the outcome of a privilege unlock attempt.
type UnlockResultMsg struct {
	Err error
}
