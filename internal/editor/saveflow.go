package editor

import (
	"path/filepath"
	"strings"
	"time"

	"scour/internal/errors"
	"scour/internal/script"
)

// Saver serializes the current script to disk. *script.Script satisfies it.
type Saver interface {
	Save(path string, format script.Format) error
}

// SaveFlow drives the destination chooser: pick a path, pick a format,
// confirm. A timestamped filename is suggested until the user types
// their own.
type SaveFlow struct {
	saver  Saver
	dest   string
	format script.Format
	typed  bool

	now func() time.Time
}

// NewSaveFlow starts a flow with the sh format and a fresh suggestion.
func NewSaveFlow(saver Saver) *SaveFlow {
	f := &SaveFlow{
		saver:  saver,
		format: script.FormatSh,
		now:    time.Now,
	}
	f.dest = f.suggest()
	return f
}

// suggest builds the rmlint-style timestamped default filename.
func (f *SaveFlow) suggest() string {
	stamp := f.now().Format("2006-01-02T15:04:05-0700")
	return "rmlint-" + stamp + "." + f.format.Ext()
}

// SelectDestination records a user-chosen destination path. An empty
// path clears the choice and re-enables suggestions.
func (f *SaveFlow) SelectDestination(path string) {
	f.dest = path
	f.typed = path != ""
}

// SelectFormat switches the output format. While no custom path has
// been typed the suggestion is regenerated; a typed name keeps its base
// and only swaps the extension. A typed name without any extension is
// left untouched.
func (f *SaveFlow) SelectFormat(format script.Format) {
	f.format = format
	if !f.typed {
		f.dest = f.suggest()
		return
	}
	ext := filepath.Ext(f.dest)
	if ext == "" {
		return
	}
	f.dest = strings.TrimSuffix(f.dest, ext) + "." + format.Ext()
}

// Destination returns the currently selected (or suggested) path.
func (f *SaveFlow) Destination() string {
	return f.dest
}

// Format returns the currently selected output format.
func (f *SaveFlow) Format() script.Format {
	return f.format
}

// CanSave reports whether the confirm action is enabled. It requires a
// non-empty destination.
func (f *SaveFlow) CanSave() bool {
	return f.dest != ""
}

// ConfirmSave delegates serialization to the script. Errors from the
// saver propagate unchanged; there is no retry at this layer.
func (f *SaveFlow) ConfirmSave() error {
	return f.SaveTo(f.dest, f.format)
}

// SaveTo writes with an explicit destination and format. Callers that
// confirm on one goroutine and keep the chooser live on another must
// capture both values first and pass them here, so later chooser input
// cannot change what gets written.
func (f *SaveFlow) SaveTo(dest string, format script.Format) error {
	if dest == "" {
		return errors.New("no destination selected")
	}
	return f.saver.Save(dest, format)
}
