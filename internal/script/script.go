// Package script models the generated cleanup script produced by the
// planning stage: loading and re-reading it, extracting the planned
// remove/keep operations, serializing it to other formats, and running
// it with live per-line progress events.
package script

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"

	"scour/internal/errors"
	"scour/internal/log"
	"scour/pkg/types"

	"github.com/gabriel-vasile/mimetype"
)

const dummyContent = `#!/bin/sh
# No cleanup script has been generated yet.
# Run the planning stage first, then open its output here.
`

// Script is a generated cleanup script plus the operations parsed from it.
type Script struct {
	path    string
	content string
	entries []types.Entry
	dummy   bool
}

// NewDummy returns a placeholder script so callers never have to deal
// with a nil script before a real one is loaded.
func NewDummy() *Script {
	return &Script{
		content: dummyContent,
		dummy:   true,
	}
}

// Load reads and parses a generated cleanup script from disk.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewScriptError("cannot read script", path, errors.ScriptParseFailed, err)
	}

	content := string(data)
	mtype := mimetype.Detect(data)
	if !mtype.Is("text/x-shellscript") && !strings.HasPrefix(content, "#!") {
		return nil, errors.NewScriptError(
			"not a shell script (detected "+mtype.String()+")",
			path, errors.ScriptParseFailed, nil,
		)
	}

	s := &Script{
		path:    path,
		content: content,
		entries: parseEntries(content),
	}
	log.LogWithFields(
		log.F("path", path),
		log.F("entries", len(s.entries)),
	).Debug("Loaded cleanup script")
	return s, nil
}

// Reload re-reads the script content from disk, e.g. after an external edit.
func (s *Script) Reload() error {
	if s.dummy || s.path == "" {
		return errors.NewScriptError("no script loaded", "", errors.ScriptNotLoaded, nil)
	}
	fresh, err := Load(s.path)
	if err != nil {
		return err
	}
	s.content = fresh.content
	s.entries = fresh.entries
	return nil
}

// Read returns the current script content.
func (s *Script) Read() string {
	return s.content
}

// Path returns the on-disk location of the script, empty for the dummy.
func (s *Script) Path() string {
	return s.path
}

// IsDummy reports whether this is the placeholder script.
func (s *Script) IsDummy() bool {
	return s.dummy
}

// Entries returns the planned operations parsed from the script.
func (s *Script) Entries() []types.Entry {
	return s.entries
}

// Annotate replaces the parsed entries with enriched ones, typically
// after the size index filled in sizes and protection flags.
func (s *Script) Annotate(entries []types.Entry) {
	s.entries = entries
}

// Save serializes the script to path in the given format. Write failures
// and unsupported formats surface as errors; no retrying happens here.
func (s *Script) Save(path string, format Format) error {
	var data []byte
	var err error

	// Only the runnable form warrants the execute bit.
	mode := os.FileMode(0644)
	switch format {
	case FormatSh:
		data = []byte(s.content)
		mode = 0755
	case FormatJSON:
		data, err = s.marshalJSON()
	case FormatCSV:
		data, err = s.marshalCSV()
	default:
		return errors.NewSaveError("unsupported format", path, string(format), errors.UnsupportedFormat, nil)
	}
	if err != nil {
		return errors.NewSaveError("cannot serialize script", path, string(format), errors.SaveFailed, err)
	}

	if err := os.WriteFile(path, data, mode); err != nil {
		return errors.NewSaveError("cannot write script", path, string(format), errors.SaveFailed, err)
	}
	log.LogWithFields(log.F("path", path), log.F("format", format)).Info("Saved script")
	return nil
}

type jsonDocument struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Source      string        `json:"source"`
	Entries     []types.Entry `json:"entries"`
}

func (s *Script) marshalJSON() ([]byte, error) {
	doc := jsonDocument{
		GeneratedAt: time.Now(),
		Source:      s.path,
		Entries:     s.entries,
	}
	return json.MarshalIndent(doc, "", "  ")
}

func (s *Script) marshalCSV() ([]byte, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"action", "path", "size"}); err != nil {
		return nil, err
	}
	for _, e := range s.entries {
		row := []string{string(e.Action), e.Path, strconv.FormatUint(e.Size, 10)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}
