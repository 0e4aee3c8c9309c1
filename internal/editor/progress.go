package editor

import (
	"strings"
	"unicode"

	"scour/pkg/types"

	"github.com/dustin/go-humanize"
)

// Lookup resolves a path to its indexed entry. *index.Index satisfies it.
type Lookup interface {
	LookupByPath(path string) (types.Entry, bool)
}

// Tracker accumulates a running byte total and the last-processed path
// from the per-line events of one script run. Create a fresh Tracker per
// run; the sum only ever grows within one.
type Tracker struct {
	lookup     Lookup
	sizeSum    uint64
	lastPrefix string
	lastPath   string
	events     int
}

// NewTracker returns a tracker resolving sizes against lookup, which
// may be nil when no index is available.
func NewTracker(lookup Lookup) *Tracker {
	return &Tracker{lookup: lookup}
}

// Push consumes one (prefix, path) event. A case-insensitive "keeping"
// prefix only updates the displayed text; any other prefix additionally
// adds the entry's size to the running total when the path resolves.
// Unresolvable paths are non-fatal: the text still updates, the total
// doesn't move.
func (t *Tracker) Push(prefix, path string) {
	t.events++
	t.lastPrefix = prefix
	t.lastPath = sanitize(path)

	if strings.EqualFold(prefix, "keeping") {
		return
	}
	if t.lookup == nil {
		return
	}
	if e, ok := t.lookup.LookupByPath(path); ok {
		t.sizeSum += e.Size
	}
}

// SizeSum returns the accumulated byte total of this run.
func (t *Tracker) SizeSum() uint64 {
	return t.sizeSum
}

// LastPath returns the sanitized path of the most recent event.
func (t *Tracker) LastPath() string {
	return t.lastPath
}

// LastPrefix returns the prefix of the most recent event.
func (t *Tracker) LastPrefix() string {
	return t.lastPrefix
}

// Events returns how many events this tracker has consumed.
func (t *Tracker) Events() int {
	return t.events
}

// Status renders the human-readable progress line: total size, verb,
// and the last path.
func (t *Tracker) Status() string {
	var sb strings.Builder
	sb.WriteString(humanize.Bytes(t.sizeSum))
	sb.WriteString(" removed")
	if t.lastPath != "" {
		sb.WriteString("\n")
		sb.WriteString(t.lastPrefix)
		sb.WriteString(" ")
		sb.WriteString(t.lastPath)
	}
	return sb.String()
}

// sanitize strips control and escape characters so a hostile file name
// cannot corrupt the rendered output.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
