// Package index builds the size index over the paths a cleanup script
// plans to touch. The progress tracker resolves per-line events against
// it, and protection globs are classified here.
package index

import (
	"os"

	"scour/internal/config"
	"scour/internal/errors"
	"scour/internal/log"
	"scour/internal/script"
	"scour/pkg/types"

	"github.com/gobwas/glob"
)

// Index resolves script paths to their on-disk size.
type Index struct {
	byPath    map[string]types.Entry
	all       []types.Entry
	protected int
	totalSize uint64
}

// CompilePatterns compiles protection globs from the configuration.
// An invalid pattern fails the whole set.
func CompilePatterns(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, errors.NewConfigError("invalid protect pattern", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// Build stats every parsed entry and records its size. Paths that cannot
// be resolved stay in the entry list but never answer lookups; progress
// events for them simply won't increment the running total. Entries
// matching a protection glob are flagged.
func Build(entries []types.Entry, protect []glob.Glob) *Index {
	ix := &Index{
		byPath: make(map[string]types.Entry, len(entries)),
	}

	for _, e := range entries {
		for _, g := range protect {
			if g.Match(e.Path) {
				e.Protected = true
				break
			}
		}
		if e.Protected {
			ix.protected++
		}

		info, err := os.Stat(e.Path)
		if err != nil {
			log.LogWithFields(log.F("path", e.Path)).Debugf("Cannot stat planned path: %v", err)
			ix.all = append(ix.all, e)
			continue
		}
		if info.Size() > 0 {
			e.Size = uint64(info.Size())
		}

		ix.all = append(ix.all, e)
		ix.byPath[e.Path] = e
		if e.Action == types.ActionRemove {
			ix.totalSize += e.Size
		}
	}
	return ix
}

// Attach builds an index for a loaded script using the configured
// protection patterns and folds sizes and protection flags back into
// the script's entries.
func Attach(s *script.Script, cfg *config.Config) (*Index, error) {
	globs, err := CompilePatterns(cfg.Settings.Protect)
	if err != nil {
		return nil, err
	}

	ix := Build(s.Entries(), globs)
	s.Annotate(ix.Entries())
	return ix, nil
}

// LookupByPath resolves a path to its indexed entry. Only paths that
// could be stat'ed answer here.
func (ix *Index) LookupByPath(path string) (types.Entry, bool) {
	e, ok := ix.byPath[path]
	return e, ok
}

// Entries returns every enriched entry in script order, including ones
// whose path no longer exists.
func (ix *Index) Entries() []types.Entry {
	out := make([]types.Entry, len(ix.all))
	copy(out, ix.all)
	return out
}

// Len returns the number of resolvable entries.
func (ix *Index) Len() int {
	return len(ix.byPath)
}

// ProtectedCount returns how many planned paths match a protection glob.
func (ix *Index) ProtectedCount() int {
	return ix.protected
}

// TotalSize is the byte sum of all resolvable remove-entries.
func (ix *Index) TotalSize() uint64 {
	return ix.totalSize
}
