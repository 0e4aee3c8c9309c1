package index

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"scour/internal/config"
	"scour/internal/errors"
	"scour/internal/log"
	"scour/internal/script"
	"scour/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0644))
	return path
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	dup := writeFile(t, dir, "dup.bin", 2048)
	orig := writeFile(t, dir, "orig.bin", 2048)

	entries := []types.Entry{
		{Path: orig, Action: types.ActionKeep},
		{Path: dup, Action: types.ActionRemove},
		{Path: filepath.Join(dir, "vanished.bin"), Action: types.ActionRemove},
	}

	t.Run("stats_resolvable_paths", func(t *testing.T) {
		ix := Build(entries, nil)
		assert.Equal(t, 2, ix.Len())

		e, ok := ix.LookupByPath(dup)
		require.True(t, ok)
		assert.Equal(t, uint64(2048), e.Size)

		_, ok = ix.LookupByPath(filepath.Join(dir, "vanished.bin"))
		assert.False(t, ok)
	})

	t.Run("total_counts_only_removals", func(t *testing.T) {
		ix := Build(entries, nil)
		assert.Equal(t, uint64(2048), ix.TotalSize())
	})

	t.Run("protection_globs_flag_entries", func(t *testing.T) {
		globs, err := CompilePatterns([]string{filepath.Join(dir, "orig*")})
		require.NoError(t, err)

		ix := Build(entries, globs)
		assert.Equal(t, 1, ix.ProtectedCount())

		e, ok := ix.LookupByPath(orig)
		require.True(t, ok)
		assert.True(t, e.Protected)

		e, _ = ix.LookupByPath(dup)
		assert.False(t, e.Protected)
	})

	t.Run("entries_preserve_order", func(t *testing.T) {
		ix := Build(entries, nil)
		out := ix.Entries()
		require.Len(t, out, 3)
		assert.Equal(t, orig, out[0].Path)
		assert.Equal(t, dup, out[1].Path)
		// Vanished paths keep their row for serialization, size unknown.
		assert.Equal(t, filepath.Join(dir, "vanished.bin"), out[2].Path)
		assert.Zero(t, out[2].Size)
	})

	t.Run("stat_failure_logs_formatted", func(t *testing.T) {
		var buf bytes.Buffer
		log.SetOutput(&buf)
		defer log.SetOutput(os.Stdout)
		log.SetDebug(true)
		defer log.SetDebug(false)

		Build(entries, nil)
		out := buf.String()
		assert.Contains(t, out, "Cannot stat planned path")
		assert.Contains(t, out, "vanished.bin")
		assert.NotContains(t, out, "%v")
	})

	t.Run("empty_build", func(t *testing.T) {
		ix := Build(nil, nil)
		assert.Zero(t, ix.Len())
		assert.Zero(t, ix.TotalSize())
		_, ok := ix.LookupByPath("/anything")
		assert.False(t, ok)
	})
}

func TestCompilePatterns(t *testing.T) {
	globs, err := CompilePatterns([]string{"/boot/**", "/etc/*"})
	require.NoError(t, err)
	assert.Len(t, globs, 2)

	_, err = CompilePatterns([]string{"[unclosed"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
}

func TestAttach(t *testing.T) {
	dir := t.TempDir()
	dup := writeFile(t, dir, "dup.bin", 512)

	scriptPath := filepath.Join(dir, "plan.sh")
	body := "#!/bin/sh\nremove_cmd '" + dup + "'\n"
	require.NoError(t, os.WriteFile(scriptPath, []byte(body), 0755))

	s, err := script.Load(scriptPath)
	require.NoError(t, err)

	cfg := config.New()
	cfg.Settings.Protect = []string{filepath.Join(dir, "dup*")}

	ix, err := Attach(s, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, ix.ProtectedCount())

	// Sizes and flags are folded back into the script's entries.
	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, uint64(512), entries[0].Size)
	assert.True(t, entries[0].Protected)

	cfg.Settings.Protect = []string{"[bad"}
	_, err = Attach(s, cfg)
	assert.Error(t, err)
}
