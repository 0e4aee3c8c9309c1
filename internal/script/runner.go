package script

import (
	"bufio"
	"context"
	"os/exec"
	"strings"

	"scour/internal/errors"
	"scour/internal/log"

	"github.com/google/uuid"
)

// Event is delivered over the channel returned by Run.
type Event interface {
	event()
}

// LineEvent is one progress line emitted by the running script, split
// into a classification prefix ("Removing", "Keeping", ...) and the
// path it applies to.
type LineEvent struct {
	Prefix string
	Path   string
}

func (LineEvent) event() {}

// FinishedEvent is the single terminal event of a run. Err is non-nil
// when the script exited with a failure.
type FinishedEvent struct {
	Err error
}

func (FinishedEvent) event() {}

// Run executes the script via sh and streams its progress. A dry run
// appends the script's -n flag so nothing destructive happens. The
// returned channel delivers zero or more LineEvents followed by exactly
// one FinishedEvent, then closes. Cancelling ctx kills the process.
//
// The caller owns marshaling these events onto its UI loop; nothing in
// here touches shared state.
func (s *Script) Run(ctx context.Context, dryRun bool) (<-chan Event, error) {
	if s.dummy || s.path == "" {
		return nil, errors.NewScriptError("no script loaded", "", errors.ScriptNotLoaded, nil)
	}

	args := []string{s.path}
	if dryRun {
		args = append(args, "-n")
	}

	cmd := exec.CommandContext(ctx, "sh", args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.NewScriptError("cannot pipe script output", s.path, errors.ScriptRunFailed, err)
	}
	cmd.Stderr = cmd.Stdout

	runID := uuid.NewString()
	if err := cmd.Start(); err != nil {
		return nil, errors.NewScriptError("cannot start script", s.path, errors.ScriptRunFailed, err)
	}
	log.LogWithFields(
		log.F("run", runID),
		log.F("script", s.path),
		log.F("dry_run", dryRun),
	).Info("Running cleanup script")

	events := make(chan Event, 16)
	go func() {
		defer close(events)

		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			prefix, path, ok := splitProgressLine(scanner.Text())
			if !ok {
				log.LogWithFields(log.F("run", runID)).Debugf("Ignoring script output: %s", scanner.Text())
				continue
			}
			events <- LineEvent{Prefix: prefix, Path: path}
		}

		err := cmd.Wait()
		if err != nil {
			err = errors.NewScriptError("script failed", s.path, errors.ScriptRunFailed, err)
			log.LogWithFields(log.F("run", runID)).Errorf("Script run failed: %v", err)
		} else {
			log.LogWithFields(log.F("run", runID)).Info("Script run finished")
		}
		events <- FinishedEvent{Err: err}
	}()

	return events, nil
}

// splitProgressLine parses "<Prefix>: <path>" progress output. Lines
// without the separator are not progress lines.
func splitProgressLine(line string) (prefix, path string, ok bool) {
	prefix, path, ok = strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}
	prefix = strings.TrimSpace(prefix)
	path = strings.TrimSpace(path)
	if prefix == "" || strings.ContainsAny(prefix, " /") {
		return "", "", false
	}
	return prefix, path, true
}
