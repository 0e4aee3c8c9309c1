package script

import (
	"bufio"
	"strings"

	"scour/pkg/types"
)

// Generated scripts invoke one helper per planned path:
//
//	remove_cmd '/path/to/duplicate' # duplicate of '/path/to/original'
//	keep_path '/path/to/original'
//
// Arguments are single-quoted shell words; embedded quotes use the usual
// '\'' escape. Everything else in the script (helper definitions, option
// parsing, comments) is ignored here.
var commandActions = map[string]types.Action{
	"remove_cmd": types.ActionRemove,
	"keep_path":  types.ActionKeep,
}

// parseEntries extracts the planned operations from a script body.
func parseEntries(content string) []types.Entry {
	var entries []types.Entry

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		cmd, rest, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		action, ok := commandActions[cmd]
		if !ok {
			continue
		}
		path, ok := parseQuotedWord(strings.TrimSpace(rest))
		if !ok || path == "" {
			continue
		}

		entries = append(entries, types.Entry{
			Path:   path,
			Action: action,
		})
	}
	return entries
}

// parseQuotedWord reads a leading single-quoted shell word, handling the
// '\'' escape sequence. Returns false if s does not start with a quote
// or the quote is never closed.
func parseQuotedWord(s string) (string, bool) {
	if !strings.HasPrefix(s, "'") {
		return "", false
	}

	var sb strings.Builder
	rest := s[1:]
	for {
		end := strings.IndexByte(rest, '\'')
		if end < 0 {
			return "", false
		}
		sb.WriteString(rest[:end])
		rest = rest[end+1:]

		// A closing quote immediately followed by \'' re-opens the word
		// with a literal quote in between.
		if strings.HasPrefix(rest, `\''`) {
			sb.WriteByte('\'')
			rest = rest[3:]
			continue
		}
		return sb.String(), true
	}
}
