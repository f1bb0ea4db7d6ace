package discord

import "strings"

// splitArgs splits a command line into tokens, treating double-quoted runs as
// single tokens so multi-word event names survive: `create_event "Game Night"
// 2024-06-10 board games` -> ["create_event", "Game Night", "2024-06-10",
// "board", "games"].
func splitArgs(s string) []string {
	var args []string
	var cur strings.Builder
	inQuotes := false
	hasToken := false

	for _, r := range s {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			hasToken = true
		case r == ' ' || r == '\t' || r == '\n':
			if inQuotes {
				cur.WriteRune(r)
			} else if hasToken {
				args = append(args, cur.String())
				cur.Reset()
				hasToken = false
			}
		default:
			cur.WriteRune(r)
			hasToken = true
		}
	}
	if hasToken {
		args = append(args, cur.String())
	}
	return args
}

// stripQuotes unwraps a fully double-quoted string, for commands that take the
// whole remainder as one argument.
func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
