package launch

import (
	"fmt"
	"strings"
)

// SplitCommandLine splits a shell-style command line into argv tokens,
// honoring single quotes, double quotes, and backslash escapes. It does no
// expansion; the tokens are passed through to exec unmodified.
func SplitCommandLine(s string) ([]string, error) {
	var out []string

	var buf strings.Builder
	inSingle := false
	inDouble := false
	escaped := false

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		out = append(out, buf.String())
		buf.Reset()
	}

	for _, r := range s {
		if escaped {
			buf.WriteRune(r)
			escaped = false
			continue
		}

		if !inSingle && r == '\\' {
			escaped = true
			continue
		}

		if !inDouble && r == '\'' {
			inSingle = !inSingle
			continue
		}
		if !inSingle && r == '"' {
			inDouble = !inDouble
			continue
		}

		if !inSingle && !inDouble {
			if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
				flush()
				continue
			}
		}

		buf.WriteRune(r)
	}

	if escaped {
		return nil, fmt.Errorf("unfinished escape in command line")
	}
	if inSingle || inDouble {
		return nil, fmt.Errorf("unterminated quote in command line")
	}

	flush()
	return out, nil
}
