// Package preprocess normalizes raw shell input before lexing: it strips
// comments, drops empty lines, turns line breaks into statement separators,
// and coalesces runs of separators. Whitespace other than line breaks is
// left untouched — deciding whether it matters is the lexer's job.
package preprocess

import "strings"

// Run applies the four preprocessing passes in order and returns text that
// is semantically equivalent input for the lexer. Run is idempotent:
// Run(Run(x)) == Run(x) for all x.
func Run(source string) string {
	s := stripComments(source)
	s = removeEmptyLines(s)
	s = linesToSemicolons(s)
	s = collapseSemicolons(s)
	return s
}

// stripComments removes everything from an unquoted '#' to the next line
// break or ';'. The quote state is a single shared boolean toggled by every
// unescaped quote character, regardless of whether it is ' or " — nested
// mismatched quotes (e.g. "it's") will confuse this detector. That is a
// known, intentionally preserved limitation: the original shell this was
// ported from behaves the same way.
func stripComments(source string) string {
	var result strings.Builder
	result.Grow(len(source))

	inQuote := false
	inComment := false

	for _, c := range source {
		if c == '"' || c == '\'' {
			inQuote = !inQuote
		}

		if c == '#' && !inQuote {
			inComment = true
		}

		if !inComment {
			result.WriteRune(c)
		}

		if c == '\n' || c == '\r' || c == ';' {
			inComment = false
		}
	}

	return result.String()
}

// removeEmptyLines drops lines whose trimmed content is empty and rejoins
// the remainder with '\n'.
func removeEmptyLines(source string) string {
	lines := strings.Split(source, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// linesToSemicolons converts every remaining line break into a statement
// separator.
func linesToSemicolons(source string) string {
	source = strings.ReplaceAll(source, "\r\n", ";")
	return strings.ReplaceAll(source, "\n", ";")
}

// collapseSemicolons collapses runs of consecutive ';' into one and drops a
// leading ';'.
func collapseSemicolons(source string) string {
	var result strings.Builder
	result.Grow(len(source))

	prevWasSemicolon := false
	for _, c := range source {
		if c == ';' {
			if !prevWasSemicolon {
				result.WriteRune(c)
			}
			prevWasSemicolon = true
		} else {
			result.WriteRune(c)
			prevWasSemicolon = false
		}
	}

	out := result.String()
	if strings.HasPrefix(out, ";") {
		out = out[1:]
	}
	return out
}
