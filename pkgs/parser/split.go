package parser

import "github.com/flucium/fsh/pkgs/token"

// splitOn splits tokens at the first occurrence of want, returning the
// tokens before it and the tokens after it. want itself is not included in
// either half. If want does not occur, the whole slice is returned as the
// left half and right is empty — grounded on the original fsh-parser's
// split/recursion_split helpers (crates/fsh-parser/src/utils.rs).
func splitOn(want token.Type, tokens []token.Token) ([]token.Token, []token.Token) {
	for i, tok := range tokens {
		if tok.Type == want {
			return tokens[:i], tokens[i+1:]
		}
	}
	return tokens, nil
}

// splitAllOn repeatedly splits on want, returning every segment in order.
// A trailing empty segment (e.g. from a token run ending in want) is
// preserved so callers can detect it as an empty statement group.
func splitAllOn(want token.Type, tokens []token.Token) [][]token.Token {
	var groups [][]token.Token
	rest := tokens
	for {
		left, right := splitOn(want, rest)
		groups = append(groups, left)
		if right == nil {
			break
		}
		rest = right
	}
	return groups
}
