package scanner

import "sort"

var (
	keywords = sortedByLength([]string{
		"break", "case", "catch", "continue", "debugger", "default", "delete",
		"do", "else", "finally", "for", "function", "if", "in", "instanceof",
		"new", "return", "switch", "this", "throw", "try", "typeof", "var",
		"void", "while", "with",
	})
	booleans = []string{"true", "false"}
	nulls    = []string{"null"}
)

// sortedByLength returns words ordered longest first, ties broken alphabetically.
func sortedByLength(words []string) []string {
	sorted := append([]string(nil), words...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// findWord returns the first of words spelled at the cursor and not followed by
// another letter or digit. It does not move the cursor.
func findWord(c *Cursor, words []string) (string, bool) {
	for _, w := range words {
		if !c.hasPrefix(w) {
			continue
		}
		if r, ok := c.PeekForward(len([]rune(w))); ok && (isASCIILetter(r) || isASCIIDigit(r)) {
			continue
		}
		return w, true
	}
	return "", false
}

// findKeyword returns the keyword at the cursor.
func findKeyword(c *Cursor) (string, bool) {
	return findWord(c, keywords)
}

func isKeyword(c *Cursor) bool {
	_, ok := findKeyword(c)
	return ok
}

func consumeKeyword(c *Cursor) (*Token, error) {
	kw, ok := findKeyword(c)
	if !ok {
		return nil, errUnexpectedToken(c)
	}
	tok := consumeWord(c, kw, Keyword)
	return &tok, nil
}

func isBoolean(c *Cursor) bool {
	_, ok := findWord(c, booleans)
	return ok
}

func consumeBoolean(c *Cursor) (*Token, error) {
	w, ok := findWord(c, booleans)
	if !ok {
		return nil, errUnexpectedToken(c)
	}
	tok := consumeWord(c, w, Literal)
	tok.Literal = Boolean
	return &tok, nil
}

func isNull(c *Cursor) bool {
	_, ok := findWord(c, nulls)
	return ok
}

func consumeNull(c *Cursor) (*Token, error) {
	w, ok := findWord(c, nulls)
	if !ok {
		return nil, errUnexpectedToken(c)
	}
	tok := consumeWord(c, w, Literal)
	tok.Literal = Null
	return &tok, nil
}

// consumeWord commits a word already matched at the cursor.
func consumeWord(c *Cursor, word string, kind Kind) Token {
	m := c.mark()
	for range word {
		c.Next()
	}
	return c.token(m, kind, word)
}
