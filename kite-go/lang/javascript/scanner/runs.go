package scanner

import "strings"

func isIdentifier(c *Cursor) bool {
	r, ok := c.Token()
	return ok && isASCIILetter(r)
}

// consumeIdentifier takes the longest run of ASCII letters.
func consumeIdentifier(c *Cursor) (*Token, error) {
	tok := consumeRun(c, Identifier, isASCIILetter)
	return &tok, nil
}

func isNumber(c *Cursor) bool {
	r, ok := c.Token()
	return ok && isASCIIDigit(r)
}

// consumeNumber takes the longest run of decimal digits.
func consumeNumber(c *Cursor) (*Token, error) {
	tok := consumeRun(c, Literal, isASCIIDigit)
	tok.Literal = Number
	return &tok, nil
}

// consumeRun consumes characters until one fails accept, then walks back over it.
func consumeRun(c *Cursor, kind Kind, accept func(rune) bool) Token {
	m := c.mark()
	var sb strings.Builder
	for {
		r, ok := c.Consume()
		if !ok {
			break
		}
		if !accept(r) {
			c.WalkBack()
			break
		}
		sb.WriteRune(r)
	}
	return c.token(m, kind, sb.String())
}
