package scanner

import "strings"

func isString(c *Cursor) bool {
	r, ok := c.Token()
	return ok && (r == '\'' || r == '"')
}

// consumeString reads a quoted string. A backslash escapes the next character: the
// backslash itself is kept in Raw but dropped from Value, unless it is escaped too.
// Escape sequences are not otherwise interpreted.
func consumeString(c *Cursor) (*Token, error) {
	m := c.mark()
	delim, _ := c.Consume()

	var value strings.Builder
	var escaped bool
	for {
		r, ok := c.Token()
		if !ok || r == '\n' {
			return nil, errUnterminatedString(c)
		}
		c.Next()

		switch {
		case escaped:
			value.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == delim:
			tok := c.token(m, Literal, value.String())
			tok.Literal = String
			return &tok, nil
		default:
			value.WriteRune(r)
		}
	}
}
