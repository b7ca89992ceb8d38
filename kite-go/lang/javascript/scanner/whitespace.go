package scanner

import "unicode"

func isEOL(c *Cursor) bool {
	r, ok := c.Token()
	return ok && r == '\n'
}

func consumeEOL(c *Cursor) (*Token, error) {
	c.Next()
	c.FoundNewLine()
	return nil, nil
}

func isWhitespace(c *Cursor) bool {
	r, ok := c.Token()
	return ok && r != '\n' && unicode.IsSpace(r)
}

func consumeWhitespace(c *Cursor) (*Token, error) {
	c.Next()
	return nil, nil
}
