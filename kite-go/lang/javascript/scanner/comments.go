package scanner

func isLineComment(c *Cursor) bool {
	return c.hasPrefix("//")
}

// consumeLineComment skips through the line feed ending the comment, or to the end
// of input.
func consumeLineComment(c *Cursor) (*Token, error) {
	c.Next()
	c.Next()
	for {
		r, ok := c.Consume()
		if !ok {
			break
		}
		if r == '\n' {
			c.FoundNewLine()
			break
		}
	}
	return nil, nil
}

func isBlockComment(c *Cursor) bool {
	return c.hasPrefix("/*")
}

// consumeBlockComment skips through the closing */. An unterminated comment runs to
// the end of input and is not an error.
func consumeBlockComment(c *Cursor) (*Token, error) {
	c.Next()
	c.Next()
	for c.HasNext() {
		if c.hasPrefix("*/") {
			c.Next()
			c.Next()
			break
		}
		if r, _ := c.Consume(); r == '\n' {
			c.FoundNewLine()
		}
	}
	return nil, nil
}
