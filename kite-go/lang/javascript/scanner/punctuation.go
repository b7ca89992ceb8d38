package scanner

func isRune(c *Cursor, runes ...rune) bool {
	r, ok := c.Token()
	if !ok {
		return false
	}
	for _, want := range runes {
		if r == want {
			return true
		}
	}
	return false
}

func isTerminator(c *Cursor) bool  { return isRune(c, ';') }
func isPeriod(c *Cursor) bool      { return isRune(c, '.') }
func isComma(c *Cursor) bool       { return isRune(c, ',') }
func isParenthesis(c *Cursor) bool { return isRune(c, '(', ')') }
func isCurlyBrace(c *Cursor) bool  { return isRune(c, '{', '}') }

// separator returns a consumer for a single character separator of the given kind.
func separator(kind SeparatorKind) func(*Cursor) (*Token, error) {
	return func(c *Cursor) (*Token, error) {
		m := c.mark()
		r, ok := c.Consume()
		if !ok {
			return nil, errUnexpectedToken(c)
		}
		tok := c.token(m, Separator, string(r))
		tok.Separator = kind
		return &tok, nil
	}
}
