package parser

import "github.com/kiteco/joeyscript/kite-go/lang/javascript/scanner"

// Cursor walks a token slice. Lookups outside the slice return nil, and the index is
// kept within [0, len].
type Cursor struct {
	tokens []scanner.Token
	index  int
}

// NewCursor creates a cursor at the first token.
func NewCursor(tokens []scanner.Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// HasTokens reports whether there is a token at the current index.
func (c *Cursor) HasTokens() bool {
	return c.index < len(c.tokens)
}

// Len is the number of tokens.
func (c *Cursor) Len() int {
	return len(c.tokens)
}

// Index is the current token index.
func (c *Cursor) Index() int {
	return c.index
}

// TokenAt returns the token at index i, or nil.
func (c *Cursor) TokenAt(i int) *scanner.Token {
	if i < 0 || i >= len(c.tokens) {
		return nil
	}
	return &c.tokens[i]
}

// Token returns the current token.
func (c *Cursor) Token() *scanner.Token {
	return c.TokenAt(c.index)
}

// Peek returns the token after the current one.
func (c *Cursor) Peek() *scanner.Token {
	return c.TokenAt(c.index + 1)
}

// PeekForward returns the token n positions after the current one.
func (c *Cursor) PeekForward(n int) *scanner.Token {
	return c.TokenAt(c.index + n)
}

// PeekBack returns the token before the current one.
func (c *Cursor) PeekBack() *scanner.Token {
	return c.TokenAt(c.index - 1)
}

// Consume returns the current token and advances past it.
func (c *Cursor) Consume() *scanner.Token {
	tok := c.Token()
	c.Next()
	return tok
}

// ConsumeRange advances n tokens.
func (c *Cursor) ConsumeRange(n int) {
	c.index += n
	if c.index > len(c.tokens) {
		c.index = len(c.tokens)
	}
	if c.index < 0 {
		c.index = 0
	}
}

// Next advances one token.
func (c *Cursor) Next() {
	c.ConsumeRange(1)
}

// WalkBack retreats one token.
func (c *Cursor) WalkBack() {
	c.ConsumeRange(-1)
}

// CanInsertAutomaticSemicolon reports whether a statement may end after the token at
// i without an explicit semicolon: the next token starts on a later line than the
// token at i ends on, or the next token is a closing curly brace. The rule allowing
// a semicolon after the ) of a do-while loop is not implemented.
func (c *Cursor) CanInsertAutomaticSemicolon(i int) bool {
	tok, next := c.TokenAt(i), c.TokenAt(i+1)
	if tok == nil || next == nil {
		return false
	}
	if next.Loc.Start.Line != tok.Loc.End.Line {
		return true
	}
	return next.IsSeparator("}")
}
