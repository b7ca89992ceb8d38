package scanner

import (
	"go/token"
	"unicode/utf8"
)

// Cursor walks the characters of a source buffer. The index is always within
// [0, len], where len means the input is exhausted; moves past either end are clamped.
type Cursor struct {
	src     []byte
	runes   []rune
	offsets []int // byte offset of each rune, plus len(src) at the end

	index int

	// line tracking, updated by FoundNewLine
	lines     int
	lineStart int
}

// NewCursor creates a cursor at the start of src. Invalid UTF-8 bytes are
// decoded as utf8.RuneError, one byte each.
func NewCursor(src []byte) *Cursor {
	c := &Cursor{
		src:     src,
		runes:   make([]rune, 0, len(src)),
		offsets: make([]int, 0, len(src)+1),
	}
	for off := 0; off < len(src); {
		r, size := utf8.DecodeRune(src[off:])
		c.runes = append(c.runes, r)
		c.offsets = append(c.offsets, off)
		off += size
	}
	c.offsets = append(c.offsets, len(src))
	return c
}

// HasNext reports whether there is a character at the current index.
func (c *Cursor) HasNext() bool {
	return c.index < len(c.runes)
}

// Token returns the character at the current index.
func (c *Cursor) Token() (rune, bool) {
	return c.at(c.index)
}

// Peek returns the character after the current one.
func (c *Cursor) Peek() (rune, bool) {
	return c.at(c.index + 1)
}

// PeekForward returns the character n positions after the current one.
func (c *Cursor) PeekForward(n int) (rune, bool) {
	return c.at(c.index + n)
}

// PeekBack returns the character before the current one.
func (c *Cursor) PeekBack() (rune, bool) {
	return c.at(c.index - 1)
}

// Consume returns the current character and advances past it.
func (c *Cursor) Consume() (rune, bool) {
	r, ok := c.Token()
	c.Next()
	return r, ok
}

// Next advances one character.
func (c *Cursor) Next() {
	if c.index < len(c.runes) {
		c.index++
	}
}

// WalkBack retreats one character.
func (c *Cursor) WalkBack() {
	if c.index > 0 {
		c.index--
	}
}

// FoundNewLine records that the character just consumed was a line feed.
func (c *Cursor) FoundNewLine() {
	c.lines++
	c.lineStart = c.index
}

// Index is the character offset of the cursor.
func (c *Cursor) Index() int {
	return c.index
}

// Offset is the byte offset of the cursor.
func (c *Cursor) Offset() token.Pos {
	return token.Pos(c.offsets[c.index])
}

// Position is the line and column of the cursor.
func (c *Cursor) Position() Position {
	return Position{
		Line:   c.lines + 1,
		Column: c.index - c.lineStart,
	}
}

func (c *Cursor) at(i int) (rune, bool) {
	if i < 0 || i >= len(c.runes) {
		return 0, false
	}
	return c.runes[i], true
}

// mark is a saved cursor position used to build tokens.
type mark struct {
	index int
	pos   Position
}

func (c *Cursor) mark() mark {
	return mark{index: c.index, pos: c.Position()}
}

// raw returns the source bytes between m and the cursor.
func (c *Cursor) raw(m mark) string {
	return string(c.src[c.offsets[m.index]:c.offsets[c.index]])
}

// token builds a token spanning m to the cursor.
func (c *Cursor) token(m mark, kind Kind, value string) Token {
	return Token{
		Kind:  kind,
		Value: value,
		Raw:   c.raw(m),
		Begin: token.Pos(c.offsets[m.index]),
		End:   c.Offset(),
		Loc: Location{
			Start: m.pos,
			End:   c.Position(),
		},
	}
}

// hasPrefix reports whether the characters at the cursor spell word.
func (c *Cursor) hasPrefix(word string) bool {
	i := 0
	for _, r := range word {
		got, ok := c.PeekForward(i)
		if !ok || got != r {
			return false
		}
		i++
	}
	return true
}
