package scanner

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind is the reason tokenizing failed.
type ErrorKind int

const (
	// UnexpectedToken means no classifier recognized the character at Index.
	UnexpectedToken ErrorKind = iota
	// UnterminatedStringLiteral means a string hit a line feed or the end of input
	// before its closing quote.
	UnterminatedStringLiteral
)

var errorKindNames = map[ErrorKind]string{
	UnexpectedToken:           "UnexpectedToken",
	UnterminatedStringLiteral: "UnterminatedStringLiteral",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is returned by Tokenize. Index is the character offset where the problem
// was detected.
type Error struct {
	Kind  ErrorKind
	Index int
	Pos   Position
}

// Error implements error
func (e Error) Error() string {
	return fmt.Sprintf("%s: %s (character %d)", e.Pos, e.Kind, e.Index)
}

func errUnexpectedToken(c *Cursor) error {
	return Error{Kind: UnexpectedToken, Index: c.Index(), Pos: c.Position()}
}

func errUnterminatedString(c *Cursor) error {
	return Error{Kind: UnterminatedStringLiteral, Index: c.Index(), Pos: c.Position()}
}

// KindOf returns the kind of a tokenizer error, looking through any wrapping
// added with github.com/pkg/errors.
func KindOf(err error) (ErrorKind, bool) {
	if e, ok := errors.Cause(err).(Error); ok {
		return e.Kind, true
	}
	return 0, false
}
