package parser

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind is the reason parsing failed.
type ErrorKind int

const (
	// UnexpectedToken means the token at Index cannot continue the construct
	// being parsed.
	UnexpectedToken ErrorKind = iota
	// UnexpectedTokenStart means no construct can begin at Index. Rules use it to
	// signal that they do not apply, and it only escapes Parse through the
	// stand alone sub-parsers.
	UnexpectedTokenStart
	// UnexpectedEndOfInput means the tokens ran out inside a construct.
	UnexpectedEndOfInput
)

var errorKindNames = map[ErrorKind]string{
	UnexpectedToken:      "UnexpectedToken",
	UnexpectedTokenStart: "UnexpectedTokenStart",
	UnexpectedEndOfInput: "UnexpectedEndOfInput",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is returned by the parser. Index is the index of the offending token.
type Error struct {
	Kind  ErrorKind
	Index int
}

// Error implements error
func (e Error) Error() string {
	return fmt.Sprintf("%s at token %d", e.Kind, e.Index)
}

func errUnexpectedToken(i int) error {
	return Error{Kind: UnexpectedToken, Index: i}
}

func errUnexpectedTokenStart(i int) error {
	return Error{Kind: UnexpectedTokenStart, Index: i}
}

func errUnexpectedEndOfInput(i int) error {
	return Error{Kind: UnexpectedEndOfInput, Index: i}
}

// KindOf returns the kind of a parser error, looking through any wrapping added
// with github.com/pkg/errors.
func KindOf(err error) (ErrorKind, bool) {
	if e, ok := errors.Cause(err).(Error); ok {
		return e.Kind, true
	}
	return 0, false
}

func isKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
