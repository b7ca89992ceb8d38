package scanner

import (
	"fmt"
	"go/token"
	"strings"
)

// Kind is the coarse category of a token.
type Kind int

const (
	// Illegal is the zero Kind; the tokenizer never produces it.
	Illegal Kind = iota
	// Keyword is one of the reserved words, e.g. function or return.
	Keyword
	// Identifier is a run of ASCII letters that is not a reserved word.
	Identifier
	// Literal is a number, string, boolean or null.
	Literal
	// Separator is one of ( ) { } . , ;
	Separator
	// Operator is an entry from the operator table.
	Operator
)

var kindNames = map[Kind]string{
	Illegal:    "Illegal",
	Keyword:    "Keyword",
	Identifier: "Identifier",
	Literal:    "Literal",
	Separator:  "Separator",
	Operator:   "Operator",
}

// String gets a string representation of a kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// LiteralKind refines a Literal token.
type LiteralKind int

const (
	// NoLiteral is used for tokens that are not literals.
	NoLiteral LiteralKind = iota
	// Number is a run of decimal digits.
	Number
	// String is a quoted string.
	String
	// Boolean is true or false.
	Boolean
	// Null is null.
	Null
)

var literalNames = map[LiteralKind]string{
	NoLiteral: "NoLiteral",
	Number:    "Number",
	String:    "String",
	Boolean:   "Boolean",
	Null:      "Null",
}

func (k LiteralKind) String() string {
	if s, ok := literalNames[k]; ok {
		return s
	}
	return fmt.Sprintf("LiteralKind(%d)", int(k))
}

// SeparatorKind refines a Separator token.
type SeparatorKind int

const (
	// NoSeparator is used for tokens that are not separators.
	NoSeparator SeparatorKind = iota
	// Period is .
	Period
	// Comma is ,
	Comma
	// Parenthesis is ( or )
	Parenthesis
	// CurlyBrace is { or }
	CurlyBrace
	// Terminator is ;
	Terminator
)

var separatorNames = map[SeparatorKind]string{
	NoSeparator: "NoSeparator",
	Period:      "Period",
	Comma:       "Comma",
	Parenthesis: "Parenthesis",
	CurlyBrace:  "CurlyBrace",
	Terminator:  "Terminator",
}

func (k SeparatorKind) String() string {
	if s, ok := separatorNames[k]; ok {
		return s
	}
	return fmt.Sprintf("SeparatorKind(%d)", int(k))
}

// Position is a line and column in the source. Lines are one based, columns are the
// zero based character offset from the start of the line.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Location is the start and end position of a token.
type Location struct {
	Start Position
	End   Position
}

// Token is a lexical unit together with its position and content. Begin and End
// are a half open range of byte offsets into the source.
type Token struct {
	Kind      Kind
	Literal   LiteralKind
	Separator SeparatorKind

	// Value is the semantic payload, e.g the unescaped contents of a string.
	Value string
	// Raw is the exact source text.
	Raw string

	Begin token.Pos
	End   token.Pos
	Loc   Location
}

// String gets a string representation of a token, e.g Literal[String]['foo']
func (t Token) String() string {
	var sb strings.Builder
	sb.WriteString(t.Kind.String())
	switch t.Kind {
	case Literal:
		sb.WriteString("[" + t.Literal.String() + "]")
	case Separator:
		sb.WriteString("[" + t.Separator.String() + "]")
	}
	if len(t.Raw) > 50 {
		sb.WriteString(fmt.Sprintf("[%d bytes]", len(t.Raw)))
	} else {
		sb.WriteString("[" + t.Raw + "]")
	}
	return sb.String()
}

// Valid checks that the token has a non empty range that matches its raw text; it
// is intended for use in testing.
func (t Token) Valid() bool {
	if t.Begin >= t.End {
		return false
	}
	if int(t.End-t.Begin) != len(t.Raw) {
		return false
	}
	return (t.Kind == Literal) == (t.Literal != NoLiteral) &&
		(t.Kind == Separator) == (t.Separator != NoSeparator)
}

// Is reports whether the token is a separator or operator with the given raw text.
func (t *Token) Is(kind Kind, raw string) bool {
	return t != nil && t.Kind == kind && t.Raw == raw
}

// IsSeparator reports whether the token is the separator raw, e.g "(".
func (t *Token) IsSeparator(raw string) bool {
	return t.Is(Separator, raw)
}
