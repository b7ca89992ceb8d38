package scanner

import "time"

// consumer is a token classifier: is reports, without moving the cursor, whether the
// input at the cursor belongs to it, and consume commits it. consume returns a nil
// token for input that is skipped, such as whitespace and comments.
type consumer struct {
	name    string
	is      func(*Cursor) bool
	consume func(*Cursor) (*Token, error)
}

// consumers are tried in order; the first one that recognizes the input wins.
var consumers = []consumer{
	{"eol", isEOL, consumeEOL},
	{"whitespace", isWhitespace, consumeWhitespace},
	{"line comment", isLineComment, consumeLineComment},
	{"block comment", isBlockComment, consumeBlockComment},
	{"keyword", isKeyword, consumeKeyword},
	{"boolean", isBoolean, consumeBoolean},
	{"null", isNull, consumeNull},
	{"terminator", isTerminator, separator(Terminator)},
	{"period", isPeriod, separator(Period)},
	{"comma", isComma, separator(Comma)},
	{"parenthesis", isParenthesis, separator(Parenthesis)},
	{"curly brace", isCurlyBrace, separator(CurlyBrace)},
	{"number", isNumber, consumeNumber},
	{"identifier", isIdentifier, consumeIdentifier},
	{"string", isString, consumeString},
	{"operator", isOperator, consumeOperator},
}

// Tokenize splits src into tokens. Whitespace and comments are dropped. On error
// no tokens are returned, and the error is an Error carrying the character offset
// where tokenizing stopped.
func Tokenize(src []byte) ([]Token, error) {
	defer tokenizeDuration.DeferRecord(time.Now())

	c := NewCursor(src)
	var tokens []Token
	for c.HasNext() {
		tok, err := next(c)
		if err != nil {
			if kind, ok := KindOf(err); ok {
				tokenizeErrors.Hit(kind.String())
			}
			return nil, err
		}
		if tok != nil {
			tokens = append(tokens, *tok)
		}
	}
	tokenCount.Add(int64(len(tokens)))
	return tokens, nil
}

// next runs the first matching consumer at the cursor.
func next(c *Cursor) (*Token, error) {
	for _, cons := range consumers {
		if cons.is(c) {
			return cons.consume(c)
		}
	}
	return nil, errUnexpectedToken(c)
}
