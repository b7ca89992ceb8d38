package scanner

// operators is ordered longest first so the first match is the longest one.
var operators = sortedByLength([]string{
	">>>=",
	"===", "!==", "**=", "<<=", ">>=", ">>>", "&&=", "||=", "??=",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>", "**",
	"=", "<", ">", "!", "+", "-", "*", "/", "%", "&", "|", "^", "~", "?", ":",
})

// findOperator returns the longest operator spelled at the cursor.
func findOperator(c *Cursor) (string, bool) {
	for _, op := range operators {
		if c.hasPrefix(op) {
			return op, true
		}
	}
	return "", false
}

func isOperator(c *Cursor) bool {
	_, ok := findOperator(c)
	return ok
}

func consumeOperator(c *Cursor) (*Token, error) {
	op, ok := findOperator(c)
	if !ok {
		return nil, errUnexpectedToken(c)
	}
	tok := consumeWord(c, op, Operator)
	return &tok, nil
}
