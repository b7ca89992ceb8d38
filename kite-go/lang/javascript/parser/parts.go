package parser

import (
	"github.com/kiteco/joeyscript/kite-go/lang/javascript/ast"
	"github.com/kiteco/joeyscript/kite-go/lang/javascript/scanner"
)

// The functions in this file parse the shape of an expression starting at token i,
// without deciding whether a statement may end after it.

func (p *parser) identifierPart(i int) (*match, error) {
	tok := p.c.TokenAt(i)
	if tok == nil {
		return nil, errUnexpectedEndOfInput(i)
	}
	if tok.Kind != scanner.Identifier {
		return nil, errUnexpectedTokenStart(i)
	}
	return &match{node: ast.NewIdentifier(*tok), begin: i, end: i + 1}, nil
}

func (p *parser) literalPart(i int) (*match, error) {
	tok := p.c.TokenAt(i)
	if tok == nil {
		return nil, errUnexpectedEndOfInput(i)
	}
	if tok.Kind != scanner.Literal {
		return nil, errUnexpectedTokenStart(i)
	}
	return &match{node: ast.NewLiteral(*tok), begin: i, end: i + 1}, nil
}

type partResult struct {
	m   *match
	err error
}

// memoized returns the recorded result for i, computing it with parse on first use.
func memoized(results map[int]partResult, i int, parse func(int) (*match, error)) (*match, error) {
	if r, ok := results[i]; ok {
		return r.m, r.err
	}
	m, err := parse(i)
	results[i] = partResult{m: m, err: err}
	return m, err
}

// callPart parses Identifier ( [arguments] ). An identifier and paren with nothing
// after them is not a call.
func (p *parser) callPart(i int) (*match, error) {
	return memoized(p.calls, i, p.parseCallPart)
}

func (p *parser) parseCallPart(i int) (*match, error) {
	tok := p.c.TokenAt(i)
	if tok == nil {
		return nil, errUnexpectedEndOfInput(i)
	}
	if tok.Kind != scanner.Identifier || !p.c.TokenAt(i+1).IsSeparator("(") {
		return nil, errUnexpectedTokenStart(i)
	}

	j := i + 2
	if p.c.TokenAt(j) == nil {
		return nil, errUnexpectedTokenStart(i)
	}

	var args []ast.Expr
	if !p.c.TokenAt(j).IsSeparator(")") {
		elems, end, err := p.sequenceElements(j)
		if err != nil {
			if isKind(err, UnexpectedTokenStart) {
				return nil, errUnexpectedToken(j)
			}
			return nil, err
		}
		args, j = elems, end
	}

	closing := p.c.TokenAt(j)
	switch {
	case closing == nil:
		return nil, errUnexpectedEndOfInput(j)
	case !closing.IsSeparator(")"):
		return nil, errUnexpectedToken(j)
	}

	return &match{
		node: &ast.CallExpression{
			Callee:    ast.NewIdentifier(*tok),
			Arguments: args,
			From:      tok.Begin,
			To:        closing.End,
		},
		begin: i,
		end:   j + 1,
	}, nil
}

// operand parses one side of a binary expression.
func (p *parser) operand(i int) (*match, error) {
	return p.firstMatch(i,
		rule{"CallPart", (*parser).callPart},
		rule{"LiteralPart", (*parser).literalPart},
		rule{"IdentifierPart", (*parser).identifierPart},
	)
}

// binaryPart parses operand (operator operand)+. Operators have no precedence: the
// chain is folded left to right, so a - b + c is (a - b) + c.
func (p *parser) binaryPart(i int) (*match, error) {
	return memoized(p.binaries, i, p.parseBinaryPart)
}

func (p *parser) parseBinaryPart(i int) (*match, error) {
	left, err := p.operand(i)
	if err != nil {
		return nil, err
	}
	if left == nil {
		return nil, errUnexpectedTokenStart(i)
	}
	if op := p.c.TokenAt(left.end); op == nil || op.Kind != scanner.Operator {
		return nil, errUnexpectedTokenStart(i)
	}

	expr := left.expr()
	j := left.end
	for {
		op := p.c.TokenAt(j)
		if op == nil || op.Kind != scanner.Operator {
			break
		}
		right, err := p.operand(j + 1)
		if err != nil {
			return nil, err
		}
		if right == nil {
			return nil, errUnexpectedToken(j + 1)
		}
		expr = &ast.BinaryExpression{
			Operator: op.Raw,
			Left:     expr,
			Right:    right.expr(),
		}
		j = right.end
	}
	return &match{node: expr, begin: i, end: j}, nil
}

// single parses any expression other than a sequence.
func (p *parser) single(i int) (*match, error) {
	return p.firstMatch(i,
		rule{"BinaryPart", (*parser).binaryPart},
		rule{"CallPart", (*parser).callPart},
		rule{"LiteralPart", (*parser).literalPart},
		rule{"IdentifierPart", (*parser).identifierPart},
	)
}

// sequenceElements parses expr (, expr)* and returns the index after the last
// element.
func (p *parser) sequenceElements(i int) ([]ast.Expr, int, error) {
	first, err := p.single(i)
	if err != nil {
		return nil, 0, err
	}
	if first == nil {
		return nil, 0, errUnexpectedTokenStart(i)
	}

	elems := []ast.Expr{first.expr()}
	j := first.end
	for p.c.TokenAt(j).IsSeparator(",") {
		next, err := p.single(j + 1)
		if err != nil {
			return nil, 0, err
		}
		if next == nil {
			return nil, 0, errUnexpectedToken(j + 1)
		}
		elems = append(elems, next.expr())
		j = next.end
	}
	return elems, j, nil
}
