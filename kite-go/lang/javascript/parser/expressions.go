package parser

import "github.com/kiteco/joeyscript/kite-go/lang/javascript/ast"

// Statement level probes. Each one parses an expression starting at token i and
// then checks that the statement can end there, wrapping the expression in an
// ExpressionStatement that also takes a trailing semicolon.

// findExpressionStatement tries each kind of expression statement in order. A
// complete single expression followed by a comma is the start of a sequence.
func (p *parser) findExpressionStatement(i int) (*match, error) {
	sequence := rule{"SequenceExpression", (*parser).findSequenceExpression}

	m, err := p.firstMatch(i,
		rule{"BinaryExpression", (*parser).findBinaryExpression},
		rule{"CallExpression", (*parser).findCallExpression},
		rule{"LiteralExpression", (*parser).findLiteralExpression},
		rule{"IdentifierExpression", (*parser).findIdentifierExpression},
		sequence,
	)
	if err != nil || m == nil {
		return m, err
	}

	stmt := m.node.(*ast.ExpressionStatement)
	if stmt.To == stmt.Expression.End() && p.c.TokenAt(m.end).IsSeparator(",") {
		return p.firstMatch(i, sequence)
	}
	return m, nil
}

func (p *parser) findLiteralExpression(i int) (*match, error) {
	m, err := drain(p.literalPart(i))
	if err != nil || m == nil {
		return nil, err
	}
	if !p.literalEnded(m.end) {
		return nil, errUnexpectedToken(m.end)
	}
	return p.statement(m), nil
}

func (p *parser) findIdentifierExpression(i int) (*match, error) {
	m, err := drain(p.identifierPart(i))
	if err != nil || m == nil {
		return nil, err
	}
	if !p.identifierEnded(m.end) {
		return nil, errUnexpectedToken(m.end)
	}
	return p.statement(m), nil
}

func (p *parser) findCallExpression(i int) (*match, error) {
	m, err := drain(p.callPart(i))
	if err != nil || m == nil {
		return nil, err
	}
	if !p.literalEnded(m.end) {
		return nil, errUnexpectedToken(m.end)
	}
	return p.statement(m), nil
}

func (p *parser) findBinaryExpression(i int) (*match, error) {
	m, err := drain(p.binaryPart(i))
	if err != nil || m == nil {
		return nil, err
	}
	if !p.literalEnded(m.end) {
		return nil, errUnexpectedToken(m.end)
	}
	return p.statement(m), nil
}

// findSequenceExpression matches two or more comma separated expressions.
func (p *parser) findSequenceExpression(i int) (*match, error) {
	head, err := drain(p.single(i))
	if err != nil || head == nil {
		return nil, err
	}
	if !p.c.TokenAt(head.end).IsSeparator(",") {
		return nil, nil
	}

	elems, end, err := p.sequenceElements(i)
	if err != nil {
		return nil, err
	}
	if !p.sequenceEnded(end) {
		return nil, errUnexpectedToken(end)
	}
	return p.statement(&match{
		node:  &ast.SequenceExpression{Expressions: elems},
		begin: i,
		end:   end,
	}), nil
}

// drain turns the signal that a production does not start at i into no match.
func drain(m *match, err error) (*match, error) {
	if isKind(err, UnexpectedTokenStart) {
		return nil, nil
	}
	return m, err
}

func (p *parser) isLiteralExpression(i int) bool {
	return p.matches(i, (*parser).findLiteralExpression)
}

func (p *parser) isIdentifierExpression(i int) bool {
	return p.matches(i, (*parser).findIdentifierExpression)
}

func (p *parser) isCallExpression(i int) bool {
	return p.matches(i, (*parser).findCallExpression)
}

func (p *parser) isBinaryExpression(i int) bool {
	return p.matches(i, (*parser).findBinaryExpression)
}

func (p *parser) isSequenceExpression(i int) bool {
	return p.matches(i, (*parser).findSequenceExpression)
}

// literalEnded reports whether a statement may end before the token at j: the input
// is exhausted, the token is ; or , or a semicolon can be inserted.
func (p *parser) literalEnded(j int) bool {
	next := p.c.TokenAt(j)
	if next == nil || next.IsSeparator(";") || next.IsSeparator(",") {
		return true
	}
	return p.c.CanInsertAutomaticSemicolon(j - 1)
}

// identifierEnded is literalEnded, also allowing an identifier to be followed by a
// parenthesis or closing brace.
func (p *parser) identifierEnded(j int) bool {
	if p.literalEnded(j) {
		return true
	}
	next := p.c.TokenAt(j)
	return next.IsSeparator("(") || next.IsSeparator(")") || next.IsSeparator("}")
}

func (p *parser) sequenceEnded(j int) bool {
	next := p.c.TokenAt(j)
	if next == nil || next.IsSeparator(";") || next.IsSeparator(")") || next.IsSeparator("}") {
		return true
	}
	return p.c.CanInsertAutomaticSemicolon(j - 1)
}

// statement wraps the expression in m in an ExpressionStatement, extending it over
// a trailing semicolon.
func (p *parser) statement(m *match) *match {
	first, last := p.c.TokenAt(m.begin), p.c.TokenAt(m.end-1)
	end := m.end
	if next := p.c.TokenAt(end); next.IsSeparator(";") {
		last = next
		end++
	}
	return &match{
		node: &ast.ExpressionStatement{
			Expression: m.expr(),
			From:       first.Begin,
			To:         last.End,
		},
		begin: m.begin,
		end:   end,
	}
}
