package parser

import (
	"github.com/kiteco/joeyscript/kite-go/lang/javascript/ast"
	"github.com/kiteco/joeyscript/kite-go/lang/javascript/scanner"
)

// parseFunctionDeclaration parses function Name(a, b) { ... } at the cursor. Nested
// blocks in the body are kept as BlockStatements.
func (p *parser) parseFunctionDeclaration() (*ast.FunctionDeclaration, error) {
	if p.opts.Trace {
		defer un(trace(p, "FunctionDeclaration"))
	}

	kw := p.c.Token()
	switch {
	case kw == nil:
		return nil, errUnexpectedEndOfInput(p.c.Index())
	case !kw.Is(scanner.Keyword, "function"):
		return nil, errUnexpectedToken(p.c.Index())
	}
	p.c.Next()

	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	if err := p.expectSeparator("("); err != nil {
		return nil, err
	}

	var params []*ast.Identifier
	if !p.c.Token().IsSeparator(")") {
		for {
			param, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			params = append(params, param)

			if !p.c.Token().IsSeparator(",") {
				break
			}
			p.c.Next()
		}
	}

	if err := p.expectSeparator(")"); err != nil {
		return nil, err
	}

	body, err := p.parseBlockStatement(false)
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDeclaration{
		ID:     name,
		Params: params,
		Body:   body,
		From:   kw.Begin,
		To:     body.To,
	}, nil
}

// parseIdentifier commits an identifier expression at the cursor, without a
// trailing semicolon.
func (p *parser) parseIdentifier() (*ast.Identifier, error) {
	i := p.c.Index()
	if p.c.Token() == nil {
		return nil, errUnexpectedEndOfInput(i)
	}

	m, err := p.findIdentifierExpression(i)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errUnexpectedToken(i)
	}

	stmt := m.node.(*ast.ExpressionStatement)
	if stmt.To != stmt.Expression.End() {
		// the identifier was followed by a semicolon
		return nil, errUnexpectedToken(i + 1)
	}
	p.consumeResult(m)
	return stmt.Expression.(*ast.Identifier), nil
}

// expectSeparator consumes the separator raw at the cursor.
func (p *parser) expectSeparator(raw string) error {
	tok := p.c.Token()
	switch {
	case tok == nil:
		return errUnexpectedEndOfInput(p.c.Index())
	case !tok.IsSeparator(raw):
		return errUnexpectedToken(p.c.Index())
	}
	p.c.Next()
	return nil
}
