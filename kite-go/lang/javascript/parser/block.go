package parser

import "github.com/kiteco/joeyscript/kite-go/lang/javascript/ast"

// parseBlockStatement parses { statements... } at the cursor. With flatten set, the
// statements of nested blocks are added to the enclosing block instead of the
// nested blocks themselves.
func (p *parser) parseBlockStatement(flatten bool) (*ast.BlockStatement, error) {
	if p.opts.Trace {
		defer un(trace(p, "BlockStatement"))
	}

	open := p.c.Token()
	switch {
	case open == nil:
		return nil, errUnexpectedEndOfInput(p.c.Index())
	case !open.IsSeparator("{"):
		return nil, errUnexpectedToken(p.c.Index())
	}

	p.depth++
	defer func() { p.depth-- }()
	if p.opts.MaxDepth > 0 && p.depth > p.opts.MaxDepth {
		tooDeepRatio.Hit()
		return nil, errUnexpectedToken(p.c.Index())
	}
	p.c.Next()

	block := &ast.BlockStatement{From: open.Begin}
	for {
		i := p.c.Index()
		tok := p.c.Token()
		switch {
		case tok == nil:
			return nil, errUnexpectedEndOfInput(i)

		case tok.IsSeparator("}"):
			p.c.Next()
			block.To = tok.End
			return block, nil

		case tok.IsSeparator("{"):
			nested, err := p.parseBlockStatement(flatten)
			if err != nil {
				return nil, err
			}
			if flatten {
				block.Body = append(block.Body, nested.Body...)
			} else {
				block.Body = append(block.Body, nested)
			}

		default:
			stmt, err := p.parseExpressionStatement()
			if err != nil {
				return nil, err
			}
			block.Body = append(block.Body, stmt)
		}
	}
}

// parseExpressionStatement commits the expression statement at the cursor.
func (p *parser) parseExpressionStatement() (ast.Stmt, error) {
	i := p.c.Index()
	m, err := p.findExpressionStatement(i)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errUnexpectedToken(i)
	}
	return p.consumeResult(m).(ast.Stmt), nil
}
