package parser

import (
	"io"
	"os"
	"time"

	"github.com/kiteco/joeyscript/kite-go/lang/javascript/ast"
	"github.com/kiteco/joeyscript/kite-go/lang/javascript/scanner"
)

// DefaultOptions for a parser
var DefaultOptions = Options{
	MaxDepth: 256,
}

// Options for a parser
type Options struct {
	Trace        bool      // Trace prints each rule to TraceWriter as it is tried
	TraceWriter  io.Writer // TraceWriter receives tracing output, os.Stdout if nil
	MaxDepth     int       // MaxDepth limits how deeply blocks may nest, 0 for no limit
	DisableCache bool      // DisableCache makes ParseSource bypass the parse cache
}

type parser struct {
	c    *Cursor
	opts Options

	// block nesting
	depth int

	// callPart and binaryPart results by token index
	calls    map[int]partResult
	binaries map[int]partResult

	// tracing
	indent int
}

func newParser(tokens []scanner.Token, opts Options) *parser {
	if opts.TraceWriter == nil {
		opts.TraceWriter = os.Stdout
	}
	return &parser{
		c:        NewCursor(tokens),
		opts:     opts,
		calls:    make(map[int]partResult),
		binaries: make(map[int]partResult),
	}
}

// Parse builds a program from tokens. Top level blocks are kept as BlockStatements
// but blocks nested inside them are flattened into them. The error, if any, is an
// Error carrying the index of the offending token.
func Parse(tokens []scanner.Token, opts Options) (*ast.Program, error) {
	defer parseDuration.DeferRecord(time.Now())

	p := newParser(tokens, opts)
	prog, err := p.parseProgram()
	if err != nil {
		recordError(err)
		return nil, err
	}
	recordStatements(prog)
	return prog, nil
}

// ParseBlock parses tokens holding exactly one block statement. Nested blocks are
// kept as BlockStatements.
func ParseBlock(tokens []scanner.Token, opts Options) (*ast.BlockStatement, error) {
	p := newParser(tokens, opts)
	block, err := p.parseBlockStatement(false)
	if err != nil {
		recordError(err)
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return block, nil
}

// ParseFunctionDeclaration parses tokens holding exactly one function declaration.
func ParseFunctionDeclaration(tokens []scanner.Token, opts Options) (*ast.FunctionDeclaration, error) {
	p := newParser(tokens, opts)
	fn, err := p.parseFunctionDeclaration()
	if err != nil {
		recordError(err)
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return fn, nil
}

func (p *parser) parseProgram() (*ast.Program, error) {
	if p.opts.Trace {
		defer un(trace(p, "Program"))
	}

	prog := &ast.Program{}
	for p.c.HasTokens() {
		tok := p.c.Token()
		switch {
		case tok.IsSeparator("{"):
			block, err := p.parseBlockStatement(true)
			if err != nil {
				return nil, err
			}
			prog.Body = append(prog.Body, block)

		case tok.IsSeparator("}"):
			return nil, errUnexpectedToken(p.c.Index())

		default:
			stmt, err := p.parseExpressionStatement()
			if err != nil {
				return nil, err
			}
			prog.Body = append(prog.Body, stmt)
		}
	}
	return prog, nil
}

func (p *parser) expectEnd() error {
	if p.c.HasTokens() {
		err := errUnexpectedToken(p.c.Index())
		recordError(err)
		return err
	}
	return nil
}
