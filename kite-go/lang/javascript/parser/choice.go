package parser

import (
	"fmt"

	"github.com/kiteco/joeyscript/kite-go/lang/javascript/ast"
)

// match is the result of a successful probe: node was built from the tokens in
// [begin, end).
type match struct {
	node       ast.Node
	begin, end int
}

func (m *match) expr() ast.Expr {
	return m.node.(ast.Expr)
}

// findFunc probes for a production starting at token i. Probes never move the
// cursor. A nil match with a nil error, or an UnexpectedTokenStart error, means the
// production does not start at i; any other error means it starts at i but is
// malformed.
type findFunc func(p *parser, i int) (*match, error)

type rule struct {
	name string
	find findFunc
}

// firstMatch returns the match of the first rule that applies at i. Rules that do
// not apply are skipped, any other error stops the search.
func (p *parser) firstMatch(i int, rules ...rule) (*match, error) {
	for _, r := range rules {
		m, err := p.try(r, i)
		if err != nil {
			if isKind(err, UnexpectedTokenStart) {
				continue
			}
			return nil, err
		}
		if m != nil {
			return m, nil
		}
	}
	return nil, nil
}

// try runs a single rule at i, tracing it if enabled.
func (p *parser) try(r rule, i int) (*match, error) {
	if !p.opts.Trace {
		return r.find(p, i)
	}

	p.printTrace(i, r.name, "(")
	p.indent++
	m, err := r.find(p, i)
	p.indent--

	switch {
	case err != nil:
		p.printTrace(i, ")", err)
	case m == nil:
		p.printTrace(i, ")", "no match")
	default:
		p.printTrace(i, ")", fmt.Sprintf("%s [%d, %d)", ast.String(m.node), m.begin, m.end))
	}
	return m, err
}

// matches reports whether find produces a match at i; errors count as no match.
func (p *parser) matches(i int, find findFunc) bool {
	m, err := find(p, i)
	return err == nil && m != nil
}

// consumeResult commits a match by advancing the cursor past it.
func (p *parser) consumeResult(m *match) ast.Node {
	p.c.ConsumeRange(m.end - m.begin)
	return m.node
}

func (p *parser) printTrace(i int, a ...interface{}) {
	const dots = ". . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . "
	fmt.Fprintf(p.opts.TraceWriter, "%5d: ", i)
	n := 2 * p.indent
	for n > len(dots) {
		fmt.Fprint(p.opts.TraceWriter, dots)
		n -= len(dots)
	}
	fmt.Fprint(p.opts.TraceWriter, dots[:n])
	fmt.Fprintln(p.opts.TraceWriter, a...)
}

// Usage pattern: defer un(trace(p, "..."))
func trace(p *parser, msg string) *parser {
	p.printTrace(p.c.Index(), msg, "(")
	p.indent++
	return p
}

func un(p *parser) {
	p.indent--
	p.printTrace(p.c.Index(), ")")
}
