package parser

import (
	"strings"

	"github.com/kiteco/joeyscript/kite-go/lang/javascript/ast"
	"github.com/kiteco/joeyscript/kite-golib/status"
)

var (
	section = status.NewSection("lang/javascript (parser)")

	parseDuration     = section.SampleDuration("Parse duration")
	parseErrors       = section.Breakdown("Parse errors")
	statementKinds    = section.Breakdown("Top level statements")
	tooDeepRatio      = section.Ratio("Blocks nested past MaxDepth")
	cacheHitRatio     = section.Ratio("Parse cache hit")
	parseCacheEntries = section.Counter("Parse cache entries")
)

func init() {
	parseErrors.AddCategories(
		UnexpectedToken.String(),
		UnexpectedTokenStart.String(),
		UnexpectedEndOfInput.String(),
	)
}

func recordError(err error) {
	if kind, ok := KindOf(err); ok {
		parseErrors.Hit(kind.String())
	}
}

// recordStatements counts the top level statements of prog by the kind of node
// they hold, e.g CallExpression or BlockStatement.
func recordStatements(prog *ast.Program) {
	for _, stmt := range prog.Body {
		statementKinds.HitAndAdd(statementKind(stmt))
	}
}

func statementKind(stmt ast.Stmt) string {
	var node ast.Node = stmt
	if es, ok := stmt.(*ast.ExpressionStatement); ok {
		node = es.Expression
	}
	return strings.SplitN(ast.String(node), "[", 2)[0]
}
