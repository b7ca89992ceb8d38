package ast

import (
	"fmt"
	"strconv"

	"github.com/kiteco/joeyscript/kite-go/lang/javascript/scanner"
)

// ToMap converts a node into nested maps and slices shaped like ESTree, suitable for
// encoding as JSON or YAML. Every map has "type", "start" and "end" keys.
func ToMap(node Node) map[string]interface{} {
	m := map[string]interface{}{
		"start": int(node.Begin()),
		"end":   int(node.End()),
	}

	switch n := node.(type) {
	case *Program:
		m["type"] = "Program"
		m["body"] = stmtMaps(n.Body)
	case *ExpressionStatement:
		m["type"] = "ExpressionStatement"
		m["expression"] = ToMap(n.Expression)
	case *BlockStatement:
		m["type"] = "BlockStatement"
		m["body"] = stmtMaps(n.Body)
	case *FunctionDeclaration:
		m["type"] = "FunctionDeclaration"
		m["id"] = ToMap(n.ID)
		var params []interface{}
		for _, p := range n.Params {
			params = append(params, ToMap(p))
		}
		m["params"] = params
		m["body"] = ToMap(n.Body)
	case *Identifier:
		m["type"] = "Identifier"
		m["name"] = n.Name
	case *Literal:
		m["type"] = "Literal"
		m["value"] = literalValue(n)
		m["raw"] = n.Raw
	case *BinaryExpression:
		m["type"] = "BinaryExpression"
		m["operator"] = n.Operator
		m["left"] = ToMap(n.Left)
		m["right"] = ToMap(n.Right)
	case *CallExpression:
		m["type"] = "CallExpression"
		m["callee"] = ToMap(n.Callee)
		m["arguments"] = exprMaps(n.Arguments)
	case *SequenceExpression:
		m["type"] = "SequenceExpression"
		m["expressions"] = exprMaps(n.Expressions)
	case *ObjectExpression:
		m["type"] = "ObjectExpression"
		m["properties"] = exprMaps(n.Properties)
	case *ArrayExpression:
		m["type"] = "ArrayExpression"
		m["elements"] = exprMaps(n.Elements)
	default:
		panic(fmt.Sprintf("unexpected node type %T", node))
	}
	return m
}

func stmtMaps(stmts []Stmt) []interface{} {
	out := make([]interface{}, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, ToMap(s))
	}
	return out
}

func exprMaps(exprs []Expr) []interface{} {
	out := make([]interface{}, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, ToMap(e))
	}
	return out
}

// literalValue is the typed value of a literal, as ESTree would report it.
func literalValue(lit *Literal) interface{} {
	switch lit.Kind {
	case scanner.Number:
		if f, err := strconv.ParseFloat(lit.Value, 64); err == nil {
			return f
		}
	case scanner.Boolean:
		return lit.Value == "true"
	case scanner.Null:
		return nil
	}
	return lit.Value
}
