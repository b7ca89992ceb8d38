package ast

import (
	"fmt"
	"io"
	"strings"
)

// String gets a one line description of a node, without its children,
// e.g BinaryExpression[+] or Literal[Number][123].
func String(node Node) string {
	switch n := node.(type) {
	case *Program:
		return "Program"
	case *ExpressionStatement:
		return "ExpressionStatement"
	case *BlockStatement:
		return "BlockStatement"
	case *FunctionDeclaration:
		return "FunctionDeclaration"
	case *Identifier:
		return fmt.Sprintf("Identifier[%s]", n.Name)
	case *Literal:
		return fmt.Sprintf("Literal[%s][%s]", n.Kind, n.Raw)
	case *BinaryExpression:
		return fmt.Sprintf("BinaryExpression[%s]", n.Operator)
	case *CallExpression:
		return "CallExpression"
	case *SequenceExpression:
		return "SequenceExpression"
	case *ObjectExpression:
		return "ObjectExpression"
	case *ArrayExpression:
		return "ArrayExpression"
	}
	return fmt.Sprintf("%T", node)
}

func print(node Node, w io.Writer, indent string, printPositions bool) {
	var depth int
	Inspect(node, func(n Node) bool {
		if n == nil {
			depth--
			return true
		}

		prefix := strings.Repeat(indent, depth)
		var pos string
		if printPositions {
			pos = fmt.Sprintf("[%d...%d]", n.Begin(), n.End())
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, String(n), pos)
		depth++
		return true
	})
}

// Print the AST to the provided writer with the specified indent.
func Print(node Node, w io.Writer, indent string) {
	print(node, w, indent, false)
}

// PrintPositions prints the AST to the provided writer with
// the specified index and node positions.
func PrintPositions(node Node, w io.Writer, indent string) {
	print(node, w, indent, true)
}
