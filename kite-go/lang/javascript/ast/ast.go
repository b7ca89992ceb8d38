package ast

import (
	"go/token"

	"github.com/kiteco/joeyscript/kite-go/lang/javascript/scanner"
)

// Node is implemented by every node in the AST. Begin and End are a half open
// range of byte offsets covering exactly the tokens the node was built from.
type Node interface {
	Begin() token.Pos
	End() token.Pos
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Program is the root of a parsed source.
type Program struct {
	Body []Stmt
}

// Begin implements Node
func (p *Program) Begin() token.Pos {
	if len(p.Body) == 0 {
		return 0
	}
	return p.Body[0].Begin()
}

// End implements Node
func (p *Program) End() token.Pos {
	if len(p.Body) == 0 {
		return 0
	}
	return p.Body[len(p.Body)-1].End()
}

// -- Statements

// ExpressionStatement is an expression used as a statement. Its range includes the
// terminating semicolon when there is one.
type ExpressionStatement struct {
	Expression Expr
	From, To   token.Pos
}

// BlockStatement is a braced list of statements.
type BlockStatement struct {
	Body     []Stmt
	From, To token.Pos
}

// FunctionDeclaration is function Name(params...) { body }.
type FunctionDeclaration struct {
	ID       *Identifier
	Params   []*Identifier
	Body     *BlockStatement
	From, To token.Pos
}

func (*ExpressionStatement) stmtNode() {}
func (*BlockStatement) stmtNode()      {}
func (*FunctionDeclaration) stmtNode() {}

// Begin implements Node
func (s *ExpressionStatement) Begin() token.Pos { return s.From }

// End implements Node
func (s *ExpressionStatement) End() token.Pos { return s.To }

// Begin implements Node
func (s *BlockStatement) Begin() token.Pos { return s.From }

// End implements Node
func (s *BlockStatement) End() token.Pos { return s.To }

// Begin implements Node
func (s *FunctionDeclaration) Begin() token.Pos { return s.From }

// End implements Node
func (s *FunctionDeclaration) End() token.Pos { return s.To }

// -- Expressions

// Identifier is a name.
type Identifier struct {
	Name     string
	Loc      scanner.Location
	From, To token.Pos
}

// Literal is a number, string, boolean or null. Value is the semantic value of the
// token and Raw its source text.
type Literal struct {
	Kind     scanner.LiteralKind
	Value    string
	Raw      string
	Loc      scanner.Location
	From, To token.Pos
}

// BinaryExpression is Left Operator Right. Chains are left associative in the order
// they are written; there is no operator precedence.
type BinaryExpression struct {
	Operator string
	Left     Expr
	Right    Expr
}

// CallExpression is Callee(Arguments...).
type CallExpression struct {
	Callee    *Identifier
	Arguments []Expr
	From, To  token.Pos
}

// SequenceExpression is a comma separated list of expressions.
type SequenceExpression struct {
	Expressions []Expr
}

// ObjectExpression is an object literal. The parser does not produce it yet.
type ObjectExpression struct {
	Properties []Expr
	From, To   token.Pos
}

// ArrayExpression is an array literal. The parser does not produce it yet.
type ArrayExpression struct {
	Elements []Expr
	From, To token.Pos
}

func (*Identifier) exprNode()         {}
func (*Literal) exprNode()            {}
func (*BinaryExpression) exprNode()   {}
func (*CallExpression) exprNode()     {}
func (*SequenceExpression) exprNode() {}
func (*ObjectExpression) exprNode()   {}
func (*ArrayExpression) exprNode()    {}

// Begin implements Node
func (e *Identifier) Begin() token.Pos { return e.From }

// End implements Node
func (e *Identifier) End() token.Pos { return e.To }

// Begin implements Node
func (e *Literal) Begin() token.Pos { return e.From }

// End implements Node
func (e *Literal) End() token.Pos { return e.To }

// Begin implements Node
func (e *BinaryExpression) Begin() token.Pos { return e.Left.Begin() }

// End implements Node
func (e *BinaryExpression) End() token.Pos { return e.Right.End() }

// Begin implements Node
func (e *CallExpression) Begin() token.Pos { return e.From }

// End implements Node
func (e *CallExpression) End() token.Pos { return e.To }

// Begin implements Node
func (e *SequenceExpression) Begin() token.Pos {
	if len(e.Expressions) == 0 {
		return 0
	}
	return e.Expressions[0].Begin()
}

// End implements Node
func (e *SequenceExpression) End() token.Pos {
	if len(e.Expressions) == 0 {
		return 0
	}
	return e.Expressions[len(e.Expressions)-1].End()
}

// Begin implements Node
func (e *ObjectExpression) Begin() token.Pos { return e.From }

// End implements Node
func (e *ObjectExpression) End() token.Pos { return e.To }

// Begin implements Node
func (e *ArrayExpression) Begin() token.Pos { return e.From }

// End implements Node
func (e *ArrayExpression) End() token.Pos { return e.To }

// NewIdentifier builds an identifier from an identifier token.
func NewIdentifier(tok scanner.Token) *Identifier {
	return &Identifier{
		Name: tok.Value,
		Loc:  tok.Loc,
		From: tok.Begin,
		To:   tok.End,
	}
}

// NewLiteral builds a literal from a literal token.
func NewLiteral(tok scanner.Token) *Literal {
	return &Literal{
		Kind:  tok.Literal,
		Value: tok.Value,
		Raw:   tok.Raw,
		Loc:   tok.Loc,
		From:  tok.Begin,
		To:    tok.End,
	}
}

// IsStatement returns true if the node is a statement.
func IsStatement(node Node) bool {
	_, ok := node.(Stmt)
	return ok
}

// NameFor returns the name of a function declaration or call, or nil.
func NameFor(node Node) *Identifier {
	switch n := node.(type) {
	case *FunctionDeclaration:
		return n.ID
	case *CallExpression:
		return n.Callee
	}
	return nil
}
