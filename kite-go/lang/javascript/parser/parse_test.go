package parser

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/kiteco/joeyscript/kite-go/lang/javascript/ast"
	"github.com/kiteco/joeyscript/kite-go/lang/javascript/scanner"
	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, src string) []scanner.Token {
	tokens, err := scanner.Tokenize([]byte(src))
	require.NoError(t, err, "tokenizing %q", src)
	return tokens
}

func requireParse(t *testing.T, src string) *ast.Program {
	prog, err := Parse(tokenize(t, src), DefaultOptions)
	require.NoError(t, err, "parsing %q", src)
	return prog
}

func printed(node ast.Node) string {
	var buf bytes.Buffer
	ast.Print(node, &buf, "  ")
	return strings.TrimSpace(buf.String())
}

// assertAST compares the printed form of node with expected, which is indented with
// two spaces per level.
func assertAST(t *testing.T, src, expected string, node ast.Node) {
	expected = strings.TrimSpace(expected)
	actual := printed(node)
	if expected == actual {
		return
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	t.Errorf("AST mismatch for %q (-expected +actual):\n%s", src, dmp.DiffPrettyText(diffs))
	t.Logf("actual tree:\n%s", pretty.Sprint(node))
}

func assertParse(t *testing.T, src, expected string) *ast.Program {
	prog := requireParse(t, src)
	assertAST(t, src, expected, prog)
	return prog
}

func assertParseError(t *testing.T, src string, expected Error) {
	prog, err := Parse(tokenize(t, src), DefaultOptions)
	require.Error(t, err, "parsing %q", src)
	assert.Nil(t, prog)
	assert.Equal(t, expected, errors.Cause(err), "parsing %q", src)
}

func TestParse_Empty(t *testing.T) {
	prog := requireParse(t, "")
	assert.Empty(t, prog.Body)

	prog = requireParse(t, "// nothing here\n")
	assert.Empty(t, prog.Body)
}

func TestParse_IdentifiersOnSeparateLines(t *testing.T) {
	prog := assertParse(t, "x\ny", `
Program
  ExpressionStatement
    Identifier[x]
  ExpressionStatement
    Identifier[y]
`)

	require.Len(t, prog.Body, 2)
	x := prog.Body[0].(*ast.ExpressionStatement).Expression
	y := prog.Body[1].(*ast.ExpressionStatement).Expression
	assert.EqualValues(t, 0, x.Begin())
	assert.EqualValues(t, 1, x.End())
	assert.EqualValues(t, 2, y.Begin())
	assert.EqualValues(t, 3, y.End())
}

func TestParse_LiteralStatements(t *testing.T) {
	src := "'Foobar';'Bar';'Foo';"
	tokens := tokenize(t, src)

	p := newParser(tokens, DefaultOptions)
	prog, err := p.parseProgram()
	require.NoError(t, err)
	assert.Equal(t, len(tokens), p.c.Index())

	assertAST(t, src, `
Program
  ExpressionStatement
    Literal[String]['Foobar']
  ExpressionStatement
    Literal[String]['Bar']
  ExpressionStatement
    Literal[String]['Foo']
`, prog)

	// statements include their semicolon, expressions do not
	first := prog.Body[0].(*ast.ExpressionStatement)
	assert.EqualValues(t, 0, first.Begin())
	assert.EqualValues(t, 9, first.End())
	assert.EqualValues(t, 8, first.Expression.End())
	assert.Equal(t, "Foobar", first.Expression.(*ast.Literal).Value)
}

func TestParse_CallNoArguments(t *testing.T) {
	prog := assertParse(t, "call()", `
Program
  ExpressionStatement
    CallExpression
      Identifier[call]
`)
	call := prog.Body[0].(*ast.ExpressionStatement).Expression.(*ast.CallExpression)
	assert.Len(t, call.Arguments, 0)
	assert.EqualValues(t, 6, call.End())
}

func TestParse_CallArguments(t *testing.T) {
	prog := assertParse(t, "call('123', 123, call())", `
Program
  ExpressionStatement
    CallExpression
      Identifier[call]
      Literal[String]['123']
      Literal[Number][123]
      CallExpression
        Identifier[call]
`)
	call := prog.Body[0].(*ast.ExpressionStatement).Expression.(*ast.CallExpression)
	require.Len(t, call.Arguments, 3)
	_, nested := call.Arguments[2].(*ast.CallExpression)
	assert.True(t, nested)
}

func TestParse_CallWithBinaryArgument(t *testing.T) {
	assertParse(t, "log(a + 1, b);", `
Program
  ExpressionStatement
    CallExpression
      Identifier[log]
      BinaryExpression[+]
        Identifier[a]
        Literal[Number][1]
      Identifier[b]
`)
}

func TestParse_IncompleteCall(t *testing.T) {
	tokens := tokenize(t, "foobar(")
	p := newParser(tokens, DefaultOptions)

	m, err := p.findCallExpression(0)
	assert.NoError(t, err)
	assert.Nil(t, m)
	assert.False(t, p.isCallExpression(0))
	assert.True(t, p.isIdentifierExpression(0))

	assertParseError(t, "foobar(", Error{Kind: UnexpectedToken, Index: 1})
}

func TestParse_BinaryLeftAssociative(t *testing.T) {
	assertParse(t, "112233 - 321 + 123", `
Program
  ExpressionStatement
    BinaryExpression[+]
      BinaryExpression[-]
        Literal[Number][112233]
        Literal[Number][321]
      Literal[Number][123]
`)
}

func TestParse_BinaryNoPrecedence(t *testing.T) {
	assertParse(t, "1 - 2 * 3", `
Program
  ExpressionStatement
    BinaryExpression[*]
      BinaryExpression[-]
        Literal[Number][1]
        Literal[Number][2]
      Literal[Number][3]
`)
}

func TestParse_BinaryOperands(t *testing.T) {
	prog := assertParse(t, "foo(1) === bar;", `
Program
  ExpressionStatement
    BinaryExpression[===]
      CallExpression
        Identifier[foo]
        Literal[Number][1]
      Identifier[bar]
`)
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	assert.EqualValues(t, 0, stmt.Expression.Begin())
	assert.EqualValues(t, 14, stmt.Expression.End())
	assert.EqualValues(t, 15, stmt.End())
}

func TestParse_Sequence(t *testing.T) {
	assertParse(t, "a, 1, b + c;", `
Program
  ExpressionStatement
    SequenceExpression
      Identifier[a]
      Literal[Number][1]
      BinaryExpression[+]
        Identifier[b]
        Identifier[c]
`)

	assertParse(t, "1 + 2, f()\nx", `
Program
  ExpressionStatement
    SequenceExpression
      BinaryExpression[+]
        Literal[Number][1]
        Literal[Number][2]
      CallExpression
        Identifier[f]
  ExpressionStatement
    Identifier[x]
`)
}

func TestParse_AutomaticSemicolons(t *testing.T) {
	assertParse(t, "a + b\nfoo()\n'x'", `
Program
  ExpressionStatement
    BinaryExpression[+]
      Identifier[a]
      Identifier[b]
  ExpressionStatement
    CallExpression
      Identifier[foo]
  ExpressionStatement
    Literal[String]['x']
`)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		src      string
		expected Error
	}{
		{"a b", Error{Kind: UnexpectedToken, Index: 1}},
		{"1 2", Error{Kind: UnexpectedToken, Index: 1}},
		{"}", Error{Kind: UnexpectedToken, Index: 0}},
		{";", Error{Kind: UnexpectedToken, Index: 0}},
		{"1 +", Error{Kind: UnexpectedEndOfInput, Index: 2}},
		{"1 + ;", Error{Kind: UnexpectedToken, Index: 2}},
		{"foo(1 2)", Error{Kind: UnexpectedToken, Index: 3}},
		{"foo(1,", Error{Kind: UnexpectedEndOfInput, Index: 4}},
		{"foo(1", Error{Kind: UnexpectedEndOfInput, Index: 3}},
		{"foo(,)", Error{Kind: UnexpectedToken, Index: 2}},
		{"a,", Error{Kind: UnexpectedEndOfInput, Index: 2}},
		{"a, b c", Error{Kind: UnexpectedToken, Index: 3}},
		{"function foo() {}", Error{Kind: UnexpectedToken, Index: 0}},
	}

	for _, c := range cases {
		assertParseError(t, c.src, c.expected)
	}
}

func TestParse_Blocks(t *testing.T) {
	prog := assertParse(t, "{ 123 }", `
Program
  BlockStatement
    ExpressionStatement
      Literal[Number][123]
`)
	block := prog.Body[0].(*ast.BlockStatement)
	assert.EqualValues(t, 0, block.Begin())
	assert.EqualValues(t, 7, block.End())
}

func TestParse_NestedBlocksFlattened(t *testing.T) {
	src := "{ a; { b; { c } } d }"
	prog := assertParse(t, src, `
Program
  BlockStatement
    ExpressionStatement
      Identifier[a]
    ExpressionStatement
      Identifier[b]
    ExpressionStatement
      Identifier[c]
    ExpressionStatement
      Identifier[d]
`)
	block := prog.Body[0].(*ast.BlockStatement)
	assert.EqualValues(t, len(src), block.End())
}

func TestParse_UnterminatedBlock(t *testing.T) {
	assertParseError(t, "{ { 123 }", Error{Kind: UnexpectedEndOfInput, Index: 4})
	assertParseError(t, "{", Error{Kind: UnexpectedEndOfInput, Index: 1})
}

func TestParse_MaxDepth(t *testing.T) {
	tokens := tokenize(t, "{{{1}}}")

	_, err := Parse(tokens, Options{MaxDepth: 2})
	require.Error(t, err)
	assert.Equal(t, Error{Kind: UnexpectedToken, Index: 2}, err)

	_, err = Parse(tokens, Options{MaxDepth: 3})
	assert.NoError(t, err)
}

func TestParseBlock_KeepsNestedBlocks(t *testing.T) {
	src := "{ a; { b } }"
	block, err := ParseBlock(tokenize(t, src), DefaultOptions)
	require.NoError(t, err)
	assertAST(t, src, `
BlockStatement
  ExpressionStatement
    Identifier[a]
  BlockStatement
    ExpressionStatement
      Identifier[b]
`, block)
}

func TestParseBlock_Errors(t *testing.T) {
	_, err := ParseBlock(tokenize(t, "a"), DefaultOptions)
	assert.Equal(t, Error{Kind: UnexpectedToken, Index: 0}, err)

	_, err = ParseBlock(tokenize(t, "{ a } b"), DefaultOptions)
	assert.Equal(t, Error{Kind: UnexpectedToken, Index: 3}, err)

	_, err = ParseBlock(nil, DefaultOptions)
	assert.Equal(t, Error{Kind: UnexpectedEndOfInput, Index: 0}, err)
}

func TestParseFunctionDeclaration(t *testing.T) {
	src := "function foo(a, b) { a + b; { c } }"
	fn, err := ParseFunctionDeclaration(tokenize(t, src), DefaultOptions)
	require.NoError(t, err)

	assertAST(t, src, `
FunctionDeclaration
  Identifier[foo]
  Identifier[a]
  Identifier[b]
  BlockStatement
    ExpressionStatement
      BinaryExpression[+]
        Identifier[a]
        Identifier[b]
    BlockStatement
      ExpressionStatement
        Identifier[c]
`, fn)
	assert.EqualValues(t, 0, fn.Begin())
	assert.EqualValues(t, len(src), fn.End())
	assert.Equal(t, "foo", ast.NameFor(fn).Name)
}

func TestParseFunctionDeclaration_NoParams(t *testing.T) {
	fn, err := ParseFunctionDeclaration(tokenize(t, "function run() {}"), DefaultOptions)
	require.NoError(t, err)
	assert.Empty(t, fn.Params)
	assert.Empty(t, fn.Body.Body)
}

func TestParseFunctionDeclaration_Errors(t *testing.T) {
	cases := []struct {
		src      string
		expected Error
	}{
		{"function foo(1) {}", Error{Kind: UnexpectedToken, Index: 3}},
		{"function foo(a b) {}", Error{Kind: UnexpectedToken, Index: 4}},
		{"function foo(a,) {}", Error{Kind: UnexpectedToken, Index: 5}},
		{"function (a) {}", Error{Kind: UnexpectedToken, Index: 1}},
		{"function foo()", Error{Kind: UnexpectedEndOfInput, Index: 4}},
		{"function foo() { a", Error{Kind: UnexpectedEndOfInput, Index: 6}},
		{"foo() {}", Error{Kind: UnexpectedToken, Index: 0}},
	}

	for _, c := range cases {
		fn, err := ParseFunctionDeclaration(tokenize(t, c.src), DefaultOptions)
		assert.Nil(t, fn, c.src)
		assert.Equal(t, c.expected, err, c.src)
	}
}

func TestParse_Deterministic(t *testing.T) {
	tokens := tokenize(t, "foo(1, 'a') + b\n{ c, d }")
	first, err := Parse(tokens, DefaultOptions)
	require.NoError(t, err)
	second, err := Parse(tokens, DefaultOptions)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParse_DeeplyNestedCalls(t *testing.T) {
	const depth = 40
	src := strings.Repeat("f(", depth) + strings.Repeat(")", depth)
	tokens := tokenize(t, src)

	type result struct {
		prog *ast.Program
		err  error
	}
	done := make(chan result, 1)
	go func() {
		prog, err := Parse(tokens, DefaultOptions)
		done <- result{prog, err}
	}()

	var res result
	select {
	case res = <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("parsing %d nested calls did not finish", depth)
	}
	require.NoError(t, res.err)

	var calls int
	ast.Inspect(res.prog, func(n ast.Node) bool {
		if _, ok := n.(*ast.CallExpression); ok {
			calls++
		}
		return true
	})
	assert.Equal(t, depth, calls)
}

func TestParse_NestedCallsWithOperators(t *testing.T) {
	assertParse(t, "f(a + g(b, h(c) - 1))", `
Program
  ExpressionStatement
    CallExpression
      Identifier[f]
      BinaryExpression[+]
        Identifier[a]
        CallExpression
          Identifier[g]
          Identifier[b]
          BinaryExpression[-]
            CallExpression
              Identifier[h]
              Identifier[c]
            Literal[Number][1]
`)
}

func TestParse_Ranges(t *testing.T) {
	src := "foo(1, bar + 'x');\n{ a\n b }\nc, d"
	prog := requireParse(t, src)
	require.Len(t, prog.Body, 3)
	assert.Equal(t, "foo(1, bar + 'x');", src[prog.Body[0].Begin():prog.Body[0].End()])
	assert.Equal(t, "c, d", src[prog.Body[2].Begin():prog.Body[2].End()])

	// every node is non empty and lies within its parent
	var parents []ast.Node
	ast.Inspect(prog, func(n ast.Node) bool {
		if n == nil {
			parents = parents[:len(parents)-1]
			return true
		}
		if _, isProgram := n.(*ast.Program); !isProgram {
			assert.True(t, n.Begin() < n.End(), "%s is empty", ast.String(n))
			parent := parents[len(parents)-1]
			if _, isProgram := parent.(*ast.Program); !isProgram {
				assert.True(t, parent.Begin() <= n.Begin() && n.End() <= parent.End(),
					"%s is outside %s", ast.String(n), ast.String(parent))
			}
		}
		parents = append(parents, n)
		return true
	})
}

func TestProbes_DoNotMoveCursor(t *testing.T) {
	tokens := tokenize(t, "123; a + b")
	p := newParser(tokens, DefaultOptions)

	assert.True(t, p.isLiteralExpression(0))
	assert.False(t, p.isIdentifierExpression(0))
	assert.False(t, p.isBinaryExpression(0))
	assert.False(t, p.isSequenceExpression(0))
	assert.True(t, p.isBinaryExpression(2))
	assert.Equal(t, 0, p.c.Index())

	m, err := p.findExpressionStatement(0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.begin)
	assert.Equal(t, 2, m.end)

	p.consumeResult(m)
	assert.Equal(t, 2, p.c.Index())
}

func TestParse_Trace(t *testing.T) {
	var buf bytes.Buffer
	_, err := Parse(tokenize(t, "a + b"), Options{Trace: true, TraceWriter: &buf})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Program (")
	assert.Contains(t, out, "BinaryExpression (")
	assert.Contains(t, out, "ExpressionStatement [0, 3)")
}

func TestKindOf(t *testing.T) {
	_, err := Parse(tokenize(t, "{"), DefaultOptions)
	require.Error(t, err)

	kind, ok := KindOf(errors.Wrap(err, "parsing"))
	require.True(t, ok)
	assert.Equal(t, UnexpectedEndOfInput, kind)

	_, ok = KindOf(errors.New("other"))
	assert.False(t, ok)
}
