// Package parser builds an AST from the tokens produced by package scanner.
//
// The grammar is matched by recursive descent with ordered choice: at each position
// the expression statement rules are tried in the order binary, call, literal,
// identifier, sequence, and the first one that applies wins. Rules are probes that
// never move the cursor; the cursor is advanced once, past the chosen match.
//
// Known differences from ECMAScript:
// - Binary operators have no precedence and associate left in the order written,
//   so 1 - 2 * 3 is (1 - 2) * 3.
// - Automatic semicolon insertion only looks at line breaks and closing braces;
//   the rule for the ) ending a do-while condition is not implemented.
// - Blocks nested inside a top level block are flattened into it by Parse.
// - Function declarations are only parsed by ParseFunctionDeclaration, not by Parse.
// - Object and array literals, member access, update expressions and variable
//   declarations are not parsed.
package parser
