package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kiteco/joeyscript/kite-go/lang/javascript/ast"
	"github.com/kiteco/joeyscript/kite-go/lang/javascript/parser"
	"github.com/kiteco/joeyscript/kite-go/lang/javascript/scanner"
	"github.com/kiteco/joeyscript/kite-golib/status"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

const (
	formatTree = "tree"
	formatJSON = "json"
	formatYAML = "yaml"
)

type parseResult struct {
	prog *ast.Program
}

func validateFormat(format string) error {
	switch format {
	case formatTree, formatJSON, formatYAML:
		return nil
	}
	return errors.Errorf("unknown format %q, expected tree, json or yaml", format)
}

// render writes prog to w in the given format.
func render(w io.Writer, prog *ast.Program, format string, positions bool) error {
	switch format {
	case formatTree:
		if positions {
			ast.PrintPositions(prog, w, "  ")
		} else {
			ast.Print(prog, w, "  ")
		}
		return nil

	case formatJSON:
		buf, err := json.MarshalIndent(ast.ToMap(prog), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(buf))
		return err

	case formatYAML:
		buf, err := yaml.Marshal(ast.ToMap(prog))
		if err != nil {
			return err
		}
		_, err = w.Write(buf)
		return err
	}
	return validateFormat(format)
}

// writeStatusJSON writes the scanner and parser metrics to w as indented JSON.
func writeStatusJSON(w io.Writer) error {
	buf, err := json.MarshalIndent(status.Get(), "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding status")
	}
	_, err = fmt.Fprintln(w, string(buf))
	return err
}

// describe prefixes a tokenize or parse error with the file name and the line and
// column it refers to.
func describe(path string, src []byte, err error) error {
	switch e := errors.Cause(err).(type) {
	case scanner.Error:
		return errors.Errorf("%s:%d:%d: %s", path, e.Pos.Line, e.Pos.Column+1, e.Kind)

	case parser.Error:
		tokens, terr := scanner.Tokenize(src)
		if terr != nil {
			break
		}
		pos := tokenPosition(tokens, e.Index)
		return errors.Errorf("%s:%d:%d: %s", path, pos.Line, pos.Column+1, e.Kind)
	}
	return errors.Wrapf(err, "%s", path)
}

// tokenPosition is the start of the token at i, or the end of the last token when i
// is past the end.
func tokenPosition(tokens []scanner.Token, i int) scanner.Position {
	switch {
	case i < len(tokens):
		return tokens[i].Loc.Start
	case len(tokens) > 0:
		return tokens[len(tokens)-1].Loc.End
	}
	return scanner.Position{Line: 1}
}
