package main

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/alecthomas/repr"
	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/cadet/ast"
	"github.com/pontaoski/cadet/config"
	"github.com/pontaoski/cadet/lexer"
	"github.com/pontaoski/cadet/parser"
	"github.com/pontaoski/cadet/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/cadet", "main")

var entries = map[string]func([]byte) (ast.Node, error){
	config.ModeExpression: parser.ParseExpression,
	config.ModeType:       parser.ParseTypeAnnotation,
	config.ModeArgument:   parser.ParseArgument,
}

// readSource reads a file, or stdin for "-" and "".
func readSource(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := ioutil.ReadAll(os.Stdin)
		return data, tracerr.Wrap(err)
	}
	data, err := ioutil.ReadFile(path)
	return data, tracerr.Wrap(err)
}

func parseSource(mode string, src []byte) (ast.Node, error) {
	entry, ok := entries[mode]
	if !ok {
		return ast.Node{}, tracerr.Errorf("unknown mode %q", mode)
	}
	plog.Debugf("parsing %d bytes as %s", len(src), mode)
	return entry(src)
}

func render(n ast.Node, format string) string {
	if format == config.FormatRepr {
		return repr.String(n, repr.Indent("  "))
	}
	return n.String()
}

// message strips the stack trace tracerr attaches.
func message(err error) string {
	return tracerr.Unwrap(err).Error()
}

func writeTokens(w io.Writer, src []byte) {
	l := lexer.New(src)
	for {
		tok := l.Tokenize()
		fmt.Fprintf(w, "%-20s %d:%d\t%q\n", tok, tok.Offset, tok.Length, tok.Lexeme(src))
		if tok.Kind == types.EOF {
			return
		}
	}
}

type lineResult struct {
	Line int
	Node ast.Node
	Err  error
}

// checkLines parses every line holding at least one token on its own, so a
// failure on one line never affects the next.
func checkLines(mode string, src []byte) []lineResult {
	var results []lineResult
	for i, line := range bytes.Split(src, []byte("\n")) {
		if len(lexer.New(line).TokenizeAll()) == 0 {
			continue
		}
		n, err := parseSource(mode, line)
		results = append(results, lineResult{Line: i + 1, Node: n, Err: err})
	}
	return results
}

func writeResults(w io.Writer, results []lineResult, format string) (failed int) {
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(w, "%d: error: %s\n", r.Line, message(r.Err))
			continue
		}
		fmt.Fprintf(w, "%d: %s\n", r.Line, render(r.Node, format))
	}
	return
}
