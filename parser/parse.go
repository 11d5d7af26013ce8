package parser

import (
	"github.com/pontaoski/cadet/ast"
	"github.com/pontaoski/cadet/lexer"
)

func parseAll(src []byte, entry func(*Parser) (ast.Node, error)) (ast.Node, error) {
	p := New(lexer.New(src).TokenizeAll())
	n, err := entry(p)
	if err != nil {
		return ast.Node{}, err
	}
	if err := p.Done(); err != nil {
		return ast.Node{}, err
	}
	return n, nil
}

// ParseExpression tokenizes src and parses it as a single expression that
// must span the whole input.
func ParseExpression(src []byte) (ast.Node, error) {
	return parseAll(src, (*Parser).Expression)
}

func ParseTypeAnnotation(src []byte) (ast.Node, error) {
	return parseAll(src, (*Parser).TypeAnnotation)
}

func ParseArgument(src []byte) (ast.Node, error) {
	return parseAll(src, (*Parser).Argument)
}
