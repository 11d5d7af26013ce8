package parser

import (
	"fmt"
	"runtime"
	"unicode/utf8"

	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/cadet/ast"
	"github.com/pontaoski/cadet/errors"
	"github.com/pontaoski/cadet/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/cadet", "parser")

// Parser walks a fully materialized token vector. The cursor only moves
// forward, except for a single-token pushback through back.
type Parser struct {
	cursor int
	tokens []types.Token
}

// New copies tokens, so parsers built from the same slice are independent.
func New(tokens []types.Token) *Parser {
	return &Parser{tokens: append([]types.Token(nil), tokens...)}
}

// catch turns a panicked error into a returned one. Anything else, including
// runtime errors, keeps unwinding.
func catch(err *error) {
	if r := recover(); r != nil {
		if _, ok := r.(runtime.Error); ok {
			panic(r)
		}
		rerr, ok := r.(error)
		if !ok {
			panic(r)
		}
		*err = tracerr.Wrap(rerr)
	}
}

// Expression parses one expression starting at the cursor.
func (p *Parser) Expression() (n ast.Node, err error) {
	defer catch(&err)
	plog.Tracef("expression at token %d", p.cursor)
	return p.logical(), nil
}

// TypeAnnotation parses [@] [auth &|&] Name.
func (p *Parser) TypeAnnotation() (n ast.Node, err error) {
	defer catch(&err)
	plog.Tracef("type annotation at token %d", p.cursor)
	return p.typeAnnotation(), nil
}

// Argument parses a call argument, optionally labeled.
func (p *Parser) Argument() (n ast.Node, err error) {
	defer catch(&err)
	plog.Tracef("argument at token %d", p.cursor)
	return ast.New(p.argument()), nil
}

// Done returns an error unless every token has been consumed.
func (p *Parser) Done() error {
	if tok, ok := p.peek(); ok {
		return tracerr.Wrap(errors.ParseError{Expected: "end of input", Got: tok})
	}
	return nil
}

func (p *Parser) done() bool {
	return p.cursor >= len(p.tokens)
}

// read returns the token at the cursor and advances past it.
func (p *Parser) read() types.Token {
	if p.done() {
		panic(errors.EOF)
	}
	tok := p.tokens[p.cursor]
	p.cursor++
	return tok
}

// back retreats the cursor by one token.
func (p *Parser) back() {
	if p.cursor == 0 {
		panic(errors.ParseError{Expected: "a token to back up over", Got: types.Token{Kind: types.EOF}})
	}
	p.cursor--
}

func (p *Parser) peek() (types.Token, bool) {
	return p.peekn(0)
}

func (p *Parser) peekn(n int) (types.Token, bool) {
	if p.cursor+n >= len(p.tokens) {
		return types.Token{}, false
	}
	return p.tokens[p.cursor+n], true
}

// accept consumes the next token if it has kind k.
func (p *Parser) accept(k types.TokenKind) bool {
	if p.done() {
		return false
	}
	if p.read().Kind == k {
		return true
	}
	p.back()
	return false
}

func (p *Parser) expect(k types.TokenKind, what string) types.Token {
	tok := p.read()
	if tok.Kind != k {
		panic(errors.ParseError{Expected: what, Got: tok})
	}
	return tok
}

// leftAssoc parses next (op next)* for the operators in ops.
func (p *Parser) leftAssoc(next func() ast.Node, ops map[types.TokenKind]ast.BinaryOperator) ast.Node {
	lhs := next()
	for !p.done() {
		op, ok := ops[p.read().Kind]
		if !ok {
			p.back()
			break
		}
		lhs = ast.Binary(op, lhs, next())
	}
	return lhs
}

var (
	logicalOps = map[types.TokenKind]ast.BinaryOperator{
		types.ANDAND: ast.AndAnd,
		types.OROR:   ast.OrOr,
	}
	equalityOps = map[types.TokenKind]ast.BinaryOperator{
		types.EQEQ: ast.Eq,
		types.NEQ:  ast.Neq,
	}
	relationalOps = map[types.TokenKind]ast.BinaryOperator{
		types.LT:  ast.Lt,
		types.LTE: ast.Lte,
		types.GT:  ast.Gt,
		types.GTE: ast.Gte,
	}
	bitwiseOrOps = map[types.TokenKind]ast.BinaryOperator{
		types.PIPE: ast.Or,
	}
	bitwiseXorOps = map[types.TokenKind]ast.BinaryOperator{
		types.CARET: ast.Xor,
	}
	bitwiseAndOps = map[types.TokenKind]ast.BinaryOperator{
		types.AMPERSAND: ast.And,
	}
	shiftOps = map[types.TokenKind]ast.BinaryOperator{
		types.SHL: ast.Shil,
		types.SHR: ast.Shir,
	}
	additiveOps = map[types.TokenKind]ast.BinaryOperator{
		types.PLUS:  ast.Add,
		types.MINUS: ast.Sub,
	}
	multiplicativeOps = map[types.TokenKind]ast.BinaryOperator{
		types.ASTERISK: ast.Mul,
		types.SLASH:    ast.Div,
		types.PERCENT:  ast.Mod,
	}
	castingOps = map[types.Keyword]ast.BinaryOperator{
		types.KeywordAs:         ast.As,
		types.KeywordAsForce:    ast.AsExclamation,
		types.KeywordAsOptional: ast.AsQuestion,
	}
	unaryOps = map[types.TokenKind]ast.UnaryOperator{
		types.MINUS:       ast.Minus,
		types.EXCLAMATION: ast.Negate,
		types.MOVE:        ast.Move,
	}
)

func (p *Parser) logical() ast.Node {
	return p.leftAssoc(p.equality, logicalOps)
}

func (p *Parser) equality() ast.Node {
	return p.leftAssoc(p.relational, equalityOps)
}

func (p *Parser) relational() ast.Node {
	return p.leftAssoc(p.nilCoalescing, relationalOps)
}

// nilCoalescing is right associative: 1 ?? 2 ?? 3 is NilCo{1, NilCo{2, 3}}.
func (p *Parser) nilCoalescing() ast.Node {
	operands := []ast.Node{p.bitwiseOr()}
	for p.accept(types.NILCO) {
		operands = append(operands, p.bitwiseOr())
	}

	rhs := operands[len(operands)-1]
	for i := len(operands) - 2; i >= 0; i-- {
		rhs = ast.Binary(ast.NilCo, operands[i], rhs)
	}
	return rhs
}

func (p *Parser) bitwiseOr() ast.Node {
	return p.leftAssoc(p.bitwiseXor, bitwiseOrOps)
}

func (p *Parser) bitwiseXor() ast.Node {
	return p.leftAssoc(p.bitwiseAnd, bitwiseXorOps)
}

func (p *Parser) bitwiseAnd() ast.Node {
	return p.leftAssoc(p.shift, bitwiseAndOps)
}

func (p *Parser) shift() ast.Node {
	return p.leftAssoc(p.additive, shiftOps)
}

func (p *Parser) additive() ast.Node {
	return p.leftAssoc(p.multiplicative, additiveOps)
}

func (p *Parser) multiplicative() ast.Node {
	return p.leftAssoc(p.casting, multiplicativeOps)
}

// casting parses unary (as T)*; the right side is always a type annotation.
func (p *Parser) casting() ast.Node {
	lhs := p.unary()
	for !p.done() {
		tok := p.read()
		op, ok := castingOps[tok.Keyword]
		if tok.Kind != types.KEYWORD || !ok {
			p.back()
			break
		}
		lhs = ast.Binary(op, lhs, p.typeAnnotation())
	}
	return lhs
}

func (p *Parser) unary() ast.Node {
	var ops []ast.UnaryOperator
	for !p.done() {
		op, ok := unaryOps[p.read().Kind]
		if !ok {
			p.back()
			break
		}
		ops = append(ops, op)
	}

	operand := p.primary()
	if len(ops) == 0 {
		return operand
	}
	return ast.Unary(operand, ops...)
}

func (p *Parser) primary() ast.Node {
	tok := p.read()
	switch {
	case tok.IsKeyword(types.KeywordCreate):
		return ast.New(ast.Create{Operand: p.unary()})
	case tok.IsKeyword(types.KeywordDestroy):
		return ast.New(ast.Destroy{Operand: p.unary()})
	case tok.Kind == types.AMPERSAND:
		return ast.New(ast.ReferenceExpression{Operand: p.unary()})
	}
	p.back()

	return p.postfix(p.factor())
}

// postfix applies invocations and member accesses left to right.
func (p *Parser) postfix(n ast.Node) ast.Node {
	for !p.done() {
		switch tok := p.read(); tok.Kind {
		case types.LPAREN:
			n = ast.New(ast.Invocation{Callee: n, Arguments: p.arguments()})
		case types.PERIOD, types.QUESTIONDOT:
			name := p.expect(types.IDENT, "a member name")
			n = ast.New(ast.MemberAccess{Of: n, Name: name.Text, Optional: tok.Kind == types.QUESTIONDOT})
		default:
			p.back()
			return n
		}
	}
	return n
}

// arguments is called after the opening paren of an invocation.
func (p *Parser) arguments() []ast.Argument {
	if p.accept(types.RPAREN) {
		return nil
	}

	var args []ast.Argument
	for {
		args = append(args, p.argument())

		tok := p.read()
		switch tok.Kind {
		case types.COMMA:
			continue
		case types.RPAREN:
			return args
		}
		panic(errors.ParseError{Expected: "',' or ')'", Got: tok})
	}
}

func (p *Parser) factor() ast.Node {
	tok := p.read()
	switch tok.Kind {
	case types.LPAREN:
		expr := p.logical()
		p.expect(types.RPAREN, "')'")
		return expr
	case types.STRING:
		if !utf8.ValidString(tok.Text) {
			panic(fmt.Sprintf("string literal at offset %d is not valid UTF-8", tok.Offset))
		}
		return ast.Str(tok.Text)
	case types.NUMBER:
		return ast.Num(tok.Text)
	case types.IDENT:
		return ast.Ident(tok.Text)
	case types.KEYWORD:
		switch tok.Keyword {
		case types.KeywordTrue:
			return ast.New(ast.TerminalBool(true))
		case types.KeywordFalse:
			return ast.New(ast.TerminalBool(false))
		case types.KeywordNil:
			return ast.New(ast.TerminalNil{})
		case types.KeywordSelf:
			return ast.Ident(tok.Text)
		}
	}

	panic(errors.ParseError{Expected: "an expression", Got: tok})
}

func (p *Parser) typeAnnotation() ast.Node {
	resource := p.accept(types.AT)

	auth := false
	if tok := p.read(); tok.Kind == types.IDENT && tok.Text == "auth" {
		p.expect(types.AMPERSAND, "'&' after auth")
		auth = true
	} else {
		p.back()
	}
	ref := auth || p.accept(types.AMPERSAND)

	name := p.expect(types.IDENT, "a type name").Text

	var full ast.FullType
	switch {
	case auth:
		full = ast.AuthReference(name)
	case ref:
		full = ast.Reference(name)
	default:
		full = ast.Inner(name)
	}

	if resource {
		return ast.New(ast.ResourceTypeAnnotation{Type: full})
	}
	return ast.New(ast.TypeAnnotation{Type: full})
}

func (p *Parser) argument() ast.Argument {
	tok := p.read()
	if tok.Kind == types.IDENT {
		if next, ok := p.peek(); ok && next.Kind == types.COLON {
			p.read()
			label := tok.Text
			return ast.Argument{Label: &label, Expression: p.logical()}
		}
	}
	p.back()

	return ast.Argument{Expression: p.logical()}
}
