package lexer

import (
	"bytes"

	"github.com/coreos/pkg/capnslog"

	"github.com/pontaoski/cadet/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/cadet", "lexer")

// Lexer turns a source buffer into tokens, one per call to Tokenize.
type Lexer struct {
	input []byte
	pos   int
}

func New(input []byte) *Lexer {
	return &Lexer{input: input}
}

func NewString(input string) *Lexer {
	return New([]byte(input))
}

func (l *Lexer) peekN(n int) (byte, bool) {
	if l.pos+n >= len(l.input) {
		return 0, false
	}
	return l.input[l.pos+n], true
}

func (l *Lexer) peek() (byte, bool) {
	return l.peekN(0)
}

func (l *Lexer) read() (byte, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	c := l.input[l.pos]
	l.pos++
	return c, true
}

// accept consumes the next byte if it is c.
func (l *Lexer) accept(c byte) bool {
	if b, ok := l.peek(); ok && b == c {
		l.pos++
		return true
	}
	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isLetter(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isBit(c byte) bool {
	return c == '0' || c == '1'
}

func isNibble(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func (l *Lexer) skipSpaces() {
	for {
		c, ok := l.peek()
		if !ok || !isSpace(c) {
			return
		}
		l.pos++
	}
}

// skipTrivia skips whitespace and comments until a significant byte or the
// end of input.
func (l *Lexer) skipTrivia() {
	for {
		l.skipSpaces()
		rest := l.input[l.pos:]
		switch {
		case bytes.HasPrefix(rest, []byte("//")):
			if idx := bytes.IndexByte(rest, '\n'); idx >= 0 {
				l.pos += idx + 1
			} else {
				l.pos = len(l.input)
			}
		case bytes.HasPrefix(rest, []byte("/*")):
			if idx := bytes.Index(rest[2:], []byte("*/")); idx >= 0 {
				l.pos += 2 + idx + 2
			} else {
				l.pos = len(l.input)
			}
		default:
			return
		}
	}
}

var singles = map[byte]types.TokenKind{
	'(':  types.LPAREN,
	')':  types.RPAREN,
	'[':  types.LSQUARE,
	']':  types.RSQUARE,
	'{':  types.LBRACE,
	'}':  types.RBRACE,
	',':  types.COMMA,
	';':  types.SEMICOLON,
	':':  types.COLON,
	'@':  types.AT,
	'+':  types.PLUS,
	'-':  types.MINUS,
	'*':  types.ASTERISK,
	'/':  types.SLASH,
	'\\': types.BACKSLASH,
	'%':  types.PERCENT,
	'^':  types.CARET,
	'\'': types.SQUOTE,
}

// Tokenize returns the next token. Once the input is exhausted every call
// returns a zero-length EOF token.
func (l *Lexer) Tokenize() types.Token {
	l.skipTrivia()

	start := l.pos
	c, ok := l.read()
	if !ok {
		return types.Token{Kind: types.EOF, Offset: start}
	}

	tok := l.lex(c)
	tok.Offset = start
	tok.Length = l.pos - start
	if tok.Kind == types.ILLEGAL {
		plog.Tracef("unrecognized byte %q at offset %d", c, start)
	}
	return tok
}

// TokenizeAll runs the lexer to completion. The EOF token is not included.
func (l *Lexer) TokenizeAll() []types.Token {
	var ret []types.Token
	for {
		tok := l.Tokenize()
		if tok.Kind == types.EOF {
			break
		}
		ret = append(ret, tok)
	}
	plog.Debugf("scanned %d tokens from %d bytes", len(ret), len(l.input))
	return ret
}

func kinded(k types.TokenKind) types.Token {
	return types.Token{Kind: k}
}

func (l *Lexer) lex(c byte) types.Token {
	if kind, ok := singles[c]; ok {
		return kinded(kind)
	}

	switch c {
	case '<':
		switch {
		case l.accept('='):
			return kinded(types.LTE)
		case l.accept('<'):
			return kinded(types.SHL)
		case l.accept('-'):
			switch {
			case l.accept('!'):
				return kinded(types.MOVEFORCE)
			case l.accept('>'):
				return kinded(types.SWAP)
			}
			return kinded(types.MOVE)
		}
		return kinded(types.LT)
	case '>':
		switch {
		case l.accept('='):
			return kinded(types.GTE)
		case l.accept('>'):
			return kinded(types.SHR)
		}
		return kinded(types.GT)
	case '=':
		if l.accept('=') {
			return kinded(types.EQEQ)
		}
		return kinded(types.EQUALS)
	case '!':
		if l.accept('=') {
			return kinded(types.NEQ)
		}
		return kinded(types.EXCLAMATION)
	case '&':
		if l.accept('&') {
			return kinded(types.ANDAND)
		}
		return kinded(types.AMPERSAND)
	case '|':
		if l.accept('|') {
			return kinded(types.OROR)
		}
		return kinded(types.PIPE)
	case '?':
		switch {
		case l.accept('?'):
			return kinded(types.NILCO)
		case l.accept('.'):
			return kinded(types.QUESTIONDOT)
		}
		return kinded(types.QUESTION)
	case '.':
		// a dot directly followed by whitespace never starts a member access
		if next, ok := l.peek(); ok && isSpace(next) {
			return kinded(types.ILLEGAL)
		}
		return kinded(types.PERIOD)
	case '"':
		return l.lexString()
	}

	return l.lexWord(c)
}

// lexString is called after the opening quote has been read.
func (l *Lexer) lexString() types.Token {
	var lit []byte
	for {
		c, ok := l.read()
		if !ok {
			return kinded(types.DQUOTE)
		}

		switch c {
		case '"':
			return types.Token{Kind: types.STRING, Text: string(lit)}
		case '\\':
			switch {
			case l.accept('n'):
				lit = append(lit, '\n')
			case l.accept('\\'):
				lit = append(lit, '\\')
			case l.accept('"'):
				lit = append(lit, '"')
			default:
				// the escaped byte is dropped
				l.read()
				lit = append(lit, '\\')
			}
		default:
			lit = append(lit, c)
		}
	}
}

func (l *Lexer) lexWord(c byte) types.Token {
	start := l.pos - 1

	switch {
	case isLetter(c):
		for {
			b, ok := l.peek()
			if !ok || !(isLetter(b) || isDigit(b)) {
				break
			}
			l.pos++
		}
		lit := string(l.input[start:l.pos])
		if lit == "as" {
			lit = l.castSuffix(lit)
		}
		if kw, ok := types.LookupKeyword(lit); ok {
			return types.Token{Kind: types.KEYWORD, Keyword: kw, Text: lit}
		}
		return types.Token{Kind: types.IDENT, Text: lit}
	case c == '0' && (l.accept('b') || l.accept('x')):
		digit := isNibble
		if l.input[l.pos-1] == 'b' {
			digit = isBit
		}
		for {
			b, ok := l.peek()
			if !ok || !digit(b) {
				break
			}
			l.pos++
		}
		return types.Token{Kind: types.NUMBER, Text: string(l.input[start:l.pos])}
	case isDigit(c):
		for l.readNumericOrDot() {
		}
		return types.Token{Kind: types.NUMBER, Text: string(l.input[start:l.pos])}
	}

	return kinded(types.ILLEGAL)
}

// castSuffix extends "as" to "as!" or "as?" when the suffix is attached and
// does not begin "!=", "??" or "?.".
func (l *Lexer) castSuffix(lit string) string {
	c, ok := l.peek()
	if !ok {
		return lit
	}
	next, _ := l.peekN(1)
	switch {
	case c == '!' && next != '=':
		l.pos++
		return lit + "!"
	case c == '?' && next != '?' && next != '.':
		l.pos++
		return lit + "?"
	}
	return lit
}

func (l *Lexer) readNumericOrDot() bool {
	c, ok := l.peek()
	if !ok {
		return false
	}
	if isDigit(c) {
		l.pos++
		return true
	}
	if c == '.' {
		if next, ok := l.peekN(1); ok && isSpace(next) {
			return false
		}
		l.pos++
		return true
	}
	return false
}
