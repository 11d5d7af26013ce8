package types

import (
	"fmt"
)

type TokenKind int

const (
	EOF TokenKind = iota
	ILLEGAL

	LPAREN
	RPAREN
	LSQUARE
	RSQUARE
	LBRACE
	RBRACE
	COMMA
	PERIOD
	COLON
	SEMICOLON
	AT

	PLUS
	MINUS
	ASTERISK
	SLASH
	BACKSLASH
	PERCENT

	LT
	LTE
	GT
	GTE
	EQEQ
	NEQ
	EQUALS

	EXCLAMATION
	ANDAND
	OROR
	AMPERSAND
	PIPE
	CARET
	SHL
	SHR

	QUESTION
	QUESTIONDOT
	NILCO

	MOVE
	MOVEFORCE
	SWAP

	DQUOTE
	SQUOTE

	STRING
	IDENT
	NUMBER

	KEYWORD
)

var kindNames = map[TokenKind]string{
	EOF:         "EOF",
	ILLEGAL:     "ILLEGAL",
	LPAREN:      "LPAREN",
	RPAREN:      "RPAREN",
	LSQUARE:     "LSQUARE",
	RSQUARE:     "RSQUARE",
	LBRACE:      "LBRACE",
	RBRACE:      "RBRACE",
	COMMA:       "COMMA",
	PERIOD:      "PERIOD",
	COLON:       "COLON",
	SEMICOLON:   "SEMICOLON",
	AT:          "AT",
	PLUS:        "PLUS",
	MINUS:       "MINUS",
	ASTERISK:    "ASTERISK",
	SLASH:       "SLASH",
	BACKSLASH:   "BACKSLASH",
	PERCENT:     "PERCENT",
	LT:          "LT",
	LTE:         "LTE",
	GT:          "GT",
	GTE:         "GTE",
	EQEQ:        "EQEQ",
	NEQ:         "NEQ",
	EQUALS:      "EQUALS",
	EXCLAMATION: "EXCLAMATION",
	ANDAND:      "ANDAND",
	OROR:        "OROR",
	AMPERSAND:   "AMPERSAND",
	PIPE:        "PIPE",
	CARET:       "CARET",
	SHL:         "SHL",
	SHR:         "SHR",
	QUESTION:    "QUESTION",
	QUESTIONDOT: "QUESTIONDOT",
	NILCO:       "NILCO",
	MOVE:        "MOVE",
	MOVEFORCE:   "MOVEFORCE",
	SWAP:        "SWAP",
	DQUOTE:      "DQUOTE",
	SQUOTE:      "SQUOTE",
	STRING:      "STRING",
	IDENT:       "IDENT",
	NUMBER:      "NUMBER",
	KEYWORD:     "KEYWORD",
}

func (t TokenKind) String() string {
	if name, ok := kindNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(t))
}

// Keyword is the reserved word carried by a KEYWORD token.
type Keyword int

const (
	NoKeyword Keyword = iota

	KeywordLet
	KeywordVar
	KeywordTrue
	KeywordFalse
	KeywordNil
	KeywordIf
	KeywordElse
	KeywordSwitch
	KeywordCase
	KeywordBreak
	KeywordDefault
	KeywordWhile
	KeywordFor
	KeywordIn
	KeywordContinue
	KeywordPub
	KeywordPriv
	KeywordAccess
	KeywordAll
	KeywordContract
	KeywordAccount
	KeywordStruct
	KeywordResource
	KeywordInterface
	KeywordEnum
	KeywordInit
	KeywordGet
	KeywordSet
	KeywordPre
	KeywordPost
	KeywordSelf
	KeywordCreate
	KeywordDestroy
	KeywordImport
	KeywordFrom
	KeywordFun
	KeywordReturn
	KeywordEvent
	KeywordEmit
	KeywordTransaction
	KeywordPrepare
	KeywordExecute
	KeywordAs
	KeywordAsForce
	KeywordAsOptional
)

var keywordText = map[Keyword]string{
	KeywordLet:         "let",
	KeywordVar:         "var",
	KeywordTrue:        "true",
	KeywordFalse:       "false",
	KeywordNil:         "nil",
	KeywordIf:          "if",
	KeywordElse:        "else",
	KeywordSwitch:      "switch",
	KeywordCase:        "case",
	KeywordBreak:       "break",
	KeywordDefault:     "default",
	KeywordWhile:       "while",
	KeywordFor:         "for",
	KeywordIn:          "in",
	KeywordContinue:    "continue",
	KeywordPub:         "pub",
	KeywordPriv:        "priv",
	KeywordAccess:      "access",
	KeywordAll:         "all",
	KeywordContract:    "contract",
	KeywordAccount:     "account",
	KeywordStruct:      "struct",
	KeywordResource:    "resource",
	KeywordInterface:   "interface",
	KeywordEnum:        "enum",
	KeywordInit:        "init",
	KeywordGet:         "get",
	KeywordSet:         "set",
	KeywordPre:         "pre",
	KeywordPost:        "post",
	KeywordSelf:        "self",
	KeywordCreate:      "create",
	KeywordDestroy:     "destroy",
	KeywordImport:      "import",
	KeywordFrom:        "from",
	KeywordFun:         "fun",
	KeywordReturn:      "return",
	KeywordEvent:       "event",
	KeywordEmit:        "emit",
	KeywordTransaction: "transaction",
	KeywordPrepare:     "prepare",
	KeywordExecute:     "execute",
	KeywordAs:          "as",
	KeywordAsForce:     "as!",
	KeywordAsOptional:  "as?",
}

var keywords = func() map[string]Keyword {
	m := make(map[string]Keyword, len(keywordText))
	for kw, text := range keywordText {
		m[text] = kw
	}
	return m
}()

func (k Keyword) String() string {
	if text, ok := keywordText[k]; ok {
		return text
	}
	return fmt.Sprintf("Keyword(%d)", int(k))
}

// LookupKeyword reports the reserved word spelled by text, if any.
func LookupKeyword(text string) (Keyword, bool) {
	kw, ok := keywords[text]
	return kw, ok
}

// Token is a classified lexeme. Offset and Length index the source buffer.
// Text holds the payload of STRING (decoded), IDENT and NUMBER tokens.
type Token struct {
	Kind    TokenKind
	Keyword Keyword
	Text    string
	Offset  int
	Length  int
}

func (t Token) Is(k TokenKind) bool {
	return t.Kind == k
}

// IsKeyword reports whether t is the KEYWORD token for kw.
func (t Token) IsKeyword(kw Keyword) bool {
	return t.Kind == KEYWORD && t.Keyword == kw
}

// Lexeme returns the raw source text the token was scanned from.
func (t Token) Lexeme(src []byte) string {
	end := t.Offset + t.Length
	if t.Offset < 0 || end > len(src) {
		return ""
	}
	return string(src[t.Offset:end])
}

func (t Token) String() string {
	switch t.Kind {
	case KEYWORD:
		return fmt.Sprintf("KEYWORD(%s)", t.Keyword)
	case STRING, IDENT, NUMBER:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	}
	return t.Kind.String()
}
