package types

import "testing"

func TestKeywordTable(t *testing.T) {
	words := []string{
		"let", "var", "true", "false", "nil", "if", "else", "switch", "case",
		"break", "default", "while", "for", "in", "continue", "pub", "priv",
		"access", "all", "contract", "account", "struct", "resource",
		"interface", "enum", "init", "get", "set", "pre", "post", "self",
		"create", "destroy", "import", "from", "fun", "return", "event", "emit",
		"transaction", "prepare", "execute", "as", "as!", "as?",
	}
	if len(words) != len(keywordText) {
		t.Fatalf("table has %d words, want %d", len(keywordText), len(words))
	}
	for _, w := range words {
		kw, ok := LookupKeyword(w)
		if !ok {
			t.Fatalf("%q is not a keyword", w)
		}
		if kw.String() != w {
			t.Fatalf("round trip: got %q, want %q", kw.String(), w)
		}
	}

	for _, w := range []string{"auth", "Let", "asx", ""} {
		if _, ok := LookupKeyword(w); ok {
			t.Fatalf("%q should not be a keyword", w)
		}
	}
}

func TestKindNamesAreComplete(t *testing.T) {
	for k := EOF; k <= KEYWORD; k++ {
		if _, ok := kindNames[k]; !ok {
			t.Fatalf("kind %d has no name", int(k))
		}
	}
	if got := TokenKind(999).String(); got != "TokenKind(999)" {
		t.Fatalf("got %q", got)
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: PLUS}, "PLUS"},
		{Token{Kind: IDENT, Text: "a"}, `IDENT("a")`},
		{Token{Kind: NUMBER, Text: "0x1"}, `NUMBER("0x1")`},
		{Token{Kind: KEYWORD, Keyword: KeywordAsForce, Text: "as!"}, "KEYWORD(as!)"},
	}
	for _, c := range cases {
		if got := c.tok.String(); got != c.want {
			t.Fatalf("got %q, want %q", got, c.want)
		}
	}
}

func TestLexeme(t *testing.T) {
	src := []byte("ab <- c")
	tok := Token{Kind: MOVE, Offset: 3, Length: 2}
	if got := tok.Lexeme(src); got != "<-" {
		t.Fatalf("got %q", got)
	}
	if got := (Token{Offset: 6, Length: 5}).Lexeme(src); got != "" {
		t.Fatalf("out of range lexeme: got %q", got)
	}
	if !tok.Is(MOVE) || tok.IsKeyword(KeywordAs) {
		t.Fatal("Is/IsKeyword mismatch")
	}
}
