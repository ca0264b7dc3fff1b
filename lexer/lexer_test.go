package lexer

import (
	"os"
	"path/filepath"
	"testing"

	"zedc/report"
	"zedc/source"
)

func init() {
	report.InitReporter(report.LogLevelSilent)
}

func newTestUnit(t *testing.T, text string) *source.Unit {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.zed")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("failed to write test unit: %v", err)
	}

	mgr := source.NewManager(dir)
	u, err := mgr.Load(path, "test.zed")
	if err != nil {
		t.Fatalf("failed to load test unit: %v", err)
	}
	return u
}

func collectTokens(l *Lexer) []*Token {
	var toks []*Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == TOK_EOF {
			return toks
		}
	}
}

func TestLexerKeywords(t *testing.T) {
	u := newTestUnit(t, "fn if else while return asm")
	l := NewLexer(u)

	want := []Kind{TOK_FN, TOK_IF, TOK_ELSE, TOK_WHILE, TOK_RETURN, TOK_ASM, TOK_EOF}
	for i, k := range want {
		tok := l.NextToken()
		if tok.Kind != k {
			t.Errorf("token %d: expected %v, got %v", i, k, tok.Kind)
		}
	}
}

func TestLexerIdentifiers(t *testing.T) {
	u := newTestUnit(t, "foo bar _temp myVar123")
	l := NewLexer(u)

	want := []string{"foo", "bar", "_temp", "myVar123"}
	for i, name := range want {
		tok := l.NextToken()
		if tok.Kind != TOK_IDENT {
			t.Errorf("token %d: expected identifier, got %v", i, tok.Kind)
		}
		if tok.Value != name {
			t.Errorf("token %d: expected %q, got %q", i, name, tok.Value)
		}
	}
}

func TestLexerIntLiterals(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"0", "0"},
		{"42", "42"},
		{"0x1F", "0x1F"},
		{"0xff", "0xff"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			u := newTestUnit(t, tt.src)
			l := NewLexer(u)
			tok := l.NextToken()
			if tok.Kind != TOK_INTLIT {
				t.Fatalf("expected integer literal, got %v", tok.Kind)
			}
			if tok.Value != tt.want {
				t.Errorf("expected %q, got %q", tt.want, tok.Value)
			}
		})
	}
}

func TestLexerStringEscapes(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`"hello"`, "hello"},
		{`"line\nbreak"`, "line\nbreak"},
		{`"quote\"here"`, `quote"here`},
		{`"tab\there"`, "tab\there"},
		{`"nul\0byte"`, "nul\x00byte"},
		{`"hex\x41"`, "hexA"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			u := newTestUnit(t, tt.src)
			l := NewLexer(u)
			tok := l.NextToken()
			if tok.Kind != TOK_STRINGLIT {
				t.Fatalf("expected string literal, got %v", tok.Kind)
			}
			if tok.Value != tt.want {
				t.Errorf("expected %q, got %q", tt.want, tok.Value)
			}
		})
	}
}

func TestLexerOperators(t *testing.T) {
	u := newTestUnit(t, "+ - * / = == != < <= > >= && ||")
	l := NewLexer(u)

	want := []Kind{
		TOK_PLUS, TOK_MINUS, TOK_STAR, TOK_SLASH, TOK_ASSIGN, TOK_EQ, TOK_NEQ,
		TOK_LT, TOK_LTEQ, TOK_GT, TOK_GTEQ, TOK_LAND, TOK_LOR, TOK_EOF,
	}

	for i, k := range want {
		tok := l.NextToken()
		if tok.Kind != k {
			t.Errorf("token %d: expected %v, got %v", i, k, tok.Kind)
		}
	}
}

func TestLexerDivisionVsComment(t *testing.T) {
	u := newTestUnit(t, "a / b // trailing\n/ c")
	l := NewLexer(u)

	want := []Kind{TOK_IDENT, TOK_SLASH, TOK_IDENT, TOK_SLASH, TOK_IDENT, TOK_EOF}
	for i, k := range want {
		tok := l.NextToken()
		if tok.Kind != k {
			t.Errorf("token %d: expected %v, got %v", i, k, tok.Kind)
		}
	}
}

func TestLexerComments(t *testing.T) {
	u := newTestUnit(t, "// line comment\n/* block\ncomment */\nfoo")
	l := NewLexer(u)

	tok := l.NextToken()
	if tok.Kind != TOK_IDENT || tok.Value != "foo" {
		t.Errorf("expected identifier `foo`, got %v %q", tok.Kind, tok.Value)
	}
}

func TestLexerIncludeDirective(t *testing.T) {
	u := newTestUnit(t, `@include "std/io.zed";`)
	l := NewLexer(u)

	toks := collectTokens(l)
	if toks[0].Kind != TOK_INCLUDE {
		t.Fatalf("expected @include token, got %v", toks[0].Kind)
	}
	if toks[1].Kind != TOK_STRINGLIT || toks[1].Value != "std/io.zed" {
		t.Errorf("expected path string literal, got %v %q", toks[1].Kind, toks[1].Value)
	}
	if toks[2].Kind != TOK_SEMI {
		t.Errorf("expected semicolon, got %v", toks[2].Kind)
	}
}

func TestLexerByteOffsetSpans(t *testing.T) {
	u := newTestUnit(t, "fn main")
	l := NewLexer(u)

	tok := l.NextToken()
	if tok.Span.Start != 0 || tok.Span.End != 2 {
		t.Errorf("expected span [0,2), got [%d,%d)", tok.Span.Start, tok.Span.End)
	}

	tok = l.NextToken()
	if tok.Span.Start != 3 || tok.Span.End != 7 {
		t.Errorf("expected span [3,7), got [%d,%d)", tok.Span.Start, tok.Span.End)
	}
}

func TestLexerUnterminatedStringPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected lexer to raise on unterminated string")
		}
	}()

	u := newTestUnit(t, `"unterminated`)
	l := NewLexer(u)
	l.NextToken()
}

func TestLexerUnterminatedBlockCommentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected lexer to raise on unterminated block comment")
		}
	}()

	u := newTestUnit(t, "/* never closed")
	l := NewLexer(u)
	l.NextToken()
}
