package core

import "testing"

func TestLexerLiteralStringEscapes(t *testing.T) {
	lex := NewLexer([]byte(`(Hello \(World\)\101\n)`))
	tok, err := lex.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if tok.Type != TokLiteralString {
		t.Fatalf("expected TokLiteralString, got %v", tok.Type)
	}
	want := "Hello (World)A\n"
	if string(tok.Bytes) != want {
		t.Errorf("got %q, want %q", tok.Bytes, want)
	}
}

func TestLexerLiteralStringLineContinuation(t *testing.T) {
	lex := NewLexer([]byte("(a\\\nb)"))
	tok, err := lex.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if string(tok.Bytes) != "ab" {
		t.Errorf("got %q, want %q", tok.Bytes, "ab")
	}
}

func TestLexerHexString(t *testing.T) {
	lex := NewLexer([]byte("<48656C6C6F>"))
	tok, err := lex.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if tok.Type != TokHexString || string(tok.Bytes) != "Hello" {
		t.Fatalf("got %+v", tok)
	}
}

func TestLexerHexStringOddDigitsPadded(t *testing.T) {
	lex := NewLexer([]byte("<48656C6C6F0>"))
	tok, err := lex.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if string(tok.Bytes) != "Hello\x00" {
		t.Fatalf("got %q", tok.Bytes)
	}
}

func TestLexerNameHexEscape(t *testing.T) {
	lex := NewLexer([]byte("/Lime#20Green"))
	tok, err := lex.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if tok.Type != TokName || tok.Text != "Lime Green" {
		t.Fatalf("got %+v", tok)
	}
}

func TestLexerDictStartEnd(t *testing.T) {
	lex := NewLexer([]byte("<< /Key (val) >>"))
	tok, err := lex.Next()
	if err != nil || tok.Type != TokDictStart {
		t.Fatalf("got %+v, err %v", tok, err)
	}
}

func TestLexerNumberAndRefKeyword(t *testing.T) {
	lex := NewLexer([]byte("12 0 R"))
	tok1, _ := lex.Next()
	tok2, _ := lex.Next()
	tok3, _ := lex.Next()
	if tok1.Type != TokInt || tok1.Text != "12" {
		t.Errorf("got tok1 %+v", tok1)
	}
	if tok2.Type != TokInt || tok2.Text != "0" {
		t.Errorf("got tok2 %+v", tok2)
	}
	if tok3.Type != TokRRef {
		t.Errorf("got tok3 %+v", tok3)
	}
}

func TestLexerRealNumber(t *testing.T) {
	lex := NewLexer([]byte("-12.5"))
	tok, err := lex.Next()
	if err != nil || tok.Type != TokReal || tok.Text != "-12.5" {
		t.Fatalf("got %+v, err %v", tok, err)
	}
}

func TestLexerSeekAndPosition(t *testing.T) {
	lex := NewLexer([]byte("0123456789"))
	lex.Seek(5)
	if lex.Position() != 5 {
		t.Fatalf("expected position 5, got %d", lex.Position())
	}
	b, err := lex.ReadN(3)
	if err != nil || string(b) != "567" {
		t.Fatalf("got %q, err %v", b, err)
	}
}

func TestLexerSkipsCommentsAsWhitespace(t *testing.T) {
	lex := NewLexer([]byte("% a comment\n42"))
	tok, err := lex.Next()
	if err != nil || tok.Type != TokInt || tok.Text != "42" {
		t.Fatalf("got %+v, err %v", tok, err)
	}
}

func TestLexerEOF(t *testing.T) {
	lex := NewLexer([]byte(""))
	tok, err := lex.Next()
	if err != nil || tok.Type != TokEOF {
		t.Fatalf("got %+v, err %v", tok, err)
	}
}
