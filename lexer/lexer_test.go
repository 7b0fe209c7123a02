/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors
*/

package lexer

import "testing"

func allTokens(t *testing.T, input string) []Token {
	t.Helper()
	l := New(input)
	var toks []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		toks = append(toks, tok)
		if tok.Type == EOF {
			break
		}
	}
	return toks
}

func TestNextTokenKeywordsAndPunctuation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []TokenType
	}{
		{"arrow ascii", "x <- 1", []TokenType{IDENT, ARROW, NUMBER, EOF}},
		{"arrow unicode", "x ← 1", []TokenType{IDENT, ARROW, NUMBER, EOF}},
		{"relational ascii and unicode", "a <= b and c ≠ d", []TokenType{IDENT, LE, IDENT, AND, IDENT, NE, IDENT, EOF}},
		{"floor and ceil", "⌊n / 2⌋ + ⌈n / 2⌉", []TokenType{LFLOOR, IDENT, SLASH, NUMBER, RFLOOR, PLUS, LCEIL, IDENT, SLASH, NUMBER, RCEIL, EOF}},
		{"range dots", "arr[1..n]", []TokenType{IDENT, LBRACKET, NUMBER, DOTDOT, IDENT, RBRACKET, EOF}},
		{"booleans", "T or F", []TokenType{TRUE, OR, FALSE, EOF}},
		{"keywords", "for i <- 1 to n step 2 do", []TokenType{FOR, IDENT, ARROW, NUMBER, TO, IDENT, STEP, NUMBER, DO, EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := allTokens(t, tt.in)
			if len(toks) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(tt.want), toks)
			}
			for i, tok := range toks {
				if tok.Type != tt.want[i] {
					t.Errorf("token %d: got type %v, want %v (value %q)", i, tok.Type, tt.want[i], tok.Value)
				}
			}
		})
	}
}

func TestSkipTriviaConsumesCommentsAndWhitespace(t *testing.T) {
	toks := allTokens(t, "x <- 1 ► this is ignored\ny <- 2")
	want := []TokenType{IDENT, ARROW, NUMBER, IDENT, ARROW, NUMBER, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
}

func TestNextTokenTracksLineAndColumn(t *testing.T) {
	l := New("x\ny")
	first, err := l.NextToken()
	if err != nil {
		t.Fatalf("NextToken: %v", err)
	}
	if first.Line != 1 {
		t.Errorf("expected first token on line 1, got %d", first.Line)
	}
	second, err := l.NextToken()
	if err != nil {
		t.Fatalf("NextToken: %v", err)
	}
	if second.Line != 2 {
		t.Errorf("expected second token on line 2, got %d", second.Line)
	}
}

func TestNextTokenRejectsIllegalCharacter(t *testing.T) {
	l := New("x <- @")
	for i := 0; i < 2; i++ {
		if _, err := l.NextToken(); err != nil {
			t.Fatalf("unexpected error on token %d: %v", i, err)
		}
	}
	if _, err := l.NextToken(); err == nil {
		t.Fatal("expected an error on the illegal character '@'")
	}
}
