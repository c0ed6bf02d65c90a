// Copyright 2019 The Kythe Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexer

import (
	"testing"

	"github.com/alecthomas/repr"
	"github.com/kythe/c64basic/basiclib/tagger"
	"github.com/kythe/c64basic/basiclib/tagset"
	"github.com/kythe/c64basic/basiclib/token"
)

// dump pretty-prints a token slice for mismatch failures.
func dump(toks []token.Token) string {
	return repr.String(toks, repr.Indent("  "), repr.OmitEmpty(true))
}

func newLexer(t *testing.T) *Lexer {
	t.Helper()
	cat, err := tagset.Default()
	if err != nil {
		t.Fatalf("tagset.Default: %v", err)
	}
	return New(tagger.New(cat))
}

func texts(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, tk := range toks {
		out[i] = tk.Text
	}
	return out
}

// PRINT "HI" chunks the whole quoted span into one string token.
func TestLexPrintString(t *testing.T) {
	lx := newLexer(t)
	toks, err := lx.Lex(10, []byte{0x99, 0x20, 0x22, 0x48, 0x49, 0x22})
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if len(toks) != 3 {
		t.Fatalf("len(toks) = %d (%v); want 3", len(toks), texts(toks))
	}
	if toks[0].Text != "PRINT" || toks[0].Tag != "CIO" {
		t.Errorf("toks[0] = %+v; want PRINT/CIO", toks[0])
	}
	if got := toks[len(toks)-1]; got.Text != `"hi"` || got.Tag != "S" {
		t.Errorf("last token = %+v; want \"hi\"/S", got)
	}
}

// A=1 assigns, since no IF precedes the equal sign.
func TestLexAssignment(t *testing.T) {
	lx := newLexer(t)
	toks, err := lx.Lex(10, []byte{0x41, 0xB2, 0x31})
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	want := []struct{ text, tag string }{
		{"a", "VR"}, {"=", "OAS"}, {"1", "NI"},
	}
	if len(toks) != len(want) {
		t.Fatalf("len(toks) = %d (%v); want %d", len(toks), texts(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Text != w.text || toks[i].Tag != w.tag {
			t.Errorf("toks[%d] = %+v (want text=%q tag=%q); full token stream:\n%s",
				i, toks[i], w.text, w.tag, dump(toks))
		}
	}
}

// IF A=1 THEN PRINT"OK" tags the equal sign relational because an IF
// precedes it with no intervening statement separator.
func TestLexIfThenRelationalEqual(t *testing.T) {
	lx := newLexer(t)
	toks, err := lx.Lex(20, []byte{
		0x8B, 0x41, 0xB2, 0x31, 0xA7, 0x99, 0x22, 0x4F, 0x4B, 0x22,
	})
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	var eq *token.Token
	for i := range toks {
		if toks[i].Text == "=" {
			eq = &toks[i]
			break
		}
	}
	if eq == nil {
		t.Fatalf("no \"=\" token found in %v", texts(toks))
	}
	if eq.Tag != "OR" {
		t.Errorf("equal-sign tag = %q; want OR (relational)", eq.Tag)
	}
	if last := toks[len(toks)-1]; last.Text != `"ok"` || last.Tag != "S" {
		t.Errorf("last token = %+v; want \"ok\"/S", last)
	}
}

// A=-B retags the "-" as unary because "=" is not an
// expression-producing token.
func TestLexUnarySign(t *testing.T) {
	lx := newLexer(t)
	toks, err := lx.Lex(30, []byte{0x41, 0xB2, 0xAB, 0x42})
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if len(toks) != 4 {
		t.Fatalf("len(toks) = %d (%v); want 4", len(toks), texts(toks))
	}
	if toks[2].Text != "-" || toks[2].Tag != "OU" {
		t.Errorf("toks[2] = %+v; want -/OU (unary)", toks[2])
	}
}

// DATA A9,$12 is reclassified wholesale as ASSEMBLY because every
// subsequent character lies in the assembly character set.
func TestLexDataAssemblyLanguage(t *testing.T) {
	lx := newLexer(t)
	toks, err := lx.Lex(40, []byte{0x83, 0x20, 0x41, 0x39, 0x2C, 0x24, 0x31, 0x32})
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if toks[0].Text != "DATA" || toks[0].Tag != "CST" {
		t.Errorf("toks[0] = %+v; want DATA/CST", toks[0])
	}
	for _, tk := range toks {
		if tk.Language != token.ASSEMBLY {
			t.Errorf("token %+v language = %v; want ASSEMBLY", tk, tk.Language)
		}
	}
	for _, tk := range toks[1:] {
		if tk.Text == "," {
			continue
		}
		if tk.Tag != "DT" {
			t.Errorf("data-block token %+v tag = %q; want DT", tk, tk.Tag)
		}
	}
}

// Two-byte relational operator chunking: "<" (0xB3) followed by "=" (0xB2)
// merges into "<=" tagged operator-relational; identical bytes in a row do
// not merge.
func TestLexTwoByteRelationalOperator(t *testing.T) {
	lx := newLexer(t)
	toks, err := lx.Lex(50, []byte{0x42, 0x31, 0xB3, 0xB2, 0x32})
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	want := []struct{ text, tag string }{
		{"b1", "VR"}, {"<=", "OR"}, {"2", "NI"},
	}
	if len(toks) != len(want) {
		t.Fatalf("len(toks) = %d (%v); want %d", len(toks), texts(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Text != w.text || toks[i].Tag != w.tag {
			t.Errorf("toks[%d] = %+v (want text=%q tag=%q); full token stream:\n%s",
				i, toks[i], w.text, w.tag, dump(toks))
		}
	}
}

func TestLexSameValuedRelationalBytesDoNotMerge(t *testing.T) {
	lx := newLexer(t)
	toks, err := lx.Lex(60, []byte{0xB2, 0xB2})
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if len(toks) != 2 {
		t.Fatalf("len(toks) = %d (%v); want 2 (no merge)", len(toks), texts(toks))
	}
}

func TestLexResetsStatePerLine(t *testing.T) {
	lx := newLexer(t)
	// REM on line 1 enters comment mode; line 2 must not inherit it.
	if _, err := lx.Lex(1, []byte{0x8F, 0x41}); err != nil {
		t.Fatalf("Lex line 1: %v", err)
	}
	toks, err := lx.Lex(2, []byte{0x41})
	if err != nil {
		t.Fatalf("Lex line 2: %v", err)
	}
	if len(toks) != 1 || toks[0].Tag != "VR" {
		t.Errorf("line 2 toks = %v; want single VR token (not swallowed as comment)", toks)
	}
}

func TestLexUnrecognizedCommandByte(t *testing.T) {
	cat, err := tagset.Default()
	if err != nil {
		t.Fatalf("tagset.Default: %v", err)
	}
	lx := New(tagger.New(cat), WithErrorPolicy(ErrorsRaise))
	if _, err := lx.Lex(1, []byte{0xFF}); err == nil {
		t.Error("Lex with unrecognized command byte under ErrorsRaise: got nil error")
	}

	lxReplace := New(tagger.New(cat))
	toks, err := lxReplace.Lex(1, []byte{0xFF})
	if err != nil {
		t.Fatalf("Lex under ErrorsReplace: %v", err)
	}
	if len(toks) != 1 || toks[0].Text != replacementChar {
		t.Errorf("toks = %v; want single replacement-char token", toks)
	}
}
