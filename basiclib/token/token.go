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

// Package token defines the atomic lexical unit produced by the BASIC
// lexer: one classified chunk of source bytes.
package token

import (
	"fmt"

	"github.com/alecthomas/participle/lexer"
)

// Language identifies the programming language a token belongs to. A DATA
// line whose content is entirely hex/comma/space/$ characters is
// reclassified as ASSEMBLY after the whole line is lexed.
type Language int

const (
	BASIC Language = iota
	ASSEMBLY
)

func (l Language) String() string {
	if l == ASSEMBLY {
		return "ASSEMBLY"
	}
	return "BASIC"
}

// Position locates a token's seed byte within its source line. It reuses
// participle's lexer.Position; Line holds the BASIC line number rather
// than a physical source line, and Column is the 1-based byte offset of
// the seed byte within the line's payload.
type Position = lexer.Position

// Token is one classified lexical unit.
type Token struct {
	Value    byte     // the seed byte that began this token
	Bytes    []byte   // all source bytes that produced this token
	ByteRepr string   // human-readable rendering of Bytes, e.g. "0x41"
	Text     string   // ASCII rendering of the token
	Tag      string   // syntactic/semantic tag, assigned by the tagger
	Line     uint16   // BASIC line number
	Language Language
	Pos      Position
}

// New constructs a single-byte token seeded by value.
func New(value byte, line uint16, pos Position) Token {
	return Token{
		Value:    value,
		Bytes:    []byte{value},
		ByteRepr: fmt.Sprintf("0x%02x", value),
		Line:     line,
		Pos:      pos,
	}
}

// Concat merges two tokens from the same line and language into one. The
// combined token keeps the first token's seed Value and Pos, not the
// second's: the seed identifies where a chunk began, and must not drift as
// later bytes fold in.
//
// Concat never mutates a or b; it returns a new Token, so chunking is a
// pop-combine-push on the output slice rather than in-place mutation.
func (a Token) Concat(b Token) (Token, error) {
	if a.Line != b.Line {
		return Token{}, fmt.Errorf("cannot concatenate tokens from different lines: %d != %d", a.Line, b.Line)
	}
	if a.Language != b.Language {
		return Token{}, fmt.Errorf("cannot concatenate tokens of different languages: %v != %v", a.Language, b.Language)
	}
	return Token{
		Value:    a.Value,
		Bytes:    append(append([]byte{}, a.Bytes...), b.Bytes...),
		ByteRepr: a.ByteRepr + b.ByteRepr,
		Text:     a.Text + b.Text,
		Tag:      a.Tag,
		Line:     a.Line,
		Language: a.Language,
		Pos:      a.Pos,
	}, nil
}

// MustConcat behaves like Concat but panics on an invariant violation,
// since mismatched Line or Language between adjacent tokens on the same
// line is a programming error rather than recoverable bad input.
func (a Token) MustConcat(b Token) Token {
	t, err := a.Concat(b)
	if err != nil {
		panic(err)
	}
	return t
}
