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

// Package basicfile holds the decoded program: an ordered sequence of
// (line number, token list) pairs, with text and tabular serializers.
package basicfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kythe/c64basic/basiclib/token"
)

// Line is one decoded source line.
type Line struct {
	Number uint16
	Tokens []token.Token
}

// File is an ordered collection of decoded lines. Line numbers are 16-bit
// and uniqueness is not enforced (the binary format does not guarantee it),
// so File is a plain append-only slice rather than a map.
type File struct {
	lines []Line
}

// New returns an empty File.
func New() *File {
	return &File{}
}

// AddLine appends a new line composed of tokens at lineno, preserving
// insertion order.
func (f *File) AddLine(tokens []token.Token, lineno uint16) {
	f.lines = append(f.lines, Line{Number: lineno, Tokens: tokens})
}

// Lines returns the decoded lines in insertion order.
func (f *File) Lines() []Line {
	return f.lines
}

// Len reports the number of decoded lines.
func (f *File) Len() int {
	return len(f.lines)
}

// SaveText writes one line per record to w, formatted as "%5d %s" where %s
// is the space-joined token texts. Lines are newline-separated; a single
// trailing newline is written after the last line.
func (f *File) SaveText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, line := range f.lines {
		texts := make([]string, len(line.Tokens))
		for i, tok := range line.Tokens {
			texts[i] = tok.Text
		}
		if _, err := fmt.Fprintf(bw, "%5d %s\n", line.Number, strings.Join(texts, " ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Row is one row of the tabular token view: columns
// [line, token_id, bytes, token, tag, language].
type Row struct {
	Line     uint16
	TokenID  int
	Bytes    string
	Text     string
	Tag      string
	Language token.Language
}

// Table returns the tabular token view of this file: one row per token,
// with TokenID restarting at zero for each line. Writing this to a
// spreadsheet or CSV sink is the caller's concern; this method only
// produces the data.
func (f *File) Table() []Row {
	var rows []Row
	for _, line := range f.lines {
		for i, tok := range line.Tokens {
			rows = append(rows, Row{
				Line:     line.Number,
				TokenID:  i,
				Bytes:    tok.ByteRepr,
				Text:     tok.Text,
				Tag:      tok.Tag,
				Language: tok.Language,
			})
		}
	}
	return rows
}
