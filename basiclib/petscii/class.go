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

package petscii

import "bitbucket.org/creachadair/stringset"

// Class partitions the printable ASCII range (0x20-0x7F) the way the tagger
// needs: letter, digit, sigil (type suffix) or punctuation.
type Class int

const (
	Other Class = iota
	Letter
	Digit
	Sigil
	Punctuation
)

// sigils is the set of BASIC type-suffix characters.
var sigils = stringset.New("$", "%")

// assemblyChars is the character set permitted in a DATA-block line that is
// to be classified as inline assembly: hex digits, comma, space and the
// sigil that introduces a hex literal.
var assemblyChars = stringset.New(
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"A", "B", "C", "D", "E", "F",
	"a", "b", "c", "d", "e", "f",
	",", " ", "$",
)

// statementSeparators terminate the lexer's backward scan for equal-sign
// disambiguation.
var statementSeparators = stringset.New(":", ";", "THEN")

// IsStatementSeparator reports whether text is one of the tokens that end a
// logical statement span for the equal-sign disambiguation scan.
func IsStatementSeparator(text string) bool {
	return statementSeparators.Contains(text)
}

// IsAssemblyChar reports whether r is permitted in an inline-assembly DATA
// block token.
func IsAssemblyChar(r rune) bool {
	return assemblyChars.Contains(string(r))
}

// ClassOf classifies a printable ASCII byte (0x20-0x7F).
func ClassOf(b byte) Class {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z':
		return Letter
	case b >= '0' && b <= '9':
		return Digit
	case sigils.Contains(string(rune(b))):
		return Sigil
	case b >= 0x20 && b <= 0x7F:
		return Punctuation
	default:
		return Other
	}
}
