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

// Package petscii holds the static PETSCII lookup tables used to detokenize
// Commodore 64 BASIC v2 programs: the byte-to-keyword command table, the
// byte-to-control-glyph table, and the ASCII character class partition.
package petscii

// tokenBase is the smallest byte value carrying a BASIC keyword token.
const tokenBase = 0x80

// keywords is a single contiguous array indexed by byte-tokenBase, covering
// the command bytes 0x80-0xCB; bytes past its end have no keyword.
var keywords = [...]string{
	"END", "FOR", "NEXT", "DATA", "INPUT#", "INPUT", "DIM", "READ", "LET",
	"GOTO", "RUN", "IF", "RESTORE", "GOSUB", "RETURN", "REM", "STOP", "ON",
	"WAIT", "LOAD", "SAVE", "VERIFY", "DEF", "POKE", "PRINT#", "PRINT", "CONT",
	"LIST", "CLR", "CMD", "SYS", "OPEN", "CLOSE", "GET", "NEW", "TAB(", "TO",
	"FN", "SPC(", "THEN", "NOT", "STEP", "+", "-", "*", "/", "^", "AND", "OR",
	">", "=", "<", "SGN", "INT", "ABS", "USR", "FRE", "POS", "SQR", "RND",
	"LOG", "EXP", "COS", "SIN", "TAN", "ATN", "PEEK", "LEN", "STR$", "VAL",
	"ASC", "CHR$", "LEFT$", "RIGHT$", "MID$", "GO",
}

// CommandKeyword returns the BASIC keyword spelling for a tokenized command
// byte (0x80-0xFF) and whether b is a recognized command byte at all.
func CommandKeyword(b byte) (string, bool) {
	if int(b) < tokenBase {
		return "", false
	}
	i := int(b) - tokenBase
	if i >= len(keywords) {
		return "", false
	}
	return keywords[i], true
}

// arithmeticOperators, relationalOperators and logicalOperators are the
// sub-ranges of command bytes the tagger consults before it falls back to a
// keyword-table scan.
var (
	arithmeticOperators = [...]byte{0xAA, 0xAB, 0xAC, 0xAD, 0xAE}
	relationalOperators = [...]byte{0xB1, 0xB2, 0xB3}
	logicalOperators    = [...]byte{0xA8, 0xAF, 0xB0}
)

// IsArithmeticOperator reports whether b is one of +, -, *, /, ^.
func IsArithmeticOperator(b byte) bool { return byteIn(b, arithmeticOperators[:]) }

// IsRelationalOperator reports whether b is one of >, =, <.
func IsRelationalOperator(b byte) bool { return byteIn(b, relationalOperators[:]) }

// IsLogicalOperator reports whether b is one of AND, OR, NOT.
func IsLogicalOperator(b byte) bool { return byteIn(b, logicalOperators[:]) }

func byteIn(b byte, set []byte) bool {
	for _, v := range set {
		if v == b {
			return true
		}
	}
	return false
}

// Command bytes with line-level modal side effects in the lexer.
const (
	Print    byte = 0x99
	PrintNum byte = 0x98
	Rem      byte = 0x8F
	Data     byte = 0x83
	Equal    byte = 0xB2
)
