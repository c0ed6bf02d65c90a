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

// Package tagger implements the stateless classifier: given a token and a
// handful of context, it returns the tag string drawn from a tagset.Catalog.
package tagger

import (
	"strings"

	"github.com/kythe/c64basic/basiclib/petscii"
	"github.com/kythe/c64basic/basiclib/tagset"
)

// Tagger is a stateless classifier bound to one read-only Catalog. It holds
// no per-decode state, so a single Tagger may be shared across concurrent
// decoders, exactly like the read-only petscii tables.
type Tagger struct {
	cat *tagset.Catalog
}

// New returns a Tagger backed by cat.
func New(cat *tagset.Catalog) *Tagger {
	return &Tagger{cat: cat}
}

// ParsePrint returns the fixed tag for tokens inside a PRINT statement span.
func (t *Tagger) ParsePrint() string { return t.cat.Tag("strings", "print") }

// ParseComment returns the fixed tag for tokens inside a REM comment.
func (t *Tagger) ParseComment() string { return t.cat.Tag("strings", "comment") }

// ParseString returns the fixed tag for tokens inside a string literal.
func (t *Tagger) ParseString() string { return t.cat.Tag("strings", "string") }

// ParseASCII classifies a printable ASCII byte. prevIsDot
// reports whether the immediately preceding token's text is exactly ".",
// which disambiguates a leading digit as the start of a real-number
// literal rather than an integer.
func (t *Tagger) ParseASCII(b byte, prevIsDot bool) string {
	switch petscii.ClassOf(b) {
	case petscii.Letter:
		return t.cat.Tag("variables", "real")
	case petscii.Digit:
		if prevIsDot {
			return t.cat.Tag("numbers", "real")
		}
		return t.cat.Tag("numbers", "integer")
	case petscii.Sigil:
		return t.cat.Tag("punctuations", "type")
	case petscii.Punctuation:
		if tag, ok := t.cat.FirstMatch("punctuations", string(rune(b))); ok {
			return tag
		}
		return t.cat.Tag("punctuations", "other")
	default:
		return t.cat.Tag("unknown", "unknown")
	}
}

// ParseCommand classifies a command byte: the arithmetic,
// relational and logical operator ranges take priority, then the keyword
// is looked up in the commands category, then constants, then the unknown
// tag as a last resort.
func (t *Tagger) ParseCommand(value byte, keyword string) string {
	if tag, ok := t.parseOperator(value); ok {
		return tag
	}
	if tag, ok := t.cat.FirstMatch("commands", keyword); ok {
		return tag
	}
	if tag, ok := t.cat.FirstMatch("constants", keyword); ok {
		return tag
	}
	return t.cat.Tag("unknown", "unknown")
}

func (t *Tagger) parseOperator(value byte) (string, bool) {
	switch {
	case petscii.IsArithmeticOperator(value):
		return t.cat.Tag("operators", "arithmetic"), true
	case petscii.IsRelationalOperator(value):
		return t.cat.Tag("operators", "relational"), true
	case petscii.IsLogicalOperator(value):
		return t.cat.Tag("operators", "logical"), true
	}
	return "", false
}

// AssignmentTag and RelationalTag expose the two possible tags for an
// ambiguous "=" byte.
func (t *Tagger) AssignmentTag() string { return t.cat.Tag("operators", "assignment") }
func (t *Tagger) RelationalTag() string { return t.cat.Tag("operators", "relational") }

// UnaryTag is the tag a "+"/"-" token is retagged to when unary-sign
// disambiguation determines it is not a binary operator.
func (t *Tagger) UnaryTag() string { return t.cat.Tag("operators", "unary") }

// PunctuationOtherTag is the fallback tag for a sigil byte with no
// preceding alphabetic token to attach to.
func (t *Tagger) PunctuationOtherTag() string { return t.cat.Tag("punctuations", "other") }

// RealNumberTag is the tag a numeral is promoted to once a "." chunks onto
// an integer digit run or vice versa.
func (t *Tagger) RealNumberTag() string { return t.cat.Tag("numbers", "real") }

// DataTag is the tag forced onto every non-comma printable-ASCII token of a
// DATA line; the DATA keyword itself keeps its command tag.
func (t *Tagger) DataTag() string { return t.cat.Tag("data", "data") }

// StringVariableTag and IntegerVariableTag are the retagged forms of a bare
// variable once a type sigil ("$" or "%") is seen.
func (t *Tagger) StringVariableTag() string  { return t.cat.Tag("variables", "string") }
func (t *Tagger) IntegerVariableTag() string { return t.cat.Tag("variables", "integer") }

// SystemTimeTag and SystemIOTag are the retagged forms of the TI/TI$/TIME/
// TIME$ and ST/STATUS system variables.
func (t *Tagger) SystemTimeTag() string { return t.cat.Tag("system", "time") }
func (t *Tagger) SystemIOTag() string   { return t.cat.Tag("system", "IO") }

// IsExpressionTag reports whether tag marks a token that can terminate an
// expression: a variable (V-prefixed), a number (N-prefixed), a string
// (S-prefixed) or (checked separately by callers) a closing paren. This is
// the lookback test unary-sign disambiguation uses.
func IsExpressionTag(tag string) bool {
	return strings.HasPrefix(tag, "V") || strings.HasPrefix(tag, "N") || strings.HasPrefix(tag, "S")
}

// IsVariableTag reports whether tag is one of the plain variable tags
// (real/integer/string), excluding the "VA"-prefixed array tags. The lexer
// does not call it: its sigil and array retagging checks test only for the
// "V" prefix.
func IsVariableTag(tag string) bool {
	return strings.HasPrefix(tag, "V") && !strings.HasPrefix(tag, "VA")
}

// ArrayTag derives the array-variable tag (prefix "VA") from a plain
// variable tag, preserving its trailing type-kind character.
func ArrayTag(varTag string) string {
	if varTag == "" {
		return "VA"
	}
	return "VA" + varTag[len(varTag)-1:]
}
