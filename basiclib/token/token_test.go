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

package token

import "testing"

func TestConcatKeepsFirstSeedValue(t *testing.T) {
	a := New('<', 10, Position{Line: 10, Column: 1})
	a.Text, a.Tag = "<", "OP"
	b := New('=', 10, Position{Line: 10, Column: 2})
	b.Text, b.Tag = "=", "OP"

	got, err := a.Concat(b)
	if err != nil {
		t.Fatalf("Concat: %v", err)
	}
	if got.Value != a.Value {
		t.Errorf("Value = 0x%02x; want first seed 0x%02x", got.Value, a.Value)
	}
	if got.Text != "<=" {
		t.Errorf("Text = %q; want %q", got.Text, "<=")
	}
	if string(got.Bytes) != "<=" {
		t.Errorf("Bytes = %q; want %q", got.Bytes, "<=")
	}
	if got.Tag != "OP" {
		t.Errorf("Tag = %q; want %q", got.Tag, "OP")
	}
}

func TestConcatRejectsDifferentLines(t *testing.T) {
	a := New('A', 10, Position{})
	b := New('1', 20, Position{})
	if _, err := a.Concat(b); err == nil {
		t.Error("Concat across lines: got nil error, want one")
	}
}

func TestConcatRejectsDifferentLanguages(t *testing.T) {
	a := New('A', 10, Position{})
	b := New('1', 10, Position{})
	b.Language = ASSEMBLY
	if _, err := a.Concat(b); err == nil {
		t.Error("Concat across languages: got nil error, want one")
	}
}

func TestMustConcatPanicsOnViolation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustConcat did not panic on invariant violation")
		}
	}()
	a := New('A', 10, Position{})
	b := New('1', 11, Position{})
	a.MustConcat(b)
}
