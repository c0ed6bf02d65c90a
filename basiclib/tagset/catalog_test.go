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

package tagset

import (
	"strings"
	"testing"
)

const sample = `
[operators.relational]
tag = OR
values = > = <

[operators.arithmetic]
tag = OA
values = + - * / ^

[punctuations.other]
tag = PO
`

func TestLoad(t *testing.T) {
	cat, err := Load(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cat.Tag("operators", "relational"); got != "OR" {
		t.Errorf("Tag(operators, relational) = %q; want OR", got)
	}
	e, ok := cat.Entry("operators", "arithmetic")
	if !ok || !e.Contains("+") {
		t.Errorf("Entry(operators, arithmetic).Contains(+) = %v, %v; want true, true", ok, e.Contains("+"))
	}
}

func TestFirstMatchOrder(t *testing.T) {
	cat, err := Load(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// relational is declared before arithmetic, so a value present in both
	// (there are none here) would resolve to relational's tag first.
	if tag, ok := cat.FirstMatch("operators", "="); !ok || tag != "OR" {
		t.Errorf("FirstMatch(operators, =) = %q, %v; want OR, true", tag, ok)
	}
	if _, ok := cat.FirstMatch("operators", "nope"); ok {
		t.Error("FirstMatch(operators, nope) matched; want no match")
	}
}

func TestDefaultCoversAllCategories(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	for _, category := range []string{
		"commands", "operators", "strings", "numbers", "variables",
		"punctuations", "constants", "data", "system", "unknown",
	} {
		if _, ok := cat.entries[category]; !ok {
			t.Errorf("Default catalog missing category %q", category)
		}
	}
	if tag, ok := cat.FirstMatch("commands", "PRINT"); !ok || tag != "CIO" {
		t.Errorf("FirstMatch(commands, PRINT) = %q, %v; want CIO, true", tag, ok)
	}
	if tag := cat.Tag("variables", "real"); !strings.HasPrefix(tag, "V") {
		t.Errorf("variables.real tag = %q; want V-prefixed", tag)
	}
}
