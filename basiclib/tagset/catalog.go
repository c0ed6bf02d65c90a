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

// Package tagset implements the declarative classification catalog the
// tagger consults: category -> subcategory -> {tag, values}.
package tagset

import (
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/ini"
)

// Entry is a single leaf of the catalog: a tag name and the literal values
// (keyword spellings, punctuation characters, ...) that map to it.
type Entry struct {
	Tag    string
	Values []string
}

// Contains reports whether value is one of e's configured Values.
func (e Entry) Contains(value string) bool {
	for _, v := range e.Values {
		if v == value {
			return true
		}
	}
	return false
}

// Catalog is the loaded, read-only tagset. It is safe for concurrent use by
// multiple decoders, since nothing in it is ever mutated after Load
// returns.
type Catalog struct {
	order   []string            // category names, in the order they were declared
	subOrd  map[string][]string // category -> subcategory names, in declared order
	entries map[string]map[string]Entry
}

func newCatalog() *Catalog {
	return &Catalog{
		subOrd:  make(map[string][]string),
		entries: make(map[string]map[string]Entry),
	}
}

func (c *Catalog) put(category, subcategory string, e Entry) {
	if _, ok := c.entries[category]; !ok {
		c.order = append(c.order, category)
		c.entries[category] = make(map[string]Entry)
	}
	if _, ok := c.entries[category][subcategory]; !ok {
		c.subOrd[category] = append(c.subOrd[category], subcategory)
	}
	c.entries[category][subcategory] = e
}

// Tag returns the tag configured for category.subcategory, or "" if the
// catalog has no such entry.
func (c *Catalog) Tag(category, subcategory string) string {
	return c.entries[category][subcategory].Tag
}

// Entry returns the full entry for category.subcategory and whether it was
// found.
func (c *Catalog) Entry(category, subcategory string) (Entry, bool) {
	sub, ok := c.entries[category]
	if !ok {
		return Entry{}, false
	}
	e, ok := sub[subcategory]
	return e, ok
}

// FirstMatch scans category's subcategories in declared order and returns
// the tag of the first whose Values contains text.
func (c *Catalog) FirstMatch(category, text string) (string, bool) {
	for _, sub := range c.subOrd[category] {
		if e := c.entries[category][sub]; e.Contains(text) {
			return e.Tag, true
		}
	}
	return "", false
}

// String implements fmt.Stringer, primarily for debugging.
func (c *Catalog) String() string {
	return fmt.Sprintf("Catalog(%d categories)", len(c.order))
}

// Load parses an ini-formatted tagset from r. Sections are named
// "category.subcategory" and contain a "tag" key and a "values" key, e.g.:
//
//	[operators.relational]
//	tag = OR
//	values = > = <
func Load(r io.Reader) (*Catalog, error) {
	cat := newCatalog()
	var section string
	err := ini.Parse(r, ini.Handler{
		Section: func(_ ini.Location, name string) error {
			section = name
			return nil
		},
		KeyValue: func(loc ini.Location, key string, values []string) error {
			if section == "" {
				return fmt.Errorf("%v: key %q outside of any section", loc, key)
			}
			category, subcategory, ok := strings.Cut(section, ".")
			if !ok {
				return fmt.Errorf("%v: section %q is not category.subcategory", loc, section)
			}
			entry, _ := cat.Entry(category, subcategory)
			switch key {
			case "tag":
				entry.Tag = strings.Join(flatSplit(values), "")
			case "values":
				entry.Values = flatSplit(values)
			default:
				return fmt.Errorf("%v: unrecognized tagset key %q", loc, key)
			}
			cat.put(category, subcategory, entry)
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("parsing tagset: %w", err)
	}
	return cat, nil
}

// flatSplit splits each of values on whitespace and flattens the result.
func flatSplit(values []string) []string {
	var result []string
	for _, v := range values {
		result = append(result, strings.Fields(v)...)
	}
	return result
}
