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

// Package decode wires the binary reader, the context-sensitive lexer and
// the tagset catalog together into the single entry point a caller uses to
// turn a tokenized BASIC file into a basicfile.File.
package decode

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/kythe/c64basic/basiclib/basicfile"
	"github.com/kythe/c64basic/basiclib/lexer"
	"github.com/kythe/c64basic/basiclib/reader"
	"github.com/kythe/c64basic/basiclib/tagger"
	"github.com/kythe/c64basic/basiclib/tagset"
)

// Decoder reads a tokenized BASIC source file and produces a basicfile.File.
// A Decoder holds only read-only collaborators (the tagset and lexer) and
// per-decode configuration, so one Decoder may decode many files, even
// concurrently.
type Decoder struct {
	lx       *lexer.Lexer
	loLine   uint16
	hiLine   uint16
	hasRange bool
	logger   *log.Logger
}

// config accumulates the settings every Option may touch before the Lexer
// is built, so options can be supplied in any order.
type config struct {
	cat      *tagset.Catalog
	policy   lexer.ErrorPolicy
	loLine   uint16
	hiLine   uint16
	hasRange bool
	logger   *log.Logger
}

// Option configures a Decoder.
type Option func(*config)

// WithErrorPolicy selects replace-vs-raise behavior for unrecognized
// command bytes.
func WithErrorPolicy(p lexer.ErrorPolicy) Option {
	return func(c *config) { c.policy = p }
}

// WithLineRange restricts decoding to lines in the inclusive range
// [lo, hi]; decoding stops as soon as a line number exceeds hi.
func WithLineRange(lo, hi uint16) Option {
	return func(c *config) { c.loLine, c.hiLine, c.hasRange = lo, hi, true }
}

// WithLogger sets the logger used to report non-fatal warnings such as
// malformed records. The default writes to the standard logger.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithTagset overrides the default embedded tagset.
func WithTagset(cat *tagset.Catalog) Option {
	return func(c *config) { c.cat = cat }
}

// New constructs a Decoder using the embedded default tagset unless
// overridden by WithTagset.
func New(opts ...Option) (*Decoder, error) {
	c := &config{logger: log.Default()}
	for _, opt := range opts {
		opt(c)
	}
	if c.cat == nil {
		cat, err := tagset.Default()
		if err != nil {
			return nil, fmt.Errorf("decode: loading default tagset: %w", err)
		}
		c.cat = cat
	}
	return &Decoder{
		lx:       lexer.New(tagger.New(c.cat), lexer.WithErrorPolicy(c.policy)),
		loLine:   c.loLine,
		hiLine:   c.hiLine,
		hasRange: c.hasRange,
		logger:   c.logger,
	}, nil
}

// Decode reads a full tokenized BASIC file from r, lexes and tags every
// line in range, and returns the assembled basicfile.File. A malformed
// record or an unrecognized command byte under the raise policy stops
// decoding early but still returns whatever was decoded so far. The
// returned *basicfile.File
// is never nil, even when err is non-nil (e.g. a file too short to carry
// a load address): callers can always call SaveText/Table on it.
func (d *Decoder) Decode(r io.Reader) (*basicfile.File, error) {
	bf := basicfile.New()
	rd, err := reader.New(r)
	if err != nil {
		return bf, fmt.Errorf("decode: %w", err)
	}

	for {
		rec, err := rd.Next()
		var warn *reader.Warning
		switch {
		case errors.As(err, &warn):
			if rec != nil {
				if err := d.decodeRecord(bf, rec); err != nil {
					return bf, err
				}
			}
			d.logf("%v", warn)
			return bf, nil
		case err == io.EOF:
			return bf, nil
		case err != nil:
			return bf, fmt.Errorf("decode: %w", err)
		}

		if d.hasRange && rec.LineNumber < d.loLine {
			continue
		}
		if d.hasRange && rec.LineNumber > d.hiLine {
			return bf, nil
		}
		if err := d.decodeRecord(bf, rec); err != nil {
			return bf, err
		}
	}
}

func (d *Decoder) decodeRecord(bf *basicfile.File, rec *reader.Record) error {
	// Lexer errors already carry the offending line number.
	toks, err := d.lx.Lex(rec.LineNumber, rec.Payload)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	bf.AddLine(toks, rec.LineNumber)
	return nil
}

func (d *Decoder) logf(format string, args ...interface{}) {
	if d.logger != nil {
		d.logger.Printf(format, args...)
	}
}
