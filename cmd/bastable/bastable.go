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

// Command bastable walks a directory tree of tokenized Commodore 64 BASIC
// programs, decodes each regular file, and writes a "<name>.bas" text file
// to a mirrored location under -dest. If -tables is given, it additionally
// writes a per-file CSV token table there.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kythe/c64basic/basiclib/decode"
	"github.com/kythe/c64basic/basiclib/lexer"
	kpath "github.com/kythe/c64basic/path"
	"github.com/kythe/c64basic/writer"
)

var (
	destDir   = flag.String("dest", "", "directory to write decoded .bas files to (required)")
	tableDir  = flag.String("tables", "", "optional directory to write per-file CSV token tables to")
	errPolicy = flag.String("errors", "replace", "unrecognized command byte policy: replace|raise")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bastable: ")
	flag.Parse()
	if flag.NArg() != 1 || *destDir == "" {
		fmt.Fprintln(os.Stderr, "usage: bastable -dest=<dir> [-tables=<dir>] <source-dir>")
		os.Exit(2)
	}
	sourceDir := flag.Arg(0)

	policy, err := parsePolicy(*errPolicy)
	if err != nil {
		log.Fatal(err)
	}
	d, err := decode.New(decode.WithErrorPolicy(policy))
	if err != nil {
		log.Fatal(err)
	}

	b := &batch{decoder: d, sourceDir: sourceDir}
	if err := kpath.Walk(sourceDir, b.visit); err != nil {
		log.Fatal(err)
	}
	log.Printf("decoded %d file(s), %d failure(s)", b.decoded, b.failed)
}

// batch accumulates counts across the recursive directory walk. A failed
// decode is counted and logged but never aborts the rest of the tree.
type batch struct {
	decoder         *decode.Decoder
	sourceDir       string
	decoded, failed int
}

// visit implements path.Visitor: it decodes every regular file directly in
// dir and returns the names of dir's subdirectories so Walk recurses into
// them (Walk joins each name onto dir itself).
func (b *batch) visit(dir string) ([]string, func() error, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var children []string
	for _, entry := range entries {
		if entry.IsDir() {
			children = append(children, entry.Name())
			continue
		}
		if skipEntry(entry.Name()) {
			continue
		}
		if err := b.decodeOne(dir, entry.Name()); err != nil {
			log.Printf("%s: %v", filepath.Join(dir, entry.Name()), err)
			b.failed++
			continue
		}
		b.decoded++
	}
	return children, nil, nil
}

func skipEntry(name string) bool {
	return name == ".DS_Store" || name == ".gitkeep"
}

func (b *batch) decodeOne(dir, name string) error {
	rel, err := filepath.Rel(b.sourceDir, dir)
	if err != nil {
		return fmt.Errorf("computing relative path: %w", err)
	}

	in, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer in.Close()

	bf, decodeErr := b.decoder.Decode(in)
	// A malformed file still yields whatever was decoded so far; the text
	// and table outputs for that partial result are still worth keeping.

	destSubdir := kpath.New(*destDir).JoinString(rel).String()
	if err := os.MkdirAll(destSubdir, 0o755); err != nil {
		return fmt.Errorf("creating destination directory: %w", err)
	}
	out, err := os.Create(kpath.New(destSubdir).JoinString(name + ".bas").String())
	if err != nil {
		return fmt.Errorf("creating destination: %w", err)
	}
	defer out.Close()
	if err := bf.SaveText(out); err != nil {
		return fmt.Errorf("writing text: %w", err)
	}

	if *tableDir != "" {
		tableSubdir := kpath.New(*tableDir).JoinString(rel).String()
		if err := os.MkdirAll(tableSubdir, 0o755); err != nil {
			return fmt.Errorf("creating table directory: %w", err)
		}
		tf, err := os.Create(kpath.New(tableSubdir).JoinString(name + ".csv").String())
		if err != nil {
			return fmt.Errorf("creating table: %w", err)
		}
		defer tf.Close()
		if err := writer.WriteTable(tf, bf.Table()); err != nil {
			return fmt.Errorf("writing table: %w", err)
		}
	}

	return decodeErr
}

func parsePolicy(s string) (lexer.ErrorPolicy, error) {
	switch s {
	case "replace":
		return lexer.ErrorsReplace, nil
	case "raise":
		return lexer.ErrorsRaise, nil
	default:
		return 0, fmt.Errorf("invalid -errors value %q (want replace|raise)", s)
	}
}
