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

// Command bascmp prints a unified diff between two decoded BASIC text
// files, case-folded and stripped of spaces, for comparing this
// decoder's output against an independently produced ground truth.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: bascmp <ground-truth-file> <decoded-file>")
		os.Exit(2)
	}
	groundTruthPath, decodedPath := flag.Arg(0), flag.Arg(1)

	groundTruth, err := normalizedLines(groundTruthPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	decoded, err := normalizedLines(decodedPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	diff := difflib.UnifiedDiff{
		A:        groundTruth,
		B:        decoded,
		FromFile: groundTruthPath,
		ToFile:   decodedPath,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(text)
	if text != "" {
		os.Exit(1)
	}
}

// normalizedLines reads path and returns its lines lowercased with all
// spaces removed, so the diff ignores case and spacing differences between
// detokenizers.
func normalizedLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.ToLower(sc.Text())
		line = strings.ReplaceAll(line, " ", "")
		lines = append(lines, line+"\n")
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}
