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

// Command petcat64 decodes a single tokenized Commodore 64 BASIC program
// and writes its text form to stdout or to the file named by -out.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kythe/c64basic/basiclib/decode"
	"github.com/kythe/c64basic/basiclib/lexer"
)

var (
	outPath = flag.String("out", "", "write decoded text here instead of stdout")
	errors  = flag.String("errors", "replace", "unrecognized command byte policy: replace|raise")
	loLine  = flag.Uint("lo", 0, "lowest BASIC line number to decode (inclusive)")
	hiLine  = flag.Uint("hi", 65535, "highest BASIC line number to decode (inclusive)")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("petcat64: ")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: petcat64 [flags] <tokenized-file>")
		os.Exit(2)
	}

	policy, err := parsePolicy(*errors)
	if err != nil {
		log.Fatal(err)
	}

	in, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	d, err := decode.New(
		decode.WithErrorPolicy(policy),
		decode.WithLineRange(uint16(*loLine), uint16(*hiLine)),
	)
	if err != nil {
		log.Fatal(err)
	}

	bf, err := d.Decode(in)
	if err != nil {
		log.Printf("decoding %s: %v (partial output retained)", flag.Arg(0), err)
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	if err := bf.SaveText(out); err != nil {
		log.Fatal(err)
	}
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
