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

import "fmt"

// controlGlyphs maps non-printable PETSCII bytes to the {name}-wrapped ASCII
// spelling petcat uses for the same byte. Bytes below 0x20 are the
// unshifted control codes; bytes at or above 0x80 are colour/cursor control
// codes that occur inside string literals and comments.
var controlGlyphs = map[byte]string{
	0x05: "{wht}",
	0x08: "{swlc}",
	0x09: "{swuc}",
	0x0D: "{cr}",
	0x0E: "{lower}",
	0x11: "{down}",
	0x12: "{rvon}",
	0x13: "{home}",
	0x14: "{del}",
	0x1C: "{red}",
	0x1D: "{rght}",
	0x1E: "{grn}",
	0x1F: "{blu}",

	0x81: "{orng}",
	0x85: "{f1}",
	0x86: "{f3}",
	0x87: "{f5}",
	0x88: "{f7}",
	0x89: "{f2}",
	0x8A: "{f4}",
	0x8B: "{f6}",
	0x8C: "{f8}",
	0x8D: "{shift-return}",
	0x8E: "{upper}",
	0x90: "{blk}",
	0x91: "{up}",
	0x92: "{rvof}",
	0x93: "{clr}",
	0x94: "{inst}",
	0x95: "{brn}",
	0x96: "{lred}",
	0x97: "{gry1}",
	0x98: "{gry2}",
	0x99: "{lgrn}",
	0x9A: "{lblu}",
	0x9B: "{gry3}",
	0x9C: "{pur}",
	0x9D: "{left}",
	0x9E: "{yel}",
	0x9F: "{cyn}",
}

// ControlGlyph returns the {name}-wrapped rendering of a control byte, and
// whether b has a known glyph. Unmapped bytes in the control range (mostly
// PETSCII graphics characters) fall back to a numeric {$XX} form so every
// byte still renders to something, matching petcat's own behavior for
// characters it has no friendly name for.
func ControlGlyph(b byte) (string, bool) {
	if g, ok := controlGlyphs[b]; ok {
		return g, true
	}
	return fmt.Sprintf("{$%02x}", b), false
}
