// Copyright (c) 2024 PT Defender Nusa Semesta and contributors, All rights reserved.
//
// This file is part of Fortirule.
//
// Fortirule is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation version 3 of the License.
//
// Fortirule is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Fortirule. If not, see <https://www.gnu.org/licenses/>.

package str

import (
	"strings"
	"unicode/utf8"
)

// ampersand goes first so already produced entities aren't escaped twice
var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// XMLEscape replaces &, <, >, " and ' in s with their named XML entities
func XMLEscape(s string) string {
	return xmlReplacer.Replace(s)
}

// ZeroPad left-pads s with '0' until it is width characters long. A leading
// sign stays in front of the padding. Longer strings are returned unchanged.
func ZeroPad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	pad := strings.Repeat("0", width-n)
	if s != "" && (s[0] == '+' || s[0] == '-') {
		return s[:1] + pad + s[1:]
	}
	return pad + s
}

// Normalize trims surrounding whitespaces from s and lower-cases the result
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Deref returns the string p points to, or an empty string if p is nil
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
