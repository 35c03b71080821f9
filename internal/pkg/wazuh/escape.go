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

package wazuh

import (
	"strings"

	"github.com/defenxor/fortirule/internal/pkg/shared/str"
)

// IDWidth is the minimum width of a matched message ID
const IDWidth = 6

// characters escaped by RegexEscape, a superset of regexp.QuoteMeta that
// also covers range and whitespace characters
const regexSpecial = `()[]{}?*+-|^$\.&~# ` + "\t\n\r\v\f"

// RegexEscape escapes every character of s that has a special meaning in a
// regular expression
func RegexEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if strings.ContainsRune(regexSpecial, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PadID left-pads a message ID with zeros to IDWidth characters
func PadID(id string) string {
	return str.ZeroPad(id, IDWidth)
}

// MatchedID converts a raw message ID into the form used in rule fields:
// zero padded, regex escaped and finally XML escaped
func MatchedID(id string) string {
	return str.XMLEscape(RegexEscape(PadID(id)))
}
