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
	"testing"
)

func TestXMLEscape(t *testing.T) {
	type s1 struct {
		text     string
		expected string
	}
	tbl1 := []s1{
		{"plain", "plain"},
		{"a & b", "a &amp; b"},
		{"<tag>", "&lt;tag&gt;"},
		{`say "hi"`, "say &quot;hi&quot;"},
		{"it's", "it&apos;s"},
		{"&amp;", "&amp;amp;"},
		{"", ""},
	}

	for _, tt := range tbl1 {
		actual := XMLEscape(tt.text)
		if actual != tt.expected {
			t.Errorf("XMLEscape: text %v, expected %v, actual %v", tt.text, tt.expected, actual)
		}
	}
}

func TestXMLEscapeNoRawChars(t *testing.T) {
	actual := XMLEscape(`1234&<>"'`)
	stripped := strings.NewReplacer("&amp;", "", "&lt;", "", "&gt;", "", "&quot;", "", "&apos;", "").Replace(actual)
	if strings.ContainsAny(stripped, `&<>"'`) {
		t.Errorf("XMLEscape left raw markup characters in %v", actual)
	}
}

func TestZeroPad(t *testing.T) {
	type s1 struct {
		text     string
		width    int
		expected string
	}
	tbl1 := []s1{
		{"", 6, "000000"},
		{"100", 6, "000100"},
		{"32001", 6, "032001"},
		{"123456", 6, "123456"},
		{"0100032001", 6, "0100032001"},
		{"é", 3, "00é"},
		{"-5", 6, "-00005"},
		{"+12", 6, "+00012"},
		{"-", 3, "-00"},
		{"1-2", 6, "0001-2"},
	}

	for _, tt := range tbl1 {
		actual := ZeroPad(tt.text, tt.width)
		if actual != tt.expected {
			t.Errorf("ZeroPad: text %v, width %v, expected %v, actual %v",
				tt.text, tt.width, tt.expected, actual)
		}
	}
}

func TestNormalize(t *testing.T) {
	type s1 struct {
		text     string
		expected string
	}
	tbl1 := []s1{
		{"Critical", "critical"},
		{"  Warning ", "warning"},
		{"\tnotice\n", "notice"},
		{"", ""},
	}

	for _, tt := range tbl1 {
		actual := Normalize(tt.text)
		if actual != tt.expected {
			t.Errorf("Normalize: text %v, expected %v, actual %v", tt.text, tt.expected, actual)
		}
	}
}

func TestDeref(t *testing.T) {
	s := "x"
	if Deref(&s) != "x" {
		t.Error("Deref should return pointed value")
	}
	if Deref(nil) != "" {
		t.Error("Deref of nil should return empty string")
	}
}
