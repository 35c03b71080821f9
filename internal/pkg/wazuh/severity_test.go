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

import "testing"

func TestLevel(t *testing.T) {
	type s1 struct {
		severity string
		level    int
		known    bool
	}
	tbl1 := []s1{
		{"information", 2, true},
		{"Information", 2, true},
		{"notice", 3, true},
		{"  Warning ", 5, true},
		{"ERROR", 7, true},
		{"Critical", 10, true},
		{"Alert", 7, true},
		{"", 4, false},
		{"   ", 4, false},
		{"bogus", 4, false},
		{"emergency", 4, false},
	}

	for _, tt := range tbl1 {
		level, known := Level(tt.severity)
		if level != tt.level || known != tt.known {
			t.Errorf("Level: severity %q, expected %v/%v, actual %v/%v",
				tt.severity, tt.level, tt.known, level, known)
		}
	}
}

func TestNormalizeSeverity(t *testing.T) {
	if NormalizeSeverity(" Notice\t") != "notice" {
		t.Error("NormalizeSeverity should trim and lower-case")
	}
}
