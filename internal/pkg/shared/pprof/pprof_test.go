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

package pprof

import (
	"os"
	"testing"
)

func TestPProf(t *testing.T) {
	prof := []string{"", "cpu", "memory", "mutex", "block"}
	dir, err := os.MkdirTemp("", "fortirule-pprof")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	for _, p := range prof {
		f, err := GetProfiler(p, dir)
		if err != nil {
			t.Fatal("Cannot start profiler: " + err.Error())
		}
		f.Stop()
	}
	_, err = GetProfiler("invalid", dir)
	if err == nil {
		t.Fatal("invalid profiler should results in non-nil err")
	}
}
