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

package idgen

import (
	"strings"
	"sync"

	"github.com/teris-io/shortid"
)

var (
	sid     *shortid.Shortid
	sidErr  error
	sidOnce sync.Once
)

// GenerateID creates random shortid that is safe to use as part of a file name,
// i.e. it never starts with '-' or '.'
func GenerateID() (id string, err error) {
	sidOnce.Do(func() {
		sid, sidErr = shortid.New(1, shortid.DefaultABC, 2342)
	})
	if sidErr != nil {
		return "", sidErr
	}
	id, err = sid.Generate()
	if err != nil {
		return
	}
	return strings.TrimLeft(id, "-."), nil
}
