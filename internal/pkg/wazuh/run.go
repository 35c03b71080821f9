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
	"github.com/defenxor/fortirule/internal/pkg/fortilog"
	"github.com/defenxor/fortirule/internal/pkg/shared/fs"
)

// CreateRules reads the entries document in input and writes the generated
// rule file to output. Nothing is written if input can't be loaded.
func CreateRules(input, output string, opts Options) (RuleSet, error) {
	if err := opts.Validate(); err != nil {
		return RuleSet{}, err
	}
	d, err := fortilog.LoadDocument(input)
	if err != nil {
		return RuleSet{}, err
	}
	rs := Generate(d.Entries, opts)
	b, err := rs.Bytes()
	if err != nil {
		return RuleSet{}, err
	}
	return rs, fs.WriteFileAtomic(b, output)
}
