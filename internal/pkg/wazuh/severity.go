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

import "github.com/defenxor/fortirule/internal/pkg/shared/str"

// DefaultLevel is used for severities missing from the table
const DefaultLevel = 4

// FortiOS severity to Wazuh rule level. Alert shares the level of error.
var severityLevels = map[string]int{
	"information": 2,
	"notice":      3,
	"warning":     5,
	"error":       7,
	"critical":    10,
	"alert":       7,
}

// NormalizeSeverity trims and lower-cases a severity label
func NormalizeSeverity(severity string) string {
	return str.Normalize(severity)
}

// Level maps severity to a Wazuh rule level. known is false when the
// normalized severity isn't in the table and DefaultLevel was returned.
func Level(severity string) (level int, known bool) {
	level, known = severityLevels[NormalizeSeverity(severity)]
	if !known {
		level = DefaultLevel
	}
	return
}
