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

package fortilog

// Field labels as they appear in the FortiOS log reference, in the order they
// are tested against each line.
const (
	LabelMessageID   = "Message ID"
	LabelDescription = "Message Description"
	LabelMeaning     = "Message Meaning"
	LabelType        = "Type"
	LabelCategory    = "Category"
	LabelSeverity    = "Severity"
)

// Record is a single log message definition found in the log reference.
// Fields are nil when the corresponding line was missing from the source.
type Record struct {
	MessageID   *string `json:"Message ID"`
	Description *string `json:"Message Description"`
	Meaning     *string `json:"Message Meaning"`
	Type        *string `json:"Type"`
	Category    *string `json:"Category"`
	Severity    *string `json:"Severity"`
}

// Document is the result of an extraction run
type Document struct {
	DistinctMessageIDs int      `json:"distinct_message_ids"`
	Entries            []Record `json:"entries"`
}

// NewRecord returns a Record with the given values, empty strings are kept as nil
func NewRecord(id, description, meaning, typ, category, severity string) Record {
	return Record{
		MessageID:   strPtr(id),
		Description: strPtr(description),
		Meaning:     strPtr(meaning),
		Type:        strPtr(typ),
		Category:    strPtr(category),
		Severity:    strPtr(severity),
	}
}

// CountDistinct returns the number of unique non-nil Message IDs in entries
func CountDistinct(entries []Record) int {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.MessageID != nil {
			seen[*e.MessageID] = struct{}{}
		}
	}
	return len(seen)
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
