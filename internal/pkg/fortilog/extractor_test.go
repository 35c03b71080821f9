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

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"testing"

	log "github.com/defenxor/fortirule/internal/pkg/shared/logger"
)

func s(v string) *string { return &v }

func TestExtract(t *testing.T) {
	type s1 struct {
		name     string
		lines    []string
		expected []Record
		distinct int
	}
	tbl1 := []s1{
		{
			name: "two records with missing fields",
			lines: []string{
				"Message ID: 100",
				"Message Meaning: Test A",
				"Message ID: 200",
				"Severity: Critical",
			},
			expected: []Record{
				{MessageID: s("100"), Meaning: s("Test A")},
				{MessageID: s("200"), Severity: s("Critical")},
			},
			distinct: 2,
		},
		{
			name:     "no message id at all",
			lines:    []string{"Message Meaning: orphan", "Type: Event", "", "noise"},
			expected: nil,
			distinct: 0,
		},
		{
			name:     "empty input",
			lines:    nil,
			expected: nil,
			distinct: 0,
		},
		{
			name: "fields seen before the first message id join the first record",
			lines: []string{
				"Severity: Warning",
				"Message ID: 1",
				"Type: Event",
			},
			expected: []Record{
				{MessageID: s("1"), Type: s("Event"), Severity: s("Warning")},
			},
			distinct: 1,
		},
		{
			name: "duplicate ids are kept but counted once",
			lines: []string{
				"Message ID: 7",
				"Message ID: 7",
				"Message ID: 8",
			},
			expected: []Record{
				{MessageID: s("7")},
				{MessageID: s("7")},
				{MessageID: s("8")},
			},
			distinct: 2,
		},
		{
			name: "whitespace handling and case sensitivity",
			lines: []string{
				"   Message ID:42   ",
				"message meaning: lower-case label is ignored",
				"Type:Traffic",
				"Category:\tforward",
				"  Foo Type: not at line start",
			},
			expected: []Record{
				{MessageID: s("42"), Category: s("forward")},
			},
			distinct: 1,
		},
		{
			name: "non-breaking and vertical space after the label",
			lines: []string{
				"Message ID:\u00a0100",
				"Message Meaning:\u00a0Forward traffic",
				"Severity:\u00a0Notice",
				"Type:\vTraffic",
				"Category:\u3000forward",
			},
			expected: []Record{
				{MessageID: s("100"), Meaning: s("Forward traffic"), Type: s("Traffic"), Category: s("forward"), Severity: s("Notice")},
			},
			distinct: 1,
		},
		{
			name: "captured values are not parsed further",
			lines: []string{
				"Message ID: 5",
				"Message Meaning: Severity: Critical",
			},
			expected: []Record{
				{MessageID: s("5"), Meaning: s("Severity: Critical")},
			},
			distinct: 1,
		},
		{
			name: "later lines overwrite fields of the open record",
			lines: []string{
				"Message ID: 9",
				"Type: Event",
				"Type: Traffic",
			},
			expected: []Record{
				{MessageID: s("9"), Type: s("Traffic")},
			},
			distinct: 1,
		},
		{
			name: "empty value after label",
			lines: []string{
				"Message ID:",
				"Message ID: 3",
				"Message Description: ",
			},
			expected: []Record{
				{MessageID: s("3")},
			},
			distinct: 1,
		},
	}

	for _, tt := range tbl1 {
		actual := Extract(tt.lines)
		if !reflect.DeepEqual(actual.Entries, tt.expected) {
			t.Errorf("Extract %s: expected %v, actual %v", tt.name, dump(tt.expected), dump(actual.Entries))
		}
		if actual.DistinctMessageIDs != tt.distinct {
			t.Errorf("Extract %s: expected distinct %d, actual %d", tt.name, tt.distinct, actual.DistinctMessageIDs)
		}
		if actual.DistinctMessageIDs > len(actual.Entries) {
			t.Errorf("Extract %s: distinct count exceeds number of entries", tt.name)
		}
		if actual.DistinctMessageIDs != CountDistinct(actual.Entries) {
			t.Errorf("Extract %s: distinct count doesn't match entries", tt.name)
		}
		for _, e := range actual.Entries {
			if e.MessageID == nil {
				t.Errorf("Extract %s: record without Message ID emitted", tt.name)
			}
		}
	}
}

func TestExtractRecordsAreIndependent(t *testing.T) {
	d := Extract([]string{"Message ID: 1", "Type: A", "Message ID: 2", "Type: B"})
	if len(d.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(d.Entries))
	}
	if *d.Entries[0].Type != "A" || *d.Entries[1].Type != "B" {
		t.Errorf("records share state: %v", dump(d.Entries))
	}
}

func TestScanFile(t *testing.T) {
	log.EnableTestingMode()

	var d Document
	var err error
	o := log.CaptureZapOutput(func() {
		d, err = ExtractFile("testdata/logref-sample.txt")
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Entries) != 4 {
		t.Fatalf("expected 4 entries, got %d: %v", len(d.Entries), dump(d.Entries))
	}
	if d.DistinctMessageIDs != 3 {
		t.Errorf("expected 3 distinct ids, got %d", d.DistinctMessageIDs)
	}
	first := NewRecord("13", "LOG_ID_TRAFFIC_END_FORWARD", "Forward traffic", "Traffic", "forward", "Notice")
	if !reflect.DeepEqual(d.Entries[0], first) {
		t.Errorf("unexpected first entry: %v", dump(d.Entries[:1]))
	}
	last := d.Entries[3]
	if *last.MessageID != "32001" || *last.Meaning != "Duplicate definition <&>" || *last.Severity != "Critical" {
		t.Errorf("unexpected last entry: %v", dump(d.Entries[3:]))
	}
	if last.Type != nil || last.Category != nil || last.Description != nil {
		t.Errorf("missing fields should be nil: %v", dump(d.Entries[3:]))
	}
	if !strings.Contains(o, "record closed") || !strings.Contains(o, "extracted 4 records") {
		t.Errorf("expected debug and info messages, got: %s", o)
	}

	if _, err := ExtractFile("testdata/nonexistent.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestScanLongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	d, err := Scan(strings.NewReader("Message ID: 1\nMessage Meaning: " + long + "\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Entries) != 1 || *d.Entries[0].Meaning != long {
		t.Error("long line wasn't captured")
	}
}

func TestScanMatchesExtract(t *testing.T) {
	b, err := os.ReadFile("testdata/logref-sample.txt")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(string(b), "\n")
	d1 := Extract(lines)
	d2, err := Scan(strings.NewReader(string(b)))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(d1, d2) {
		t.Errorf("Scan and Extract disagree: %v vs %v", dump(d1.Entries), dump(d2.Entries))
	}
}

func dump(rr []Record) string {
	var parts []string
	for _, r := range rr {
		parts = append(parts, fmt.Sprintf("%+v", toRow(r)))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
