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
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	log "github.com/defenxor/fortirule/internal/pkg/shared/logger"
)

const maxLineSize = 1024 * 1024

type field struct {
	label string
	re    *regexp.Regexp
	set   func(r *Record, v string)
}

// space matches Unicode white space, including NBSP and \v
const space = `[\s\v\p{Z}\x1c-\x1f\x85]`

func labelPattern(label, quant string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(label) + `:` + space + quant + `(.+)$`)
}

// first match wins, so the order here matters
var fields = []field{
	{LabelMessageID, labelPattern(LabelMessageID, "*"), func(r *Record, v string) { r.MessageID = &v }},
	{LabelDescription, labelPattern(LabelDescription, "+"), func(r *Record, v string) { r.Description = &v }},
	{LabelMeaning, labelPattern(LabelMeaning, "+"), func(r *Record, v string) { r.Meaning = &v }},
	{LabelType, labelPattern(LabelType, "+"), func(r *Record, v string) { r.Type = &v }},
	{LabelCategory, labelPattern(LabelCategory, "+"), func(r *Record, v string) { r.Category = &v }},
	{LabelSeverity, labelPattern(LabelSeverity, "+"), func(r *Record, v string) { r.Severity = &v }},
}

// accumulator holds the state of a single extraction pass
type accumulator struct {
	file    string
	line    int
	current Record
	seen    map[string]struct{}
	entries []Record
}

func newAccumulator(file string) *accumulator {
	return &accumulator{
		file: file,
		seen: make(map[string]struct{}),
	}
}

// feed processes one line of text
func (a *accumulator) feed(line string) {
	a.line++
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	for _, f := range fields {
		m := f.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if f.label == LabelMessageID && a.current.MessageID != nil {
			a.close()
		}
		f.set(&a.current, m[1])
		return
	}
}

// close appends the open record to the result and starts a new one
func (a *accumulator) close() {
	if a.current.MessageID == nil {
		return
	}
	id := *a.current.MessageID
	a.entries = append(a.entries, a.current)
	a.seen[id] = struct{}{}
	a.current = Record{}
	log.Debug(log.M{Msg: "record closed", File: a.file, Line: a.line, MsgID: id})
}

func (a *accumulator) result() Document {
	a.close()
	return Document{
		DistinctMessageIDs: len(a.seen),
		Entries:            a.entries,
	}
}

// Extract reconstructs records from lines of text
func Extract(lines []string) Document {
	a := newAccumulator("")
	for _, l := range lines {
		a.feed(l)
	}
	return a.result()
}

// Scan reads r line by line and reconstructs records from it
func Scan(r io.Reader) (Document, error) {
	return scan(r, "")
}

// ExtractFile reconstructs records from the text file in path
func ExtractFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()
	return scan(f, path)
}

func scan(r io.Reader, name string) (Document, error) {
	a := newAccumulator(name)
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for s.Scan() {
		a.feed(s.Text())
	}
	if err := s.Err(); err != nil {
		return Document{}, err
	}
	d := a.result()
	log.Info(log.M{Msg: "extracted " + strconv.Itoa(len(d.Entries)) + " records", File: name})
	return d, nil
}
