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
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/defenxor/fortirule/internal/pkg/shared/str"

	"github.com/dogenzaka/tsv"
	"github.com/gocarina/gocsv/v2"
)

// Supported output formats
const (
	FormatJSON = "json"
	FormatTSV  = "tsv"
	FormatCSV  = "csv"
)

// ErrNoEntries is returned when the input document lacks the entries list
var ErrNoEntries = errors.New("input has no \"entries\" list")

// row is the flat representation of a Record used by TSV and CSV files
type row struct {
	MessageID   string `tsv:"message_id" csv:"message_id"`
	Description string `tsv:"description" csv:"description"`
	Meaning     string `tsv:"meaning" csv:"meaning"`
	Type        string `tsv:"type" csv:"type"`
	Category    string `tsv:"category" csv:"category"`
	Severity    string `tsv:"severity" csv:"severity"`
}

func toRow(r Record) row {
	return row{
		MessageID:   str.Deref(r.MessageID),
		Description: str.Deref(r.Description),
		Meaning:     str.Deref(r.Meaning),
		Type:        str.Deref(r.Type),
		Category:    str.Deref(r.Category),
		Severity:    str.Deref(r.Severity),
	}
}

func (w row) record() Record {
	return NewRecord(w.MessageID, w.Description, w.Meaning, w.Type, w.Category, w.Severity)
}

// Encode serializes d in the given format
func Encode(d Document, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON, "":
		return encodeJSON(d)
	case FormatTSV:
		return encodeTSV(d)
	case FormatCSV:
		return encodeCSV(d)
	}
	return nil, fmt.Errorf("unsupported format %q, valid option is json|tsv|csv", format)
}

func encodeJSON(d Document) ([]byte, error) {
	if d.Entries == nil {
		d.Entries = []Record{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func toRows(d Document) []row {
	rows := make([]row, 0, len(d.Entries))
	for _, e := range d.Entries {
		rows = append(rows, toRow(e))
	}
	return rows
}

func encodeTSV(d Document) ([]byte, error) {
	rows := toRows(d)
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = '\t'
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(w)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeCSV(d Document) ([]byte, error) {
	rows := toRows(d)
	return gocsv.MarshalBytes(&rows)
}

// ReadJSON decodes a document in the extractor's JSON format from r
func ReadJSON(r io.Reader) (Document, error) {
	var raw struct {
		DistinctMessageIDs *int      `json:"distinct_message_ids"`
		Entries            *[]Record `json:"entries"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Document{}, err
	}
	if raw.Entries == nil {
		return Document{}, ErrNoEntries
	}
	d := Document{Entries: *raw.Entries}
	if raw.DistinctMessageIDs != nil {
		d.DistinctMessageIDs = *raw.DistinctMessageIDs
	} else {
		d.DistinctMessageIDs = CountDistinct(d.Entries)
	}
	return d, nil
}

// ReadTSV decodes a document from TSV rows with a header line
func ReadTSV(r io.Reader) (Document, error) {
	rec := row{}
	parser, err := tsv.NewParser(r, &rec)
	if err == io.EOF {
		return Document{}, ErrNoEntries
	}
	if err != nil {
		return Document{}, err
	}
	parser.Reader.LazyQuotes = true

	d := Document{Entries: []Record{}}
	for {
		eof, err := parser.Next()
		if err != nil {
			return Document{}, err
		}
		if eof {
			break
		}
		d.Entries = append(d.Entries, rec.record())
		rec = row{}
	}
	d.DistinctMessageIDs = CountDistinct(d.Entries)
	return d, nil
}

// LoadDocument reads the document stored in path, files with .tsv extension are
// parsed as TSV, everything else as JSON
func LoadDocument(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return ReadTSV(f)
	}
	return ReadJSON(f)
}
