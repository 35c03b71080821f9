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
	"os"
	"path/filepath"
	"strings"

	"github.com/defenxor/fortirule/internal/pkg/pdftotext"
	"github.com/defenxor/fortirule/internal/pkg/shared/fs"
	log "github.com/defenxor/fortirule/internal/pkg/shared/logger"
)

// Config holds the parameters of CreateEntries
type Config struct {
	Input     string // source document
	Output    string // file to write entries to
	Format    string // json, tsv or csv
	Converter pdftotext.Converter
	TempDir   string // where the intermediate text file is written
	KeepText  bool   // don't remove the intermediate text file
}

// IsText reports whether path already is plain text and needs no conversion
func IsText(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".txt")
}

// CreateEntries converts cfg.Input to text, extracts its records and writes
// them to cfg.Output. The output file is only written once the whole input
// has been processed.
func CreateEntries(cfg Config) (d Document, err error) {
	txt := cfg.Input
	if !IsText(cfg.Input) {
		if cfg.TempDir != "" {
			if err = fs.EnsureDir(cfg.TempDir); err != nil {
				return
			}
		}
		txt, err = fs.TempPath(cfg.TempDir, "fortilog-", ".txt")
		if err != nil {
			return
		}
		if err = cfg.Converter.Convert(cfg.Input, txt); err != nil {
			log.Error(log.M{Msg: err.Error(), File: cfg.Input})
			os.Remove(txt)
			return
		}
		if cfg.KeepText {
			log.Info(log.M{Msg: "text output kept", File: txt})
		} else {
			defer os.Remove(txt)
		}
	}

	d, err = ExtractFile(txt)
	if err != nil {
		return
	}
	b, err := Encode(d, cfg.Format)
	if err != nil {
		return
	}
	err = fs.WriteFileAtomic(b, cfg.Output)
	return
}
