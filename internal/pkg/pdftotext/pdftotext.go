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

package pdftotext

import (
	"errors"
	"fmt"

	log "github.com/defenxor/fortirule/internal/pkg/shared/logger"
	"github.com/defenxor/fortirule/internal/pkg/shared/proc"
)

// DefaultBinary is the poppler-utils converter
const DefaultBinary = "pdftotext"

// DefaultArgs keeps the physical layout so fields stay in reading order
var DefaultArgs = []string{"-layout"}

// ErrConversion wraps every failure of the external converter
var ErrConversion = errors.New("text conversion failed")

// Converter turns the document in src into a plain text file in dst
type Converter interface {
	Convert(src, dst string) error
}

// Command runs an external converter as `Binary Args... src dst`
type Command struct {
	Binary string
	Args   []string
}

// New returns a Command for binary, falling back to the defaults for empty values
func New(binary string, args []string) *Command {
	if binary == "" {
		binary = DefaultBinary
	}
	if args == nil {
		args = DefaultArgs
	}
	return &Command{Binary: binary, Args: args}
}

// Convert runs the converter and waits for it to finish
func (c *Command) Convert(src, dst string) error {
	if _, ok := proc.LookPath(c.Binary); !ok {
		return fmt.Errorf("%w: %s not found, install poppler-utils or set --converter", ErrConversion, c.Binary)
	}
	args := make([]string, 0, len(c.Args)+2)
	args = append(args, c.Args...)
	args = append(args, src, dst)
	log.Debug(log.M{Msg: "running " + c.Binary + " " + fmt.Sprint(args), File: src})
	if err := proc.Run(c.Binary, args...); err != nil {
		return fmt.Errorf("%w: %v", ErrConversion, err)
	}
	return nil
}
