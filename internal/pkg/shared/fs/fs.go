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

package fs

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/defenxor/fortirule/internal/pkg/shared/idgen"

	"github.com/kardianos/osext"
)

// FileExist check if path exist and is a regular file
func FileExist(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}

// GetDir returns the program root directory
func GetDir(devEnv bool) (string, error) {
	dir, err := osext.ExecutableFolder()
	if devEnv {
		keyword := "fortirule"
		wd, _ := os.Getwd()
		if i := strings.Index(wd, keyword); i > -1 {
			dir = wd[:i+len(keyword)]
		}
	}
	return dir, err
}

// TempPath returns a unique, not yet existing path in dir that ends with ext
func TempPath(dir, prefix, ext string) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	for {
		id, err := idgen.GenerateID()
		if err != nil {
			return "", err
		}
		p := filepath.Join(dir, prefix+id+ext)
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return p, nil
		}
	}
}

// WriteFileAtomic writes b into a temporary file next to filename and then
// renames it to filename, so readers never see a partially written file
func WriteFileAtomic(b []byte, filename string) (err error) {
	tmp, err := TempPath(filepath.Dir(filename), "."+filepath.Base(filename)+".", ".tmp")
	if err != nil {
		return err
	}
	f, err := os.OpenFile(tmp, os.O_EXCL|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()
	if err = WriteBytes(b, f); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, filename)
}

// WriteBytes writes b to w
func WriteBytes(b []byte, w io.Writer) error {
	_, err := w.Write(b)
	return err
}

// EnsureDir creates directory if it doesnt exist
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, os.FileMode(0700))
}
