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

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/defenxor/fortirule/internal/pkg/shared/fs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Command is command-line utility, used for reporting results to the user.
type Command struct {
	out io.Writer
}

// NewCommand creates a new Command and return its pointer.
func NewCommand(out io.Writer) *Command {
	return &Command{out}
}

// Logf formats and logs the message followed by a new line.
func (c *Command) Logf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", a...)
}

// UsageError is returned when a program is invoked with the wrong arguments
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return "Usage: " + e.Usage
}

// PositionalArgs requires exactly the named positional arguments
func PositionalArgs(prog string, names ...string) cobra.PositionalArgs {
	usage := prog
	for _, n := range names {
		usage += " " + n
	}
	return func(_ *cobra.Command, args []string) error {
		if len(args) != len(names) {
			return &UsageError{Usage: usage}
		}
		return nil
	}
}

// NotFoundError is returned when an input file doesn't exist
type NotFoundError struct {
	Kind string
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s file '%s' not found!", e.Kind, e.Path)
}

// RequireFile returns a *NotFoundError if path isn't an existing file
func RequireFile(kind, path string) error {
	if !fs.FileExist(path) {
		return &NotFoundError{Kind: kind, Path: path}
	}
	return nil
}

// InitConfig sets up viper to read settings from environment variables prefixed
// with progName and from the config file. When configFile is empty, progName.json
// is looked up in the working directory and in the program directory.
func InitConfig(progName, configFile string) error {
	viper.SetEnvPrefix(progName)
	viper.AutomaticEnv()

	if configFile != "" {
		if !fs.FileExist(configFile) {
			return &NotFoundError{Kind: "Config", Path: configFile}
		}
		viper.SetConfigFile(configFile)
		return viper.ReadInConfig()
	}

	viper.SetConfigName(progName)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	if dir, err := fs.GetDir(false); err == nil {
		viper.AddConfigPath(dir)
	}
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}
	return nil
}

// Exit prints msg and err then terminates the program with status 1
func Exit(msg string, err error) {
	if err == nil {
		fmt.Println("Exiting: " + msg)
	} else {
		fmt.Println("Exiting: " + msg + ": " + err.Error())
	}
	os.Exit(1)
}
