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

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/defenxor/fortirule/internal/pkg/cmd"
	"github.com/defenxor/fortirule/internal/pkg/fortilog"
	"github.com/defenxor/fortirule/internal/pkg/pdftotext"
	log "github.com/defenxor/fortirule/internal/pkg/shared/logger"
	"github.com/defenxor/fortirule/internal/pkg/shared/pprof"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	progName = "fortilogparse"
)

var version string
var buildTime string

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.Version = strings.TrimSpace(version + " " + buildTime)
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file to use, defaults to "+progName+".json in the working or program directory")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug messages for tracing and troubleshooting")
	rootCmd.Flags().StringP("format", "f", fortilog.FormatJSON, "output format, can be json, tsv, or csv")
	rootCmd.Flags().String("converter", pdftotext.DefaultBinary, "document to text converter to run")
	rootCmd.Flags().StringSlice("converterArgs", pdftotext.DefaultArgs, "arguments passed to the converter before the input and output paths")
	rootCmd.Flags().String("tempDir", "", "directory for the intermediate text file, defaults to the system temp directory")
	rootCmd.Flags().Bool("keepText", false, "keep the intermediate text file")
	rootCmd.Flags().String("pprof", "", "profile the run, can be cpu, memory, mutex, or block")
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	viper.BindPFlag("converter", rootCmd.Flags().Lookup("converter"))
	viper.BindPFlag("converterArgs", rootCmd.Flags().Lookup("converterArgs"))
	viper.BindPFlag("tempDir", rootCmd.Flags().Lookup("tempDir"))
	viper.BindPFlag("keepText", rootCmd.Flags().Lookup("keepText"))
	viper.BindPFlag("pprof", rootCmd.Flags().Lookup("pprof"))
}

func initConfig() {
	config, _ := rootCmd.PersistentFlags().GetString("config")
	if err := cmd.InitConfig(progName, config); err != nil {
		cmd.Exit("Cannot read config file", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var ue *cmd.UsageError
		if errors.As(err, &ue) {
			fmt.Println(ue.Error())
			os.Exit(1)
		}
		cmd.Exit("Error returned from command", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   progName + " <input.pdf> <output.json>",
	Short: "Extract log message definitions from a FortiOS log reference",
	Long: `
Fortilogparse converts a FortiOS log message reference document to text and
extracts the Message ID, Description, Meaning, Type, Category, and Severity of
every log message it defines.`,
	Args:          cmd.PositionalArgs(progName, "<input.pdf>", "<output.json>"),
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(c *cobra.Command, args []string) {
		if err := log.Setup(viper.GetBool("debug")); err != nil {
			cmd.Exit("Cannot setup logger", err)
		}
		prof, err := pprof.GetProfiler(viper.GetString("pprof"), "")
		if err != nil {
			cmd.Exit("Cannot start profiler", err)
		}
		defer prof.Stop()

		cfg := fortilog.Config{
			Input:     args[0],
			Output:    args[1],
			Format:    viper.GetString("format"),
			Converter: pdftotext.New(viper.GetString("converter"), viper.GetStringSlice("converterArgs")),
			TempDir:   viper.GetString("tempDir"),
			KeepText:  viper.GetBool("keepText"),
		}
		if err := run(cmd.NewCommand(os.Stdout), cfg); err != nil {
			var nf *cmd.NotFoundError
			if errors.As(err, &nf) {
				fmt.Println(nf.Error())
				prof.Stop()
				os.Exit(1)
			}
			prof.Stop()
			cmd.Exit("Cannot extract log messages", err)
		}
	},
}

func run(c *cmd.Command, cfg fortilog.Config) error {
	if err := cmd.RequireFile("Input", cfg.Input); err != nil {
		return err
	}
	d, err := fortilog.CreateEntries(cfg)
	if err != nil {
		return err
	}
	c.Logf("Data successfully extracted from '%s' and saved as '%s'!", cfg.Input, cfg.Output)
	c.Logf("Total distinct Message IDs: %d", d.DistinctMessageIDs)
	return nil
}
