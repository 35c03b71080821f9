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
	log "github.com/defenxor/fortirule/internal/pkg/shared/logger"
	"github.com/defenxor/fortirule/internal/pkg/shared/pprof"
	"github.com/defenxor/fortirule/internal/pkg/wazuh"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	progName = "wazuhgen"
)

var version string
var buildTime string

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.Version = strings.TrimSpace(version + " " + buildTime)
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file to use, defaults to "+progName+".json in the working or program directory")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug messages for tracing and troubleshooting")
	rootCmd.Flags().IntP("headerId", "i", wazuh.DefaultHeaderID, "ID of the header rule, the generated rules are numbered after it")
	rootCmd.Flags().Int("headerLevel", wazuh.DefaultHeaderLevel, "level of the header rule, 0 to 16")
	rootCmd.Flags().String("headerDescription", wazuh.DefaultHeaderDescription, "description of the header rule")
	rootCmd.Flags().StringP("decoder", "d", wazuh.DefaultDecoderName, "Wazuh decoder the rules apply to")
	rootCmd.Flags().StringP("groupName", "g", wazuh.DefaultGroupName, "name of the enclosing rule group")
	rootCmd.Flags().StringP("tagPrefix", "t", wazuh.DefaultTagPrefix, "prefix of the generated group tags")
	rootCmd.Flags().String("fallback", wazuh.DefaultFallback, "rule description used for entries without a message meaning")
	rootCmd.Flags().String("pprof", "", "profile the run, can be cpu, memory, mutex, or block")
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("headerId", rootCmd.Flags().Lookup("headerId"))
	viper.BindPFlag("headerLevel", rootCmd.Flags().Lookup("headerLevel"))
	viper.BindPFlag("headerDescription", rootCmd.Flags().Lookup("headerDescription"))
	viper.BindPFlag("decoder", rootCmd.Flags().Lookup("decoder"))
	viper.BindPFlag("groupName", rootCmd.Flags().Lookup("groupName"))
	viper.BindPFlag("tagPrefix", rootCmd.Flags().Lookup("tagPrefix"))
	viper.BindPFlag("fallback", rootCmd.Flags().Lookup("fallback"))
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
	Use:   progName + " <input.json> <output.xml>",
	Short: "Generate Wazuh rules from extracted FortiOS log messages",
	Long: `
Wazuhgen reads the entries produced by fortilogparse and writes a Wazuh rule
file with one rule per log message, all children of a single header rule.`,
	Args:          cmd.PositionalArgs(progName, "<input.json>", "<output.xml>"),
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

		opts := wazuh.Options{
			HeaderID:          viper.GetInt("headerId"),
			HeaderLevel:       wazuh.Int(viper.GetInt("headerLevel")),
			HeaderDescription: viper.GetString("headerDescription"),
			DecoderName:       viper.GetString("decoder"),
			GroupName:         viper.GetString("groupName"),
			TagPrefix:         viper.GetString("tagPrefix"),
			Fallback:          viper.GetString("fallback"),
		}
		if err := run(cmd.NewCommand(os.Stdout), args[0], args[1], opts); err != nil {
			prof.Stop()
			var nf *cmd.NotFoundError
			if errors.As(err, &nf) {
				fmt.Println(nf.Error())
				os.Exit(1)
			}
			cmd.Exit("Cannot generate Wazuh rules", err)
		}
	},
}

func run(c *cmd.Command, input, output string, opts wazuh.Options) error {
	if err := cmd.RequireFile("JSON", input); err != nil {
		return err
	}
	rs, err := wazuh.CreateRules(input, output, opts)
	if err != nil {
		return err
	}
	c.Logf("Wazuh rules generated in '%s' with %d rules (including header).", output, rs.Count())
	return nil
}
