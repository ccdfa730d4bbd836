/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for cahute.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/cahute/cmd/cas"
	"bennypowers.dev/cahute/cmd/config"
	"bennypowers.dev/cahute/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "cahute",
	Short: "Resolve command lines and casrc settings for calculator tools",
	Long: `cahute reads casrc settings and macros, tokenizes command lines the way
the calculator tools do, and prints the parameters they resolve to.

The casrc file is taken from --casrc or CAHUTE_CASRC, then from ~/.casrc or
/etc/system.casrc. Diagnostics are logged at the --log or CAHUTE_LOG level.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("casrc", "", "Read settings from this casrc file instead of the default ones")
	rootCmd.PersistentFlags().StringP("log", "l", "warning", "Logging level: info, warning, error, fatal, none")

	viper.SetEnvPrefix("cahute")
	_ = viper.BindEnv("casrc")
	_ = viper.BindEnv("log")
	_ = viper.BindPFlag("casrc", rootCmd.PersistentFlags().Lookup("casrc"))
	_ = viper.BindPFlag("log", rootCmd.PersistentFlags().Lookup("log"))

	rootCmd.AddCommand(cas.Cmd)
	rootCmd.AddCommand(config.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
