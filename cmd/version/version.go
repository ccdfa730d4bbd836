/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for cahute.
package version

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/cahute/internal/version"
)

// Cmd prints version and build information.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for cahute.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json, yaml)")
}

func run(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("error reading format flag: %w", err)
	}
	return Print(cmd.OutOrStdout(), format, version.Current())
}

// Print writes build information in the given format.
func Print(w io.Writer, format string, build version.Build) error {
	switch format {
	case "json":
		out, err := json.MarshalIndent(build, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling version info: %w", err)
		}
		fmt.Fprintln(w, string(out))
	case "yaml":
		out, err := yaml.Marshal(build)
		if err != nil {
			return fmt.Errorf("error marshaling version info: %w", err)
		}
		fmt.Fprint(w, string(out))
	case "text", "":
		fmt.Fprintf(w, "cahute %s (%s, %s)\n", build.Version, build.GoVersion, build.Platform)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	return nil
}
