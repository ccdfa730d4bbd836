/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/cahute/casrc"
	"bennypowers.dev/cahute/fs"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the settings and macros",
	Long: `Print the settings and macros of the casrc file.

By default each entry lists the properties that end up set. With --raw the
recorded diffs are printed instead, including unset properties.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().String("match", "", "Only show entries whose name matches this glob, e.g. 'list.*'")
	showCmd.Flags().StringP("format", "f", "text", "Output format: text, yaml, json")
	showCmd.Flags().Bool("macros", false, "Show macros instead of settings")
	showCmd.Flags().Bool("raw", false, "Show every recorded diff")
}

// ShowOptions selects what show prints.
type ShowOptions struct {
	Match  string
	Format string
	Macros bool
	Raw    bool
}

func runShow(cmd *cobra.Command, args []string) error {
	var opts ShowOptions
	opts.Match, _ = cmd.Flags().GetString("match")
	opts.Format, _ = cmd.Flags().GetString("format")
	opts.Macros, _ = cmd.Flags().GetBool("macros")
	opts.Raw, _ = cmd.Flags().GetBool("raw")

	db, err := loadDatabase(cmd, fs.NewOSFileSystem())
	if err != nil {
		return err
	}
	return Show(cmd.OutOrStdout(), db, opts)
}

// Show writes the entries of db selected by opts to w.
func Show(w io.Writer, db *casrc.Database, opts ShowOptions) error {
	if opts.Match != "" && !doublestar.ValidatePattern(opts.Match) {
		return fmt.Errorf("invalid match pattern: %s", opts.Match)
	}

	entries := db.Settings()
	if opts.Macros {
		entries = db.Macros()
	}

	selected := make([]*casrc.Setting, 0, len(entries))
	for _, s := range entries {
		if opts.Match != "" {
			if ok, _ := doublestar.Match(casrc.Fold(opts.Match), s.Name); !ok {
				continue
			}
		}
		if !opts.Raw {
			s = &casrc.Setting{Name: s.Name, Properties: s.Effective()}
		}
		selected = append(selected, s)
	}

	switch opts.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(selected)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(selected); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		for _, s := range selected {
			fmt.Fprintf(w, "%s = %s\n", s.Name, FormatProperties(s.Properties))
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", opts.Format)
	}
}

// FormatProperties renders properties in casrc component syntax.
func FormatProperties(props []casrc.Property) string {
	parts := make([]string, 0, len(props))
	for _, p := range props {
		var b strings.Builder
		if p.Unset {
			b.WriteString("no-")
		}
		b.WriteString(p.Name)
		if p.Value != "" {
			b.WriteString("=")
			b.WriteString(p.Value)
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, ", ")
}
