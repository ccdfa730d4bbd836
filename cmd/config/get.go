/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/cahute/casrc"
	"bennypowers.dev/cahute/fs"
	"bennypowers.dev/cahute/resolver"
)

var getCmd = &cobra.Command{
	Use:   "get <setting> [property]",
	Short: "Print the effective value of a property",
	Long: `Print the effective value of a property of a setting.

With --default, the named general setting provides the properties the setting
does not mention. Without a property, every effective property is listed.
The command fails when the property is not set.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGet,
}

func init() {
	getCmd.Flags().String("default", "", "General setting to fall back on, e.g. 'in' for 'in.com'")
}

func runGet(cmd *cobra.Command, args []string) error {
	general, _ := cmd.Flags().GetString("default")

	db, err := loadDatabase(cmd, fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	property := ""
	if len(args) > 1 {
		property = args[1]
	}
	return Get(cmd.OutOrStdout(), db, general, args[0], property)
}

// Get writes the effective value of property on setting, falling back on
// general when it is not empty. An empty property lists every effective
// property of the chain.
func Get(w io.Writer, db *casrc.Database, general, setting, property string) error {
	chain := resolver.Lookup(db, setting, "")
	if general != "" {
		chain = resolver.Lookup(db, general, setting)
	}

	if property == "" {
		for _, p := range chain.Effective() {
			fmt.Fprintln(w, FormatProperties([]casrc.Property{p}))
		}
		return nil
	}

	value, ok := chain.Get(property)
	if !ok {
		return fmt.Errorf("%w: %s on %s", ErrNotSet, casrc.Fold(property), casrc.Fold(setting))
	}
	fmt.Fprintln(w, value)
	return nil
}
