/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides the config command, which inspects the casrc
// settings and macros.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/cahute/casrc"
	"bennypowers.dev/cahute/fs"
	"bennypowers.dev/cahute/internal/logger"
)

// ErrNotSet is returned by get when the property is not set.
var ErrNotSet = errors.New("property not set")

// Cmd is the config cobra command.
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect casrc settings",
	Long:  `Inspect the settings and macros loaded from the casrc file.`,
}

func init() {
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(getCmd)
}

// loadDatabase opens the casrc file selected by --casrc or CAHUTE_CASRC,
// or the default one, logging at the --log level.
func loadDatabase(cmd *cobra.Command, filesystem fs.FileSystem) (*casrc.Database, error) {
	log := logger.New(cmd.ErrOrStderr(), logger.ParseLevel(viper.GetString("log")))

	db, loaded, err := casrc.Open(filesystem, viper.GetString("casrc"))
	if err != nil {
		return nil, fmt.Errorf("error loading casrc: %w", err)
	}
	if loaded == "" {
		log.Warn("no casrc file found")
	} else {
		log.Info("casrc: %s", loaded)
	}
	return db, nil
}
