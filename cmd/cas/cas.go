/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cas provides the cas command, which reads a CaS command line and
// prints the parameters it resolves to.
package cas

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	caslib "bennypowers.dev/cahute/cas"
	"bennypowers.dev/cahute/casrc"
	"bennypowers.dev/cahute/fs"
	"bennypowers.dev/cahute/internal/logger"
	"bennypowers.dev/cahute/internal/version"
)

// Cmd is the cas cobra command. Its arguments are read by the CaS option
// tokenizer rather than by cobra, so the casrc file and the log level can
// only be chosen with CAHUTE_CASRC and CAHUTE_LOG here.
var Cmd = &cobra.Command{
	Use:                "cas [options] <input file or device path>",
	Short:              "Resolve a CaS command line against the casrc settings",
	Long:               `Tokenize a CaS command line, apply it to the casrc settings and print the resolved transfer parameters as YAML.`,
	DisableFlagParsing: true,
	SilenceErrors:      true,
	RunE:               run,
}

func run(cmd *cobra.Command, args []string) error {
	argv := append([]string{"cas"}, args...)
	level := logger.ParseLevel(viper.GetString("log"))
	return Run(fs.NewOSFileSystem(), argv, viper.GetString("casrc"), level, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// Run executes a CaS command line. argv[0] is the program name. Diagnostics
// are logged at level, or at the info level when -d is given; help and
// version texts go to stderr and the resolved arguments to stdout.
func Run(filesystem fs.FileSystem, argv []string, casrcPath string, level logger.Level, stdout, stderr io.Writer) error {
	inv := caslib.Tokenize(argv)

	log, closeLog, err := newLogger(filesystem, inv, level, stderr)
	if err != nil {
		logger.New(stderr, level).Fatal("%v", err)
		return err
	}
	defer closeLog()

	for _, w := range inv.Warnings {
		log.Warn("%v", w)
	}

	if inv.Version {
		fmt.Fprint(stderr, caslib.VersionMessage(version.Get()))
		return nil
	}

	if inv.Help {
		for _, p := range inv.Problems {
			log.Error("%v", p)
		}
		fmt.Fprint(stderr, caslib.Usage(argv[0]))
		return inv.Err()
	}

	if inv.Verbose {
		fmt.Fprintln(stderr, caslib.Banner(version.Get()))
	}

	if err := resolve(filesystem, inv, casrcPath, log, stdout); err != nil {
		log.Fatal("%v", err)
		return err
	}
	return nil
}

func resolve(filesystem fs.FileSystem, inv *caslib.Invocation, casrcPath string, log *logger.Logger, stdout io.Writer) error {
	db, loaded, err := casrc.Open(filesystem, casrcPath)
	if err != nil {
		return fmt.Errorf("error loading casrc: %w", err)
	}
	if loaded == "" {
		log.Info("no casrc file found")
	} else {
		log.Info("casrc: %s", loaded)
	}

	resolved, err := caslib.Build(db, inv, log)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(resolved); err != nil {
		return fmt.Errorf("error encoding arguments: %w", err)
	}
	return enc.Close()
}

// newLogger logs at the info level when -d was given, to the file it names
// if any. Otherwise level applies.
func newLogger(filesystem fs.FileSystem, inv *caslib.Invocation, level logger.Level, stderr io.Writer) (*logger.Logger, func(), error) {
	if !inv.Debug {
		return logger.New(stderr, level), func() {}, nil
	}
	if inv.DebugPath == "" {
		return logger.New(stderr, logger.LevelInfo), func() {}, nil
	}

	f, err := filesystem.Create(inv.DebugPath)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening debug file %s: %w", inv.DebugPath, err)
	}
	return logger.New(f, logger.LevelInfo), func() { f.Close() }, nil
}
