/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cas

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"bennypowers.dev/cahute/casrc"
	"bennypowers.dev/cahute/internal/logger"
	"bennypowers.dev/cahute/resolver"
)

// ListKinds are the kinds of data that have their own "list.<kind>" setting.
var ListKinds = []string{
	"oldprog", "editor", "fn", "ssmono", "sscol", "varmem", "defmem", "allmem",
	"sd", "lr", "matrix", "rectab", "fntab", "poly", "simul", "zoom", "dyna",
	"graphs", "range", "backup", "end", "raw", "text", "desc",
}

// modelAliases maps model properties to models, checked in order.
var modelAliases = []struct {
	model Model
	names []string
}{
	{Model7700, []string{"fx7700", "cfx7700", "7700", "fx7", "cfx7", "7"}},
	{Model9700, []string{"fx9700", "cfx9700", "9700", "fx9", "cfx9", "9"}},
	{Model9750, []string{"fx9750", "cfx9750", "9750"}},
	{Model9800, []string{"fx9800", "cfx9800", "9800", "fx8", "cfx8", "8"}},
	{Model9850, []string{"fx9850", "cfx9850", "9850", "fx5", "cfx5", "5"}},
	{Model9950, []string{"fx9950", "cfx9950", "9950"}},
	{ModelAny, []string{"any", "*"}},
}

var serialSpeeds = []int{1200, 2400, 4800, 9600, 19200, 38400, 57600, 115200}

// Apply replaces the in, out, list and model settings with the attributes
// given on the command line.
func (inv *Invocation) Apply(db *casrc.Database) {
	for _, def := range []struct {
		setting string
		attr    *string
	}{
		{"in", inv.InputAttr},
		{"out", inv.OutputAttr},
		{"list", inv.ListAttr},
		{"model", inv.ModelAttr},
	} {
		if def.attr != nil {
			db.DefineSetting(def.setting, *def.attr, true)
		}
	}
}

// Build applies the invocation to the database and resolves the parameters
// of the run.
func Build(db *casrc.Database, inv *Invocation, log *logger.Logger) (*Args, error) {
	inv.Apply(db)

	args := &Args{
		Model:       DetectModel(db),
		ListFiles:   inv.ListFiles,
		ListTypes:   inv.ListTypes,
		Conversions: inv.Conversions,
		Verbose:     inv.Verbose,
		Pager:       inv.Pager,
	}
	log.Info("model: %q", args.Model)

	in, err := ResolveMedium(db, "in", inv.InputPath)
	if err != nil {
		return nil, err
	}
	args.In = *in
	log.Info("input: %s medium, format %s", in.Type, in.Format)

	if inv.Output {
		out, err := ResolveMedium(db, "out", inv.OutputPath)
		if err != nil {
			return nil, err
		}
		args.Out = out
		log.Info("output: %s medium, format %s", out.Type, out.Format)
	}

	if inv.ListFiles {
		args.List = make(map[string]ListFormat, len(ListKinds))
		for _, kind := range ListKinds {
			args.List[kind] = ResolveList(db, kind)
		}
	}

	return args, nil
}

// DetectModel reads the model from the "model" setting.
func DetectModel(db *casrc.Database) Model {
	for _, alias := range modelAliases {
		for _, name := range alias.names {
			if db.Has("model", name) {
				return alias.model
			}
		}
	}
	return ModelUnknown
}

// ResolveMedium resolves the medium described by the setting named prefix
// ("in" or "out") for the given path.
//
// The format is taken from the general setting, then guessed from the path.
// Format-specific properties come from "<prefix>.<format>", falling back to
// the general setting.
func ResolveMedium(db *casrc.Database, prefix, path string) (*Medium, error) {
	general, _ := db.Setting(prefix)

	format := formatFromSetting(general)
	if format == "" {
		format = formatFromPath(path)
	}
	if format == "" {
		return nil, fmt.Errorf("%w for %s", ErrMissingMediumType, prefix)
	}

	chain := resolver.Lookup(db, prefix, prefix+"."+string(format))
	medium := &Medium{Format: format, Path: path}

	if format == FormatCOM {
		medium.Type = MediumCOM
		serial, err := resolveSerial(chain, prefix)
		if err != nil {
			return nil, err
		}
		medium.Serial = serial
		return medium, nil
	}

	medium.Type = MediumFile
	medium.File = resolveFile(chain, format)
	return medium, nil
}

func formatFromSetting(s *casrc.Setting) Format {
	for _, f := range fileFormats {
		if _, ok := s.Get(string(f)); ok {
			return f
		}
	}
	if _, ok := s.Get(string(FormatCOM)); ok {
		return FormatCOM
	}
	return ""
}

func formatFromPath(path string) Format {
	if isSerialPath(path) {
		return FormatCOM
	}

	ext := Format(strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")))
	if slices.Contains(fileFormats, ext) {
		return ext
	}
	return ""
}

// isSerialPath recognizes "/dev/..." device paths and "COMn" port names.
func isSerialPath(path string) bool {
	if strings.HasPrefix(path, "/dev/") {
		return true
	}
	return len(path) > 3 && strings.HasPrefix(path, "COM") && unicode.IsDigit(rune(path[3]))
}

func resolveSerial(chain resolver.Chain, prefix string) (*Serial, error) {
	serial := &Serial{Parity: ParityOff}

	if raw, ok := chain.Get("baud"); ok {
		speed, err := strconv.Atoi(raw)
		if err != nil || !slices.Contains(serialSpeeds, speed) {
			return nil, fmt.Errorf("%w baud=%s for %s", ErrInvalidProperty, raw, prefix)
		}
		serial.Speed = speed
	}

	if raw, ok := chain.Get("parity"); ok && raw != "" {
		switch raw[0] {
		case 'e', 'E':
			serial.Parity = ParityEven
		case 'o', 'O':
			serial.Parity = ParityOdd
		}
	}

	if raw, ok := chain.Get("stop"); ok {
		switch raw {
		case "1":
			serial.StopBits = 1
		case "2":
			serial.StopBits = 2
		default:
			return nil, fmt.Errorf("%w stop=%s for %s", ErrInvalidProperty, raw, prefix)
		}
	}

	serial.DTR = chain.Has("dtr")
	serial.RTS = chain.Has("rts")

	switch {
	case chain.Any("7700", "9700", "9800"):
		serial.Protocol = ProtocolCAS40
	case chain.Any("9750", "9850", "9950"):
		serial.Protocol = ProtocolCAS50
	case chain.Has("afx"):
		serial.Protocol = ProtocolCAS100
	case chain.Any("cp", "cp300", "cp330", "cp330+"):
		serial.Protocol = ProtocolCAS300
	}

	serial.Pause = chain.Has("pause")
	serial.Inline = chain.Has("inline")
	serial.Overwrite = chain.Has("overwrite")
	return serial, nil
}

func resolveFile(chain resolver.Chain, format Format) *FileOptions {
	opts := &FileOptions{}

	switch format {
	case FormatCTF:
		opts.Glossary = chain.Has("glossary")
		opts.Nice = chain.Has("nice")

	case FormatCAS:
		switch {
		case chain.Any("7700", "9700", "9800"):
			opts.HeaderFormat = HeaderCAS40
		case chain.Any("9750", "9850", "9950"):
			opts.HeaderFormat = HeaderCAS50
		case chain.Any("raw", "uncooked"):
			opts.HeaderFormat = HeaderRaw
		}
		opts.Status = chain.Has("status")

	case FormatBMP, FormatGIF:
		opts.Inverse = chain.Any("inv", "inverse")
	}

	return opts
}

// ResolveList resolves the listing options of one kind of data, with
// "list.<kind>" overriding "list".
func ResolveList(db *casrc.Database, kind string) ListFormat {
	chain := resolver.Lookup(db, "list", "list."+kind)
	num := chain.Value("num", "")

	var format ListFormat
	switch {
	case chain.Any("hex", "hexadecimal") || num == "hex" || num == "hexadecimal":
		format.NumberFormat = NumberHex
	case chain.Any("dec", "decimal") || num == "dec" || num == "decimal":
		format.NumberFormat = NumberDec
	case chain.Any("oct", "octal") || num == "oct" || num == "octal":
		format.NumberFormat = NumberOct
	case chain.Any("spc", "space"):
		format.NumberFormat = NumberSpace
	default:
		format.NumberFormat = NumberBasic
	}

	format.Nice = chain.Has("nice")
	format.Password = chain.Any("pw", "password")
	return format
}
