/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cas

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/cahute/options"
)

// ShortOptions are the short options understood by CaS.
var ShortOptions = []options.Short{
	{Char: 'h'},
	{Char: '?'},
	{Char: 'V'},
	{Char: 'i', Flags: options.AttributeRequired},
	{Char: 'o', Flags: options.ParameterRequired | options.AttributeOptional},
	{Char: 'l', Flags: options.AttributeOptional},
	{Char: 'm', Flags: options.AttributeRequired},
	{Char: 'c', Flags: options.AttributeRequired},
	{Char: 'C', Flags: options.AttributeRequired},
	{Char: 't'},
	{Char: 'e'},
	{Char: 'p'},
	{Char: 'd', Flags: options.AttributeOptional},
	{Char: 'v'},
}

// LongOptions are the long options understood by CaS.
var LongOptions = []options.Long{
	{Name: "help", Char: 'h'},
	{Name: "version", Char: 'V'},
	{Name: "input", Flags: options.AttributeRequired, Char: 'i'},
	{Name: "infile", Flags: options.AttributeRequired, Char: 'i'},
	{Name: "output", Flags: options.ParameterRequired | options.AttributeOptional, Char: 'o'},
	{Name: "outfile", Flags: options.ParameterRequired | options.AttributeOptional, Char: 'o'},
	{Name: "list", Flags: options.AttributeOptional, Char: 'l'},
	{Name: "display", Flags: options.AttributeOptional, Char: 'l'},
	{Name: "model", Flags: options.AttributeRequired, Char: 'm'},
	{Name: "convert", Flags: options.AttributeRequired, Char: 'c'},
	{Name: "convert-after", Flags: options.AttributeRequired, Char: 'C'},
	{Name: "terse", Char: 't'},
	{Name: "castle", Char: 'e'},
	{Name: "pager", Char: 'p'},
	{Name: "debug", Flags: options.AttributeOptional, Char: 'd'},
	{Name: "verbose", Char: 'v'},
}

// optionNames is how options are named in diagnostics.
var optionNames = map[rune]string{
	'i': "-i, --input",
	'o': "-o, --output",
	'l': "-l, --list",
	'm': "-m, --model",
	'c': "-c, --convert",
	'C': "-C, --convert-after",
}

// Invocation is a tokenized CaS command line, before any casrc resolution.
type Invocation struct {
	Help    bool
	Version bool
	Verbose bool
	Pager   bool

	// Debug enables info logging, to DebugPath when it is set.
	Debug     bool
	DebugPath string

	// Raw attributes of -i, -o, -l and -m, in casrc component syntax.
	InputAttr  *string
	OutputAttr *string
	ListAttr   *string
	ModelAttr  *string

	InputPath  string
	Output     bool
	OutputPath string
	ListFiles  bool
	ListTypes  bool

	Conversions []Conversion

	// Problems are usage errors; any of them makes the run print the help.
	Problems []error

	// Warnings are reported but do not stop the run.
	Warnings []error
}

// Err returns the usage problems joined under ErrUsage, or nil.
func (inv *Invocation) Err() error {
	if len(inv.Problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrUsage, errors.Join(inv.Problems...))
}

// Tokenize reads a CaS command line. argv[0] is the program name.
func Tokenize(argv []string) *Invocation {
	inv := &Invocation{}
	p := options.NewParser(options.StyleCAS, ShortOptions, LongOptions, argv)

	for {
		res, err := p.Next()
		if errors.Is(err, options.Done) {
			break
		}

		var missing *options.MissingError
		if errors.As(err, &missing) {
			if name, ok := optionNames[missing.Option]; ok && missing.Option != 'l' {
				what := "attribute"
				if missing.Option == 'o' {
					what = "attribute or parameter"
				}
				inv.problem("%s: missing %s", name, what)
			}
			continue
		}

		inv.apply(res)
	}

	positional := p.Positional()
	if len(positional) != 1 {
		inv.Problems = append(inv.Problems, fmt.Errorf("expected one input path, got %d", len(positional)))
		inv.Help = true
	} else {
		inv.InputPath = positional[0]
	}

	return inv
}

func (inv *Invocation) problem(format string, args ...any) {
	inv.Problems = append(inv.Problems, fmt.Errorf(format, args...))
	inv.Help = true
}

func (inv *Invocation) apply(res options.Result) {
	attr := func() *string {
		if !res.HasAttribute {
			return nil
		}
		s := res.Attribute
		return &s
	}

	switch res.Option {
	case 'h', '?':
		inv.Help = true

	case 'V':
		inv.Version = true

	case 'i':
		if inv.InputAttr != nil {
			inv.problem("%s: duplicate option", optionNames['i'])
			return
		}
		inv.InputAttr = attr()

	case 'o':
		if inv.Output {
			inv.problem("%s: duplicate option", optionNames['o'])
			return
		}
		inv.Output = true
		inv.OutputAttr = attr()
		inv.OutputPath = res.Parameter

	case 'l':
		if inv.ListFiles {
			inv.problem("%s: duplicate option", optionNames['l'])
			return
		}
		inv.ListFiles = true
		inv.ListAttr = attr()

	case 'm':
		if inv.ModelAttr != nil {
			inv.problem("%s: duplicate option", optionNames['m'])
			return
		}
		inv.ModelAttr = attr()

	case 'c', 'C':
		convs, err := ParseConversions(res.Attribute, res.Option == 'C')
		if err != nil {
			inv.Warnings = append(inv.Warnings, fmt.Errorf("%s: %w", optionNames[res.Option], err))
			return
		}
		inv.Conversions = append(inv.Conversions, convs...)

	case 't':
		inv.ListTypes = true

	case 'v':
		inv.Verbose = true

	case 'd':
		inv.Debug = true
		if res.HasAttribute {
			inv.DebugPath = res.Attribute
		}

	case 'e':
		inv.Warnings = append(inv.Warnings, ErrCastleDisabled)

	case 'p':
		inv.Pager = true
	}
}

// ParseConversions decodes a comma-separated list of "<source>-<dest>"
// conversions.
func ParseConversions(raw string, after bool) ([]Conversion, error) {
	var convs []Conversion
	for _, comp := range strings.Split(raw, ",") {
		comp = strings.TrimSpace(comp)
		if comp == "" {
			continue
		}

		src, dst, ok := strings.Cut(comp, "-")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidConversion, comp)
		}

		from, err := parseFileType(src)
		if err != nil {
			return nil, err
		}
		to, err := parseFileType(dst)
		if err != nil {
			return nil, err
		}

		convs = append(convs, Conversion{Source: from, Dest: to, After: after})
	}

	if len(convs) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidConversion, raw)
	}
	return convs, nil
}

func parseFileType(raw string) (FileType, error) {
	switch t := FileType(strings.ToLower(strings.TrimSpace(raw))); t {
	case FileSSMono, FileSSCol, FileOldProg, FileEditor:
		return t, nil
	default:
		return "", fmt.Errorf("%w: unknown type %q", ErrInvalidConversion, raw)
	}
}
