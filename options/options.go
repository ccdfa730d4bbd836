/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package options tokenizes command-line arguments against a declared table
// of short and long options.
//
// Two conventions are supported. In the POSIX style an attribute is fused to
// its option with '=' (or directly, for short options). The CAS style also
// accepts ':' as a separator, so that "-l:verbose" and "--list:verbose" both
// carry the attribute "verbose".
//
// Unknown options are skipped without being reported. Only a known option
// that lacks a mandatory attribute or parameter produces an error.
package options

import (
	"strings"
	"unicode/utf8"
)

// Style selects the separators accepted between an option and its attribute.
type Style int

const (
	// StylePOSIX accepts '=' as the only separator.
	StylePOSIX Style = iota
	// StyleCAS accepts both '=' and ':'.
	StyleCAS
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StyleCAS:
		return "cas"
	default:
		return "posix"
	}
}

func (s Style) separators() string {
	if s == StyleCAS {
		return "=:"
	}
	return "="
}

// Flag describes what an option expects besides its name.
type Flag uint8

const (
	// ParameterRequired makes the option consume the following argument.
	ParameterRequired Flag = 1 << iota
	// AttributeOptional lets the option carry a fused attribute.
	AttributeOptional
	// AttributeRequired makes the fused attribute mandatory.
	AttributeRequired
)

// Has reports whether any of the given flags is set.
func (f Flag) Has(flags Flag) bool {
	return f&flags != 0
}

func (f Flag) acceptsAttribute() bool {
	return f.Has(AttributeOptional | AttributeRequired)
}

// Short declares a single-character option such as "-o".
type Short struct {
	Char  rune
	Flags Flag
}

// Long declares a named option such as "--output". Char is the option
// reported when the long form matches, usually the short alias.
type Long struct {
	Name  string
	Flags Flag
	Char  rune
}

// Result is one recognized option.
type Result struct {
	// Option is the short character of the option, or the Char of its long form.
	Option rune

	// Name is the long name the option was matched with, empty for short forms.
	Name string

	// Attribute is the value fused to the option token.
	Attribute    string
	HasAttribute bool

	// Parameter is the value taken from the following argument.
	Parameter    string
	HasParameter bool
}

// Parser holds the state of one tokenization run.
type Parser struct {
	style  Style
	shorts []Short
	longs  []Long

	args       []string
	cluster    string
	positional []string
}

// NewParser creates a parser over argv. The first element of argv is the
// program name and is never tokenized.
func NewParser(style Style, shorts []Short, longs []Long, argv []string) *Parser {
	p := &Parser{
		style:  style,
		shorts: shorts,
		longs:  longs,
	}
	if len(argv) > 1 {
		p.args = argv[1:]
	}
	return p
}

// Next returns the next recognized option. It returns a *MissingError when a
// known option lacks its attribute or parameter; parsing may continue after
// such an error. Done is returned once every argument has been consumed.
func (p *Parser) Next() (Result, error) {
	for {
		if p.cluster != "" {
			c, size := utf8.DecodeRuneInString(p.cluster)
			p.cluster = p.cluster[size:]

			opt, ok := p.findShort(c)
			if !ok {
				continue
			}
			return p.short(opt)
		}

		if len(p.args) == 0 {
			return Result{}, Done
		}

		arg := p.shift()
		switch {
		case !strings.HasPrefix(arg, "-"):
			p.positional = append(p.positional, arg)
		case strings.HasPrefix(arg, "--"):
			res, matched, err := p.long(arg[2:])
			if matched {
				return res, err
			}
		default:
			p.cluster = arg[1:]
		}
	}
}

// Positional returns the positional arguments seen so far, in order.
func (p *Parser) Positional() []string {
	return p.positional
}

func (p *Parser) shift() string {
	arg := p.args[0]
	p.args = p.args[1:]
	return arg
}

func (p *Parser) findShort(c rune) (Short, bool) {
	for _, opt := range p.shorts {
		if opt.Char == c {
			return opt, true
		}
	}
	return Short{}, false
}

func (p *Parser) findLong(name string) (Long, bool) {
	for _, opt := range p.longs {
		if opt.Name == name {
			return opt, true
		}
	}
	return Long{}, false
}

// short handles a character of a short option cluster. An option accepting
// an attribute takes the rest of the cluster with it.
func (p *Parser) short(opt Short) (Result, error) {
	res := Result{Option: opt.Char}

	var attr string
	hasAttr := false
	if opt.Flags.acceptsAttribute() {
		attr, hasAttr = p.cluster, true
		p.cluster = ""
	}

	if opt.Flags.Has(ParameterRequired) {
		if len(p.args) == 0 {
			return Result{}, &MissingError{Option: opt.Char}
		}
		res.Parameter, res.HasParameter = p.shift(), true
	}

	if hasAttr {
		if attr != "" && strings.ContainsRune(p.style.separators(), rune(attr[0])) {
			attr = attr[1:]
		}
		if attr != "" {
			res.Attribute, res.HasAttribute = attr, true
		} else if opt.Flags.Has(AttributeRequired) {
			return Result{}, &MissingError{Option: opt.Char, Attribute: true}
		}
	}

	return res, nil
}

// long handles "--name[=value]". The fused value is the attribute when the
// option accepts one, and the parameter otherwise.
func (p *Parser) long(body string) (Result, bool, error) {
	name, value, fused := body, "", false
	if i := strings.IndexAny(body, p.style.separators()); i >= 0 {
		name, value, fused = body[:i], body[i+1:], true
	}

	opt, ok := p.findLong(name)
	if !ok {
		return Result{}, false, nil
	}

	res := Result{Option: opt.Char, Name: opt.Name}
	if opt.Flags.acceptsAttribute() {
		if fused && value != "" {
			res.Attribute, res.HasAttribute = value, true
		} else if opt.Flags.Has(AttributeRequired) {
			return Result{}, true, &MissingError{Option: opt.Char, Name: opt.Name, Attribute: true}
		}
		fused = false
	}

	if fused {
		res.Parameter, res.HasParameter = value, true
	}

	if !res.HasParameter && opt.Flags.Has(ParameterRequired) {
		if len(p.args) == 0 {
			return Result{}, true, &MissingError{Option: opt.Char, Name: opt.Name}
		}
		res.Parameter, res.HasParameter = p.shift(), true
	}

	return res, true, nil
}
