/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package options

import (
	"errors"
	"fmt"
)

var (
	// Done is returned by Parser.Next once the arguments are exhausted.
	Done = errors.New("no more options")

	// ErrMissingValue is wrapped by every *MissingError.
	ErrMissingValue = errors.New("missing option value")
)

// MissingError reports a known option given without its mandatory attribute
// or parameter.
type MissingError struct {
	// Option is the short character of the failing option.
	Option rune

	// Name is the long name, when the option was given in its long form.
	Name string

	// Attribute is true when the attribute was missing, false for the parameter.
	Attribute bool
}

// Flag returns the option as it is spelled on the command line.
func (e *MissingError) Flag() string {
	if e.Name != "" {
		return "--" + e.Name
	}
	return "-" + string(e.Option)
}

func (e *MissingError) Error() string {
	what := "parameter"
	if e.Attribute {
		what = "attribute"
	}
	return fmt.Sprintf("%s: missing %s", e.Flag(), what)
}

func (e *MissingError) Unwrap() error {
	return ErrMissingValue
}
