/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cas

import "errors"

// Sentinel errors for CaS argument building.
var (
	// ErrUsage indicates a malformed command line.
	ErrUsage = errors.New("invalid usage")

	// ErrInvalidConversion indicates a -c or -C attribute that could not be decoded.
	ErrInvalidConversion = errors.New("invalid conversion")

	// ErrMissingMediumType indicates the type of a medium could not be determined.
	ErrMissingMediumType = errors.New("missing medium type")

	// ErrInvalidProperty indicates a casrc property with an unusable value.
	ErrInvalidProperty = errors.New("invalid property")

	// ErrCastleDisabled is reported when communication with the Castle IDE is requested.
	ErrCastleDisabled = errors.New("communication with the Castle IDE is disabled")
)
