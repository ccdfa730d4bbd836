/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package casrc

import "errors"

// Sentinel errors for casrc operations.
var (
	// ErrOpen indicates a casrc file could not be opened.
	ErrOpen = errors.New("could not open casrc file")

	// ErrRead indicates an I/O error while reading casrc lines.
	ErrRead = errors.New("error while reading casrc file")
)
