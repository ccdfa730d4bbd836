/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs provides filesystem abstractions for cahute's command-line tools.
package fs

import (
	"io"
	"io/fs"
	"os"
)

// FileSystem provides an abstraction over the filesystem operations the
// command-line tools need: reading casrc files and writing debug logs.
type FileSystem interface {
	// File operations
	ReadFile(name string) ([]byte, error)
	Create(name string) (io.WriteCloser, error)

	// File system queries
	Stat(name string) (fs.FileInfo, error)
	Exists(path string) bool

	// HomeDir returns the user's home directory, or "" when unknown.
	HomeDir() string

	// fs.FS compatibility
	Open(name string) (fs.File, error)
}

// OSFileSystem implements FileSystem using the standard os package.
type OSFileSystem struct{}

// NewOSFileSystem creates a new filesystem that uses the standard os package.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadFile reads the entire contents of a file.
func (f *OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Create creates or truncates the named file for writing.
func (f *OSFileSystem) Create(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// Stat returns file information for the named file.
func (f *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Exists returns true if the path exists.
func (f *OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// HomeDir returns $HOME, the only home directory casrc lookups honor.
func (f *OSFileSystem) HomeDir() string {
	return os.Getenv("HOME")
}

// Open opens the named file for reading.
func (f *OSFileSystem) Open(name string) (fs.File, error) {
	return os.Open(name)
}
