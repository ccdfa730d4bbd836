/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package casrc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"

	casfs "bennypowers.dev/cahute/fs"
)

// UserFileName is the casrc file looked up in the home directory.
const UserFileName = ".casrc"

// SystemPath is the system-wide casrc file.
const SystemPath = "/etc/system.casrc"

// DefaultPaths returns the casrc candidates in priority order. Only POSIX-like
// systems have default casrc files.
func DefaultPaths(home string) []string {
	if runtime.GOOS == "windows" {
		return nil
	}

	var paths []string
	if home != "" {
		paths = append(paths, filepath.Join(home, UserFileName))
	}
	return append(paths, SystemPath)
}

// Read feeds the database with casrc lines from r.
//
// Blank lines and lines starting with '#' or ';' are ignored, as are lines
// without a name. A line starting with the "macro" keyword defines a macro;
// any other line appends to a setting. Read stops at the first I/O error,
// leaving the definitions of the lines read so far in place.
func (db *Database) Read(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %w", ErrRead, err)
		}

		db.readLine(line)

		if err != nil {
			return nil
		}
	}
}

func (db *Database) readLine(line string) {
	p := strings.TrimLeftFunc(strings.TrimRight(line, "\r\n"), unicode.IsSpace)
	if p == "" || p[0] == '#' || p[0] == ';' {
		return
	}

	isMacro := false
	if len(p) >= 5 && strings.EqualFold(p[:5], "macro") && (len(p) == 5 || unicode.IsSpace(rune(p[5]))) {
		isMacro = true
		p = strings.TrimLeftFunc(p[5:], unicode.IsSpace)
	}

	end := strings.IndexFunc(p, func(r rune) bool {
		return unicode.IsSpace(r) || r == '=' || r == ':'
	})
	if end < 0 {
		end = len(p)
	}

	name := p[:end]
	if name == "" {
		return
	}

	rest := strings.TrimLeftFunc(p[end:], unicode.IsSpace)
	if rest != "" && (rest[0] == '=' || rest[0] == ':') {
		rest = rest[1:]
	}

	if isMacro {
		db.DefineMacro(name, rest)
	} else {
		db.DefineSetting(name, rest, false)
	}
}

// Load reads the casrc file at path.
func (db *Database) Load(filesystem casfs.FileSystem, path string) error {
	f, err := filesystem.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	if err := db.Read(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadDefault reads the first default casrc file that can be opened and
// returns its path. Finding none of them is not an error: the database is
// left as is and the returned path is empty.
func (db *Database) LoadDefault(filesystem casfs.FileSystem, home string) (string, error) {
	for _, path := range DefaultPaths(home) {
		f, err := filesystem.Open(path)
		if err != nil {
			continue
		}

		err = db.Read(f)
		f.Close()
		if err != nil {
			return path, fmt.Errorf("%s: %w", path, err)
		}
		return path, nil
	}

	return "", nil
}

// Open creates a database from the casrc file at path, or from the default
// casrc files when path is empty. It returns the path that was loaded, which
// is empty when no default file exists.
func Open(filesystem casfs.FileSystem, path string) (*Database, string, error) {
	db := New()
	if path != "" {
		if err := db.Load(filesystem, path); err != nil {
			return nil, "", err
		}
		return db, path, nil
	}

	loaded, err := db.LoadDefault(filesystem, filesystem.HomeDir())
	if err != nil {
		return nil, "", err
	}
	return db, loaded, nil
}
