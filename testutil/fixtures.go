/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for cahute's command-line tools.
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/cahute/internal/mapfs"
)

// updateGolden enables updating golden files with actual output when -update flag is set.
var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// fixturePaths lists where testdata may live relative to the package under test.
func fixturePaths(rel string) []string {
	return []string{
		filepath.Join("testdata", rel),
		filepath.Join("..", "testdata", rel),
		filepath.Join("..", "..", "testdata", rel),
	}
}

// NewCasrcFS returns a MapFileSystem whose home directory is /home/user,
// holding the given files keyed by absolute path.
func NewCasrcFS(t *testing.T, files map[string]string) *mapfs.MapFileSystem {
	t.Helper()

	mfs := mapfs.New()
	mfs.SetHomeDir("/home/user")
	for path, content := range files {
		mfs.AddFile(path, content, 0644)
	}
	return mfs
}

// NewFixtureFS loads the casrc fixture testdata/fixtures/<name> as the user
// casrc file of a MapFileSystem.
func NewFixtureFS(t *testing.T, name string) *mapfs.MapFileSystem {
	t.Helper()

	content := LoadFixtureFile(t, filepath.Join("fixtures", name))
	return NewCasrcFS(t, map[string]string{
		"/home/user/.casrc": string(content),
	})
}

// LoadFixtureFile reads a single fixture file and returns its content.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()

	for _, path := range fixturePaths(fixturePath) {
		content, err := os.ReadFile(path)
		if err == nil {
			return content
		}
	}
	t.Fatalf("Failed to read fixture %s (tried all paths)", fixturePath)
	return nil
}

// UpdateGoldenFile writes actual output to the golden file when -update flag is set.
func UpdateGoldenFile(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()
	if !*updateGolden {
		return
	}

	candidates := fixturePaths(goldenPath)
	targetPath := candidates[0]
	for _, path := range candidates {
		if _, err := os.Stat(filepath.Dir(path)); err == nil {
			targetPath = path
			break
		}
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		t.Fatalf("Failed to create directory for golden file %s: %v", goldenPath, err)
	}
	if err := os.WriteFile(targetPath, actual, 0644); err != nil {
		t.Fatalf("Failed to write golden file %s: %v", goldenPath, err)
	}

	t.Logf("Updated golden file: %s", targetPath)
}
