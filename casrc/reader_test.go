/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package casrc_test

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/cahute/casrc"
	"bennypowers.dev/cahute/internal/mapfs"
	"bennypowers.dev/cahute/testutil"
)

func TestRead_Grammar(t *testing.T) {
	input := strings.Join([]string{
		"# comment",
		"   ; another comment",
		"",
		"\t  ",
		"MACRO Serial dtr,rts",
		"macro\tparity7 parity=odd",
		"In=ctf",
		"in:nice",
		"in.com serial, baud=4800",
		"macro=oops",
		"=noname",
		":noname",
		"list",
		"windows=yes\r",
	}, "\n")

	db := casrc.New()
	require.NoError(t, db.Read(strings.NewReader(input)))

	serial, ok := db.Macro("serial")
	require.True(t, ok)
	assert.Equal(t, []casrc.Property{{Name: "dtr"}, {Name: "rts"}}, serial.Properties)

	_, ok = db.Macro("parity7")
	assert.True(t, ok, "tab after the macro keyword")

	want := []casrc.Property{{Name: "ctf"}, {Name: "nice"}}
	in, _ := db.Setting("in")
	if diff := cmp.Diff(want, in.Properties); diff != "" {
		t.Errorf("in mismatch (-want +got):\n%s", diff)
	}

	want = []casrc.Property{{Name: "dtr"}, {Name: "rts"}, {Name: "baud", Value: "4800"}}
	com, _ := db.Setting("in.com")
	if diff := cmp.Diff(want, com.Properties); diff != "" {
		t.Errorf("in.com mismatch (-want +got):\n%s", diff)
	}

	_, ok = db.Setting("macro")
	assert.True(t, ok, "macro followed by '=' names a setting")

	list, ok := db.Setting("list")
	assert.True(t, ok, "a bare name defines an empty setting")
	assert.Empty(t, list.Properties)

	value, _ := db.Property("windows", "yes")
	assert.Equal(t, "", value)
	assert.True(t, db.Has("windows", "yes"), "carriage returns are stripped")

	var names []string
	for _, s := range db.Settings() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"in", "in.com", "list", "macro", "windows"}, names)
}

func TestRead_MacroRedefinitionResets(t *testing.T) {
	db := casrc.New()
	require.NoError(t, db.Read(strings.NewReader("macro m a\nmacro m b\ns=m\ns=c\n")))

	m, _ := db.Macro("m")
	assert.Equal(t, []casrc.Property{{Name: "b"}}, m.Properties)

	s, _ := db.Setting("s")
	assert.Equal(t, []casrc.Property{{Name: "b"}, {Name: "c"}}, s.Properties, "settings append across lines")
}

func TestRead_BareMacroKeyword(t *testing.T) {
	for _, input := range []string{"macro\n", "MACRO", "macro   \n", "macro\r\n"} {
		db := casrc.New()
		require.NoError(t, db.Read(strings.NewReader(input)))
		assert.Empty(t, db.Settings(), "input %q", input)
		assert.Empty(t, db.Macros(), "input %q", input)
	}
}

func TestRead_IOError(t *testing.T) {
	boom := errors.New("boom")

	db := casrc.New()
	db.DefineSetting("model", "9850", true)

	err := db.Read(mapfs.FailingFile("in=ctf\nout=c", boom))
	require.Error(t, err)
	assert.ErrorIs(t, err, casrc.ErrRead)
	assert.ErrorIs(t, err, boom)

	assert.True(t, db.Has("model", "9850"), "earlier loads stay valid")
	assert.True(t, db.Has("in", "ctf"), "complete lines before the error are kept")
	_, ok := db.Setting("out")
	assert.False(t, ok, "a partial line is dropped on error")
}

func TestLoad(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "casrc")

	db := casrc.New()
	require.NoError(t, db.Load(mfs, "/home/user/.casrc"))

	assert.True(t, db.Has("in", "nice"))
	baud, _ := db.Property("in.com", "baud")
	assert.Equal(t, "1200", baud)
	assert.False(t, db.Has("in.com", "rts"))
	assert.True(t, db.Has("out.com", "7700"))

	err := db.Load(mfs, "/nope")
	assert.ErrorIs(t, err, casrc.ErrOpen)
}

func TestLoadDefault(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no default casrc files on windows")
	}

	t.Run("user file first", func(t *testing.T) {
		mfs := testutil.NewCasrcFS(t, map[string]string{
			"/home/user/.casrc": "in=user\n",
			casrc.SystemPath:    "in=system\n",
		})

		db := casrc.New()
		path, err := db.LoadDefault(mfs, mfs.HomeDir())
		require.NoError(t, err)
		assert.Equal(t, "/home/user/.casrc", path)
		assert.True(t, db.Has("in", "user"))
		assert.False(t, db.Has("in", "system"))
	})

	t.Run("system fallback", func(t *testing.T) {
		mfs := testutil.NewCasrcFS(t, map[string]string{
			casrc.SystemPath: "in=system\n",
		})

		db := casrc.New()
		path, err := db.LoadDefault(mfs, mfs.HomeDir())
		require.NoError(t, err)
		assert.Equal(t, casrc.SystemPath, path)
		assert.True(t, db.Has("in", "system"))
	})

	t.Run("no home", func(t *testing.T) {
		mfs := testutil.NewCasrcFS(t, map[string]string{
			"/home/user/.casrc": "in=user\n",
			casrc.SystemPath:    "in=system\n",
		})

		db := casrc.New()
		path, err := db.LoadDefault(mfs, "")
		require.NoError(t, err)
		assert.Equal(t, casrc.SystemPath, path)
	})

	t.Run("nothing found", func(t *testing.T) {
		mfs := testutil.NewCasrcFS(t, nil)

		db := casrc.New()
		db.DefineSetting("model", "any", true)
		path, err := db.LoadDefault(mfs, mfs.HomeDir())
		require.NoError(t, err)
		assert.Empty(t, path)
		assert.Len(t, db.Settings(), 1, "database keeps earlier content")
	})
}
