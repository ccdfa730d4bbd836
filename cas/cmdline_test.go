/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func argv(args ...string) []string {
	return append([]string{"cas"}, args...)
}

func TestTokenize_Full(t *testing.T) {
	inv := Tokenize(argv(
		"-v", "-i:ctf,nice", "-m=9850", "-l", "-t", "-p",
		"-o:com,baud=9600", "/dev/ttyUSB0",
		"-c=ssmono-sscol", "--convert-after:oldprog-editor,editor-oldprog",
		"--debug=/tmp/cas.log",
		"in.ctf",
	))

	require.NoError(t, inv.Err())
	assert.False(t, inv.Help)
	assert.True(t, inv.Verbose)
	assert.True(t, inv.Pager)
	assert.True(t, inv.ListFiles)
	assert.Nil(t, inv.ListAttr)
	assert.True(t, inv.ListTypes)
	assert.True(t, inv.Debug)
	assert.Equal(t, "/tmp/cas.log", inv.DebugPath)

	require.NotNil(t, inv.InputAttr)
	assert.Equal(t, "ctf,nice", *inv.InputAttr)
	require.NotNil(t, inv.ModelAttr)
	assert.Equal(t, "9850", *inv.ModelAttr)

	assert.True(t, inv.Output)
	require.NotNil(t, inv.OutputAttr)
	assert.Equal(t, "com,baud=9600", *inv.OutputAttr)
	assert.Equal(t, "/dev/ttyUSB0", inv.OutputPath)
	assert.Equal(t, "in.ctf", inv.InputPath)

	assert.Equal(t, []Conversion{
		{Source: FileSSMono, Dest: FileSSCol},
		{Source: FileOldProg, Dest: FileEditor, After: true},
		{Source: FileEditor, Dest: FileOldProg, After: true},
	}, inv.Conversions)
}

func TestTokenize_Problems(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"duplicate input", []string{"-i=ctf", "-i=cas", "x"}, "-i, --input: duplicate option"},
		{"duplicate output", []string{"-o", "a", "--output", "b", "x"}, "-o, --output: duplicate option"},
		{"duplicate list", []string{"-l", "--display", "x"}, "-l, --list: duplicate option"},
		{"duplicate model", []string{"-m=any", "--model=any", "x"}, "-m, --model: duplicate option"},
		{"missing input attribute", []string{"-i", "x"}, "-i, --input: missing attribute"},
		{"missing model attribute", []string{"--model", "x"}, "-m, --model: missing attribute"},
		{"missing convert attribute", []string{"-c", "x"}, "-c, --convert: missing attribute"},
		{"missing output parameter", []string{"x", "-o"}, "-o, --output: missing attribute or parameter"},
		{"no input path", []string{"-v"}, "expected one input path, got 0"},
		{"two input paths", []string{"a", "b"}, "expected one input path, got 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := Tokenize(argv(tt.args...))
			assert.True(t, inv.Help)

			err := inv.Err()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUsage)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTokenize_UnknownOptionsIgnored(t *testing.T) {
	inv := Tokenize(argv("-zZ", "--frobnicate=1", "-vz", "in.cas"))
	require.NoError(t, inv.Err())
	assert.True(t, inv.Verbose)
	assert.Equal(t, "in.cas", inv.InputPath)
}

func TestTokenize_Warnings(t *testing.T) {
	inv := Tokenize(argv("-e", "-c=ssmono", "-C=foo-bar", "in.cas"))
	require.NoError(t, inv.Err(), "warnings do not make a usage error")
	require.Len(t, inv.Warnings, 3)
	assert.True(t, errors.Is(inv.Warnings[0], ErrCastleDisabled))
	assert.ErrorIs(t, inv.Warnings[1], ErrInvalidConversion)
	assert.ErrorIs(t, inv.Warnings[2], ErrInvalidConversion)
	assert.Empty(t, inv.Conversions)
}

func TestTokenize_HelpAndVersion(t *testing.T) {
	inv := Tokenize(argv("-h?V", "in"))
	assert.True(t, inv.Help)
	assert.True(t, inv.Version)
	assert.NoError(t, inv.Err())
}

func TestParseConversions(t *testing.T) {
	convs, err := ParseConversions(" SSMono-sscol , editor-oldprog,", false)
	require.NoError(t, err)
	assert.Equal(t, []Conversion{
		{Source: FileSSMono, Dest: FileSSCol},
		{Source: FileEditor, Dest: FileOldProg},
	}, convs)

	for _, raw := range []string{"", ",", "ssmono", "ssmono-", "x-sscol"} {
		_, err := ParseConversions(raw, true)
		assert.ErrorIs(t, err, ErrInvalidConversion, "raw %q", raw)
	}
}
