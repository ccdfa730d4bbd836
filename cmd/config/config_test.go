/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/cahute/casrc"
	"bennypowers.dev/cahute/testutil"
)

func fixtureDB(t *testing.T) *casrc.Database {
	t.Helper()
	db, _, err := casrc.Open(testutil.NewFixtureFS(t, "casrc"), "")
	require.NoError(t, err)
	return db
}

func TestShow_Text(t *testing.T) {
	tests := []struct {
		name string
		opts ShowOptions
		want string
	}{
		{
			name: "all settings",
			opts: ShowOptions{},
			want: "in = ctf, nice\n" +
				"in.com = dtr, baud=1200, parity=even\n" +
				"list = hex, nice\n" +
				"list.editor = num=dec\n" +
				"model = 9850\n" +
				"out.com = dtr, rts, baud=9600, 7700\n",
		},
		{
			name: "match",
			opts: ShowOptions{Match: "LIST.*"},
			want: "list.editor = num=dec\n",
		},
		{
			name: "raw",
			opts: ShowOptions{Match: "list.*", Raw: true},
			want: "list.editor = no-nice, num=dec\n",
		},
		{
			name: "macros",
			opts: ShowOptions{Macros: true},
			want: "cas40 = 7700\nserial = dtr, rts, baud=9600\n",
		},
	}

	db := fixtureDB(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, Show(&out, db, tt.opts))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestShow_Structured(t *testing.T) {
	db := fixtureDB(t)

	var out bytes.Buffer
	require.NoError(t, Show(&out, db, ShowOptions{Match: "model", Format: "json"}))
	var fromJSON []casrc.Setting
	require.NoError(t, json.Unmarshal(out.Bytes(), &fromJSON))
	assert.Equal(t, []casrc.Setting{{Name: "model", Properties: []casrc.Property{{Name: "9850"}}}}, fromJSON)

	out.Reset()
	require.NoError(t, Show(&out, db, ShowOptions{Match: "in*", Format: "yaml", Raw: true}))
	var fromYAML []casrc.Setting
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &fromYAML))
	require.Len(t, fromYAML, 2)
	assert.Equal(t, "in.com", fromYAML[1].Name)
	assert.Len(t, fromYAML[1].Properties, 6)
}

func TestShow_Errors(t *testing.T) {
	db := fixtureDB(t)
	var out bytes.Buffer
	assert.Error(t, Show(&out, db, ShowOptions{Match: "list.[", Format: "text"}))
	assert.Error(t, Show(&out, db, ShowOptions{Format: "toml"}))
}

func TestGet(t *testing.T) {
	db := fixtureDB(t)

	tests := []struct {
		name     string
		general  string
		setting  string
		property string
		want     string
		wantErr  bool
	}{
		{"specific value wins", "in", "in.com", "baud", "1200\n", false},
		{"falls back on general", "in", "in.com", "NICE", "\n", false},
		{"unset in specific hides general", "out.com", "in.com", "rts", "", true},
		{"no fallback without default", "", "in.com", "ctf", "", true},
		{"single setting", "", "model", "9850", "\n", false},
		{"missing setting", "", "nowhere", "x", "", true},
		{
			name:    "list chain",
			general: "in",
			setting: "in.com",
			want:    "baud=1200\nctf\ndtr\nnice\nparity=even\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Get(&out, db, tt.general, tt.setting, tt.property)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotSet)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestLoadDatabase_LogsAtConfiguredLevel(t *testing.T) {
	t.Cleanup(viper.Reset)
	mfs := testutil.NewFixtureFS(t, "casrc")

	tests := []struct {
		level string
		want  string
	}{
		{"info", "[INFO]  cahute: casrc: /home/user/.casrc"},
		{"warning", ""},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			viper.Set("log", tt.level)
			viper.Set("casrc", "")

			var stderr bytes.Buffer
			cmd := &cobra.Command{}
			cmd.SetErr(&stderr)

			db, err := loadDatabase(cmd, mfs)
			require.NoError(t, err)
			assert.True(t, db.Has("model", "9850"))
			if tt.want == "" {
				assert.Empty(t, stderr.String())
			} else {
				assert.Contains(t, stderr.String(), tt.want)
			}
		})
	}

	t.Run("missing casrc warns", func(t *testing.T) {
		viper.Set("log", "warning")
		viper.Set("casrc", "")

		var stderr bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetErr(&stderr)

		_, err := loadDatabase(cmd, testutil.NewCasrcFS(t, nil))
		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "[WARN]  cahute: no casrc file found")
	})
}
