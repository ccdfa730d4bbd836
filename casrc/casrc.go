/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package casrc provides the settings and macros database read from casrc
// files.
//
// A setting is a named, ordered list of property diffs. Each diff either sets
// a property to a value or unsets it, and the last diff for a given name wins.
// Macros have the same shape but only serve as inclusion sources: naming a
// macro in a definition copies its diffs at that point, so later changes to
// the macro are not seen by definitions that already used it.
package casrc

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Property is a single diff on a setting.
type Property struct {
	// Name is the lowercased property name.
	Name string `json:"name" yaml:"name"`

	// Value is the value to set, trimmed of surrounding whitespace.
	Value string `json:"value,omitempty" yaml:"value,omitempty"`

	// Unset marks the property as cleared, written "no-<name>" in casrc files.
	Unset bool `json:"unset,omitempty" yaml:"unset,omitempty"`
}

// Setting is a named, ordered sequence of property diffs. Macros are
// represented with the same type.
type Setting struct {
	Name       string     `json:"name" yaml:"name"`
	Properties []Property `json:"properties" yaml:"properties"`
}

// Lookup scans the properties for name. found reports whether the property
// ends up set, and mentioned whether any diff refers to it at all, including
// diffs that unset it. A nil setting mentions nothing.
func (s *Setting) Lookup(name string) (value string, found, mentioned bool) {
	if s == nil {
		return "", false, false
	}

	name = Fold(name)
	for _, p := range s.Properties {
		if p.Name != name {
			continue
		}
		mentioned = true
		if p.Unset {
			value, found = "", false
		} else {
			value, found = p.Value, true
		}
	}
	return value, found, mentioned
}

// Get returns the effective value of a property on the setting.
func (s *Setting) Get(name string) (string, bool) {
	value, found, _ := s.Lookup(name)
	return value, found
}

// Effective returns the properties that end up set, in order of their last
// assignment.
func (s *Setting) Effective() []Property {
	if s == nil {
		return nil
	}

	last := make(map[string]int, len(s.Properties))
	for i, p := range s.Properties {
		last[p.Name] = i
	}

	var result []Property
	for i, p := range s.Properties {
		if last[p.Name] == i && !p.Unset {
			result = append(result, p)
		}
	}
	return result
}

// Database holds the settings and macros. Both collections are kept sorted by
// name, and names are unique within each of them.
//
// A database is meant to be populated first and queried afterwards; it is not
// safe for concurrent use.
type Database struct {
	settings []*Setting
	macros   []*Setting
}

// New creates an empty database.
func New() *Database {
	return &Database{}
}

// Fold returns the case-insensitive form used for names and keys.
func Fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

func compareName(s *Setting, name string) int {
	return strings.Compare(s.Name, name)
}

func lookup(list []*Setting, name string) (*Setting, bool) {
	i, ok := slices.BinarySearchFunc(list, Fold(name), compareName)
	if !ok {
		return nil, false
	}
	return list[i], true
}

// findOrInsert returns the entry named name, creating it at its sorted
// position when it does not exist yet.
func findOrInsert(list *[]*Setting, name string) *Setting {
	i, ok := slices.BinarySearchFunc(*list, name, compareName)
	if ok {
		return (*list)[i]
	}

	s := &Setting{Name: name}
	*list = slices.Insert(*list, i, s)
	return s
}

// Setting returns the setting with the given name.
func (db *Database) Setting(name string) (*Setting, bool) {
	return lookup(db.settings, name)
}

// Macro returns the macro with the given name.
func (db *Database) Macro(name string) (*Setting, bool) {
	return lookup(db.macros, name)
}

// Settings returns every setting, sorted by name.
func (db *Database) Settings() []*Setting {
	return slices.Clone(db.settings)
}

// Macros returns every macro, sorted by name.
func (db *Database) Macros() []*Setting {
	return slices.Clone(db.macros)
}

// Property returns the effective value of a property on a setting. The
// result is absent when either the setting or the property does not exist,
// or when the property was unset last.
func (db *Database) Property(setting, property string) (string, bool) {
	s, ok := db.Setting(setting)
	if !ok {
		return "", false
	}
	return s.Get(property)
}

// Has reports whether a property is set on a setting, whatever its value.
func (db *Database) Has(setting, property string) bool {
	_, ok := db.Property(setting, property)
	return ok
}

// DefineSetting applies a comma-separated component list to a setting,
// creating it if needed. With reset, the existing diffs are discarded first;
// otherwise the new diffs are appended after them.
func (db *Database) DefineSetting(name, line string, reset bool) {
	name = Fold(strings.TrimSpace(name))
	if name == "" {
		return
	}

	s := findOrInsert(&db.settings, name)
	if reset {
		s.Properties = nil
	}
	s.Properties = db.expand(s.Properties, name, line)
}

// DefineMacro replaces the diffs of a macro with the given component list.
func (db *Database) DefineMacro(name, line string) {
	name = Fold(strings.TrimSpace(name))
	if name == "" {
		return
	}

	m := findOrInsert(&db.macros, name)
	m.Properties = db.expand(nil, name, line)
}

// expand appends the diffs described by line. A component naming an existing
// macro other than self copies that macro's current diffs.
func (db *Database) expand(props []Property, self, line string) []Property {
	for _, comp := range strings.Split(line, ",") {
		if key := Fold(strings.TrimSpace(comp)); key != "" && key != self {
			if m, ok := db.Macro(key); ok {
				props = append(props, m.Properties...)
				continue
			}
		}

		p, ok := parseComponent(comp)
		if !ok {
			continue
		}
		props = append(props, p)
	}
	return props
}

// parseComponent decodes "[no-]key[=value]".
func parseComponent(raw string) (Property, bool) {
	raw = strings.TrimSpace(raw)

	var p Property
	if len(raw) >= 3 && strings.EqualFold(raw[:3], "no-") {
		p.Unset = true
		raw = raw[3:]
	}

	key, value, _ := strings.Cut(raw, "=")
	p.Name = Fold(strings.TrimSpace(key))
	p.Value = strings.TrimSpace(value)
	if p.Name == "" {
		return Property{}, false
	}
	return p, true
}
