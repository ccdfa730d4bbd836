/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver computes effective casrc properties from a general
// setting and a more specific one.
//
// The specific setting wins for every property it mentions, even when it
// only unsets it. The general setting is consulted for the other properties.
package resolver

import (
	"slices"
	"strings"

	"bennypowers.dev/cahute/casrc"
)

// SettingProperty resolves name against an override and a default setting.
// Either setting may be nil.
func SettingProperty(def, override *casrc.Setting, name string) (string, bool) {
	if value, found, mentioned := override.Lookup(name); mentioned {
		return value, found
	}
	return def.Get(name)
}

// Chain pairs a general setting with the specific setting overriding it.
type Chain struct {
	Default  *casrc.Setting
	Override *casrc.Setting
}

// Lookup builds the chain for a general setting name and a specific one,
// such as "in" and "in.com". Missing settings are left nil.
func Lookup(db *casrc.Database, general, specific string) Chain {
	var c Chain
	if s, ok := db.Setting(general); ok {
		c.Default = s
	}
	if specific != "" {
		if s, ok := db.Setting(specific); ok {
			c.Override = s
		}
	}
	return c
}

// Get returns the effective value of a property.
func (c Chain) Get(name string) (string, bool) {
	return SettingProperty(c.Default, c.Override, name)
}

// Has reports whether a property is set, whatever its value.
func (c Chain) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Any reports whether at least one of the properties is set.
func (c Chain) Any(names ...string) bool {
	for _, name := range names {
		if c.Has(name) {
			return true
		}
	}
	return false
}

// Value returns the effective value of a property, or fallback when the
// property is not set.
func (c Chain) Value(name, fallback string) string {
	if value, ok := c.Get(name); ok {
		return value
	}
	return fallback
}

// Effective returns every property set through the chain, sorted by name.
func (c Chain) Effective() []casrc.Property {
	merged := map[string]casrc.Property{}
	for _, p := range c.Default.Effective() {
		merged[p.Name] = p
	}
	if c.Override != nil {
		for _, p := range c.Override.Properties {
			delete(merged, p.Name)
		}
		for _, p := range c.Override.Effective() {
			merged[p.Name] = p
		}
	}

	result := make([]casrc.Property, 0, len(merged))
	for _, p := range merged {
		result = append(result, p)
	}
	slices.SortFunc(result, func(a, b casrc.Property) int {
		return strings.Compare(a.Name, b.Name)
	})
	return result
}
