// This file is part of go-getopts.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopts

import (
	"fmt"
	"slices"

	"github.com/DavidGamba/go-getopts/internal/option"
)

// Capture - One occurrence of an option on the command line.
type Capture struct {
	Pos      int    // Index of the top level argument that produced the capture, consumed arguments are not counted
	Value    string // Argument, only set when HasValue is true
	HasValue bool   // False when the option was given without an argument
}

// Matches - Result of a successful Parse.
//
// Options can be queried by either their short or long name.
// Querying a name that was never declared panics.
type Matches struct {
	opts    []*option.Option
	vals    [][]Capture
	free    []string
	argsEnd int // index into free where the terminator was found, -1 when none
}

func (m *Matches) captures(name string) []Capture {
	id := option.FindIndex(m.opts, option.NameFromString(name))
	if id < 0 {
		panic(fmt.Sprintf("No option '%s' defined", name))
	}
	return m.vals[id]
}

// Present - Indicates if the option was given.
func (m *Matches) Present(name string) bool {
	return len(m.captures(name)) > 0
}

// Value - Returns the argument of the first occurrence of the option.
//
// It returns false when the option was not given or when its first
// occurrence had no argument, even if a later one did.
func (m *Matches) Value(name string) (string, bool) {
	vals := m.captures(name)
	if len(vals) == 0 || !vals[0].HasValue {
		return "", false
	}
	return vals[0].Value, true
}

// Free - Returns the free arguments in order.
func (m *Matches) Free() []string {
	return slices.Clone(m.free)
}

// TerminatorIndex - Returns the index into Free of the first argument that followed `--`.
// It returns false when there was no `--` or when nothing followed it.
func (m *Matches) TerminatorIndex() (int, bool) {
	if m.argsEnd < 0 {
		return 0, false
	}
	return m.argsEnd, true
}

// Count - Returns the number of times the option was given.
func (m *Matches) Count(name string) int {
	return len(m.captures(name))
}

// Captures - Returns every occurrence of the option in order.
func (m *Matches) Captures(name string) []Capture {
	return slices.Clone(m.captures(name))
}

// Values - Returns the arguments of every occurrence of the option that had one.
func (m *Matches) Values(name string) []string {
	out := []string{}
	for _, c := range m.captures(name) {
		if c.HasValue {
			out = append(out, c.Value)
		}
	}
	return out
}

// Positions - Returns the index of the top level argument of every occurrence of the option.
func (m *Matches) Positions(name string) []int {
	out := []int{}
	for _, c := range m.captures(name) {
		out = append(out, c.Pos)
	}
	return out
}

// Default - Returns the argument of the first occurrence of the option.
//
// Meant for options with optional arguments:
// it returns def when the option was given without argument, and false when it was not given at all.
func (m *Matches) Default(name, def string) (string, bool) {
	vals := m.captures(name)
	if len(vals) == 0 {
		return "", false
	}
	if !vals[0].HasValue {
		return def, true
	}
	return vals[0].Value, true
}

// AnyPresent - Indicates if any of the options was given.
func (m *Matches) AnyPresent(names ...string) bool {
	for _, name := range names {
		if m.Present(name) {
			return true
		}
	}
	return false
}

// FirstValue - Returns Value for the first of the options that has one.
func (m *Matches) FirstValue(names ...string) (string, bool) {
	for _, name := range names {
		if v, ok := m.Value(name); ok {
			return v, true
		}
	}
	return "", false
}
