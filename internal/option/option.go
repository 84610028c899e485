// This file is part of go-getopts.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - internal option declaration and resolution types.
package option

import (
	"fmt"
	"unicode/utf8"
)

// HasArg - Describes whether an option takes an argument.
type HasArg int

// Argument policies
const (
	Yes   HasArg = iota // The option requires an argument.
	No                  // The option never takes an argument.
	Maybe               // The option may take an argument.
)

func (h HasArg) String() string {
	switch h {
	case Yes:
		return "yes"
	case No:
		return "no"
	case Maybe:
		return "maybe"
	}
	return fmt.Sprintf("HasArg(%d)", int(h))
}

// Occur - Describes how many times an option can occur.
type Occur int

// Occurrence policies
const (
	Req      Occur = iota // The option must occur exactly once.
	Optional              // The option may occur at most once.
	Multi                 // The option may occur any number of times.
)

func (o Occur) String() string {
	switch o {
	case Req:
		return "required"
	case Optional:
		return "optional"
	case Multi:
		return "multi"
	}
	return fmt.Sprintf("Occur(%d)", int(o))
}

// Name - Short or long option name.
// Names compare with ==.
type Name struct {
	IsLong bool
	Short  rune
	Long   string
}

// ShortName - Returns the Name for a single character option.
func ShortName(r rune) Name {
	return Name{Short: r}
}

// LongName - Returns the Name for a long option.
func LongName(s string) Name {
	return Name{IsLong: true, Long: s}
}

// NameFromString - A single rune is a short name, anything else is long.
func NameFromString(s string) Name {
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return ShortName(r)
	}
	return LongName(s)
}

func (n Name) String() string {
	if n.IsLong {
		return n.Long
	}
	return string(n.Short)
}

// Group - An option as declared by the user.
type Group struct {
	ShortName string
	LongName  string
	Hint      string
	Desc      string
	HasArg    HasArg
	Occur     Occur
}

// ValidateNames - Panics when the short or long name has an invalid shape.
// These are programmer errors, not user errors.
func ValidateNames(shortName, longName string) {
	if l := utf8.RuneCountInString(shortName); l > 1 {
		panic(fmt.Sprintf("the short name '%s' should be a single character, or an empty string for none", shortName))
	}
	if l := utf8.RuneCountInString(longName); l == 1 {
		panic(fmt.Sprintf("the long name '%s' should be longer than a single character, or an empty string for none", longName))
	}
}

// Option - A resolved option.
// When declared with both names the long name is canonical and the short
// name becomes its only alias.
type Option struct {
	Name   Name
	HasArg HasArg
	Occur  Occur
	Alias  *Option
}

// Resolve - Converts the group into its resolved form.
func (g Group) Resolve() *Option {
	switch {
	case g.ShortName == "" && g.LongName == "":
		panic("option was given no name")
	case g.ShortName == "":
		return &Option{Name: LongName(g.LongName), HasArg: g.HasArg, Occur: g.Occur}
	case g.LongName == "":
		return &Option{Name: NameFromString(g.ShortName), HasArg: g.HasArg, Occur: g.Occur}
	}
	return &Option{
		Name:   LongName(g.LongName),
		HasArg: g.HasArg,
		Occur:  g.Occur,
		Alias: &Option{
			Name:   NameFromString(g.ShortName),
			HasArg: g.HasArg,
			Occur:  g.Occur,
		},
	}
}

// FindIndex - Returns the index of the option whose canonical name or alias
// matches name, or -1.
//
// Canonical names are checked before aliases.
func FindIndex(opts []*Option, name Name) int {
	for i, opt := range opts {
		if opt.Name == name {
			return i
		}
	}
	for i, opt := range opts {
		if opt.Alias != nil && opt.Alias.Name == name {
			return i
		}
	}
	return -1
}
