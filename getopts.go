// This file is part of go-getopts.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopts

import (
	"io"

	"github.com/DavidGamba/go-getopts/internal/option"
	"github.com/charmbracelet/log"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.NewWithOptions(io.Discard, log.Options{
	Prefix: "getopts",
	Level:  log.DebugLevel,
})

// HasArg - Describes whether an option takes an argument.
type HasArg = option.HasArg

// Argument policies
const (
	Yes   = option.Yes   // The option requires an argument.
	No    = option.No    // The option never takes an argument.
	Maybe = option.Maybe // The option may take an argument.
)

// Occur - Describes how many times an option can occur.
type Occur = option.Occur

// Occurrence policies
const (
	Req      = option.Req      // The option must occur exactly once.
	Optional = option.Optional // The option may occur at most once.
	Multi    = option.Multi    // The option may occur any number of times.
)

// ParsingStyle - Determines where free arguments may appear.
type ParsingStyle int

// Parsing styles
const (
	// FloatingFrees - Free arguments may appear anywhere, options after them are still parsed.
	FloatingFrees ParsingStyle = iota
	// StopAtFirstFree - Parsing stops at the first free argument, it and everything after are free.
	StopAtFirstFree
)

func (s ParsingStyle) String() string {
	if s == StopAtFirstFree {
		return "StopAtFirstFree"
	}
	return "FloatingFrees"
}

// Options - The set of declared options and the parsing configuration.
//
// Declare every option before calling Parse.
// Once built, Parse can be called concurrently.
type Options struct {
	groups       []option.Group
	parsingStyle ParsingStyle
	longOnly     bool
}

// New returns an empty object of type Options.
// This is the starting point when using go-getopts.
// For example:
//
//	opts := getopts.New()
func New() *Options {
	return &Options{
		groups:       []option.Group{},
		parsingStyle: FloatingFrees,
	}
}

// SetParsingStyle - Sets where free arguments may appear, FloatingFrees by default.
func (o *Options) SetParsingStyle(style ParsingStyle) *Options {
	o.parsingStyle = style
	return o
}

// SetLongOnly - When set, options starting with a single dash are parsed as long options.
// For example, `-verbose` is the same as `--verbose`.
// Single character names still resolve as short options.
func (o *Options) SetLongOnly(longOnly bool) *Options {
	o.longOnly = longOnly
	return o
}

// Opt - Declares an option with full control over its argument and occurrence policies.
//
// shortName must be a single character or empty, longName must be longer
// than a single character or empty, and at least one of them must be set.
// hint is the argument name used in the help, for example `FILE` in `-o FILE`.
func (o *Options) Opt(shortName, longName, desc, hint string, hasArg HasArg, occur Occur) *Options {
	option.ValidateNames(shortName, longName)
	if shortName == "" && longName == "" {
		panic("option was given no name")
	}
	Logger.Debug("declare", "short", shortName, "long", longName, "hasArg", hasArg, "occur", occur)
	o.groups = append(o.groups, option.Group{
		ShortName: shortName,
		LongName:  longName,
		Hint:      hint,
		Desc:      desc,
		HasArg:    hasArg,
		Occur:     occur,
	})
	return o
}

// Value - Declares an option that takes a required argument and may occur at most once.
// For example: `-o file`, `-ofile`, `--output file`, `--output=file`.
func (o *Options) Value(shortName, longName, desc, hint string) *Options {
	return o.Opt(shortName, longName, desc, hint, Yes, Optional)
}

// RequiredValue - Declares an option that takes a required argument and must occur exactly once.
func (o *Options) RequiredValue(shortName, longName, desc, hint string) *Options {
	return o.Opt(shortName, longName, desc, hint, Yes, Req)
}

// ValueMulti - Declares an option that takes a required argument and may occur any number of times.
func (o *Options) ValueMulti(shortName, longName, desc, hint string) *Options {
	return o.Opt(shortName, longName, desc, hint, Yes, Multi)
}

// Flag - Declares an option without argument that may occur at most once.
func (o *Options) Flag(shortName, longName, desc string) *Options {
	return o.Opt(shortName, longName, desc, "", No, Optional)
}

// FlagMulti - Declares an option without argument that may occur any number of times.
// For example, a verbosity flag used as `-vvv`.
func (o *Options) FlagMulti(shortName, longName, desc string) *Options {
	return o.Opt(shortName, longName, desc, "", No, Multi)
}

// FlagValue - Declares an option with an optional argument that may occur at most once.
//
// The argument is taken from `--opt=value`, `-ovalue` or, only for the long
// form, from the following argument when it doesn't look like an option.
func (o *Options) FlagValue(shortName, longName, desc, hint string) *Options {
	return o.Opt(shortName, longName, desc, hint, Maybe, Optional)
}

// resolve - Returns the resolved options in declaration order.
func (o *Options) resolve() []*option.Option {
	opts := make([]*option.Option, 0, len(o.groups))
	for _, g := range o.groups {
		opts = append(opts, g.Resolve())
	}
	return opts
}
