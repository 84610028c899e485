// This file is part of go-getopts.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopts

import (
	"iter"
	"slices"
	"strings"

	"github.com/DavidGamba/go-getopts/internal/help"
)

// Usage - Returns the brief followed by the list of options and their descriptions.
// For example:
//
//	Usage: tail [options] FILE
//
//	Options:
//	    -n, --lines NUM     output the last NUM lines
//	    -h, --help          print this help menu
func (o *Options) Usage(brief string) string {
	return o.UsageWithFormat(func(rows iter.Seq[string]) string {
		return brief + "\n\nOptions:\n" + strings.Join(slices.Collect(rows), "\n") + "\n"
	})
}

// UsageWithFormat - Lets the caller compose the help from the rendered option rows.
// Rows are rendered lazily, one per option in declaration order.
func (o *Options) UsageWithFormat(formatter func(rows iter.Seq[string]) string) string {
	return formatter(help.OptionRows(o.groups, o.longOnly))
}

// ShortUsage - Returns a one line synopsis of the options.
// For example:
//
//	Usage: tail [-n NUM] [-f] [-h]
func (o *Options) ShortUsage(program string) string {
	return help.Synopsis(program, o.groups, o.longOnly)
}
