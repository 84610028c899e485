// This file is part of go-getopts.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package getopts - Go option parser with POSIX and GNU getopt semantics.

Declare the accepted options on an Options object, then call Parse with the
command line arguments (without the program name).
You either get a Matches object back or a *Fail error.

# Usage

	opts := getopts.New()
	opts.Value("o", "output", "set output file name", "NAME")
	opts.Flag("h", "help", "print this help menu")

	m, err := opts.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n\n", err)
		fmt.Fprintln(os.Stderr, opts.ShortUsage("prog"))
		os.Exit(1)
	}
	if m.Present("help") {
		fmt.Print(opts.Usage("Usage: prog [options] FILE"))
		return
	}
	output, ok := m.Value("o")

# Features

• Allow passing options and non-options in any order.
Use `SetParsingStyle(StopAtFirstFree)` to stop parsing at the first non-option.

• Short options (`-o`) that can be bundled (`-abc`).
The first option in a bundle that takes an argument uses the rest of the bundle as its argument.
For example: `-ofile` and `-vofile`.

• Support for `--long` options with their argument after a space or an equals sign.
For example: You can use `--output=file` and `--output file`.

• Long only mode, where `-output` is the same as `--output`.

• An option can have both a short and a long name.
Either can be used on the command line and to query the result.

• Options with optional arguments.
For example: `--color=auto`, `--color auto` or just `--color`.
Only the long form takes the next argument, and only when it doesn't start with a dash.

• Required options, options allowed at most once and repeatable options.
`Count` reports how many times a repeatable option was passed, `Values` and `Positions` return every occurrence.

• Supports passing `--` to stop parsing arguments (everything after will be left in `Free()`).

• Support for the lonesome dash "-".
To indicate, for example, when to read input from STDIO.

• Simple synopsis and option list automated help, aligned by display width.

• Errors expose their kind and the offending option, and match sentinel errors with `errors.Is`.

# Panic

The library will panic if it finds that the programmer (not end user):

• Defined an option without a name, with a short name longer than one character, or with a single character long name.

• Queried a Matches object for an option that was never defined.
*/
package getopts
