// This file is part of go-getopts.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopts

import (
	"strings"
)

type tokenKind int

const (
	tokenFree       tokenKind = iota // Regular argument, including the lonesome dash '-'
	tokenTerminator                  // --
	tokenLong                        // --name, --name=arg, or -name in long only mode
	tokenShort                       // -abc
)

func (k tokenKind) String() string {
	switch k {
	case tokenFree:
		return "free"
	case tokenTerminator:
		return "terminator"
	case tokenLong:
		return "long"
	case tokenShort:
		return "short"
	}
	return "unknown"
}

// isOption - Check if the given string is option shaped: it starts with '-' and it is not the lonesome dash.
func isOption(s string) bool {
	return len(s) > 1 && s[0] == '-'
}

/*
classify - Determines how a top level token is handled.

	|===
	|Token      |normal     |long only

	|file       |free       |free
	|-          |free       |free
	|--         |terminator |terminator
	|--opt=arg  |long       |long
	|-opt       |short      |long
	|===
*/
func classify(s string, longOnly bool) tokenKind {
	switch {
	case !isOption(s):
		return tokenFree
	case s == "--":
		return tokenTerminator
	case s[1] == '-' || longOnly:
		return tokenLong
	}
	return tokenShort
}

// splitLong - Removes the leading dashes from a long token and splits it at the first '='.
// For example: "--opt=a=b" returns "opt", "a=b", true.
func splitLong(s string) (name, arg string, hasArg bool) {
	if strings.HasPrefix(s, "--") {
		s = s[2:]
	} else {
		s = s[1:]
	}
	return strings.Cut(s, "=")
}
