// This file is part of go-getopts.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - renders option groups as aligned, word wrapped help text.
package help

import (
	"iter"
	"strings"

	"github.com/DavidGamba/go-getopts/internal/option"
	"github.com/mattn/go-runewidth"
)

// Padding - Indentation of every option row.
var Padding = 4

// Layout of the option list.
const (
	DescColumn    = 24 // Column where descriptions start
	DescWidth     = 54 // Maximum display width of a description line
	SynopsisWidth = 80 // Width at which the synopsis wraps
)

// descSep - Separator between description lines, it indents continuation lines to DescColumn.
var descSep = "\n" + strings.Repeat(" ", DescColumn)

// OptionRows - Returns a lazy sequence with one rendered row per group, in declaration order.
func OptionRows(groups []option.Group, longOnly bool) iter.Seq[string] {
	anyShort := false
	for _, g := range groups {
		if g.ShortName != "" {
			anyShort = true
			break
		}
	}
	return func(yield func(string) bool) {
		for _, g := range groups {
			if !yield(OptionRow(g, anyShort, longOnly)) {
				return
			}
		}
	}
}

// OptionRow - Renders a single group.
//
// anyShort reserves the short option column when some other group has a short name.
func OptionRow(g option.Group, anyShort, longOnly bool) string {
	row := strings.Repeat(" ", Padding)

	switch {
	case g.ShortName != "":
		row += "-" + g.ShortName
		if g.LongName != "" {
			row += ", "
		} else {
			// Single space so the hint lines up.
			row += " "
		}
	case anyShort:
		row += "    "
	}

	if g.LongName != "" {
		row += longPrefix(longOnly) + g.LongName + " "
	}

	switch g.HasArg {
	case option.Yes:
		row += g.Hint
	case option.Maybe:
		row += "[" + g.Hint + "]"
	}

	if w := runewidth.StringWidth(row); w < DescColumn {
		row += strings.Repeat(" ", DescColumn-w)
	} else {
		row += descSep
	}

	return row + strings.Join(Wrap(g.Desc, DescWidth), descSep)
}

// Wrap - Greedy word wrap of s to lim display columns.
//
// Every line of s is wrapped on its own so author line breaks are kept.
// A word wider than lim is placed alone on its line without being split.
func Wrap(s string, lim int) []string {
	rows := []string{}
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		line = strings.TrimSuffix(line, "\r")
		row := ""
		rowWidth := 0
		for _, word := range strings.Fields(line) {
			wordWidth := runewidth.StringWidth(word)
			sep := 0
			if row != "" {
				sep = 1
			}
			if rowWidth+sep+wordWidth <= lim {
				if sep > 0 {
					row += " "
				}
				row += word
				rowWidth += sep + wordWidth
				continue
			}
			if row != "" {
				rows = append(rows, row)
			}
			row = word
			rowWidth = wordWidth
		}
		if row != "" {
			rows = append(rows, row)
		}
	}
	return rows
}

// Synopsis - Returns a one line summary of the groups, wrapped at SynopsisWidth.
// For example:
//
//	Usage: tail [-n NUM] [-f] [-h]
func Synopsis(program string, groups []option.Group, longOnly bool) string {
	line := "Usage: " + program
	indent := strings.Repeat(" ", runewidth.StringWidth(line))
	out := ""
	first := true
	for _, g := range groups {
		syn := formatOption(g, longOnly)
		if !first && runewidth.StringWidth(line)+1+runewidth.StringWidth(syn) > SynopsisWidth {
			out += line + "\n"
			line = indent
		}
		line += " " + syn
		first = false
	}
	return out + line
}

// formatOption - Synopsis entry for a group: short name preferred, brackets unless required.
func formatOption(g option.Group, longOnly bool) string {
	txt := ""
	if g.Occur != option.Req {
		txt += "["
	}
	if g.ShortName != "" {
		txt += "-" + g.ShortName
	} else {
		txt += longPrefix(longOnly) + g.LongName
	}
	switch g.HasArg {
	case option.Yes:
		txt += " " + g.Hint
	case option.Maybe:
		txt += " [" + g.Hint + "]"
	}
	if g.Occur != option.Req {
		txt += "]"
	}
	if g.Occur == option.Multi {
		txt += ".."
	}
	return txt
}

func longPrefix(longOnly bool) string {
	if longOnly {
		return "-"
	}
	return "--"
}
