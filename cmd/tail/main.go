// This file is part of go-getopts.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Command tail - prints the last lines of a file or of standard input.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/DavidGamba/go-getopts"
	"github.com/DavidGamba/go-getopts/internal/tail"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	isTerminalFn = term.IsTerminal
)

const defaultLines = 10

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "tail",
		Level:  log.WarnLevel,
	})
}

// isTerminal - Reports whether r is a file attached to a terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	return ok && isTerminalFn(int(f.Fd()))
}

func main() {
	os.Exit(program(os.Args))
}

func program(args []string) int {
	ctx, cancel, done := getopts.InterruptContext()
	defer func() { cancel(); <-done }()
	logger := newLogger(stderr)

	name := filepath.Base(args[0])
	opts := getopts.New()
	opts.Value("n", "lines", fmt.Sprintf("output the last NUM lines, instead of the last %d", defaultLines), "NUM")
	opts.Flag("f", "follow", "output appended data as the file grows")
	opts.Flag("h", "help", "print this help menu")

	m, err := opts.Parse(args[1:])
	if err != nil {
		fmt.Fprintf(stderr, "%s %s\n\n%s\n", color.RedString("ERROR:"), err, opts.ShortUsage(name))
		return 1
	}

	if m.Present("help") {
		fmt.Fprint(stdout, opts.Usage(fmt.Sprintf("Usage: %s [options] FILE", name)))
		return 0
	}

	lines, ok, err := m.Int("lines")
	if err != nil || (ok && lines < 0) {
		value, _ := m.Value("lines")
		fmt.Fprintf(stderr, "%s invalid number of lines: '%s'\n", color.RedString("ERROR:"), value)
		return 1
	}
	if !ok {
		lines = defaultLines
	}

	tailer := tail.New(stdout, logger)
	free := m.Free()
	if len(free) == 0 {
		if m.Present("follow") {
			logger.Warn("following standard input is not supported, ignoring --follow")
		}
		if isTerminal(stdin) {
			logger.Warn("reading standard input from the terminal, end it with Ctrl-D")
		}
		err = tailer.Reader(stdin, lines)
		if err != nil {
			fmt.Fprintf(stderr, "%s %s\n", color.RedString("ERROR:"), err)
			return 1
		}
		return 0
	}

	path := free[len(free)-1]
	logger.Debug("tail", "path", path, "lines", lines)
	size, err := tailer.File(path, lines)
	if err != nil {
		fmt.Fprintf(stderr, "%s %s\n", color.RedString("ERROR:"), err)
		return 1
	}
	if m.Present("follow") {
		err = tailer.Follow(ctx, path, size)
		if err != nil {
			fmt.Fprintf(stderr, "%s %s\n", color.RedString("ERROR:"), err)
			return 1
		}
		if errors.Is(context.Cause(ctx), getopts.ErrInterrupted) {
			return 130
		}
	}
	return 0
}
