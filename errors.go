// This file is part of go-getopts.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopts

import (
	"errors"
	"fmt"
)

// ErrorParsing - Indicates that there was an error with cli args parsing.
// Every Fail matches it with errors.Is.
var ErrorParsing = errors.New("parsing error")

// Sentinel errors, one per FailKind.
var (
	ErrArgumentMissing     = fmt.Errorf("%w: argument missing", ErrorParsing)
	ErrUnrecognizedOption  = fmt.Errorf("%w: unrecognized option", ErrorParsing)
	ErrOptionMissing       = fmt.Errorf("%w: option missing", ErrorParsing)
	ErrOptionDuplicated    = fmt.Errorf("%w: option duplicated", ErrorParsing)
	ErrUnexpectedArgument  = fmt.Errorf("%w: unexpected argument", ErrorParsing)
	ErrConvert             = errors.New("conversion error")
	errUnknownFailSentinel = fmt.Errorf("%w: unknown failure", ErrorParsing)
)

// FailKind - The closed set of user input failures.
type FailKind int

// Failure kinds
const (
	ArgumentMissing    FailKind = iota // An option that requires an argument was given none.
	UnrecognizedOption                 // An option, or a token, was not recognized.
	OptionMissing                      // A required option was not given.
	OptionDuplicated                   // An option that can occur at most once was given more than once.
	UnexpectedArgument                 // An option that takes no argument was given one.
)

func (k FailKind) String() string {
	switch k {
	case ArgumentMissing:
		return "ArgumentMissing"
	case UnrecognizedOption:
		return "UnrecognizedOption"
	case OptionMissing:
		return "OptionMissing"
	case OptionDuplicated:
		return "OptionDuplicated"
	case UnexpectedArgument:
		return "UnexpectedArgument"
	}
	return fmt.Sprintf("FailKind(%d)", int(k))
}

// Fail - Error returned by Parse when the user input doesn't match the declared options.
//
// Name is the option name as written by the user (without dashes), the
// canonical name for validation failures, or the literal offending token.
type Fail struct {
	Kind FailKind
	Name string
}

func (f *Fail) Error() string {
	switch f.Kind {
	case ArgumentMissing:
		return fmt.Sprintf("Argument to option '%s' missing", f.Name)
	case UnrecognizedOption:
		return fmt.Sprintf("Unrecognized option: '%s'", f.Name)
	case OptionMissing:
		return fmt.Sprintf("Required option '%s' missing", f.Name)
	case OptionDuplicated:
		return fmt.Sprintf("Option '%s' given more than once", f.Name)
	case UnexpectedArgument:
		return fmt.Sprintf("Option '%s' does not take an argument", f.Name)
	}
	return fmt.Sprintf("%s: '%s'", f.Kind, f.Name)
}

// Unwrap - Allows errors.Is(err, ErrArgumentMissing) and errors.Is(err, ErrorParsing).
func (f *Fail) Unwrap() error {
	switch f.Kind {
	case ArgumentMissing:
		return ErrArgumentMissing
	case UnrecognizedOption:
		return ErrUnrecognizedOption
	case OptionMissing:
		return ErrOptionMissing
	case OptionDuplicated:
		return ErrOptionDuplicated
	case UnexpectedArgument:
		return ErrUnexpectedArgument
	}
	return errUnknownFailSentinel
}

func newFail(kind FailKind, name string) *Fail {
	return &Fail{Kind: kind, Name: name}
}
