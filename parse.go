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
	"unicode/utf8"

	"github.com/DavidGamba/go-getopts/internal/option"
	"github.com/DavidGamba/go-getopts/internal/tokens"
)

// Parse - Call the parse method when done declaring options.
// args must not include the program name, normally it is `os.Args[1:]`.
//
// On success it returns the Matches, otherwise a *Fail and no Matches.
// An argument that is not valid UTF-8 fails as UnrecognizedOption.
func (o *Options) Parse(args []string) (*Matches, error) {
	for _, arg := range args {
		if !utf8.ValidString(arg) {
			return nil, newFail(UnrecognizedOption, fmt.Sprintf("%q", arg))
		}
	}
	return o.parse(args)
}

// ParseValues - Same as Parse but takes any text like values: string, []byte, fmt.Stringer or error.
// Any other value fails as UnrecognizedOption with a Go syntax representation of the value.
func (o *Options) ParseValues(args []any) (*Matches, error) {
	strs := make([]string, 0, len(args))
	for _, arg := range args {
		s, ok := toText(arg)
		if !ok {
			return nil, newFail(UnrecognizedOption, fmt.Sprintf("%#v", arg))
		}
		strs = append(strs, s)
	}
	return o.parse(strs)
}

func toText(v any) (string, bool) {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case []byte:
		s = string(t)
	case fmt.Stringer:
		s = t.String()
	case error:
		s = t.Error()
	default:
		return "", false
	}
	return s, utf8.ValidString(s)
}

// parser - State of a single Parse call.
type parser struct {
	opts   []*option.Option
	vals   [][]Capture
	tokens *tokens.Cursor
	pos    int // index of the current top level argument
}

func (o *Options) parse(args []string) (*Matches, error) {
	Logger.Debug("parse", "args", args, "style", o.parsingStyle, "longOnly", o.longOnly)

	opts := o.resolve()
	p := &parser{
		opts:   opts,
		vals:   make([][]Capture, len(opts)),
		tokens: tokens.New(args),
	}
	free := []string{}
	argsEnd := -1

	for p.tokens.Advance() {
		cur := p.tokens.Current()
		kind := classify(cur, o.longOnly)
		Logger.Debug("token", "pos", p.pos, "token", cur, "kind", kind)

		switch kind {
		case tokenFree:
			free = append(free, cur)
			if o.parsingStyle == StopAtFirstFree {
				free = append(free, p.tokens.Rest()...)
			}
		case tokenTerminator:
			argsEnd = len(free)
			free = append(free, p.tokens.Rest()...)
		case tokenLong:
			name, arg, hasArg := splitLong(cur)
			err := p.apply(option.NameFromString(name), arg, hasArg, true)
			if err != nil {
				Logger.Debug("fail", "err", err)
				return nil, err
			}
		case tokenShort:
			err := p.cluster(cur)
			if err != nil {
				Logger.Debug("fail", "err", err)
				return nil, err
			}
		}
		p.pos++
	}

	err := validate(p.opts, p.vals)
	if err != nil {
		Logger.Debug("fail", "err", err)
		return nil, err
	}

	// A terminator at the very end doesn't split anything.
	if argsEnd == len(free) {
		argsEnd = -1
	}

	return &Matches{
		opts:    p.opts,
		vals:    p.vals,
		free:    free,
		argsEnd: argsEnd,
	}, nil
}

// cluster - Handles a group of short options like `-abc`.
//
// Options without argument are recorded as they are found.
// The first option that takes an argument ends the cluster, the rest of the
// token, if any, is its argument.
func (p *parser) cluster(cur string) error {
	body := cur[1:]
	for i, r := range body {
		name := option.ShortName(r)
		id := option.FindIndex(p.opts, name)
		if id < 0 {
			return newFail(UnrecognizedOption, name.String())
		}
		if p.opts[id].HasArg == option.No {
			p.record(id, Capture{Pos: p.pos})
			continue
		}
		rest := body[i+utf8.RuneLen(r):]
		return p.apply(name, rest, rest != "", false)
	}
	return nil
}

// apply - Records a single option occurrence according to its argument policy.
// arg is the value attached to the option in the same token, when hasArg is set.
func (p *parser) apply(name option.Name, arg string, hasArg, wasLong bool) error {
	id := option.FindIndex(p.opts, name)
	if id < 0 {
		return newFail(UnrecognizedOption, name.String())
	}
	Logger.Debug("option", "pos", p.pos, "name", name, "arg", arg, "hasArg", hasArg)

	switch p.opts[id].HasArg {
	case option.No:
		if hasArg {
			return newFail(UnexpectedArgument, name.String())
		}
		p.record(id, Capture{Pos: p.pos})
	case option.Maybe:
		if hasArg {
			p.record(id, Capture{Pos: p.pos, Value: arg, HasValue: true})
			return nil
		}
		// Only the long form takes the following argument, and only when it
		// doesn't look like an option itself.
		if next, ok := p.tokens.Peek(); wasLong && ok && !isOption(next) {
			p.tokens.Take()
			p.record(id, Capture{Pos: p.pos, Value: next, HasValue: true})
			return nil
		}
		p.record(id, Capture{Pos: p.pos})
	case option.Yes:
		if hasArg {
			p.record(id, Capture{Pos: p.pos, Value: arg, HasValue: true})
			return nil
		}
		next, ok := p.tokens.Take()
		if !ok {
			return newFail(ArgumentMissing, name.String())
		}
		p.record(id, Capture{Pos: p.pos, Value: next, HasValue: true})
	}
	return nil
}

func (p *parser) record(id int, c Capture) {
	p.vals[id] = append(p.vals[id], c)
}

// validate - Checks the occurrence policy of every option in declaration order.
// Only the first violation is reported.
func validate(opts []*option.Option, vals [][]Capture) error {
	for i, opt := range opts {
		if opt.Occur == option.Req && len(vals[i]) == 0 {
			return newFail(OptionMissing, opt.Name.String())
		}
		if opt.Occur != option.Multi && len(vals[i]) > 1 {
			return newFail(OptionDuplicated, opt.Name.String())
		}
	}
	return nil
}
