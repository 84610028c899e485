// This file is part of go-getopts.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package tokens - cursor over command line tokens that can look at, and consume, the token after the current one.
package tokens

// Cursor - Walks a list of tokens once.
// The zero value has no tokens.
type Cursor struct {
	cur  string
	rest []string
}

// New - Returns a Cursor positioned before the first token.
func New(args []string) *Cursor {
	return &Cursor{rest: args}
}

// Advance - Moves to the next token.
// Returns false when there are no tokens left.
func (c *Cursor) Advance() bool {
	if len(c.rest) == 0 {
		c.cur = ""
		return false
	}
	c.cur, c.rest = c.rest[0], c.rest[1:]
	return true
}

// Current - Returns the token Advance moved to.
func (c *Cursor) Current() string {
	return c.cur
}

// Peek - Returns the token after the current one without consuming it.
func (c *Cursor) Peek() (string, bool) {
	if len(c.rest) == 0 {
		return "", false
	}
	return c.rest[0], true
}

// Take - Consumes the token after the current one.
// The current token doesn't change, the next Advance skips the consumed one.
func (c *Cursor) Take() (string, bool) {
	next, ok := c.Peek()
	if ok {
		c.rest = c.rest[1:]
	}
	return next, ok
}

// Rest - Consumes every token after the current one.
func (c *Cursor) Rest() []string {
	rest := c.rest
	c.rest = nil
	return rest
}
