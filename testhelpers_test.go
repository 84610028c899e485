// This file is part of go-getopts.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopts

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

// checkFail - Verifies that err is a *Fail of the given kind and name.
func checkFail(t *testing.T, err error, kind FailKind, name string) {
	t.Helper()
	var f *Fail
	if !errors.As(err, &f) {
		t.Fatalf("expected *Fail, got '%#v'", err)
	}
	if f.Kind != kind || f.Name != name {
		t.Errorf("wrong failure: got %s(%q), want %s(%q)", f.Kind, f.Name, kind, name)
	}
}

// setupTestLogging - Defines an output for the default Logger and returns a
// function that prints the output if the test failed.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	buf := new(bytes.Buffer)
	Logger.SetOutput(buf)
	return func() {
		Logger.SetOutput(io.Discard)
		if t.Failed() && buf.Len() > 0 {
			t.Log("\n" + buf.String())
		}
	}
}

// Test helper to compare two string outputs and find the first difference
func firstDiff(got, expected string) string {
	same := ""
	for i, gc := range got {
		if len([]rune(expected)) <= i {
			return fmt.Sprintf("got:\n%s\nIndex: %d | diff: got '%s' - exp '%s'\n", got, len(expected), got, expected)
		}
		if gc != []rune(expected)[i] {
			return fmt.Sprintf("got:\n%s\nIndex: %d | diff: got '%c' - exp '%c'\n%s\n", got, i, gc, []rune(expected)[i], same)
		}
		same += string(gc)
	}
	if len(expected) > len(got) {
		return fmt.Sprintf("got:\n%s\nIndex: %d | diff: got '%s' - exp '%s'\n", got, len(got), got, expected)
	}
	return ""
}
