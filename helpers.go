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
	"strconv"
)

// Int - Same as Value but converts the argument to an int.
// It returns false when Value would, and an error wrapping ErrConvert when the argument is not an int.
func (m *Matches) Int(name string) (int, bool, error) {
	arg, ok := m.Value(name)
	if !ok {
		return 0, false, nil
	}
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, true, fmt.Errorf("%w: can't convert argument for option '%s' to int: '%s'", ErrConvert, name, arg)
	}
	return i, true, nil
}

// Float64 - Same as Value but converts the argument to a float64.
func (m *Matches) Float64(name string) (float64, bool, error) {
	arg, ok := m.Value(name)
	if !ok {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, true, fmt.Errorf("%w: can't convert argument for option '%s' to float64: '%s'", ErrConvert, name, arg)
	}
	return f, true, nil
}
