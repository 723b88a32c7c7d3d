// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// SetString sets the vector from a string in the form written by
// [Vector.String], e.g. "(1, 2, 3)"; the parentheses and commas are
// optional. The length becomes the number of values given.
func (v *Vector[T]) SetString(str string) error {
	vals, err := parseValues[T](strings.Trim(strings.TrimSpace(str), "()"))
	if err != nil {
		return fmt.Errorf("(Vector).SetString(%q): %w", str, err)
	}
	nv, err := FromSlice(vals)
	if err != nil {
		return fmt.Errorf("(Vector).SetString(%q): %w", str, err)
	}
	*v = nv
	return nil
}

// SetString sets the matrix from a row-major string in the form written
// by [Matrix.String], e.g. "[1 2; 3 4]": rows are separated by
// semicolons and values by spaces or commas; the brackets are optional.
// Like [FromRows], every row must have the same number of values.
func (m *Matrix[T]) SetString(str string) error {
	body := strings.Trim(strings.TrimSpace(str), "[]")
	lines := strings.Split(body, ";")
	rows := make([][]T, len(lines))
	for i, line := range lines {
		vals, err := parseValues[T](line)
		if err != nil {
			return fmt.Errorf("(Matrix).SetString(%q): row %d: %w", str, i, err)
		}
		rows[i] = vals
	}
	nm, err := FromRows(rows...)
	if err != nil {
		return fmt.Errorf("(Matrix).SetString(%q): %w", str, err)
	}
	*m = nm
	return nil
}

// ParseMatrix returns the matrix parsed by [Matrix.SetString].
func ParseMatrix[T Scalar](str string) (Matrix[T], error) {
	var m Matrix[T]
	err := m.SetString(str)
	return m, err
}

// ParseVector returns the vector parsed by [Vector.SetString].
func ParseVector[T Scalar](str string) (Vector[T], error) {
	var v Vector[T]
	err := v.SetString(str)
	return v, err
}

func parseValues[T Scalar](s string) ([]T, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	vals := make([]T, len(fields))
	for i, f := range fields {
		x, err := parseValue[T](f)
		if err != nil {
			return nil, err
		}
		vals[i] = x
	}
	return vals, nil
}

// parseValue parses one element at the size of T: integer kinds must be
// integers in range, and floats must be finite.
func parseValue[T Scalar](f string) (T, error) {
	typ := reflect.TypeFor[T]()
	switch typ.Kind() {
	case reflect.Float32, reflect.Float64:
		x, err := strconv.ParseFloat(f, typ.Bits())
		if err != nil {
			return 0, err
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, fmt.Errorf("value %q is not finite", f)
		}
		return T(x), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		x, err := strconv.ParseUint(f, 10, typ.Bits())
		return T(x), err
	default:
		x, err := strconv.ParseInt(f, 10, typ.Bits())
		return T(x), err
	}
}
