// Copyright (C) 2024 The jtok Authors. All Rights Reserved.

// Package path implements simple traversal of document trees by object key
// and array index.
package path

import (
	"fmt"

	"github.com/jtok-dev/jtok/ast"
)

// Get descends from v through the given steps and returns the value it
// arrives at. Each step must be a string, selecting an object member by
// key, or an int, selecting an array element by position; a negative index
// counts backward from the end of the array. Get reports false if any step
// does not apply to the value reached at that point.
func Get(v ast.Value, steps ...any) (ast.Value, bool) {
	for _, step := range steps {
		switch s := step.(type) {
		case string:
			obj, ok := v.(ast.Object)
			if !ok {
				return nil, false
			}
			if v, ok = obj[s]; !ok {
				return nil, false
			}
		case int:
			arr, ok := v.(ast.Array)
			if !ok {
				return nil, false
			}
			if s < 0 {
				s += len(arr)
			}
			if s < 0 || s >= len(arr) {
				return nil, false
			}
			v = arr[s]
		default:
			return nil, false
		}
	}
	return v, true
}

// Must is Get, but panics if the path does not apply. It is intended for
// tests and other contexts where the document shape is already known.
func Must(v ast.Value, steps ...any) ast.Value {
	out, ok := Get(v, steps...)
	if !ok {
		panic(fmt.Sprintf("path %v not found", steps))
	}
	return out
}

// GetString returns the string at the given path, or false if the path
// does not apply or names a value of another type.
func GetString(v ast.Value, steps ...any) (string, bool) {
	got, ok := Get(v, steps...)
	if !ok {
		return "", false
	}
	s, ok := got.(ast.String)
	return string(s), ok
}

// GetNumber returns the number at the given path, or false if the path
// does not apply or names a value of another type.
func GetNumber(v ast.Value, steps ...any) (float64, bool) {
	got, ok := Get(v, steps...)
	if !ok {
		return 0, false
	}
	n, ok := got.(ast.Number)
	return float64(n), ok
}

// GetBool returns the Boolean at the given path, or false if the path does
// not apply or names a value of another type.
func GetBool(v ast.Value, steps ...any) (bool, bool) {
	got, ok := Get(v, steps...)
	if !ok {
		return false, false
	}
	b, ok := got.(ast.Bool)
	return bool(b), ok
}
