// Copyright (C) 2024 The jtok Authors. All Rights Reserved.

// Package ast defines the document tree for JSON values, and a
// recursive-descent parser that constructs trees from the token sequences
// produced by the jtok package.
package ast

// A Value is an arbitrary JSON document value. It is a closed sum: the only
// implementations are Null, Bool, Number, String, Array, and Object. A tree
// of values is built bottom-up in a single pass by the parser and is not
// modified afterward; every child is exclusively owned by its parent, so no
// cycles can occur.
type Value interface {
	isValue()
}

// Null represents the null constant.
type Null struct{}

// A Bool is a Boolean constant, true or false.
type Bool bool

// A Number is a numeric value. Integral and fractional JSON numbers share
// this 64-bit floating-point representation.
type Number float64

// A String is a string value with all escape sequences fully decoded.
type String string

// An Array is an ordered sequence of values. Element order is significant
// and matches the source.
type Array []Value

// An Object maps member keys to values. Keys are unique by construction and
// iteration order is not meaningful; when a key occurs more than once in
// the source, the later value silently replaces the earlier one.
type Object map[string]Value

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}
