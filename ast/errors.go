// Copyright (C) 2024 The jtok Authors. All Rights Reserved.

package ast

import "fmt"

// TokenErrorKind enumerates the ways structural parsing can fail.
type TokenErrorKind int

// Constants defining the valid TokenErrorKind values.
const (
	UnfinishedEscape      TokenErrorKind = 1 + iota // a \u escape with fewer than four digits remaining
	InvalidHexValue                                 // a \u escape digit that is not hexadecimal
	InvalidCodePointValue                           // a \u escape naming no Unicode scalar value
	ExpectedComma                                   // missing separator between elements or members
	ExpectedProperty                                // object member did not start with a string key
	ExpectedColon                                   // missing ":" between a key and its value
	ExpectedValue                                   // no value where one is required
)

var tokenKindStr = [...]string{
	UnfinishedEscape:      "unfinished escape",
	InvalidHexValue:       "invalid hex value",
	InvalidCodePointValue: "invalid code point value",
	ExpectedComma:         "expected comma",
	ExpectedProperty:      "expected property",
	ExpectedColon:         "expected colon",
	ExpectedValue:         "expected value",
}

func (k TokenErrorKind) String() string {
	v := int(k)
	if v < 1 || v >= len(tokenKindStr) {
		return "invalid token error"
	}
	return tokenKindStr[v]
}

// A TokenError describes a structural failure while parsing the token
// sequence. Offset is the byte offset in the original input of the token at
// which the failure was detected, or the end of the final token when the
// sequence ran out.
type TokenError struct {
	Kind   TokenErrorKind
	Offset int
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Kind, e.Offset)
}
