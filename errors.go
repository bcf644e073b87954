// Copyright (C) 2024 The jtok Authors. All Rights Reserved.

package jtok

import "fmt"

// LexErrorKind enumerates the ways tokenization can fail.
type LexErrorKind int

// Constants defining the valid LexErrorKind values.
const (
	UnfinishedLiteralValue LexErrorKind = 1 + iota // a name prefix that is not null, false, or true
	UnclosedQuotes                                 // input ended inside a string literal
	UnexpectedEndOfInput                           // input ended while skipping whitespace
	UnrecognizedCharacter                          // a character with no role in the grammar
	NumberParseFailure                             // a numeric literal that does not parse
)

var lexKindStr = [...]string{
	UnfinishedLiteralValue: "unfinished literal value",
	UnclosedQuotes:         "unclosed quotes",
	UnexpectedEndOfInput:   "unexpected end of input",
	UnrecognizedCharacter:  "unrecognized character",
	NumberParseFailure:     "number parse failure",
}

func (k LexErrorKind) String() string {
	v := int(k)
	if v < 1 || v >= len(lexKindStr) {
		return "invalid lex error"
	}
	return lexKindStr[v]
}

// A LexError describes a lexical failure at a byte offset of the input.
// Char is set only for UnrecognizedCharacter; Err carries the underlying
// strconv cause only for NumberParseFailure.
type LexError struct {
	Kind   LexErrorKind
	Offset int
	Char   rune
	Err    error
}

func (e *LexError) Error() string {
	switch e.Kind {
	case UnrecognizedCharacter:
		return fmt.Sprintf("unrecognized character %q (offset %d)", e.Char, e.Offset)
	case NumberParseFailure:
		return fmt.Sprintf("number parse failure: %v (offset %d)", e.Err, e.Offset)
	default:
		return fmt.Sprintf("%s (offset %d)", e.Kind, e.Offset)
	}
}

// Unwrap returns the underlying cause, if any.
func (e *LexError) Unwrap() error { return e.Err }
