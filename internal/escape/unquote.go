// Copyright (C) 2024 The jtok Authors. All Rights Reserved.

// Package escape handles decoding of escape sequences in JSON strings.
package escape

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Errors reported by Unquote. Callers match these with errors.Is.
var (
	ErrUnfinishedEscape = errors.New("unfinished escape sequence")
	ErrInvalidHex       = errors.New("invalid hex value")
	ErrInvalidCodePoint = errors.New("invalid code point value")
)

// Unquote decodes the raw content of a JSON string literal. The input must
// have the enclosing double quotation marks already removed.
//
// The standard short escapes are replaced by their control or quote
// characters, and \uXXXX escapes are resolved as independent 16-bit code
// values: no surrogate-pair combination is performed, so an escaped
// surrogate half reports ErrInvalidCodePoint. Unknown escapes are not an
// error; the escaped character is passed through unchanged.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	putRune := func(r rune) {
		var buf [4]byte
		n := utf8.EncodeRune(buf[:], r)
		dec = append(dec, buf[:n]...)
	}
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			// A trailing backslash escapes nothing; drop it.
			break
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}

		src = src.SliceFrom(n)
		switch r {
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			v, rest, err := decodeHex4(src)
			if err != nil {
				return nil, err
			}
			src = rest
			putRune(v)
		default:
			// Covers the identity escapes \" and \\ as well as the lenient
			// passthrough of every other escaped character.
			putRune(r)
		}

		// Look for the next escape sequence, and if one is not found we can
		// blit the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// decodeHex4 consumes exactly four hexadecimal digits from the front of src
// and combines them big-endian into a code value, which must be a valid
// Unicode scalar value.
func decodeHex4(src mem.RO) (rune, mem.RO, error) {
	var v rune
	for i := 0; i < 4; i++ {
		if src.Len() == 0 {
			return 0, src, ErrUnfinishedEscape
		}
		d := hexDigit(src.At(0))
		if d < 0 {
			return 0, src, ErrInvalidHex
		}
		v = v<<4 | rune(d)
		src = src.SliceFrom(1)
	}
	if utf16.IsSurrogate(v) {
		return 0, src, ErrInvalidCodePoint
	}
	return v, src, nil
}

func hexDigit(b byte) int {
	switch {
	case '0' <= b && b <= '9':
		return int(b - '0')
	case 'a' <= b && b <= 'f':
		return int(b-'a') + 10
	case 'A' <= b && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}
