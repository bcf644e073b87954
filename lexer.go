// Copyright (C) 2024 The jtok Authors. All Rights Reserved.

package jtok

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"go4.org/mem"
)

// Tokenize scans input and returns its complete token sequence in order of
// appearance. It performs no structural validation: any sequence of valid
// tokens is accepted, whether or not it forms a valid JSON document.
//
// On failure the returned error is a *LexError identifying the kind of
// failure and its byte offset. Whitespace between tokens is discarded, but
// whitespace after the final token is an error: running off the end of the
// input while looking for the start of a token reports UnexpectedEndOfInput.
// An empty input yields an empty sequence.
func Tokenize(input string) ([]Token, error) {
	lx := &lexer{in: input}
	var toks []Token
	for lx.pos < len(lx.in) {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// A lexer holds the scanning state: the input text and a single forward
// byte offset. The lexer never backtracks.
type lexer struct {
	in  string
	pos int
}

// next scans and returns the next token of the input. The position must be
// inside the input when next is called.
func (lx *lexer) next() (Token, error) {
	for lx.pos < len(lx.in) && isSpace(lx.in[lx.pos]) {
		lx.pos++
	}
	if lx.pos >= len(lx.in) {
		return Token{}, &LexError{Kind: UnexpectedEndOfInput, Offset: lx.pos}
	}

	ch, _ := utf8.DecodeRuneInString(lx.in[lx.pos:])

	// Handle punctuation.
	if k, ok := selfDelim(ch); ok {
		start := lx.pos
		lx.pos++
		return Token{Kind: k, Pos: start, End: lx.pos}, nil
	}

	// Handle string values.
	if ch == '"' {
		return lx.scanString()
	}

	// Handle numbers.
	if ch == '-' || ('0' <= ch && ch <= '9') {
		return lx.scanNumber()
	}

	// Handle constants: null, false, true.
	switch ch {
	case 'n':
		return lx.scanLiteral(litNull, Null)
	case 'f':
		return lx.scanLiteral(litFalse, False)
	case 't':
		return lx.scanLiteral(litTrue, True)
	}
	return Token{}, &LexError{Kind: UnrecognizedCharacter, Offset: lx.pos, Char: ch}
}

var (
	litNull  = mem.S("null")
	litFalse = mem.S("false")
	litTrue  = mem.S("true")
)

// scanLiteral consumes exactly the characters of want, one at a time. Any
// mismatch, including running out of input partway through, reports
// UnfinishedLiteralValue.
func (lx *lexer) scanLiteral(want mem.RO, kind Kind) (Token, error) {
	start := lx.pos
	for i := 0; i < want.Len(); i++ {
		if lx.pos >= len(lx.in) || lx.in[lx.pos] != want.At(i) {
			return Token{}, &LexError{Kind: UnfinishedLiteralValue, Offset: lx.pos}
		}
		lx.pos++
	}
	return Token{Kind: kind, Pos: start, End: lx.pos}, nil
}

// scanString locates the closing quote of a string literal and captures the
// raw content between the quotes. Escape sequences are not decoded here;
// backslashes are tracked only so an escaped quote does not terminate the
// literal. A backslash flips the escaping state, so a pair of backslashes
// cancels out.
func (lx *lexer) scanString() (Token, error) {
	start := lx.pos
	lx.pos++ // consume the opening quote

	var esc bool
	for lx.pos < len(lx.in) {
		switch b := lx.in[lx.pos]; {
		case b == '"' && !esc:
			raw := lx.in[start+1 : lx.pos]
			lx.pos++
			return Token{Kind: String, Text: raw, Pos: start, End: lx.pos}, nil
		case b == '\\':
			esc = !esc
		default:
			esc = false
		}
		lx.pos++
	}
	return Token{}, &LexError{Kind: UnclosedQuotes, Offset: lx.pos}
}

// scanNumber consumes a maximal run of digits containing at most one
// decimal point, with an optional leading sign. A second "." terminates the
// number and is left for the next dispatch. Exponents are not part of the
// grammar. The accumulated text is decoded by strconv.ParseFloat, which is
// lenient about redundant leading zeroes and a bare trailing point.
func (lx *lexer) scanNumber() (Token, error) {
	start := lx.pos
	if lx.in[lx.pos] == '-' {
		lx.pos++
	}
	var dot bool
	for lx.pos < len(lx.in) {
		if b := lx.in[lx.pos]; isDigit(b) {
			lx.pos++
		} else if b == '.' && !dot {
			dot = true
			lx.pos++
		} else {
			break
		}
	}

	text := lx.in[start:lx.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, &LexError{Kind: NumberParseFailure, Offset: start, Err: err}
	}
	return Token{Kind: Number, Text: text, Num: v, Pos: start, End: lx.pos}, nil
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }
func isDigit(b byte) bool { return '0' <= b && b <= '9' }

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
