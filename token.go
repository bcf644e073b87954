// Copyright (C) 2024 The jtok Authors. All Rights Reserved.

package jtok

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Colon               // colon ":"
	Comma               // comma ","
	Null                // constant: null
	False               // constant: false
	True                // constant: true
	Number              // number: integer or fractional
	String              // quoted string
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Colon:   `":"`,
	Comma:   `","`,
	Null:    "null",
	False:   "false",
	True:    "true",
	Number:  "number",
	String:  "string",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single lexical element of the input. Tokens are produced by
// Tokenize and consumed once by the parser; they are never exposed past that
// boundary in decoded form.
//
// For String tokens, Text holds the raw content between the enclosing
// quotation marks with escape sequences still undecoded. For Number tokens,
// Text holds the literal text and Num its decoded value. Other kinds carry
// no payload beyond their Kind.
type Token struct {
	Kind Kind
	Text string
	Num  float64

	Pos, End int // byte offsets of the token in the input
}

// Span returns the location span of t in the original input.
func (t Token) Span() Span { return Span{Pos: t.Pos, End: t.End} }

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}
