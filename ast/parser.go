// Copyright (C) 2024 The jtok Authors. All Rights Reserved.

package ast

import (
	"errors"

	"go4.org/mem"

	"github.com/jtok-dev/jtok"
	"github.com/jtok-dev/jtok/internal/escape"
)

// Parse converts input into a document tree. It runs the lexical and
// structural stages in order: lexical failures are reported as a
// *jtok.LexError, structural failures as a *TokenError. Callers who need to
// know which stage failed can distinguish the two with errors.As.
//
// Tokens after the first complete value are ignored.
func Parse(input string) (Value, error) {
	toks, err := jtok.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks)
}

// ParseTokens runs the structural stage alone, consuming a token sequence
// produced by jtok.Tokenize and returning the tree for its first complete
// value. On failure the returned error is a *TokenError.
func ParseTokens(tokens []jtok.Token) (Value, error) {
	p := &parser{tokens: tokens}
	return p.parseValue()
}

// A parser walks a token sequence with a single forward cursor shared by
// the mutually recursive productions. Recursion depth is bounded by the
// nesting depth of the input; pathologically deep documents can exhaust the
// goroutine stack, which is a resource limit rather than a reportable
// parse failure.
type parser struct {
	tokens []jtok.Token
	pos    int
}

func (p *parser) peek() (jtok.Token, bool) {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos], true
	}
	return jtok.Token{}, false
}

// errAt reports kind at the cursor's current token, or at the end of the
// final token if the cursor has run off the sequence.
func (p *parser) errAt(kind TokenErrorKind) error {
	var off int
	if p.pos < len(p.tokens) {
		off = p.tokens[p.pos].Pos
	} else if n := len(p.tokens); n > 0 {
		off = p.tokens[n-1].End
	}
	return &TokenError{Kind: kind, Offset: off}
}

func (p *parser) parseValue() (Value, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.errAt(ExpectedValue)
	}
	switch tok.Kind {
	case jtok.Null:
		p.pos++
		return Null{}, nil
	case jtok.False:
		p.pos++
		return Bool(false), nil
	case jtok.True:
		p.pos++
		return Bool(true), nil
	case jtok.Number:
		p.pos++
		return Number(tok.Num), nil
	case jtok.String:
		p.pos++
		s, err := p.decodeString(tok)
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case jtok.LBrace:
		return p.parseObject()
	case jtok.LSquare:
		return p.parseArray()
	default:
		return nil, p.errAt(ExpectedValue)
	}
}

func (p *parser) parseArray() (Value, error) {
	arr := Array{}
	p.pos++ // consume "["

	if tok, ok := p.peek(); ok && tok.Kind == jtok.RSquare {
		p.pos++
		return arr, nil
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		tok, ok := p.peek()
		if !ok {
			return nil, p.errAt(ExpectedComma)
		}
		switch tok.Kind {
		case jtok.RSquare:
			p.pos++
			return arr, nil
		case jtok.Comma:
			p.pos++ // the next iteration must find a value
		default:
			return nil, p.errAt(ExpectedComma)
		}
	}
}

func (p *parser) parseObject() (Value, error) {
	obj := Object{}
	p.pos++ // consume "{"

	if tok, ok := p.peek(); ok && tok.Kind == jtok.RBrace {
		p.pos++
		return obj, nil
	}
	for {
		key, ok := p.peek()
		if !ok || key.Kind != jtok.String {
			return nil, p.errAt(ExpectedProperty)
		}
		name, err := p.decodeString(key)
		if err != nil {
			return nil, err
		}
		p.pos++

		if tok, ok := p.peek(); !ok || tok.Kind != jtok.Colon {
			return nil, p.errAt(ExpectedColon)
		}
		p.pos++

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj[name] = v // a repeated key keeps only its last value

		tok, ok := p.peek()
		if !ok {
			return nil, p.errAt(ExpectedComma)
		}
		switch tok.Kind {
		case jtok.RBrace:
			p.pos++
			return obj, nil
		case jtok.Comma:
			p.pos++ // the next iteration must find a key
		default:
			return nil, p.errAt(ExpectedComma)
		}
	}
}

// decodeString resolves the escape sequences in the raw content of a string
// token. Decoding failures are positioned at the token itself.
func (p *parser) decodeString(tok jtok.Token) (string, error) {
	dec, err := escape.Unquote(mem.S(tok.Text))
	if err != nil {
		return "", &TokenError{Kind: escapeErrorKind(err), Offset: tok.Pos}
	}
	return string(dec), nil
}

func escapeErrorKind(err error) TokenErrorKind {
	switch {
	case errors.Is(err, escape.ErrInvalidHex):
		return InvalidHexValue
	case errors.Is(err, escape.ErrInvalidCodePoint):
		return InvalidCodePointValue
	default:
		return UnfinishedEscape
	}
}
