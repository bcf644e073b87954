// Copyright (C) 2024 The jtok Authors. All Rights Reserved.

// Package jtok implements the lexical half of a two-stage JSON parsing
// pipeline: it converts JSON source text into a fully-materialized sequence
// of tokens.
//
// # Tokenizing
//
// Tokenize scans an input string and returns its complete token sequence,
// or a *LexError describing the first lexical fault:
//
//	toks, err := jtok.Tokenize(`{"key": "value"}`)
//	if err != nil {
//	   log.Fatalf("Tokenize failed: %v", err)
//	}
//
// The lexer performs no structural validation and no escape decoding:
// string tokens carry their raw content, and the structure of the token
// sequence is checked by the parser in the ast subpackage, which is the
// usual entry point for callers who want a document tree:
//
//	v, err := ast.Parse(`{"key": "value"}`)
//
// # Grammar notes
//
// The accepted grammar is deliberately restricted to the JSON core: no
// comments, no trailing commas, and numeric literals without exponents.
// Numbers are decoded to 64-bit floating point at lex time, so integral and
// fractional values share one representation.
package jtok
