// Copyright (C) 2024 The jtok Authors. All Rights Reserved.

package jtok_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/jtok-dev/jtok"
	"github.com/jtok-dev/jtok/ast"
)

// benchInput loads the benchmark document. The grammar rejects whitespace
// after the final token, so any trailing newline is trimmed here.
func benchInput(b *testing.B) string {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	return string(bytes.TrimSpace(input))
}

func BenchmarkTokenize(b *testing.B) {
	input := benchInput(b)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			dec := json.NewDecoder(strings.NewReader(input))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	b.Run("Tokenize", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := jtok.Tokenize(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}

func BenchmarkParse(b *testing.B) {
	input := benchInput(b)

	b.Run("Unmarshal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v any
			if err := json.Unmarshal([]byte(input), &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Parse", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := ast.Parse(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
