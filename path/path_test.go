// Copyright (C) 2024 The jtok Authors. All Rights Reserved.

package path_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"

	"github.com/jtok-dev/jtok/ast"
	"github.com/jtok-dev/jtok/path"
)

const testDoc = `{
  "name": "gopher",
  "limbs": 4,
  "aquatic": true,
  "foods": ["timber", {"kind": "cable", "tasty": true}],
  "nil": null
}`

func mustParse(t *testing.T) ast.Value {
	t.Helper()
	v, err := ast.Parse(testDoc)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return v
}

func TestGet(t *testing.T) {
	v := mustParse(t)

	tests := []struct {
		name  string
		steps []any
		want  ast.Value
		ok    bool
	}{
		{"empty path is identity", nil, v, true},
		{"member", []any{"name"}, ast.String("gopher"), true},
		{"null member", []any{"nil"}, ast.Null{}, true},
		{"element", []any{"foods", 0}, ast.String("timber"), true},
		{"nested", []any{"foods", 1, "kind"}, ast.String("cable"), true},
		{"negative index", []any{"foods", -1, "tasty"}, ast.Bool(true), true},

		{"missing key", []any{"wings"}, nil, false},
		{"index out of range", []any{"foods", 2}, nil, false},
		{"negative out of range", []any{"foods", -3}, nil, false},
		{"key into array", []any{"foods", "kind"}, nil, false},
		{"index into object", []any{0}, nil, false},
		{"step through scalar", []any{"name", "x"}, nil, false},
		{"bad step type", []any{3.5}, nil, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := path.Get(v, test.steps...)
			if ok != test.ok {
				t.Fatalf("Get(%v): reported %v, want %v", test.steps, ok, test.ok)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Get(%v): (-want, +got)\n%s", test.steps, diff)
			}
		})
	}
}

func TestMust(t *testing.T) {
	v := mustParse(t)

	if got := path.Must(v, "limbs"); got != ast.Number(4) {
		t.Errorf("Must(limbs): got %v, want 4", got)
	}
	mtest.MustPanic(t, func() { path.Must(v, "wings") })
	mtest.MustPanic(t, func() { path.Must(v, "foods", 7) })
}

func TestTypedGetters(t *testing.T) {
	v := mustParse(t)

	if s, ok := path.GetString(v, "name"); !ok || s != "gopher" {
		t.Errorf(`GetString(name): got %q, %v; want "gopher", true`, s, ok)
	}
	if n, ok := path.GetNumber(v, "limbs"); !ok || n != 4 {
		t.Errorf("GetNumber(limbs): got %v, %v; want 4, true", n, ok)
	}
	if b, ok := path.GetBool(v, "aquatic"); !ok || !b {
		t.Errorf("GetBool(aquatic): got %v, %v; want true, true", b, ok)
	}

	// Type mismatches and missing paths report false.
	if _, ok := path.GetString(v, "limbs"); ok {
		t.Error("GetString(limbs) should not apply to a number")
	}
	if _, ok := path.GetNumber(v, "name"); ok {
		t.Error("GetNumber(name) should not apply to a string")
	}
	if _, ok := path.GetBool(v, "wings"); ok {
		t.Error("GetBool(wings) should not apply to a missing member")
	}
}
