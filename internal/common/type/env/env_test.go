// Released under an MIT license. See LICENSE.

package env_test

import (
	"testing"

	"github.com/skein-lang/skein/internal/common/type/env"
	"github.com/skein-lang/skein/internal/common/type/sym"
)

func TestLookupWalksEnclosingScopes(t *testing.T) {
	outer := env.New(nil)
	outer.Define("x", sym.New("outer"))

	inner := env.New(outer)

	r := inner.Lookup("x")
	if r == nil {
		t.Fatal("x should be visible in the inner scope")
	}

	if !r.Get().Equal(sym.New("outer")) {
		t.Errorf("got %v, want outer", r.Get())
	}
}

func TestDefineShadows(t *testing.T) {
	outer := env.New(nil)
	outer.Define("x", sym.New("outer"))

	inner := env.New(outer)
	inner.Define("x", sym.New("inner"))

	if !inner.Lookup("x").Get().Equal(sym.New("inner")) {
		t.Error("inner scope should shadow the outer binding")
	}

	if !outer.Lookup("x").Get().Equal(sym.New("outer")) {
		t.Error("the outer binding should be untouched")
	}
}

func TestSetThroughSharedCell(t *testing.T) {
	outer := env.New(nil)
	outer.Define("x", sym.New("before"))

	a := env.New(outer)
	b := env.New(outer)

	// Both extensions resolve x to the same cell, so an assignment made
	// through one is visible through the other.
	a.Lookup("x").Set(sym.New("after"))

	if !b.Lookup("x").Get().Equal(sym.New("after")) {
		t.Error("assignment should be visible through every extension")
	}
}

func TestLookupUnbound(t *testing.T) {
	s := env.New(nil)

	if s.Lookup("missing") != nil {
		t.Error("lookup of an unbound name should return nil")
	}
}

func TestRedefineRebindsWithoutTouchingCaptures(t *testing.T) {
	s := env.New(nil)
	s.Define("x", sym.New("old"))

	captured := s.Lookup("x")

	s.Define("x", sym.New("new"))

	if !captured.Get().Equal(sym.New("old")) {
		t.Error("a redefinition should create a fresh cell")
	}

	if !s.Lookup("x").Get().Equal(sym.New("new")) {
		t.Error("lookup should find the new binding")
	}
}
