// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl_test

import (
	"testing"

	"code.hybscloud.com/mtl"
)

func TestOptionFull(t *testing.T) {
	o := mtl.Full(42)
	if !o.IsFull() || o.IsEmpty() {
		t.Fatal("Full should be full")
	}
	v, ok := o.GetFull()
	if !ok || v != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", v, ok)
	}
}

func TestOptionEmpty(t *testing.T) {
	o := mtl.Empty[int]()
	if o.IsFull() || !o.IsEmpty() {
		t.Fatal("Empty should be empty")
	}
	v, ok := o.GetFull()
	if ok || v != 0 {
		t.Fatalf("got (%d, %v), want (0, false)", v, ok)
	}
}

func TestMatchOption(t *testing.T) {
	got := mtl.MatchOption(mtl.Full(21),
		func(x int) int { return x * 2 },
		func() int { return -1 },
	)
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}

	got = mtl.MatchOption(mtl.Empty[int](),
		func(x int) int { return x * 2 },
		func() int { return -1 },
	)
	if got != -1 {
		t.Fatalf("got %d, want -1", got)
	}
}

func TestMapOption(t *testing.T) {
	full := mtl.MapOption(mtl.Full(21), func(x int) int { return x * 2 })
	if full != mtl.Full(42) {
		t.Fatalf("got %v, want Full(42)", full)
	}

	empty := mtl.MapOption(mtl.Empty[int](), func(x int) int { return x * 2 })
	if !empty.IsEmpty() {
		t.Fatal("map over Empty should stay empty")
	}
}

func TestApOption(t *testing.T) {
	double := mtl.Full(func(x int) int { return x * 2 })

	if got := mtl.ApOption(double, mtl.Full(21)); got != mtl.Full(42) {
		t.Fatalf("got %v, want Full(42)", got)
	}
	if got := mtl.ApOption(double, mtl.Empty[int]()); !got.IsEmpty() {
		t.Fatal("absent argument should give Empty")
	}
	if got := mtl.ApOption(mtl.Empty[func(int) int](), mtl.Full(21)); !got.IsEmpty() {
		t.Fatal("absent function should give Empty")
	}
}

func TestFlatMapOption(t *testing.T) {
	got := mtl.FlatMapOption(mtl.Full(21), func(x int) mtl.Option[int] {
		return mtl.Full(x * 2)
	})
	if got != mtl.Full(42) {
		t.Fatalf("got %v, want Full(42)", got)
	}
}

func TestFlatMapOptionShortCircuit(t *testing.T) {
	called := false
	got := mtl.FlatMapOption(mtl.Empty[int](), func(x int) mtl.Option[int] {
		called = true
		return mtl.Full(x)
	})
	if !got.IsEmpty() {
		t.Fatal("want Empty")
	}
	if called {
		t.Fatal("continuation must not run after absence")
	}
}
