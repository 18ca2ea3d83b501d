// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

// Option represents a zero-or-one-value result: Full (value present) or
// Empty (computation aborted, no result available downstream).
//
// Option values are immutable. Absence propagates by short-circuit: once
// Empty is produced, FlatMapOption never invokes its continuation.
type Option[A any] struct {
	value A
	full  bool
}

// Full constructs a present Option.
func Full[A any](a A) Option[A] {
	return Option[A]{value: a, full: true}
}

// Empty constructs an absent Option.
func Empty[A any]() Option[A] {
	return Option[A]{}
}

// IsFull reports whether the value is present.
func (o Option[A]) IsFull() bool { return o.full }

// IsEmpty reports whether the value is absent.
func (o Option[A]) IsEmpty() bool { return !o.full }

// GetFull returns the value and whether it is present.
func (o Option[A]) GetFull() (A, bool) { return o.value, o.full }

// MatchOption applies onFull to a present value or calls onEmpty.
func MatchOption[A, B any](o Option[A], onFull func(A) B, onEmpty func() B) B {
	if o.full {
		return onFull(o.value)
	}
	return onEmpty()
}

// MapOption applies a pure function to the value if present.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.full {
		return Empty[B]()
	}
	return Full(f(o.value))
}

// ApOption applies an optional function to an optional value.
// The result is absent if either side is absent.
func ApOption[A, B any](of Option[func(A) B], oa Option[A]) Option[B] {
	if !of.full || !oa.full {
		return Empty[B]()
	}
	return Full(of.value(oa.value))
}

// FlatMapOption sequences an Option into an Option-producing continuation.
// Absence short-circuits: f is not invoked when o is Empty.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if !o.full {
		return Empty[B]()
	}
	return f(o.value)
}
