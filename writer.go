// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

// Writer pairs accumulated output with a result value.
// Writer[W] provides accumulating output (logging, tracing) as data: the
// output is an append-only audit channel, never a failure signal.
//
// Combination concatenates output strictly left operand first. That ordering
// is what makes Bind associative; swapping it breaks the monad laws.

// Writer holds an ordered output sequence and a result value.
// Writer values are immutable; combination builds fresh output slices so no
// Writer aliases another's backing array.
type Writer[W, A any] struct {
	Output []W
	Value  A
}

// PureWriter lifts a value with no output.
func PureWriter[W, A any](a A) Writer[W, A] {
	return Writer[W, A]{Value: a}
}

// Tell pairs a single output entry with a value.
func Tell[W, A any](w W, a A) Writer[W, A] {
	return Writer[W, A]{Output: []W{w}, Value: a}
}

// MapWriter applies a pure function to the value. Output is unchanged.
func MapWriter[W, A, B any](m Writer[W, A], f func(A) B) Writer[W, B] {
	return Writer[W, B]{Output: m.Output, Value: f(m.Value)}
}

// ApWriter applies a Writer-wrapped function to a Writer-wrapped value.
// Output is mf's output followed by ma's.
func ApWriter[W, A, B any](mf Writer[W, func(A) B], ma Writer[W, A]) Writer[W, B] {
	return Writer[W, B]{
		Output: appendOutput(mf.Output, ma.Output),
		Value:  mf.Value(ma.Value),
	}
}

// Map2Writer combines two Writer values with f. Output is ma's followed
// by mb's.
//
// Allocation note: Map2Writer is equivalent to ApWriter(MapWriter(ma, curry f), mb)
// but avoids the intermediate closure.
func Map2Writer[W, A, B, C any](ma Writer[W, A], mb Writer[W, B], f func(A, B) C) Writer[W, C] {
	return Writer[W, C]{
		Output: appendOutput(ma.Output, mb.Output),
		Value:  f(ma.Value, mb.Value),
	}
}

// BindWriter sequences a Writer into a Writer-producing continuation.
// Output is m's output followed by the continuation's.
func BindWriter[W, A, B any](m Writer[W, A], f func(A) Writer[W, B]) Writer[W, B] {
	next := f(m.Value)
	return Writer[W, B]{
		Output: appendOutput(m.Output, next.Output),
		Value:  next.Value,
	}
}

// appendOutput concatenates two output sequences into a fresh slice.
// When one side is empty the other is returned as-is; Writer values never
// mutate their output, so sharing a fully-owned slice is safe.
func appendOutput[W any](left, right []W) []W {
	if len(left) == 0 {
		return right
	}
	if len(right) == 0 {
		return left
	}
	out := make([]W, 0, len(left)+len(right))
	out = append(out, left...)
	return append(out, right...)
}
