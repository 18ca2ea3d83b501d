// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

// Sequence operations over slices, including the effectful keep-satisfying
// combinator the demonstration pipelines are built from.

// MapSlice applies f to every element, preserving order.
func MapSlice[A, B any](xs []A, f func(A) B) []B {
	out := make([]B, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// FlatMapSlice applies f to every element and concatenates the results in
// order. This is the sequence type's bind: each element may expand into
// zero or more elements.
func FlatMapSlice[A, B any](xs []A, f func(A) []B) []B {
	var out []B
	for _, x := range xs {
		out = append(out, f(x)...)
	}
	return out
}

// FilterM keeps the elements whose effectful predicate reports true,
// sequencing the predicate effect left to right across the input and
// preserving input order for retained elements.
//
// M is the caller's effect at two instantiations: MB names M<bool> and MS
// names M<[]A>. bindB is M's bind at bool -> M<[]A>, bindS at []A -> M<[]A>,
// pureF is M's pure of a sequence. The predicate of the head element is
// always sequenced before any effect of the tail, so a short-circuiting M
// never evaluates the predicate past an absence, and an accumulating M
// observes entries in traversal order.
func FilterM[MB, MS, A any](
	bindB func(MB, func(bool) MS) MS,
	bindS func(MS, func([]A) MS) MS,
	pureF func([]A) MS,
	pred func(A) MB,
	xs []A,
) MS {
	if len(xs) == 0 {
		return pureF(nil)
	}
	head := xs[0]
	return bindB(pred(head), func(keep bool) MS {
		rest := FilterM(bindB, bindS, pureF, pred, xs[1:])
		if !keep {
			return rest
		}
		return bindS(rest, func(ys []A) MS {
			out := make([]A, 0, len(ys)+1)
			out = append(out, head)
			return pureF(append(out, ys...))
		})
	})
}
