// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

// Runners and capabilities for the stacks the pipelines use. These unwrap a
// whole transformer stack in one call instead of nesting per-layer plumbing
// at every use site.

// BindStateOption is the sequencing capability of StateT over Option:
// F<X> = Option[X]. Absence short-circuits the whole remaining chain.
func BindStateOption[S, A, B any](
	m StateT[S, Option[Pair[A, S]]],
	f func(A) StateT[S, Option[Pair[B, S]]],
) StateT[S, Option[Pair[B, S]]] {
	return BindStateT(FlatMapOption[Pair[A, S], Pair[B, S]], m, f)
}

// PureStateOption lifts a value into StateT over Option.
func PureStateOption[S, A any](a A) StateT[S, Option[Pair[A, S]]] {
	return PureStateT[S, Option[Pair[A, S]], A](Full[Pair[A, S]], a)
}

// BindWriterOption is the sequencing capability of the OptionT-over-Writer
// stack: F<X> = Writer[W, Option[X]]. Absence short-circuits the value while
// output accumulated before it is retained: the absence travels inside the
// Writer's value slot, never touching the output.
func BindWriterOption[W, A, B any](
	m Writer[W, Option[A]],
	f func(A) Writer[W, Option[B]],
) Writer[W, Option[B]] {
	return BindOptionT(
		BindWriter[W, Option[A], Option[B]],
		PureWriter[W, Option[B]],
		OptionT[Writer[W, Option[A]]]{Run: m},
		func(a A) OptionT[Writer[W, Option[B]]] {
			return OptionT[Writer[W, Option[B]]]{Run: f(a)}
		},
	).Run
}

// PureWriterOption lifts a value into the OptionT-over-Writer stack: no
// output, value present.
func PureWriterOption[W, A any](a A) Writer[W, Option[A]] {
	return PureOptionT[Writer[W, Option[A]]](PureWriter[W, Option[A]], a).Run
}

// BindStateWriterOption is the sequencing capability of the full pipeline
// stack: StateT over OptionT over Writer.
func BindStateWriterOption[S, W, A, B any](
	m StateT[S, Writer[W, Option[Pair[A, S]]]],
	f func(A) StateT[S, Writer[W, Option[Pair[B, S]]]],
) StateT[S, Writer[W, Option[Pair[B, S]]]] {
	return BindStateT(BindWriterOption[W, Pair[A, S], Pair[B, S]], m, f)
}

// PureStateWriterOption lifts a value into the full pipeline stack.
func PureStateWriterOption[S, W, A any](a A) StateT[S, Writer[W, Option[Pair[A, S]]]] {
	return PureStateT[S, Writer[W, Option[Pair[A, S]]], A](PureWriterOption[W, Pair[A, S]], a)
}

// RunStateOption runs StateT over Option and returns the inner effect's
// view: the (result, final state) pair, or absence.
func RunStateOption[S, A any](initial S, m StateT[S, Option[Pair[A, S]]]) Option[Pair[A, S]] {
	return m(initial)
}

// EvalStateOption runs StateT over Option and returns only the result,
// or absence.
func EvalStateOption[S, A any](initial S, m StateT[S, Option[Pair[A, S]]]) Option[A] {
	return MapOption(m(initial), func(p Pair[A, S]) A { return p.Fst })
}

// RunStateWriterOption runs StateT over OptionT over Writer and returns the
// full inner view: accumulated output paired with the optional
// (result, final state).
func RunStateWriterOption[S, W, A any](
	initial S,
	m StateT[S, Writer[W, Option[Pair[A, S]]]],
) Writer[W, Option[Pair[A, S]]] {
	return m(initial)
}

// EvalStateWriterOption runs StateT over OptionT over Writer and drops the
// final state. The output is complete whether or not the result is absent;
// callers must not read absence as "no output".
func EvalStateWriterOption[S, W, A any](
	initial S,
	m StateT[S, Writer[W, Option[Pair[A, S]]]],
) Writer[W, Option[A]] {
	return MapWriter(m(initial), func(o Option[Pair[A, S]]) Option[A] {
		return MapOption(o, func(p Pair[A, S]) A { return p.Fst })
	})
}
