// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

import (
	"fmt"

	"github.com/emirpasic/gods/v2/sets/treeset"
	"golang.org/x/exp/constraints"
)

// Demonstration pipelines: deduplicate a sequence by threading a seen-set
// through FilterM, with the abort and audit behavior supplied entirely by
// the inner effect the stack is instantiated with.
//
// All three share one skeleton. The predicate of an element reports whether
// it is novel and inserts it into the seen-set regardless of novelty; FilterM
// keeps exactly the novel elements in input order. Membership depends on the
// prior elements of the same traversal, which is why this is a stateful
// filter and not a plain predicate.

// abortThreshold is the boundary for the aborting pipelines: an element
// strictly above it aborts, the threshold value itself does not.
const abortThreshold = 100

// noSeen is the initial pipeline state: nothing emitted yet.
func noSeen[A constraints.Integer]() *treeset.Set[A] {
	return treeset.New[A]()
}

// record inserts x into a fresh copy of seen. State transitions build new
// set values; a set already threaded into a computation is never mutated.
func record[A constraints.Integer](seen *treeset.Set[A], x A) *treeset.Set[A] {
	next := treeset.New[A](seen.Values()...)
	next.Add(x)
	return next
}

// Distinct removes duplicates from xs, keeping the first occurrence of each
// element and preserving input order. Inner effect: identity.
func Distinct[A constraints.Integer](xs []A) []A {
	pred := func(x A) State[*treeset.Set[A], bool] {
		return BindState(Get[*treeset.Set[A]](), func(seen *treeset.Set[A]) State[*treeset.Set[A], bool] {
			novel := !seen.Contains(x)
			return BindState(Put(record(seen, x)), func(struct{}) State[*treeset.Set[A], bool] {
				return PureState[*treeset.Set[A]](novel)
			})
		})
	}
	m := FilterM(
		BindState[*treeset.Set[A], bool, []A],
		BindState[*treeset.Set[A], []A, []A],
		PureState[*treeset.Set[A], []A],
		pred, xs,
	)
	return EvalState(noSeen[A](), m)
}

// DistinctWithAbort deduplicates like Distinct but aborts the whole sequence
// once any element exceeds abortThreshold: the caller receives Empty, with
// no partial output. Inner effect: Option.
func DistinctWithAbort[A constraints.Integer](xs []A) Option[[]A] {
	pred := func(x A) StateT[*treeset.Set[A], Option[Pair[bool, *treeset.Set[A]]]] {
		return func(seen *treeset.Set[A]) Option[Pair[bool, *treeset.Set[A]]] {
			if x > abortThreshold {
				return Empty[Pair[bool, *treeset.Set[A]]]()
			}
			return Full(Pair[bool, *treeset.Set[A]]{
				Fst: !seen.Contains(x),
				Snd: record(seen, x),
			})
		}
	}
	m := FilterM(
		BindStateOption[*treeset.Set[A], bool, []A],
		BindStateOption[*treeset.Set[A], []A, []A],
		PureStateOption[*treeset.Set[A], []A],
		pred, xs,
	)
	return EvalStateOption(noSeen[A](), m)
}

// DistinctWithAbortAndLog deduplicates with the same abort rule and keeps an
// audit log: every even element is logged before its membership decision is
// recorded, and an aborting element is logged before absence is signalled.
// Inner effect: OptionT over Writer. Writer is the inner layer, so output
// emitted up to and including the abort entry survives an absent result.
func DistinctWithAbortAndLog[A constraints.Integer](xs []A) Writer[string, Option[[]A]] {
	pred := func(x A) StateT[*treeset.Set[A], Writer[string, Option[Pair[bool, *treeset.Set[A]]]]] {
		return func(seen *treeset.Set[A]) Writer[string, Option[Pair[bool, *treeset.Set[A]]]] {
			if x > abortThreshold {
				return Tell(
					fmt.Sprintf("aborting > %d: %d", abortThreshold, x),
					Empty[Pair[bool, *treeset.Set[A]]](),
				)
			}
			decision := Full(Pair[bool, *treeset.Set[A]]{
				Fst: !seen.Contains(x),
				Snd: record(seen, x),
			})
			if x%2 == 0 {
				return Tell(fmt.Sprintf("even number: %d", x), decision)
			}
			return PureWriter[string](decision)
		}
	}
	m := FilterM(
		BindStateWriterOption[*treeset.Set[A], string, bool, []A],
		BindStateWriterOption[*treeset.Set[A], string, []A, []A],
		PureStateWriterOption[*treeset.Set[A], string, []A],
		pred, xs,
	)
	return EvalStateWriterOption(noSeen[A](), m)
}
