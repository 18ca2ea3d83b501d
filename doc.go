// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mtl provides composable effectful-computation wrappers in Go:
// state threading, optional results, and accumulating output, each layerable
// over an arbitrary inner effect.
//
// The value of the package is not any single function but the laws the
// wrappers satisfy, which make stacked layers compose predictably: functor
// identity and composition; applicative identity, homomorphism, and
// interchange; monad left identity, right identity, and associativity — each
// relative to the inner effect's own laws.
//
// # Design Philosophy
//
// mtl provides:
//   - Minimal but complete operations per wrapper: Pure and Bind are the
//     minimal definition, Map and Ap are kept as derived operations
//   - Immutable wrapper values with eager, single-threaded evaluation;
//     running a computation is plain function application
//   - Structural failure: absence is data ([Option]), audit output is data
//     ([Writer]) — no panics, no error returns in the composition layer
//
// # Inner-Effect Encoding
//
// Go cannot abstract over a type constructor, so a wrapper generic over an
// inner effect F names F's instantiated wrapped types as type parameters
// (FAS for F<Pair[A, S]>, FOA for F<Option[A]>) and receives F's composition
// capabilities as explicitly typed function arguments:
//
//   - bindF: F's sequencing at the needed instantiation
//   - pureF: F's trivial wrap
//   - mapF:  F's value transformation
//
// Everything stays compile-time typed; no type erasure, no reflection. The
// wrappers delegate all sequencing to the supplied capabilities, so a
// branching (list-like) inner effect fans out into independently continued
// branches while a non-branching one collapses to single-result behavior.
//
// # State Threading
//
// [StateT] wraps func(S) F<Pair[A, S]>:
//
//   - [PureStateT], [MapStateT], [ApStateT], [BindStateT]: composition
//   - [GetStateT], [PutStateT], [ModifyStateT]: state primitives over any F
//   - [LiftStateT]: lift F<A>, pairing results with the unchanged state
//
// [State] is the identity-effect specialization (a generic alias, zero
// stacking overhead):
//
//   - [PureState], [MapState], [ApState], [BindState]: composition
//   - [Get], [Put], [Modify]: state primitives
//   - [RunState], [EvalState], [ExecState]: execution
//
// # Optional Results
//
// [Option] is the zero-or-one-value type:
//
//   - [Full], [Empty]: constructors
//   - [Option.IsFull], [Option.IsEmpty], [Option.GetFull]: observation
//   - [MatchOption], [MapOption], [ApOption], [FlatMapOption]: composition
//
// [OptionT] layers absence over an inner effect F, wrapping F<Option[A]>:
//
//   - [PureOptionT], [MapOptionT], [ApOptionT], [BindOptionT]: composition
//   - [LiftOptionT]: lift F<A> as always-present
//
// Once absence is produced, every subsequent bind short-circuits without
// invoking its continuation; inner-effect output emitted before the absence
// is retained.
//
// # Accumulating Output
//
// [Writer] pairs an ordered output sequence with a result value:
//
//   - [PureWriter], [Tell]: construction
//   - [MapWriter], [ApWriter], [Map2Writer], [BindWriter]: composition
//
// Combination concatenates output strictly left to right and never drops or
// reorders entries; this is the associativity-preserving rule.
//
// # Sequences
//
//   - [MapSlice], [FlatMapSlice]: order-preserving slice transformation
//   - [FilterM]: keep elements satisfying an effectful predicate, effects
//     sequenced left to right, retained elements in input order
//
// # Stacked Runners
//
// Capabilities and runners for the stacks the pipelines instantiate:
//
//   - [BindStateOption], [PureStateOption]: StateT over Option
//   - [BindWriterOption], [PureWriterOption]: OptionT over Writer
//   - [BindStateWriterOption], [PureStateWriterOption]: the full stack
//   - [RunStateOption], [EvalStateOption]
//   - [RunStateWriterOption], [EvalStateWriterOption]
//
// # Pipelines
//
// Three deduplication pipelines share one FilterM skeleton over a seen-set
// state and differ only in the inner effect:
//
//   - [Distinct]: identity effect, plain dedup
//   - [DistinctWithAbort]: Option effect, absence once an element exceeds
//     the threshold
//   - [DistinctWithAbortAndLog]: OptionT over Writer — audit entries for
//     even elements and for the aborting element, output retained under
//     abort
//
// Layering order is load-bearing for the third pipeline: Writer is the inner
// effect and absence travels in its value slot, so an abort yields a
// complete log paired with an absent result.
//
// # Example
//
//	logged := mtl.DistinctWithAbortAndLog([]int{1, 2, 3, 2, 6, 106})
//	// logged.Output:
//	//   ["even number: 2", "even number: 2", "even number: 6",
//	//    "aborting > 100: 106"]
//	// logged.Value: Empty — absence never erases the audit trail
package mtl
