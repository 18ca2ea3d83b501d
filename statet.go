// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

// StateT threads a state of type S through an arbitrary inner effect F.
//
// As with OptionT, the inner effect appears as its instantiated wrapped type:
// FAS names F<Pair[A, S]>, F's view of one state-threading step. F's
// composition capabilities are explicit function arguments; StateT delegates
// all sequencing to them, so a branching inner effect (list-like) fans out
// into independently threaded branches while a non-branching one (identity,
// Option) collapses to single-result behavior with no special cases.
//
// Minimal definition: PureStateT and BindStateT are necessary and sufficient.
// MapStateT and ApStateT are kept as derived operations: Map needs only F's
// functor capability, Ap reproduces the left-to-right state threading of
// Bind without naming an intermediate.

// StateT wraps a function from a state to an inner effect producing
// (value, next state). Values are immutable once constructed; running one is
// plain function application and must be referentially transparent.
type StateT[S, FAS any] func(S) FAS

// PureStateT yields (a, s) with the state unchanged, trivially wrapped in F.
// pureF is F's pure at Pair[A, S].
func PureStateT[S, FAS, A any](pureF func(Pair[A, S]) FAS, a A) StateT[S, FAS] {
	return func(s S) FAS {
		return pureF(Pair[A, S]{Fst: a, Snd: s})
	}
}

// MapStateT applies a pure function to the produced value, leaving the state
// untouched. Nothing is evaluated until the resulting StateT is run.
// mapF is F's map at Pair[A, S] -> Pair[B, S].
func MapStateT[S, FAS, FBS, A, B any](
	mapF func(FAS, func(Pair[A, S]) Pair[B, S]) FBS,
	m StateT[S, FAS],
	f func(A) B,
) StateT[S, FBS] {
	return func(s S) FBS {
		return mapF(m(s), func(p Pair[A, S]) Pair[B, S] {
			return Pair[B, S]{Fst: f(p.Fst), Snd: p.Snd}
		})
	}
}

// ApStateT applies a state-threaded function to a state-threaded value.
// mf runs first; every branch of its output state independently feeds ma,
// and each (value, state) branch is mapped through the obtained function.
// bindF is F's bind at Pair[func(A) B, S] -> F<Pair[B, S]>; mapF is F's map
// at Pair[A, S] -> Pair[B, S].
func ApStateT[S, FFS, FAS, FBS, A, B any](
	bindF func(FFS, func(Pair[func(A) B, S]) FBS) FBS,
	mapF func(FAS, func(Pair[A, S]) Pair[B, S]) FBS,
	mf StateT[S, FFS],
	ma StateT[S, FAS],
) StateT[S, FBS] {
	return func(s S) FBS {
		return bindF(mf(s), func(pf Pair[func(A) B, S]) FBS {
			return mapF(ma(pf.Snd), func(pa Pair[A, S]) Pair[B, S] {
				return Pair[B, S]{Fst: pf.Fst(pa.Fst), Snd: pa.Snd}
			})
		})
	}
}

// BindStateT sequences into a StateT-producing continuation: run m against
// the input state to reach (a, s'), then run f(a) against s'. Exactly one
// state value flows through any one execution path; branching is entirely
// F's bind. bindF is F's bind at Pair[A, S] -> F<Pair[B, S]>.
func BindStateT[S, FAS, FBS, A any](
	bindF func(FAS, func(Pair[A, S]) FBS) FBS,
	m StateT[S, FAS],
	f func(A) StateT[S, FBS],
) StateT[S, FBS] {
	return func(s S) FBS {
		return bindF(m(s), func(p Pair[A, S]) FBS {
			return f(p.Fst)(p.Snd)
		})
	}
}

// GetStateT reads the current state as the produced value.
func GetStateT[S, FSS any](pureF func(Pair[S, S]) FSS) StateT[S, FSS] {
	return func(s S) FSS {
		return pureF(Pair[S, S]{Fst: s, Snd: s})
	}
}

// PutStateT replaces the current state.
func PutStateT[S, FUS any](pureF func(Pair[struct{}, S]) FUS, s S) StateT[S, FUS] {
	return func(S) FUS {
		return pureF(Pair[struct{}, S]{Snd: s})
	}
}

// ModifyStateT applies f to the state and produces the new state.
func ModifyStateT[S, FSS any](pureF func(Pair[S, S]) FSS, f func(S) S) StateT[S, FSS] {
	return func(s S) FSS {
		next := f(s)
		return pureF(Pair[S, S]{Fst: next, Snd: next})
	}
}

// LiftStateT lifts a plain inner effect value F<A> into StateT, pairing each
// produced value with the unchanged input state. mapF is F's map at
// A -> Pair[A, S].
func LiftStateT[S, FA, FAS, A any](mapF func(FA, func(A) Pair[A, S]) FAS, fa FA) StateT[S, FAS] {
	return func(s S) FAS {
		return mapF(fa, func(a A) Pair[A, S] {
			return Pair[A, S]{Fst: a, Snd: s}
		})
	}
}
