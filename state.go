// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

// State is StateT specialized to the identity effect.
// With F<X> = X the inner type F<Pair[A, S]> is Pair[A, S] itself, so the
// alias carries no stacking overhead: a State is just func(S) Pair[A, S].
//
// The operations below are the StateT generics instantiated with the
// identity capabilities: the collapse of the general machinery to plain
// state threading, not a parallel implementation.

// State provides direct state threading: exactly one result, no branching,
// no absence.
type State[S, A any] = StateT[S, Pair[A, S]]

// PureState yields (a, s) with the state unchanged.
func PureState[S, A any](a A) State[S, A] {
	return PureStateT[S, Pair[A, S], A](IdentityPure[Pair[A, S]], a)
}

// MapState applies a pure function to the produced value.
func MapState[S, A, B any](m State[S, A], f func(A) B) State[S, B] {
	return MapStateT[S, Pair[A, S], Pair[B, S], A, B](
		IdentityMap[Pair[A, S], Pair[B, S]], m, f)
}

// ApState applies a state-threaded function to a state-threaded value,
// threading the state through mf first.
func ApState[S, A, B any](mf State[S, func(A) B], ma State[S, A]) State[S, B] {
	return ApStateT[S, Pair[func(A) B, S], Pair[A, S], Pair[B, S], A, B](
		IdentityBind[Pair[func(A) B, S], Pair[B, S]],
		IdentityMap[Pair[A, S], Pair[B, S]],
		mf, ma)
}

// BindState sequences into a State-producing continuation.
func BindState[S, A, B any](m State[S, A], f func(A) State[S, B]) State[S, B] {
	return BindStateT[S, Pair[A, S], Pair[B, S], A](
		IdentityBind[Pair[A, S], Pair[B, S]], m, f)
}

// Get reads the current state.
func Get[S any]() State[S, S] {
	return GetStateT[S, Pair[S, S]](IdentityPure[Pair[S, S]])
}

// Put replaces the current state.
func Put[S any](s S) State[S, struct{}] {
	return PutStateT[S, Pair[struct{}, S]](IdentityPure[Pair[struct{}, S]], s)
}

// Modify applies f to the state and produces the new state.
func Modify[S any](f func(S) S) State[S, S] {
	return ModifyStateT[S, Pair[S, S]](IdentityPure[Pair[S, S]], f)
}

// RunState runs a stateful computation and returns both the result and
// final state.
func RunState[S, A any](initial S, m State[S, A]) (A, S) {
	p := m(initial)
	return p.Fst, p.Snd
}

// EvalState runs a stateful computation and returns only the result.
func EvalState[S, A any](initial S, m State[S, A]) A {
	result, _ := RunState(initial, m)
	return result
}

// ExecState runs a stateful computation and returns only the final state.
func ExecState[S, A any](initial S, m State[S, A]) S {
	_, state := RunState(initial, m)
	return state
}
