// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

// OptionT layers zero-or-one-value semantics over an arbitrary inner effect F.
//
// Go cannot abstract over a type constructor, so the inner effect appears as
// its instantiated wrapped type: the parameter FOA names F<Option[A]>, FOB
// names F<Option[B]>. F's own composition capabilities are passed as
// explicitly typed function arguments (bindF, pureF, mapF); the wrapper
// delegates all sequencing to them and adds only the absence rule.
//
// The defining contract is the short-circuit: once Empty is produced at any
// layer, every subsequent BindOptionT skips its continuation. Effects F
// performed before the absence (for example Writer output) are retained,
// because the absence travels inside F's value slot.

// OptionT wraps an inner effect value of type F<Option[A]>.
type OptionT[FOA any] struct {
	Run FOA
}

// PureOptionT lifts a value: F's trivial wrap of Full(a).
// pureF is F's pure at Option[A].
func PureOptionT[FOA, A any](pureF func(Option[A]) FOA, a A) OptionT[FOA] {
	return OptionT[FOA]{Run: pureF(Full(a))}
}

// MapOptionT applies a pure function to a present value.
// mapF is F's map at Option[A] -> Option[B].
func MapOptionT[FOA, FOB, A, B any](
	mapF func(FOA, func(Option[A]) Option[B]) FOB,
	m OptionT[FOA],
	f func(A) B,
) OptionT[FOB] {
	return OptionT[FOB]{Run: mapF(m.Run, func(oa Option[A]) Option[B] {
		return MapOption(oa, f)
	})}
}

// ApOptionT applies a wrapped optional function to a wrapped optional value.
// apF is F's applicative combination at the two inner types; the optional
// layers are then merged with ApOption, so the result is absent if either
// side is absent.
func ApOptionT[FOF, FOA, FOB, A, B any](
	apF func(FOF, FOA, func(Option[func(A) B], Option[A]) Option[B]) FOB,
	mf OptionT[FOF],
	ma OptionT[FOA],
) OptionT[FOB] {
	return OptionT[FOB]{Run: apF(mf.Run, ma.Run, ApOption[A, B])}
}

// BindOptionT sequences into an OptionT-producing continuation.
// bindF is F's bind at Option[A] -> F<Option[B]>; pureF is F's pure at
// Option[B]. On Empty the continuation is not invoked and F's trivial wrap
// of Empty is produced; on Full the continuation's inner value is returned
// directly, not re-wrapped.
func BindOptionT[FOA, FOB, A, B any](
	bindF func(FOA, func(Option[A]) FOB) FOB,
	pureF func(Option[B]) FOB,
	m OptionT[FOA],
	f func(A) OptionT[FOB],
) OptionT[FOB] {
	return OptionT[FOB]{Run: bindF(m.Run, func(oa Option[A]) FOB {
		return MatchOption(oa,
			func(a A) FOB { return f(a).Run },
			func() FOB { return pureF(Empty[B]()) },
		)
	})}
}

// LiftOptionT lifts a plain inner effect value F<A> into OptionT, marking
// every produced value present. mapF is F's map at A -> Option[A].
func LiftOptionT[FA, FOA, A any](mapF func(FA, func(A) Option[A]) FOA, fa FA) OptionT[FOA] {
	return OptionT[FOA]{Run: mapF(fa, Full[A])}
}
