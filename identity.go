// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

// Identity effect capabilities.
//
// The identity effect is the trivial computational context F<X> = X: exactly
// one result, no branching, no absence. It is represented bare (wrapping and
// unwrapping are the identity), so layering a wrapper over it adds no
// structure. StateT instantiated with these capabilities collapses to plain
// state threading (see State).

// IdentityPure is the trivial wrap: the value itself.
func IdentityPure[A any](a A) A { return a }

// IdentityMap applies f under the identity effect.
func IdentityMap[A, B any](a A, f func(A) B) B { return f(a) }

// IdentityBind sequences under the identity effect. With F<B> = B the
// continuation type coincides with a plain function, so Bind and Map agree.
func IdentityBind[A, B any](a A, f func(A) B) B { return f(a) }
