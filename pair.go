// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl

// Pair holds two values.
// State-threading computations produce Pair[A, S]: the result in Fst,
// the state after the step in Snd.
type Pair[A, B any] struct {
	Fst A
	Snd B
}
