// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mtl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/mtl"
)

func TestOptionTPureOverWriter(t *testing.T) {
	m := mtl.PureOptionT[mtl.Writer[string, mtl.Option[int]]](mtl.PureWriter[string, mtl.Option[int]], 42)

	assert.Empty(t, m.Run.Output)
	require.True(t, m.Run.Value.IsFull())
	v, _ := m.Run.Value.GetFull()
	assert.Equal(t, 42, v)
}

func TestOptionTMapOverWriter(t *testing.T) {
	m := mtl.OptionT[mtl.Writer[string, mtl.Option[int]]]{Run: mtl.Tell("seen", mtl.Full(21))}

	mapped := mtl.MapOptionT(mtl.MapWriter[string, mtl.Option[int], mtl.Option[int]], m, func(x int) int {
		return x * 2
	})

	assert.Equal(t, []string{"seen"}, mapped.Run.Output)
	assert.Equal(t, mtl.Full(42), mapped.Run.Value)
}

func TestOptionTBindOverWriterAccumulates(t *testing.T) {
	m := mtl.OptionT[mtl.Writer[string, mtl.Option[int]]]{Run: mtl.Tell("first", mtl.Full(1))}

	out := mtl.BindOptionT(
		mtl.BindWriter[string, mtl.Option[int], mtl.Option[int]],
		mtl.PureWriter[string, mtl.Option[int]],
		m,
		func(x int) mtl.OptionT[mtl.Writer[string, mtl.Option[int]]] {
			return mtl.OptionT[mtl.Writer[string, mtl.Option[int]]]{Run: mtl.Tell("second", mtl.Full(x + 1))}
		},
	)

	assert.Equal(t, []string{"first", "second"}, out.Run.Output)
	assert.Equal(t, mtl.Full(2), out.Run.Value)
}

// The defining contract: absence short-circuits the value, but output
// emitted before the absence is retained.
func TestOptionTBindRetainsOutputUnderAbsence(t *testing.T) {
	aborted := mtl.OptionT[mtl.Writer[string, mtl.Option[int]]]{
		Run: mtl.Tell("aborting", mtl.Empty[int]()),
	}

	out := mtl.BindOptionT(
		mtl.BindWriter[string, mtl.Option[int], mtl.Option[int]],
		mtl.PureWriter[string, mtl.Option[int]],
		aborted,
		func(x int) mtl.OptionT[mtl.Writer[string, mtl.Option[int]]] {
			t.Fatal("continuation must not run after absence")
			return mtl.OptionT[mtl.Writer[string, mtl.Option[int]]]{}
		},
	)

	assert.Equal(t, []string{"aborting"}, out.Run.Output)
	assert.True(t, out.Run.Value.IsEmpty())
}

func TestOptionTApOverWriter(t *testing.T) {
	mf := mtl.OptionT[mtl.Writer[string, mtl.Option[func(int) int]]]{
		Run: mtl.Tell("fn", mtl.Full(func(x int) int { return x * 2 })),
	}
	ma := mtl.OptionT[mtl.Writer[string, mtl.Option[int]]]{
		Run: mtl.Tell("arg", mtl.Full(21)),
	}

	out := mtl.ApOptionT(
		mtl.Map2Writer[string, mtl.Option[func(int) int], mtl.Option[int], mtl.Option[int]],
		mf, ma,
	)

	assert.Equal(t, []string{"fn", "arg"}, out.Run.Output)
	assert.Equal(t, mtl.Full(42), out.Run.Value)
}

// Ap keeps both operands' output even when one side is absent.
func TestOptionTApAbsentSideKeepsOutput(t *testing.T) {
	mf := mtl.OptionT[mtl.Writer[string, mtl.Option[func(int) int]]]{
		Run: mtl.Tell("fn", mtl.Empty[func(int) int]()),
	}
	ma := mtl.OptionT[mtl.Writer[string, mtl.Option[int]]]{
		Run: mtl.Tell("arg", mtl.Full(21)),
	}

	out := mtl.ApOptionT(
		mtl.Map2Writer[string, mtl.Option[func(int) int], mtl.Option[int], mtl.Option[int]],
		mf, ma,
	)

	assert.Equal(t, []string{"fn", "arg"}, out.Run.Output)
	assert.True(t, out.Run.Value.IsEmpty())
}

func TestLiftOptionT(t *testing.T) {
	lifted := mtl.LiftOptionT[mtl.Writer[string, int]](mtl.MapWriter[string, int, mtl.Option[int]], mtl.Tell("log", 7))

	assert.Equal(t, []string{"log"}, lifted.Run.Output)
	assert.Equal(t, mtl.Full(7), lifted.Run.Value)
}

// Chained binds after an absence: every later continuation is skipped, every
// earlier entry kept.
func TestOptionTChainStopsAtFirstAbsence(t *testing.T) {
	step := func(label string, abort bool) func(int) mtl.OptionT[mtl.Writer[string, mtl.Option[int]]] {
		return func(x int) mtl.OptionT[mtl.Writer[string, mtl.Option[int]]] {
			if abort {
				return mtl.OptionT[mtl.Writer[string, mtl.Option[int]]]{Run: mtl.Tell(label, mtl.Empty[int]())}
			}
			return mtl.OptionT[mtl.Writer[string, mtl.Option[int]]]{Run: mtl.Tell(label, mtl.Full(x + 1))}
		}
	}
	bind := func(
		m mtl.OptionT[mtl.Writer[string, mtl.Option[int]]],
		f func(int) mtl.OptionT[mtl.Writer[string, mtl.Option[int]]],
	) mtl.OptionT[mtl.Writer[string, mtl.Option[int]]] {
		return mtl.BindOptionT(
			mtl.BindWriter[string, mtl.Option[int], mtl.Option[int]],
			mtl.PureWriter[string, mtl.Option[int]],
			m, f,
		)
	}

	start := mtl.OptionT[mtl.Writer[string, mtl.Option[int]]]{Run: mtl.Tell("a", mtl.Full(0))}
	out := bind(bind(bind(start, step("b", false)), step("c", true)), step("d", false))

	require.Equal(t, []string{"a", "b", "c"}, out.Run.Output)
	assert.True(t, out.Run.Value.IsEmpty())
}
