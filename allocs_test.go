// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb_test

import (
	"testing"

	"code.hybscloud.com/komb"
	"code.hybscloud.com/komb/text"
)

// Success paths allocate a bounded handful of engine nodes per
// combinator layer, independent of input length. The bounds here are
// deliberately loose; they catch accidental per-input-byte allocation,
// not node-count drift.

func TestAllocationsPure(t *testing.T) {
	p := komb.Pure[text.State](42)
	st := text.New("")
	c := komb.NewCounter()
	allocs := testing.AllocsPerRun(100, func() {
		_, _, _ = komb.Run(p, st, c)
	})
	if allocs > 8 {
		t.Errorf("Run(Pure) allocs = %v; want at most 8", allocs)
	}
}

func TestAllocationsSeq(t *testing.T) {
	p := komb.Seq(text.Rune('a'), text.Rune('b'))
	st := text.New("ab")
	c := komb.NewCounter()
	allocs := testing.AllocsPerRun(100, func() {
		_, _, _ = komb.Run(p, st, c)
	})
	if allocs > 64 {
		t.Errorf("Run(Seq) allocs = %v; want at most 64", allocs)
	}
}

func TestAllocationsIndependentOfInputLength(t *testing.T) {
	p := text.Rune('a')
	c := komb.NewCounter()

	short := text.New("ab")
	long := text.New("a" + string(make([]byte, 1<<16)))

	onShort := testing.AllocsPerRun(100, func() {
		_, _, _ = komb.Run(p, short, c)
	})
	onLong := testing.AllocsPerRun(100, func() {
		_, _, _ = komb.Run(p, long, c)
	})
	if onLong > onShort+2 {
		t.Errorf("Run allocs grew with input length: %v on short, %v on long", onShort, onLong)
	}
}
