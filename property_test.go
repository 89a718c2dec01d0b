// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb_test

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode"

	"code.hybscloud.com/komb"
	"code.hybscloud.com/komb/text"
)

const propertyN = 1000

// randSource returns a random string over a..d of length [0, 6].
// The narrow alphabet keeps partial matches frequent.
func randSource(rng *rand.Rand) string {
	n := rng.IntN(7)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + rng.IntN(4))
	}
	return string(b)
}

// randLeaf returns a small parser drawn from shapes whose failures
// carry description sets only, so outcomes compare exactly.
func randLeaf(rng *rand.Rand) komb.Parser[text.State, int] {
	switch rng.IntN(4) {
	case 0:
		return komb.Pure[text.State](rng.IntN(100))
	case 1:
		c := rune('a' + rng.IntN(4))
		return komb.Map(text.Rune(c), func(r rune) int { return int(r) })
	case 2:
		c := rune('a' + rng.IntN(4))
		return komb.OrElse(komb.Map(text.Rune(c), func(r rune) int { return int(r) }), -1)
	default:
		c1 := rune('a' + rng.IntN(4))
		c2 := rune('a' + rng.IntN(4))
		return komb.Map(komb.Seq(text.Rune(c1), text.Rune(c2)), func(p komb.Pair[rune, rune]) int {
			return int(p.Fst)*256 + int(p.Snd)
		})
	}
}

// randCont returns a deterministic int-indexed continuation built from
// the same leaf shapes as [randLeaf].
func randCont(rng *rand.Rand) func(int) komb.Parser[text.State, int] {
	shape := rng.IntN(3)
	c := rune('a' + rng.IntN(4))
	k := rng.IntN(50)
	return func(x int) komb.Parser[text.State, int] {
		switch shape {
		case 0:
			return komb.Pure[text.State](x + k)
		case 1:
			return komb.Map(text.Rune(c), func(r rune) int { return int(r) + x })
		default:
			return komb.OrElse(komb.Map(text.Rune(c), func(r rune) int { return int(r) * x }), x-k)
		}
	}
}

// outcome flattens one run into comparable parts: value, end offset
// and rendered diagnostic (empty on success).
func outcome(t *testing.T, p komb.Parser[text.State, int], src string) (int, int, string) {
	t.Helper()
	end, v, err := komb.Run(p, text.New(src), komb.NewCounter())
	if err != nil {
		return 0, end.Offset(), err.Error()
	}
	return v, end.Offset(), ""
}

// --- Group 1: Functor Laws ---

// TestPropertyMapIdentity: Map(p, id) ≡ p
func TestPropertyMapIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p := randLeaf(rng)
		src := randSource(rng)
		lv, lo, le := outcome(t, komb.Map(p, func(x int) int { return x }), src)
		rv, ro, re := outcome(t, p, src)
		if lv != rv || lo != ro || le != re {
			t.Fatalf("functor identity: (%d,%d,%q) != (%d,%d,%q) (src=%q)", lv, lo, le, rv, ro, re, src)
		}
	}
}

// TestPropertyMapComposition: Map(p, f∘g) ≡ Map(Map(p, g), f)
func TestPropertyMapComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) int { return x * 2 }
	g := func(x int) int { return x + 3 }
	fg := func(x int) int { return f(g(x)) }
	for range propertyN {
		p := randLeaf(rng)
		src := randSource(rng)
		lv, lo, le := outcome(t, komb.Map(p, fg), src)
		rv, ro, re := outcome(t, komb.Map(komb.Map(p, g), f), src)
		if lv != rv || lo != ro || le != re {
			t.Fatalf("functor composition: (%d,%d,%q) != (%d,%d,%q) (src=%q)", lv, lo, le, rv, ro, re, src)
		}
	}
}

// --- Group 2: Monad Laws ---

// TestPropertyBindLeftIdentity: Bind(Pure(a), f) ≡ f(a)
func TestPropertyBindLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := rng.IntN(100)
		f := randCont(rng)
		src := randSource(rng)
		lv, lo, le := outcome(t, komb.Bind(komb.Pure[text.State](a), f), src)
		rv, ro, re := outcome(t, f(a), src)
		if lv != rv || lo != ro || le != re {
			t.Fatalf("left identity: (%d,%d,%q) != (%d,%d,%q) (a=%d src=%q)", lv, lo, le, rv, ro, re, a, src)
		}
	}
}

// TestPropertyBindRightIdentity: Bind(p, Pure) ≡ p
func TestPropertyBindRightIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p := randLeaf(rng)
		src := randSource(rng)
		lv, lo, le := outcome(t, komb.Bind(p, func(x int) komb.Parser[text.State, int] {
			return komb.Pure[text.State](x)
		}), src)
		rv, ro, re := outcome(t, p, src)
		if lv != rv || lo != ro || le != re {
			t.Fatalf("right identity: (%d,%d,%q) != (%d,%d,%q) (src=%q)", lv, lo, le, rv, ro, re, src)
		}
	}
}

// TestPropertyBindAssociativity: Bind(Bind(p, f), g) ≡ Bind(p, func(x) Bind(f(x), g))
func TestPropertyBindAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p := randLeaf(rng)
		f := randCont(rng)
		g := randCont(rng)
		src := randSource(rng)
		lv, lo, le := outcome(t, komb.Bind(komb.Bind(p, f), g), src)
		rv, ro, re := outcome(t, komb.Bind(p, func(x int) komb.Parser[text.State, int] {
			return komb.Bind(f(x), g)
		}), src)
		if lv != rv || lo != ro || le != re {
			t.Fatalf("associativity: (%d,%d,%q) != (%d,%d,%q) (src=%q)", lv, lo, le, rv, ro, re, src)
		}
	}
}

// --- Group 3: Choice Laws ---

// TestPropertyOrLeftBias: Or(Pure(a), q) ≡ Pure(a)
func TestPropertyOrLeftBias(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := rng.IntN(100)
		q := randLeaf(rng)
		src := randSource(rng)
		lv, lo, le := outcome(t, komb.Or(komb.Pure[text.State](a), q), src)
		if lv != a || lo != 0 || le != "" {
			t.Fatalf("left bias: (%d,%d,%q), want (%d,0,\"\") (src=%q)", lv, lo, le, a, src)
		}
	}
}

// TestPropertyOrRejectRightIdentity: Or(p, Reject("")) ≡ p
func TestPropertyOrRejectRightIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p := randLeaf(rng)
		src := randSource(rng)
		lv, lo, le := outcome(t, komb.Or(p, komb.Reject[text.State, int]("")), src)
		rv, ro, re := outcome(t, p, src)
		if lv != rv || lo != ro || le != re {
			t.Fatalf("or right identity: (%d,%d,%q) != (%d,%d,%q) (src=%q)", lv, lo, le, rv, ro, re, src)
		}
	}
}

// --- Group 4: Commitment ---

// TestPropertyRaceFurthestLocation: racing two committed failures
// reports the one that progressed further, ties keeping the left.
func TestPropertyRaceFurthestLocation(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	src := strings.Repeat("a", 8)
	for range propertyN {
		m := rng.IntN(6) + 1
		n := rng.IntN(6) + 1
		p := komb.Race(consumeThenFail(m, "left"), consumeThenFail(n, "right"))
		_, _, err := komb.Run(p, text.New(src), komb.NewCounter())
		if err == nil {
			t.Fatalf("furthest location: nil error (m=%d n=%d)", m, n)
		}
		d := err.(*komb.Diag)
		wantAt, wantMsg := komb.Loc(m), "left"
		if n > m {
			wantAt, wantMsg = komb.Loc(n), "right"
		}
		if d.At != wantAt || d.Msg != wantMsg {
			t.Fatalf("furthest location: (%d,%q), want (%d,%q) (m=%d n=%d)", d.At, d.Msg, wantAt, wantMsg, m, n)
		}
	}
}

// --- Group 5: Lookahead Neutrality ---

// TestPropertyLookaheadNeverConsumes: WouldMatch(p) succeeds at the
// start position for every p and every input.
func TestPropertyLookaheadNeverConsumes(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p := randLeaf(rng)
		src := randSource(rng)
		end, _, err := komb.Run(komb.WouldMatch(p), text.New(src), komb.NewCounter())
		if err != nil {
			t.Fatalf("lookahead neutrality: error %v (src=%q)", err, src)
		}
		if end.Offset() != 0 {
			t.Fatalf("lookahead neutrality: offset %d, want 0 (src=%q)", end.Offset(), src)
		}
	}
}

// --- Group 6: Spans ---

// TestPropertySliceExactness: Slice over a digit run returns exactly
// the consumed prefix.
func TestPropertySliceExactness(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	digits := komb.Slice(komb.Many1(text.RuneWhere(unicode.IsDigit, "digit")))
	for range propertyN {
		n := rng.IntN(6)
		src := strings.Repeat("7", n) + "x"
		end, got, err := komb.Run(digits, text.New(src), komb.NewCounter())
		if n == 0 {
			if err == nil {
				t.Fatalf("slice exactness: nil error on %q", src)
			}
			continue
		}
		if err != nil {
			t.Fatalf("slice exactness: error %v (src=%q)", err, src)
		}
		if got != src[:n] || end.Offset() != n {
			t.Fatalf("slice exactness: (%q,%d), want (%q,%d)", got, end.Offset(), src[:n], n)
		}
	}
}
