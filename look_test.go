// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb_test

import (
	"testing"

	"code.hybscloud.com/komb"
	"code.hybscloud.com/komb/text"
)

// ===== WouldMatch =====

func TestWouldMatchTrue(t *testing.T) {
	p := komb.WouldMatch(text.Lit("ab"))
	end, v, err := komb.Run(p, text.New("abc"), komb.NewCounter())
	if err != nil || v != true {
		t.Fatalf("run = (%v, %v), want (true, nil)", v, err)
	}
	if end.Offset() != 0 {
		t.Errorf("offset = %d, want 0 (lookahead must not consume)", end.Offset())
	}
}

func TestWouldMatchFalse(t *testing.T) {
	p := komb.WouldMatch(text.Lit("ab"))
	end, v, err := komb.Run(p, text.New("xy"), komb.NewCounter())
	if err != nil || v != false {
		t.Fatalf("run = (%v, %v), want (false, nil)", v, err)
	}
	if end.Offset() != 0 {
		t.Errorf("offset = %d, want 0", end.Offset())
	}
}

// Even a committed failure inside the probe stays invisible outside.
func TestWouldMatchSwallowsHardError(t *testing.T) {
	p := komb.WouldMatch(komb.Seq(text.Rune('a'), text.Rune('b')))
	end, v, err := komb.Run(p, text.New("ac"), komb.NewCounter())
	if err != nil || v != false {
		t.Fatalf("run = (%v, %v), want (false, nil)", v, err)
	}
	if end.Offset() != 0 {
		t.Errorf("offset = %d, want 0", end.Offset())
	}
}

// ===== Not =====

func TestNotPassesOnMismatch(t *testing.T) {
	end, _, err := komb.Run(komb.Not(text.Rune('x')), text.New("abc"), komb.NewCounter())
	if err != nil {
		t.Fatalf("Run error = %v, want nil", err)
	}
	if end.Offset() != 0 {
		t.Errorf("offset = %d, want 0", end.Offset())
	}
}

func TestNotFailsSoftOnEmptyMatch(t *testing.T) {
	p := komb.Not(komb.Pure[text.State](1))
	_, _, err := komb.Run(p, text.New("abc"), komb.NewCounter())
	if err == nil {
		t.Fatal("Run = nil error, want soft failure")
	}
	d := err.(*komb.Diag)
	if d.At != 0 || d.Msg != "unexpected input" {
		t.Errorf("diag = (%d, %q), want (0, \"unexpected input\")", d.At, d.Msg)
	}
}

func TestNotFailsHardOnCommittedMatch(t *testing.T) {
	p := komb.Not(text.Lit("ab"))
	_, _, err := komb.Run(p, text.New("abc"), komb.NewCounter())
	if err == nil {
		t.Fatal("Run = nil error, want hard error")
	}
	d := err.(*komb.Diag)
	if d.At != 0 {
		t.Errorf("At = %d, want 0 (start of the offending span)", d.At)
	}
	if d.Msg != `unexpected "ab"` {
		t.Errorf("Msg = %q, want quoting the span", d.Msg)
	}
}

// The hard error from a matching probe resists ordinary alternation.
func TestNotCommittedMatchSkipsFallback(t *testing.T) {
	p := komb.Or(komb.Not(text.Lit("ab")), komb.Pure[text.State](komb.Unit{}))
	_, _, err := komb.Run(p, text.New("abc"), komb.NewCounter())
	if err == nil {
		t.Fatal("Run = nil error, want hard error despite fallback")
	}
}

func TestNotPropagatesInnerHardError(t *testing.T) {
	p := komb.Not(komb.Seq(text.Rune('a'), text.Rune('b')))
	_, _, err := komb.Run(p, text.New("ac"), komb.NewCounter())
	if err == nil {
		t.Fatal("Run = nil error, want inner hard error to pass")
	}
	if d := err.(*komb.Diag); d.At != 1 {
		t.Errorf("At = %d, want 1", d.At)
	}
}
