// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package text

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"code.hybscloud.com/komb"
)

// Rune matches exactly r and yields it.
func Rune(r rune) komb.Parser[State, rune] {
	desc := strconv.QuoteRune(r)
	return komb.Make(func(st State, _ komb.Supply) komb.Result[State, rune] {
		got, size := utf8.DecodeRuneInString(st.Rest())
		if size == 0 || got != r {
			return &komb.Miss[State, rune]{Failure: &komb.Failure{Expected: []string{desc}}}
		}
		return &komb.Move[State, rune]{Next: st.Advance(size), Value: got}
	})
}

// RuneWhere matches any rune satisfying pred, described as desc in
// failure reports.
func RuneWhere(pred func(rune) bool, desc string) komb.Parser[State, rune] {
	return komb.Make(func(st State, _ komb.Supply) komb.Result[State, rune] {
		got, size := utf8.DecodeRuneInString(st.Rest())
		if size == 0 || !pred(got) {
			return &komb.Miss[State, rune]{Failure: &komb.Failure{Expected: []string{desc}}}
		}
		return &komb.Move[State, rune]{Next: st.Advance(size), Value: got}
	})
}

// Lit matches the literal string lit and yields it. The empty literal
// succeeds without consuming.
func Lit(lit string) komb.Parser[State, string] {
	desc := strconv.Quote(lit)
	return komb.Make(func(st State, _ komb.Supply) komb.Result[State, string] {
		if !strings.HasPrefix(st.Rest(), lit) {
			return &komb.Miss[State, string]{Failure: &komb.Failure{Expected: []string{desc}}}
		}
		if lit == "" {
			return &komb.Stay[State, string]{}
		}
		return &komb.Move[State, string]{Next: st.Advance(len(lit)), Value: lit}
	})
}

// End succeeds only when the whole input has been consumed.
func End() komb.Parser[State, komb.Unit] {
	return komb.Make(func(st State, _ komb.Supply) komb.Result[State, komb.Unit] {
		if !st.AtEnd() {
			return &komb.Miss[State, komb.Unit]{Failure: &komb.Failure{Expected: []string{"end of input"}}}
		}
		return &komb.Stay[State, komb.Unit]{}
	})
}

// Space skips a run of Unicode whitespace, succeeding either way: with
// consumption when whitespace was present, without it otherwise.
func Space() komb.Parser[State, komb.Unit] {
	return komb.Make(func(st State, _ komb.Supply) komb.Result[State, komb.Unit] {
		rest := st.Rest()
		n := 0
		for n < len(rest) {
			r, size := utf8.DecodeRuneInString(rest[n:])
			if !unicode.IsSpace(r) {
				break
			}
			n += size
		}
		if n == 0 {
			return &komb.Stay[State, komb.Unit]{}
		}
		return &komb.Move[State, komb.Unit]{Next: st.Advance(n)}
	})
}
