// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

// FilterMap refines the produced value through a partial mapping. When
// f rejects, a non-consuming success becomes a soft failure that
// recovers the pending one if present, while a committed success
// becomes a hard error at the advanced position: filtering never
// backtracks past consumed input. Failures pass through unchanged.
func FilterMap[S State[S], A, B any](p Parser[S, A], f func(A) (B, bool)) Parser[S, B] {
	return Parser[S, B]{run: func(st S, sup Supply) step[S] {
		return &chain[S]{first: p.run(st, sup), cont: func(r res[S]) step[S] {
			switch v := r.(type) {
			case *stay[S]:
				if b, ok := f(v.v.(A)); ok {
					return &stay[S]{v: b, pend: v.pend}
				}
				fl := v.pend
				if fl == nil {
					fl = &Failure{}
				}
				return &miss[S]{fl: fl}
			case *move[S]:
				if b, ok := f(v.v.(A)); ok {
					return &move[S]{next: v.next, v: b, exp: v.exp}
				}
				return &halt[S]{ft: &Fault{At: v.next.Loc(), Expected: v.exp}}
			}
			return r
		}}
	}}
}

// Filter keeps the value when pred accepts it; rejection follows the
// [FilterMap] rules.
func Filter[S State[S], A any](p Parser[S, A], pred func(A) bool) Parser[S, A] {
	return FilterMap(p, func(a A) (A, bool) { return a, pred(a) })
}
