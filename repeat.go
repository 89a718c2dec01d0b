// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

// Many applies p repeatedly until it fails softly, collecting the
// values. Zero matches succeed without consuming, keeping the failure
// as pending context; one or more matches commit at the last matched
// position and carry the terminating failure's description set, so a
// following parser can still report what would have extended the run.
// A hard error from any iteration propagates. The loop rides the
// driver's work list, so arbitrarily long runs cost constant native
// stack.
//
// p must consume input when it succeeds; Many panics if an iteration
// succeeds without consuming, since the repetition would never end.
func Many[S State[S], A any](p Parser[S, A]) Parser[S, []A] {
	return Parser[S, []A]{run: func(st S, sup Supply) step[S] {
		var (
			acc []A
			cur = st
			kk  func(res[S]) step[S]
		)
		kk = func(r res[S]) step[S] {
			switch v := r.(type) {
			case *move[S]:
				acc = append(acc, v.v.(A))
				cur = v.next
				return &chain[S]{first: p.run(cur, sup), cont: kk}
			case *miss[S]:
				if len(acc) == 0 {
					return &stay[S]{v: []A(nil), pend: v.fl}
				}
				return &move[S]{next: cur, v: acc, exp: v.fl.Expected}
			case *stay[S]:
				panic("komb: Many applied to a parser that succeeds without consuming")
			}
			return r
		}
		return &chain[S]{first: p.run(st, sup), cont: kk}
	}}
}

// Many1 is [Many] requiring at least one match.
func Many1[S State[S], A any](p Parser[S, A]) Parser[S, []A] {
	return Bind(p, func(first A) Parser[S, []A] {
		return Map(Many(p), func(rest []A) []A {
			out := make([]A, 0, len(rest)+1)
			out = append(out, first)
			return append(out, rest...)
		})
	})
}
