// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

// Slice discards p's value and yields the exact input span it consumed:
// the substring between the positions before and after the sub-parse,
// or the empty string when p succeeded without consuming. Failures pass
// through unchanged. The span is taken from the input by offset, so no
// re-parse happens.
func Slice[S State[S], A any](p Parser[S, A]) Parser[S, string] {
	return Parser[S, string]{run: func(st S, sup Supply) step[S] {
		return &chain[S]{first: p.run(st, sup), cont: func(r res[S]) step[S] {
			switch v := r.(type) {
			case *stay[S]:
				return &stay[S]{v: "", pend: v.pend}
			case *move[S]:
				return &move[S]{
					next: v.next,
					v:    st.Input()[st.Offset():v.next.Offset()],
					exp:  v.exp,
				}
			}
			return r
		}}
	}}
}
