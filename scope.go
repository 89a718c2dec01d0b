// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

// Scope attaches label to the grammar region p covers. Success passes
// through untouched. A soft failure gains the label in its description
// set, so merged choices read "expected <label>". When the position has
// tracing enabled, a hard error gains a (location, label) frame at the
// front of its trail, recording where the region began; without tracing
// hard errors pass through unchanged.
func Scope[S State[S], A any](label string, p Parser[S, A]) Parser[S, A] {
	return Parser[S, A]{run: func(st S, sup Supply) step[S] {
		return &chain[S]{first: p.run(st, sup), cont: func(r res[S]) step[S] {
			switch v := r.(type) {
			case *miss[S]:
				return &miss[S]{fl: v.fl.withLabel(label)}
			case *halt[S]:
				if st.Tracing() {
					return &halt[S]{ft: v.ft.withMark(Mark{At: st.Loc(), Label: label})}
				}
			}
			return r
		}}
	}}
}
