// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

import "fmt"

// WouldMatch reports whether p would succeed here, as a zero-width
// lookahead: it always succeeds with a boolean, never consumes input,
// and never propagates p's own failure, not even a hard one.
func WouldMatch[S State[S], A any](p Parser[S, A]) Parser[S, bool] {
	return Parser[S, bool]{run: func(st S, sup Supply) step[S] {
		return &chain[S]{first: p.run(st, sup), cont: func(r res[S]) step[S] {
			switch r.(type) {
			case *stay[S], *move[S]:
				return &stay[S]{v: true}
			}
			return &stay[S]{v: false}
		}}
	}}
}

// Not succeeds without consuming exactly when p would fail without
// consuming. A p that matches turns into a failure instead: soft when
// it consumed nothing, hard when it committed, reported at the start of
// the offending span and quoting it. A hard error from p propagates,
// since p then failed only after consuming.
func Not[S State[S], A any](p Parser[S, A]) Parser[S, Unit] {
	return Parser[S, Unit]{run: func(st S, sup Supply) step[S] {
		return &chain[S]{first: p.run(st, sup), cont: func(r res[S]) step[S] {
			switch v := r.(type) {
			case *stay[S]:
				return &miss[S]{fl: &Failure{Msg: "unexpected input"}}
			case *move[S]:
				span := st.Input()[st.Offset():v.next.Offset()]
				return &halt[S]{ft: &Fault{
					At:  st.Loc(),
					Msg: fmt.Sprintf("unexpected %q", span),
				}}
			case *miss[S]:
				return &stay[S]{v: Unit{}}
			}
			return r
		}}
	}}
}
