// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

// Attempt demotes a hard error to a soft failure, discarding the
// consumption that caused commitment so sibling alternatives may still
// run. The discarded error's rendered text survives as a note on the
// soft failure, and labels (if given) become its description set.
// Successes and soft failures pass through unchanged.
func Attempt[S State[S], A any](p Parser[S, A], labels ...string) Parser[S, A] {
	return Parser[S, A]{run: func(st S, sup Supply) step[S] {
		return &chain[S]{first: p.run(st, sup), cont: func(r res[S]) step[S] {
			if v, ok := r.(*halt[S]); ok {
				return &miss[S]{fl: &Failure{
					Notes:    []string{v.ft.String()},
					Expected: labels,
				}}
			}
			return r
		}}
	}}
}

// Handle is the general catch-and-recover primitive: any failure, soft
// or hard, is passed to f and the parse continues with the parser f
// returns, applied at the position p started from. On the soft path the
// recovery outcome folds the original failure back in, like the right
// side of [Or]; on the hard path the recovery outcome stands alone. The
// fault payload carries the failure location, so recovery code that
// wants to resynchronize further ahead can advance deliberately.
//
// [Or], [Attempt] and [OrElse] are specializations of Handle over the
// result algebra.
func Handle[S State[S], A any](p Parser[S, A], f func(Flaw) Parser[S, A]) Parser[S, A] {
	return Parser[S, A]{run: func(st S, sup Supply) step[S] {
		return &chain[S]{first: p.run(st, sup), cont: func(r res[S]) step[S] {
			switch v := r.(type) {
			case *miss[S]:
				return &chain[S]{first: f(v.fl).run(st, sup), cont: orJoin[S](v.fl)}
			case *halt[S]:
				return f(v.ft).run(st, sup)
			}
			return r
		}}
	}}
}

// DropPending clears the pending failure of a non-consuming success.
// Sequences of non-consuming steps merge their pendings by default so
// an enclosing choice can still report a near miss; wrap a sub-grammar
// in DropPending where that context is deliberate noise.
func DropPending[S State[S], A any](p Parser[S, A]) Parser[S, A] {
	return Parser[S, A]{run: func(st S, sup Supply) step[S] {
		return &chain[S]{first: p.run(st, sup), cont: func(r res[S]) step[S] {
			if v, ok := r.(*stay[S]); ok && v.pend != nil {
				return &stay[S]{v: v.v}
			}
			return r
		}}
	}}
}
