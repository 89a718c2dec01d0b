// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

// Or tries p and falls back to q only on a soft failure, merging what
// each branch would have reported. Any success and any hard error from
// p return unchanged without running q: consumption commits the choice.
func Or[S State[S], A any](p, q Parser[S, A]) Parser[S, A] {
	return Parser[S, A]{run: func(st S, sup Supply) step[S] {
		return &chain[S]{first: p.run(st, sup), cont: func(r res[S]) step[S] {
			v, ok := r.(*miss[S])
			if !ok {
				return r
			}
			return &chain[S]{first: q.run(st, sup), cont: orJoin[S](v.fl)}
		}}
	}}
}

// orJoin folds the left branch's failure into the right branch's
// outcome: a non-consuming success keeps it as pending context, a soft
// failure merges left-biased, and consumption or a hard error
// supersedes it.
func orJoin[S State[S]](left *Failure) func(res[S]) step[S] {
	return func(r res[S]) step[S] {
		switch v := r.(type) {
		case *stay[S]:
			return &stay[S]{v: v.v, pend: mergeFailure(left, v.pend)}
		case *miss[S]:
			return &miss[S]{fl: mergeFailure(left, v.fl)}
		}
		return r
	}
}

// Race is [Or] with a better loss report: when both branches hard
// error, the one that reached the furthest location wins, ties keeping
// the left. A left hard error still never yields to a right success or
// soft failure; after commitment the right branch runs only to improve
// the diagnostic.
func Race[S State[S], A any](p, q Parser[S, A]) Parser[S, A] {
	return Parser[S, A]{run: func(st S, sup Supply) step[S] {
		return &chain[S]{first: p.run(st, sup), cont: func(r res[S]) step[S] {
			switch v := r.(type) {
			case *miss[S]:
				return &chain[S]{first: q.run(st, sup), cont: orJoin[S](v.fl)}
			case *halt[S]:
				return &chain[S]{first: q.run(st, sup), cont: func(r2 res[S]) step[S] {
					if w, ok := r2.(*halt[S]); ok {
						return &halt[S]{ft: betterFault(v.ft, w.ft)}
					}
					return v
				}}
			}
			return r
		}}
	}}
}

// OrElse substitutes def when p fails softly, succeeding without
// consumption and keeping the failure as pending context so an
// enclosing choice can still report it. Successes and hard errors
// return unchanged.
func OrElse[S State[S], A any](p Parser[S, A], def A) Parser[S, A] {
	return Parser[S, A]{run: func(st S, sup Supply) step[S] {
		return &chain[S]{first: p.run(st, sup), cont: func(r res[S]) step[S] {
			if v, ok := r.(*miss[S]); ok {
				return &stay[S]{v: def, pend: v.fl}
			}
			return r
		}}
	}}
}

// Expecting replaces the description set a soft failure reports with
// labels: the usual way to name a whole alternative ("a number", "an
// operator") instead of leaking its leaf expectations. Successes and
// hard errors pass through.
func Expecting[S State[S], A any](p Parser[S, A], labels ...string) Parser[S, A] {
	return Parser[S, A]{run: func(st S, sup Supply) step[S] {
		return &chain[S]{first: p.run(st, sup), cont: func(r res[S]) step[S] {
			if v, ok := r.(*miss[S]); ok {
				fl := *v.fl
				fl.Expected = labels
				return &miss[S]{fl: &fl}
			}
			return r
		}}
	}}
}
