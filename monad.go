// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

// Monad operations for parsers.
//
// Minimal definition: Pure (unit) and Bind are necessary and
// sufficient. Map, Then and Seq are derived operations kept as
// optimizations and conveniences; Map in particular skips the
// intermediate parser value Bind(p, compose(Pure, f)) would build.

// Bind sequences two parses (monadic bind): it runs p, then the parser
// f builds from p's value, threading position and supply.
//
// Commitment is monotonic through a sequence. Once the first step has
// consumed input, a soft failure in the second step promotes to a hard
// error at the position where the second step began, carrying the
// description sets of both steps; pending failures of two non-consuming
// steps merge so an enclosing choice can still report a near miss.
func Bind[S State[S], A, B any](p Parser[S, A], f func(A) Parser[S, B]) Parser[S, B] {
	return Parser[S, B]{run: func(st S, sup Supply) step[S] {
		return &chain[S]{first: p.run(st, sup), cont: func(r res[S]) step[S] {
			switch v := r.(type) {
			case *stay[S]:
				return &chain[S]{first: f(v.v.(A)).run(st, sup), cont: stayJoin[S](v.pend)}
			case *move[S]:
				return &chain[S]{first: f(v.v.(A)).run(v.next, sup), cont: moveJoin[S](v.next, v.exp)}
			}
			return r
		}}
	}}
}

// stayJoin continues a sequence whose first step consumed nothing,
// folding its pending failure into the second outcome. Consumption or
// a hard error in the second step makes the stale pending irrelevant.
func stayJoin[S State[S]](pend *Failure) func(res[S]) step[S] {
	return func(r res[S]) step[S] {
		switch v := r.(type) {
		case *stay[S]:
			return &stay[S]{v: v.v, pend: mergeFailure(pend, v.pend)}
		case *miss[S]:
			return &miss[S]{fl: mergeFailure(pend, v.fl)}
		}
		return r
	}
}

// moveJoin continues a sequence already committed at mid, carrying exp,
// the alternative descriptions seen there. A second step that consumes
// resets the set; one that fails softly promotes hard, because a
// failure after consumption cannot be silently backtracked.
func moveJoin[S State[S]](mid S, exp []string) func(res[S]) step[S] {
	return func(r res[S]) step[S] {
		switch v := r.(type) {
		case *stay[S]:
			return &move[S]{next: mid, v: v.v, exp: mergeExpected(exp, v.pend)}
		case *miss[S]:
			return &halt[S]{ft: promote(mid.Loc(), exp, v.fl)}
		}
		return r
	}
}

// Map applies a pure function to the produced value, leaving the
// outcome shape and any pending or accumulated payload untouched.
func Map[S State[S], A, B any](p Parser[S, A], f func(A) B) Parser[S, B] {
	return Parser[S, B]{run: func(st S, sup Supply) step[S] {
		return &chain[S]{first: p.run(st, sup), cont: func(r res[S]) step[S] {
			switch v := r.(type) {
			case *stay[S]:
				return &stay[S]{v: f(v.v.(A)), pend: v.pend}
			case *move[S]:
				return &move[S]{next: v.next, v: f(v.v.(A)), exp: v.exp}
			}
			return r
		}}
	}}
}

// Then sequences two parsers, discarding the first value. More direct
// than Bind when the second parser does not depend on the first value.
func Then[S State[S], A, B any](p Parser[S, A], q Parser[S, B]) Parser[S, B] {
	return Bind(p, func(A) Parser[S, B] { return q })
}

// Pair holds two sequenced values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Seq runs p then q and pairs their values.
func Seq[S State[S], A, B any](p Parser[S, A], q Parser[S, B]) Parser[S, Pair[A, B]] {
	return Bind(p, func(a A) Parser[S, Pair[A, B]] {
		return Map(q, func(b B) Pair[A, B] {
			return Pair[A, B]{Fst: a, Snd: b}
		})
	})
}
