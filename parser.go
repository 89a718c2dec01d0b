// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

import "sync"

// Parser is a reusable, side-effect-free description of one parse:
// applied to a position and an identifier supply it produces one of the
// four [Result] shapes. Applying the same parser twice to identical
// inputs yields identical outcomes; a Parser value never mutates shared
// state and may be reused across parses and goroutines freely.
//
// Application builds suspended engine nodes rather than recursing, and
// the driver behind [Run] forces them iteratively, so grammars nest and
// repeat to any depth without growing the native stack.
type Parser[S State[S], A any] struct {
	run func(S, Supply) step[S]
}

// Unit is the empty value produced by parsers that matter only for
// their effect on the parse, such as [Not] and [When].
type Unit = struct{}

// Make builds a parser from a raw step function, the leaf of every
// grammar. The function receives the current position and the supply
// and must return one of the four result shapes; it runs only when the
// driver forces the node, never at composition time.
func Make[S State[S], A any](f func(S, Supply) Result[S, A]) Parser[S, A] {
	return Parser[S, A]{run: func(st S, sup Supply) step[S] {
		return &deferred[S]{force: func() step[S] {
			return lower[S, A](f(st, sup))
		}}
	}}
}

// Pure succeeds with v, consuming nothing.
func Pure[S State[S], A any](v A) Parser[S, A] {
	return Parser[S, A]{run: func(S, Supply) step[S] {
		return &stay[S]{v: v}
	}}
}

// Reject fails softly with msg, consuming nothing.
func Reject[S State[S], A any](msg string) Parser[S, A] {
	return Parser[S, A]{run: func(S, Supply) step[S] {
		return &miss[S]{fl: &Failure{Msg: msg}}
	}}
}

// Fresh draws the next identifier from the supply, consuming no input.
// Supplies are not transactional: an identifier drawn on a branch that
// later backtracks stays consumed.
func Fresh[S State[S]]() Parser[S, Sym] {
	return Parser[S, Sym]{run: func(_ S, sup Supply) step[S] {
		return &stay[S]{v: sup.Fresh()}
	}}
}

// Lazy defers construction of a parser until its first application,
// breaking the initialization cycle of self-referential grammars:
//
//	var expr komb.Parser[text.State, float64]
//	expr = komb.Lazy(func() komb.Parser[text.State, float64] {
//		return komb.Or(group(expr), number)
//	})
//
// f runs once; the built parser is cached for every later application.
func Lazy[S State[S], A any](f func() Parser[S, A]) Parser[S, A] {
	var (
		once sync.Once
		p    Parser[S, A]
	)
	return Parser[S, A]{run: func(st S, sup Supply) step[S] {
		return &deferred[S]{force: func() step[S] {
			once.Do(func() { p = f() })
			return p.run(st, sup)
		}}
	}}
}

// When runs p when cond holds, otherwise succeeds with no effect. It
// lets a grammar embed a conditional step without branching its overall
// structure.
func When[S State[S]](cond bool, p Parser[S, Unit]) Parser[S, Unit] {
	if !cond {
		return Pure[S](Unit{})
	}
	return p
}
