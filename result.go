// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

// Result is one concrete outcome of applying a parser at a position.
//
// Exactly four shapes implement it: [Stay], [Move], [Miss] and [Halt].
// Raw parsers built with [Make] return one of the four; every
// combinator matches all four exhaustively, so introducing a new shape
// is a compile-visible change across the package. The marker method is
// unexported to keep the algebra closed.
type Result[S State[S], A any] interface {
	result(S, A)
}

// Stay is success without consumption. Pending optionally records what
// the road not taken would have reported, so an enclosing choice can
// still surface how close the parse came to a documented alternative
// (see [Or], [OrElse] and [DropPending]).
type Stay[S State[S], A any] struct {
	Value   A
	Pending *Failure
}

// Move is committed success: the parse advanced to Next. Expected
// accumulates the alternative-branch descriptions seen at the new
// position; consuming further input resets it.
type Move[S State[S], A any] struct {
	Next     S
	Value    A
	Expected []string
}

// Miss is a soft failure: nothing was consumed and sibling alternatives
// may still run.
type Miss[S State[S], A any] struct {
	Failure *Failure
}

// Halt is a hard error: the failure happened after consumption, so
// ordinary alternation must not retry a sibling. Only [Attempt] and
// [Handle] demote it.
type Halt[S State[S], A any] struct {
	Fault *Fault
}

func (*Stay[S, A]) result(S, A) {}
func (*Move[S, A]) result(S, A) {}
func (*Miss[S, A]) result(S, A) {}
func (*Halt[S, A]) result(S, A) {}

// lower converts a public result into its engine form, erasing the
// value type. A nil Miss payload normalizes to the empty failure; a
// Halt must carry its fault, since a hard error without a location is
// meaningless.
func lower[S State[S], A any](r Result[S, A]) res[S] {
	switch v := r.(type) {
	case *Stay[S, A]:
		return &stay[S]{v: v.Value, pend: v.Pending}
	case *Move[S, A]:
		return &move[S]{next: v.Next, v: v.Value, exp: v.Expected}
	case *Miss[S, A]:
		fl := v.Failure
		if fl == nil {
			fl = &Failure{}
		}
		return &miss[S]{fl: fl}
	case *Halt[S, A]:
		if v.Fault == nil {
			panic("komb: Halt result without a Fault")
		}
		return &halt[S]{ft: v.Fault}
	}
	panic("komb: unknown result shape")
}
