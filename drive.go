// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

// The engine below evaluates parser applications without native
// recursion. Applying a parser yields a step: either one of the four
// concrete outcomes, a deferred node, or a chain pairing a suspended
// first step with the continuation to run on its outcome. The driver
// keeps an explicit continuation stack on the heap and processes one
// node per iteration, so left-nested sequences and alternations of any
// depth evaluate in constant native stack space.
//
// Steps erase the value type: the value slot is any, re-asserted inside
// the typed continuation closures the public generic combinators build.
// The state type stays a real parameter end to end, so positions are
// never type-asserted.

// step is one engine node. The phantom parameter on the marker binds
// the state type, so steps of different state types never mix.
type step[S State[S]] interface {
	step(S)
}

// res is a concrete outcome node, the value-erased mirror of [Result].
type res[S State[S]] interface {
	step[S]
	res(S)
}

// stay mirrors [Stay]: success without consumption.
type stay[S State[S]] struct {
	v    any
	pend *Failure
}

// move mirrors [Move]: committed success at next.
type move[S State[S]] struct {
	next S
	v    any
	exp  []string
}

// miss mirrors [Miss]. fl is never nil.
type miss[S State[S]] struct {
	fl *Failure
}

// halt mirrors [Halt]. ft is never nil.
type halt[S State[S]] struct {
	ft *Fault
}

// chain sequences a suspended first step with a continuation applied to
// its concrete outcome once the driver has produced it.
type chain[S State[S]] struct {
	first step[S]
	cont  func(res[S]) step[S]
}

// deferred delays producing a step until the driver forces it.
type deferred[S State[S]] struct {
	force func() step[S]
}

func (*stay[S]) step(S) {}
func (*stay[S]) res(S)  {}
func (*move[S]) step(S) {}
func (*move[S]) res(S)  {}
func (*miss[S]) step(S) {}
func (*miss[S]) res(S)  {}
func (*halt[S]) step(S) {}
func (*halt[S]) res(S)  {}

func (*chain[S]) step(S)    {}
func (*deferred[S]) step(S) {}

// drive forces s to a concrete outcome. Each iteration handles exactly
// one node: a chain pushes its continuation and descends into its first
// step, a deferred node produces its replacement, and an outcome feeds
// the most recently pushed continuation. Continuations themselves
// return in O(1) after allocating at most a few nodes, so the native
// stack never grows with grammar depth; all pending work lives in the
// konts slice.
func drive[S State[S]](s step[S]) res[S] {
	var konts []func(res[S]) step[S]
	for {
		switch v := s.(type) {
		case *chain[S]:
			konts = append(konts, v.cont)
			s = v.first
		case *deferred[S]:
			s = v.force()
		case res[S]:
			n := len(konts)
			if n == 0 {
				return v
			}
			k := konts[n-1]
			konts = konts[:n-1]
			s = k(v)
		default:
			panic("komb: unknown step node")
		}
	}
}
