// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

import "sync/atomic"

// Sym is a fresh identifier drawn from a [Supply]. Grammars use it to
// tag the values they build, for example numbering AST nodes.
type Sym int64

// Supply hands out fresh identifiers during a parse.
//
// A supply is not transactional: identifiers drawn on a branch that
// later backtracks stay consumed, so two runs of the same grammar over
// the same input may observe gaps. Callers must not rely on identifier
// continuity across failed alternatives.
type Supply interface {
	// Fresh returns an identifier never returned before by this supply.
	Fresh() Sym
}

// Counter is the default [Supply]: a monotonically increasing counter,
// safe for concurrent use and for sharing across parses.
type Counter struct {
	n atomic.Int64
}

// NewCounter returns a counter starting at zero.
func NewCounter() *Counter { return new(Counter) }

// Fresh returns the next identifier in sequence.
func (c *Counter) Fresh() Sym { return Sym(c.n.Add(1) - 1) }
