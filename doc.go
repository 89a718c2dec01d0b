// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package komb is the execution core of a parser-combinator library:
// reusable parse computations that, applied to an input position and a
// source of fresh identifiers, produce a value or a diagnosable
// failure, with backtracking control, furthest-progress error
// reporting, and stack-safe deep composition.
//
// The package deliberately stops at the combinator algebra. Concrete
// input tracking lives behind the [State] contract (the text
// subpackage has a ready-made implementation over strings), identifier
// generation behind [Supply], and rich error formatting behind
// [Renderer] (see the diagview subpackage). There is no grammar DSL
// and no lexer: grammars are composed by hand from leaf parsers.
//
// # Result Algebra
//
// Applying a parser produces exactly one of four outcome shapes:
//
//   - [Stay]: success without consumption, optionally carrying a
//     pending [Failure], the failure an abandoned alternative would
//     have reported, kept so enclosing context can still show it
//   - [Move]: committed success at an advanced position, carrying the
//     alternative descriptions accumulated there
//   - [Miss]: soft failure; nothing consumed, siblings may run
//   - [Halt]: hard error, a failure after consumption, which only
//     [Attempt] or [Handle] can demote
//
// The split between [Miss] and [Halt] is what gives grammars precise
// control over backtracking: consuming input commits a branch, so a
// later failure in it becomes hard and choice combinators stop trying
// siblings. Two soft failures merge keeping the first message and
// unioning their notes and description sets; two hard errors race by
// location, the furthest winning and ties keeping the left.
//
// # Stack Safety
//
// Parser application never produces a concrete outcome directly; it
// builds suspended engine nodes that the driver behind [Run] forces
// iteratively, keeping pending continuations in an explicit heap
// work list. Left-nested sequences, deep alternation and long
// repetitions therefore evaluate in constant native stack space; see
// the deep-chain tests for the contract.
//
// # Construction
//
//   - [Make]: build a leaf parser from a raw step function
//   - [Pure]: succeed without consuming
//   - [Reject]: fail softly with a message
//   - [Fresh]: draw an identifier from the [Supply]
//   - [Lazy]: defer construction for self-referential grammars
//
// # Sequencing
//
//   - [Bind]: run a parser, then one built from its value
//   - [Map]: transform the value, shape unchanged
//   - [Then]: sequence, discarding the first value
//   - [Seq]: sequence into a [Pair]
//   - [FilterMap], [Filter]: refine the value; rejection fails softly
//     before consumption and hard after it
//   - [Many], [Many1]: repetition until the first soft failure
//
// # Choice and Recovery
//
//   - [Or]: try the right branch only on a soft failure
//   - [Race]: [Or], plus furthest-location arbitration when both
//     branches hard-error
//   - [OrElse]: substitute a literal value for a soft failure
//   - [Attempt]: demote a hard error to a soft failure, keeping its
//     rendered text as a note
//   - [Handle]: general catch-and-recover over soft and hard failures
//   - [DropPending], [Expecting]: prune or rename what a failure
//     reports
//
// # Lookahead and Spans
//
//   - [WouldMatch]: zero-width probe, reports success as a boolean
//   - [Not]: negative lookahead; an unexpected match fails soft or
//     hard depending on whether it consumed
//   - [Slice]: yield the exact input span a sub-parse consumed
//   - [When]: embed a conditional step
//
// # Scopes and Tracing
//
// [Scope] labels a grammar region. Soft failures collect labels into
// their description sets; hard errors record (location, label) frames
// on the fault trail, but only when the position's tracing flag is on,
// keeping the bookkeeping off hot paths. [Run] flattens whichever
// failure survives into a [Diag], rendered plainly or through the
// [Renderer] given to [RunWith].
//
// # Example
//
//	st := text.New("ab")
//	ab := komb.Seq(text.Rune('a'), text.Rune('b'))
//	end, pair, err := komb.Run(ab, st, komb.NewCounter())
//	// err == nil, pair == komb.Pair[rune, rune]{'a', 'b'}, end.Offset() == 2
//
// On "ac" the same grammar stops hard at offset 1, since the consumed
// 'a' bars the failed 'b' from backtracking, and the diagnostic reads:
//
//	parse failed at offset 1: expected 'b'
package komb
