// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package calc parses and evaluates arithmetic expressions. It is the
// demonstration grammar for komb: numbers, parenthesized groups, unary
// minus and the four infix operators with the usual precedence.
//
// Every tree node carries an identity drawn from the run's supply, so
// identical subexpressions remain distinguishable to later passes.
package calc

import (
	"strconv"
	"unicode"

	"code.hybscloud.com/komb"
	"code.hybscloud.com/komb/text"
)

// Op identifies what a node computes.
type Op uint8

const (
	OpNum Op = iota
	OpNeg
	OpAdd
	OpSub
	OpMul
	OpDiv
)

func (o Op) String() string {
	switch o {
	case OpNum:
		return "num"
	case OpNeg, OpSub:
		return "-"
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

// Node is one vertex of an expression tree.
type Node struct {
	// ID is unique within one parse.
	ID komb.Sym
	Op Op
	// Val is set for OpNum nodes.
	Val float64
	// Lhs holds the only operand of OpNeg; Rhs stays nil there.
	Lhs *Node
	Rhs *Node
}

// String renders the tree in prefix form, e.g. "(+ 1 (* 2 3))".
func (n *Node) String() string {
	switch n.Op {
	case OpNum:
		return strconv.FormatFloat(n.Val, 'g', -1, 64)
	case OpNeg:
		return "(- " + n.Lhs.String() + ")"
	}
	return "(" + n.Op.String() + " " + n.Lhs.String() + " " + n.Rhs.String() + ")"
}

type parser = komb.Parser[text.State, *Node]

// exprParser is built once; parser values are immutable and shared by
// every run.
var exprParser = grammar()

// fullParser accepts a whole input: leading whitespace, one expression,
// end of input.
var fullParser = komb.Then(text.Space(), komb.Bind(exprParser, func(n *Node) parser {
	return komb.Then(text.End(), komb.Pure[text.State](n))
}))

// Parse reads a complete expression from src.
func Parse(src string) (*Node, error) {
	_, n, err := komb.Run(fullParser, text.New(src), komb.NewCounter())
	return n, err
}

// ParseTraced is Parse with scope tracing enabled, so failures carry
// the trail of grammar regions around the error.
func ParseTraced(src string) (*Node, error) {
	_, n, err := komb.Run(fullParser, text.New(src, text.WithTracing()), komb.NewCounter())
	return n, err
}

// Parser returns the whole-input expression parser for callers that
// run it themselves, with their own position, supply or renderer.
func Parser() komb.Parser[text.State, *Node] {
	return fullParser
}

// Eval computes the value of an expression tree. Division by zero
// follows float64 arithmetic.
func Eval(n *Node) float64 {
	switch n.Op {
	case OpNum:
		return n.Val
	case OpNeg:
		return -Eval(n.Lhs)
	case OpAdd:
		return Eval(n.Lhs) + Eval(n.Rhs)
	case OpSub:
		return Eval(n.Lhs) - Eval(n.Rhs)
	case OpMul:
		return Eval(n.Lhs) * Eval(n.Rhs)
	case OpDiv:
		return Eval(n.Lhs) / Eval(n.Rhs)
	}
	return 0
}

// lexeme runs p and skips the whitespace after it.
func lexeme[A any](p komb.Parser[text.State, A]) komb.Parser[text.State, A] {
	return komb.Bind(p, func(v A) komb.Parser[text.State, A] {
		return komb.Then(text.Space(), komb.Pure[text.State](v))
	})
}

func symbol(r rune) komb.Parser[text.State, rune] {
	return lexeme(text.Rune(r))
}

func operator(r rune, op Op) komb.Parser[text.State, Op] {
	return komb.Map(symbol(r), func(rune) Op { return op })
}

// leaf, unary and binary finish a production by drawing the node's
// identity from the supply.
func leaf(v float64) parser {
	return komb.Map(komb.Fresh[text.State](), func(id komb.Sym) *Node {
		return &Node{ID: id, Op: OpNum, Val: v}
	})
}

func unary(op Op, x *Node) parser {
	return komb.Map(komb.Fresh[text.State](), func(id komb.Sym) *Node {
		return &Node{ID: id, Op: op, Lhs: x}
	})
}

func binary(op Op, l, r *Node) parser {
	return komb.Map(komb.Fresh[text.State](), func(id komb.Sym) *Node {
		return &Node{ID: id, Op: op, Lhs: l, Rhs: r}
	})
}

// grammar builds the expression parser. The two recursion points tie
// back through Lazy to locals assigned before grammar returns.
func grammar() parser {
	var expr, factor parser

	digits := komb.Many1(text.RuneWhere(unicode.IsDigit, "a digit"))
	frac := komb.Then(text.Rune('.'), digits)
	// A lone trailing dot backtracks to the integer part, so "12." is
	// the number 12 followed by an unconsumed dot.
	span := komb.Slice(komb.Then(digits, komb.OrElse(komb.Attempt(frac, "a fraction"), nil)))
	number := komb.Bind(
		lexeme(komb.Expecting(komb.FilterMap(span, parseFloat), "a number")),
		func(v float64) parser { return leaf(v) },
	)

	neg := komb.Bind(
		komb.Then(symbol('-'), komb.Lazy(func() parser { return factor })),
		func(x *Node) parser { return unary(OpNeg, x) },
	)
	group := komb.Bind(
		komb.Then(symbol('('), komb.Lazy(func() parser { return expr })),
		func(x *Node) parser {
			return komb.Then(symbol(')'), komb.Pure[text.State](x))
		},
	)
	factor = komb.Scope("a factor", komb.Or(group, komb.Or(neg, number)))

	term := komb.Scope("a term",
		chain(factor, komb.Or(operator('*', OpMul), operator('/', OpDiv))))
	expr = komb.Scope("an expression",
		chain(term, komb.Or(operator('+', OpAdd), operator('-', OpSub))))
	return expr
}

// chain parses p separated by infix operators, folding left.
func chain(p parser, op komb.Parser[text.State, Op]) parser {
	rest := komb.Many(komb.Seq(op, p))
	return komb.Bind(p, func(first *Node) parser {
		return komb.Bind(rest, func(tail []komb.Pair[Op, *Node]) parser {
			return fold(first, tail)
		})
	})
}

func fold(acc *Node, tail []komb.Pair[Op, *Node]) parser {
	if len(tail) == 0 {
		return komb.Pure[text.State](acc)
	}
	return komb.Bind(binary(tail[0].Fst, acc, tail[0].Snd), func(n *Node) parser {
		return fold(n, tail[1:])
	})
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}
