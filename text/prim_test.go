// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package text

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/komb"
)

func TestRuneMatch(t *testing.T) {
	end, v, err := komb.Run(Rune('a'), New("abc"), komb.NewCounter())
	assert.NoError(t, err)
	assert.Equal(t, 'a', v)
	assert.Equal(t, 1, end.Offset())
}

func TestRuneMismatch(t *testing.T) {
	_, _, err := komb.Run(Rune('a'), New("xbc"), komb.NewCounter())
	if assert.Error(t, err) {
		d := err.(*komb.Diag)
		assert.Equal(t, komb.Loc(0), d.At)
		assert.Equal(t, []string{"'a'"}, d.Expected)
	}
}

func TestRuneAtEndOfInput(t *testing.T) {
	_, _, err := komb.Run(Rune('a'), New(""), komb.NewCounter())
	assert.Error(t, err)
}

func TestRuneMultibyte(t *testing.T) {
	end, v, err := komb.Run(Rune('é'), New("éx"), komb.NewCounter())
	assert.NoError(t, err)
	assert.Equal(t, 'é', v)
	assert.Equal(t, 2, end.Offset())
}

func TestRuneWhere(t *testing.T) {
	digit := RuneWhere(unicode.IsDigit, "digit")

	end, v, err := komb.Run(digit, New("7x"), komb.NewCounter())
	assert.NoError(t, err)
	assert.Equal(t, '7', v)
	assert.Equal(t, 1, end.Offset())

	_, _, err = komb.Run(digit, New("x7"), komb.NewCounter())
	if assert.Error(t, err) {
		assert.Equal(t, []string{"digit"}, err.(*komb.Diag).Expected)
	}
}

func TestLitMatch(t *testing.T) {
	end, v, err := komb.Run(Lit("let"), New("let x"), komb.NewCounter())
	assert.NoError(t, err)
	assert.Equal(t, "let", v)
	assert.Equal(t, 3, end.Offset())
}

func TestLitMismatch(t *testing.T) {
	_, _, err := komb.Run(Lit("let"), New("lever"), komb.NewCounter())
	if assert.Error(t, err) {
		d := err.(*komb.Diag)
		assert.Equal(t, komb.Loc(0), d.At)
		assert.Equal(t, []string{`"let"`}, d.Expected)
	}
}

func TestLitEmptySucceedsWithoutConsuming(t *testing.T) {
	end, v, err := komb.Run(Lit(""), New("abc"), komb.NewCounter())
	assert.NoError(t, err)
	assert.Equal(t, "", v)
	assert.Equal(t, 0, end.Offset())
}

func TestLitLongerThanRest(t *testing.T) {
	_, _, err := komb.Run(Lit("abcd"), New("ab"), komb.NewCounter())
	assert.Error(t, err)
}

func TestEnd(t *testing.T) {
	endSt, _, err := komb.Run(End(), New(""), komb.NewCounter())
	assert.NoError(t, err)
	assert.Equal(t, 0, endSt.Offset())

	_, _, err = komb.Run(End(), New("x"), komb.NewCounter())
	if assert.Error(t, err) {
		assert.Equal(t, []string{"end of input"}, err.(*komb.Diag).Expected)
	}
}

func TestEndAfterConsumption(t *testing.T) {
	p := komb.Then(Lit("ab"), End())
	endSt, _, err := komb.Run(p, New("ab"), komb.NewCounter())
	assert.NoError(t, err)
	assert.Equal(t, 2, endSt.Offset())

	_, _, err = komb.Run(p, New("abc"), komb.NewCounter())
	if assert.Error(t, err) {
		assert.Equal(t, komb.Loc(2), err.(*komb.Diag).At)
	}
}

func TestSpaceSkipsRun(t *testing.T) {
	end, _, err := komb.Run(Space(), New(" \t\n x"), komb.NewCounter())
	assert.NoError(t, err)
	assert.Equal(t, 4, end.Offset())
}

func TestSpaceNoWhitespace(t *testing.T) {
	end, _, err := komb.Run(Space(), New("x"), komb.NewCounter())
	assert.NoError(t, err)
	assert.Equal(t, 0, end.Offset())
}

func TestSpaceUnicode(t *testing.T) {
	end, _, err := komb.Run(Space(), New(" x"), komb.NewCounter())
	assert.NoError(t, err)
	assert.Equal(t, 2, end.Offset())
}
