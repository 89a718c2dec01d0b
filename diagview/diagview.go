// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package diagview renders parse diagnostics against their source text:
// a styled header, line and column location, the offending line with a
// caret, notes, the scope trail, and optional near-miss suggestions.
//
// A view is wired into a run through komb.RunWith:
//
//	view := diagview.New(src, diagview.WithVocabulary("let", "if"))
//	_, v, err := komb.RunWith(parser, text.New(src), supply, view)
//
// Errors returned from such a run print fully decorated.
package diagview

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"code.hybscloud.com/komb"
	"code.hybscloud.com/komb/text"
)

// Styles holds the lipgloss styles applied to each part of a rendered
// diagnostic.
type Styles struct {
	Header   lipgloss.Style
	Location lipgloss.Style
	Gutter   lipgloss.Style
	Source   lipgloss.Style
	Caret    lipgloss.Style
	Note     lipgloss.Style
	Trail    lipgloss.Style
	Hint     lipgloss.Style
}

// DefaultStyles returns the standard color scheme.
func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Gutter:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Source:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Caret:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Note:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Trail:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	}
}

// View is a komb.Renderer bound to one source text.
type View struct {
	src    string
	styles Styles
	vocab  []string
}

// Option configures a [View].
type Option func(*View)

// WithStyles replaces the default style set.
func WithStyles(s Styles) Option {
	return func(v *View) { v.styles = s }
}

// WithVocabulary supplies the identifiers suggestions are drawn from.
// When the failure location starts a word, the closest vocabulary
// entries render as a "did you mean" hint.
func WithVocabulary(words ...string) Option {
	return func(v *View) { v.vocab = words }
}

// New returns a view over src.
func New(src string, opts ...Option) *View {
	v := &View{src: src, styles: DefaultStyles()}
	for _, o := range opts {
		o(v)
	}
	return v
}

const maxSuggestions = 3

// Render formats d as a multi-line report.
func (v *View) Render(d *komb.Diag) string {
	off := int(d.At)
	if off > len(v.src) {
		off = len(v.src)
	}
	line, col := text.LineCol(v.src, off)

	var b strings.Builder
	b.WriteString(v.styles.Header.Render("error:"))
	b.WriteString(" ")
	b.WriteString(d.Summary())
	b.WriteString("\n  ")
	b.WriteString(v.styles.Location.Render(fmt.Sprintf("at %d:%d", line, col)))
	b.WriteString("\n")

	v.excerpt(&b, off, line, col)

	for _, n := range d.Notes {
		b.WriteString("  ")
		b.WriteString(v.styles.Note.Render("note: " + n))
		b.WriteString("\n")
	}
	for _, m := range d.Trail {
		ml, mc := text.LineCol(v.src, int(m.At))
		b.WriteString("  ")
		b.WriteString(v.styles.Trail.Render(fmt.Sprintf("while parsing %s at %d:%d", m.Label, ml, mc)))
		b.WriteString("\n")
	}
	if hint := v.suggest(d, off); hint != "" {
		b.WriteString("  ")
		b.WriteString(v.styles.Hint.Render(hint))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// excerpt writes the offending source line with a caret under the
// failure column.
func (v *View) excerpt(b *strings.Builder, off, line, col int) {
	if v.src == "" {
		return
	}
	start := off
	for start > 0 && v.src[start-1] != '\n' {
		start--
	}
	end := off
	for end < len(v.src) && v.src[end] != '\n' {
		end++
	}

	num := strconv.Itoa(line)
	pad := strings.Repeat(" ", len(num))
	fmt.Fprintf(b, "  %s\n", v.styles.Gutter.Render(pad+" |"))
	fmt.Fprintf(b, "  %s %s\n", v.styles.Gutter.Render(num+" |"), v.styles.Source.Render(v.src[start:end]))
	fmt.Fprintf(b, "  %s %s%s\n", v.styles.Gutter.Render(pad+" |"), strings.Repeat(" ", col-1), v.styles.Caret.Render("^"))
}

// suggest returns a "did you mean" hint for the word at the failure
// location, or the empty string. Suggestions only apply when the
// diagnostic names expectations a vocabulary word could satisfy.
func (v *View) suggest(d *komb.Diag, off int) string {
	if len(v.vocab) == 0 || len(d.Expected) == 0 {
		return ""
	}
	word := wordAt(v.src, off)
	if word == "" {
		return ""
	}
	matches := fuzzy.Find(word, v.vocab)
	if len(matches) == 0 {
		return ""
	}
	names := make([]string, 0, maxSuggestions)
	for i, m := range matches {
		if i == maxSuggestions {
			break
		}
		if m.Str == word {
			continue
		}
		names = append(names, "'"+m.Str+"'")
	}
	if len(names) == 0 {
		return ""
	}
	return "did you mean " + joinList(names) + "?"
}

// wordAt returns the identifier starting at off, or the empty string
// when off does not start one.
func wordAt(src string, off int) string {
	end := off
	for end < len(src) {
		r, size := utf8.DecodeRuneInString(src[end:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		end += size
	}
	return src[off:end]
}

// joinList joins quoted names as "a, b or c".
func joinList(names []string) string {
	switch len(names) {
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
	}
}
