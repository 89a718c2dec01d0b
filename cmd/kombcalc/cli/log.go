// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGreen  = "\033[32m"
	colorBlue   = "\033[34m"
)

// levelVar is shared by the handler and the flag, so --log-level takes
// effect as soon as kong parses it.
var levelVar slog.LevelVar

// logLevel configures the logger level as a side effect of parsing via
// encoding.TextUnmarshaler, early enough to affect messages emitted
// while the remaining flags resolve.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	switch string(text) {
	case "debug":
		levelVar.Set(slog.LevelDebug)
	case "info":
		levelVar.Set(slog.LevelInfo)
	case "warn":
		levelVar.Set(slog.LevelWarn)
	case "error":
		levelVar.Set(slog.LevelError)
	default:
		return fmt.Errorf("unknown log level %q", text)
	}
	return nil
}

type logConfig struct {
	Level logLevel `default:"info" enum:"debug,info,warn,error" help:"Set log level."`
}

// start installs the compact handler as the process default logger.
func (f *logConfig) start(ctx context.Context, noColor bool) {
	slog.SetDefault(slog.New(&compactHandler{
		mu:      &sync.Mutex{},
		w:       os.Stderr,
		noColor: noColor,
	}))
	slog.DebugContext(ctx, "logger initialized",
		slog.String("level", levelVar.Level().String()),
	)
}

// compactHandler writes one record per line: a colored level tag, the
// message, then key=value pairs. It is aimed at interactive use, not
// machine consumption, so records carry no timestamp.
type compactHandler struct {
	mu      *sync.Mutex
	w       io.Writer
	noColor bool
	attrs   []slog.Attr
	groups  []string
}

func (h *compactHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= levelVar.Level()
}

func (h *compactHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	buf.WriteString(h.color(levelColor(r.Level), r.Level.String()))
	buf.WriteByte(' ')
	buf.WriteString(r.Message)

	for _, a := range h.attrs {
		h.writeAttr(buf, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.qualify(a))
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

func (h *compactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	n := h.clone()
	for _, a := range attrs {
		n.attrs = append(n.attrs, h.qualify(a))
	}
	return n
}

func (h *compactHandler) WithGroup(name string) slog.Handler {
	n := h.clone()
	n.groups = append(n.groups, name)
	return n
}

func (h *compactHandler) clone() *compactHandler {
	return &compactHandler{
		mu:      h.mu,
		w:       h.w,
		noColor: h.noColor,
		attrs:   h.attrs[:len(h.attrs):len(h.attrs)],
		groups:  h.groups[:len(h.groups):len(h.groups)],
	}
}

func (h *compactHandler) qualify(a slog.Attr) slog.Attr {
	for i := len(h.groups) - 1; i >= 0; i-- {
		a.Key = h.groups[i] + "." + a.Key
	}
	return a
}

func (h *compactHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	buf.WriteByte(' ')
	buf.WriteString(h.color(colorGray, a.Key))
	buf.WriteByte('=')
	buf.WriteString(a.Value.Resolve().String())
}

func (h *compactHandler) color(code, s string) string {
	if h.noColor {
		return s
	}
	return code + s + colorReset
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return colorRed
	case level >= slog.LevelWarn:
		return colorYellow
	case level >= slog.LevelInfo:
		return colorGreen
	}
	return colorBlue
}
