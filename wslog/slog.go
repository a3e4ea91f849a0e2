// custom slog handler
//
// Writes one line per record: l=<level> msg=<msg> k=v ...
// Byte slices are written as 0x prefixed hex.
//
// Adapted from: https://github.com/jba/slog
// BSD 3-Clause License
// Copyright (c) 2022, Jonathan Amsterdam
package wslog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// shared by a handler and everything derived from it
type sink struct {
	mu   sync.Mutex
	w    io.Writer
	ctxs []func(context.Context) (string, any)
}

type Handler struct {
	*sink
	level  slog.Leveler
	prefix string
	attrs  []byte
}

func New(w io.Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{sink: &sink{w: w}, level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// Registers a function that reads a value from the
// record's context. An empty key skips the value.
// For example, returning ("op", "pack") becomes: op=pack
func (h *Handler) RegisterContext(f func(context.Context) (string, any)) {
	h.mu.Lock()
	h.ctxs = append(h.ctxs, f)
	h.mu.Unlock()
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = append([]byte(nil), h.attrs...)
	for _, a := range attrs {
		h2.attrs = appendAttr(h2.attrs, h.prefix, a)
	}
	return &h2
}

var bpool = sync.Pool{New: func() any { b := make([]byte, 0, 1024); return &b }}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	bufp := bpool.Get().(*[]byte)
	buf := (*bufp)[:0]
	defer func() {
		if cap(buf) <= 16<<10 {
			*bufp = buf[:0]
			bpool.Put(bufp)
		}
	}()

	buf = fmt.Appendf(buf, "l=%-5s ", strings.ToLower(r.Level.String()))
	buf = append(buf, h.attrs...)
	if r.Message != "" {
		buf = append(buf, "msg="...)
		buf = append(buf, r.Message...)
		buf = append(buf, ' ')
	}

	h.mu.Lock()
	ctxs := h.ctxs
	h.mu.Unlock()
	for _, f := range ctxs {
		if k, v := f(ctx); k != "" {
			buf = appendValue(append(append(buf, k...), '='), v)
		}
	}
	r.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.prefix, a)
		return true
	})
	buf = bytes.TrimSuffix(buf, []byte(" "))
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf)
	return err
}

func appendValue(buf []byte, v any) []byte {
	switch v := v.(type) {
	case []byte:
		return fmt.Appendf(buf, "0x%x ", v)
	default:
		return fmt.Appendf(buf, "%v ", v)
	}
}

func appendAttr(buf []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}
	if a.Value.Kind() != slog.KindGroup {
		buf = append(buf, prefix...)
		buf = append(buf, a.Key...)
		buf = append(buf, '=')
		return appendValue(buf, a.Value.Any())
	}
	if a.Key != "" {
		prefix += a.Key + "."
	}
	for _, ga := range a.Value.Group() {
		buf = appendAttr(buf, prefix, ga)
	}
	return buf
}
