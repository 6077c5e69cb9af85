/*
 * rasm - Wrapper for slog
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package rlog wraps log/slog with a handler that writes every record
// to an optional log file and mirrors warnings, errors, and (under -v)
// everything else to stderr. Lines are formatted as "#"-comments and
// carry a "[pass N]" tag when the record was produced during one of
// the assembler's two passes, so log output reads like an extension of
// the DMP listing it describes rather than a generic structured log.
package rlog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Handler is a slog.Handler that tees to a file and conditionally to stderr.
type Handler struct {
	out   io.Writer
	h     slog.Handler
	mu    *sync.Mutex
	debug bool
	attrs []slog.Attr
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)
	return &Handler{out: h.out, h: h.h.WithAttrs(attrs), mu: h.mu, debug: h.debug, attrs: merged}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{out: h.out, h: h.h.WithGroup(name), mu: h.mu, debug: h.debug, attrs: h.attrs}
}

// Handle formats r as a single line in the same "#"-comment shape the
// DMP sink (package sink) uses for its own banner and label
// annotations, so a log file and a DMP listing can be concatenated or
// interleaved without either one's lines being mistaken for the
// other's instruction words. A "pass" attribute, as attached by
// WithPass, is pulled out of the generic attribute list and rendered
// as a "[pass N]" tag right after the level instead of trailing along
// with the rest of the key/value pairs, since which pass a diagnostic
// belongs to is the one piece of context worth seeing before the
// message itself.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	level := r.Level.String() + ":"
	formattedTime := r.Time.Format("2006/01/02 15:04:05")

	var pass string
	attrs := make([]string, 0, len(h.attrs)+r.NumAttrs())
	collect := func(a slog.Attr) bool {
		if a.Key == "pass" {
			pass = a.Value.String()
			return true
		}
		attrs = append(attrs, a.Key+"="+a.Value.String())
		return true
	}
	for _, a := range h.attrs {
		collect(a)
	}
	r.Attrs(collect)

	strs := []string{"#", formattedTime, level}
	if pass != "" {
		strs = append(strs, "[pass "+pass+"]")
	}
	strs = append(strs, r.Message)
	strs = append(strs, attrs...)

	result := strings.Join(strs, " ") + "\n"
	b := []byte(result)

	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	if h.out != nil {
		_, err = h.out.Write(b)
	}

	if h.debug || r.Level >= slog.LevelWarn {
		_, err = os.Stderr.Write(b)
	}
	return err
}

// NewHandler builds a Handler writing to file (may be nil) with stderr
// mirroring controlled by debug.
func NewHandler(file io.Writer, opts *slog.HandlerOptions, debug bool) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &Handler{
		out: file,
		h: slog.NewTextHandler(file, &slog.HandlerOptions{
			Level:     opts.Level,
			AddSource: opts.AddSource,
		}),
		mu:    &sync.Mutex{},
		debug: debug,
	}
}

// WithPass returns a logger that tags every record with the current
// assembler pass number, so -v output can be grepped per-pass.
func WithPass(logger *slog.Logger, pass int) *slog.Logger {
	return logger.With("pass", pass)
}
