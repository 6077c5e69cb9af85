/*
 * rasm - DMP textual output sink
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

// Package sink writes the "DMP" textual output format: one line per
// emitted instruction carrying its four little-endian bytes, its PC,
// and its source line, plus '#'-prefixed pass banners and label
// annotations. It is an append-only byte sink wrapping any io.Writer,
// mirroring the teacher's storage-device writers that know only how
// to append formatted records, never how those records were produced.
package sink

import (
	"bufio"
	"fmt"
	"io"
)

// DMP writes the DMP format to an underlying io.Writer.
type DMP struct {
	w *bufio.Writer
}

// New wraps w in a buffered DMP writer. Callers must call Flush when
// done.
func New(w io.Writer) *DMP {
	return &DMP{w: bufio.NewWriter(w)}
}

// Flush writes any buffered bytes to the underlying writer.
func (d *DMP) Flush() error {
	return d.w.Flush()
}

// Instr writes one encoded instruction line:
// "bb bb bb bb #  xxxxxxxx  line LLL".
func (d *DMP) Instr(word uint32, pc uint32, line int) {
	fmt.Fprintf(d.w, "%02x %02x %02x %02x #  %08x  line %d\n",
		byte(word), byte(word>>8), byte(word>>16), byte(word>>24), pc, line)
}

// PassBanner writes the per-pass comment banner.
func (d *DMP) PassBanner(n int) {
	fmt.Fprintf(d.w, "# *** RASM: pass_number = %d\n", n)
}

// GlobalLabel annotates a global label definition.
func (d *DMP) GlobalLabel(name string, pc uint32, line int) {
	fmt.Fprintf(d.w, "# global label %q = %08x, line %d\n", name, pc, line)
}

// LocalLabel annotates a numeric local label definition.
func (d *DMP) LocalLabel(n uint32, pc uint32, line int) {
	fmt.Fprintf(d.w, "# local label %d = %08x, line %d\n", n, pc, line)
}

// GlobalIdentifier annotates a resolved global-label reference.
func (d *DMP) GlobalIdentifier(name string, pc uint32, offset int32, target uint32, line int) {
	fmt.Fprintf(d.w, "# ref %q at %08x offset %d -> %08x, line %d\n", name, pc, offset, target, line)
}

// LocalIdentifier annotates a resolved local-label reference.
func (d *DMP) LocalIdentifier(signedN int32, pc uint32, offset int32, target uint32, line int) {
	dir := "f"
	n := signedN
	if n < 0 {
		dir = "b"
		n = -n
	}
	fmt.Fprintf(d.w, "# ref %d%s at %08x offset %d -> %08x, line %d\n", n, dir, pc, offset, target, line)
}
