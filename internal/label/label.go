/*
 * rasm - Global label table.
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

// Package label maintains the global (named) label table: a mapping
// from identifier to the byte address it resolves to.
package label

// Table maps global label names to addresses. The zero value is ready
// to use.
type Table struct {
	addr map[string]uint32
}

// New returns an empty global label table.
func New() *Table {
	return &Table{addr: make(map[string]uint32)}
}

// Add inserts name at addr. It reports whether name was already
// present — the caller decides whether that is a soft warning or a
// hard error (see rconfig.DuplicateGlobalLabels). The later definition
// always wins, matching the original's unchecked label_add.
func (t *Table) Add(name string, addr uint32) (existed bool) {
	if t.addr == nil {
		t.addr = make(map[string]uint32)
	}
	_, existed = t.addr[name]
	t.addr[name] = addr
	return existed
}

// Exists reports whether name has been defined.
func (t *Table) Exists(name string) bool {
	_, ok := t.addr[name]
	return ok
}

// Lookup returns the address bound to name, and whether it was found.
func (t *Table) Lookup(name string) (uint32, bool) {
	addr, ok := t.addr[name]
	return addr, ok
}

// Reset clears the table for reuse by a new compilation.
func (t *Table) Reset() {
	t.addr = make(map[string]uint32)
}

// Len reports the number of distinct global labels currently defined.
func (t *Table) Len() int {
	return len(t.addr)
}
