/*
 * rasm - Local numeric label table.
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

// Package loclabel maintains the local numeric label table: the same
// numeric name (e.g. "1:") may be defined at many addresses, and a
// reference to it picks a direction — nearest forward or nearest
// backward relative to the referencing program counter.
package loclabel

import "sort"

// Table maps a numeric local label name to its sorted, deduplicated
// set of defining addresses.
type Table struct {
	addrs map[uint32][]uint32
}

// New returns an empty local label table.
func New() *Table {
	return &Table{addrs: make(map[uint32][]uint32)}
}

// Add records a definition of name at addr. Re-adding the same
// (name, addr) pair is idempotent; a new addr under an existing name
// is inserted in sorted order.
func (t *Table) Add(name, addr uint32) {
	list := t.addrs[name]
	i := sort.Search(len(list), func(i int) bool { return list[i] >= addr })
	if i < len(list) && list[i] == addr {
		return
	}
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = addr
	t.addrs[name] = list
}

// LookupBackward returns the largest defined address a <= pc for name
// ("nb" direction). The search is inclusive of pc: a local label
// defined at the same address as the referencing instruction resolves
// to itself.
func (t *Table) LookupBackward(name, pc uint32) (uint32, bool) {
	list := t.addrs[name]
	// Largest index with list[i] <= pc.
	i := sort.Search(len(list), func(i int) bool { return list[i] > pc })
	if i == 0 {
		return 0, false
	}
	return list[i-1], true
}

// LookupForward returns the smallest defined address a > pc for name
// ("nf" direction). The search is strict: a forward reference skips
// any definition at the current PC.
func (t *Table) LookupForward(name, pc uint32) (uint32, bool) {
	list := t.addrs[name]
	i := sort.Search(len(list), func(i int) bool { return list[i] > pc })
	if i == len(list) {
		return 0, false
	}
	return list[i], true
}

// Reset clears the table for reuse by a new compilation.
func (t *Table) Reset() {
	t.addrs = make(map[uint32][]uint32)
}
