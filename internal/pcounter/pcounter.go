/*
 * rasm - Program counter machine.
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

// Package pcounter tracks the byte offset of the next instruction to be
// emitted during an assembler pass.
package pcounter

const (
	wordSize = 4
	halfSize = 2
)

// PC is a monotonic, process-scoped program counter. A zero value is
// ready to use at address 0.
type PC struct {
	addr uint32
}

// New returns a PC reset to zero.
func New() *PC {
	return &PC{}
}

// Current returns the address of the next instruction to be emitted,
// without advancing it.
func (p *PC) Current() uint32 {
	return p.addr
}

// AdvanceWord advances the counter by one RV32I instruction (4 bytes)
// and returns the new value.
func (p *PC) AdvanceWord() uint32 {
	p.addr += wordSize
	return p.addr
}

// AdvanceHalf advances the counter by a half word (2 bytes). Reserved
// for compressed-instruction support; unused by the RV32I grammar.
func (p *PC) AdvanceHalf() uint32 {
	p.addr += halfSize
	return p.addr
}

// Reset sets the counter back to zero, as happens between pass 1 and pass 2.
func (p *PC) Reset() {
	p.addr = 0
}
