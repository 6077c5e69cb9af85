/*
 * rasm - Two-pass driver error taxonomy.
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

package assembler

import (
	"errors"
	"fmt"
)

// ErrInvalidState is returned when a driver method is called in a
// state that does not permit it (e.g. StartPass1 called twice on the
// same Assembler).
var ErrInvalidState = errors.New("assembler: invalid state transition")

// ResolutionError reports a reference that pass 2 could not resolve: a
// global name never defined, or a local label with no definition in
// the requested direction.
type ResolutionError struct {
	Kind string // "global", "local nb" or "local nf"
	Name string
	Line int
	PC   uint32
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolution error: unknown %s symbol %q at pc=%#08x line %d", e.Kind, e.Name, e.PC, e.Line)
}

// PassDivergenceError reports that pass 2 produced a different PC
// sequence than pass 1 at the same source line — a parser/driver
// safety-net violation, since every RV32I instruction must be exactly
// 4 bytes regardless of operand values.
type PassDivergenceError struct {
	Line  int
	Pass1 uint32
	Pass2 uint32
}

func (e *PassDivergenceError) Error() string {
	return fmt.Sprintf("pass divergence at line %d: pass1 pc=%#08x, pass2 pc=%#08x", e.Line, e.Pass1, e.Pass2)
}

// DuplicateGlobalLabelError reports a redefinition of a global label
// when the configured policy promotes that from a soft warning to a
// hard error (see rconfig.DuplicateGlobalLabels).
type DuplicateGlobalLabelError struct {
	Name string
	Line int
}

func (e *DuplicateGlobalLabelError) Error() string {
	return fmt.Sprintf("duplicate global label %q redefined at line %d", e.Name, e.Line)
}

// SyntaxError reports a lexer/parser failure. The core surfaces only
// the line number, per spec.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error on line: %d", e.Line)
}

// Detail returns the underlying parser message, useful for -v logging
// without changing the user-visible one-line failure format.
func (e *SyntaxError) Detail() string {
	return e.Msg
}
