/*
 * rasm - Encoder error taxonomy.
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

package encoder

import "fmt"

// RegisterOutOfRangeError is returned when a register operand falls
// outside [0, 31].
type RegisterOutOfRangeError struct {
	Format Format
	Field  string
	Value  int32
}

func (e *RegisterOutOfRangeError) Error() string {
	return fmt.Sprintf("encoding error: %s register %s out of range: %d", e.Format, e.Field, e.Value)
}

// ImmediateOutOfRangeError is returned when an immediate operand falls
// outside the range its format family allows.
type ImmediateOutOfRangeError struct {
	Format Format
	Field  string
	Value  int64
	Min    int64
	Max    int64
}

func (e *ImmediateOutOfRangeError) Error() string {
	return fmt.Sprintf("encoding error: %s immediate %s out of range [%d, %d]: %d",
		e.Format, e.Field, e.Min, e.Max, e.Value)
}

// MisalignedBranchTargetError is returned when a B- or J-type operand
// is odd (must encode to an even PC-relative offset).
type MisalignedBranchTargetError struct {
	Format Format
	Value  int32
}

func (e *MisalignedBranchTargetError) Error() string {
	return fmt.Sprintf("encoding error: %s misaligned branch/jump target: %d", e.Format, e.Value)
}

// FormatOpcodeMismatchError is returned when Encode is asked to encode
// opc under a format its own {opcode, funct3} subfields don't belong
// to — a static isa.Table entry drifted out of sync with the bit
// layout it's supposed to describe.
type FormatOpcodeMismatchError struct {
	Requested Format
	Derived   Format
	Opcode    uint32
	Funct3    uint32
}

func (e *FormatOpcodeMismatchError) Error() string {
	return fmt.Sprintf("encoding error: opcode %#07b/funct3 %#03b belongs to format %s, not requested format %s",
		e.Opcode, e.Funct3, e.Derived, e.Requested)
}
