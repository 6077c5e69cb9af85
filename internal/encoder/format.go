/*
 * rasm - RV32I instruction encoder: format families and field sets.
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

// Package encoder is a pure function from (format family, operand
// tuple) to a 32-bit RV32I instruction word. It owns no state: the
// same Fields value always produces the same word, byte for byte.
package encoder

// Format is the closed set of RV32I instruction shapes.
type Format int

const (
	FormatR Format = iota
	FormatI
	FormatIShamt
	FormatB
	FormatU
	FormatJ
	FormatS
)

func (f Format) String() string {
	switch f {
	case FormatR:
		return "R"
	case FormatI:
		return "I"
	case FormatIShamt:
		return "I_SHAMT"
	case FormatB:
		return "B"
	case FormatU:
		return "U"
	case FormatJ:
		return "J"
	case FormatS:
		return "S"
	default:
		return "UNKNOWN"
	}
}

// Opcodes carries the three fixed subfields that identify an RV32I
// instruction within its format family.
type Opcodes struct {
	Opcode uint32 // bits [6:0]
	Funct3 uint32 // bits [14:12], ignored by formats without it
	Funct7 uint32 // bits [31:25], ignored by formats without it
}

// Fields carries every operand slot a format family might use. Which
// fields are meaningful depends on Format; Encode validates and reads
// only the ones its family defines.
type Fields struct {
	Rd    int32
	Rs1   int32
	Rs2   int32
	Imm   int32  // generic signed immediate (I, B, J, S)
	Uimm  uint32 // U-type unsigned 20-bit immediate
	Shamt int32
}

// DecodeOpcodeFamily determines the format family for the 0010011
// (OP-IMM) major opcode, which is the only opcode whose family depends
// on funct3 rather than being fixed by the opcode alone (spec.md §3).
func DecodeOpcodeFamily(opcode uint32, funct3 uint32) Format {
	if opcode == opImm {
		switch funct3 {
		case funct3SLLI, funct3SRLISRAI:
			return FormatIShamt
		default:
			return FormatI
		}
	}
	return familyByOpcode[opcode]
}

const (
	opImm          = 0b0010011
	funct3SLLI     = 0b001
	funct3SRLISRAI = 0b101
)

var familyByOpcode = map[uint32]Format{
	0b0110011: FormatR,
	0b1100111: FormatI, // JALR
	0b0000011: FormatI, // loads
	0b1100011: FormatB,
	0b0110111: FormatU, // LUI
	0b0010111: FormatU, // AUIPC
	0b1101111: FormatJ,
	0b0100011: FormatS,
}
