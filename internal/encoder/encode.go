/*
 * rasm - RV32I instruction encoder.
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

const (
	regMin = 0
	regMax = 31

	immIMin = -2048
	immIMax = 2047

	shamtMin = 0
	shamtMax = 31

	immBMin = -4096
	immBMax = 4094

	immJMin = -1048576
	immJMax = 1048574

	uimmMax = 0xFFFFF
)

// Encode dispatches to the family-specific encoder named by format,
// returning the 32-bit instruction word. It is a pure function: the
// same (format, opc, fields) always produces the same word.
//
// Before dispatching, it cross-checks format against the family
// DecodeOpcodeFamily derives from opc's own {opcode, funct3} subfields.
// isa.Table hand-pairs a Format with an Opcodes value per mnemonic;
// this catches the two ever drifting apart rather than silently
// encoding a word under the wrong bit layout.
func Encode(format Format, opc Opcodes, f Fields) (uint32, error) {
	if derived := DecodeOpcodeFamily(opc.Opcode, opc.Funct3); derived != format {
		return 0, &FormatOpcodeMismatchError{Requested: format, Derived: derived, Opcode: opc.Opcode, Funct3: opc.Funct3}
	}
	switch format {
	case FormatR:
		return EncodeR(opc, f.Rd, f.Rs1, f.Rs2)
	case FormatI:
		return EncodeI(opc, f.Rd, f.Rs1, f.Imm)
	case FormatIShamt:
		return EncodeIShamt(opc, f.Rd, f.Rs1, f.Shamt)
	case FormatB:
		return EncodeB(opc, f.Rs1, f.Rs2, f.Imm)
	case FormatU:
		return EncodeU(opc, f.Rd, f.Uimm)
	case FormatJ:
		return EncodeJ(opc, f.Rd, f.Imm)
	case FormatS:
		return EncodeS(opc, f.Rs1, f.Rs2, f.Imm)
	default:
		panic("encoder: unknown format")
	}
}

func checkRegister(format Format, field string, r int32) error {
	if r < regMin || r > regMax {
		return &RegisterOutOfRangeError{Format: format, Field: field, Value: r}
	}
	return nil
}

func checkImmediate(format Format, field string, v int32, min, max int64) error {
	iv := int64(v)
	if iv < min || iv > max {
		return &ImmediateOutOfRangeError{Format: format, Field: field, Value: iv, Min: min, Max: max}
	}
	return nil
}

func checkAligned(format Format, v int32) error {
	if v%2 != 0 {
		return &MisalignedBranchTargetError{Format: format, Value: v}
	}
	return nil
}

// EncodeR encodes an R-type instruction:
// [31:25]=funct7 [24:20]=rs2 [19:15]=rs1 [14:12]=funct3 [11:7]=rd [6:0]=opcode.
func EncodeR(opc Opcodes, rd, rs1, rs2 int32) (uint32, error) {
	if err := checkRegister(FormatR, "rd", rd); err != nil {
		return 0, err
	}
	if err := checkRegister(FormatR, "rs1", rs1); err != nil {
		return 0, err
	}
	if err := checkRegister(FormatR, "rs2", rs2); err != nil {
		return 0, err
	}
	word := (opc.Funct7&0x7f)<<25 |
		(uint32(rs2)&0x1f)<<20 |
		(uint32(rs1)&0x1f)<<15 |
		(opc.Funct3&0x7)<<12 |
		(uint32(rd)&0x1f)<<7 |
		(opc.Opcode & 0x7f)
	return word, nil
}

// EncodeI encodes an I-type instruction:
// [31:20]=imm[11:0] [19:15]=rs1 [14:12]=funct3 [11:7]=rd [6:0]=opcode.
func EncodeI(opc Opcodes, rd, rs1, imm int32) (uint32, error) {
	if err := checkRegister(FormatI, "rd", rd); err != nil {
		return 0, err
	}
	if err := checkRegister(FormatI, "rs1", rs1); err != nil {
		return 0, err
	}
	if err := checkImmediate(FormatI, "imm", imm, immIMin, immIMax); err != nil {
		return 0, err
	}
	word := (uint32(imm)&0xfff)<<20 |
		(uint32(rs1)&0x1f)<<15 |
		(opc.Funct3&0x7)<<12 |
		(uint32(rd)&0x1f)<<7 |
		(opc.Opcode & 0x7f)
	return word, nil
}

// EncodeIShamt encodes an I-type shift instruction:
// [31:25]=funct7 [24:20]=shamt [19:15]=rs1 [14:12]=funct3 [11:7]=rd [6:0]=opcode.
func EncodeIShamt(opc Opcodes, rd, rs1, shamt int32) (uint32, error) {
	if err := checkRegister(FormatIShamt, "rd", rd); err != nil {
		return 0, err
	}
	if err := checkRegister(FormatIShamt, "rs1", rs1); err != nil {
		return 0, err
	}
	if err := checkImmediate(FormatIShamt, "shamt", shamt, shamtMin, shamtMax); err != nil {
		return 0, err
	}
	word := (opc.Funct7&0x7f)<<25 |
		(uint32(shamt)&0x1f)<<20 |
		(uint32(rs1)&0x1f)<<15 |
		(opc.Funct3&0x7)<<12 |
		(uint32(rd)&0x1f)<<7 |
		(opc.Opcode & 0x7f)
	return word, nil
}

// EncodeU encodes a U-type instruction:
// [31:12]=imm[31:12] [11:7]=rd [6:0]=opcode.
func EncodeU(opc Opcodes, rd int32, uimm uint32) (uint32, error) {
	if err := checkRegister(FormatU, "rd", rd); err != nil {
		return 0, err
	}
	if uimm > uimmMax {
		return 0, &ImmediateOutOfRangeError{Format: FormatU, Field: "imm", Value: int64(uimm), Min: 0, Max: uimmMax}
	}
	word := (uimm&0xfffff)<<12 |
		(uint32(rd)&0x1f)<<7 |
		(opc.Opcode & 0x7f)
	return word, nil
}

// EncodeS encodes an S-type instruction:
// [31:25]=imm[11:5] [24:20]=rs2 [19:15]=rs1 [14:12]=funct3 [11:7]=imm[4:0] [6:0]=opcode.
func EncodeS(opc Opcodes, rs1, rs2, imm int32) (uint32, error) {
	if err := checkRegister(FormatS, "rs1", rs1); err != nil {
		return 0, err
	}
	if err := checkRegister(FormatS, "rs2", rs2); err != nil {
		return 0, err
	}
	if err := checkImmediate(FormatS, "imm", imm, immIMin, immIMax); err != nil {
		return 0, err
	}
	u := uint32(imm)
	imm115 := (u >> 5) & 0x7f
	imm40 := u & 0x1f
	word := imm115<<25 |
		(uint32(rs2)&0x1f)<<20 |
		(uint32(rs1)&0x1f)<<15 |
		(opc.Funct3&0x7)<<12 |
		imm40<<7 |
		(opc.Opcode & 0x7f)
	return word, nil
}

// EncodeB encodes a B-type instruction (scattered, even-only immediate):
// [31]=imm[12] [30:25]=imm[10:5] [24:20]=rs2 [19:15]=rs1 [14:12]=funct3
// [11:8]=imm[4:1] [7]=imm[11] [6:0]=opcode.
func EncodeB(opc Opcodes, rs1, rs2, imm int32) (uint32, error) {
	if err := checkRegister(FormatB, "rs1", rs1); err != nil {
		return 0, err
	}
	if err := checkRegister(FormatB, "rs2", rs2); err != nil {
		return 0, err
	}
	if err := checkImmediate(FormatB, "imm", imm, immBMin, immBMax); err != nil {
		return 0, err
	}
	if err := checkAligned(FormatB, imm); err != nil {
		return 0, err
	}
	u := uint32(imm)
	imm12 := (u >> 12) & 0x1
	imm105 := (u >> 5) & 0x3f
	imm41 := (u >> 1) & 0xf
	imm11 := (u >> 11) & 0x1
	word := imm12<<31 |
		imm105<<25 |
		(uint32(rs2)&0x1f)<<20 |
		(uint32(rs1)&0x1f)<<15 |
		(opc.Funct3&0x7)<<12 |
		imm41<<8 |
		imm11<<7 |
		(opc.Opcode & 0x7f)
	return word, nil
}

// EncodeJ encodes a J-type instruction (scattered, even-only immediate):
// [31]=imm[20] [30:21]=imm[10:1] [20]=imm[11] [19:12]=imm[19:12] [11:7]=rd [6:0]=opcode.
func EncodeJ(opc Opcodes, rd, imm int32) (uint32, error) {
	if err := checkRegister(FormatJ, "rd", rd); err != nil {
		return 0, err
	}
	if err := checkImmediate(FormatJ, "imm", imm, immJMin, immJMax); err != nil {
		return 0, err
	}
	if err := checkAligned(FormatJ, imm); err != nil {
		return 0, err
	}
	u := uint32(imm)
	imm20 := (u >> 20) & 0x1
	imm101 := (u >> 1) & 0x3ff
	imm11 := (u >> 11) & 0x1
	imm1912 := (u >> 12) & 0xff
	word := imm20<<31 |
		imm101<<21 |
		imm11<<20 |
		imm1912<<12 |
		(uint32(rd)&0x1f)<<7 |
		(opc.Opcode & 0x7f)
	return word, nil
}
