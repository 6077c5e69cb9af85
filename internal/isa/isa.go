/*
 * rasm - RV32I mnemonic table.
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

// Package isa maps RV32I mnemonics to their format family and fixed
// opcode/funct3/funct7 subfields. It mirrors the shape of the
// teacher's emu/opcodemap package (a flat constant/metadata table
// shared by the assembler and any future disassembler) but for RV32I
// rather than S/370.
package isa

import "github.com/idimitroie/rasm/internal/encoder"

// Syntax describes how a mnemonic's operand list must be parsed,
// independent of its wire format family (several formats share an
// operand syntax, e.g. loads and JALR are both "rd, imm(rs1)").
type Syntax int

const (
	SyntaxRegRegReg  Syntax = iota // add rd, rs1, rs2
	SyntaxRegRegImm                // addi rd, rs1, imm
	SyntaxRegRegShamt              // slli rd, rs1, shamt
	SyntaxRegImmReg                // lw rd, imm(rs1) / jalr rd, imm(rs1)
	SyntaxRegImm                   // lui rd, imm / auipc rd, imm
	SyntaxBranch                   // beq rs1, rs2, target
	SyntaxJump                     // jal rd, target
	SyntaxStore                    // sw rs2, imm(rs1)
)

// Entry is the static metadata for one mnemonic.
type Entry struct {
	Format encoder.Format
	Opc    encoder.Opcodes
	Syntax Syntax
}

// Table maps an upper-cased mnemonic to its Entry.
var Table = map[string]Entry{
	"ADD":  {encoder.FormatR, encoder.Opcodes{Opcode: 0b0110011, Funct3: 0b000, Funct7: 0b0000000}, SyntaxRegRegReg},
	"SUB":  {encoder.FormatR, encoder.Opcodes{Opcode: 0b0110011, Funct3: 0b000, Funct7: 0b0100000}, SyntaxRegRegReg},
	"SLL":  {encoder.FormatR, encoder.Opcodes{Opcode: 0b0110011, Funct3: 0b001, Funct7: 0b0000000}, SyntaxRegRegReg},
	"SLT":  {encoder.FormatR, encoder.Opcodes{Opcode: 0b0110011, Funct3: 0b010, Funct7: 0b0000000}, SyntaxRegRegReg},
	"SLTU": {encoder.FormatR, encoder.Opcodes{Opcode: 0b0110011, Funct3: 0b011, Funct7: 0b0000000}, SyntaxRegRegReg},
	"XOR":  {encoder.FormatR, encoder.Opcodes{Opcode: 0b0110011, Funct3: 0b100, Funct7: 0b0000000}, SyntaxRegRegReg},
	"SRL":  {encoder.FormatR, encoder.Opcodes{Opcode: 0b0110011, Funct3: 0b101, Funct7: 0b0000000}, SyntaxRegRegReg},
	"SRA":  {encoder.FormatR, encoder.Opcodes{Opcode: 0b0110011, Funct3: 0b101, Funct7: 0b0100000}, SyntaxRegRegReg},
	"OR":   {encoder.FormatR, encoder.Opcodes{Opcode: 0b0110011, Funct3: 0b110, Funct7: 0b0000000}, SyntaxRegRegReg},
	"AND":  {encoder.FormatR, encoder.Opcodes{Opcode: 0b0110011, Funct3: 0b111, Funct7: 0b0000000}, SyntaxRegRegReg},

	"ADDI":  {encoder.FormatI, encoder.Opcodes{Opcode: 0b0010011, Funct3: 0b000}, SyntaxRegRegImm},
	"SLTI":  {encoder.FormatI, encoder.Opcodes{Opcode: 0b0010011, Funct3: 0b010}, SyntaxRegRegImm},
	"SLTIU": {encoder.FormatI, encoder.Opcodes{Opcode: 0b0010011, Funct3: 0b011}, SyntaxRegRegImm},
	"XORI":  {encoder.FormatI, encoder.Opcodes{Opcode: 0b0010011, Funct3: 0b100}, SyntaxRegRegImm},
	"ORI":   {encoder.FormatI, encoder.Opcodes{Opcode: 0b0010011, Funct3: 0b110}, SyntaxRegRegImm},
	"ANDI":  {encoder.FormatI, encoder.Opcodes{Opcode: 0b0010011, Funct3: 0b111}, SyntaxRegRegImm},

	"SLLI": {encoder.FormatIShamt, encoder.Opcodes{Opcode: 0b0010011, Funct3: 0b001, Funct7: 0b0000000}, SyntaxRegRegShamt},
	"SRLI": {encoder.FormatIShamt, encoder.Opcodes{Opcode: 0b0010011, Funct3: 0b101, Funct7: 0b0000000}, SyntaxRegRegShamt},
	"SRAI": {encoder.FormatIShamt, encoder.Opcodes{Opcode: 0b0010011, Funct3: 0b101, Funct7: 0b0100000}, SyntaxRegRegShamt},

	"LB":  {encoder.FormatI, encoder.Opcodes{Opcode: 0b0000011, Funct3: 0b000}, SyntaxRegImmReg},
	"LH":  {encoder.FormatI, encoder.Opcodes{Opcode: 0b0000011, Funct3: 0b001}, SyntaxRegImmReg},
	"LW":  {encoder.FormatI, encoder.Opcodes{Opcode: 0b0000011, Funct3: 0b010}, SyntaxRegImmReg},
	"LBU": {encoder.FormatI, encoder.Opcodes{Opcode: 0b0000011, Funct3: 0b100}, SyntaxRegImmReg},
	"LHU": {encoder.FormatI, encoder.Opcodes{Opcode: 0b0000011, Funct3: 0b101}, SyntaxRegImmReg},

	"JALR": {encoder.FormatI, encoder.Opcodes{Opcode: 0b1100111, Funct3: 0b000}, SyntaxRegImmReg},

	"SB": {encoder.FormatS, encoder.Opcodes{Opcode: 0b0100011, Funct3: 0b000}, SyntaxStore},
	"SH": {encoder.FormatS, encoder.Opcodes{Opcode: 0b0100011, Funct3: 0b001}, SyntaxStore},
	"SW": {encoder.FormatS, encoder.Opcodes{Opcode: 0b0100011, Funct3: 0b010}, SyntaxStore},

	"BEQ":  {encoder.FormatB, encoder.Opcodes{Opcode: 0b1100011, Funct3: 0b000}, SyntaxBranch},
	"BNE":  {encoder.FormatB, encoder.Opcodes{Opcode: 0b1100011, Funct3: 0b001}, SyntaxBranch},
	"BLT":  {encoder.FormatB, encoder.Opcodes{Opcode: 0b1100011, Funct3: 0b100}, SyntaxBranch},
	"BGE":  {encoder.FormatB, encoder.Opcodes{Opcode: 0b1100011, Funct3: 0b101}, SyntaxBranch},
	"BLTU": {encoder.FormatB, encoder.Opcodes{Opcode: 0b1100011, Funct3: 0b110}, SyntaxBranch},
	"BGEU": {encoder.FormatB, encoder.Opcodes{Opcode: 0b1100011, Funct3: 0b111}, SyntaxBranch},

	"LUI":   {encoder.FormatU, encoder.Opcodes{Opcode: 0b0110111}, SyntaxRegImm},
	"AUIPC": {encoder.FormatU, encoder.Opcodes{Opcode: 0b0010111}, SyntaxRegImm},

	"JAL": {encoder.FormatJ, encoder.Opcodes{Opcode: 0b1101111}, SyntaxJump},
}

// ABINames maps the standard ABI register mnemonics to their x-register
// number, consulted by the parser when rconfig.ABIRegisterNames is set.
var ABINames = map[string]int32{
	"zero": 0, "ra": 1, "sp": 2, "gp": 3, "tp": 4,
	"t0": 5, "t1": 6, "t2": 7,
	"s0": 8, "fp": 8, "s1": 9,
	"a0": 10, "a1": 11, "a2": 12, "a3": 13, "a4": 14, "a5": 15, "a6": 16, "a7": 17,
	"s2": 18, "s3": 19, "s4": 20, "s5": 21, "s6": 22, "s7": 23, "s8": 24, "s9": 25, "s10": 26, "s11": 27,
	"t3": 28, "t4": 29, "t5": 30, "t6": 31,
}
