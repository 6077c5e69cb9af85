/*
 * rasm - RV32I assembly parser
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

// Package parser drives an assembler.Driver through one pass over a
// tokenized program: it recognizes label definitions, dispatches each
// mnemonic by the syntax internal/isa records for it, and resolves
// branch/jump targets to PC-relative offsets before handing the
// encoder its Fields.
package parser

import (
	"fmt"
	"strings"

	"github.com/idimitroie/rasm/internal/assembler"
	"github.com/idimitroie/rasm/internal/encoder"
	"github.com/idimitroie/rasm/internal/isa"
	"github.com/idimitroie/rasm/internal/lexer"
)

// Parser walks one tokenized program against a Driver.
type Parser struct {
	driver   assembler.Driver
	abiNames bool
}

// New builds a Parser. abiNames enables register names like a0/sp/ra
// in addition to the bare x0-x31 syntax.
func New(driver assembler.Driver, abiNames bool) *Parser {
	return &Parser{driver: driver, abiNames: abiNames}
}

// Run drives the parser's Driver through every line of the program.
// It returns the first error encountered, wrapped as a
// *assembler.SyntaxError when the failure is structural rather than
// a driver-reported semantic error (unresolved symbol, bad operand
// range), which already carries its own line number.
func (p *Parser) Run(lines []lexer.Line) error {
	for _, ln := range lines {
		if err := p.parseLine(ln); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseLine(ln lexer.Line) error {
	toks := ln.Tokens
	for len(toks) >= 2 && toks[0].Kind == lexer.Ident && toks[1].Kind == lexer.Colon {
		if err := p.driver.DefineGlobal(toks[0].Text, ln.Number); err != nil {
			return err
		}
		toks = toks[2:]
	}
	for len(toks) >= 1 && toks[0].Kind == lexer.LocalDef {
		if err := p.driver.DefineLocal(uint32(toks[0].IVal), ln.Number); err != nil {
			return err
		}
		toks = toks[1:]
	}
	if len(toks) == 0 {
		return nil
	}
	if toks[0].Kind != lexer.Ident {
		return &assembler.SyntaxError{Line: ln.Number, Msg: "expected a mnemonic"}
	}
	return p.parseInstr(toks, ln.Number)
}

func (p *Parser) parseInstr(toks []lexer.Token, line int) error {
	mnemonic := strings.ToUpper(toks[0].Text)
	entry, ok := isa.Table[mnemonic]
	if !ok {
		return &assembler.SyntaxError{Line: line, Msg: fmt.Sprintf("unknown mnemonic %q", toks[0].Text)}
	}
	args := toks[1:]

	var f encoder.Fields
	var err error
	switch entry.Syntax {
	case isa.SyntaxRegRegReg:
		f, err = p.parseRegRegReg(args, line)
	case isa.SyntaxRegRegImm:
		f, err = p.parseRegRegImm(args, line)
	case isa.SyntaxRegRegShamt:
		f, err = p.parseRegRegShamt(args, line)
	case isa.SyntaxRegImmReg:
		f, err = p.parseRegImmReg(args, line)
	case isa.SyntaxRegImm:
		f, err = p.parseRegImm(args, line)
	case isa.SyntaxStore:
		f, err = p.parseStore(args, line)
	case isa.SyntaxBranch:
		f, err = p.parseBranch(args, line)
	case isa.SyntaxJump:
		f, err = p.parseJump(args, line)
	default:
		return &assembler.SyntaxError{Line: line, Msg: "unhandled syntax class"}
	}
	if err != nil {
		return err
	}
	return p.driver.EmitInstr(entry.Format, entry.Opc, f, line)
}

// parseRegRegReg parses "op rd, rs1, rs2".
func (p *Parser) parseRegRegReg(toks []lexer.Token, line int) (encoder.Fields, error) {
	rd, toks, err := p.takeRegister(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	toks, err = takeComma(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	rs1, toks, err := p.takeRegister(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	toks, err = takeComma(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	rs2, toks, err := p.takeRegister(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	if err := expectEnd(toks, line); err != nil {
		return encoder.Fields{}, err
	}
	return encoder.Fields{Rd: rd, Rs1: rs1, Rs2: rs2}, nil
}

// parseRegRegImm parses "op rd, rs1, imm".
func (p *Parser) parseRegRegImm(toks []lexer.Token, line int) (encoder.Fields, error) {
	rd, toks, err := p.takeRegister(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	toks, err = takeComma(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	rs1, toks, err := p.takeRegister(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	toks, err = takeComma(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	imm, toks, err := takeNumber(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	if err := expectEnd(toks, line); err != nil {
		return encoder.Fields{}, err
	}
	return encoder.Fields{Rd: rd, Rs1: rs1, Imm: imm}, nil
}

// parseRegRegShamt parses "op rd, rs1, shamt".
func (p *Parser) parseRegRegShamt(toks []lexer.Token, line int) (encoder.Fields, error) {
	f, err := p.parseRegRegImm(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	return encoder.Fields{Rd: f.Rd, Rs1: f.Rs1, Shamt: f.Imm}, nil
}

// parseRegImmReg parses "op rd, imm(rs1)" (loads, jalr).
func (p *Parser) parseRegImmReg(toks []lexer.Token, line int) (encoder.Fields, error) {
	rd, toks, err := p.takeRegister(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	toks, err = takeComma(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	imm, rs1, toks, err := p.takeMemOperand(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	if err := expectEnd(toks, line); err != nil {
		return encoder.Fields{}, err
	}
	return encoder.Fields{Rd: rd, Rs1: rs1, Imm: imm}, nil
}

// parseStore parses "op rs2, imm(rs1)".
func (p *Parser) parseStore(toks []lexer.Token, line int) (encoder.Fields, error) {
	rs2, toks, err := p.takeRegister(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	toks, err = takeComma(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	imm, rs1, toks, err := p.takeMemOperand(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	if err := expectEnd(toks, line); err != nil {
		return encoder.Fields{}, err
	}
	return encoder.Fields{Rs1: rs1, Rs2: rs2, Imm: imm}, nil
}

// parseRegImm parses "op rd, imm" (lui, auipc) where imm is the raw
// 20-bit upper-immediate value, not shifted.
func (p *Parser) parseRegImm(toks []lexer.Token, line int) (encoder.Fields, error) {
	rd, toks, err := p.takeRegister(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	toks, err = takeComma(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	imm, toks, err := takeNumber(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	if err := expectEnd(toks, line); err != nil {
		return encoder.Fields{}, err
	}
	return encoder.Fields{Rd: rd, Uimm: uint32(imm)}, nil
}

// parseBranch parses "op rs1, rs2, target".
func (p *Parser) parseBranch(toks []lexer.Token, line int) (encoder.Fields, error) {
	rs1, toks, err := p.takeRegister(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	toks, err = takeComma(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	rs2, toks, err := p.takeRegister(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	toks, err = takeComma(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	offset, toks, err := p.takeTarget(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	if err := expectEnd(toks, line); err != nil {
		return encoder.Fields{}, err
	}
	return encoder.Fields{Rs1: rs1, Rs2: rs2, Imm: offset}, nil
}

// parseJump parses "op rd, target".
func (p *Parser) parseJump(toks []lexer.Token, line int) (encoder.Fields, error) {
	rd, toks, err := p.takeRegister(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	toks, err = takeComma(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	offset, toks, err := p.takeTarget(toks, line)
	if err != nil {
		return encoder.Fields{}, err
	}
	if err := expectEnd(toks, line); err != nil {
		return encoder.Fields{}, err
	}
	return encoder.Fields{Rd: rd, Imm: offset}, nil
}

// takeTarget resolves a global or local label reference against the
// driver's current PC, returning a PC-relative byte offset.
func (p *Parser) takeTarget(toks []lexer.Token, line int) (int32, []lexer.Token, error) {
	if len(toks) == 0 {
		return 0, nil, &assembler.SyntaxError{Line: line, Msg: "expected a branch/jump target"}
	}
	pc := p.driver.PC()
	switch toks[0].Kind {
	case lexer.Ident:
		addr, err := p.driver.ResolveGlobal(toks[0].Text, line)
		if err != nil {
			return 0, nil, err
		}
		return int32(addr - pc), toks[1:], nil
	case lexer.LocalRef:
		signed := int32(toks[0].IVal)
		if toks[0].Dir == 'b' {
			signed = -signed
		}
		addr, err := p.driver.ResolveLocal(signed, line)
		if err != nil {
			return 0, nil, err
		}
		return int32(addr - pc), toks[1:], nil
	default:
		return 0, nil, &assembler.SyntaxError{Line: line, Msg: "expected a branch/jump target"}
	}
}

// takeMemOperand parses "imm(reg)".
func (p *Parser) takeMemOperand(toks []lexer.Token, line int) (int32, int32, []lexer.Token, error) {
	imm, toks, err := takeNumber(toks, line)
	if err != nil {
		return 0, 0, nil, err
	}
	if len(toks) == 0 || toks[0].Kind != lexer.LParen {
		return 0, 0, nil, &assembler.SyntaxError{Line: line, Msg: "expected '(' in memory operand"}
	}
	toks = toks[1:]
	reg, toks, err := p.takeRegister(toks, line)
	if err != nil {
		return 0, 0, nil, err
	}
	if len(toks) == 0 || toks[0].Kind != lexer.RParen {
		return 0, 0, nil, &assembler.SyntaxError{Line: line, Msg: "expected ')' in memory operand"}
	}
	return imm, reg, toks[1:], nil
}

func (p *Parser) takeRegister(toks []lexer.Token, line int) (int32, []lexer.Token, error) {
	if len(toks) == 0 || toks[0].Kind != lexer.Ident {
		return 0, nil, &assembler.SyntaxError{Line: line, Msg: "expected a register"}
	}
	r, err := p.register(toks[0].Text, line)
	if err != nil {
		return 0, nil, err
	}
	return r, toks[1:], nil
}

func (p *Parser) register(text string, line int) (int32, error) {
	lower := strings.ToLower(text)
	if len(lower) > 1 && lower[0] == 'x' {
		n, err := parseDecimal(lower[1:])
		if err == nil {
			return n, nil
		}
	}
	if p.abiNames {
		if n, ok := isa.ABINames[lower]; ok {
			return n, nil
		}
	}
	return 0, &assembler.SyntaxError{Line: line, Msg: fmt.Sprintf("unknown register %q", text)}
}

func parseDecimal(s string) (int32, error) {
	if s == "" {
		return 0, fmt.Errorf("empty register number")
	}
	var n int32
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("not a register number: %q", s)
		}
		n = n*10 + int32(c-'0')
	}
	return n, nil
}

func takeComma(toks []lexer.Token, line int) ([]lexer.Token, error) {
	if len(toks) == 0 || toks[0].Kind != lexer.Comma {
		return nil, &assembler.SyntaxError{Line: line, Msg: "expected ','"}
	}
	return toks[1:], nil
}

func takeNumber(toks []lexer.Token, line int) (int32, []lexer.Token, error) {
	if len(toks) == 0 || toks[0].Kind != lexer.Number {
		return 0, nil, &assembler.SyntaxError{Line: line, Msg: "expected an immediate value"}
	}
	return int32(toks[0].IVal), toks[1:], nil
}

func expectEnd(toks []lexer.Token, line int) error {
	if len(toks) != 0 {
		return &assembler.SyntaxError{Line: line, Msg: "unexpected extra operand"}
	}
	return nil
}
