/*
 * rasm - Two-pass assembler driver.
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

// Package assembler orchestrates the two-pass symbol resolution engine:
// pass 1 defines every label against the program counter it will hold
// in the emitted text segment, pass 2 resolves every reference against
// the tables pass 1 built and emits the encoded instruction stream.
//
// The parser drives an Assembler through the five events of spec.md
// §6.1 (DefineGlobal, DefineLocal, EmitInstr, ResolveGlobal,
// ResolveLocal); the Assembler itself never reads source text.
package assembler

import (
	"log/slog"

	"github.com/idimitroie/rasm/internal/encoder"
	"github.com/idimitroie/rasm/internal/label"
	"github.com/idimitroie/rasm/internal/loclabel"
	"github.com/idimitroie/rasm/internal/pcounter"
	"github.com/idimitroie/rasm/internal/rlog"
	"github.com/idimitroie/rasm/internal/sink"
)

// Driver is the callback surface a parser drives through one pass.
type Driver interface {
	DefineGlobal(name string, line int) error
	DefineLocal(n uint32, line int) error
	EmitInstr(format encoder.Format, opc encoder.Opcodes, f encoder.Fields, line int) error
	ResolveGlobal(name string, line int) (uint32, error)
	ResolveLocal(signedN int32, line int) (uint32, error)
	PC() uint32
}

type state int

const (
	stateIdle state = iota
	statePass1
	statePass2
	stateDone
	stateFailed
)

// DuplicatePolicy controls what happens when a global label is
// redefined (spec.md §9 open question #1).
type DuplicatePolicy int

const (
	// DuplicateWarn logs a soft diagnostic and lets the later
	// definition win (the original's unchecked behavior).
	DuplicateWarn DuplicatePolicy = iota
	// DuplicateError aborts compilation with a DuplicateGlobalLabelError.
	DuplicateError
)

// Pass1ErrorPolicy controls whether an encoding error surfaced by the
// pass-1 dry encode aborts immediately or is deferred to pass 2
// (spec.md §9 open question #2).
type Pass1ErrorPolicy int

const (
	// Pass1Defer matches the original: pass 1 only needs the PC
	// advance to be correct, so encoding errors are swallowed and
	// re-surfaced (if still present) on pass 2.
	Pass1Defer Pass1ErrorPolicy = iota
	// Pass1Abort fails compilation as soon as pass 1 hits a bad operand.
	Pass1Abort
)

// Options configures an Assembler's policy choices.
type Options struct {
	DuplicateGlobalLabels DuplicatePolicy
	Pass1EncodingErrors   Pass1ErrorPolicy
	Logger                *slog.Logger
}

// Assembler owns the PC, both label tables, and the output sink for
// exactly one compilation. Create a new Assembler per compilation;
// none of its state is safe to share across concurrent compilations.
type Assembler struct {
	pc      *pcounter.PC
	globals *label.Table
	locals  *loclabel.Table
	out     *sink.DMP
	opts    Options
	base    *slog.Logger
	logger  *slog.Logger

	state state
	pass  int // 1 or 2, valid only in statePass1/statePass2
	trace []uint32
	idx   int
}

// New constructs an Assembler writing DMP output to out.
func New(out *sink.DMP, opts Options) *Assembler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{
		pc:      pcounter.New(),
		globals: label.New(),
		locals:  loclabel.New(),
		out:     out,
		opts:    opts,
		base:    logger,
		logger:  logger,
		state:   stateIdle,
	}
}

// StartPass1 transitions Idle -> Pass1: both label tables are reset,
// the PC is reset to zero, and the pass-1 PC trace begins recording.
func (a *Assembler) StartPass1() error {
	if a.state != stateIdle {
		return ErrInvalidState
	}
	a.globals.Reset()
	a.locals.Reset()
	a.pc.Reset()
	a.trace = a.trace[:0]
	a.state = statePass1
	a.pass = 1
	a.logger = rlog.WithPass(a.base, 1)
	a.out.PassBanner(1)
	return nil
}

// StartPass2 transitions Pass1 -> Pass2: the PC is reset, label tables
// are left untouched (they are read-only from here on), and divergence
// checking against the pass-1 trace begins.
func (a *Assembler) StartPass2() error {
	if a.state != statePass1 {
		return ErrInvalidState
	}
	a.pc.Reset()
	a.idx = 0
	a.state = statePass2
	a.pass = 2
	a.logger = rlog.WithPass(a.base, 2)
	a.out.PassBanner(2)
	return nil
}

// Finish transitions Pass2 -> Done and releases the label tables.
func (a *Assembler) Finish() error {
	if a.state != statePass2 {
		return ErrInvalidState
	}
	if a.idx != len(a.trace) {
		return &PassDivergenceError{Line: -1, Pass1: uint32(len(a.trace)), Pass2: uint32(a.idx)}
	}
	a.globals.Reset()
	a.locals.Reset()
	a.state = stateDone
	return nil
}

// Fail transitions any state to Failed. Called by the caller on any
// non-soft error from spec.md §7.
func (a *Assembler) Fail() {
	a.state = stateFailed
}

// PC returns the current program counter.
func (a *Assembler) PC() uint32 {
	return a.pc.Current()
}

// DefineGlobal records a global label at the current PC. Only
// meaningful during pass 1 — pass 2 ignores it (the table is already
// built) but the PC still must have been advanced identically, which
// the caller guarantees by replaying the exact same event sequence.
func (a *Assembler) DefineGlobal(name string, line int) error {
	if a.pass != 1 {
		return nil
	}
	existed := a.globals.Add(name, a.pc.Current())
	if existed {
		if a.opts.DuplicateGlobalLabels == DuplicateError {
			return &DuplicateGlobalLabelError{Name: name, Line: line}
		}
		a.logger.Warn("duplicate global label", "name", name, "line", line, "pc", a.pc.Current())
	}
	a.out.GlobalLabel(name, a.pc.Current(), line)
	return nil
}

// DefineLocal records a numeric local label at the current PC.
func (a *Assembler) DefineLocal(n uint32, line int) error {
	if a.pass != 1 {
		return nil
	}
	a.locals.Add(n, a.pc.Current())
	a.out.LocalLabel(n, a.pc.Current(), line)
	return nil
}

// ResolveGlobal looks up name. On pass 1 it always returns 0 (no
// table has been built yet); on pass 2 an unresolved name is a
// ResolutionError.
func (a *Assembler) ResolveGlobal(name string, line int) (uint32, error) {
	if a.pass == 1 {
		return 0, nil
	}
	addr, ok := a.globals.Lookup(name)
	if !ok {
		return 0, &ResolutionError{Kind: "global", Name: name, Line: line, PC: a.pc.Current()}
	}
	a.out.GlobalIdentifier(name, a.pc.Current(), int32(addr-a.pc.Current()), addr, line)
	return addr, nil
}

// ResolveLocal looks up the local label signedN relative to the
// current PC: positive is a forward (nf) query, negative is a
// backward (nb) query. On pass 1 it always returns 0.
func (a *Assembler) ResolveLocal(signedN int32, line int) (uint32, error) {
	if a.pass == 1 {
		return 0, nil
	}
	var addr uint32
	var ok bool
	var dir string
	if signedN < 0 {
		dir = "nb"
		addr, ok = a.locals.LookupBackward(uint32(-signedN), a.pc.Current())
	} else {
		dir = "nf"
		addr, ok = a.locals.LookupForward(uint32(signedN), a.pc.Current())
	}
	if !ok {
		return 0, &ResolutionError{Kind: "local " + dir, Name: itoa32(signedN), Line: line, PC: a.pc.Current()}
	}
	a.out.LocalIdentifier(signedN, a.pc.Current(), int32(addr-a.pc.Current()), addr, line)
	return addr, nil
}

// EmitInstr encodes one instruction against the current PC. On pass 1
// the dry-encoded word is discarded (only the PC advance and, per
// Pass1EncodingErrors, range errors are observed); on pass 2 the word
// is written to the sink annotated with PC and line.
func (a *Assembler) EmitInstr(format encoder.Format, opc encoder.Opcodes, f encoder.Fields, line int) error {
	curPC := a.pc.Current()
	word, err := encoder.Encode(format, opc, f)

	if a.pass == 1 {
		a.trace = append(a.trace, curPC)
		a.pc.AdvanceWord()
		if err != nil && a.opts.Pass1EncodingErrors == Pass1Abort {
			return err
		}
		return nil
	}

	// Pass 2: detect divergence before anything else.
	if a.idx >= len(a.trace) || a.trace[a.idx] != curPC {
		var want uint32
		if a.idx < len(a.trace) {
			want = a.trace[a.idx]
		}
		return &PassDivergenceError{Line: line, Pass1: want, Pass2: curPC}
	}
	a.idx++
	a.pc.AdvanceWord()
	if err != nil {
		return err
	}
	a.out.Instr(word, curPC, line)
	return nil
}

func itoa32(v int32) string {
	neg := v < 0
	if neg {
		v = -v
	}
	if v == 0 {
		return "0"
	}
	var buf [12]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
