/*
 * rasm - Interactive assemble REPL
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

// Package repl wires the lexer, parser, assembler, and sink together
// for two entry points: a one-shot batch assembly (used by the
// non-interactive CLI path) and a liner-backed interactive REPL that
// accumulates lines until the user asks for assembly.
package repl

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"github.com/idimitroie/rasm/internal/assembler"
	"github.com/idimitroie/rasm/internal/isa"
	"github.com/idimitroie/rasm/internal/lexer"
	"github.com/idimitroie/rasm/internal/parser"
	"github.com/idimitroie/rasm/internal/sink"
)

// AssembleOnce runs a complete two-pass compilation of src, writing
// DMP output to out. It is the engine behind both the batch CLI path
// and the REPL's ":run" command.
func AssembleOnce(src string, out *sink.DMP, opts assembler.Options, abiNames bool) error {
	lines, err := lexer.Tokenize(src)
	if err != nil {
		return err
	}

	a := assembler.New(out, opts)
	p := parser.New(a, abiNames)

	if err := a.StartPass1(); err != nil {
		return err
	}
	if err := p.Run(lines); err != nil {
		a.Fail()
		return err
	}
	if err := a.StartPass2(); err != nil {
		return err
	}
	if err := p.Run(lines); err != nil {
		a.Fail()
		return err
	}
	return a.Finish()
}

// Run starts the interactive REPL: each line is appended to a growing
// program buffer; ":run" assembles everything entered so far and
// prints the DMP output to stdout, ":reset" clears the buffer, and
// ctrl-C or ctrl-D exits.
func Run(opts assembler.Options, abiNames bool) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		return completeMnemonic(partial)
	})

	var buf strings.Builder
	for {
		input, err := line.Prompt("rasm> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return
			}
			fmt.Fprintln(os.Stderr, "error reading line:", err)
			return
		}
		line.AppendHistory(input)

		switch strings.TrimSpace(input) {
		case ":run":
			out := sink.New(os.Stdout)
			if err := AssembleOnce(buf.String(), out, opts, abiNames); err != nil {
				fmt.Println("Error: " + err.Error())
				continue
			}
			out.Flush()
		case ":reset":
			buf.Reset()
		case ":quit", ":q":
			return
		default:
			buf.WriteString(input)
			buf.WriteByte('\n')
		}
	}
}

// completeMnemonic offers every RV32I mnemonic matching the partial
// word currently being typed, uppercased input-insensitively.
func completeMnemonic(partial string) []string {
	upper := strings.ToUpper(partial)
	var matches []string
	for m := range isa.Table {
		if strings.HasPrefix(m, upper) {
			matches = append(matches, strings.ToLower(m))
		}
	}
	sort.Strings(matches)
	return matches
}
