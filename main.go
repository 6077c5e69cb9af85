/*
 * rasm - Main process.
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

package main

import (
	"io"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/idimitroie/rasm/internal/assembler"
	"github.com/idimitroie/rasm/internal/rconfig"
	"github.com/idimitroie/rasm/internal/repl"
	"github.com/idimitroie/rasm/internal/rlog"
	"github.com/idimitroie/rasm/internal/sink"
)

var Logger *slog.Logger

func main() {
	optVerbose := getopt.BoolLong("verbose", 'v', "Verbose logging to stderr")
	optConfig := getopt.StringLong("config", 'c', "", "Configuration file (TOML)")
	optOutput := getopt.StringLong("output", 'o', "", "Output file (default: stdout)")
	optInteractive := getopt.BoolLong("interactive", 'i', "Run an interactive assemble REPL")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	Logger = slog.New(rlog.NewHandler(nil, &slog.HandlerOptions{Level: slog.LevelDebug}, *optVerbose))
	slog.SetDefault(Logger)

	cfg, err := rconfig.Load(*optConfig)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}
	dup, p1, err := cfg.Options()
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}
	opts := assembler.Options{
		DuplicateGlobalLabels: dup,
		Pass1EncodingErrors:   p1,
		Logger:                Logger,
	}

	if *optInteractive {
		repl.Run(opts, cfg.ABIRegisterNames)
		return
	}

	args := getopt.Args()
	var in io.Reader = os.Stdin
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	if *optOutput != "" {
		f, err := os.Create(*optOutput)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	src, err := io.ReadAll(in)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	dmp := sink.New(out)
	if err := repl.AssembleOnce(string(src), dmp, opts, cfg.ABIRegisterNames); err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}
	if err := dmp.Flush(); err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}
}
