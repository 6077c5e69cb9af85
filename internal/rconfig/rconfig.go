/*
 * rasm - Configuration file parser
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

// Package rconfig loads the optional TOML configuration file that
// resolves assembler policy knobs left open by the base specification:
// how a redefined global label is treated, and whether an out-of-range
// operand discovered during pass 1 aborts immediately or is deferred to
// pass 2 (where the instruction is encoded again against resolved
// operands and fails there if the error is still present).
package rconfig

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/idimitroie/rasm/internal/assembler"
)

// Config is the top-level shape of a rasm TOML configuration file.
type Config struct {
	DuplicateGlobalLabels string `toml:"duplicate_global_labels"`
	Pass1EncodingErrors   string `toml:"pass1_encoding_errors"`
	ABIRegisterNames      bool   `toml:"abi_register_names"`
}

// Default returns the configuration in effect when no file is loaded:
// duplicate global labels warn and keep compiling (the original's
// unchecked behavior), pass-1 encoding errors are deferred to pass 2,
// and ABI register name aliases (a0, sp, ra, ...) are accepted.
func Default() Config {
	return Config{
		DuplicateGlobalLabels: "warn",
		Pass1EncodingErrors:   "defer",
		ABIRegisterNames:      true,
	}
}

// Load reads and decodes a TOML configuration file. It starts from
// Default and lets the file override only the keys it names; path=""
// returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("rconfig: %w", err)
	}
	return cfg, nil
}

// Options translates a Config into the policy enums internal/assembler
// consumes, rejecting any value that isn't one of the documented
// strings rather than silently falling back to a default.
func (c Config) Options() (assembler.DuplicatePolicy, assembler.Pass1ErrorPolicy, error) {
	var dup assembler.DuplicatePolicy
	switch c.DuplicateGlobalLabels {
	case "", "warn":
		dup = assembler.DuplicateWarn
	case "error":
		dup = assembler.DuplicateError
	default:
		return 0, 0, fmt.Errorf("rconfig: unknown duplicate_global_labels value %q", c.DuplicateGlobalLabels)
	}

	var p1 assembler.Pass1ErrorPolicy
	switch c.Pass1EncodingErrors {
	case "", "defer":
		p1 = assembler.Pass1Defer
	case "abort":
		p1 = assembler.Pass1Abort
	default:
		return 0, 0, fmt.Errorf("rconfig: unknown pass1_encoding_errors value %q", c.Pass1EncodingErrors)
	}

	return dup, p1, nil
}
