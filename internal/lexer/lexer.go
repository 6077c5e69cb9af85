/*
 * rasm - RV32I assembly lexer
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

// Package lexer turns RV32I assembly source text into per-line token
// streams. Each line is scanned independently with the same hand-rolled
// character-class helpers the teacher's assembler uses for its single
// line IBM 370 syntax, generalized to a token list instead of an
// immediately-decoded instruction, since RV32I lines can define labels,
// reference them, or both.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Tokenize scans src (a whole assembly file) into one Line per
// non-blank, non-comment-only source line. Line numbers in the
// returned Lines are 1-based and count blank/comment lines too, so
// they match what a human editor shows.
func Tokenize(src string) ([]Line, error) {
	var out []Line
	for i, raw := range strings.Split(src, "\n") {
		lineNo := i + 1
		toks, err := tokenizeLine(raw, lineNo)
		if err != nil {
			return nil, err
		}
		if len(toks) == 0 {
			continue
		}
		out = append(out, Line{Number: lineNo, Tokens: toks})
	}
	return out, nil
}

func tokenizeLine(str string, lineNo int) ([]Token, error) {
	var toks []Token
	for {
		str = skipSpace(str)
		if str == "" || str[0] == '#' {
			break
		}
		by := str[0]
		switch {
		case by == ':':
			toks = append(toks, Token{Kind: Colon, Line: lineNo})
			str = str[1:]
		case by == ',':
			toks = append(toks, Token{Kind: Comma, Line: lineNo})
			str = str[1:]
		case by == '(':
			toks = append(toks, Token{Kind: LParen, Line: lineNo})
			str = str[1:]
		case by == ')':
			toks = append(toks, Token{Kind: RParen, Line: lineNo})
			str = str[1:]
		case unicode.IsDigit(rune(by)):
			var tok Token
			var rest string
			var err error
			tok, rest, err = scanNumeric(str, lineNo)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			str = rest
		case by == '-':
			// Negative decimal literal; hex immediates in this syntax
			// are always non-negative (0x-prefixed).
			word, rest := getWord(str[1:])
			n, err := strconv.ParseInt(word, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("syntax error on line: %d", lineNo)
			}
			toks = append(toks, Token{Kind: Number, Text: "-" + word, IVal: -n, Line: lineNo})
			str = rest
		case isIdentStart(by):
			word, rest := getWord(str)
			toks = append(toks, Token{Kind: Ident, Text: word, Line: lineNo})
			str = rest
		default:
			return nil, fmt.Errorf("syntax error on line: %d", lineNo)
		}
	}
	return toks, nil
}

// scanNumeric reads a run of digits and classifies it as a plain
// Number, a "0x..." hex Number, a LocalDef ("100:"), or a LocalRef
// ("1f"/"1b") depending on what immediately follows the digits.
func scanNumeric(str string, lineNo int) (Token, string, error) {
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		word, rest := getWord(str[2:])
		n, err := strconv.ParseInt(word, 16, 64)
		if err != nil {
			return Token{}, str, fmt.Errorf("syntax error on line: %d", lineNo)
		}
		return Token{Kind: Number, Text: "0x" + word, IVal: n, Line: lineNo}, rest, nil
	}

	word, rest := getDigits(str)
	n, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		return Token{}, str, fmt.Errorf("syntax error on line: %d", lineNo)
	}

	if rest != "" && (rest[0] == 'f' || rest[0] == 'b') && (len(rest) == 1 || !isIdentCont(rest[1])) {
		return Token{Kind: LocalRef, IVal: n, Dir: rest[0], Line: lineNo}, rest[1:], nil
	}
	if rest != "" && rest[0] == ':' {
		return Token{Kind: LocalDef, IVal: n, Line: lineNo}, rest[1:], nil
	}
	return Token{Kind: Number, Text: word, IVal: n, Line: lineNo}, rest, nil
}

func skipSpace(str string) string {
	for i := range str {
		if !unicode.IsSpace(rune(str[i])) {
			return str[i:]
		}
	}
	return ""
}

func isIdentStart(by byte) bool {
	return unicode.IsLetter(rune(by)) || by == '_' || by == '.'
}

func isIdentCont(by byte) bool {
	return unicode.IsLetter(rune(by)) || unicode.IsDigit(rune(by)) || by == '_' || by == '.'
}

// getWord reads a maximal run of identifier characters.
func getWord(str string) (string, string) {
	for i := 0; i < len(str); i++ {
		if !isIdentCont(str[i]) {
			return str[:i], str[i:]
		}
	}
	return str, ""
}

// getDigits reads a maximal run of decimal digits.
func getDigits(str string) (string, string) {
	for i := 0; i < len(str); i++ {
		if !unicode.IsDigit(rune(str[i])) {
			return str[:i], str[i:]
		}
	}
	return str, ""
}
