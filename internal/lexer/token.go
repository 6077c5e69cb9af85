/*
 * rasm - RV32I assembly token definitions
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

package lexer

// Kind classifies one Token.
type Kind int

const (
	Ident    Kind = iota // mnemonic, global label, or register name
	Number               // decimal or 0x-prefixed integer literal
	LocalDef             // "100:" - numeric local label definition
	LocalRef             // "1f" / "1b" - directional local label reference
	Colon                // global label definition terminator
	Comma
	LParen
	RParen
	EOL
)

// Token is one lexical unit on a source line, tagged with its 1-based
// line number so the assembler can report exact error locations.
type Token struct {
	Kind Kind
	Text string // raw text for Ident and Number (e.g. "loop", "-1", "0xABCDE")
	IVal int64  // parsed value for Number/LocalDef/LocalRef
	Dir  byte   // 'f' or 'b' for LocalRef, else 0
	Line int
}

// Line is one source line's token stream, already stripped of comments
// and blank runs.
type Line struct {
	Number int
	Tokens []Token
}
