package assembler_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/idimitroie/rasm/internal/assembler"
	"github.com/idimitroie/rasm/internal/lexer"
	"github.com/idimitroie/rasm/internal/parser"
	"github.com/idimitroie/rasm/internal/sink"
)

func assembleSource(t *testing.T, src string, opts assembler.Options) (string, error) {
	t.Helper()
	lines, err := lexer.Tokenize(src)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	out := sink.New(&buf)
	a := assembler.New(out, opts)
	p := parser.New(a, true)

	if err := a.StartPass1(); err != nil {
		return "", err
	}
	if err := p.Run(lines); err != nil {
		a.Fail()
		return "", err
	}
	if err := a.StartPass2(); err != nil {
		return "", err
	}
	if err := p.Run(lines); err != nil {
		a.Fail()
		return "", err
	}
	if err := a.Finish(); err != nil {
		return "", err
	}
	out.Flush()
	return buf.String(), nil
}

func TestAssembleWorkedExamples(t *testing.T) {
	src := "" +
		"addi x1, x0, 1\n" +
		"add x5, x6, x7\n" +
		"loop: beq x1, x2, loop\n" +
		"jal x0, 1f\n" +
		"addi x0, x0, 0\n" +
		"1:\n" +
		"lui x10, 0xABCDE\n" +
		"sw x5, 16(x6)\n"

	out, err := assembleSource(t, src, assembler.Options{})
	if err != nil {
		t.Fatalf("assembleSource: %v", err)
	}

	wantWords := []string{"93 00 10 00", "b3 02 73 00", "63 80 20 00", "6f 00 80 00", "37 e5 cd ab", "23 28 53 00"}
	for _, w := range wantWords {
		if !strings.Contains(out, w) {
			t.Errorf("output missing expected instruction bytes %q:\n%s", w, out)
		}
	}
}

func TestAssembleForwardAndBackwardLocalLabels(t *testing.T) {
	src := "" +
		"1:\n" +
		"addi x1, x1, 1\n" +
		"bne x1, x0, 1b\n" +
		"jal x0, 2f\n" +
		"2:\n"

	out, err := assembleSource(t, src, assembler.Options{})
	if err != nil {
		t.Fatalf("assembleSource: %v", err)
	}
	if strings.Count(out, "line") == 0 {
		t.Errorf("expected emitted instruction lines, got:\n%s", out)
	}
}

func TestAssembleUnknownGlobalIsResolutionError(t *testing.T) {
	src := "jal x0, nowhere\n"
	_, err := assembleSource(t, src, assembler.Options{})
	if err == nil {
		t.Fatal("expected a resolution error for an undefined global label")
	}
	if _, ok := err.(*assembler.ResolutionError); !ok {
		t.Errorf("error = %T, want *assembler.ResolutionError", err)
	}
}

func TestAssembleDuplicateGlobalLabelErrorPolicy(t *testing.T) {
	src := "" +
		"x: addi x1, x0, 1\n" +
		"x: addi x2, x0, 2\n"
	_, err := assembleSource(t, src, assembler.Options{DuplicateGlobalLabels: assembler.DuplicateError})
	if err == nil {
		t.Fatal("expected a duplicate global label error")
	}
	if _, ok := err.(*assembler.DuplicateGlobalLabelError); !ok {
		t.Errorf("error = %T, want *assembler.DuplicateGlobalLabelError", err)
	}
}

func TestAssembleDuplicateGlobalLabelWarnPolicyDoesNotFail(t *testing.T) {
	src := "" +
		"x: addi x1, x0, 1\n" +
		"x: addi x2, x0, 2\n" +
		"jal x0, x\n"
	if _, err := assembleSource(t, src, assembler.Options{}); err != nil {
		t.Fatalf("warn policy should not fail compilation: %v", err)
	}
}

func TestAssembleOutOfRangeImmediate(t *testing.T) {
	src := "addi x1, x0, 99999\n"
	_, err := assembleSource(t, src, assembler.Options{})
	if err == nil {
		t.Fatal("expected an encoding range error")
	}
}
