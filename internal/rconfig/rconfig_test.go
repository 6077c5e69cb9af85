package rconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/idimitroie/rasm/internal/assembler"
)

func TestDefaultOptions(t *testing.T) {
	dup, p1, err := Default().Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if dup != assembler.DuplicateWarn {
		t.Errorf("default DuplicateGlobalLabels = %v, want DuplicateWarn", dup)
	}
	if p1 != assembler.Pass1Defer {
		t.Errorf("default Pass1EncodingErrors = %v, want Pass1Defer", p1)
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want Default()", cfg)
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rasm.toml")
	content := "duplicate_global_labels = \"error\"\npass1_encoding_errors = \"abort\"\nabi_register_names = false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	dup, p1, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if dup != assembler.DuplicateError {
		t.Errorf("DuplicateGlobalLabels = %v, want DuplicateError", dup)
	}
	if p1 != assembler.Pass1Abort {
		t.Errorf("Pass1EncodingErrors = %v, want Pass1Abort", p1)
	}
	if cfg.ABIRegisterNames {
		t.Error("ABIRegisterNames = true, want false")
	}
}

func TestOptionsRejectsUnknownValue(t *testing.T) {
	cfg := Config{DuplicateGlobalLabels: "explode"}
	if _, _, err := cfg.Options(); err == nil {
		t.Error("expected an error for an unknown duplicate_global_labels value")
	}
}
