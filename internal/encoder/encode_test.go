package encoder

import "testing"

// RV32I opcode map used only by tests, mirroring the teacher's
// emu/opcodemap style of a small constant table per mnemonic.
const (
	opcodeOpImm  = 0b0010011
	opcodeOp     = 0b0110011
	opcodeBranch = 0b1100011
	opcodeLui    = 0b0110111
	opcodeJal    = 0b1101111
	opcodeStore  = 0b0100011
)

func TestEncodeI_Addi(t *testing.T) {
	word, err := EncodeI(Opcodes{Opcode: opcodeOpImm, Funct3: 0}, 1, 0, 1)
	if err != nil {
		t.Fatalf("EncodeI returned error: %v", err)
	}
	if want := uint32(0x00100093); word != want {
		t.Errorf("addi x1, x0, 1 = %#08x, want %#08x", word, want)
	}
}

func TestEncodeR_Add(t *testing.T) {
	word, err := EncodeR(Opcodes{Opcode: opcodeOp, Funct3: 0, Funct7: 0}, 5, 6, 7)
	if err != nil {
		t.Fatalf("EncodeR returned error: %v", err)
	}
	if want := uint32(0x007302B3); word != want {
		t.Errorf("add x5, x6, x7 = %#08x, want %#08x", word, want)
	}
}

func TestEncodeB_BeqSelf(t *testing.T) {
	word, err := EncodeB(Opcodes{Opcode: opcodeBranch, Funct3: 0}, 1, 2, 0)
	if err != nil {
		t.Fatalf("EncodeB returned error: %v", err)
	}
	if want := uint32(0x00208063); word != want {
		t.Errorf("beq x1, x2, . = %#08x, want %#08x", word, want)
	}
}

func TestEncodeJ_Forward(t *testing.T) {
	word, err := EncodeJ(Opcodes{Opcode: opcodeJal}, 0, 8)
	if err != nil {
		t.Fatalf("EncodeJ returned error: %v", err)
	}
	if want := uint32(0x0080006F); word != want {
		t.Errorf("jal x0, 1f = %#08x, want %#08x", word, want)
	}
}

func TestEncodeU_Lui(t *testing.T) {
	word, err := EncodeU(Opcodes{Opcode: opcodeLui}, 10, 0xABCDE)
	if err != nil {
		t.Fatalf("EncodeU returned error: %v", err)
	}
	if want := uint32(0xABCDE537); word != want {
		t.Errorf("lui x10, 0xABCDE = %#08x, want %#08x", word, want)
	}
}

func TestEncodeS_Sw(t *testing.T) {
	word, err := EncodeS(Opcodes{Opcode: opcodeStore, Funct3: 0b010}, 6, 5, 16)
	if err != nil {
		t.Fatalf("EncodeS returned error: %v", err)
	}
	if want := uint32(0x00532823); word != want {
		t.Errorf("sw x5, 16(x6) = %#08x, want %#08x", word, want)
	}
}

func TestRegisterRoundTripR(t *testing.T) {
	for r := int32(0); r <= 31; r++ {
		word, err := EncodeR(Opcodes{Opcode: opcodeOp}, r, r, r)
		if err != nil {
			t.Fatalf("EncodeR(%d) returned error: %v", r, err)
		}
		rd := int32((word >> 7) & 0x1f)
		rs1 := int32((word >> 15) & 0x1f)
		rs2 := int32((word >> 20) & 0x1f)
		if rd != r || rs1 != r || rs2 != r {
			t.Errorf("r=%d round-trip got rd=%d rs1=%d rs2=%d", r, rd, rs1, rs2)
		}
	}
}

func signExtend(v uint32, bit int) int32 {
	shift := 31 - bit
	return int32(v<<shift) >> shift
}

func TestImmediateRoundTripI(t *testing.T) {
	for imm := int32(immIMin); imm <= immIMax; imm += 37 {
		word, err := EncodeI(Opcodes{Opcode: opcodeOpImm}, 0, 0, imm)
		if err != nil {
			t.Fatalf("EncodeI(imm=%d) returned error: %v", imm, err)
		}
		got := signExtend(word>>20, 11)
		if got != imm {
			t.Errorf("I-type imm round-trip: encoded %d, decoded %d", imm, got)
		}
	}
}

func TestImmediateRoundTripS(t *testing.T) {
	for imm := int32(immIMin); imm <= immIMax; imm += 37 {
		word, err := EncodeS(Opcodes{Opcode: opcodeStore}, 0, 0, imm)
		if err != nil {
			t.Fatalf("EncodeS(imm=%d) returned error: %v", imm, err)
		}
		raw := ((word >> 25) << 5) | ((word >> 7) & 0x1f)
		got := signExtend(raw, 11)
		if got != imm {
			t.Errorf("S-type imm round-trip: encoded %d, decoded %d", imm, got)
		}
	}
}

func TestImmediateRoundTripB(t *testing.T) {
	for imm := int32(immBMin); imm <= immBMax; imm += 2 * 251 {
		word, err := EncodeB(Opcodes{Opcode: opcodeBranch}, 0, 0, imm)
		if err != nil {
			t.Fatalf("EncodeB(imm=%d) returned error: %v", imm, err)
		}
		imm12 := (word >> 31) & 0x1
		imm105 := (word >> 25) & 0x3f
		imm41 := (word >> 8) & 0xf
		imm11 := (word >> 7) & 0x1
		raw := imm12<<12 | imm11<<11 | imm105<<5 | imm41<<1
		got := signExtend(raw, 12)
		if got != imm {
			t.Errorf("B-type imm round-trip: encoded %d, decoded %d", imm, got)
		}
	}
}

func TestImmediateRoundTripJ(t *testing.T) {
	for imm := int32(immJMin); imm <= immJMax; imm += 2 * 4001 {
		word, err := EncodeJ(Opcodes{Opcode: opcodeJal}, 0, imm)
		if err != nil {
			t.Fatalf("EncodeJ(imm=%d) returned error: %v", imm, err)
		}
		imm20 := (word >> 31) & 0x1
		imm1912 := (word >> 12) & 0xff
		imm11 := (word >> 20) & 0x1
		imm101 := (word >> 21) & 0x3ff
		raw := imm20<<20 | imm1912<<12 | imm11<<11 | imm101<<1
		got := signExtend(raw, 20)
		if got != imm {
			t.Errorf("J-type imm round-trip: encoded %d, decoded %d", imm, got)
		}
	}
}

func TestImmediateRoundTripU(t *testing.T) {
	for _, uimm := range []uint32{0, 1, 0xFFFFF, 0xABCDE, 0x80000} {
		word, err := EncodeU(Opcodes{Opcode: opcodeLui}, 0, uimm)
		if err != nil {
			t.Fatalf("EncodeU(uimm=%#x) returned error: %v", uimm, err)
		}
		got := word >> 12
		if got != uimm {
			t.Errorf("U-type imm round-trip: encoded %#x, decoded %#x", uimm, got)
		}
	}
}

func TestBoundaryRejectionI(t *testing.T) {
	if _, err := EncodeI(Opcodes{}, 0, 0, immIMax+1); err == nil {
		t.Error("EncodeI accepted imm one above range")
	}
	if _, err := EncodeI(Opcodes{}, 0, 0, immIMin-1); err == nil {
		t.Error("EncodeI accepted imm one below range")
	}
}

func TestBoundaryRejectionB(t *testing.T) {
	if _, err := EncodeB(Opcodes{}, 0, 0, immBMax+2); err == nil {
		t.Error("EncodeB accepted imm one step above range")
	}
	if _, err := EncodeB(Opcodes{}, 0, 0, immBMin-2); err == nil {
		t.Error("EncodeB accepted imm one step below range")
	}
}

func TestBoundaryRejectionJ(t *testing.T) {
	if _, err := EncodeJ(Opcodes{}, 0, immJMax+2); err == nil {
		t.Error("EncodeJ accepted imm one step above range")
	}
	if _, err := EncodeJ(Opcodes{}, 0, immJMin-2); err == nil {
		t.Error("EncodeJ accepted imm one step below range")
	}
}

func TestBoundaryRejectionShamt(t *testing.T) {
	if _, err := EncodeIShamt(Opcodes{}, 0, 0, shamtMax+1); err == nil {
		t.Error("EncodeIShamt accepted shamt one above range")
	}
	if _, err := EncodeIShamt(Opcodes{}, 0, 0, shamtMin-1); err == nil {
		t.Error("EncodeIShamt accepted shamt one below range")
	}
}

func TestMisalignedBranch(t *testing.T) {
	_, err := EncodeB(Opcodes{}, 0, 0, 3)
	if err == nil {
		t.Fatal("EncodeB accepted an odd offset")
	}
	if _, ok := err.(*MisalignedBranchTargetError); !ok {
		t.Errorf("EncodeB(3) error = %T, want *MisalignedBranchTargetError", err)
	}
}

func TestMisalignedJump(t *testing.T) {
	_, err := EncodeJ(Opcodes{}, 0, 5)
	if err == nil {
		t.Fatal("EncodeJ accepted an odd offset")
	}
	if _, ok := err.(*MisalignedBranchTargetError); !ok {
		t.Errorf("EncodeJ(5) error = %T, want *MisalignedBranchTargetError", err)
	}
}

func TestRegisterOutOfRange(t *testing.T) {
	if _, err := EncodeR(Opcodes{}, 32, 0, 0); err == nil {
		t.Error("EncodeR accepted rd=32")
	}
	if _, err := EncodeR(Opcodes{}, 0, -1, 0); err == nil {
		t.Error("EncodeR accepted rs1=-1")
	}
}

func TestDeterminism(t *testing.T) {
	a, _ := EncodeR(Opcodes{Opcode: opcodeOp, Funct3: 1, Funct7: 0x20}, 3, 4, 5)
	b, _ := EncodeR(Opcodes{Opcode: opcodeOp, Funct3: 1, Funct7: 0x20}, 3, 4, 5)
	if a != b {
		t.Errorf("Encode is not deterministic: %#08x != %#08x", a, b)
	}
}

func TestDecodeOpcodeFamily(t *testing.T) {
	cases := []struct {
		opcode, funct3 uint32
		want           Format
	}{
		{opcodeOp, 0, FormatR},
		{opcodeOpImm, 0b000, FormatI},
		{opcodeOpImm, 0b001, FormatIShamt},
		{opcodeOpImm, 0b101, FormatIShamt},
		{opcodeOpImm, 0b010, FormatI},
		{opcodeBranch, 0, FormatB},
		{opcodeLui, 0, FormatU},
		{opcodeJal, 0, FormatJ},
		{opcodeStore, 0, FormatS},
	}
	for _, c := range cases {
		if got := DecodeOpcodeFamily(c.opcode, c.funct3); got != c.want {
			t.Errorf("DecodeOpcodeFamily(%#07b, %#03b) = %v, want %v", c.opcode, c.funct3, got, c.want)
		}
	}
}

func TestEncodeDispatch(t *testing.T) {
	word, err := Encode(FormatR, Opcodes{Opcode: opcodeOp}, Fields{Rd: 5, Rs1: 6, Rs2: 7})
	if err != nil {
		t.Fatalf("Encode(FormatR) returned error: %v", err)
	}
	if want := uint32(0x007302B3); word != want {
		t.Errorf("Encode(FormatR) = %#08x, want %#08x", word, want)
	}
}

func TestEncodeRejectsFormatOpcodeMismatch(t *testing.T) {
	// opcodeOp (0110011) belongs to FormatR, not FormatI: a hand-built
	// Opcodes/Format pairing that drifted out of sync with isa.Table.
	_, err := Encode(FormatI, Opcodes{Opcode: opcodeOp}, Fields{Rd: 5, Rs1: 6, Imm: 1})
	if err == nil {
		t.Fatal("Encode accepted a format/opcode pairing that don't belong together")
	}
	if _, ok := err.(*FormatOpcodeMismatchError); !ok {
		t.Errorf("Encode error = %T, want *FormatOpcodeMismatchError", err)
	}
}
