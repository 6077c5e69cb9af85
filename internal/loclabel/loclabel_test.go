package loclabel

import "testing"

func TestLookupBackwardInclusive(t *testing.T) {
	tbl := New()
	tbl.Add(1, 0)
	tbl.Add(1, 8)
	tbl.Add(1, 20)

	if addr, ok := tbl.LookupBackward(1, 20); !ok || addr != 20 {
		t.Errorf("LookupBackward(1, 20) = (%d, %v), want (20, true)", addr, ok)
	}
	if addr, ok := tbl.LookupBackward(1, 19); !ok || addr != 8 {
		t.Errorf("LookupBackward(1, 19) = (%d, %v), want (8, true)", addr, ok)
	}
	if _, ok := tbl.LookupBackward(2, 100); ok {
		t.Error("LookupBackward on undefined name returned found=true")
	}
}

func TestLookupForwardStrict(t *testing.T) {
	tbl := New()
	tbl.Add(1, 0)
	tbl.Add(1, 8)
	tbl.Add(1, 20)

	if addr, ok := tbl.LookupForward(1, 0); !ok || addr != 8 {
		t.Errorf("LookupForward(1, 0) = (%d, %v), want (8, true)", addr, ok)
	}
	if addr, ok := tbl.LookupForward(1, 19); !ok || addr != 20 {
		t.Errorf("LookupForward(1, 19) = (%d, %v), want (20, true)", addr, ok)
	}
	if _, ok := tbl.LookupForward(1, 20); ok {
		t.Error("LookupForward(1, 20) found an address after the last definition")
	}
}

func TestAddIdempotent(t *testing.T) {
	tbl := New()
	tbl.Add(3, 4)
	tbl.Add(3, 4)
	tbl.Add(3, 4)
	if addr, ok := tbl.LookupBackward(3, 4); !ok || addr != 4 {
		t.Errorf("LookupBackward(3, 4) = (%d, %v), want (4, true)", addr, ok)
	}
	if addr, ok := tbl.LookupForward(3, 3); !ok || addr != 4 {
		t.Errorf("LookupForward(3, 3) = (%d, %v), want (4, true)", addr, ok)
	}
	// Idempotent insert must not create duplicate slots.
	count := 0
	for a, ok := tbl.LookupForward(3, 0); ok; a, ok = tbl.LookupForward(3, a) {
		count++
		if count > 5 {
			t.Fatal("Add did not dedupe repeated (name, addr) pairs")
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one distinct address, got %d", count)
	}
}

func TestMonotonicity(t *testing.T) {
	tbl := New()
	addrs := []uint32{4, 12, 40, 100}
	for _, a := range addrs {
		tbl.Add(7, a)
	}
	cases := []struct {
		q        uint32
		wantBack uint32
		haveBack bool
		wantFwd  uint32
		haveFwd  bool
	}{
		{0, 0, false, 4, true},
		{4, 4, true, 12, true},
		{5, 4, true, 12, true},
		{100, 100, true, 0, false},
		{200, 100, true, 0, false},
	}
	for _, c := range cases {
		if addr, ok := tbl.LookupBackward(7, c.q); ok != c.haveBack || (ok && addr != c.wantBack) {
			t.Errorf("LookupBackward(7, %d) = (%d, %v), want (%d, %v)", c.q, addr, ok, c.wantBack, c.haveBack)
		}
		if addr, ok := tbl.LookupForward(7, c.q); ok != c.haveFwd || (ok && addr != c.wantFwd) {
			t.Errorf("LookupForward(7, %d) = (%d, %v), want (%d, %v)", c.q, addr, ok, c.wantFwd, c.haveFwd)
		}
	}
}
