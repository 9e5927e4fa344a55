package core

import "testing"

func TestToAddress(t *testing.T) {
	tests := []struct {
		row, col int
		want     string
	}{
		{1, 1, "A1"},
		{2, 2, "B2"},
		{10, 26, "Z10"},
		{3, 27, "AA3"},
		{7, 703, "AAA7"},
	}
	for _, tt := range tests {
		if got := ToAddress(tt.row, tt.col); got != tt.want {
			t.Errorf("ToAddress(%d, %d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
		row, col, err := AddressToTuple(tt.want)
		if err != nil {
			t.Fatalf("AddressToTuple(%q) error: %v", tt.want, err)
		}
		if row != tt.row || col != tt.col {
			t.Errorf("AddressToTuple(%q) = (%d, %d), want (%d, %d)", tt.want, row, col, tt.row, tt.col)
		}
	}
}

func TestAddressToTuple_Invalid(t *testing.T) {
	for _, addr := range []string{"", "1A", "B0", "??"} {
		if _, _, err := AddressToTuple(addr); err == nil {
			t.Errorf("AddressToTuple(%q) expected error", addr)
		}
	}
}

func TestParseRegion(t *testing.T) {
	r, err := ParseRegion("D4:B2")
	if err != nil {
		t.Fatalf("ParseRegion error: %v", err)
	}
	if r != (Region{Top: 2, Left: 2, Bottom: 4, Right: 4}) {
		t.Fatalf("ParseRegion = %+v", r)
	}
	if r.Ref() != "B2:D4" || r.Rows() != 3 || r.Cols() != 3 {
		t.Fatalf("unexpected region geometry: %s %dx%d", r.Ref(), r.Rows(), r.Cols())
	}
	if !r.Contains(3, 3) || r.Contains(1, 3) || r.Contains(3, 5) {
		t.Fatalf("Contains mismatch for %s", r.Ref())
	}

	single, err := ParseRegion("C7")
	if err != nil {
		t.Fatalf("ParseRegion single error: %v", err)
	}
	if !single.Single() || single.TopLeft() != "C7" {
		t.Fatalf("single region = %+v", single)
	}

	if _, err := ParseRegion("A1:B2:C3"); err == nil {
		t.Fatalf("expected error for three-part range")
	}
}
