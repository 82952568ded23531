package ordernum

import (
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c, err := New("test-salt")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, id := range []int64{1, 2, 100, 99999, 1 << 40} {
		number, err := c.Encode(id)
		if err != nil {
			t.Fatalf("Encode(%d): %v", id, err)
		}
		if !strings.HasPrefix(number, "PZA-") {
			t.Errorf("Encode(%d) = %q, want PZA- prefix", id, number)
		}

		got, err := c.Decode(number)
		if err != nil {
			t.Fatalf("Decode(%q): %v", number, err)
		}
		if got != id {
			t.Errorf("Decode(Encode(%d)) = %d", id, got)
		}
	}
}

func TestEncodeMinLength(t *testing.T) {
	c, err := New("test-salt")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	number, err := c.Encode(1)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(number) < len("PZA-")+8 {
		t.Errorf("Encode(1) = %q, shorter than the minimum length", number)
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	c, err := New("test-salt")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, input := range []string{"", "PZA-", "NOPREFIX", "pza-ABCDEFGH", "PZA-!!!"} {
		if _, err := c.Decode(input); err == nil {
			t.Errorf("Decode(%q) should fail", input)
		}
	}
}

func TestDifferentSaltsProduceDifferentNumbers(t *testing.T) {
	a, err := New("salt-a")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := New("salt-b")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	numA, err := a.Encode(123)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	numB, err := b.Encode(123)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if numA == numB {
		t.Error("the same id should encode differently under different salts")
	}
}
