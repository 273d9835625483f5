package lzw

import (
	"bytes"
	"testing"
)

func TestAPIContract_NoHeaderOrTerminator(t *testing.T) {
	// Every byte of the stream is code payload: 16 codes of 9 bits.
	cmp, err := Compress([]byte(textbookInput), nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	if len(cmp) != 16*9/8 {
		t.Fatalf("expected %d bytes, got %d", 16*9/8, len(cmp))
	}
	if len(cmp) >= len(textbookInput) {
		t.Fatalf("expected compression: %d >= %d", len(cmp), len(textbookInput))
	}
}

func TestAPIContract_ConcatenatedInputsDoNotShareState(t *testing.T) {
	data := []byte(textbookInput)

	first, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	// A second call must start from the seed table again.
	second, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatal("repeated Compress calls produced different streams")
	}
}

func TestAPIContract_TrailingZeroByteDecodesAsNUL(t *testing.T) {
	// Appended bytes are decoded like any other stream bits; there is no
	// framing to reject them.
	cmp, err := Compress([]byte("A"), nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	out, err := Decompress(append(cmp, 0x00))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, []byte{'A', 0x00}) {
		t.Fatalf("unexpected output: % x", out)
	}
}

func TestAPIContract_RepetitiveInputCompresses(t *testing.T) {
	data := bytes.Repeat([]byte("api-contract"), 256)

	cmp, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if len(cmp)*4 > len(data) {
		t.Fatalf("expected at least 4:1 on repetitive input, got %d -> %d", len(data), len(cmp))
	}

	out, err := Decompress(cmp)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("decoded output mismatch")
	}
}
