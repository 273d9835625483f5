package lzw

import (
	"bytes"
	"errors"
	"testing"
)

func TestBitWriter_MSBFirstIntoLSBFirstBytes(t *testing.T) {
	var buf bytes.Buffer
	bw := newBitWriter(&buf)

	bw.writeCode(0b001000001, 9) // 'A'
	if err := bw.flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}

	if !bytes.Equal(buf.Bytes(), []byte{0x04, 0x01}) {
		t.Fatalf("unexpected bytes: % x", buf.Bytes())
	}
}

func TestBitWriter_ZeroPadsTrailingByte(t *testing.T) {
	var buf bytes.Buffer
	bw := newBitWriter(&buf)

	bw.writeCode(0b111111111, 9)
	if err := bw.flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}

	if !bytes.Equal(buf.Bytes(), []byte{0xFF, 0x01}) {
		t.Fatalf("unexpected bytes: % x", buf.Bytes())
	}
}

func TestBitWriter_IgnoresBitsAboveWidth(t *testing.T) {
	var buf bytes.Buffer
	bw := newBitWriter(&buf)

	bw.writeCode(0xFFFF_FE00|0b101, 9)
	if err := bw.flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}

	if code := newBitReader(buf.Bytes()).readCode(9); code != 0b101 {
		t.Fatalf("expected 5, got %d", code)
	}
}

func TestBitReader_FoldsFirstBitAsMSB(t *testing.T) {
	// Stream bits in read order: 1, 0, 1, 1.
	r := newBitReader([]byte{0b0000_1101})

	if code := r.readCode(4); code != 0b1011 {
		t.Fatalf("expected 0b1011, got %04b", code)
	}
	if r.remaining() != 4 {
		t.Fatalf("expected 4 remaining bits, got %d", r.remaining())
	}
}

func TestBitIO_RoundTripMixedWidths(t *testing.T) {
	codes := []emittedCode{
		{0, 9}, {511, 9}, {256, 9}, {1023, 10}, {1, 10},
		{2047, 11}, {4095, 12}, {12345, 14}, {1<<31 - 1, 31}, {7, 9},
	}

	var buf bytes.Buffer
	bw := newBitWriter(&buf)
	var totalBits uint64
	for _, c := range codes {
		bw.writeCode(c.code, c.width)
		totalBits += uint64(c.width)
	}
	if err := bw.flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}

	if want := int((totalBits + 7) / 8); buf.Len() != want {
		t.Fatalf("expected %d bytes, got %d", want, buf.Len())
	}

	r := newBitReader(buf.Bytes())
	for i, c := range codes {
		if got := r.readCode(c.width); got != c.code {
			t.Fatalf("code %d: got %d want %d", i, got, c.code)
		}
	}

	if r.remaining() != uint64(buf.Len())*8-totalBits {
		t.Fatalf("unexpected remaining bits: %d", r.remaining())
	}
}

func TestBitWriter_BuffersLargeStreams(t *testing.T) {
	var buf bytes.Buffer
	bw := newBitWriter(&buf)

	const n = 10_000
	for i := range n {
		bw.writeCode(uint64(i%512), 9)
	}
	if buf.Len() == 0 {
		t.Fatal("expected full buffers to be written before flush")
	}
	if err := bw.flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}

	r := newBitReader(buf.Bytes())
	for i := range n {
		if got := r.readCode(9); got != uint64(i%512) {
			t.Fatalf("code %d: got %d", i, got)
		}
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestBitWriter_StickyError(t *testing.T) {
	sinkErr := errors.New("disk full")
	bw := newBitWriter(failingWriter{err: sinkErr})

	bw.writeCode(1, 9)
	if err := bw.flush(); !errors.Is(err, sinkErr) {
		t.Fatalf("expected sink error, got %v", err)
	}

	bw.writeCode(2, 9)
	if err := bw.flush(); !errors.Is(err, sinkErr) {
		t.Fatalf("expected sticky sink error, got %v", err)
	}
}
