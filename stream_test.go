package kstream

import (
	"math"
	"testing"
)

// ---------------------------------------------------------------------------
// construction
// ---------------------------------------------------------------------------

func TestNewStreamFromBytesSize(t *testing.T) {
	s := NewStreamFromBytes([]byte{1, 2, 3, 4, 5})
	if got := s.Size(); got != 5 {
		t.Errorf("Size(): got %d, want 5", got)
	}
	if s.Pos() != 0 {
		t.Errorf("Pos(): got %d, want 0", s.Pos())
	}
}

func TestNewStreamWithBaseOffset(t *testing.T) {
	s := NewStream([]byte{0xAA, 0xBB, 0xCC, 0xDD}, 2)
	if got := s.Size(); got != 2 {
		t.Errorf("Size(): got %d, want 2", got)
	}
	b, err := s.ReadU1()
	if err != nil {
		t.Fatalf("ReadU1 error: %v", err)
	}
	if b != 0xCC {
		t.Errorf("ReadU1 after base offset: got 0x%02X, want 0xCC", b)
	}
}

func TestNewStreamBaseBeyondLengthClampsEmpty(t *testing.T) {
	s := NewStream([]byte{1, 2}, 10)
	if got := s.Size(); got != 0 {
		t.Errorf("Size(): got %d, want 0", got)
	}
}

func TestNewEmptyStreamMinimumOne(t *testing.T) {
	s := NewEmptyStream(0)
	if got := s.Size(); got != 1 {
		t.Errorf("NewEmptyStream(0).Size(): got %d, want 1", got)
	}
}

// ---------------------------------------------------------------------------
// IsEOF / property 3
// ---------------------------------------------------------------------------

func TestIsEOFFalseBeforeEnd(t *testing.T) {
	s := NewStreamFromBytes([]byte{1, 2, 3})
	if s.IsEOF() {
		t.Error("IsEOF(): got true at pos=0 of a 3-byte stream, want false")
	}
}

func TestIsEOFTrueAtEnd(t *testing.T) {
	s := NewStreamFromBytes([]byte{1, 2, 3})
	if _, err := s.ReadBytes(3); err != nil {
		t.Fatalf("ReadBytes error: %v", err)
	}
	if !s.IsEOF() {
		t.Error("IsEOF(): got false after consuming all bytes, want true")
	}
}

func TestIsEOFFalseWithPartialBitsHeld(t *testing.T) {
	s := NewStreamFromBytes([]byte{0xFF})
	if _, err := s.ReadBitsIntBe(4); err != nil {
		t.Fatalf("ReadBitsIntBe error: %v", err)
	}
	// pos has advanced to 1 (== Size()) but 4 bits are still held.
	if s.IsEOF() {
		t.Error("IsEOF(): got true with 4 unconsumed bits held, want false")
	}
}

func TestIsEOFEmptyStream(t *testing.T) {
	s := NewStreamFromBytes(nil)
	if !s.IsEOF() {
		t.Error("IsEOF() on empty stream: got false, want true")
	}
}

// ---------------------------------------------------------------------------
// Seek / property 4
// ---------------------------------------------------------------------------

func TestSeekClampsToBounds(t *testing.T) {
	s := NewStreamFromBytes(make([]byte, 10))
	cases := []struct {
		seek int
		want int
	}{
		{-5, 0},
		{0, 0},
		{4, 4},
		{10, 10},
		{999, 10},
	}
	for _, tc := range cases {
		s.Seek(tc.seek)
		if got := s.Pos(); got != tc.want {
			t.Errorf("Seek(%d): Pos() got %d, want %d", tc.seek, got, tc.want)
		}
	}
}

func TestSeekFloatNonFiniteSnapsToZero(t *testing.T) {
	s := NewStreamFromBytes(make([]byte, 10))
	s.Seek(7)
	s.SeekFloat(math.NaN())
	if got := s.Pos(); got != 0 {
		t.Errorf("SeekFloat(NaN): Pos() got %d, want 0", got)
	}

	s.Seek(7)
	s.SeekFloat(math.Inf(1))
	if got := s.Pos(); got != 0 {
		t.Errorf("SeekFloat(+Inf): Pos() got %d, want 0", got)
	}
}

func TestSeekFloatFiniteClamps(t *testing.T) {
	s := NewStreamFromBytes(make([]byte, 10))
	s.SeekFloat(4.9)
	if got := s.Pos(); got != 4 {
		t.Errorf("SeekFloat(4.9): Pos() got %d, want 4", got)
	}
	s.SeekFloat(25.0)
	if got := s.Pos(); got != 10 {
		t.Errorf("SeekFloat(25.0): Pos() got %d, want 10", got)
	}
}

// ---------------------------------------------------------------------------
// AlignToByte
// ---------------------------------------------------------------------------

func TestAlignToByteDiscardsHeldBits(t *testing.T) {
	s := NewStreamFromBytes([]byte{0xFF, 0x00})
	if _, err := s.ReadBitsIntBe(3); err != nil {
		t.Fatalf("ReadBitsIntBe error: %v", err)
	}
	s.AlignToByte()
	if s.bitsLeft != 0 || s.bits != 0 {
		t.Errorf("AlignToByte: bitsLeft=%d bits=%d, want 0, 0", s.bitsLeft, s.bits)
	}
	if s.Pos() != 1 {
		t.Errorf("AlignToByte must not move pos: got %d, want 1", s.Pos())
	}
}

// ---------------------------------------------------------------------------
// EnsureBytesLeft / property 5
// ---------------------------------------------------------------------------

func TestEnsureBytesLeftSucceedsWithinBounds(t *testing.T) {
	s := NewStreamFromBytes(make([]byte, 5))
	s.Seek(3)
	if err := s.EnsureBytesLeft(2); err != nil {
		t.Errorf("EnsureBytesLeft(2) at pos=3/size=5: unexpected error %v", err)
	}
}

func TestEnsureBytesLeftFailsPastEnd(t *testing.T) {
	s := NewStreamFromBytes(make([]byte, 5))
	s.Seek(3)
	err := s.EnsureBytesLeft(3)
	if err == nil {
		t.Fatal("EnsureBytesLeft(3) at pos=3/size=5: expected error, got nil")
	}
	eofErr, ok := err.(*EOFError)
	if !ok {
		t.Fatalf("error type: got %T, want *EOFError", err)
	}
	if eofErr.Requested != 3 || eofErr.Available != 2 {
		t.Errorf("EOFError: got {%d, %d}, want {3, 2}", eofErr.Requested, eofErr.Available)
	}
}

// ---------------------------------------------------------------------------
// Trim
// ---------------------------------------------------------------------------

func TestTrimProducesIndependentCopy(t *testing.T) {
	backing := []byte{1, 2, 3, 4}
	s := NewStreamFromBytes(backing)
	s.Seek(2)
	trimmed := s.Trim()

	backing[0] = 0xFF // mutate the original backing array
	b, err := trimmed.ReadBytes(0)
	if err != nil {
		t.Fatalf("ReadBytes(0) error: %v", err)
	}
	if len(b) != 0 {
		t.Errorf("ReadBytes(0): got %d bytes, want 0", len(b))
	}
	if trimmed.Pos() != 2 {
		t.Errorf("Trim must preserve pos: got %d, want 2", trimmed.Pos())
	}
	trimmed.Seek(0)
	first, _ := trimmed.ReadU1()
	if first != 1 {
		t.Errorf("Trim must copy the backing array: got 0x%02X, want 0x01 (unaffected by later mutation)", first)
	}
}
