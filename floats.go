package kstream

import (
	"encoding/binary"
	"math"
)

// ReadF4le reads a little-endian IEEE 754 binary32 float. NaN and
// infinities are preserved bit-for-bit.
func (s *Stream) ReadF4le() (float32, error) {
	b, err := s.readFixed(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

// ReadF4be reads a big-endian IEEE 754 binary32 float.
func (s *Stream) ReadF4be() (float32, error) {
	b, err := s.readFixed(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(b)), nil
}

// ReadF8le reads a little-endian IEEE 754 binary64 float.
func (s *Stream) ReadF8le() (float64, error) {
	b, err := s.readFixed(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// ReadF8be reads a big-endian IEEE 754 binary64 float.
func (s *Stream) ReadF8be() (float64, error) {
	b, err := s.readFixed(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}
