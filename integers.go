package kstream

import "encoding/binary"

// ReadU1 reads an unsigned 8-bit integer and advances pos by 1.
func (s *Stream) ReadU1() (uint8, error) {
	if err := s.EnsureBytesLeft(1); err != nil {
		return 0, err
	}
	return s.readByte(), nil
}

// ReadS1 reads a signed 8-bit (two's-complement) integer and advances
// pos by 1.
func (s *Stream) ReadS1() (int8, error) {
	v, err := s.ReadU1()
	if err != nil {
		return 0, err
	}
	return int8(v), nil
}

// ReadU2le reads a little-endian unsigned 16-bit integer.
func (s *Stream) ReadU2le() (uint16, error) {
	b, err := s.readFixed(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU2be reads a big-endian unsigned 16-bit integer.
func (s *Stream) ReadU2be() (uint16, error) {
	b, err := s.readFixed(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadS2le reads a little-endian signed (two's-complement) 16-bit integer.
func (s *Stream) ReadS2le() (int16, error) {
	v, err := s.ReadU2le()
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

// ReadS2be reads a big-endian signed (two's-complement) 16-bit integer.
func (s *Stream) ReadS2be() (int16, error) {
	v, err := s.ReadU2be()
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

// ReadU4le reads a little-endian unsigned 32-bit integer.
func (s *Stream) ReadU4le() (uint32, error) {
	b, err := s.readFixed(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU4be reads a big-endian unsigned 32-bit integer.
func (s *Stream) ReadU4be() (uint32, error) {
	b, err := s.readFixed(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadS4le reads a little-endian signed (two's-complement) 32-bit integer.
func (s *Stream) ReadS4le() (int32, error) {
	v, err := s.ReadU4le()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// ReadS4be reads a big-endian signed (two's-complement) 32-bit integer.
func (s *Stream) ReadS4be() (int32, error) {
	v, err := s.ReadU4be()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// readFixed checks, consumes and returns the next n bytes, advancing pos.
// Shared by the fixed-width integer and float readers.
func (s *Stream) readFixed(n int) ([]byte, error) {
	if err := s.EnsureBytesLeft(n); err != nil {
		return nil, err
	}
	b := s.buf[s.pos : s.pos+n]
	s.pos += n
	return b, nil
}
