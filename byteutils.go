package kstream

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zlib"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// BytesStripRight returns the longest prefix of data that does not end
// with pad: trailing pad bytes are dropped, nothing else is.
func BytesStripRight(data []byte, pad byte) []byte {
	n := len(data)
	for n > 0 && data[n-1] == pad {
		n--
	}
	return data[:n]
}

// BytesTerminate returns the prefix of data ending at the first
// occurrence of term (inclusive iff include). If term does not occur,
// data is returned unchanged.
func BytesTerminate(data []byte, term byte, include bool) []byte {
	i := bytes.IndexByte(data, term)
	if i < 0 {
		return data
	}
	if include {
		return data[:i+1]
	}
	return data[:i]
}

// stringEncoding identifies the decoders BytesToStr accepts, matching
// the aliases format descriptions commonly write.
func stringEncoding(name string) (encoding.Encoding, bool) {
	switch strings.ToLower(name) {
	case "", "ascii":
		// Per-byte code point mapping, i.e. Latin-1/ISO-8859-1's table.
		return charmap.ISO8859_1, true
	case "utf8", "utf-8":
		return nil, true // handled directly; []byte is already UTF-8
	case "ucs2", "ucs-2":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), true
	case "utf16le", "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), true
	default:
		return nil, false
	}
}

// BytesToStr decodes data to a string under the named encoding: ascii
// (also the default when encoding is empty), utf8/utf-8, ucs2/ucs-2, or
// utf16le/utf-16le.
func BytesToStr(data []byte, encodingName string) (string, error) {
	enc, ok := stringEncoding(encodingName)
	if !ok {
		return "", fmt.Errorf("kstream: unknown string encoding %q", encodingName)
	}
	if enc == nil {
		return string(data), nil
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("kstream: decoding %q: %w", encodingName, err)
	}
	return string(out), nil
}

// ProcessXOROne XORs every byte of data with the single byte key.
func ProcessXOROne(data []byte, key byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key
	}
	return out
}

// ProcessXORMany XORs data[i] with key[i % len(key)]. key must be
// non-empty.
func ProcessXORMany(data, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("kstream: ProcessXORMany: key must not be empty")
	}
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}
	return out, nil
}

// ProcessRotateLeft performs a per-byte circular left rotation by amount
// bits (negative amount rotates right via the same two's-complement
// masked formula). groupSize must be 1 — wider rotation groups are not
// yet supported.
func ProcessRotateLeft(data []byte, amount int, groupSize int) ([]byte, error) {
	if groupSize != 1 {
		return nil, fmt.Errorf("kstream: ProcessRotateLeft: group_size %d not yet supported", groupSize)
	}
	shift := uint(amount) & 7
	antiShift := uint(-amount) & 7
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = (b << shift) | (b >> antiShift)
	}
	return out, nil
}

// ProcessZlib zlib-inflates data. Decompression errors propagate,
// wrapped (with %w) under a "kstream: zlib:" prefix.
func ProcessZlib(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("kstream: zlib: %w", err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("kstream: zlib: %w", err)
	}
	return out, nil
}
