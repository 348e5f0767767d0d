// SPDX-FileCopyrightText: 2026 The Pngkit authors
// SPDX-License-Identifier: MIT

// Package png implements the PNG chunk type code per RFC 2083.
package png

import "fmt"

/*
ChunkType represents a PNG chunk type code per RFC 2083 section 3.2.

The code is 4 bytes, each of which MUST be an ASCII letter (A-Z,
decimal 65-90, or a-z, decimal 97-122). Bit 5 (value 0x20) of each
byte is a property bit, which is also the case bit of the letter:

	byte 0  ancillary bit     0 (uppercase) = critical     1 (lowercase) = ancillary
	byte 1  private bit       0 (uppercase) = public       1 (lowercase) = private
	byte 2  reserved bit      0 (uppercase) = conforming   1 (lowercase) = reserved
	byte 3  safe-to-copy bit  0 (uppercase) = unsafe       1 (lowercase) = safe to copy

A ChunkType can only be obtained through NewChunkType or
ParseChunkType, so every reachable value holds ASCII letters only.
*/
type ChunkType struct {
	code [4]byte
}

const (
	chunkTypeSize = 4

	// propertyBit is bit 5 of each code byte, the case bit of the letter.
	propertyBit = 0x20
)

// Chunk type codes registered in RFC 2083 section 4.
//
//nolint:gochecknoglobals
var (
	ChunkTypeIHDR = ChunkType{code: [4]byte{'I', 'H', 'D', 'R'}} // image header
	ChunkTypePLTE = ChunkType{code: [4]byte{'P', 'L', 'T', 'E'}} // palette
	ChunkTypeIDAT = ChunkType{code: [4]byte{'I', 'D', 'A', 'T'}} // image data
	ChunkTypeIEND = ChunkType{code: [4]byte{'I', 'E', 'N', 'D'}} // image trailer
	ChunkTypeBKGD = ChunkType{code: [4]byte{'b', 'K', 'G', 'D'}} // bKGD, background color
	ChunkTypeCHRM = ChunkType{code: [4]byte{'c', 'H', 'R', 'M'}} // cHRM, primary chromaticities
	ChunkTypeGAMA = ChunkType{code: [4]byte{'g', 'A', 'M', 'A'}} // gAMA, image gamma
	ChunkTypeHIST = ChunkType{code: [4]byte{'h', 'I', 'S', 'T'}} // hIST, palette histogram
	ChunkTypePHYS = ChunkType{code: [4]byte{'p', 'H', 'Y', 's'}} // pHYs, physical pixel dimensions
	ChunkTypeSBIT = ChunkType{code: [4]byte{'s', 'B', 'I', 'T'}} // sBIT, significant bits
	ChunkTypeTEXT = ChunkType{code: [4]byte{'t', 'E', 'X', 't'}} // tEXt, textual data
	ChunkTypeTIME = ChunkType{code: [4]byte{'t', 'I', 'M', 'E'}} // tIME, last-modification time
	ChunkTypeTRNS = ChunkType{code: [4]byte{'t', 'R', 'N', 'S'}} // tRNS, transparency
	ChunkTypeZTXT = ChunkType{code: [4]byte{'z', 'T', 'X', 't'}} // zTXt, compressed textual data
)

// NewChunkType builds a ChunkType from a raw 4-byte code, such as one
// read from the chunk header of a PNG stream.
func NewChunkType(raw [4]byte) (ChunkType, error) {
	for i, b := range raw {
		if !isASCIILetter(b) {
			return ChunkType{}, fmt.Errorf("%w: byte %d is 0x%02x", ErrChunkTypeNotASCIILetter, i, b)
		}
	}

	return ChunkType{code: raw}, nil
}

// ParseChunkType builds a ChunkType from its textual form. Length is
// measured in raw bytes, so a 4-character string holding a multi-byte
// UTF-8 sequence is rejected as a length mismatch.
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != chunkTypeSize {
		return ChunkType{}, fmt.Errorf("%w: got %d", ErrChunkTypeInvalidLength, len(s))
	}

	var raw [4]byte
	copy(raw[:], s)

	return NewChunkType(raw)
}

func isASCIILetter(b byte) bool {
	return ('A' <= b && b <= 'Z') || ('a' <= b && b <= 'z')
}

// Bytes returns a copy of the raw 4-byte code.
func (c ChunkType) Bytes() [4]byte {
	return c.code
}

// IsCritical reports whether the chunk is necessary for successful
// display of the image. Decoders encountering an unknown critical
// chunk MUST abort; an unknown ancillary chunk can be skipped.
func (c ChunkType) IsCritical() bool {
	return c.code[0]&propertyBit == 0
}

// IsPublic reports whether the chunk type is registered in the PNG
// specification. A lowercase second letter marks a private,
// application-defined type.
func (c ChunkType) IsPublic() bool {
	return c.code[1]&propertyBit == 0
}

// IsReservedBitValid reports whether the reserved bit of the third
// byte is clear. RFC 2083 requires the bit to be clear; a set bit
// marks a code reserved for a future version of the specification.
func (c ChunkType) IsReservedBitValid() bool {
	return c.code[2]&propertyBit == 0
}

// IsSafeToCopy reports whether an editor that does not recognize the
// chunk may copy it unmodified into a modified datastream. Polarity is
// inverted relative to the other three properties: the bit set
// (lowercase fourth letter) means safe.
func (c ChunkType) IsSafeToCopy() bool {
	return c.code[3]&propertyBit != 0
}

// IsValid reports whether the code conforms to the current version of
// the specification. It checks the reserved bit only; the case of the
// remaining bytes carries chunk properties, not validity.
func (c ChunkType) IsValid() bool {
	return c.IsReservedBitValid()
}

// String makes ChunkType printable. It cannot produce anything but the
// 4 ASCII letters validated at construction.
func (c ChunkType) String() string {
	return string(c.code[:])
}

// MarshalText implements encoding.TextMarshaler.
func (c ChunkType) MarshalText() ([]byte, error) {
	return []byte(c.code[:]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It applies the
// same validation as ParseChunkType.
func (c *ChunkType) UnmarshalText(text []byte) error {
	parsed, err := ParseChunkType(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}
