// SPDX-FileCopyrightText: 2026 The Pngkit authors
// SPDX-License-Identifier: MIT

package png

import (
	"errors"
)

var (
	// ErrChunkTypeNotASCIILetter indicates a chunk type byte outside the
	// ASCII letter ranges (65-90 and 97-122 decimal).
	ErrChunkTypeNotASCIILetter = errors.New("chunk type byte is not an ASCII letter")

	// ErrChunkTypeInvalidLength indicates a textual chunk type code whose
	// raw byte length is not exactly 4.
	ErrChunkTypeInvalidLength = errors.New("chunk type code must be exactly 4 bytes")
)
