package spotifyid

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// FileIDLen is the size of a [FileID] in bytes.
const FileIDLen = 20

// FileID is an opaque 20-byte content hash. It has no numeric meaning.
type FileID [FileIDLen]byte

// FileIDFromRaw copies exactly [FileIDLen] bytes into a [FileID].
func FileIDFromRaw(b []byte) (FileID, error) {
	var f FileID
	if len(b) != FileIDLen {
		return f, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(b), FileIDLen)
	}
	copy(f[:], b)
	return f, nil
}

// ParseFileID decodes the 40 character hex rendering produced by [FileID.ToBase16].
func ParseFileID(s string) (FileID, error) {
	var f FileID
	if len(s) != 2*FileIDLen {
		return f, fmt.Errorf("%w: got %d characters, want %d", ErrInvalidLength, len(s), 2*FileIDLen)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return f, fmt.Errorf("%w: %v", ErrInvalidDigit, err)
	}
	copy(f[:], b)
	return f, nil
}

// ToBase16 renders every byte as two lowercase hex digits, 40 characters in total.
func (f FileID) ToBase16() string {
	return hex.EncodeToString(f[:])
}

// Compare orders file ids byte-wise.
func (f FileID) Compare(other FileID) int {
	return bytes.Compare(f[:], other[:])
}

func (f FileID) String() string { return f.ToBase16() }

func (f FileID) GoString() string {
	return "spotifyid.FileID{" + f.ToBase16() + "}"
}

func (f FileID) MarshalText() ([]byte, error) {
	return []byte(f.ToBase16()), nil
}
