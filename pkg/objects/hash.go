package objects

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// ObjectHash is the SHA-1 content address of an object, as a 40-character
// lowercase hex string.
type ObjectHash string

const (
	// HashLength is the length of a full SHA-1 hash in hex characters.
	HashLength = 40

	// ShortHashLength is the length used when abbreviating hashes for display.
	ShortHashLength = 8

	// RawHashLength is the length of a SHA-1 hash in bytes.
	RawHashLength = 20
)

// NewObjectHash computes the hash of the given (framed) byte sequence.
func NewObjectHash(data []byte) ObjectHash {
	sum := sha1.Sum(data)
	return ObjectHash(hex.EncodeToString(sum[:]))
}

// HashFrame computes the content-address for a type/content pair.
func HashFrame(t ObjectType, content []byte) ObjectHash {
	return NewObjectHash(Frame(t, content))
}

// ParseObjectHash validates a hex string as an object hash.
func ParseObjectHash(s string) (ObjectHash, error) {
	h := ObjectHash(s)
	if err := h.Validate(); err != nil {
		return "", err
	}
	return h, nil
}

// String returns the hash as a string.
func (h ObjectHash) String() string {
	return string(h)
}

// Validate checks that the hash is exactly 40 lowercase hex characters.
func (h ObjectHash) Validate() error {
	if len(h) != HashLength {
		return fmt.Errorf("hash must be %d characters long, got %d", HashLength, len(h))
	}
	for _, c := range h {
		if !isHexChar(c) {
			return fmt.Errorf("hash must contain only lowercase hex characters, found %q", c)
		}
	}
	return nil
}

// IsValid reports whether this is a well-formed hash.
func (h ObjectHash) IsValid() bool {
	return h.Validate() == nil
}

// Short returns the abbreviated form used in command output.
func (h ObjectHash) Short() string {
	if len(h) >= ShortHashLength {
		return string(h[:ShortHashLength])
	}
	return string(h)
}

// Raw returns the hash decoded to its 20-byte form, as stored inside
// tree entries.
func (h ObjectHash) Raw() ([RawHashLength]byte, error) {
	var raw [RawHashLength]byte
	if err := h.Validate(); err != nil {
		return raw, err
	}
	decoded, err := hex.DecodeString(string(h))
	if err != nil {
		return raw, err
	}
	copy(raw[:], decoded)
	return raw, nil
}

func isHexChar(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}
