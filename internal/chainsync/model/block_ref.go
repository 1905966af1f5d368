package model

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// BlockRef identifies a block by chain position (slot) and hash.
type BlockRef struct {
	position uint64
	hash     []byte
}

// NewBlockRef builds a reference; the hash is copied.
func NewBlockRef(position uint64, hash []byte) BlockRef {
	return BlockRef{position: position, hash: bytes.Clone(hash)}
}

// ParseBlockRef parses the "<position>-<hex hash>" form.
func ParseBlockRef(text string) (BlockRef, error) {
	positionPart, hashPart, found := strings.Cut(text, "-")
	if !found {
		return BlockRef{}, fmt.Errorf("parse block reference %q: %w", text, ErrMalformedReference)
	}

	position, err := strconv.ParseUint(positionPart, 10, 64)
	if err != nil {
		return BlockRef{}, fmt.Errorf("parse block reference %q: %w: %q", text, ErrInvalidPosition, positionPart)
	}

	hash, err := hex.DecodeString(hashPart)
	if err != nil {
		return BlockRef{}, fmt.Errorf("parse block reference %q: %w: %v", text, ErrInvalidHash, err)
	}
	if len(hash) == 0 {
		return BlockRef{}, fmt.Errorf("parse block reference %q: %w: empty hash", text, ErrInvalidHash)
	}

	return BlockRef{position: position, hash: hash}, nil
}

// ParseBlockRefs parses every entry and reports the index of the first bad one.
func ParseBlockRefs(texts []string) ([]BlockRef, error) {
	refs := make([]BlockRef, 0, len(texts))
	for i, text := range texts {
		ref, err := ParseBlockRef(text)
		if err != nil {
			return nil, fmt.Errorf("reference #%d: %w", i, err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// Position returns the chain position (slot for Cardano).
func (r BlockRef) Position() uint64 {
	return r.position
}

// Hash returns a copy of the block hash.
func (r BlockRef) Hash() []byte {
	return bytes.Clone(r.hash)
}

// IsZero reports whether the reference was never set.
func (r BlockRef) IsZero() bool {
	return r.position == 0 && len(r.hash) == 0
}

// Equal compares position and hash.
func (r BlockRef) Equal(other BlockRef) bool {
	return r.position == other.position && bytes.Equal(r.hash, other.hash)
}

// String formats the reference back into "<position>-<hex hash>".
func (r BlockRef) String() string {
	return strconv.FormatUint(r.position, 10) + "-" + hex.EncodeToString(r.hash)
}
