package model

import "google.golang.org/protobuf/proto"

// ChainTag identifies the chain variant of a block payload.
type ChainTag string

const (
	ChainUnknown ChainTag = "unknown"
	ChainCardano ChainTag = "cardano"
)

// BlockRecord is a decoded block ready for a sink.
type BlockRecord struct {
	Position uint64
	Hash     []byte
	Height   uint64
	Chain    ChainTag
	Payload  proto.Message
}

// Ref returns the reference of the record.
func (r BlockRecord) Ref() BlockRef {
	return NewBlockRef(r.Position, r.Hash)
}
