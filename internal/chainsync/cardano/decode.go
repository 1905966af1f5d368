// Package cardano turns UTxO RPC chain blocks into block records.
package cardano

import (
	"errors"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
	syncpb "github.com/utxorpc/go-codegen/utxorpc/v1alpha/sync"
)

var (
	errMissingBlock  = errors.New("cardano block is empty")
	errMissingHeader = errors.New("cardano block has no header")
)

// Decode extracts a record from a Cardano block.
// ok is false for blocks of any other chain, which callers skip.
func Decode(block *syncpb.AnyChainBlock) (record model.BlockRecord, ok bool, err error) {
	if block == nil {
		return model.BlockRecord{}, false, nil
	}

	switch chain := block.GetChain().(type) {
	case *syncpb.AnyChainBlock_Cardano:
		cb := chain.Cardano
		if cb == nil {
			return model.BlockRecord{}, true, errMissingBlock
		}
		header := cb.GetHeader()
		if header == nil {
			return model.BlockRecord{}, true, errMissingHeader
		}
		return model.BlockRecord{
			Position: header.GetSlot(),
			Hash:     header.GetHash(),
			Height:   header.GetHeight(),
			Chain:    model.ChainCardano,
			Payload:  cb,
		}, true, nil
	default:
		return model.BlockRecord{}, false, nil
	}
}
