package sink

import (
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
	cardanopb "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

func record(position uint64) model.BlockRecord {
	hash := []byte{byte(position)}
	return model.BlockRecord{
		Position: position,
		Hash:     hash,
		Height:   position / 2,
		Chain:    model.ChainCardano,
		Payload: &cardanopb.Block{
			Header: &cardanopb.BlockHeader{Slot: position, Hash: hash, Height: position / 2},
		},
	}
}

func refPtr(position uint64) *model.BlockRef {
	ref := model.NewBlockRef(position, []byte{byte(position)})
	return &ref
}
