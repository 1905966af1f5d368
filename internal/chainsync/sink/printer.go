package sink

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
)

// Printer writes one "Block N: <json>" line per record. It persists nothing.
type Printer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewPrinter constructs a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Put prints records in the given order.
func (p *Printer) Put(_ context.Context, records ...model.BlockRecord) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, record := range records {
		data, err := marshalPayload(compactJSON, record.Payload)
		if err != nil {
			return fmt.Errorf("print block %d: %w", record.Position, err)
		}
		if _, err := fmt.Fprintf(p.out, "Block %d: %s\n", record.Position, data); err != nil {
			return fmt.Errorf("print block %d: %w", record.Position, err)
		}
	}
	return nil
}

// Rollback prints the rollback point.
func (p *Printer) Rollback(_ context.Context, from uint64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := fmt.Fprintf(p.out, "Rollback from block %d\n", from); err != nil {
		return fmt.Errorf("print rollback: %w", err)
	}
	return nil
}

func (p *Printer) Close() error {
	return nil
}
