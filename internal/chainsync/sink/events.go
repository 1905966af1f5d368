package sink

import (
	"context"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
	"go.uber.org/zap"
)

// EventWriter applies follow events to a RecordSink.
type EventWriter struct {
	sink   RecordSink
	logger *zap.Logger
}

// NewEventWriter constructs an EventWriter.
func NewEventWriter(sink RecordSink, logger *zap.Logger) (*EventWriter, error) {
	if sink == nil {
		return nil, fmt.Errorf("record sink is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventWriter{sink: sink, logger: logger}, nil
}

// HandleEvent stores applied blocks and removes what an undo or reset orphaned.
func (w *EventWriter) HandleEvent(ctx context.Context, event model.Event) error {
	switch event.Kind {
	case model.EventApplied:
		if event.Record == nil {
			return fmt.Errorf("applied event #%d has no record", event.Index)
		}
		if err := w.sink.Put(ctx, *event.Record); err != nil {
			return fmt.Errorf("store block %d: %w", event.Record.Position, err)
		}
		return nil

	case model.EventUndone:
		if event.Record == nil {
			return fmt.Errorf("undone event #%d has no record", event.Index)
		}
		from := event.Record.Position
		if event.Tip != nil {
			if event.Tip.Position() == math.MaxUint64 {
				return nil
			}
			from = event.Tip.Position() + 1
		}
		return w.rollback(ctx, from)

	case model.EventReset:
		if event.Ref == nil {
			return fmt.Errorf("reset event #%d has no reference", event.Index)
		}
		if event.Ref.Position() == math.MaxUint64 {
			return nil
		}
		return w.rollback(ctx, event.Ref.Position()+1)

	default:
		return fmt.Errorf("event #%d has unknown kind %q", event.Index, event.Kind)
	}
}

func (w *EventWriter) rollback(ctx context.Context, from uint64) error {
	if err := w.sink.Rollback(ctx, from); err != nil {
		return fmt.Errorf("roll back from %d: %w", from, err)
	}
	return nil
}

// HandleDecodeError logs the skipped item.
func (w *EventWriter) HandleDecodeError(_ context.Context, err *model.DecodeError) {
	w.logger.Warn("follow item skipped", zap.Error(err))
}

// EventPrinter writes a line per follow event.
type EventPrinter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewEventPrinter constructs an EventPrinter writing to out.
func NewEventPrinter(out io.Writer) *EventPrinter {
	return &EventPrinter{out: out}
}

func (p *EventPrinter) HandleEvent(_ context.Context, event model.Event) error {
	var line string
	switch event.Kind {
	case model.EventApplied, model.EventUndone:
		if event.Record == nil {
			return fmt.Errorf("%s event #%d has no record", event.Kind, event.Index)
		}
		data, err := marshalPayload(compactJSON, event.Record.Payload)
		if err != nil {
			return fmt.Errorf("print %s event #%d: %w", event.Kind, event.Index, err)
		}
		prefix := "Apply this block"
		if event.Kind == model.EventUndone {
			prefix = "Undo this block"
		}
		line = fmt.Sprintf("%s: %s\n", prefix, data)
	case model.EventReset:
		if event.Ref == nil {
			return fmt.Errorf("reset event #%d has no reference", event.Index)
		}
		line = fmt.Sprintf("Reset to this block reference: %s\n", event.Ref)
	default:
		return fmt.Errorf("event #%d has unknown kind %q", event.Index, event.Kind)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, err := io.WriteString(p.out, line); err != nil {
		return fmt.Errorf("print %s event #%d: %w", event.Kind, event.Index, err)
	}
	return nil
}

func (p *EventPrinter) HandleDecodeError(_ context.Context, err *model.DecodeError) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, "Skip malformed item: %v\n", err)
}
