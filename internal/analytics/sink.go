// Package analytics provides pluggable sinks for affiliate click events. The
// ranking engine only constructs and stamps events; a sink owns persistence.
package analytics

import (
	"context"
	"fmt"

	"github.com/jonsiu/career-os-sub001/internal/db"
	"github.com/jonsiu/career-os-sub001/internal/types"
)

// Sink accepts stamped click events for storage.
type Sink interface {
	Record(ctx context.Context, event types.ClickEvent) error
	Close() error
}

// Sink kinds selectable via configuration.
const (
	KindPostgres = "postgres"
	KindQueue    = "queue"
	KindNop      = "nop"
)

// Config selects and configures a click sink.
type Config struct {
	Kind     string `json:"kind"` // postgres|queue|nop
	QueueURL string `json:"queue_url,omitempty"`
	Queue    string `json:"queue,omitempty"`
}

// New constructs a sink from its tagged configuration. An empty kind yields
// the no-op sink: click tracking is optional.
func New(cfg Config, database *db.DB) (Sink, error) {
	switch cfg.Kind {
	case KindPostgres:
		if database == nil {
			return nil, fmt.Errorf("postgres click sink requires a database connection")
		}
		return &PostgresSink{db: database}, nil
	case KindQueue:
		return NewQueueSink(cfg.QueueURL, cfg.Queue)
	case KindNop, "":
		return NopSink{}, nil
	default:
		return nil, fmt.Errorf("unknown click sink kind: %q", cfg.Kind)
	}
}

// NopSink discards click events.
type NopSink struct{}

// Record discards the event.
func (NopSink) Record(_ context.Context, _ types.ClickEvent) error { return nil }

// Close is a no-op.
func (NopSink) Close() error { return nil }

// PostgresSink stores click events in the click_events table.
type PostgresSink struct {
	db *db.DB
}

// Record inserts the event.
func (s *PostgresSink) Record(ctx context.Context, event types.ClickEvent) error {
	return s.db.InsertClickEvent(ctx, event)
}

// Close is a no-op; the pool is owned by the caller.
func (s *PostgresSink) Close() error { return nil }
