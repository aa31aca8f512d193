package undo

import (
	"time"

	"go.uber.org/zap"
)

// DefaultBatchWindow is the longest pause between two edits that still
// merge into one record.
const DefaultBatchWindow = time.Second

type Options struct {
	// MaxHistorySize caps the number of records. Zero or negative keeps
	// every record; use SetMaxHistorySize(0) to keep none.
	MaxHistorySize int

	// BatchWindow defaults to DefaultBatchWindow. A negative window
	// disables batching.
	BatchWindow time.Duration

	// Now defaults to time.Now.
	Now func() time.Time

	// Logger defaults to a no-op logger.
	Logger *zap.Logger

	// OnStateChange is called after every change to the history or to the
	// composition state. It runs synchronously, after internal locks are
	// released.
	OnStateChange func()
}

func (o Options) withDefaults() Options {
	if o.BatchWindow == 0 {
		o.BatchWindow = DefaultBatchWindow
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

func (o Options) maxSize() int {
	if o.MaxHistorySize <= 0 {
		return -1
	}
	return o.MaxHistorySize
}
