package recorder

// NoopRecorder discards all events.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordQuote(_ *QuoteEvent) error         { return nil }
func (n *NoopRecorder) RecordRejection(_ *RejectionEvent) error { return nil }
func (n *NoopRecorder) Close() error                            { return nil }
