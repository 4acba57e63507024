package recorder

import "PackageExpress/internal/model"

// QuoteEvent holds a package that was priced successfully.
type QuoteEvent struct {
	Quote model.Quote
}

// RejectionEvent holds a package that failed validation.
type RejectionEvent struct {
	Outcome model.Outcome // TOO_HEAVY or TOO_BIG
	Package model.Package
	Message string
}

// Recorder receives the terminal event of each quoting session.
type Recorder interface {
	RecordQuote(evt *QuoteEvent) error
	RecordRejection(evt *RejectionEvent) error
	Close() error
}
