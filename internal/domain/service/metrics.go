package service

// Contact rejection reasons reported to MetricsRecorder.
const (
	RejectionInsufficientCredits = "insufficient_credits"
	RejectionAlreadyClaimed      = "already_claimed"
)

// Import row results reported to MetricsRecorder.
const (
	ImportRowImported = "imported"
	ImportRowSkipped  = "skipped"
	ImportRowFailed   = "failed"
)

// MetricsRecorder records business counters for the ledger, leads and imports.
type MetricsRecorder interface {
	CreditsPurchased(credits int)
	CreditConsumed()
	ContactRejected(reason string)
	LeadCreated()
	ImportRow(result string)
}
