package core

// Operation outcomes reported to Metrics
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics records ledger activity for monitoring
type Metrics interface {
	// ObserveOperation records one finished operation, its outcome and latency
	ObserveOperation(operation, outcome string, elapsed Duration)
	// IncRetry counts a unit of work re-run after a lock conflict
	IncRetry(operation string)
	// IncPublishFailure counts a ledger event that could not be published
	IncPublishFailure()
}
