package service

import "time"

// ProcessorMetrics receives queue processing observations.
type ProcessorMetrics interface {
	// EntryFinished counts an entry leaving processing with the given status.
	EntryFinished(status string)
	// GatewayCall records one push gateway round trip.
	GatewayCall(duration time.Duration, err error)
	// TokenOutcomes counts per-token verdicts of one fan-out.
	TokenOutcomes(success, failure, deactivated int)
	// StaleRecovered counts entries returned by the stale sweep.
	StaleRecovered(requeued, failed int64)
	// QueueDepth publishes the latest per-status row counts.
	QueueDepth(counts map[string]int64)
}
