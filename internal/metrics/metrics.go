package metrics

import "time"

// Provider abstracts metric recording so services and repositories stay
// decoupled from the prometheus client.
type Provider interface {
	IncrementHTTPRequests(method, path, status string)
	RecordHTTPRequestDuration(method, path string, duration time.Duration)

	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)

	IncrementCacheHits()
	IncrementCacheMisses()
	RecordCacheOperationDuration(operation string, duration time.Duration)

	IncrementFeedRequests(tab string, success bool)
	IncrementVoteOperations(direction string, success bool)
	IncrementPostOperations(operation string, success bool)

	SetServiceHealth(healthy bool)
}
