package metrics

import "time"

// NoopProvider satisfies Provider without recording anything. Used in tests
// and anywhere metrics are not wired.
type NoopProvider struct{}

func NewNoopProvider() Provider { return &NoopProvider{} }

func (NoopProvider) IncrementHTTPRequests(method, path, status string)                    {}
func (NoopProvider) RecordHTTPRequestDuration(method, path string, d time.Duration)       {}
func (NoopProvider) IncrementDatabaseQueries(queryType string, success bool)              {}
func (NoopProvider) RecordDatabaseQueryDuration(queryType string, duration time.Duration) {}
func (NoopProvider) IncrementCacheHits()                                                  {}
func (NoopProvider) IncrementCacheMisses()                                                {}
func (NoopProvider) RecordCacheOperationDuration(operation string, duration time.Duration) {
}
func (NoopProvider) IncrementFeedRequests(tab string, success bool)        {}
func (NoopProvider) IncrementVoteOperations(direction string, success bool) {}
func (NoopProvider) IncrementPostOperations(operation string, success bool) {}
func (NoopProvider) SetServiceHealth(healthy bool)                          {}
