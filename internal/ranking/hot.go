// Package ranking implements the time-decayed popularity score used to
// order the Today feed. It is a pure function over vote tallies and the
// post's creation time and carries no storage concerns.
package ranking

import (
	"math"
	"time"
)

const (
	// epochOffsetSeconds anchors the decay term. Posts gain roughly one
	// order of magnitude of vote weight per 12.5 hours of age difference.
	epochOffsetSeconds = 1134028003
	decayDivisor       = 45000
	roundingPlaces     = 1e7
)

// ComputeHotScore blends the logarithmic, sign-preserving vote balance with
// linear time decay. The result is rounded to 7 decimal places so that the
// persisted score is bit-for-bit reproducible and sorts stably.
func ComputeHotScore(upvotes, downvotes int64, createdAt time.Time) float64 {
	score := upvotes - downvotes

	order := math.Log10(math.Max(math.Abs(float64(score)), 1))

	var sign float64
	switch {
	case score > 0:
		sign = 1
	case score < 0:
		sign = -1
	}

	seconds := float64(createdAt.Unix() - epochOffsetSeconds)

	return math.Round((sign*order+seconds/decayDivisor)*roundingPlaces) / roundingPlaces
}
