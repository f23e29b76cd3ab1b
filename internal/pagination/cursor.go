// Package pagination implements opaque value-based cursors over the two
// feed ordering disciplines. A cursor encodes the ordering key of the last
// row returned, so pages stay gap-free and duplicate-free even when new
// posts are inserted between fetches.
package pagination

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/model"
)

type Cursor struct {
	Order     model.FeedOrder `json:"o"`
	HotScore  *float64        `json:"h,omitempty"`
	CreatedAt time.Time       `json:"t"`
	ID        int64           `json:"i"`
}

// FromPost derives the cursor pointing just past the given post under the
// given ordering discipline.
func FromPost(post *model.Post, order model.FeedOrder) Cursor {
	c := Cursor{
		Order:     order,
		CreatedAt: post.CreatedAt.Time.UTC(),
		ID:        post.ID,
	}
	if order == model.OrderHot {
		score := post.HotScore
		c.HotScore = &score
	}
	return c
}

func Encode(c Cursor) string {
	raw, err := json.Marshal(c)
	if err != nil {
		// Cursor fields are plain scalars, marshalling cannot fail.
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Decode parses an opaque token and checks it against the ordering
// discipline of the current request. A token minted for one discipline is
// meaningless under the other and is rejected rather than ignored.
func Decode(token string, want model.FeedOrder) (*Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, custom_errors.ErrInvalidCursor
	}

	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, custom_errors.ErrInvalidCursor
	}

	if c.Order != want {
		return nil, custom_errors.ErrInvalidCursor
	}
	if c.Order == model.OrderHot && c.HotScore == nil {
		return nil, custom_errors.ErrInvalidCursor
	}
	if c.CreatedAt.IsZero() || c.ID <= 0 {
		return nil, custom_errors.ErrInvalidCursor
	}

	return &c, nil
}

// ClampLimit normalizes a client-supplied page size. Zero or negative falls
// back to the default, anything past max is clamped, not rejected.
func ClampLimit(requested, def, max int) int {
	if requested <= 0 {
		return def
	}
	if requested > max {
		return max
	}
	return requested
}
