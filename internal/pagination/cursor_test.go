package pagination

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/model"
)

func TestCursor_RoundTripNewest(t *testing.T) {
	post := &model.Post{
		ID:        42,
		CreatedAt: pgtype.Timestamptz{Time: time.Date(2024, 5, 20, 8, 15, 0, 0, time.UTC), Valid: true},
	}

	token := Encode(FromPost(post, model.OrderNewest))

	decoded, err := Decode(token, model.OrderNewest)
	require.NoError(t, err)
	assert.Equal(t, int64(42), decoded.ID)
	assert.True(t, decoded.CreatedAt.Equal(post.CreatedAt.Time))
	assert.Nil(t, decoded.HotScore)
}

func TestCursor_RoundTripHot(t *testing.T) {
	post := &model.Post{
		ID:        7,
		HotScore:  12959.8548323,
		CreatedAt: pgtype.Timestamptz{Time: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Valid: true},
	}

	token := Encode(FromPost(post, model.OrderHot))

	decoded, err := Decode(token, model.OrderHot)
	require.NoError(t, err)
	require.NotNil(t, decoded.HotScore)
	assert.Equal(t, post.HotScore, *decoded.HotScore)
	assert.Equal(t, int64(7), decoded.ID)
}

func TestCursor_DecodeErrors(t *testing.T) {
	newestToken := Encode(Cursor{Order: model.OrderNewest, CreatedAt: time.Now().UTC(), ID: 1})

	tests := []struct {
		name  string
		token string
		want  model.FeedOrder
	}{
		{"garbage token", "!!not-base64!!", model.OrderNewest},
		{"valid base64, not json", "aGVsbG8gd29ybGQ", model.OrderNewest},
		{"discipline mismatch", newestToken, model.OrderHot},
		{"empty token", "", model.OrderNewest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.token, tt.want)
			assert.ErrorIs(t, err, custom_errors.ErrInvalidCursor)
		})
	}
}

func TestCursor_HotTokenWithoutScoreRejected(t *testing.T) {
	token := Encode(Cursor{Order: model.OrderHot, CreatedAt: time.Now().UTC(), ID: 3})

	_, err := Decode(token, model.OrderHot)
	assert.ErrorIs(t, err, custom_errors.ErrInvalidCursor)
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{"zero falls back to default", 0, 20},
		{"negative falls back to default", -5, 20},
		{"within range passes through", 50, 50},
		{"over max clamps", 500, 100},
		{"exactly max passes through", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampLimit(tt.requested, 20, 100))
		})
	}
}
