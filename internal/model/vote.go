package model

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

type Vote struct {
	ID        int64              `json:"id"`
	PostID    int64              `json:"post_id"`
	UserID    int64              `json:"user_id"`
	Value     int16              `json:"value"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

const (
	VoteValueUp   int16 = 1
	VoteValueDown int16 = -1
)

type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

func (d VoteDirection) IsValid() error {
	switch d {
	case VoteUp, VoteDown:
		return nil
	}
	return fmt.Errorf("invalid vote direction: %s", d)
}

func (d VoteDirection) Value() int16 {
	if d == VoteDown {
		return VoteValueDown
	}
	return VoteValueUp
}

// VoteSummary is what a vote mutation reports back to the caller: fresh
// tallies plus the caller's own vote state after the toggle.
type VoteSummary struct {
	Upvotes      int64 `json:"upvotes"`
	Downvotes    int64 `json:"downvotes"`
	HasUpvoted   bool  `json:"hasUpvoted"`
	HasDownvoted bool  `json:"hasDownvoted"`
}

type VoteCounts struct {
	Upvotes   int64
	Downvotes int64
}
