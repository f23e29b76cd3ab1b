package model

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

type Post struct {
	ID           int64              `json:"id"`
	AuthorID     int64              `json:"author_id"`
	Category     PostCategory       `json:"category"`
	Headline     string             `json:"headline"`
	Description  *string            `json:"description,omitempty"`
	Pincode      string             `json:"pincode"`
	HotScore     float64            `json:"hot_score"`
	IsAdApproved bool               `json:"is_ad_approved"`
	SponsorName  *string            `json:"sponsor_name,omitempty"`
	ButtonText   *string            `json:"button_text,omitempty"`
	ButtonURL    *string            `json:"button_url,omitempty"`
	Upvotes      int64              `json:"upvotes"`
	Downvotes    int64              `json:"downvotes"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type PostCategory string

const (
	CategoryNews          PostCategory = "NEWS"
	CategoryUpdate        PostCategory = "UPDATE"
	CategoryProblem       PostCategory = "PROBLEM"
	CategoryAdvertisement PostCategory = "ADVERTISEMENT"
)

func (c PostCategory) IsValid() error {
	switch c {
	case CategoryNews, CategoryUpdate, CategoryProblem, CategoryAdvertisement:
		return nil
	}
	return fmt.Errorf("invalid post category: %s", c)
}

func (c *PostCategory) UnmarshalText(text []byte) error {
	pc := PostCategory(text)
	if err := pc.IsValid(); err != nil {
		return err
	}
	*c = pc
	return nil
}
