package model

import "github.com/jackc/pgx/v5/pgtype"

type PostImage struct {
	ID        int64              `json:"id"`
	PostID    int64              `json:"post_id"`
	URL       string             `json:"url"`
	Position  int32              `json:"position"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type PostImageInput struct {
	URL      string `json:"url"`
	Position int32  `json:"position"`
}
