package model

import "github.com/jackc/pgx/v5/pgtype"

type Report struct {
	ID        int64              `json:"id"`
	PostID    int64              `json:"post_id"`
	UserID    int64              `json:"user_id"`
	Reason    *string            `json:"reason,omitempty"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}
