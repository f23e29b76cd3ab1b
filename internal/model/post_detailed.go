package model

type PostDetailed struct {
	Post   *Post        `json:"post,omitempty"`
	Images []*PostImage `json:"images,omitempty"`
	Votes  *VoteSummary `json:"votes,omitempty"`
}
