package model

type CreatePostDTO struct {
	AuthorID    int64             `json:"author_id"`
	Category    PostCategory      `json:"category"`
	Headline    string            `json:"headline"`
	Description *string           `json:"description,omitempty"`
	Pincode     string            `json:"pincode"`
	SponsorName *string           `json:"sponsor_name,omitempty"`
	ButtonText  *string           `json:"button_text,omitempty"`
	ButtonURL   *string           `json:"button_url,omitempty"`
	Images      []*PostImageInput `json:"images,omitempty"`
}
