package model

type UpdatePostDTO struct {
	Headline    *string           `json:"headline,omitempty"`
	Description *string           `json:"description,omitempty"`
	SponsorName *string           `json:"sponsor_name,omitempty"`
	ButtonText  *string           `json:"button_text,omitempty"`
	ButtonURL   *string           `json:"button_url,omitempty"`
	Images      []*PostImageInput `json:"images,omitempty"`
}
