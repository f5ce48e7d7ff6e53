package request

type BlogPostRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"imageUrl"`
	// IsApproved is honored only for super_admin authors; editor posts always
	// start unapproved.
	IsApproved bool `json:"isApproved"`
}

type BlogPostUpdateRequest struct {
	Title      *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Content    *string `json:"content,omitempty"`
	ImageURL   *string `json:"imageUrl,omitempty"`
	IsApproved *bool   `json:"isApproved,omitempty"`
}
