package response

import (
	"time"

	"solar-shop/internal/data/entity"
)

type BlogPostResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ImageURL   string    `json:"imageUrl"`
	AuthorID   int64     `json:"authorId"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func BlogPostToResponse(post *entity.BlogPost) BlogPostResponse {
	return BlogPostResponse{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		ImageURL:   post.ImageURL,
		AuthorID:   post.AuthorID,
		IsApproved: post.IsApproved,
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
	}
}

func BlogPostsToResponse(posts []*entity.BlogPost) []BlogPostResponse {
	responses := make([]BlogPostResponse, len(posts))
	for i, post := range posts {
		responses[i] = BlogPostToResponse(post)
	}
	return responses
}
