package usecase

import (
	"context"
	"fmt"
	"time"

	"solar-shop/internal/data/entity"
	"solar-shop/internal/data/repository"
	"solar-shop/internal/dto/request"
	"solar-shop/internal/dto/response"
	"solar-shop/pkg/utils"

	"go.uber.org/zap"
)

type BlogService interface {
	// GetPosts returns every post to write_blog holders and only approved
	// posts to everyone else.
	GetPosts(ctx context.Context, viewerRole entity.UserRole) ([]response.BlogPostResponse, error)
	GetPostByID(ctx context.Context, id int64, viewerRole entity.UserRole) (*response.BlogPostResponse, error)
	CreatePost(ctx context.Context, authorID int64, authorRole entity.UserRole, req *request.BlogPostRequest) (*response.BlogPostResponse, error)
	UpdatePost(ctx context.Context, id, actorID int64, actorRole entity.UserRole, req *request.BlogPostUpdateRequest) (*response.BlogPostResponse, error)
	DeletePost(ctx context.Context, id int64) error
}

type blogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBlogService(repo *repository.Repository, log *zap.Logger) BlogService {
	return &blogService{
		repo: repo,
		log:  log.With(zap.String("service", "blog")),
	}
}

func canSeeUnapproved(role entity.UserRole) bool {
	return entity.PermissionsFor(role).Has(entity.PermWriteBlog)
}

func (s *blogService) GetPosts(ctx context.Context, viewerRole entity.UserRole) ([]response.BlogPostResponse, error) {
	approvedOnly := !canSeeUnapproved(viewerRole)

	posts, err := s.repo.BlogPost.FindAll(ctx, approvedOnly)
	if err != nil {
		s.log.Error("Failed to get blog posts", zap.Error(err))
		return nil, fmt.Errorf("get blog posts: %w", err)
	}

	return response.BlogPostsToResponse(posts), nil
}

func (s *blogService) GetPostByID(ctx context.Context, id int64, viewerRole entity.UserRole) (*response.BlogPostResponse, error) {
	post, err := s.repo.BlogPost.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get blog post", zap.Error(err), zap.Int64("post_id", id))
		return nil, fmt.Errorf("get blog post: %w", err)
	}

	// An unapproved post is indistinguishable from a missing one for the
	// public.
	if post == nil || (!post.IsApproved && !canSeeUnapproved(viewerRole)) {
		return nil, fmt.Errorf("blog post not found")
	}

	resp := response.BlogPostToResponse(post)
	return &resp, nil
}

func (s *blogService) CreatePost(ctx context.Context, authorID int64, authorRole entity.UserRole, req *request.BlogPostRequest) (*response.BlogPostResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Blog post validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	post := &entity.BlogPost{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:      req.Title,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		AuthorID:   authorID,
		IsApproved: req.IsApproved,
	}

	// Editor posts always start unapproved, whatever the payload says.
	// Approval is a moderate_blog capability.
	if !entity.PermissionsFor(authorRole).Has(entity.PermModerateBlog) {
		post.IsApproved = false
	}

	if err := s.repo.BlogPost.Create(ctx, post); err != nil {
		s.log.Error("Failed to create blog post", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("failed to create blog post")
	}

	s.log.Info("Blog post created",
		zap.Int64("post_id", post.ID),
		zap.Int64("author_id", authorID),
		zap.Bool("is_approved", post.IsApproved))

	resp := response.BlogPostToResponse(post)
	return &resp, nil
}

func (s *blogService) UpdatePost(ctx context.Context, id, actorID int64, actorRole entity.UserRole, req *request.BlogPostUpdateRequest) (*response.BlogPostResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Blog post update validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	post, err := s.repo.BlogPost.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find blog post", zap.Error(err), zap.Int64("post_id", id))
		return nil, fmt.Errorf("failed to find blog post")
	}
	if post == nil {
		return nil, fmt.Errorf("blog post not found")
	}

	canModerate := entity.PermissionsFor(actorRole).Has(entity.PermModerateBlog)

	// Editors touch only their own posts and can never flip approval.
	if !canModerate && post.AuthorID != actorID {
		return nil, fmt.Errorf("forbidden")
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.ImageURL != nil {
		post.ImageURL = *req.ImageURL
	}
	if req.IsApproved != nil && canModerate {
		post.IsApproved = *req.IsApproved
	}
	post.UpdatedAt = time.Now()

	if err := s.repo.BlogPost.Update(ctx, post); err != nil {
		s.log.Error("Failed to update blog post", zap.Error(err), zap.Int64("post_id", id))
		return nil, fmt.Errorf("failed to update blog post")
	}

	resp := response.BlogPostToResponse(post)
	return &resp, nil
}

func (s *blogService) DeletePost(ctx context.Context, id int64) error {
	post, err := s.repo.BlogPost.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find blog post", zap.Error(err), zap.Int64("post_id", id))
		return fmt.Errorf("failed to find blog post")
	}
	if post == nil {
		return fmt.Errorf("blog post not found")
	}

	if err := s.repo.BlogPost.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete blog post", zap.Error(err), zap.Int64("post_id", id))
		return fmt.Errorf("failed to delete blog post")
	}

	s.log.Info("Blog post deleted", zap.Int64("post_id", id))
	return nil
}
