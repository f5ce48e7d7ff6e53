package repository

import (
	"context"
	"fmt"

	"solar-shop/internal/data/entity"
	"solar-shop/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BlogPostRepository interface {
	Create(ctx context.Context, post *entity.BlogPost) error
	FindByID(ctx context.Context, id int64) (*entity.BlogPost, error)
	FindAll(ctx context.Context, approvedOnly bool) ([]*entity.BlogPost, error)
	Update(ctx context.Context, post *entity.BlogPost) error
	Delete(ctx context.Context, id int64) error
}

type blogPostRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBlogPostRepository(db database.PgxIface, log *zap.Logger) BlogPostRepository {
	return &blogPostRepository{
		db:  db,
		log: log.With(zap.String("repository", "blog_post")),
	}
}

func (r *blogPostRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	query := `
		INSERT INTO blog_posts (title, content, image_url, author_id, is_approved,
		                        created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		post.Title,
		post.Content,
		post.ImageURL,
		post.AuthorID,
		post.IsApproved,
		post.CreatedAt,
		post.UpdatedAt,
	).Scan(&post.ID)

	if err != nil {
		r.log.Error("Failed to create blog post",
			zap.Error(err),
			zap.String("title", post.Title),
			zap.Int64("author_id", post.AuthorID),
		)
		return fmt.Errorf("create blog post %s: %w", post.Title, err)
	}

	return nil
}

func (r *blogPostRepository) FindByID(ctx context.Context, id int64) (*entity.BlogPost, error) {
	query := `
		SELECT id, title, content, image_url, author_id, is_approved,
		       created_at, updated_at
		FROM blog_posts
		WHERE id = $1
	`

	var post entity.BlogPost
	err := r.db.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.ImageURL,
		&post.AuthorID,
		&post.IsApproved,
		&post.CreatedAt,
		&post.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find blog post by ID",
			zap.Error(err),
			zap.Int64("post_id", id),
		)
		return nil, fmt.Errorf("find blog post by ID %d: %w", id, err)
	}

	return &post, nil
}

func (r *blogPostRepository) FindAll(ctx context.Context, approvedOnly bool) ([]*entity.BlogPost, error) {
	query := `
		SELECT id, title, content, image_url, author_id, is_approved,
		       created_at, updated_at
		FROM blog_posts
	`
	if approvedOnly {
		query += ` WHERE is_approved = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get blog posts", zap.Error(err))
		return nil, fmt.Errorf("find all blog posts: %w", err)
	}
	defer rows.Close()

	var posts []*entity.BlogPost
	for rows.Next() {
		var post entity.BlogPost
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.ImageURL,
			&post.AuthorID,
			&post.IsApproved,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan blog post row", zap.Error(err))
			return nil, fmt.Errorf("scan blog post row: %w", err)
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate blog posts rows: %w", err)
	}

	return posts, nil
}

func (r *blogPostRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET title = $2, content = $3, image_url = $4, is_approved = $5,
		    updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Content,
		post.ImageURL,
		post.IsApproved,
		post.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update blog post",
			zap.Error(err),
			zap.Int64("post_id", post.ID),
		)
		return fmt.Errorf("update blog post %d: %w", post.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blog post %d not found", post.ID)
	}

	return nil
}

func (r *blogPostRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM blog_posts WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete blog post",
			zap.Error(err),
			zap.Int64("id", id),
		)
		return fmt.Errorf("delete blog post %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blog post %d not found", id)
	}

	return nil
}
