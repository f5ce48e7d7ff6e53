package repository

import (
	"context"
	"fmt"

	"solar-shop/internal/data/entity"
	"solar-shop/pkg/database"

	"go.uber.org/zap"
)

type ContactRepository interface {
	Create(ctx context.Context, submission *entity.ContactSubmission) error
	FindAll(ctx context.Context) ([]*entity.ContactSubmission, error)
	MarkResolved(ctx context.Context, id int64) error
}

type contactRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewContactRepository(db database.PgxIface, log *zap.Logger) ContactRepository {
	return &contactRepository{
		db:  db,
		log: log.With(zap.String("repository", "contact")),
	}
}

func (r *contactRepository) Create(ctx context.Context, submission *entity.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (name, email, phone, subject, message,
		                                 is_resolved, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		submission.Name,
		submission.Email,
		submission.Phone,
		submission.Subject,
		submission.Message,
		submission.CreatedAt,
	).Scan(&submission.ID)

	if err != nil {
		r.log.Error("Failed to create contact submission",
			zap.Error(err),
			zap.String("email", submission.Email),
		)
		return fmt.Errorf("create contact submission: %w", err)
	}

	return nil
}

func (r *contactRepository) FindAll(ctx context.Context) ([]*entity.ContactSubmission, error) {
	query := `
		SELECT id, name, email, phone, subject, message, is_resolved, created_at
		FROM contact_submissions
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get contact submissions", zap.Error(err))
		return nil, fmt.Errorf("find all contact submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*entity.ContactSubmission
	for rows.Next() {
		var submission entity.ContactSubmission
		err := rows.Scan(
			&submission.ID,
			&submission.Name,
			&submission.Email,
			&submission.Phone,
			&submission.Subject,
			&submission.Message,
			&submission.IsResolved,
			&submission.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan contact submission row", zap.Error(err))
			return nil, fmt.Errorf("scan contact submission row: %w", err)
		}
		submissions = append(submissions, &submission)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate contact submissions rows: %w", err)
	}

	return submissions, nil
}

func (r *contactRepository) MarkResolved(ctx context.Context, id int64) error {
	query := `UPDATE contact_submissions SET is_resolved = TRUE WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to resolve contact submission",
			zap.Error(err),
			zap.Int64("id", id),
		)
		return fmt.Errorf("resolve contact submission %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("contact submission %d not found", id)
	}

	return nil
}
