package repository

import (
	"context"
	"fmt"

	"solar-shop/internal/data/entity"
	"solar-shop/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type NewsletterRepository interface {
	// Subscribe deduplicates by email: re-subscribing returns the existing row.
	Subscribe(ctx context.Context, subscription *entity.NewsletterSubscription) error
	FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscription, error)
	FindAll(ctx context.Context) ([]*entity.NewsletterSubscription, error)
}

type newsletterRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewNewsletterRepository(db database.PgxIface, log *zap.Logger) NewsletterRepository {
	return &newsletterRepository{
		db:  db,
		log: log.With(zap.String("repository", "newsletter")),
	}
}

func (r *newsletterRepository) Subscribe(ctx context.Context, subscription *entity.NewsletterSubscription) error {
	existing, err := r.FindByEmail(ctx, subscription.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		*subscription = *existing
		return nil
	}

	query := `
		INSERT INTO newsletter_subscriptions (email, created_at)
		VALUES ($1, $2)
		RETURNING id
	`

	err = r.db.QueryRow(ctx, query,
		subscription.Email,
		subscription.CreatedAt,
	).Scan(&subscription.ID)

	if err != nil {
		r.log.Error("Failed to create newsletter subscription",
			zap.Error(err),
			zap.String("email", subscription.Email),
		)
		return fmt.Errorf("create newsletter subscription: %w", err)
	}

	return nil
}

func (r *newsletterRepository) FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscription, error) {
	query := `
		SELECT id, email, created_at
		FROM newsletter_subscriptions
		WHERE email = $1
	`

	var subscription entity.NewsletterSubscription
	err := r.db.QueryRow(ctx, query, email).Scan(
		&subscription.ID,
		&subscription.Email,
		&subscription.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find newsletter subscription",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find newsletter subscription %s: %w", email, err)
	}

	return &subscription, nil
}

func (r *newsletterRepository) FindAll(ctx context.Context) ([]*entity.NewsletterSubscription, error) {
	query := `
		SELECT id, email, created_at
		FROM newsletter_subscriptions
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get newsletter subscriptions", zap.Error(err))
		return nil, fmt.Errorf("find all newsletter subscriptions: %w", err)
	}
	defer rows.Close()

	var subscriptions []*entity.NewsletterSubscription
	for rows.Next() {
		var subscription entity.NewsletterSubscription
		err := rows.Scan(
			&subscription.ID,
			&subscription.Email,
			&subscription.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan newsletter subscription row", zap.Error(err))
			return nil, fmt.Errorf("scan newsletter subscription row: %w", err)
		}
		subscriptions = append(subscriptions, &subscription)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate newsletter subscriptions rows: %w", err)
	}

	return subscriptions, nil
}
