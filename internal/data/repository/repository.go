package repository

import (
	"solar-shop/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Session    SessionRepository
	Product    ProductRepository
	BlogPost   BlogPostRepository
	Order      OrderRepository
	Contact    ContactRepository
	Newsletter NewsletterRepository
	Settings   SettingsRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Session:    NewSessionRepository(db, log),
		Product:    NewProductRepository(db, log),
		BlogPost:   NewBlogPostRepository(db, log),
		Order:      NewOrderRepository(db, log),
		Contact:    NewContactRepository(db, log),
		Newsletter: NewNewsletterRepository(db, log),
		Settings:   NewSettingsRepository(db, log),
	}
}
