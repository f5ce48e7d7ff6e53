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

// ContactService covers both write-only inbox sinks: contact submissions and
// newsletter subscriptions.
type ContactService interface {
	SubmitContact(ctx context.Context, req *request.ContactRequest) (*response.ContactResponse, error)
	GetContactSubmissions(ctx context.Context) ([]response.ContactResponse, error)
	ResolveContactSubmission(ctx context.Context, id int64) error
	SubscribeNewsletter(ctx context.Context, req *request.NewsletterRequest) (*response.NewsletterResponse, error)
	GetNewsletterSubscriptions(ctx context.Context) ([]response.NewsletterResponse, error)
}

type contactService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewContactService(repo *repository.Repository, log *zap.Logger) ContactService {
	return &contactService{
		repo: repo,
		log:  log.With(zap.String("service", "contact")),
	}
}

func (s *contactService) SubmitContact(ctx context.Context, req *request.ContactRequest) (*response.ContactResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Contact validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	submission := &entity.ContactSubmission{
		BaseSimple: entity.BaseSimple{CreatedAt: time.Now()},
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Subject:    req.Subject,
		Message:    req.Message,
	}

	if err := s.repo.Contact.Create(ctx, submission); err != nil {
		s.log.Error("Failed to create contact submission", zap.Error(err))
		return nil, fmt.Errorf("failed to submit contact form")
	}

	s.log.Info("Contact submission received",
		zap.Int64("id", submission.ID),
		zap.String("email", submission.Email))

	resp := response.ContactToResponse(submission)
	return &resp, nil
}

func (s *contactService) GetContactSubmissions(ctx context.Context) ([]response.ContactResponse, error) {
	submissions, err := s.repo.Contact.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get contact submissions", zap.Error(err))
		return nil, fmt.Errorf("get contact submissions: %w", err)
	}

	return response.ContactsToResponse(submissions), nil
}

func (s *contactService) ResolveContactSubmission(ctx context.Context, id int64) error {
	if err := s.repo.Contact.MarkResolved(ctx, id); err != nil {
		s.log.Error("Failed to resolve contact submission", zap.Error(err), zap.Int64("id", id))
		return fmt.Errorf("contact submission not found")
	}

	return nil
}

func (s *contactService) SubscribeNewsletter(ctx context.Context, req *request.NewsletterRequest) (*response.NewsletterResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Newsletter validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	subscription := &entity.NewsletterSubscription{
		BaseSimple: entity.BaseSimple{CreatedAt: time.Now()},
		Email:      req.Email,
	}

	// Subscribe is idempotent per email; re-subscribing returns the
	// existing record.
	if err := s.repo.Newsletter.Subscribe(ctx, subscription); err != nil {
		s.log.Error("Failed to subscribe to newsletter", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to subscribe")
	}

	resp := response.NewsletterToResponse(subscription)
	return &resp, nil
}

func (s *contactService) GetNewsletterSubscriptions(ctx context.Context) ([]response.NewsletterResponse, error) {
	subscriptions, err := s.repo.Newsletter.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get newsletter subscriptions", zap.Error(err))
		return nil, fmt.Errorf("get newsletter subscriptions: %w", err)
	}

	return response.NewslettersToResponse(subscriptions), nil
}
