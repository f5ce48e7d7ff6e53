package response

import (
	"time"

	"solar-shop/internal/data/entity"
)

type ContactResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone,omitempty"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	IsResolved bool      `json:"isResolved"`
	CreatedAt  time.Time `json:"createdAt"`
}

func ContactToResponse(submission *entity.ContactSubmission) ContactResponse {
	return ContactResponse{
		ID:         submission.ID,
		Name:       submission.Name,
		Email:      submission.Email,
		Phone:      submission.Phone,
		Subject:    submission.Subject,
		Message:    submission.Message,
		IsResolved: submission.IsResolved,
		CreatedAt:  submission.CreatedAt,
	}
}

func ContactsToResponse(submissions []*entity.ContactSubmission) []ContactResponse {
	responses := make([]ContactResponse, len(submissions))
	for i, submission := range submissions {
		responses[i] = ContactToResponse(submission)
	}
	return responses
}

type NewsletterResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewsletterToResponse(subscription *entity.NewsletterSubscription) NewsletterResponse {
	return NewsletterResponse{
		ID:        subscription.ID,
		Email:     subscription.Email,
		CreatedAt: subscription.CreatedAt,
	}
}

func NewslettersToResponse(subscriptions []*entity.NewsletterSubscription) []NewsletterResponse {
	responses := make([]NewsletterResponse, len(subscriptions))
	for i, subscription := range subscriptions {
		responses[i] = NewsletterToResponse(subscription)
	}
	return responses
}
