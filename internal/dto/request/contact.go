package request

type ContactRequest struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Subject string  `json:"subject" validate:"max=200"`
	Message string  `json:"message" validate:"required"`
}

type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}
