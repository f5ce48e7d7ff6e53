package request

type RegisterRequest struct {
	Username        string  `json:"username" validate:"required,min=3,max=50"`
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required,min=6"`
	ConfirmPassword string  `json:"confirmPassword" validate:"required,eqfield=Password"`
	FullName        string  `json:"fullName" validate:"required,max=100"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
}

type LoginRequest struct {
	// Identifier is a username or an email; "@" decides which lookup runs.
	Identifier string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
}
