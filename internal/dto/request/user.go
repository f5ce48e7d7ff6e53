package request

// UserUpdateRequest is the admin-side user edit. Only these fields can be
// changed; username is immutable.
type UserUpdateRequest struct {
	FullName *string `json:"fullName,omitempty" validate:"omitempty,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=super_admin sales_manager blog_editor accountant customer"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// ProfileUpdateRequest is the self-service profile edit.
type ProfileUpdateRequest struct {
	FullName *string `json:"fullName,omitempty" validate:"omitempty,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}
