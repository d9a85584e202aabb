// Package usecase defines the application's business operation interfaces and
// their input/output DTOs. Handlers depend on these, never on implementations.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"craftapp/internal/domain/entity"
)

// RegisterInput carries a registration request.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// ActivateInput carries an account activation request.
type ActivateInput struct {
	Email          string `json:"email" validate:"required,email"`
	ActivationCode string `json:"activation_code" validate:"required"`
}

// LoginInput carries a login request. Username holds the email, matching the
// OAuth2 password-grant form field names.
type LoginInput struct {
	Username string `form:"username" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// ForgotPasswordInput carries a reset-code request.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput carries a password reset confirmation.
type ResetPasswordInput struct {
	Email       string `json:"email" validate:"required,email"`
	ResetCode   string `json:"reset_code" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// UpdateAccountInput carries a partial account update; absent fields are left untouched.
type UpdateAccountInput struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

// UserOutput is the public view of an account. The password hash never leaves
// the application layer.
type UserOutput struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenOutput is the response to a successful login.
type TokenOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// NewUserOutput maps a domain user to its public view.
func NewUserOutput(user *entity.User) *UserOutput {
	return &UserOutput{
		ID:        user.ID,
		Email:     user.Email,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

// AccountUsecase orchestrates registration, activation, login, password reset
// and profile update.
type AccountUsecase interface {
	// Register creates an inactive account and emails its activation code.
	Register(ctx context.Context, input *RegisterInput) (*UserOutput, error)

	// Activate redeems an activation code, marking the account active.
	Activate(ctx context.Context, input *ActivateInput) error

	// Login verifies credentials and issues a bearer token.
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)

	// CurrentUser resolves a validated token subject to its account.
	CurrentUser(ctx context.Context, email string) (*UserOutput, error)

	// ForgotPassword stores and emails a reset code when the account exists.
	// It never discloses whether it does.
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error

	// ResetPassword redeems a reset code and replaces the password.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error

	// UpdateAccount applies a partial update to the authenticated account.
	UpdateAccount(ctx context.Context, email string, input *UpdateAccountInput) (*UserOutput, error)
}
