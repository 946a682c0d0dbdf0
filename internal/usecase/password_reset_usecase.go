package usecase

import "context"

// ResetPasswordInput defines the form submitted from a reset link.
type ResetPasswordInput struct {
	Token           string
	Password        string
	ConfirmPassword string
}

// PasswordResetUsecase issues and redeems password reset links.
type PasswordResetUsecase interface {
	// RequestPasswordReset returns a signed token for the account's email.
	RequestPasswordReset(ctx context.Context, email string) (string, error)

	// VerifyResetToken returns the email bound to a still valid token.
	VerifyResetToken(ctx context.Context, token string) (string, error)

	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
