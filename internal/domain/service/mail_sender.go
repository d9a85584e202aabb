package service

import "context"

// MailSender delivers one-time codes to an account's email address.
// Implementations talk to an external transport and must be treated as fallible;
// no retries happen at this layer.
type MailSender interface {
	// SendActivationCode delivers the account activation code.
	SendActivationCode(ctx context.Context, email, code string) error

	// SendResetCode delivers the password reset code.
	SendResetCode(ctx context.Context, email, code string) error
}
