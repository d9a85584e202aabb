// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "craftapp/internal/delivery/context"
	domainerrors "craftapp/internal/domain/errors"
	"craftapp/internal/domain/entity"
	"craftapp/internal/domain/repository"
	"craftapp/internal/domain/service"
	"craftapp/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo   repository.UserRepository
	hasher     service.PasswordHasher
	tokens     service.TokenService
	codes      service.CodeGenerator
	mailSender service.MailSender
	logger     *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	Hasher     service.PasswordHasher
	Tokens     service.TokenService
	Codes      service.CodeGenerator
	MailSender service.MailSender
	Logger     *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:   params.UserRepo,
		hasher:     params.Hasher,
		tokens:     params.Tokens,
		codes:      params.Codes,
		mailSender: params.MailSender,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an inactive account and emails its activation code.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("registration rejected")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up email during registration")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	code, err := srv.codes.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate activation code")
	}

	user := &entity.User{
		Email:          input.Email,
		HashedPassword: hashedPassword,
		IsActive:       false,
		ActivationCode: &code,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	// The account exists either way; a lost activation email is recoverable
	// operationally, a rolled-back registration is confusing for the user.
	if err := srv.mailSender.SendActivationCode(ctx, user.Email, code); err != nil {
		srv.log(ctx).Error("Failed to send activation email", slog.String("email", user.Email), slog.Any("error", err))
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return usecase.NewUserOutput(user), nil
}

// Activate redeems an activation code, marking the account active.
func (srv *accountService) Activate(ctx context.Context, input *usecase.ActivateInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound.WrapMessage("activation rejected")
	}
	if err != nil {
		return errors.Wrap(err, "failed to look up user during activation")
	}

	if user.IsActive {
		return domainerrors.ErrAccountAlreadyActivated.WrapMessage("activation rejected")
	}

	if user.ActivationCode == nil || *user.ActivationCode != input.ActivationCode {
		srv.log(ctx).Warn("Activation code mismatch", slog.String("email", input.Email))

		return domainerrors.ErrInvalidActivationCode.WrapMessage("activation rejected")
	}

	user.IsActive = true
	user.ActivationCode = nil

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to persist activation")
	}

	srv.log(ctx).Info("Account activated", slog.Any("userID", user.ID))

	return nil
}

// Login verifies credentials and issues a bearer token with the account email
// as subject. Unknown user, wrong password and inactive account all map to
// 401; only the message differs for the latter.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login rejected")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up user during login")
	}

	if !srv.hasher.Check(input.Password, user.HashedPassword) {
		srv.log(ctx).Warn("Password mismatch during login", slog.String("email", input.Username))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login rejected")
	}

	if !user.IsActive {
		return nil, domainerrors.ErrAccountNotActivated.WrapMessage("login rejected")
	}

	token, err := srv.tokens.IssueToken(user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.TokenOutput{AccessToken: token, TokenType: "bearer"}, nil
}

// CurrentUser resolves a validated token subject to its account.
func (srv *accountService) CurrentUser(ctx context.Context, email string) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token subject unknown")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up token subject")
	}

	return usecase.NewUserOutput(user), nil
}

// ForgotPassword stores and emails a reset code when the account exists. The
// caller gets the same acknowledgment either way, so the response leaks
// nothing about which emails are registered.
func (srv *accountService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		// Even infrastructure failures stay behind the generic acknowledgment.
		srv.log(ctx).Error("Failed to look up user for password reset", slog.Any("error", err))

		return nil
	}

	code, err := srv.codes.Generate()
	if err != nil {
		srv.log(ctx).Error("Failed to generate reset code", slog.Any("error", err))

		return nil
	}

	user.ResetCode = &code
	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to store reset code", slog.Any("error", err))

		return nil
	}

	if err := srv.mailSender.SendResetCode(ctx, user.Email, code); err != nil {
		srv.log(ctx).Error("Failed to send reset email", slog.String("email", user.Email), slog.Any("error", err))
	}

	return nil
}

// ResetPassword redeems a reset code and replaces the password. A stale or
// consumed code fails identically to an unknown email.
func (srv *accountService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrInvalidResetCode.WrapMessage("reset rejected")
	}
	if err != nil {
		return errors.Wrap(err, "failed to look up user during password reset")
	}

	if user.ResetCode == nil || *user.ResetCode != input.ResetCode {
		srv.log(ctx).Warn("Reset code mismatch", slog.String("email", input.Email))

		return domainerrors.ErrInvalidResetCode.WrapMessage("reset rejected")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	user.HashedPassword = hashedPassword
	user.ResetCode = nil

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to persist password reset")
	}

	srv.log(ctx).Info("Password reset", slog.Any("userID", user.ID))

	return nil
}

// UpdateAccount applies a partial update to the authenticated account.
func (srv *accountService) UpdateAccount(ctx context.Context, email string, input *usecase.UpdateAccountInput) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token subject unknown")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up user during account update")
	}

	if input.Email != "" && input.Email != user.Email {
		_, err := srv.userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return nil, domainerrors.ErrEmailAlreadyInUse.WrapMessage("account update rejected")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to check new email availability")
		}

		user.Email = input.Email
	}

	if input.Password != "" {
		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash new password")
		}

		user.HashedPassword = hashedPassword
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to persist account update")
	}

	srv.log(ctx).Debug("Account updated", slog.Any("userID", user.ID))

	return usecase.NewUserOutput(user), nil
}
