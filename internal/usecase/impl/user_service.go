// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"sparestock/config"
	"sparestock/internal/domain/entity"
	domainerrors "sparestock/internal/domain/errors"
	"sparestock/internal/domain/repository"
	"sparestock/internal/domain/service"
	"sparestock/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 6

// defaultUsername mirrors the legacy behavior of filling in a display name
// when the registrant leaves it blank.
const defaultUsername = "Engineer"

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	enrollmentSecret string
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It refuses to start
// without an enrollment secret: privileged registration must never be open.
func NewUserService(params UserServiceParams) (usecase.UserUsecase, error) {
	if params.Config.SecretKey.Enrollment == "" {
		return nil, errors.New("enrollment secret must be provided")
	}

	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		enrollmentSecret: params.Config.SecretKey.Enrollment,
		logger:           params.Logger,
	}, nil
}

// Register orchestrates the complete account registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Starting registration", slog.String("email", input.Email), slog.String("role", input.Role))

	role, err := srv.resolveRole(input.Role, input.SecretKey)
	if err != nil {
		srv.logger.Warn("Registration rejected", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	if len(input.Password) < minPasswordLength {
		return nil, errors.Wrap(domainerrors.ErrPasswordTooShort, "registration failed")
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	username := input.Username
	if username == "" {
		username = defaultUsername
	}

	newUser := &entity.User{
		Username:     username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "registration failed")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email uniqueness")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.logger.Warn("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.GenerateToken(newUser.ID, newUser.Role)
	if err != nil {
		srv.logger.Error("Failed to mint token after registration", slog.Any("userID", newUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.logger.Debug("Registration completed", slog.Any("userID", newUser.ID), slog.String("role", newUser.Role.String()))

	return &usecase.AuthOutput{
		Token:    token,
		Role:     newUser.Role,
		Username: newUser.Username,
	}, nil
}

// resolveRole applies the role default and the enrollment-secret gate for
// privileged roles.
func (srv *userService) resolveRole(rawRole, secretKey string) (entity.Role, error) {
	if rawRole == "" {
		return entity.RoleStaff, nil
	}

	role := entity.Role(rawRole)
	if !role.IsValid() {
		return "", errors.Wrap(domainerrors.ErrInvalidRole, "registration failed")
	}

	if role.IsPrivileged() {
		if subtle.ConstantTimeCompare([]byte(secretKey), []byte(srv.enrollmentSecret)) != 1 {
			return "", errors.Wrap(domainerrors.ErrInvalidSecretKey, "registration failed")
		}
	}

	return role, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.logger.Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.logger.Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		// An unknown email reports the same error as a bad password so a
		// caller cannot enumerate registered accounts.
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Role)
	if err != nil {
		srv.logger.Error("Failed to mint token during login", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.logger.Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		Token:    token,
		Role:     user.Role,
		Username: user.Username,
	}, nil
}
