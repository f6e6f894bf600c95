package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"sparestock/config"
	"sparestock/internal/domain/entity"
	domainerrors "sparestock/internal/domain/errors"
	"sparestock/internal/domain/repository"
	mockRepo "sparestock/internal/mocks/repository"
	mockSvc "sparestock/internal/mocks/service"
	"sparestock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testEnrollmentSecret = "enrollment-secret"

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.SecretKey.Enrollment = testEnrollmentSecret

	service, err := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       cfg,
		Logger:       logger,
	})
	require.NoError(t, err)

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestNewUserService_MissingEnrollmentSecret(t *testing.T) {
	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service, err := NewUserService(UserServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		UserRepo:     mockRepo.NewMockUserRepository(t),
		Hasher:       mockSvc.NewMockPasswordHasher(t),
		TokenService: mockSvc.NewMockTokenService(t),
		Config:       cfg,
		Logger:       logger,
	})

	assert.Error(t, err)
	assert.Nil(t, service)
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "Casey",
		Email:    "casey@example.com",
		Password: "Password123!",
		Role:     "buyer",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateToken(mock.AnythingOfType("uuid.UUID"), entity.RoleBuyer).
		Return("signed-token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, entity.RoleBuyer, output.Role)
	assert.Equal(t, "Casey", output.Username)
}

func TestUserService_Register_DefaultsUsernameAndRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "anon@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "Engineer", user.Username)
					assert.Equal(t, entity.RoleStaff, user.Role)
					user.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateToken(mock.AnythingOfType("uuid.UUID"), entity.RoleStaff).
		Return("signed-token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Engineer", output.Username)
	assert.Equal(t, entity.RoleStaff, output.Role)
}

func TestUserService_Register_PasswordTooShort(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "short@example.com",
		Password: "12345",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooShort))
}

func TestUserService_Register_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "odd@example.com",
		Password: "Password123!",
		Role:     "superuser",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRole))
}

func TestUserService_Register_PrivilegedRoleNeedsSecret(t *testing.T) {
	fx := createTestUserService(t)

	for _, role := range []string{"admin", "manager"} {
		output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
			Email:     "boss@example.com",
			Password:  "Password123!",
			Role:      role,
			SecretKey: "wrong-secret",
		})

		assert.Nil(t, output, "role %s", role)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidSecretKey), "role %s", role)
	}
}

func TestUserService_Register_PrivilegedRoleWithSecret(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username:  "Boss",
		Email:     "boss@example.com",
		Password:  "Password123!",
		Role:      "admin",
		SecretKey: testEnrollmentSecret,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateToken(mock.AnythingOfType("uuid.UUID"), entity.RoleAdmin).
		Return("signed-token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, output.Role)
}

func TestUserService_Register_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "dup@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.User{Email: input.Email}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "registration failed"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "Casey",
		Email:        "casey@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleStaff,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateToken(user.ID, user.Role).Return("signed-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, entity.RoleStaff, output.Role)
	assert.Equal(t, "Casey", output.Username)
}

func TestUserService_Login_UnknownEmailAndBadPasswordLookAlike(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "real@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleStaff,
	}
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	_, badPasswordErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "wrong",
	})

	// Both failure modes surface the same credential error.
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(badPasswordErr, domainerrors.ErrInvalidCredentials))
}
