package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"
	jwtsvc "github.com/MashookhKhanlol/youtube-clone/internal/pkg/jwt"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) UpdateFields(ctx context.Context, userID int64, fields map[string]any) error {
	args := m.Called(ctx, userID, fields)
	return args.Error(0)
}

func (m *mockUserRepo) SetRefreshTokenHash(ctx context.Context, userID int64, hash *string) error {
	args := m.Called(ctx, userID, hash)
	return args.Error(0)
}

func (m *mockUserRepo) SwapRefreshTokenHash(ctx context.Context, userID int64, oldHash, newHash string) (bool, error) {
	args := m.Called(ctx, userID, oldHash, newHash)
	return args.Bool(0), args.Error(1)
}

func newTestService(users *mockUserRepo) *Service {
	tokens := jwtsvc.New("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	return NewService(users, tokens, "test-pepper")
}

func hashedPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_Register_Success(t *testing.T) {
	users := new(mockUserRepo)
	svc := newTestService(users)

	users.On("ExistsByUsernameOrEmail", mock.Anything, "newuser", "new@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "newuser" && u.Email == "new@example.com" && u.PasswordHash != ""
	})).Return(nil)

	user, err := svc.Register(context.Background(), RegisterRequest{
		Username: "NewUser",
		Email:    "New@Example.com",
		FullName: "New User",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "newuser", user.Username)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)
	users.AssertExpectations(t)
}

func TestService_Register_DuplicateUser(t *testing.T) {
	users := new(mockUserRepo)
	svc := newTestService(users)

	users.On("ExistsByUsernameOrEmail", mock.Anything, "taken", "taken@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "taken",
		Email:    "taken@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestService_Register_MixedCaseDuplicate(t *testing.T) {
	users := new(mockUserRepo)
	svc := newTestService(users)

	// the exists check must see the same lowercased key the unique index
	// enforces, whatever casing the request arrived with
	users.On("ExistsByUsernameOrEmail", mock.Anything, "taken", "taken@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "Taken",
		Email:    "Taken@Example.COM",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	users.AssertExpectations(t)
}

func TestService_Register_RaceLoserGetsConflict(t *testing.T) {
	users := new(mockUserRepo)
	svc := newTestService(users)

	// exists check passes but the insert hits the unique index
	users.On("ExistsByUsernameOrEmail", mock.Anything, "racer", "racer@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "racer",
		Email:    "racer@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestService_Login_Success(t *testing.T) {
	users := new(mockUserRepo)
	svc := newTestService(users)

	stored := &domain.User{
		ID:           7,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hashedPassword(t, "correct-horse"),
	}
	users.On("GetByIdentifier", mock.Anything, "alice").Return(stored, nil)
	users.On("SetRefreshTokenHash", mock.Anything, int64(7), mock.AnythingOfType("*string")).Return(nil)

	result, err := svc.Login(context.Background(), LoginRequest{
		Identifier: "alice",
		Password:   "correct-horse",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.NotEqual(t, result.AccessToken, result.RefreshToken)
	assert.Empty(t, result.User.PasswordHash)
	users.AssertExpectations(t)
}

func TestService_Login_UnknownUser(t *testing.T) {
	users := new(mockUserRepo)
	svc := newTestService(users)

	users.On("GetByIdentifier", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{Identifier: "ghost", Password: "whatever"})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	svc := newTestService(users)

	stored := &domain.User{
		ID:           7,
		Username:     "alice",
		PasswordHash: hashedPassword(t, "correct-horse"),
	}
	users.On("GetByIdentifier", mock.Anything, "alice").Return(stored, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Identifier: "alice", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	users.AssertNotCalled(t, "SetRefreshTokenHash", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Rotate_Success(t *testing.T) {
	users := new(mockUserRepo)
	svc := newTestService(users)

	var issuedHash string
	users.On("SetRefreshTokenHash", mock.Anything, int64(7), mock.AnythingOfType("*string")).
		Run(func(args mock.Arguments) {
			issuedHash = *args.Get(2).(*string)
		}).Return(nil)

	pair, err := svc.IssueTokenPair(context.Background(), 7)
	require.NoError(t, err)

	users.On("SwapRefreshTokenHash", mock.Anything, int64(7), mock.MatchedBy(func(oldHash string) bool {
		return oldHash == issuedHash
	}), mock.AnythingOfType("string")).Return(true, nil)

	rotated, err := svc.Rotate(context.Background(), pair.RefreshToken)

	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)
	users.AssertExpectations(t)
}

func TestService_Rotate_ReusedTokenLoses(t *testing.T) {
	users := new(mockUserRepo)
	svc := newTestService(users)

	users.On("SetRefreshTokenHash", mock.Anything, int64(7), mock.AnythingOfType("*string")).Return(nil)

	pair, err := svc.IssueTokenPair(context.Background(), 7)
	require.NoError(t, err)

	// the stored hash no longer matches: someone already rotated this token
	users.On("SwapRefreshTokenHash", mock.Anything, int64(7), mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(false, nil)

	_, err = svc.Rotate(context.Background(), pair.RefreshToken)

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestService_Rotate_GarbageToken(t *testing.T) {
	users := new(mockUserRepo)
	svc := newTestService(users)

	_, err := svc.Rotate(context.Background(), "not-a-jwt")

	assert.ErrorIs(t, err, ErrUnauthorized)
	users.AssertNotCalled(t, "SwapRefreshTokenHash", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Revoke_ClearsHash(t *testing.T) {
	users := new(mockUserRepo)
	svc := newTestService(users)

	users.On("SetRefreshTokenHash", mock.Anything, int64(7), (*string)(nil)).Return(nil)

	err := svc.Revoke(context.Background(), 7)

	require.NoError(t, err)
	users.AssertExpectations(t)
}

func TestService_ChangePassword_WrongOldPassword(t *testing.T) {
	users := new(mockUserRepo)
	svc := newTestService(users)

	stored := &domain.User{ID: 7, PasswordHash: hashedPassword(t, "old-secret")}
	users.On("GetByID", mock.Anything, int64(7)).Return(stored, nil)

	err := svc.ChangePassword(context.Background(), 7, ChangePasswordRequest{
		OldPassword: "not-it",
		NewPassword: "new-secret",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	users.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ChangePassword_TargetedUpdate(t *testing.T) {
	users := new(mockUserRepo)
	svc := newTestService(users)

	stored := &domain.User{ID: 7, PasswordHash: hashedPassword(t, "old-secret")}
	users.On("GetByID", mock.Anything, int64(7)).Return(stored, nil)
	users.On("UpdateFields", mock.Anything, int64(7), mock.MatchedBy(func(fields map[string]any) bool {
		_, hasPassword := fields["password_hash"]
		return hasPassword && len(fields) == 1
	})).Return(nil)

	err := svc.ChangePassword(context.Background(), 7, ChangePasswordRequest{
		OldPassword: "old-secret",
		NewPassword: "new-secret",
	})

	require.NoError(t, err)
	users.AssertExpectations(t)
}
