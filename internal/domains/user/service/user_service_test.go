package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"edubright-backend/internal/domains/user"
	"edubright-backend/pkg/jwt"
)

type mockRepository struct {
	createUserFunc func(ctx context.Context, u *user.User) (*user.User, error)
	getByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	getByIDFunc    func(ctx context.Context, id uuid.UUID) (*user.User, error)
}

func (m *mockRepository) CreateUser(ctx context.Context, u *user.User) (*user.User, error) {
	return m.createUserFunc(ctx, u)
}

func (m *mockRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.getByEmailFunc(ctx, email)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return m.getByIDFunc(ctx, id)
}

func testManager() *jwt.Manager {
	return jwt.NewManager("test-secret", 60, 72)
}

func TestRegister_HashesPasswordAndIssuesTokens(t *testing.T) {
	var stored *user.User
	repo := &mockRepository{
		createUserFunc: func(ctx context.Context, u *user.User) (*user.User, error) {
			u.ID = uuid.New()
			stored = u
			return u, nil
		},
	}

	svc := NewUserService(repo, testManager())
	auth, err := svc.Register(context.Background(), &user.RegisterRequest{
		Email:    "Parent@Example.com",
		Password: "correct horse",
		Name:     "Pat",
	})
	require.NoError(t, err)

	// email normalized, password stored as bcrypt hash
	assert.Equal(t, "parent@example.com", stored.Email)
	assert.NotEqual(t, "correct horse", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")))
	assert.Equal(t, user.RoleUser, stored.Role)

	// access token round-trips through the manager
	claims, err := testManager().ValidateAccessToken(auth.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, stored.ID.String(), claims.UserID)
	assert.Equal(t, "parent@example.com", claims.Email)
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	svc := NewUserService(&mockRepository{}, testManager())

	_, err := svc.Register(context.Background(), &user.RegisterRequest{
		Email:    "a@b.com",
		Password: "short",
		Name:     "Pat",
	})
	assert.Error(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right password"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockRepository{
		getByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return &user.User{ID: uuid.New(), Email: email, PasswordHash: string(hash)}, nil
		},
	}

	svc := NewUserService(repo, testManager())
	_, err = svc.Login(context.Background(), &user.LoginRequest{
		Email:    "a@b.com",
		Password: "wrong password",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailCollapsesToInvalidCredentials(t *testing.T) {
	repo := &mockRepository{
		getByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, user.ErrUserNotFound
		},
	}

	svc := NewUserService(repo, testManager())
	_, err := svc.Login(context.Background(), &user.LoginRequest{
		Email:    "ghost@b.com",
		Password: "whatever",
	})
	// same error as a wrong password, no account enumeration
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right password"), bcrypt.MinCost)
	require.NoError(t, err)
	id := uuid.New()

	repo := &mockRepository{
		getByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return &user.User{ID: id, Email: email, PasswordHash: string(hash), Role: user.RoleAdmin}, nil
		},
	}

	svc := NewUserService(repo, testManager())
	auth, err := svc.Login(context.Background(), &user.LoginRequest{
		Email:    "admin@b.com",
		Password: "right password",
	})
	require.NoError(t, err)

	claims, err := testManager().ValidateAccessToken(auth.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, claims.Role)
}
