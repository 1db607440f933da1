package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/newsflow-app/newsflow-api/domain"
	"github.com/newsflow-app/newsflow-api/domain/mocks"
	"github.com/newsflow-app/newsflow-api/internal/usecase/user"
)

var testSecret = []byte("test-secret")

func newService(repo domain.UserRepository) domain.UserUsecase {
	return user.NewService(repo, testSecret, time.Hour)
}

func TestRegister(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	svc := newService(repo)

	token, u, err := svc.Register(context.Background(), "Ada", " Ada@Example.COM ", "secret1")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.Equal(t, domain.RoleUser, u.Role)
	assert.NotEqual(t, "secret1", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")))

	parsed, err := jwt.Parse(token, func(_ *jwt.Token) (any, error) { return testSecret, nil })
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(u.ID), claims["user_id"])
	assert.Equal(t, domain.RoleUser, claims["user_role"])
}

func TestRegisterValidation(t *testing.T) {
	svc := newService(mocks.NewMockUserRepository())

	_, _, err := svc.Register(context.Background(), "", "a@b.com", "secret1")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)

	_, _, err = svc.Register(context.Background(), "Ada", "", "secret1")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)

	_, _, err = svc.Register(context.Background(), "Ada", "a@b.com", "short")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	svc := newService(repo)

	_, _, err := svc.Register(context.Background(), "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	// Case-insensitive: the email is normalized before hitting the repo.
	_, _, err = svc.Register(context.Background(), "Other Ada", "ADA@example.com", "secret2")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLogin(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	svc := newService(repo)

	_, registered, err := svc.Register(context.Background(), "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	token, u, err := svc.Login(context.Background(), "Ada@Example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	svc := newService(repo)

	_, _, err := svc.Register(context.Background(), "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newService(mocks.NewMockUserRepository())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdatePreferences(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	svc := newService(repo)

	_, registered, err := svc.Register(context.Background(), "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	u, err := svc.UpdatePreferences(context.Background(), registered.ID, []string{"technology", "science"}, "gb")
	require.NoError(t, err)
	assert.Equal(t, []string{"technology", "science"}, u.PreferredCategories)
	assert.Equal(t, "gb", u.Country)

	// Nil categories clear the list; an empty country keeps the old one.
	u, err = svc.UpdatePreferences(context.Background(), registered.ID, nil, "")
	require.NoError(t, err)
	assert.Empty(t, u.PreferredCategories)
	assert.Equal(t, "gb", u.Country)
}

func TestUpdatePreferencesUnknownUser(t *testing.T) {
	svc := newService(mocks.NewMockUserRepository())

	_, err := svc.UpdatePreferences(context.Background(), 42, []string{"technology"}, "us")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMe(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	svc := newService(repo)

	_, registered, err := svc.Register(context.Background(), "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	u, err := svc.Me(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", u.Email)

	_, err = svc.Me(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
