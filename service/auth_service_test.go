package application

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"eventsphere_backend/domain"
	"eventsphere_backend/errors"
)

func newAuthFixture() (*AuthService, *inMemoryUserStore) {
	jwtKey = []byte("test-signing-key")
	store := &inMemoryUserStore{}
	return NewAuthService(store), store
}

func TestRegisterDefaultsRole(t *testing.T) {
	service, _ := newAuthFixture()

	user, statusCode, err := service.Register(context.Background(), &domain.User{
		Email:    "alice@test.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, statusCode)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.False(t, user.ID.IsZero())
}

func TestRegisterHashesPassword(t *testing.T) {
	service, store := newAuthFixture()

	_, _, err := service.Register(context.Background(), &domain.User{
		Email:    "alice@test.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	stored, _ := store.GetByEmail(context.Background(), "alice@test.com")
	assert.NotEqual(t, "supersecret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("supersecret")))
}

func TestRegisterSameEmailDifferentRole(t *testing.T) {
	service, _ := newAuthFixture()

	_, statusCode, err := service.Register(context.Background(), &domain.User{
		Email: "alice@test.com", Password: "supersecret", Role: domain.RoleUser,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, statusCode)

	// Uniqueness is scoped to the (email, role) pair.
	_, statusCode, err = service.Register(context.Background(), &domain.User{
		Email: "alice@test.com", Password: "supersecret", Role: domain.RoleHost,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, statusCode)
}

func TestRegisterSameEmailSameRole(t *testing.T) {
	service, _ := newAuthFixture()

	_, _, err := service.Register(context.Background(), &domain.User{
		Email: "alice@test.com", Password: "supersecret", Role: domain.RoleHost,
	})
	require.NoError(t, err)

	_, statusCode, err := service.Register(context.Background(), &domain.User{
		Email: "alice@test.com", Password: "othersecret", Role: domain.RoleHost,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusCode)
	assert.Equal(t, errors.EmailRoleExist, err.Error())
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	service, _ := newAuthFixture()

	_, statusCode, err := service.Register(context.Background(), &domain.User{
		Email: "not-an-email", Password: "supersecret",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusCode)

	_, statusCode, err = service.Register(context.Background(), &domain.User{
		Email: "bob@test.com", Password: "short",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusCode)

	_, statusCode, err = service.Register(context.Background(), &domain.User{
		Email: "bob@test.com", Password: "supersecret", Role: "superadmin",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusCode)
}

func TestLoginReturnsBearerToken(t *testing.T) {
	service, _ := newAuthFixture()

	_, _, err := service.Register(context.Background(), &domain.User{
		Email: "alice@test.com", Password: "supersecret",
	})
	require.NoError(t, err)

	token, statusCode, err := service.Login(context.Background(), &domain.LoginRequest{
		Email: "alice@test.com", Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, statusCode)
	assert.Contains(t, token, "Bearer ")
}

func TestLoginWrongPassword(t *testing.T) {
	service, _ := newAuthFixture()

	_, _, err := service.Register(context.Background(), &domain.User{
		Email: "alice@test.com", Password: "supersecret",
	})
	require.NoError(t, err)

	// Unknown email and wrong password are indistinguishable to the caller.
	_, statusCode, err := service.Login(context.Background(), &domain.LoginRequest{
		Email: "alice@test.com", Password: "wrongpassword",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, statusCode)
	assert.Equal(t, errors.InvalidCredentials, err.Error())

	_, statusCode, err = service.Login(context.Background(), &domain.LoginRequest{
		Email: "nobody@test.com", Password: "supersecret",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, statusCode)
	assert.Equal(t, errors.InvalidCredentials, err.Error())
}

func TestVerifyOtp(t *testing.T) {
	service, store := newAuthFixture()

	user, _, err := service.Register(context.Background(), &domain.User{
		Email: "alice@test.com", Password: "supersecret",
	})
	require.NoError(t, err)

	expiry := time.Now().Add(otpValidity)
	user.Otp = "123456"
	user.OtpExpiry = &expiry
	require.NoError(t, store.Update(context.Background(), user))

	statusCode, err := service.VerifyOtp(context.Background(), "alice@test.com", "654321")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusCode)

	statusCode, err = service.VerifyOtp(context.Background(), "alice@test.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, statusCode)

	// The code is single use.
	statusCode, err = service.VerifyOtp(context.Background(), "alice@test.com", "123456")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusCode)
}

func TestVerifyOtpExpired(t *testing.T) {
	service, store := newAuthFixture()

	user, _, err := service.Register(context.Background(), &domain.User{
		Email: "alice@test.com", Password: "supersecret",
	})
	require.NoError(t, err)

	expiry := time.Now().Add(-time.Minute)
	user.Otp = "123456"
	user.OtpExpiry = &expiry
	require.NoError(t, store.Update(context.Background(), user))

	statusCode, err := service.VerifyOtp(context.Background(), "alice@test.com", "123456")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusCode)
	assert.Equal(t, errors.InvalidOrExpiredOtp, err.Error())
}

func TestResetPassword(t *testing.T) {
	service, _ := newAuthFixture()

	_, _, err := service.Register(context.Background(), &domain.User{
		Email: "alice@test.com", Password: "supersecret",
	})
	require.NoError(t, err)

	statusCode, err := service.ResetPassword(context.Background(), "alice@test.com", "freshsecret")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, statusCode)

	_, statusCode, err = service.Login(context.Background(), &domain.LoginRequest{
		Email: "alice@test.com", Password: "freshsecret",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, statusCode)

	statusCode, err = service.ResetPassword(context.Background(), "nobody@test.com", "freshsecret")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, statusCode)
}

func TestGenerateOtpFormat(t *testing.T) {
	for i := 0; i < 20; i++ {
		otp, err := generateOtp()
		require.NoError(t, err)
		assert.Regexp(t, "^[0-9]{6}$", otp)
	}
}
