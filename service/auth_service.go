package application

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"os"
	"time"

	"github.com/cristalhq/jwt/v4"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/gomail.v2"

	"eventsphere_backend/domain"
	"eventsphere_backend/errors"
)

var (
	smtpServer     = "smtp.gmail.com"
	smtpServerPort = 587
	smtpEmail      = os.Getenv("SMTP_AUTH_MAIL")
	smtpPassword   = os.Getenv("SMTP_AUTH_PASSWORD")
	jwtKey         = []byte(os.Getenv("SECRET_KEY"))
)

const otpValidity = 5 * time.Minute

type AuthService struct {
	store    domain.UserStore
	validate *validator.Validate
}

func NewAuthService(store domain.UserStore) *AuthService {
	return &AuthService{
		store:    store,
		validate: validator.New(),
	}
}

// Register creates an account. The email has to be unique per role, not
// globally, so the same address can hold e.g. a user and a host account.
func (service *AuthService) Register(ctx context.Context, user *domain.User) (*domain.User, int, error) {
	if user.Role == "" {
		user.Role = domain.RoleUser
	}
	if !user.Role.Valid() {
		return nil, http.StatusBadRequest, fmt.Errorf(errors.InvalidRequestFormat)
	}
	if err := service.validate.Struct(user); err != nil {
		return nil, http.StatusBadRequest, err
	}

	existing, err := service.store.GetByEmailAndRole(ctx, user.Email, user.Role)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if existing != nil {
		return nil, http.StatusBadRequest, fmt.Errorf(errors.EmailRoleExist)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	user.Password = string(hash)

	saved, err := service.store.Register(ctx, user)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return saved, http.StatusCreated, nil
}

func (service *AuthService) Login(ctx context.Context, request *domain.LoginRequest) (string, int, error) {
	user, err := service.store.GetByEmail(ctx, request.Email)
	if err != nil {
		return "", http.StatusInternalServerError, err
	}
	if user == nil {
		return "", http.StatusNotFound, fmt.Errorf(errors.InvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		return "", http.StatusNotFound, fmt.Errorf(errors.InvalidCredentials)
	}

	token, err := generateToken(user)
	if err != nil {
		log.Println("Error generating token:", err)
		return "", http.StatusInternalServerError, err
	}

	return fmt.Sprintf("Bearer %s", token), http.StatusOK, nil
}

// RequestOtp stores a fresh one-time code on the account and mails it.
func (service *AuthService) RequestOtp(ctx context.Context, email string) (int, error) {
	user, err := service.store.GetByEmail(ctx, email)
	if err != nil {
		return http.StatusInternalServerError, err
	}
	if user == nil {
		return http.StatusNotFound, fmt.Errorf(errors.EmailNotFound)
	}

	otp, err := generateOtp()
	if err != nil {
		return http.StatusInternalServerError, err
	}
	expiry := time.Now().Add(otpValidity)
	user.Otp = otp
	user.OtpExpiry = &expiry

	if err := service.store.Update(ctx, user); err != nil {
		return http.StatusInternalServerError, err
	}

	if err := sendOtpMail(otp, user.Email); err != nil {
		return http.StatusInternalServerError, err
	}
	return http.StatusOK, nil
}

func (service *AuthService) VerifyOtp(ctx context.Context, email, otp string) (int, error) {
	user, err := service.store.GetByEmail(ctx, email)
	if err != nil {
		return http.StatusInternalServerError, err
	}
	if user == nil || user.Otp != otp || user.OtpExpiry == nil || user.OtpExpiry.Before(time.Now()) {
		return http.StatusBadRequest, fmt.Errorf(errors.InvalidOrExpiredOtp)
	}

	user.Otp = ""
	user.OtpExpiry = nil
	if err := service.store.Update(ctx, user); err != nil {
		return http.StatusInternalServerError, err
	}
	return http.StatusOK, nil
}

func (service *AuthService) ResetPassword(ctx context.Context, email, newPassword string) (int, error) {
	user, err := service.store.GetByEmail(ctx, email)
	if err != nil {
		return http.StatusInternalServerError, err
	}
	if user == nil {
		return http.StatusNotFound, fmt.Errorf(errors.EmailNotFound)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return http.StatusInternalServerError, err
	}
	user.Password = string(hash)

	if err := service.store.Update(ctx, user); err != nil {
		return http.StatusInternalServerError, err
	}
	return http.StatusOK, nil
}

func generateToken(user *domain.User) (string, error) {
	signer, err := jwt.NewSignerHS(jwt.HS256, jwtKey)
	if err != nil {
		return "", err
	}

	claims := &domain.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
		},
		UserID: user.ID.Hex(),
		Role:   user.Role,
	}

	token, err := jwt.NewBuilder(signer).Build(claims)
	if err != nil {
		return "", err
	}
	return token.String(), nil
}

func generateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}

func sendOtpMail(otp, email string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", smtpEmail)
	message.SetHeader("To", email)
	message.SetHeader("Subject", "Password Reset OTP")

	bodyString := fmt.Sprintf("Your OTP is %s. It will expire in 5 minutes.", otp)
	message.SetBody("text", bodyString)

	client := gomail.NewDialer(smtpServer, smtpServerPort, smtpEmail, smtpPassword)

	if err := client.DialAndSend(message); err != nil {
		log.Printf("failed to send OTP mail: %s", err)
		return err
	}
	return nil
}
