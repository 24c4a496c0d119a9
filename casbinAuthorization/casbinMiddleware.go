package casbinAuthorization

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/casbin/casbin"
	"github.com/cristalhq/jwt/v4"
	"github.com/sirupsen/logrus"

	"eventsphere_backend/domain"
)

var jwtKey = []byte(os.Getenv("SECRET_KEY"))

var verifier, _ = jwt.NewVerifierHS(jwt.HS256, jwtKey)

type currentUserKey struct{}

func parseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse([]byte(tokenString), verifier)
	if err != nil {
		log.Println(err)
		return nil, err
	}
	return token, nil
}

// extractCurrentUser reads the bearer token. A missing header yields no user
// and the Unauthenticated role so public routes can still match the policy.
func extractCurrentUser(r *http.Request) (*domain.CurrentUser, string, error) {
	bearer := r.Header.Get("Authorization")
	if bearer == "" {
		return nil, "Unauthenticated", nil
	}

	bearerToken := strings.Split(bearer, "Bearer ")
	if len(bearerToken) != 2 {
		return nil, "", errors.New("invalid token format")
	}

	token, err := parseToken(bearerToken[1])
	if err != nil {
		return nil, "", err
	}

	var claims domain.AccessClaims
	if err := jwt.ParseClaims(token.Bytes(), verifier, &claims); err != nil {
		return nil, "", err
	}
	if !claims.IsValidAt(time.Now()) {
		return nil, "", errors.New("token expired")
	}

	user := &domain.CurrentUser{
		UserID: claims.UserID,
		Role:   claims.Role,
	}
	return user, string(claims.Role), nil
}

// ContextWithCurrentUser stores the authenticated caller for downstream
// handlers.
func ContextWithCurrentUser(ctx context.Context, user *domain.CurrentUser) context.Context {
	return context.WithValue(ctx, currentUserKey{}, user)
}

// CurrentUserFromContext returns the authenticated caller stored by the
// middleware, if any.
func CurrentUserFromContext(ctx context.Context) (*domain.CurrentUser, bool) {
	user, ok := ctx.Value(currentUserKey{}).(*domain.CurrentUser)
	return user, ok
}

func CasbinMiddleware(e *casbin.Enforcer, logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			user, userRole, err := extractCurrentUser(r)
			if err != nil {
				logger.Error("Unauthorized access attempt")
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			res, err := e.EnforceSafe(userRole, r.URL.Path, r.Method)
			if err != nil {
				log.Println("enforce error:", err)
				logger.Error("Error enforcing authorization policy")
				http.Error(w, "unauthorized user", http.StatusUnauthorized)
				return
			}

			if !res {
				if userRole == "Unauthenticated" {
					logger.Warn("Request without token rejected")
					http.Error(w, "token not provided", http.StatusUnauthorized)
					return
				}
				logger.Warn("Unauthorized access attempt: forbidden")
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			if user != nil {
				r = r.WithContext(ContextWithCurrentUser(r.Context(), user))
			}
			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}
