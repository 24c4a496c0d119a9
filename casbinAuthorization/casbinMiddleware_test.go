package casbinAuthorization

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/casbin/casbin"
	"github.com/cristalhq/jwt/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventsphere_backend/domain"
)

func initTestKey(t *testing.T) {
	t.Helper()
	jwtKey = []byte("test-signing-key")
	var err error
	verifier, err = jwt.NewVerifierHS(jwt.HS256, jwtKey)
	require.NoError(t, err)
}

func signedToken(t *testing.T, role domain.Role, expiresIn time.Duration) string {
	t.Helper()
	signer, err := jwt.NewSignerHS(jwt.HS256, jwtKey)
	require.NoError(t, err)

	claims := &domain.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
		UserID: primitive.NewObjectID().Hex(),
		Role:   role,
	}
	token, err := jwt.NewBuilder(signer).Build(claims)
	require.NoError(t, err)
	return token.String()
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	enforcer, err := casbin.NewEnforcerSafe("../rbac_model.conf", "../policy.csv")
	require.NoError(t, err)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := CurrentUserFromContext(r.Context()); ok {
			w.Header().Set("X-Test-Role", string(user.Role))
		}
		w.WriteHeader(http.StatusOK)
	})
	return CasbinMiddleware(enforcer, logrus.New())(inner)
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	initTestKey(t)
	router := newTestRouter(t)

	req := httptest.NewRequest("GET", "/api/admin/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareAllowsPublicRouteWithoutToken(t *testing.T) {
	initTestKey(t)
	router := newTestRouter(t)

	req := httptest.NewRequest("POST", "/api/users/login", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddlewareForbidsWrongRole(t *testing.T) {
	initTestKey(t)
	router := newTestRouter(t)

	req := httptest.NewRequest("GET", "/api/admin/dashboard/stats", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, domain.RoleHost, time.Hour))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMiddlewareAllowsMatchingRole(t *testing.T) {
	initTestKey(t)
	router := newTestRouter(t)

	req := httptest.NewRequest("GET", "/api/admin/dashboard/stats", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, domain.RoleAdmin, time.Hour))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", rec.Header().Get("X-Test-Role"))
}

func TestMiddlewareMatchesPathParameters(t *testing.T) {
	initTestKey(t)
	router := newTestRouter(t)

	req := httptest.NewRequest("PUT", "/api/admin/venues/65f1b2c3d4e5f6a7b8c9d0e1/approve", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, domain.RoleAdmin, time.Hour))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddlewareRejectsExpiredToken(t *testing.T) {
	initTestKey(t)
	router := newTestRouter(t)

	req := httptest.NewRequest("GET", "/api/admin/dashboard/stats", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, domain.RoleAdmin, -time.Hour))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsMalformedHeader(t *testing.T) {
	initTestKey(t)
	router := newTestRouter(t)

	req := httptest.NewRequest("GET", "/api/admin/dashboard/stats", nil)
	req.Header.Set("Authorization", "not-a-bearer-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
