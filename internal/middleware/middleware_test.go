package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"

	"HireHub-backend/internal/auth"
	"HireHub-backend/internal/cache"
	"HireHub-backend/internal/model"
	"HireHub-backend/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(store.Deps{
		Cache: cache.New(filepath.Join(t.TempDir(), "state.json")),
		SeedUsers: []model.User{
			{ID: "stu-1", Name: "Alice", Email: "alice@example.com", Role: model.RoleStudent},
			{ID: "adm-1", Name: "Admin", Email: "admin@example.com", Role: model.RoleAdmin},
		},
	})
	if err := st.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	return st
}

// callProtected runs a request through the given middleware chain with a
// probe handler that records whether it was reached.
func callProtected(authorization string, handlers ...gin.HandlerFunc) (*httptest.ResponseRecorder, bool) {
	reached := false
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})
	r.GET("/protected", handlers...)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec, reached
}

func TestRequireAuthValidToken(t *testing.T) {
	st := newTestStore(t)
	access, _, err := auth.GenerateStandardToken("stu-1")
	assert.NoError(t, err)

	rec, reached := callProtected("Bearer "+access, RequireAuth(st))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestRequireAuthMissingHeader(t *testing.T) {
	st := newTestStore(t)

	rec, reached := callProtected("", RequireAuth(st))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, reached)
}

func TestRequireAuthGarbageToken(t *testing.T) {
	st := newTestStore(t)

	rec, reached := callProtected("Bearer not-a-token", RequireAuth(st))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	st := newTestStore(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    auth.JwtIssuer,
		Subject:   "stu-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
	})
	signed, err := expired.SignedString([]byte(auth.SECRET_KEY))
	assert.NoError(t, err)

	rec, reached := callProtected("Bearer "+signed, RequireAuth(st))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "expired")
}

func TestRequireAuthWrongIssuer(t *testing.T) {
	st := newTestStore(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "SomeoneElse",
		Subject:   "stu-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(auth.SECRET_KEY))
	assert.NoError(t, err)

	rec, reached := callProtected("Bearer "+signed, RequireAuth(st))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestRequireAuthUnknownUser(t *testing.T) {
	st := newTestStore(t)
	access, _, err := auth.GenerateStandardToken("ghost")
	assert.NoError(t, err)

	rec, reached := callProtected("Bearer "+access, RequireAuth(st))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "User not exist")
}

func TestCheckRoleAllowsMatchingRole(t *testing.T) {
	st := newTestStore(t)
	access, _, err := auth.GenerateStandardToken("adm-1")
	assert.NoError(t, err)

	rec, reached := callProtected("Bearer "+access, RequireAuth(st), CheckRole(model.RoleAdmin))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestCheckRoleDeniesOtherRoles(t *testing.T) {
	st := newTestStore(t)
	access, _, err := auth.GenerateStandardToken("stu-1")
	assert.NoError(t, err)

	rec, reached := callProtected("Bearer "+access, RequireAuth(st), CheckRole(model.RoleAdmin))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}

func TestCheckRoleWithoutUser(t *testing.T) {
	newTestStore(t) // only for gin test mode

	rec, reached := callProtected("", CheckRole(model.RoleAdmin))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestJwtBlacklistCheck(t *testing.T) {
	st := newTestStore(t)
	blacklist := auth.NewInMemoryBlacklistStore()
	access, _, err := auth.GenerateStandardToken("stu-1")
	assert.NoError(t, err)

	rec, reached := callProtected("Bearer "+access, RequireAuth(st), JwtBlacklistCheck(blacklist))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)

	assert.NoError(t, blacklist.AddToBlacklist(access, time.Now().Add(time.Hour)))

	rec, reached = callProtected("Bearer "+access, RequireAuth(st), JwtBlacklistCheck(blacklist))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "revoked")
}
