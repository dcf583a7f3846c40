package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"HireHub-backend/internal/model"
	"HireHub-backend/internal/utilities"
)

func TestGoogleLogin_firstTimeStudent(t *testing.T) {
	_, st, backend := newTestAuthEnv(t)

	mockUser := model.GoogleUserInfo{
		GID:       "google_test_123",
		Email:     "test.student@example.com",
		FirstName: "Test",
		LastName:  "Student",
		Picture:   "https://example.com/photo.jpg",
	}
	mockServer := NewMockOAuth2Server([]model.GoogleUserInfo{mockUser})
	defer mockServer.Close()

	handler := NewOauthLoginHandler(st, backend, mockServer.Config, mockServer.MockInfoEndpoint)

	authCode, err := mockServer.GetAuthCode(mockUser.GID)
	assert.NoError(t, err)

	rec, resp, err := utilities.SimulateAPICall(handler.GoogleLoginHandler, "/auth/google", http.MethodPost, map[string]string{
		"code": authCode,
		"role": "student",
	})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code, "Expected 201 Created for new user")
	assertValidAccessToken(t, resp)
	assert.True(t, mockServer.IsUserTokenExchanged(mockUser.GID))

	user, ok := resp["user"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Test Student", user["name"])
	assert.Equal(t, "student", user["role"])
	assert.Equal(t, mockUser.Picture, user["avatar"])

	// Profile document created remotely.
	created, _, err := backend.UserByEmail(context.Background(), mockUser.Email)
	assert.NoError(t, err)
	assert.Equal(t, "Test Student", created.Name)
}

func TestGoogleLogin_firstTimeWithoutRole(t *testing.T) {
	_, st, backend := newTestAuthEnv(t)

	mockUser := model.GoogleUserInfo{
		GID:   "google_norole_123",
		Email: "norole@example.com",
	}
	mockServer := NewMockOAuth2Server([]model.GoogleUserInfo{mockUser})
	defer mockServer.Close()

	handler := NewOauthLoginHandler(st, backend, mockServer.Config, mockServer.MockInfoEndpoint)
	authCode, err := mockServer.GetAuthCode(mockUser.GID)
	assert.NoError(t, err)

	rec, resp, err := utilities.SimulateAPICall(handler.GoogleLoginHandler, "/auth/google", http.MethodPost, map[string]string{
		"code": authCode,
	})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "Role")
}

func TestGoogleLogin_existingUser(t *testing.T) {
	lh, st, backend := newTestAuthEnv(t)

	// An email/password account already exists for this email.
	_, _, err := utilities.SimulateAPICall(lh.RegisterHandler, "/auth/register", http.MethodPost, map[string]interface{}{
		"name":     "Existing User",
		"email":    "existing@example.com",
		"password": "Password123",
		"role":     "student",
	})
	assert.NoError(t, err)
	st.SetCurrentUser(nil)

	mockUser := model.GoogleUserInfo{
		GID:       "google_existing_123",
		Email:     "existing@example.com",
		FirstName: "Updated",
		LastName:  "Name",
	}
	mockServer := NewMockOAuth2Server([]model.GoogleUserInfo{mockUser})
	defer mockServer.Close()

	handler := NewOauthLoginHandler(st, backend, mockServer.Config, mockServer.MockInfoEndpoint)
	authCode, err := mockServer.GetAuthCode(mockUser.GID)
	assert.NoError(t, err)

	rec, resp, err := utilities.SimulateAPICall(handler.GoogleLoginHandler, "/auth/google", http.MethodPost, map[string]string{
		"code": authCode,
	})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code, "Expected 200 OK for existing user")
	assertValidAccessToken(t, resp)

	user := resp["user"].(map[string]interface{})
	assert.Equal(t, "Existing User", user["name"], "the stored profile wins over the Google one")

	users, err := backend.Users(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 1, "sign-in must not duplicate the account")
}

func TestGoogleLogin_badCode(t *testing.T) {
	_, st, backend := newTestAuthEnv(t)

	mockServer := NewMockOAuth2Server(nil)
	defer mockServer.Close()

	handler := NewOauthLoginHandler(st, backend, mockServer.Config, mockServer.MockInfoEndpoint)

	rec, _, err := utilities.SimulateAPICall(handler.GoogleLoginHandler, "/auth/google", http.MethodPost, map[string]string{
		"code": "code:ghost",
		"role": "student",
	})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGoogleLogin_withoutBackend(t *testing.T) {
	mockServer := NewMockOAuth2Server(nil)
	defer mockServer.Close()

	handler := NewOauthLoginHandler(nil, nil, mockServer.Config, mockServer.MockInfoEndpoint)

	rec, _, err := utilities.SimulateAPICall(handler.GoogleLoginHandler, "/auth/google", http.MethodPost, map[string]string{
		"code": "code:any",
		"role": "student",
	})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
