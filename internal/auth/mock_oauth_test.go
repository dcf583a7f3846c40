package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"golang.org/x/oauth2"

	"HireHub-backend/internal/model"
)

// MockOAuth2Server stands in for Google's token and userinfo endpoints
// so the OAuth handlers can be exercised end to end.
type MockOAuth2Server struct {
	server *httptest.Server

	Config           *oauth2.Config
	MockInfoEndpoint string

	mu        sync.Mutex
	users     map[string]model.GoogleUserInfo
	exchanged map[string]bool
}

// NewMockOAuth2Server serves a token endpoint and a userinfo endpoint
// for the given users. Auth codes and access tokens are derived from
// the user's Google id.
func NewMockOAuth2Server(users []model.GoogleUserInfo) *MockOAuth2Server {
	m := &MockOAuth2Server{
		users:     map[string]model.GoogleUserInfo{},
		exchanged: map[string]bool{},
	}
	for _, u := range users {
		m.users[u.GID] = u
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/token", m.handleToken)
	mux.HandleFunc("/userinfo", m.handleUserInfo)
	m.server = httptest.NewServer(mux)

	m.Config = &oauth2.Config{
		ClientID:     "mock-client",
		ClientSecret: "mock-secret",
		Endpoint: oauth2.Endpoint{
			AuthURL:  m.server.URL + "/auth",
			TokenURL: m.server.URL + "/token",
		},
		RedirectURL: m.server.URL + "/callback",
	}
	m.MockInfoEndpoint = m.server.URL + "/userinfo"
	return m
}

// Close shuts the mock server down.
func (m *MockOAuth2Server) Close() {
	m.server.Close()
}

// GetAuthCode returns the authorization code for a registered user.
func (m *MockOAuth2Server) GetAuthCode(gid string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[gid]; !ok {
		return "", fmt.Errorf("no mock user with gid %q", gid)
	}
	return "code:" + gid, nil
}

// IsUserTokenExchanged reports whether the user's code was exchanged.
func (m *MockOAuth2Server) IsUserTokenExchanged(gid string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.exchanged[gid]
}

func (m *MockOAuth2Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	gid := strings.TrimPrefix(r.FormValue("code"), "code:")

	m.mu.Lock()
	_, ok := m.users[gid]
	if ok {
		m.exchanged[gid] = true
	}
	m.mu.Unlock()

	if !ok {
		http.Error(w, "invalid_grant", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"access_token": "token:" + gid,
		"token_type":   "Bearer",
		"expires_in":   3600,
	})
}

func (m *MockOAuth2Server) handleUserInfo(w http.ResponseWriter, r *http.Request) {
	authz := r.Header.Get("Authorization")
	gid := strings.TrimPrefix(strings.TrimPrefix(authz, "Bearer "), "token:")

	m.mu.Lock()
	user, ok := m.users[gid]
	m.mu.Unlock()

	if !ok {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(user)
}
