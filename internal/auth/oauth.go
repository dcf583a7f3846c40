package auth

import (
	"HireHub-backend/internal/model"
	"HireHub-backend/internal/remote"
	"HireHub-backend/internal/store"
	"HireHub-backend/internal/utilities"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	// Auto load .env file
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleUserInfoEndpoint is where the granted token is redeemed for the
// signed-in profile.
const GoogleUserInfoEndpoint = "https://www.googleapis.com/oauth2/v3/userinfo"

// OauthLoginHandler holds the store, the remote backend, and the OAuth2
// configuration for handling Google login.
type OauthLoginHandler struct {
	Store            *store.Store
	Backend          remote.Backend
	OauthConfig      *oauth2.Config
	UserInfoEndpoint string
}

type googleLoginInfo struct {
	Code string `json:"code" binding:"required"`
	// Role is required the first time a Google account signs in, when no
	// profile exists yet.
	Role string `json:"role" binding:"omitempty,oneof=student employer"`
}

// NewOauthLoginHandler creates a new instance of OauthLoginHandler with
// the provided collaborators and OAuth2 configuration.
func NewOauthLoginHandler(st *store.Store, backend remote.Backend, oauthConfig *oauth2.Config, userInfoEndpoint string) *OauthLoginHandler {
	return &OauthLoginHandler{
		Store:            st,
		Backend:          backend,
		OauthConfig:      oauthConfig,
		UserInfoEndpoint: userInfoEndpoint,
	}
}

// GoogleOauthConfigFromEnv builds the Google OAuth2 config from
// GOOGLE_AUTH_CLIENT, GOOGLE_AUTH_SECRET, and OAUTH_REDIRECT_URL.
func GoogleOauthConfigFromEnv() *oauth2.Config {
	redirect := os.Getenv("OAUTH_REDIRECT_URL")
	if redirect == "" {
		redirect = "http://localhost:8080/auth/google/callback"
	}
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_AUTH_CLIENT"),
		ClientSecret: os.Getenv("GOOGLE_AUTH_SECRET"),
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint:    google.Endpoint,
		RedirectURL: redirect,
	}
}

func (h *OauthLoginHandler) getUserInfo(c *gin.Context, code string) (model.GoogleUserInfo, error) {

	var uInfo model.GoogleUserInfo

	// Exchange code with google and get userinfo
	token, err := h.OauthConfig.Exchange(
		context.Background(),
		code,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to receive token: %v", err.Error()),
		})
		return uInfo, err
	}

	client := h.OauthConfig.Client(context.Background(), token)
	resp, err := client.Get(h.UserInfoEndpoint)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch user information: %v", err.Error()),
		})
		return uInfo, err
	}
	if resp.StatusCode != http.StatusOK {
		var bodyBytes []byte
		if resp.Body != nil {
			bodyBytes, _ = io.ReadAll(resp.Body)
		}
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch user information: status=%d body=%s", resp.StatusCode, string(bodyBytes)),
		})
		return uInfo, fmt.Errorf("userinfo endpoint returned status %d", resp.StatusCode)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("Failed to close response body: %v", err)
		}
	}()

	err = json.NewDecoder(resp.Body).Decode(&uInfo)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to decode user info: %v", err.Error()),
		})
		return uInfo, err
	}
	if uInfo.GID == "" {
		log.Printf("warning: decoded Google user info has empty GID: %+v", uInfo)
	}
	return uInfo, nil
}

// GoogleLoginHandler exchanges an authorization code for the Google
// profile, logs the matching account in, or registers a fresh one with
// the chosen role on first sign-in.
// @Summary Log in or register with a Google authorization code
// @Description Exchanges the code for the Google profile. Existing accounts log in by email; first-time accounts are created with the provided role
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body googleLoginInfo true "Authorization code from google, role for first-time sign-in"
// @Success 200 {object} authResponse "Login success"
// @Success 201 {object} authResponse "Register success"
// @Failure 400 {object} utilities.ErrorResponse "Fail to receive token or fetch user info"
// @Failure 500 {object} utilities.ErrorResponse "Remote store error"
// @Router /auth/google [post]
func (h *OauthLoginHandler) GoogleLoginHandler(c *gin.Context) {

	var info googleLoginInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("No authorization code provided: %v", err.Error()),
		})
		return
	}

	if h.Backend == nil {
		c.JSON(http.StatusServiceUnavailable, utilities.ErrorResponse{
			Error: "Remote store is not configured, login is unavailable",
		})
		return
	}

	uInfo, err := h.getUserInfo(c, info.Code)
	if err != nil {
		return
	}

	respStatus := http.StatusOK

	user, _, err := h.Backend.UserByEmail(c.Request.Context(), uInfo.Email)
	switch {
	case errors.Is(err, remote.ErrUserNotFound):
		if info.Role == "" {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: "Role ('student' or 'employer') must be provided for first-time Google sign-in",
			})
			return
		}

		user = newAccount(uInfo.DisplayName(), uInfo.Email, info.Role, "", "")
		user.Avatar = uInfo.Picture

		if err := h.Backend.PutUser(c.Request.Context(), user); err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to create user: %v", err.Error()),
			})
			return
		}
		respStatus = http.StatusCreated

	case err == nil:
		// Do nothing

	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Remote store error: %v", err.Error()),
		})
		return
	}

	accessToken, _, err := GenerateStandardToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	h.Store.SetCurrentUser(&user)

	c.JSON(respStatus, authResponse{
		User:        user,
		AccessToken: accessToken,
	})
}

// Callback retrieves a query parameter named "code" from the request
// and returns it in a JSON response.
// @Summary Retrieves the "code" query parameter and returns it in a JSON response
// @Tags Auth
// @Produce json
// @Param Code query string false "Authentication code from google"
// @Success 200 {object} map[string]string
// @Router /auth/google/callback [get]
func (h *OauthLoginHandler) Callback(c *gin.Context) {
	aCode := c.Query("code")
	c.JSON(http.StatusOK, gin.H{
		"code": aCode,
	})
}
