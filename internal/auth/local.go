// Package auth is the authentication bridge: it owns credentials and
// tokens, keeps identity out of the view-state store, and hands the
// store the resulting profile record.
package auth

import (
	"HireHub-backend/internal/model"
	"HireHub-backend/internal/remote"
	"HireHub-backend/internal/store"
	"HireHub-backend/internal/utilities"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LocalAuthHandler holds the store and the remote backend for the
// email/password handlers. Profile documents live in the remote users
// collection; without a backend these endpoints are unavailable.
type LocalAuthHandler struct {
	Store   *store.Store
	Backend remote.Backend
}

// NewLocalAuthHandler creates a new instance of LocalAuthHandler.
func NewLocalAuthHandler(st *store.Store, backend remote.Backend) *LocalAuthHandler {
	return &LocalAuthHandler{Store: st, Backend: backend}
}

type registerInfo struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Role        string `json:"role" binding:"required,oneof=student employer"`
	CompanyName string `json:"companyName"`
	Industry    string `json:"industry"`
}

type loginInfo struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	User        model.User `json:"user"`
	AccessToken string     `json:"access_token"`
}

// RegisterHandler creates an account from name, email, and password.
// Employers start unapproved and wait for an admin; students are active
// immediately. An email that already has an account is a caller error.
// @Summary Register a student or employer account with email and password
// @Description Email must not already have an account and password must be longer or equal to 8 characters
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body registerInfo true "role can be only 'student' or 'employer'"
// @Success 201 {object} authResponse "Register success"
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition"
// @Failure 500 {object} utilities.ErrorResponse "Remote store or password hashing error"
// @Router /auth/register [post]
func (lh *LocalAuthHandler) RegisterHandler(c *gin.Context) {
	var info registerInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Name, email, password, and Role (Only 'student' or 'employer') must be provided",
		})
		return
	}

	if lh.Backend == nil {
		c.JSON(http.StatusServiceUnavailable, utilities.ErrorResponse{
			Error: "Remote store is not configured, registration is unavailable",
		})
		return
	}

	if len(info.Password) < 8 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Password should longer or equal to 8 characters",
		})
		return
	}

	if _, taken := lh.Store.UserByEmail(info.Email); taken {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "An account with this email already exists. Please try logging in instead.",
		})
		return
	}

	_, _, err := lh.Backend.UserByEmail(c.Request.Context(), info.Email)
	switch {
	case err == nil:
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "An account with this email already exists. Please try logging in instead.",
		})
		return

	case errors.Is(err, remote.ErrUserNotFound):
		// Do nothing

	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Remote store error: %s", err.Error()),
		})
		return
	}

	hashedPassword, err := utilities.HashPassword(info.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed hash password: %s", err.Error()),
		})
		return
	}

	user := newAccount(info.Name, info.Email, info.Role, info.CompanyName, info.Industry)

	if err := lh.Backend.PutUser(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create user: %s", err.Error()),
		})
		return
	}
	if err := lh.Backend.SetPassword(c.Request.Context(), user.ID, hashedPassword); err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to store credentials: %s", err.Error()),
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

	lh.Store.SetCurrentUser(&user)

	c.JSON(http.StatusCreated, authResponse{
		User:        user,
		AccessToken: accessToken,
	})
}

// LoginHandler checks email and password against the stored credential
// and issues an access token.
// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body loginInfo true "Account credentials"
// @Success 200 {object} authResponse "Login success"
// @Failure 401 {object} utilities.ErrorResponse "Email or password is incorrect"
// @Failure 500 {object} utilities.ErrorResponse "Remote store error"
// @Router /auth/login [post]
func (lh *LocalAuthHandler) LoginHandler(c *gin.Context) {
	var info loginInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Email or password is not provided",
		})
		return
	}

	if lh.Backend == nil {
		c.JSON(http.StatusServiceUnavailable, utilities.ErrorResponse{
			Error: "Remote store is not configured, login is unavailable",
		})
		return
	}

	user, hash, err := lh.Backend.UserByEmail(c.Request.Context(), info.Email)
	switch {
	case errors.Is(err, remote.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Email or password is incorrect",
		})
		return

	case err == nil:
		// Do nothing

	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Remote store error: %s", err.Error()),
		})
		return
	}

	if hash == "" || !utilities.VerifyPassword(info.Password, hash) {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Email or password is incorrect",
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

	lh.Store.SetCurrentUser(&user)

	c.JSON(http.StatusOK, authResponse{
		User:        user,
		AccessToken: accessToken,
	})
}

// newAccount builds a fresh profile record for the chosen role with the
// same defaults the registration form applies.
func newAccount(name, email, role, companyName, industry string) model.User {
	user := model.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}

	switch role {
	case model.RoleEmployer:
		if companyName == "" {
			companyName = name + "'s Company"
		}
		if industry == "" {
			industry = "Technology"
		}
		user.Employer = &model.EmployerProfile{
			CompanyName: companyName,
			CompanyLogo: "🏢",
			Industry:    industry,
			IsApproved:  false,
		}
	case model.RoleStudent:
		user.Student = &model.StudentProfile{
			Skills: []string{},
		}
	}
	return user
}
