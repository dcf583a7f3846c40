// Package account provides HTTP handlers over user profiles and the
// admin's employer-approval workflow.
package account

import (
	"HireHub-backend/internal/model"
	"HireHub-backend/internal/store"
	"HireHub-backend/internal/utilities"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AccountController handles user account related endpoints
type AccountController struct {
	Store *store.Store
}

// NewAccountController creates a new instance of AccountController
func NewAccountController(st *store.Store) *AccountController {
	return &AccountController{Store: st}
}

// MeHandler returns the requesting user's own profile record.
// @Summary Get the requesting user's profile
// @Tags Account
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} model.User
// @Router /users/me [get]
func (ac *AccountController) MeHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserHandler returns one profile by id.
// @Summary Get one user profile
// @Tags Account
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "User id"
// @Success 200 {object} model.User
// @Failure 404 {object} utilities.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (ac *AccountController) GetUserHandler(c *gin.Context) {
	user, ok := ac.Store.UserByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsersHandler returns every account, optionally filtered by role.
// @Summary List accounts, optionally by role
// @Description Admin only
// @Tags Account
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param role query string false "student, employer, or admin"
// @Success 200 {array} model.User
// @Router /admin/users [get]
func (ac *AccountController) ListUsersHandler(c *gin.Context) {
	switch c.Query("role") {
	case model.RoleStudent:
		c.JSON(http.StatusOK, ac.Store.Students())
	case model.RoleEmployer:
		c.JSON(http.StatusOK, ac.Store.Employers())
	default:
		c.JSON(http.StatusOK, ac.Store.Users())
	}
}

// UpdateProfileHandler saves an edit to the requesting user's own
// profile. Identity fields are pinned to the token's subject.
// @Summary Update the requesting user's profile
// @Tags Account
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Profile body model.User true "Updated profile record"
// @Success 200 {object} model.User
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Router /users/me [put]
func (ac *AccountController) UpdateProfileHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var updated model.User
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	updated.ID = user.ID
	updated.Role = user.Role
	updated.CreatedAt = user.CreatedAt
	// Approval is the admin's call, not the profile owner's.
	if user.Role == model.RoleEmployer && updated.Employer != nil {
		updated.Employer.IsApproved = user.Employer != nil && user.Employer.IsApproved
	}

	ac.Store.UpdateUser(updated)
	ac.Store.SetCurrentUser(&updated)
	c.JSON(http.StatusOK, updated)
}

// DeleteUserHandler removes an account. Users may delete themselves;
// admins may delete anyone. Owned jobs and filed applications cascade.
// @Summary Delete an account and cascade its jobs and applications
// @Tags Account
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "User id"
// @Success 200 {object} utilities.MessageResponse
// @Failure 403 {object} utilities.ErrorResponse "Not your account"
// @Failure 404 {object} utilities.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func (ac *AccountController) DeleteUserHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id := c.Param("id")
	if user.ID != id && user.Role != model.RoleAdmin {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "You are not allowed to delete this account",
		})
		return
	}

	if _, ok := ac.Store.UserByID(id); !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "User not found"})
		return
	}

	ac.Store.DeleteUser(id)
	if user.ID == id {
		ac.Store.SetCurrentUser(nil)
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Account deleted"})
}

// ApproveEmployerHandler flips the employer's approval flag on.
// @Summary Approve an employer account
// @Description Admin only
// @Tags Account
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Employer user id"
// @Success 200 {object} utilities.MessageResponse
// @Failure 404 {object} utilities.ErrorResponse "Employer not found"
// @Router /admin/employers/{id}/approve [post]
func (ac *AccountController) ApproveEmployerHandler(c *gin.Context) {
	id := c.Param("id")
	target, ok := ac.Store.UserByID(id)
	if !ok || target.Role != model.RoleEmployer {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Employer not found"})
		return
	}

	ac.Store.ApproveEmployer(id)
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Employer approved"})
}

// RejectEmployerHandler rejects an employer account: it leaves the
// session, its jobs and applications cascade, and the remote record
// keeps the approval flag cleared for later review.
// @Summary Reject an employer account
// @Description Admin only
// @Tags Account
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Employer user id"
// @Success 200 {object} utilities.MessageResponse
// @Failure 404 {object} utilities.ErrorResponse "Employer not found"
// @Router /admin/employers/{id}/reject [post]
func (ac *AccountController) RejectEmployerHandler(c *gin.Context) {
	id := c.Param("id")
	target, ok := ac.Store.UserByID(id)
	if !ok || target.Role != model.RoleEmployer {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Employer not found"})
		return
	}

	ac.Store.RejectEmployer(id)
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Employer rejected"})
}
