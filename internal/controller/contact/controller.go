// Package contact provides the public contact form and the admin's
// inquiry inbox.
package contact

import (
	"HireHub-backend/internal/model"
	"HireHub-backend/internal/store"
	"HireHub-backend/internal/utilities"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ContactController handles contact message endpoints
type ContactController struct {
	Store *store.Store
}

// NewContactController creates a new instance of ContactController
func NewContactController(st *store.Store) *ContactController {
	return &ContactController{Store: st}
}

type contactInfo struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type replyInfo struct {
	Reply string `json:"reply" binding:"required"`
}

// SubmitHandler accepts a visitor inquiry. No account or token needed;
// the inquiry goes straight to the remote inbox and never touches the
// session state.
// @Summary Submit the public contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param Info body contactInfo true "Inquiry"
// @Success 202 {object} utilities.MessageResponse "Inquiry accepted"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 503 {object} utilities.ErrorResponse "Remote store not configured"
// @Router /contact [post]
func (cc *ContactController) SubmitHandler(c *gin.Context) {
	var info contactInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	accepted := cc.Store.SendContactMessage(model.ContactMessage{
		Name:    info.Name,
		Email:   info.Email,
		Subject: info.Subject,
		Message: info.Message,
	})
	if !accepted {
		c.JSON(http.StatusServiceUnavailable, utilities.ErrorResponse{
			Error: "Contact inbox is unavailable",
		})
		return
	}

	c.JSON(http.StatusAccepted, utilities.MessageResponse{Message: "Inquiry received"})
}

// ListHandler returns the inquiry inbox.
// @Summary List visitor inquiries
// @Description Admin only
// @Tags Contact
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.ContactMessage
// @Failure 500 {object} utilities.ErrorResponse "Remote store error"
// @Router /admin/contact [get]
func (cc *ContactController) ListHandler(c *gin.Context) {
	msgs, err := cc.Store.ContactMessages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch contact messages: %s", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// MarkReadHandler flags one inquiry as read.
// @Summary Mark a visitor inquiry read
// @Description Admin only
// @Tags Contact
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Inquiry id"
// @Success 200 {object} utilities.MessageResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 500 {object} utilities.ErrorResponse "Remote store error"
// @Router /admin/contact/{id}/read [post]
func (cc *ContactController) MarkReadHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid inquiry id"})
		return
	}

	if err := cc.Store.MarkContactMessageRead(c.Request.Context(), uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to mark inquiry read: %s", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Inquiry marked read"})
}

// ReplyHandler records the admin's reply text on one inquiry.
// @Summary Record a reply to a visitor inquiry
// @Description Admin only
// @Tags Contact
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Inquiry id"
// @Param Info body replyInfo true "Reply text"
// @Success 200 {object} utilities.MessageResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid id or body"
// @Failure 500 {object} utilities.ErrorResponse "Remote store error"
// @Router /admin/contact/{id}/reply [post]
func (cc *ContactController) ReplyHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid inquiry id"})
		return
	}

	var info replyInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if err := cc.Store.ReplyContactMessage(c.Request.Context(), uint(id), info.Reply); err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to record reply: %s", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Reply recorded"})
}
