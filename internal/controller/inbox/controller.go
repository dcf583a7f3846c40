// Package inbox provides HTTP handlers over the threaded inboxes: the
// employer-to-admin channel, the admin-to-employer decision channel, and
// the employer-student conversations.
package inbox

import (
	"HireHub-backend/internal/model"
	"HireHub-backend/internal/store"
	"HireHub-backend/internal/utilities"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InboxController handles thread related endpoints
type InboxController struct {
	Store *store.Store
}

// NewInboxController creates a new instance of InboxController
func NewInboxController(st *store.Store) *InboxController {
	return &InboxController{Store: st}
}

type sendInfo struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

type sendToInfo struct {
	To      string `json:"to" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

type replyInfo struct {
	Body string `json:"body" binding:"required"`
}

type decisionInfo struct {
	Accepted *bool `json:"accepted" binding:"required"`
}

type inboxResponse struct {
	Threads []model.Thread `json:"threads"`
	Unread  int            `json:"unread"`
}

// InboxHandler returns the requesting user's inbox with its unread
// count. Admins see the employer-to-admin channel, employers their
// admin decisions, students their conversations.
// @Summary Get the requesting user's inbox and unread count
// @Tags Inbox
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} inboxResponse
// @Router /inbox [get]
func (ic *InboxController) InboxHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var threads []model.Thread
	switch user.Role {
	case model.RoleAdmin:
		threads = ic.Store.ThreadsForAdmin()
	case model.RoleEmployer:
		threads = ic.Store.ThreadsForEmployer(user.ID)
	case model.RoleStudent:
		threads = ic.Store.ThreadsForStudent(user.ID)
	}

	c.JSON(http.StatusOK, inboxResponse{
		Threads: threads,
		Unread:  store.UnreadCount(threads),
	})
}

// PeerInboxHandler returns the requesting user's employer-student
// conversations with their unread count.
// @Summary Get the requesting user's peer conversations and unread count
// @Tags Inbox
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} inboxResponse
// @Failure 403 {object} utilities.ErrorResponse "Admins have no peer inbox"
// @Router /inbox/peer [get]
func (ic *InboxController) PeerInboxHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var threads []model.Thread
	switch user.Role {
	case model.RoleEmployer:
		threads = ic.Store.PeerThreadsForEmployer(user.ID)
	case model.RoleStudent:
		threads = ic.Store.ThreadsForStudent(user.ID)
	default:
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: "Admins have no peer inbox"})
		return
	}

	c.JSON(http.StatusOK, inboxResponse{
		Threads: threads,
		Unread:  store.UnreadCount(threads),
	})
}

// SendToAdminHandler opens a thread from the requesting employer to the
// admin team.
// @Summary Write to the admin team
// @Description Employer only
// @Tags Inbox
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Info body sendInfo true "Subject and body"
// @Success 201 {object} utilities.MessageResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Router /inbox/admin [post]
func (ic *InboxController) SendToAdminHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info sendInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if !ic.Store.SendAdminThread(user, info.Subject, info.Body) {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "Only employers can write to the admin team",
		})
		return
	}
	c.JSON(http.StatusCreated, utilities.MessageResponse{Message: "Message sent"})
}

// SendToEmployerHandler opens a decision thread from the requesting
// admin to one employer.
// @Summary Write to an employer as the admin team
// @Description Admin only; the thread carries a pending accept/reject decision
// @Tags Inbox
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Info body sendToInfo true "Employer id, subject, and body"
// @Success 201 {object} utilities.MessageResponse
// @Failure 404 {object} utilities.ErrorResponse "Employer not found"
// @Router /inbox/employer [post]
func (ic *InboxController) SendToEmployerHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info sendToInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if !ic.Store.SendEmployerThread(user, info.To, info.Subject, info.Body) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Employer not found"})
		return
	}
	c.JSON(http.StatusCreated, utilities.MessageResponse{Message: "Message sent"})
}

// SendPeerHandler opens a conversation between the requesting employer
// or student and the named counterpart.
// @Summary Write to the other side of the job market
// @Description Employers write to students and students to employers
// @Tags Inbox
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Info body sendToInfo true "Counterpart id, subject, and body"
// @Success 201 {object} utilities.MessageResponse
// @Failure 404 {object} utilities.ErrorResponse "Counterpart not found"
// @Router /inbox/peer [post]
func (ic *InboxController) SendPeerHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info sendToInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if !ic.Store.SendPeerThread(user, info.To, info.Subject, info.Body) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Counterpart not found"})
		return
	}
	c.JSON(http.StatusCreated, utilities.MessageResponse{Message: "Message sent"})
}

// MarkReadHandler flags one thread as read. Re-reading a thread is a
// harmless no-op.
// @Summary Mark a thread read
// @Tags Inbox
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Thread id"
// @Success 200 {object} utilities.MessageResponse
// @Failure 404 {object} utilities.ErrorResponse "Thread not found"
// @Router /inbox/{id}/read [post]
func (ic *InboxController) MarkReadHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	thread, ok := ic.Store.ThreadByID(c.Param("id"))
	if !ok || !participant(thread, user) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Thread not found"})
		return
	}

	ic.Store.MarkThreadRead(thread.ID)
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Thread marked read"})
}

// ReplyHandler appends a reply to one thread.
// @Summary Reply within a thread
// @Tags Inbox
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Thread id"
// @Param Info body replyInfo true "Reply body"
// @Success 201 {object} utilities.MessageResponse
// @Failure 404 {object} utilities.ErrorResponse "Thread not found"
// @Router /inbox/{id}/replies [post]
func (ic *InboxController) ReplyHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info replyInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	thread, ok := ic.Store.ThreadByID(c.Param("id"))
	if !ok || !participant(thread, user) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Thread not found"})
		return
	}

	ic.Store.ReplyToThread(thread.ID, user, info.Body)
	c.JSON(http.StatusCreated, utilities.MessageResponse{Message: "Reply sent"})
}

// DecideHandler records the requesting employer's accept or reject
// decision on an admin decision thread addressed to them.
// @Summary Accept or reject an admin decision thread
// @Description Employer only, on threads addressed to them
// @Tags Inbox
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Thread id"
// @Param Info body decisionInfo true "Accepted true or false"
// @Success 200 {object} utilities.MessageResponse
// @Failure 404 {object} utilities.ErrorResponse "Thread not found"
// @Router /inbox/{id}/decision [post]
func (ic *InboxController) DecideHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info decisionInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	thread, ok := ic.Store.ThreadByID(c.Param("id"))
	if !ok || thread.Kind != model.ThreadEmployerInbound || thread.EmployerID != user.ID {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Thread not found"})
		return
	}

	ic.Store.DecideThread(thread.ID, *info.Accepted)
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Decision recorded"})
}

// DeleteThreadHandler removes one conversation.
// @Summary Delete a thread
// @Tags Inbox
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Thread id"
// @Success 200 {object} utilities.MessageResponse
// @Failure 404 {object} utilities.ErrorResponse "Thread not found"
// @Router /inbox/{id} [delete]
func (ic *InboxController) DeleteThreadHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	thread, ok := ic.Store.ThreadByID(c.Param("id"))
	if !ok || !participant(thread, user) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Thread not found"})
		return
	}

	ic.Store.DeleteThread(thread.ID)
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Thread deleted"})
}

// participant reports whether the user belongs in the thread: admins
// everywhere, employers and students only where the thread names them.
func participant(t model.Thread, u model.User) bool {
	switch u.Role {
	case model.RoleAdmin:
		return true
	case model.RoleEmployer:
		return t.EmployerID == u.ID
	case model.RoleStudent:
		return t.StudentID == u.ID
	}
	return false
}
