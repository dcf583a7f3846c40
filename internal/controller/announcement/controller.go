// Package announcement provides HTTP handlers over admin broadcasts.
package announcement

import (
	"HireHub-backend/internal/model"
	"HireHub-backend/internal/store"
	"HireHub-backend/internal/utilities"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AnnouncementController handles announcement related endpoints
type AnnouncementController struct {
	Store *store.Store
}

// NewAnnouncementController creates a new instance of AnnouncementController
func NewAnnouncementController(st *store.Store) *AnnouncementController {
	return &AnnouncementController{Store: st}
}

// ListHandler returns the announcements visible to the requesting
// user's role: audience match or "all", not expired, newest first.
// @Summary List announcements visible to the requesting user
// @Tags Announcement
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Announcement
// @Router /announcements [get]
func (nc *AnnouncementController) ListHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, nc.Store.AnnouncementsForRole(user.Role))
}

// ListAllHandler returns every announcement regardless of audience or
// expiry, for the admin management page.
// @Summary List every announcement
// @Description Admin only
// @Tags Announcement
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Announcement
// @Router /admin/announcements [get]
func (nc *AnnouncementController) ListAllHandler(c *gin.Context) {
	c.JSON(http.StatusOK, nc.Store.Announcements())
}

// CreateHandler posts a new announcement under the requesting admin's
// name.
// @Summary Create an announcement
// @Description Admin only
// @Tags Announcement
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Announcement body model.Announcement true "Announcement content; id, postedDate, and postedBy are stamped server-side"
// @Success 201 {object} model.Announcement
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Router /admin/announcements [post]
func (nc *AnnouncementController) CreateHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var a model.Announcement
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	created := nc.Store.CreateAnnouncement(user, a)
	c.JSON(http.StatusCreated, created)
}

// UpdateHandler replaces one announcement.
// @Summary Edit an announcement
// @Description Admin only
// @Tags Announcement
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Announcement id"
// @Param Announcement body model.Announcement true "Updated announcement"
// @Success 200 {object} model.Announcement
// @Failure 404 {object} utilities.ErrorResponse "Announcement not found"
// @Router /admin/announcements/{id} [put]
func (nc *AnnouncementController) UpdateHandler(c *gin.Context) {
	var a model.Announcement
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	a.ID = c.Param("id")
	if !announcementExists(nc.Store, a.ID) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Announcement not found"})
		return
	}

	nc.Store.UpdateAnnouncement(a)
	c.JSON(http.StatusOK, a)
}

// DeleteHandler removes one announcement.
// @Summary Delete an announcement
// @Description Admin only
// @Tags Announcement
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Announcement id"
// @Success 200 {object} utilities.MessageResponse
// @Failure 404 {object} utilities.ErrorResponse "Announcement not found"
// @Router /admin/announcements/{id} [delete]
func (nc *AnnouncementController) DeleteHandler(c *gin.Context) {
	id := c.Param("id")
	if !announcementExists(nc.Store, id) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Announcement not found"})
		return
	}

	nc.Store.DeleteAnnouncement(id)
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Announcement deleted"})
}

func announcementExists(st *store.Store, id string) bool {
	for _, a := range st.Announcements() {
		if a.ID == id {
			return true
		}
	}
	return false
}
