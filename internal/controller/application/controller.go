// Package application provides HTTP handlers for job applications.
package application

import (
	"HireHub-backend/internal/model"
	"HireHub-backend/internal/store"
	"HireHub-backend/internal/utilities"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApplicationController handles application related endpoints
type ApplicationController struct {
	Store *store.Store
}

// NewApplicationController creates a new instance of ApplicationController
func NewApplicationController(st *store.Store) *ApplicationController {
	return &ApplicationController{Store: st}
}

type applyInfo struct {
	JobID       string `json:"jobId" binding:"required"`
	CoverLetter string `json:"coverLetter"`
}

type statusInfo struct {
	Status string `json:"status" binding:"required,oneof=pending reviewed shortlisted accepted rejected"`
}

// ApplyHandler files an application for the requesting user. A second
// application to the same job is rejected.
// @Summary Apply for a job post
// @Description One application per user per job; the job's applicant count increments with it
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Info body applyInfo true "Job id and optional cover letter"
// @Success 201 {object} utilities.MessageResponse "Application filed"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Failure 409 {object} utilities.ErrorResponse "Already applied"
// @Router /applications [post]
func (ac *ApplicationController) ApplyHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info applyInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if _, ok := ac.Store.JobByID(info.JobID); !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job post not found"})
		return
	}

	if !ac.Store.ApplyForJob(user, info.JobID, info.CoverLetter) {
		c.JSON(http.StatusConflict, utilities.ErrorResponse{
			Error: "You have already applied for this job",
		})
		return
	}

	c.JSON(http.StatusCreated, utilities.MessageResponse{Message: "Application filed"})
}

// MyApplicationsHandler returns the requesting student's applications.
// @Summary List the requesting user's applications
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Application
// @Router /applications/mine [get]
func (ac *ApplicationController) MyApplicationsHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, ac.Store.ApplicationsForStudent(user.ID))
}

// JobApplicationsHandler returns every application to one job post,
// visible to the post's owner and to admins.
// @Summary List applications received by a job post
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Job id"
// @Success 200 {array} model.Application
// @Failure 403 {object} utilities.ErrorResponse "Job post belongs to another employer"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Router /jobs/{id}/applications [get]
func (ac *ApplicationController) JobApplicationsHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	job, ok := ac.Store.JobByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job post not found"})
		return
	}

	if job.EmployerID != user.ID && user.Role != model.RoleAdmin {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "You are not allowed to view these applications",
		})
		return
	}

	c.JSON(http.StatusOK, ac.Store.ApplicationsForJob(job.ID))
}

// UpdateStatusHandler overwrites one application's review status.
// @Summary Set an application's review status
// @Description Reviewers may set any status from any other; there is no transition graph
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Application id"
// @Param Info body statusInfo true "New status"
// @Success 200 {object} utilities.MessageResponse
// @Failure 400 {object} utilities.ErrorResponse "Unknown status value"
// @Failure 403 {object} utilities.ErrorResponse "Application belongs to another employer's job"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Router /applications/{id}/status [put]
func (ac *ApplicationController) UpdateStatusHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info statusInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	id := c.Param("id")
	var target *model.Application
	for _, a := range ac.Store.Applications() {
		if a.ID == id {
			app := a
			target = &app
			break
		}
	}
	if target == nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
		return
	}

	if user.Role != model.RoleAdmin {
		job, ok := ac.Store.JobByID(target.JobID)
		if !ok || job.EmployerID != user.ID {
			c.JSON(http.StatusForbidden, utilities.ErrorResponse{
				Error: "You are not allowed to review this application",
			})
			return
		}
	}

	ac.Store.UpdateApplicationStatus(id, info.Status)
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Application status updated"})
}
