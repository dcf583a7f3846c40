// Package jobpost provides HTTP handlers for job post related operations.
package jobpost

import (
	"HireHub-backend/internal/model"
	"HireHub-backend/internal/store"
	"HireHub-backend/internal/utilities"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// JobPostController handles job post related endpoints
type JobPostController struct {
	Store *store.Store
}

// NewJobPostController creates a new instance of JobPostController
func NewJobPostController(st *store.Store) *JobPostController {
	return &JobPostController{Store: st}
}

// GetAllJobsHandler returns every job post, newest first.
// @Summary List all job posts
// @Tags Jobpost
// @Produce json
// @Success 200 {array} model.Job
// @Router /jobs [get]
func (jc *JobPostController) GetAllJobsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, jc.Store.Jobs())
}

// GetJobHandler returns one job post by id.
// @Summary Get one job post
// @Tags Jobpost
// @Produce json
// @Param id path string true "Job id"
// @Success 200 {object} model.Job
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Router /jobs/{id} [get]
func (jc *JobPostController) GetJobHandler(c *gin.Context) {
	job, ok := jc.Store.JobByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job post not found"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// MyJobsHandler returns the job posts owned by the requesting employer.
// @Summary List the requesting employer's job posts
// @Tags Jobpost
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Job
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Router /jobs/mine [get]
func (jc *JobPostController) MyJobsHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, jc.Store.JobsForEmployer(user.ID))
}

// CreateJobPostHandler handles the creation of a new job post by an
// approved employer.
// @Summary Create job post based on given json structure
// @Description Only approved employers have access to this endpoint
// @Tags Jobpost
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Jobpost body model.EditableJobInfo true "Input jobpost information"
// @Success 201 {object} model.Job "Successfully create job post"
// @Failure 400 {object} utilities.ErrorResponse "Invalid authorization header, or invalid job post struct"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as an approved employer"
// @Router /jobs [post]
func (jc *JobPostController) CreateJobPostHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	if !user.Approved() {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "Only approved employers can create job posts",
		})
		return
	}

	var info model.EditableJobInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	job := jc.Store.PostJob(user, info)
	c.JSON(http.StatusCreated, job)
}

// EditJobPostHandler allows an employer to update a job post they own.
// @Summary Edit an owned job post
// @Tags Jobpost
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Job id"
// @Param Jobpost body model.EditableJobInfo true "Updated jobpost information"
// @Success 200 {object} model.Job
// @Failure 403 {object} utilities.ErrorResponse "Job post belongs to another employer"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Router /jobs/{id} [put]
func (jc *JobPostController) EditJobPostHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	job, ok := jc.Store.JobByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job post not found"})
		return
	}

	if job.EmployerID != user.ID && user.Role != model.RoleAdmin {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "You are not allowed to edit this job post",
		})
		return
	}

	var info model.EditableJobInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to parse request body: %s", err.Error()),
		})
		return
	}

	// Ownership and bookkeeping fields survive the edit.
	job.Title = info.Title
	job.Description = info.Description
	job.Location = info.Location
	job.Type = info.Type
	job.Salary = info.Salary
	job.Requirements = info.Requirements
	job.Category = info.Category
	job.Deadline = info.Deadline
	if info.Status != "" {
		job.Status = info.Status
	}

	jc.Store.UpdateJob(job)
	c.JSON(http.StatusOK, job)
}

// DeleteJobPostHandler allows an employer to delete a job post they
// own. Applications to the post go with it.
// @Summary Delete an owned job post and its applications
// @Tags Jobpost
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Job id"
// @Success 200 {object} utilities.MessageResponse
// @Failure 403 {object} utilities.ErrorResponse "Job post belongs to another employer"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Router /jobs/{id} [delete]
func (jc *JobPostController) DeleteJobPostHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	job, ok := jc.Store.JobByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job post not found"})
		return
	}

	if job.EmployerID != user.ID && user.Role != model.RoleAdmin {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "You are not allowed to delete this job post",
		})
		return
	}

	jc.Store.DeleteJob(job.ID)
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Job post deleted"})
}
