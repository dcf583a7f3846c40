// Package site provides HTTP handlers over the session-wide view state:
// theme, navigation, and the browse filters.
package site

import (
	"HireHub-backend/internal/store"
	"HireHub-backend/internal/utilities"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SiteController handles view-state endpoints
type SiteController struct {
	Store *store.Store
}

// NewSiteController creates a new instance of SiteController
func NewSiteController(st *store.Store) *SiteController {
	return &SiteController{Store: st}
}

type navigateInfo struct {
	Page  string `json:"page" binding:"required"`
	JobID string `json:"jobId"`
}

type filtersInfo struct {
	SearchQuery string `json:"searchQuery"`
	FilterType  string `json:"filterType"`
	Location    string `json:"location"`
}

type themeResponse struct {
	Theme string `json:"theme"`
}

type navigationResponse struct {
	CurrentPage   string `json:"currentPage"`
	SelectedJobID string `json:"selectedJobId,omitempty"`
}

type commitResponse struct {
	Outcome store.Outcome `json:"outcome"`
}

// ThemeHandler returns the current theme.
// @Summary Get the current theme
// @Tags Site
// @Produce json
// @Success 200 {object} themeResponse
// @Router /site/theme [get]
func (sc *SiteController) ThemeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, themeResponse{Theme: sc.Store.Theme()})
}

// ToggleThemeHandler flips between light and dark. The choice persists
// with the rest of the view state.
// @Summary Toggle between light and dark theme
// @Tags Site
// @Produce json
// @Success 200 {object} themeResponse
// @Router /site/theme/toggle [post]
func (sc *SiteController) ToggleThemeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, themeResponse{Theme: sc.Store.ToggleTheme()})
}

// NavigateHandler records a view change, remembering the selected job
// when one is named.
// @Summary Navigate to a view
// @Tags Site
// @Accept json
// @Produce json
// @Param Info body navigateInfo true "Target page and optional job id"
// @Success 200 {object} navigationResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Router /site/navigate [post]
func (sc *SiteController) NavigateHandler(c *gin.Context) {
	var info navigateInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	sc.Store.Navigate(info.Page, info.JobID)
	c.JSON(http.StatusOK, navigationResponse{
		CurrentPage:   sc.Store.CurrentPage(),
		SelectedJobID: sc.Store.SelectedJobID(),
	})
}

// BackHandler pops the navigation history.
// @Summary Go back to the previous view
// @Tags Site
// @Produce json
// @Success 200 {object} navigationResponse
// @Router /site/back [post]
func (sc *SiteController) BackHandler(c *gin.Context) {
	page := sc.Store.Back()
	c.JSON(http.StatusOK, navigationResponse{
		CurrentPage:   page,
		SelectedJobID: sc.Store.SelectedJobID(),
	})
}

// NavigationHandler returns the current view and selected job.
// @Summary Get the current view state
// @Tags Site
// @Produce json
// @Success 200 {object} navigationResponse
// @Router /site/navigation [get]
func (sc *SiteController) NavigationHandler(c *gin.Context) {
	c.JSON(http.StatusOK, navigationResponse{
		CurrentPage:   sc.Store.CurrentPage(),
		SelectedJobID: sc.Store.SelectedJobID(),
	})
}

// FiltersHandler stores the browse-page search and filter fields.
// @Summary Set the browse filters
// @Tags Site
// @Accept json
// @Produce json
// @Param Info body filtersInfo true "Search query, employment type, location"
// @Success 200 {object} utilities.MessageResponse
// @Router /site/filters [post]
func (sc *SiteController) FiltersHandler(c *gin.Context) {
	var info filtersInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	sc.Store.SetSearchQuery(info.SearchQuery)
	sc.Store.SetFilterType(info.FilterType)
	sc.Store.SetLocation(info.Location)
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Filters updated"})
}

// LastCommitHandler reports how far the most recent mutation's
// persistence got, for operators checking whether remote writes land.
// @Summary Get the persistence outcome of the most recent mutation
// @Description Admin only. Waits for the remote round-trip to settle
// @Tags Site
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} commitResponse
// @Failure 404 {object} utilities.ErrorResponse "No mutation yet"
// @Router /admin/last-commit [get]
func (sc *SiteController) LastCommitHandler(c *gin.Context) {
	commit := sc.Store.LastCommit()
	if commit == nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "No mutation recorded yet"})
		return
	}
	c.JSON(http.StatusOK, commitResponse{Outcome: commit.Wait()})
}
