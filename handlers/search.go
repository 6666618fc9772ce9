package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobpulse/gateway/matcher"
	"github.com/jobpulse/gateway/models"
	"github.com/jobpulse/gateway/render"
	"github.com/jobpulse/gateway/search"
	"github.com/jobpulse/gateway/session"
)

// SearchHandler handles job search requests and the derived result views.
type SearchHandler struct {
	invoker *search.Invoker
	log     *zap.Logger
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(invoker *search.Invoker, log *zap.Logger) *SearchHandler {
	return &SearchHandler{invoker: invoker, log: log}
}

// SearchRealtime runs a realtime job search for the session.
// @Summary Search for jobs
// @Description Searches the upstream realtime service for the given title and location, scores unscored listings against the active resume profile and replaces the session's result set. When the service is unavailable, synthetic sample listings are substituted and the response is flagged sample_data.
// @Tags Jobs
// @Accept json
// @Produce json
// @Param job_title query string true "Job title to search for"
// @Param location query string true "Location to search in"
// @Param request body models.SearchJobsRequest false "Resume profile override; the session profile is used when absent"
// @Success 200 {object} models.SearchJobsResponse "Scored search results"
// @Failure 400 {object} models.ErrorResponse "Missing job title or location"
// @Router /v2/search-realtime [post]
func (h *SearchHandler) SearchRealtime(c *gin.Context) {
	jobTitle := c.Query("job_title")
	location := c.Query("location")

	var req models.SearchJobsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "Invalid request body",
				Code:  http.StatusBadRequest,
			})
			return
		}
	}

	state := session.FromContext(c)
	profile := req.ResumeData
	if profile == nil {
		profile = state.Profile()
	}

	generation := state.BeginSearch()

	jobs, err := h.invoker.Search(c.Request.Context(), jobTitle, location, profile)
	sampleData := false
	switch {
	case err == nil:
	case errors.Is(err, search.ErrEmptyQuery), errors.Is(err, search.ErrEmptyLocation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: err.Error(),
			Code:  http.StatusBadRequest,
		})
		return
	default:
		// Transport or service failure: show sample listings instead of a
		// bare error state, and say so.
		jobs = h.invoker.SampleListings()
		sampleData = true
	}

	matcher.Score(profile, jobs)

	if !state.CompleteSearch(generation, jobs) {
		h.log.Debug("discarding superseded search result",
			zap.String("job_title", jobTitle),
			zap.Uint64("generation", generation),
		)
	}

	_, _, filter, sortBy := state.Snapshot()
	view := matcher.Apply(jobs, filter, sortBy)

	cards, err := render.Cards(view)
	if err != nil {
		h.log.Error("render job cards failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, models.SearchJobsResponse{
		Success:    true,
		Jobs:       view,
		CardsHTML:  cards,
		Counts:     matcher.Counts(jobs),
		SampleData: sampleData,
		Message:    fmt.Sprintf("Found %d matching jobs", len(view)),
	})
}

// HealthCheck returns server health status
// @Summary Health check
// @Description Check if the server is running and healthy
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Version:   "1.0.0",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
