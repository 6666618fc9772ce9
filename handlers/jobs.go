package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobpulse/gateway/matcher"
	"github.com/jobpulse/gateway/models"
	"github.com/jobpulse/gateway/render"
	"github.com/jobpulse/gateway/session"
)

// ListJobs returns the filtered, sorted view over the last search results.
// @Summary List jobs with filter and sort applied
// @Description Re-derives the displayed subset from the session's result set using the requested minimum-match filter and sort order. The selection is remembered for subsequent requests.
// @Tags Jobs
// @Produce json
// @Param filter query string false "Minimum match filter" Enums(all, 60, 80, 90) default(all)
// @Param sort query string false "Sort order" Enums(match, recent, salary, company) default(match)
// @Success 200 {object} models.JobsViewResponse "Filtered and sorted listings"
// @Failure 400 {object} models.ErrorResponse "Unknown filter or sort value"
// @Router /v1/jobs [get]
func (h *SearchHandler) ListJobs(c *gin.Context) {
	var req models.JobsViewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Unknown filter or sort value",
			Code:  http.StatusBadRequest,
		})
		return
	}

	filter, _ := matcher.ParseFilter(req.Filter)
	sortBy, _ := matcher.ParseSort(req.Sort)

	state := session.FromContext(c)
	state.SetView(filter, sortBy)

	_, jobs, _, _ := state.Snapshot()
	view := matcher.Apply(jobs, filter, sortBy)

	cards, err := render.Cards(view)
	if err != nil {
		h.log.Error("render job cards failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, models.JobsViewResponse{
		Jobs:      view,
		CardsHTML: cards,
		Counts:    matcher.Counts(jobs),
		Filter:    string(filter),
		Sort:      string(sortBy),
	})
}

// JobDetail returns the detail modal for a listing in the current view.
// @Summary Job detail modal
// @Description Returns the listing at the given index of the current filtered/sorted view together with its rendered modal fragment.
// @Tags Jobs
// @Produce json
// @Param index path int true "Index within the current view"
// @Success 200 {object} models.JobDetailResponse "Listing detail"
// @Failure 404 {object} models.ErrorResponse "No such listing"
// @Router /v1/jobs/{index}/detail [get]
func (h *SearchHandler) JobDetail(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "No such listing",
			Code:  http.StatusNotFound,
		})
		return
	}

	state := session.FromContext(c)
	_, jobs, filter, sortBy := state.Snapshot()
	view := matcher.Apply(jobs, filter, sortBy)

	if index >= len(view) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "No such listing",
			Code:  http.StatusNotFound,
		})
		return
	}

	job := view[index]
	modal, err := render.Modal(job)
	if err != nil {
		h.log.Error("render job modal failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, models.JobDetailResponse{
		Job:        job,
		ModalHTML:  modal,
		MatchLevel: models.MatchLevel(job.MatchPercentage),
	})
}
