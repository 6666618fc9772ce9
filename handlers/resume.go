package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobpulse/gateway/intake"
	"github.com/jobpulse/gateway/models"
	"github.com/jobpulse/gateway/render"
	"github.com/jobpulse/gateway/session"
	"github.com/jobpulse/gateway/upstream"
)

// ResumeHandler handles resume upload, reset and edits.
type ResumeHandler struct {
	intake *intake.Intake
	edits  *upstream.EditsClient
	log    *zap.Logger
}

// NewResumeHandler creates a new resume handler.
func NewResumeHandler(in *intake.Intake, edits *upstream.EditsClient, log *zap.Logger) *ResumeHandler {
	return &ResumeHandler{intake: in, edits: edits, log: log}
}

// ParseResume accepts a resume upload and installs the parsed profile in
// the session.
// @Summary Upload and parse a resume
// @Description Validates the uploaded file (PDF, DOCX or TXT, max 10 MiB), parses it via the upstream service and stores the resulting profile in the session. Parse failures degrade to a fallback profile; the source field discloses which profile was adopted.
// @Tags Resume
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file (PDF, DOCX, TXT)"
// @Success 200 {object} models.ParseResumeResponse "Parsed profile and rendered preview"
// @Failure 400 {object} models.ErrorResponse "Invalid file type or size"
// @Router /v1/resume/parse [post]
func (h *ResumeHandler) ParseResume(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Resume file is required",
			Code:  http.StatusBadRequest,
		})
		return
	}
	defer file.Close()

	profile, source, err := h.intake.Submit(c.Request.Context(), file, header)
	if err != nil {
		// Validation failures only; upstream trouble already degraded to a
		// fallback profile inside Submit.
		if errors.Is(err, intake.ErrUnsupportedType) || errors.Is(err, intake.ErrFileTooLarge) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: err.Error(),
				Code:  http.StatusBadRequest,
			})
			return
		}
		h.log.Error("resume submit failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to read resume file",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	state := session.FromContext(c)
	state.SetProfile(profile)

	preview, err := render.Preview(*profile, header.Filename)
	if err != nil {
		h.log.Error("render resume preview failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, models.ParseResumeResponse{
		Profile:     *profile,
		Source:      source,
		FileName:    header.Filename,
		PreviewHTML: preview,
	})
}

// ResetResume clears the session profile.
// @Summary Reset the uploaded resume
// @Description Clears the active resume profile from the session.
// @Tags Resume
// @Produce json
// @Success 204 "Profile cleared"
// @Router /v1/resume [delete]
func (h *ResumeHandler) ResetResume(c *gin.Context) {
	session.FromContext(c).ClearProfile()
	c.Status(http.StatusNoContent)
}

// SaveEdits forwards edited contact details to the upstream service.
// @Summary Save resume edits
// @Description Forwards edited email/phone/skills to the save-edits service. On success the client navigates to the redirect target; on failure the server-supplied message is surfaced for a blocking prompt.
// @Tags Resume
// @Accept json
// @Produce json
// @Param request body models.SaveEditsRequest true "Edited contact fields"
// @Success 200 {object} models.SaveEditsResponse "Edits saved"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 502 {object} models.ErrorResponse "Save-edits service rejected the request"
// @Router /v1/resume/edits [post]
func (h *ResumeHandler) SaveEdits(c *gin.Context) {
	var req models.SaveEditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	if err := h.edits.SaveEdits(c.Request.Context(), req); err != nil {
		h.log.Warn("save edits failed", zap.Error(err))

		details := ""
		var upErr *upstream.Error
		if errors.As(err, &upErr) && upErr.Message != "" {
			details = upErr.Message
		}
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "Failed to save changes",
			Code:    http.StatusBadGateway,
			Details: details,
		})
		return
	}

	// Keep the session profile in step with the saved edits.
	state := session.FromContext(c)
	if profile := state.Profile(); profile != nil {
		updated := *profile
		updated.Email = req.Email
		updated.Phone = req.Phone
		if len(req.Skills) > 0 {
			updated.Skills = req.Skills
		}
		state.SetProfile(&updated)
	}

	c.JSON(http.StatusOK, models.SaveEditsResponse{Redirect: "/filtered-jobs"})
}
