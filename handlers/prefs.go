package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobpulse/gateway/models"
)

const (
	themeCookie = "theme"
	// themeCookieMaxAge keeps the preference for a year; it is the only
	// state that survives a page session.
	themeCookieMaxAge = 365 * 24 * 3600
)

// PrefsHandler handles the theme preference, the single durable client flag.
type PrefsHandler struct{}

// NewPrefsHandler creates a new preferences handler.
func NewPrefsHandler() *PrefsHandler {
	return &PrefsHandler{}
}

// GetTheme reports the stored theme preference.
// @Summary Get theme preference
// @Tags Preferences
// @Produce json
// @Success 200 {object} models.ThemeResponse "Current theme"
// @Router /v1/preferences/theme [get]
func (h *PrefsHandler) GetTheme(c *gin.Context) {
	theme, err := c.Cookie(themeCookie)
	if err != nil || (theme != "dark" && theme != "light") {
		theme = "light"
	}
	c.JSON(http.StatusOK, models.ThemeResponse{Theme: theme})
}

// SetTheme stores the theme preference.
// @Summary Set theme preference
// @Tags Preferences
// @Accept json
// @Produce json
// @Param request body models.ThemeRequest true "Theme to store"
// @Success 200 {object} models.ThemeResponse "Stored theme"
// @Failure 400 {object} models.ErrorResponse "Invalid theme"
// @Router /v1/preferences/theme [put]
func (h *PrefsHandler) SetTheme(c *gin.Context) {
	var req models.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Theme must be light or dark",
			Code:  http.StatusBadRequest,
		})
		return
	}

	c.SetCookie(themeCookie, req.Theme, themeCookieMaxAge, "/", "", false, false)
	c.JSON(http.StatusOK, models.ThemeResponse{Theme: req.Theme})
}
