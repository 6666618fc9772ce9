package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobpulse/gateway/models"
)

const themePath = "/api/v1/preferences/theme"

func getTheme(t *testing.T, env *testEnv) string {
	t.Helper()

	w := env.doJSON(http.MethodGet, themePath, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ThemeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Theme
}

func TestGetThemeDefaultsToLight(t *testing.T) {
	env := newTestEnv(t, nil)

	assert.Equal(t, "light", getTheme(t, env))
}

func TestThemeRoundTrip(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.doJSON(http.MethodPut, themePath, `{"theme":"dark"}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "dark", getTheme(t, env))
}

func TestSetThemeRejectsUnknownValue(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.doJSON(http.MethodPut, themePath, `{"theme":"solarized"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Theme must be light or dark", resp.Error)
}

func TestGetThemeIgnoresTamperedCookie(t *testing.T) {
	env := newTestEnv(t, nil)
	env.setCookie(&http.Cookie{Name: "theme", Value: "hacked"})

	assert.Equal(t, "light", getTheme(t, env))
}
