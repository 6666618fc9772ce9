package handlers

import (
	"bytes"
	"io"
	"math/rand"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jobpulse/gateway/config"
	"github.com/jobpulse/gateway/intake"
	"github.com/jobpulse/gateway/search"
	"github.com/jobpulse/gateway/session"
	"github.com/jobpulse/gateway/upstream"
)

func init() {
	gin.SetMode(gin.TestMode)
	RegisterValidators()
}

// testEnv wires the router the way main does, with every upstream pointed
// at a stub server, and keeps a cookie jar so consecutive requests share a
// session.
type testEnv struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
}

func newTestEnv(t *testing.T, mux *http.ServeMux) *testEnv {
	t.Helper()

	if mux == nil {
		mux = http.NewServeMux()
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		ParseServiceURL:    srv.URL,
		SearchServiceURL:   srv.URL,
		EditsServiceURL:    srv.URL,
		HTTPTimeoutSeconds: 5,
		SessionSecret:      "test-secret",
		SessionExpiryHours: 1,
	}
	log := zap.NewNop()

	parseClient := upstream.NewParseClient(cfg)
	searchClient := upstream.NewSearchClient(cfg)
	editsClient := upstream.NewEditsClient(cfg)

	in := intake.New(parseClient, log)
	samples := search.NewSampleGenerator(rand.New(rand.NewSource(1)))
	invoker := search.NewInvoker(searchClient, samples, log)

	tokens := session.NewTokenService(cfg)
	store := session.NewStore(time.Duration(cfg.SessionExpiryHours) * time.Hour)

	resumeHandler := NewResumeHandler(in, editsClient, log)
	searchHandler := NewSearchHandler(invoker, log)
	prefsHandler := NewPrefsHandler()

	router := gin.New()
	router.GET("/health", HealthCheck)

	api := router.Group("/api")
	api.Use(session.Middleware(tokens, store))
	{
		v1 := api.Group("/v1")
		{
			v1.POST("/resume/parse", resumeHandler.ParseResume)
			v1.DELETE("/resume", resumeHandler.ResetResume)
			v1.POST("/resume/edits", resumeHandler.SaveEdits)
			v1.GET("/jobs", searchHandler.ListJobs)
			v1.GET("/jobs/:index/detail", searchHandler.JobDetail)
			v1.GET("/preferences/theme", prefsHandler.GetTheme)
			v1.PUT("/preferences/theme", prefsHandler.SetTheme)
		}
		api.POST("/v2/search-realtime", searchHandler.SearchRealtime)
	}

	return &testEnv{t: t, router: router}
}

func (e *testEnv) do(method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	e.t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, cookie := range e.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		e.setCookie(cookie)
	}
	return w
}

func (e *testEnv) doJSON(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	return e.do(method, path, "application/json", reader)
}

func (e *testEnv) setCookie(cookie *http.Cookie) {
	for i, existing := range e.cookies {
		if existing.Name == cookie.Name {
			e.cookies[i] = cookie
			return
		}
	}
	e.cookies = append(e.cookies, cookie)
}

// uploadBody builds a multipart request body with a single "file" part.
func uploadBody(t *testing.T, filename, contentType, content string) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
	header["Content-Type"] = []string{contentType}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}
