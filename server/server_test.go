package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iim-amit/AmitKumar-Lumio/config"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/editor"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/logging"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/observability"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/share"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/summarize"
)

type stubMailer struct {
	calls int
	last  share.Email
	err   error
}

func (m *stubMailer) Send(ctx context.Context, from string, email share.Email) error {
	m.calls++
	m.last = email
	return m.err
}

func newTestServer(t *testing.T, mailer share.Mailer) *Server {
	t.Helper()
	if mailer == nil {
		mailer = &stubMailer{}
	}
	cfg := config.DefaultConfig()
	cfg.GenerateDelay = 0

	log := logging.NewNopLogger()
	generator := summarize.NewGenerator(cfg.GenerateDelay, log)
	shares := share.NewService(mailer, cfg.SMTP.GetSender(), log)

	return New(cfg, generator, shares, log, &Options{
		Metrics: observability.NewMetrics(prometheus.NewRegistry()),
	})
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestSummarizeEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)
	h := srv.Handler()

	rr := postJSON(t, h, "/summarize", summarize.Request{
		Transcript: "We agreed to ship the beta on Friday.\nQA signs off on Thursday.",
		Model:      "lumio-pro",
		Template:   summarize.TemplateStandard,
	})

	require.Equal(t, http.StatusOK, rr.Code)

	var result summarize.Result
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.NotEmpty(t, result.ID)
	assert.Contains(t, result.Summary, "**Meeting Summary**")
	assert.Contains(t, result.Summary, "ship the beta on Friday")
	assert.Equal(t, "lumio-pro", result.Model)
}

func TestSummarizeDefaultsModelAndTemplate(t *testing.T) {
	srv := newTestServer(t, nil)
	rr := postJSON(t, srv.Handler(), "/summarize", summarize.Request{
		Transcript: "Short standup notes.",
	})

	require.Equal(t, http.StatusOK, rr.Code)

	var result summarize.Result
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, summarize.DefaultModel, result.Model)
	assert.Equal(t, summarize.TemplateStandard, result.Template)
}

func TestSummarizeEmptyTranscript(t *testing.T) {
	srv := newTestServer(t, nil)
	rr := postJSON(t, srv.Handler(), "/summarize", summarize.Request{
		Transcript: "   ",
		Model:      "lumio-pro",
		Template:   summarize.TemplateStandard,
	})

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "transcript")
}

func TestSummarizeUnknownTemplate(t *testing.T) {
	srv := newTestServer(t, nil)
	rr := postJSON(t, srv.Handler(), "/summarize", summarize.Request{
		Transcript: "Notes.",
		Model:      "lumio-pro",
		Template:   "haiku",
	})

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSummarizeMalformedBody(t *testing.T) {
	srv := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/summarize", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestShareEndpoint(t *testing.T) {
	mailer := &stubMailer{}
	srv := newTestServer(t, mailer)

	rr := postJSON(t, srv.Handler(), "/share", share.Request{
		Recipients: []string{"alice@example.com"},
		Summary:    "**Meeting Summary**\n- shipped",
	})

	require.Equal(t, http.StatusOK, rr.Code)

	var result share.Result
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Recipients)
	assert.Equal(t, share.FormatText, result.Format)
	assert.Equal(t, 1, mailer.calls)
	assert.Equal(t, []string{"alice@example.com"}, mailer.last.To)
}

func TestShareValidationFailure(t *testing.T) {
	mailer := &stubMailer{}
	srv := newTestServer(t, mailer)

	rr := postJSON(t, srv.Handler(), "/share", share.Request{
		Recipients: []string{"not-an-address"},
		Summary:    "notes",
	})

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 0, mailer.calls)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "not-an-address")
}

func TestShareTransportFailure(t *testing.T) {
	mailer := &stubMailer{err: errors.New("connection refused")}
	srv := newTestServer(t, mailer)

	rr := postJSON(t, srv.Handler(), "/share", share.Request{
		Recipients: []string{"alice@example.com"},
		Summary:    "notes",
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestTemplatesEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/templates", nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var catalog struct {
		Models    []summarize.Model    `json:"models"`
		Templates []summarize.Template `json:"templates"`
		Editor    struct {
			CheckpointTrigger int      `json:"checkpoint_trigger"`
			ExportFormats     []string `json:"export_formats"`
		} `json:"editor"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &catalog))
	assert.Len(t, catalog.Models, 3)
	assert.Len(t, catalog.Templates, 4)
	assert.Equal(t, summarize.TemplateStandard, catalog.Templates[0].Key)
	assert.Equal(t, editor.DefaultCheckpointTrigger, catalog.Editor.CheckpointTrigger)
	assert.Equal(t, []string{editor.ExportMarkdown, editor.ExportText}, catalog.Editor.ExportFormats)
}

func TestHealthzAndVersion(t *testing.T) {
	srv := newTestServer(t, nil)
	h := srv.Handler()

	for _, path := range []string{"/healthz", "/version", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}
}

func TestRequestIDEchoedAndGenerated(t *testing.T) {
	srv := newTestServer(t, nil)
	h := srv.Handler()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "client-supplied-id")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "client-supplied-id", rr.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.NotEmpty(t, rr.Header().Get(RequestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/summarize", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestMetricsRouteLabelUsesPattern(t *testing.T) {
	registry := prometheus.NewRegistry()

	cfg := config.DefaultConfig()
	cfg.GenerateDelay = 0
	log := logging.NewNopLogger()
	generator := summarize.NewGenerator(cfg.GenerateDelay, log)
	shares := share.NewService(&stubMailer{}, cfg.SMTP.GetSender(), log)
	srv := New(cfg, generator, shares, log, &Options{
		Metrics: observability.NewMetrics(registry),
	})
	h := srv.Handler()

	for _, path := range []string{"/healthz", "/wp-admin/setup.php", "/wp-admin/install.php"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	families, err := registry.Gather()
	require.NoError(t, err)

	routes := map[string]bool{}
	for _, mf := range families {
		if mf.GetName() != "lumio_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "route" {
					routes[label.GetValue()] = true
				}
			}
		}
	}

	// Scanned paths collapse into one label value instead of one per path.
	assert.True(t, routes["GET /healthz"])
	assert.True(t, routes["unmatched"])
	assert.False(t, routes["/wp-admin/setup.php"])
	assert.Len(t, routes, 2)
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/summarize", nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
