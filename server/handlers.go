package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/iim-amit/AmitKumar-Lumio/pkg/editor"
	lerrors "github.com/iim-amit/AmitKumar-Lumio/pkg/errors"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/logging"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/observability"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/share"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/summarize"
)

// maxBodyBytes caps request bodies; transcripts are text, a megabyte is plenty.
const maxBodyBytes = 1 << 20

// errorResponse is the JSON error envelope for all non-2xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// handleSummarize generates a mock summary from the posted transcript.
func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarize.Request
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %v", lerrors.ErrValidation, err))
		return
	}
	if req.Model == "" {
		req.Model = summarize.DefaultModel
	}
	if req.Template == "" {
		req.Template = summarize.TemplateStandard
	}

	ctx, span := s.tracer.StartSummarizeSpan(r.Context(), req.Model, req.Template)
	result, err := s.generator.Generate(ctx, req)
	observability.EndSpan(span, err)

	if err != nil {
		s.metrics.SummariesTotal.WithLabelValues(req.Template, req.Model, "error").Inc()
		s.writeError(w, r, err)
		return
	}

	s.metrics.SummariesTotal.WithLabelValues(result.Template, result.Model, "ok").Inc()
	s.writeJSON(w, http.StatusOK, result)
}

// handleShare emails a summary to the requested recipients.
func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	var req share.Request
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %v", lerrors.ErrValidation, err))
		return
	}
	if req.Format == "" {
		req.Format = share.FormatText
	}

	ctx, span := s.tracer.StartShareSpan(r.Context(), req.Format, len(req.Recipients))
	result, err := s.shares.Share(ctx, req)
	observability.EndSpan(span, err)

	if err != nil {
		s.metrics.SharesTotal.WithLabelValues(req.Format, "error").Inc()
		s.writeError(w, r, err)
		return
	}

	s.metrics.SharesTotal.WithLabelValues(result.Format, "ok").Inc()
	s.metrics.ShareRecipients.Observe(float64(result.Recipients))
	s.writeJSON(w, http.StatusOK, result)
}

// handleTemplates returns the static model and template catalogs plus the
// editor settings the client needs to mirror server-side behavior.
func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	trigger := s.cfg.HistoryTrigger
	if trigger <= 0 {
		trigger = editor.DefaultCheckpointTrigger
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"models":    summarize.Models(),
		"templates": summarize.Templates(),
		"editor": map[string]any{
			"checkpoint_trigger": trigger,
			"export_formats":     []string{editor.ExportMarkdown, editor.ExportText},
		},
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeJSON reads one JSON document from the request body, rejecting
// unknown fields and trailing garbage.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decoding request body: %v", err)
	}
	if dec.More() {
		return fmt.Errorf("request body must contain a single JSON object")
	}
	return nil
}

// writeError maps domain errors onto HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case lerrors.IsValidation(err):
		status = http.StatusBadRequest
	case lerrors.IsNotFound(err):
		status = http.StatusNotFound
	case lerrors.IsUnsupportedFormat(err):
		status = http.StatusUnsupportedMediaType
	}

	if status >= http.StatusInternalServerError {
		s.log.WithContext(r.Context()).Error("request failed",
			logging.Err(err),
			logging.F("path", r.URL.Path),
		)
	}

	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("writing response", logging.Err(err))
	}
}
