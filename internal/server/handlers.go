package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/matzehuels/sankeyflow/pkg/buildinfo"
	"github.com/matzehuels/sankeyflow/pkg/dataset"
	"github.com/matzehuels/sankeyflow/pkg/errors"
	"github.com/matzehuels/sankeyflow/pkg/flow"
	"github.com/matzehuels/sankeyflow/pkg/pipeline"
	"github.com/matzehuels/sankeyflow/pkg/render"
)

// Request is the body of every /v1 endpoint: pipeline options plus an
// optional text-format dataset, used when the structured dataset is empty.
type Request struct {
	pipeline.Options
	Text string `json:"text,omitempty"`
}

// RenderResponse is returned by /v1/render when several formats are
// requested. Artifacts are base64 encoded.
type RenderResponse struct {
	ID        string            `json:"id"`
	Stats     flow.Stats        `json:"stats"`
	Artifacts map[string][]byte `json:"artifacts"`
	Cached    bool              `json:"cached"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HealthResponse is the body of /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

// cacheHeader reports whether a response came from the cache.
const cacheHeader = "X-Cache"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Info: buildinfo.Get()})
}

// handleRender returns the raw artifact for a single format and a
// RenderResponse otherwise.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := decodeRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set(cacheHeader, cacheStatus(result.CacheInfo.RenderHit))
	if len(opts.Formats) == 1 {
		name := opts.Formats[0]
		w.Header().Set("Content-Type", render.Format(name).ContentType())
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(result.Artifacts[name])
		return
	}
	writeJSON(w, http.StatusOK, RenderResponse{
		ID:        result.Layout.ID,
		Stats:     result.Flow,
		Artifacts: result.Artifacts,
		Cached:    result.CacheInfo.RenderHit,
	})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := decodeRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	res, err := s.runner.Layout(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set(cacheHeader, cacheStatus(res.Cached))
	writeJSON(w, http.StatusOK, res.Snapshot)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	opts, err := decodeRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	st, err := s.runner.Stats(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// =============================================================================
// Helpers
// =============================================================================

// decodeRequest reads a Request and resolves its dataset. Format names are
// normalized the way the CLI normalizes them.
func decodeRequest(r *http.Request) (pipeline.Options, error) {
	var req Request
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return pipeline.Options{}, err
		}
		return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request")
	}

	opts := req.Options
	if len(opts.Dataset.Nodes) == 0 && req.Text != "" {
		ds, err := dataset.ParseText(strings.NewReader(req.Text))
		if err != nil {
			return pipeline.Options{}, err
		}
		opts.Dataset = ds
	}
	if len(opts.Formats) > 0 {
		formats, err := render.ParseFormats(strings.Join(opts.Formats, ","))
		if err != nil {
			return pipeline.Options{}, err
		}
		opts.Formats = opts.Formats[:0]
		for _, f := range formats {
			opts.Formats = append(opts.Formats, string(f))
		}
	}
	opts.Logger = nil
	return opts, nil
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case stderrors.As(err, &tooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{
			Error: "request body too large",
			Code:  string(errors.ErrCodeInvalidInput),
		})
	case errors.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: errors.UserMessage(err),
			Code:  string(errors.GetCode(err)),
		})
	default:
		s.logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "internal error",
			Code:  string(errors.ErrCodeInternal),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
