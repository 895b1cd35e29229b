package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/kcsbuilding/guttergauge/internal/match"
	"github.com/kcsbuilding/guttergauge/internal/output"
	"github.com/kcsbuilding/guttergauge/internal/types"
)

// BaseRequiredMessage is returned when a match request has no base
const BaseRequiredMessage = "Please enter at least a Base measurement to find matches."

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseMatchRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.engine.Validate(&req); err != nil {
		if errors.Is(err, match.ErrBaseRequired) {
			writeError(w, http.StatusBadRequest, BaseRequiredMessage)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cat, err := s.provider.Catalog(r.Context())
	if err != nil {
		s.logger.Error("catalog unavailable", "id", requestID(r.Context()), "error", err)
		writeError(w, http.StatusServiceUnavailable, "catalog unavailable")
		return
	}

	result, err := s.engine.Match(cat.Profiles, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, output.NewJSONOutput(result, roleFrom(r.Context())))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	cat, err := s.provider.Catalog(r.Context())
	if err != nil {
		s.logger.Error("catalog unavailable", "id", requestID(r.Context()), "error", err)
		writeError(w, http.StatusServiceUnavailable, "catalog unavailable")
		return
	}
	writeJSON(w, http.StatusOK, cat.Stats())
}

// parseMatchRequest reads the query parameters of /api/match
func (s *Server) parseMatchRequest(r *http.Request) (match.Request, error) {
	q := r.URL.Query()

	var dims [3]float64
	for i, name := range []string{"base", "face", "back"} {
		v, err := parseFloatParam(q.Get(name))
		if err != nil {
			return match.Request{}, fmt.Errorf("invalid %s: %w", name, err)
		}
		dims[i] = v
	}

	topN := 0
	if v := q.Get("top_n"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return match.Request{}, fmt.Errorf("invalid top_n: %q", v)
		}
		topN = n
	}

	req := match.Request{
		Measurement: types.NewMeasurement(dims[0], dims[1], dims[2]),
		Region:      q.Get("region"),
		Category:    q.Get("category"),
		TopN:        topN,
		MinTier:     s.minTier,
	}
	if req.Region == "" {
		req.Region = s.region
	}
	if req.Category == "" {
		req.Category = s.category
	}
	return req, nil
}

// parseFloatParam treats a missing value as zero
func parseFloatParam(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// writeJSON encodes before writing the header so an encoding failure
// becomes a 500 instead of an empty success.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
