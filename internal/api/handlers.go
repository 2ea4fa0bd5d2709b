package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/gitroast/pkg/buildinfo"
	"github.com/matzehuels/gitroast/pkg/errors"
	"github.com/matzehuels/gitroast/pkg/stats"
)

// maxBodyBytes bounds POST bodies. Two summaries fit with room to spare.
const maxBodyBytes = 64 << 10

type compareRequest struct {
	User1 string `json:"user1"`
	User2 string `json:"user2"`
}

type roastsRequest struct {
	User1 stats.Summary `json:"user1"`
	User2 stats.Summary `json:"user2"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if err := errors.ValidateUsername(username); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidUsername, err, "Please enter a valid GitHub username"))
		return
	}

	profile, err := s.runner.FetchProfile(r.Context(), username)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	s.compare(w, r, req.User1, req.User2)
}

func (s *Server) handleCompareQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.compare(w, r, q.Get("u1"), q.Get("u2"))
}

func (s *Server) compare(w http.ResponseWriter, r *http.Request, user1, user2 string) {
	cmp, err := s.runner.Compare(r.Context(), user1, user2)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}

func (s *Server) handleRoasts(w http.ResponseWriter, r *http.Request) {
	var req roastsRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if req.User1.Name == "" || req.User2.Name == "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "Both users need a name"))
		return
	}

	roasts, err := s.runner.GenerateRoasts(r.Context(), req.User1, req.User2)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, roasts)
}

// decodeBody reads a JSON body of at most maxBodyBytes into dst. On failure
// it writes the response and returns false.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "Request body too large"})
		return false
	}
	s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "Invalid request body"))
	return false
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "code", code, "err", err)
	}
	var rl *errors.RateLimitedError
	if stderrors.As(err, &rl) && rl.RetryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(rl.RetryAfter))
	}
	msg := errors.UserMessage(err)
	if code == "" {
		msg = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidUsername:
		return http.StatusBadRequest
	case errors.ErrCodeUserNotFound, errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case errors.ErrCodeConfig:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
