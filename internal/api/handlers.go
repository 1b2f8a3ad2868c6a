package api

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ayoisaiah/deepwork/internal/apperr"
	"github.com/ayoisaiah/deepwork/internal/config"
	"github.com/ayoisaiah/deepwork/internal/export"
	"github.com/ayoisaiah/deepwork/internal/metrics"
	"github.com/ayoisaiah/deepwork/internal/session"
	"github.com/ayoisaiah/deepwork/models"
)

// CreateRequest is the body of POST /sessions/.
type CreateRequest struct {
	Goal              *string `json:"goal"`
	Title             string  `json:"title"              validate:"required"`
	ScheduledDuration int     `json:"scheduled_duration" validate:"gt=0"`
}

// PauseRequest is the body of PATCH /sessions/{id}/pause.
type PauseRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// SessionDetail is a session with its interruptions and metrics.
type SessionDetail struct {
	*models.Session
	Interruptions []*models.Interruption `json:"interruptions"`
	metrics.SessionMetrics
}

var errInvalidBody = &apperr.Error{
	Message: "invalid request body",
	Kind:    apperr.ErrInvalidInput,
}

var errInvalidID = &apperr.Error{
	Message: "session id must be an integer, got %q",
	Kind:    apperr.ErrInvalidInput,
}

func sessionID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errInvalidID.Fmt(raw)
	}

	return id, nil
}

// decodeValid decodes the body into v and validates its struct tags.
func (s *Server) decodeValid(r *http.Request, v any) error {
	if err := decodeJSON(r, v); err != nil {
		return errInvalidBody.Wrap(err)
	}

	if err := s.validate.Struct(v); err != nil {
		return errInvalidBody.Wrap(err)
	}

	return nil
}

func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Create handles POST /sessions/
func (s *Server) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := s.decodeValid(r, &req); err != nil {
		s.writeErr(w, r, err)
		return
	}

	sess, err := s.engine.Create(session.CreateParams{
		Title:             req.Title,
		Goal:              req.Goal,
		ScheduledDuration: req.ScheduledDuration,
	})
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sess)
}

// Get handles GET /sessions/{id}
func (s *Server) Get(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	sess, err := s.engine.Get(id)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	in, err := s.engine.Interruptions(id)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	if in == nil {
		in = []*models.Interruption{}
	}

	writeJSON(w, http.StatusOK, SessionDetail{
		Session:        sess,
		Interruptions:  in,
		SessionMetrics: metrics.ForSession(sess, len(in)),
	})
}

// Delete handles DELETE /sessions/{id}
func (s *Server) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	if err := s.engine.Delete(id); err != nil {
		s.writeErr(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// transition runs a lifecycle operation on the session named in the path.
func (s *Server) transition(
	w http.ResponseWriter,
	r *http.Request,
	op func(id int64) (*models.Session, error),
) {
	id, err := sessionID(r)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	sess, err := op(id)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sess)
}

// Start handles PATCH /sessions/{id}/start
func (s *Server) Start(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, s.engine.Start)
}

// Pause handles PATCH /sessions/{id}/pause
func (s *Server) Pause(w http.ResponseWriter, r *http.Request) {
	var req PauseRequest
	if err := s.decodeValid(r, &req); err != nil {
		s.writeErr(w, r, err)
		return
	}

	s.transition(w, r, func(id int64) (*models.Session, error) {
		return s.engine.Pause(id, req.Reason)
	})
}

// Resume handles PATCH /sessions/{id}/resume
func (s *Server) Resume(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, s.engine.Resume)
}

// Complete handles PATCH /sessions/{id}/complete
func (s *Server) Complete(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, s.engine.Complete)
}

// History handles GET /sessions/history. The optional period, since,
// until and status query parameters narrow the result.
func (s *Server) History(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f, err := config.ParseFilter(config.FilterOptions{
		Period: q.Get("period"),
		Since:  q.Get("since"),
		Until:  q.Get("until"),
		Status: q["status"],
	}, s.clock.Now())
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	entries, err := metrics.History(s.src, f)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	if entries == nil {
		entries = []metrics.HistoryEntry{}
	}

	writeJSON(w, http.StatusOK, entries)
}

// WeeklyReport handles GET /sessions/weekly-report
func (s *Server) WeeklyReport(w http.ResponseWriter, r *http.Request) {
	report, err := metrics.Weekly(s.src, s.clock)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Export handles GET /sessions/export
func (s *Server) Export(w http.ResponseWriter, r *http.Request) {
	entries, err := metrics.History(s.src, metrics.Filter{})
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.CSV(&buf, entries); err != nil {
		s.writeErr(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="sessions.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
