package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aswanig/labportal/internal/core"
	"github.com/aswanig/labportal/internal/web/middleware"
)

// handleHealth reports process liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCatalog lists parameter specs. ?set=basic narrows to the basic test
// subset; ?set=full_suite (or nothing) returns the whole catalog.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	var specs []core.ParameterSpec
	switch set := r.URL.Query().Get("set"); set {
	case "", string(core.TestFullSuite):
		specs = core.All()
	case string(core.TestBasic):
		specs = core.Basic()
	default:
		badRequest(w, fmt.Sprintf("unknown parameter set %q", set))
		return
	}
	writeJSON(w, http.StatusOK, specs)
}

// classifyResponse is the payload for the live classification endpoint.
type classifyResponse struct {
	Parameter string      `json:"parameter"`
	Value     float64     `json:"value"`
	Status    core.Status `json:"status"`
	Reason    string      `json:"reason"`
}

// handleClassify classifies a single (parameter, value) pair without
// creating anything. Used by intake forms for immediate feedback.
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("parameter")
	if name == "" {
		badRequest(w, "parameter is required")
		return
	}
	value, err := strconv.ParseFloat(r.URL.Query().Get("value"), 64)
	if err != nil {
		badRequest(w, "value must be a number")
		return
	}

	result := s.service.Classify(name, value)
	writeJSON(w, http.StatusOK, classifyResponse{
		Parameter: name,
		Value:     result.Value,
		Status:    result.Status,
		Reason:    result.Reason,
	})
}

// submitRequest is the intake payload. The caller's identity comes from the
// request context, never from the body.
type submitRequest struct {
	CustomerID string             `json:"customer_id"`
	TestType   core.TestType      `json:"test_type"`
	Values     map[string]float64 `json:"values"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		unauthenticated(w)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if req.CustomerID == "" {
		badRequest(w, "customer_id is required")
		return
	}

	sub, err := s.service.Submit(r.Context(), ident.ID, req.CustomerID, req.TestType, req.Values)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

func (s *Server) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		unauthenticated(w)
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	subs, err := s.service.Query(r.Context(), ident.ID, filter)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		unauthenticated(w)
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	sum, err := s.service.Summary(r.Context(), ident.ID, filter)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleGetSubmission(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		unauthenticated(w)
		return
	}

	id, err := submissionID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	sub, err := s.service.Get(r.Context(), ident.ID, id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

// transitionRequest carries the manager's notes for an approve or reject.
type transitionRequest struct {
	Notes string `json:"notes"`
}

// transitionFunc matches Service.Approve and Service.Reject.
type transitionFunc func(ctx context.Context, id int64, notes, approverID string) (*core.Submission, error)

func (s *Server) handleApprove(w http.ResponseWriter, r *http.Request) {
	s.handleTransition(w, r, s.service.Approve)
}

func (s *Server) handleReject(w http.ResponseWriter, r *http.Request) {
	s.handleTransition(w, r, s.service.Reject)
}

func (s *Server) handleTransition(w http.ResponseWriter, r *http.Request, apply transitionFunc) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		unauthenticated(w)
		return
	}

	id, err := submissionID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req transitionRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			badRequest(w, "invalid JSON body")
			return
		}
	}

	sub, err := apply(r.Context(), id, req.Notes, ident.ID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

// handleApprovals returns the manager approval queue.
func (s *Server) handleApprovals(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		unauthenticated(w)
		return
	}

	subs, err := s.service.PendingApprovals(r.Context(), ident.ID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

// handleAudit returns the lifecycle audit trail, newest first.
func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		unauthenticated(w)
		return
	}

	entries, err := s.service.AuditTrail(r.Context(), ident.ID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// handleTrend returns the accepted-value history for one parameter of one
// customer. Rendering any chart from it is the client's business.
func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		unauthenticated(w)
		return
	}

	customerID := chi.URLParam(r, "customerID")
	parameter := r.URL.Query().Get("parameter")
	if parameter == "" {
		badRequest(w, "parameter is required")
		return
	}

	series, err := s.service.Trend(r.Context(), ident.ID, customerID, parameter)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, series)
}

// parseFilter extracts the optional submission filters from query
// parameters: customer, technician, status, and date (YYYY-MM-DD).
func parseFilter(r *http.Request) (core.QueryFilter, error) {
	q := r.URL.Query()
	f := core.QueryFilter{
		CustomerID:   q.Get("customer"),
		TechnicianID: q.Get("technician"),
	}

	if status := q.Get("status"); status != "" {
		st := core.Status(status)
		if !st.Valid() {
			return core.QueryFilter{}, fmt.Errorf("unknown status %q", status)
		}
		f.Status = st
	}

	if date := q.Get("date"); date != "" {
		d, err := time.Parse("2006-01-02", date)
		if err != nil {
			return core.QueryFilter{}, fmt.Errorf("date must be YYYY-MM-DD")
		}
		f.Date = d
	}

	return f, nil
}

// submissionID parses the {id} route parameter.
func submissionID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid submission id")
	}
	return id, nil
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg, Code: "GEN002"})
}

func unauthenticated(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "missing identity", Code: "AUTH001"})
}
