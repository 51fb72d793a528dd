// Package api exposes HTTP handlers for the signups service.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"example.com/signups/internal/domain"
	"example.com/signups/internal/observability"
)

// Handler coordinates HTTP requests with the roster service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/activities", h.activities)
	mux.HandleFunc("/activities/", h.rosterAction)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listActivities(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

// rosterAction dispatches /activities/{name}/signup and
// /activities/{name}/unregister. The name segment arrives URL-decoded, so
// activity names containing spaces resolve literally.
func (h *Handler) rosterAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")

	if name, ok := strings.CutSuffix(rest, "/signup"); ok {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
			return
		}
		h.signUp(w, r, name)
		return
	}

	if name, ok := strings.CutSuffix(rest, "/unregister"); ok {
		if r.Method != http.MethodDelete {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
			return
		}
		h.unregister(w, r, name)
		return
	}

	writeError(w, http.StatusNotFound, "not_found", "resource not found")
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	view := make(CatalogView, 0, len(activities))
	for _, act := range activities {
		view = append(view, CatalogEntry{Name: act.Name, Activity: toActivityView(act)})
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request, name string) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "missing email parameter")
		return
	}

	act, err := h.service.SignUp(r.Context(), name, email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			observability.RecordRejection("signup", "activity_not_found")
			writeError(w, http.StatusNotFound, "not_found", "activity not found")
		case errors.Is(err, domain.ErrAlreadySignedUp):
			observability.RecordRejection("signup", "already_signed_up")
			writeError(w, http.StatusBadRequest, "conflict", "already signed up for this activity")
		default:
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}

	observability.RecordSignup(act.Name, len(act.Participants))
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request, name string) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "missing email parameter")
		return
	}

	act, err := h.service.Unregister(r.Context(), name, email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			observability.RecordRejection("unregister", "activity_not_found")
			writeError(w, http.StatusNotFound, "not_found", "activity not found")
		case errors.Is(err, domain.ErrNotSignedUp):
			observability.RecordRejection("unregister", "not_signed_up")
			writeError(w, http.StatusBadRequest, "conflict", "not signed up for this activity")
		default:
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}

	observability.RecordUnregister(act.Name, len(act.Participants))
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Removed %s from %s", email, name),
	})
}

// ActivityView is the serialized activity record. The name is the object key in
// the catalog response, so it is not repeated inside the record.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// CatalogEntry pairs an activity name with its record.
type CatalogEntry struct {
	Name     string
	Activity ActivityView
}

// CatalogView serializes the catalog as a JSON object keyed by activity name.
// A map would lose the seed ordering, so the entries marshal themselves.
type CatalogView []CatalogEntry

// MarshalJSON writes the entries as an object, preserving slice order.
func (c CatalogView) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(entry.Activity)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MessageResponse is the confirmation body for roster mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toActivityView(act domain.Activity) ActivityView {
	participants := act.Participants
	if participants == nil {
		participants = []string{}
	}
	return ActivityView{
		Description:     act.Description,
		Schedule:        act.Schedule,
		MaxParticipants: act.MaxParticipants,
		Participants:    participants,
	}
}
