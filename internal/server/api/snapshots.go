// Package api provides HTTP API handlers for the Hasta hand tracking service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ayusman/hasta/internal/store"
)

// Snapshotter captures the live tracking state into the store.
// The app pipeline implements it.
type Snapshotter interface {
	Snapshot() (*store.Snapshot, error)
}

// SnapshotsHandler handles HTTP requests for snapshot resources.
type SnapshotsHandler struct {
	store       *store.Store
	snapshotter Snapshotter
}

// NewSnapshotsHandler creates a new SnapshotsHandler. The snapshotter may
// be nil, in which case capturing new snapshots is unavailable.
func NewSnapshotsHandler(s *store.Store, snapshotter Snapshotter) *SnapshotsHandler {
	return &SnapshotsHandler{store: s, snapshotter: snapshotter}
}

// ServeHTTP implements the http.Handler interface and routes requests.
// Expected paths: /api/snapshots and /api/snapshots/{id}
func (h *SnapshotsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/snapshots")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		// Collection endpoint: /api/snapshots
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// Item endpoint: /api/snapshots/{id}
	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Response types

type landmarkResponse struct {
	Index int `json:"index"`
	X     int `json:"x"`
	Y     int `json:"y"`
}

type snapshotResponse struct {
	ID          string             `json:"id"`
	TakenAt     string             `json:"taken_at"`
	Handedness  string             `json:"handedness"`
	Fingers     string             `json:"fingers"`
	FingerCount int                `json:"finger_count"`
	Pinch       float64            `json:"pinch"`
	Landmarks   []landmarkResponse `json:"landmarks,omitempty"`
}

type listSnapshotsResponse struct {
	Snapshots []snapshotResponse `json:"snapshots"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// toResponse converts a store.Snapshot to a snapshotResponse.
func toResponse(s *store.Snapshot) snapshotResponse {
	return snapshotResponse{
		ID:          s.ID,
		TakenAt:     s.TakenAt.Format("2006-01-02T15:04:05Z07:00"),
		Handedness:  s.Handedness,
		Fingers:     s.Fingers,
		FingerCount: s.FingerCount,
		Pinch:       s.Pinch,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// list handles GET /api/snapshots and returns all snapshots, newest first.
func (h *SnapshotsHandler) list(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.store.Snapshots().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list snapshots")
		return
	}

	response := listSnapshotsResponse{
		Snapshots: make([]snapshotResponse, 0, len(snapshots)),
	}
	for _, s := range snapshots {
		response.Snapshots = append(response.Snapshots, toResponse(s))
	}

	writeJSON(w, http.StatusOK, response)
}

// create handles POST /api/snapshots by capturing the live tracking state.
func (h *SnapshotsHandler) create(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		writeError(w, http.StatusServiceUnavailable, "Tracking pipeline not available")
		return
	}

	snap, err := h.snapshotter.Snapshot()
	if err != nil {
		writeError(w, http.StatusConflict, "No tracking state to capture")
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(snap))
}

// get handles GET /api/snapshots/{id} and includes the stored landmarks.
func (h *SnapshotsHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	snap, err := h.store.Snapshots().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Snapshot not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load snapshot")
		return
	}

	response := toResponse(snap)

	landmarks, err := h.store.Snapshots().GetLandmarks(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load landmarks")
		return
	}
	for _, lm := range landmarks {
		response.Landmarks = append(response.Landmarks, landmarkResponse{Index: lm.Index, X: lm.X, Y: lm.Y})
	}

	writeJSON(w, http.StatusOK, response)
}

// delete handles DELETE /api/snapshots/{id}.
func (h *SnapshotsHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.store.Snapshots().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Snapshot not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete snapshot")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
