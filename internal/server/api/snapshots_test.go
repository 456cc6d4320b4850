package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ayusman/hasta/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func seedSnapshot(t *testing.T, s *store.Store, id string) {
	t.Helper()

	snap := &store.Snapshot{
		ID:          id,
		Handedness:  "Left",
		Fingers:     "11000",
		FingerCount: 2,
		Pinch:       33.0,
	}
	landmarks := []store.Landmark{{Index: 0, X: 320, Y: 384}, {Index: 1, X: 350, Y: 360}}
	if err := s.Snapshots().Create(snap, landmarks); err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}
}

// stubSnapshotter returns a canned snapshot or error.
type stubSnapshotter struct {
	snap *store.Snapshot
	err  error
}

func (s *stubSnapshotter) Snapshot() (*store.Snapshot, error) {
	return s.snap, s.err
}

func TestSnapshotsHandler_List(t *testing.T) {
	s := newTestStore(t)
	seedSnapshot(t, s, "snap-1")
	seedSnapshot(t, s, "snap-2")
	h := NewSnapshotsHandler(s, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/snapshots", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var response listSnapshotsResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(response.Snapshots) != 2 {
		t.Errorf("expected 2 snapshots, got %d", len(response.Snapshots))
	}
}

func TestSnapshotsHandler_Get(t *testing.T) {
	s := newTestStore(t)
	seedSnapshot(t, s, "snap-1")
	h := NewSnapshotsHandler(s, nil)

	t.Run("existing snapshot includes landmarks", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/snapshots/snap-1", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		var response snapshotResponse
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if response.Handedness != "Left" {
			t.Errorf("handedness = %s, want Left", response.Handedness)
		}
		if len(response.Landmarks) != 2 {
			t.Errorf("expected 2 landmarks, got %d", len(response.Landmarks))
		}
	})

	t.Run("missing snapshot yields 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/snapshots/missing", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}

func TestSnapshotsHandler_Create(t *testing.T) {
	t.Run("captures via the snapshotter", func(t *testing.T) {
		s := newTestStore(t)
		stub := &stubSnapshotter{
			snap: &store.Snapshot{ID: "live-1", Handedness: "Right", Fingers: "01000", FingerCount: 1},
		}
		h := NewSnapshotsHandler(s, stub)

		req := httptest.NewRequest(http.MethodPost, "/api/snapshots", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
		}

		var response snapshotResponse
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if response.ID != "live-1" {
			t.Errorf("id = %s, want live-1", response.ID)
		}
	})

	t.Run("no pipeline yields 503", func(t *testing.T) {
		h := NewSnapshotsHandler(newTestStore(t), nil)

		req := httptest.NewRequest(http.MethodPost, "/api/snapshots", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
		}
	})

	t.Run("no state yields 409", func(t *testing.T) {
		stub := &stubSnapshotter{err: errors.New("no tracking state available")}
		h := NewSnapshotsHandler(newTestStore(t), stub)

		req := httptest.NewRequest(http.MethodPost, "/api/snapshots", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusConflict {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
		}
	})
}

func TestSnapshotsHandler_Delete(t *testing.T) {
	s := newTestStore(t)
	seedSnapshot(t, s, "snap-1")
	h := NewSnapshotsHandler(s, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/snapshots/snap-1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}

	if _, err := s.Snapshots().GetByID("snap-1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("snapshot should be deleted, got %v", err)
	}

	// Deleting again yields 404
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/snapshots/snap-1", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestSnapshotsHandler_MethodNotAllowed(t *testing.T) {
	h := NewSnapshotsHandler(newTestStore(t), nil)

	req := httptest.NewRequest(http.MethodPut, "/api/snapshots", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestSettingsHandler(t *testing.T) {
	s := newTestStore(t)
	h := NewSettingsHandler(s)

	t.Run("empty settings", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		var settings map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&settings); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(settings) != 0 {
			t.Errorf("expected empty settings, got %v", settings)
		}
	})

	t.Run("put stores values", func(t *testing.T) {
		body := strings.NewReader(`{"camera_id": "0", "min_detection_conf": "0.6"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/settings", body)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		value, err := s.Settings().Get("min_detection_conf")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if value != "0.6" {
			t.Errorf("value = %s, want 0.6", value)
		}
	})

	t.Run("empty body is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("invalid json is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(`not json`))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}
