package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ayusman/hasta/internal/app"
	"github.com/ayusman/hasta/internal/detector"
)

func TestStateHandler_Broadcast(t *testing.T) {
	pipeline := &mockPipeline{enabled: true}
	h := NewStateHandler(pipeline)

	ts := httptest.NewServer(h)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	pipeline.setState(app.State{
		Hands:       1,
		Handedness:  detector.HandednessLeft,
		FingerCount: 5,
		TimestampMs: time.Now().UnixMilli(),
	})

	conn.SetReadDeadline(time.Now().Add(3 * time.Second))

	var state app.State
	if err := conn.ReadJSON(&state); err != nil {
		t.Fatalf("read state: %v", err)
	}
	if state.Hands != 1 || state.FingerCount != 5 {
		t.Errorf("state = %+v", state)
	}
	if state.Handedness != detector.HandednessLeft {
		t.Errorf("handedness = %v, want Left", state.Handedness)
	}
}
