package app

import (
	"github.com/ayusman/hasta/internal/detector"
	"github.com/ayusman/hasta/internal/tracking"
)

// State is a point-in-time summary of what the tracker sees: the primary
// hand's landmarks, finger states, and pinch distance. It is the unit
// broadcast to WebSocket clients and persisted by snapshots.
type State struct {
	Hands       int                       `json:"hands"`
	Handedness  detector.Handedness       `json:"handedness"`
	Fingers     [tracking.NumFingers]bool `json:"fingers"`
	FingerCount int                       `json:"finger_count"`
	Landmarks   []tracking.Landmark       `json:"landmarks"`
	BBox        tracking.BBox             `json:"bbox"`
	Pinch       float64                   `json:"pinch"`
	TimestampMs int64                     `json:"timestamp_ms"`
}

// FingerBits renders the finger states as five '0'/'1' characters,
// thumb first, for compact storage.
func (s State) FingerBits() string {
	bits := make([]byte, tracking.NumFingers)
	for i, up := range s.Fingers {
		if up {
			bits[i] = '1'
		} else {
			bits[i] = '0'
		}
	}
	return string(bits)
}

// stateFromResult derives a State from one processed frame. Multi-hand
// frames report the primary hand at index 0.
func stateFromResult(result tracking.Result, nowMs int64) State {
	state := State{
		Hands:       result.HandCount(),
		Handedness:  result.Handedness(0),
		TimestampMs: nowMs,
	}

	landmarks, box := result.Positions(0)
	if len(landmarks) == 0 {
		return state
	}

	state.Landmarks = landmarks
	state.BBox = box
	state.Fingers = tracking.FingersUp(landmarks, state.Handedness)
	state.FingerCount = tracking.CountUp(state.Fingers)

	// Thumb-index pinch distance; ids are always valid for a full list.
	if pinch, _, err := tracking.Distance(landmarks, detector.ThumbTip, detector.IndexTip); err == nil {
		state.Pinch = pinch
	}

	return state
}
