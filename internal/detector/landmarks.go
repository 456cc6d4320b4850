// Package detector provides the interface to the external hand-landmark model.
package detector

import (
	"encoding/json"
	"fmt"
)

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D is a landmark position as reported by the model: x and y are
// normalized to [0,1] relative to the frame, z is depth relative to the wrist.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Handedness classifies a detected hand as left or right.
type Handedness int

const (
	HandednessUnknown Handedness = iota
	HandednessLeft
	HandednessRight
)

// ParseHandedness converts the label reported by the landmark model.
// Unrecognized labels map to HandednessUnknown.
func ParseHandedness(label string) Handedness {
	switch label {
	case "Left":
		return HandednessLeft
	case "Right":
		return HandednessRight
	}
	return HandednessUnknown
}

// String returns the model's label form of the handedness.
func (h Handedness) String() string {
	switch h {
	case HandednessLeft:
		return "Left"
	case HandednessRight:
		return "Right"
	}
	return "Unknown"
}

// MarshalJSON encodes the handedness as its label string.
func (h Handedness) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON decodes a handedness label string.
func (h *Handedness) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return fmt.Errorf("handedness: %w", err)
	}
	*h = ParseHandedness(label)
	return nil
}

// Hand is one detected hand: the fixed 21-point skeleton in normalized
// coordinates, which side it is, and the model's confidence in the detection.
type Hand struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness Handedness            `json:"handedness"`
	Score      float64               `json:"score"`
}
