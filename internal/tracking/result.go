// Package tracking turns raw hand detections into pixel-space measurements:
// landmark positions, bounding boxes, finger states, and distances.
package tracking

import (
	"github.com/ayusman/hasta/internal/detector"
)

// bboxPadding is the margin in pixels added around the landmark extremes
// when computing a hand's bounding box.
const bboxPadding = 20

// Landmark is a single hand landmark in absolute pixel coordinates.
type Landmark struct {
	ID int `json:"id"`
	X  int `json:"x"`
	Y  int `json:"y"`
}

// BBox is an axis-aligned bounding box in pixel coordinates.
// A zero BBox means no hand was available.
type BBox struct {
	MinX int `json:"min_x"`
	MinY int `json:"min_y"`
	MaxX int `json:"max_x"`
	MaxY int `json:"max_y"`
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() int {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the box.
func (b BBox) Height() int {
	return b.MaxY - b.MinY
}

// Result holds the hands found in one processed frame, together with the
// frame dimensions captured at detection time. It is a plain value: each
// processed frame produces a fresh Result, and all queries derive from it
// without hidden state.
type Result struct {
	Hands  []detector.Hand `json:"hands"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
}

// HandCount returns the number of hands found in the frame.
func (r Result) HandCount() int {
	return len(r.Hands)
}

// Handedness reports which side the hand at handIndex is. Indices beyond
// the detected hands report HandednessUnknown.
func (r Result) Handedness(handIndex int) detector.Handedness {
	if handIndex < 0 || handIndex >= len(r.Hands) {
		return detector.HandednessUnknown
	}
	return r.Hands[handIndex].Handedness
}

// Positions converts the landmarks of the hand at handIndex to absolute
// pixel coordinates and computes their padded bounding box.
//
// The landmark list is always in skeleton id order 0..20. If handIndex does
// not select a detected hand, Positions returns an empty list and a zero
// BBox; a missing hand is a normal outcome, not an error.
func (r Result) Positions(handIndex int) ([]Landmark, BBox) {
	if handIndex < 0 || handIndex >= len(r.Hands) {
		return nil, BBox{}
	}

	hand := r.Hands[handIndex]

	landmarks := make([]Landmark, detector.NumLandmarks)
	var minX, minY, maxX, maxY int

	for id, p := range hand.Points {
		x := int(p.X * float64(r.Width))
		y := int(p.Y * float64(r.Height))
		landmarks[id] = Landmark{ID: id, X: x, Y: y}

		if id == 0 {
			minX, maxX = x, x
			minY, maxY = y, y
			continue
		}
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	box := BBox{
		MinX: minX - bboxPadding,
		MinY: minY - bboxPadding,
		MaxX: maxX + bboxPadding,
		MaxY: maxY + bboxPadding,
	}

	return landmarks, box
}
