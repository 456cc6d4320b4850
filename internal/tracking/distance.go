package tracking

import (
	"errors"
	"fmt"
	"math"

	"github.com/ayusman/hasta/internal/detector"
)

// ErrInvalidLandmark is returned when a requested landmark id is outside the
// fixed 21-point skeleton or absent from the landmark list.
var ErrInvalidLandmark = errors.New("invalid landmark id")

// Span describes the segment between two landmarks: both endpoints and
// their midpoint, in pixel coordinates.
type Span struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
	CX int `json:"cx"`
	CY int `json:"cy"`
}

// Distance measures the Euclidean pixel distance between two landmarks of a
// positioned hand and reports the connecting Span. Requesting the same id
// twice yields distance 0 with the midpoint at that landmark.
func Distance(landmarks []Landmark, p1, p2 int) (float64, Span, error) {
	a, err := lookup(landmarks, p1)
	if err != nil {
		return 0, Span{}, err
	}
	b, err := lookup(landmarks, p2)
	if err != nil {
		return 0, Span{}, err
	}

	span := Span{
		X1: a.X, Y1: a.Y,
		X2: b.X, Y2: b.Y,
		CX: (a.X + b.X) / 2,
		CY: (a.Y + b.Y) / 2,
	}

	length := math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
	return length, span, nil
}

func lookup(landmarks []Landmark, id int) (Landmark, error) {
	if id < 0 || id >= detector.NumLandmarks {
		return Landmark{}, fmt.Errorf("%w: %d outside 0..%d", ErrInvalidLandmark, id, detector.NumLandmarks-1)
	}
	if id >= len(landmarks) {
		return Landmark{}, fmt.Errorf("%w: %d not in landmark list", ErrInvalidLandmark, id)
	}
	return landmarks[id], nil
}
