package tracking

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/ayusman/hasta/internal/detector"
)

// Tracker runs the external landmark detector over video frames and
// optionally annotates them. It holds no per-frame state: every Process
// call returns a self-contained Result.
type Tracker struct {
	det detector.Detector
}

// New creates a Tracker around the given detector.
func New(det detector.Detector) *Tracker {
	return &Tracker{det: det}
}

// Process runs hand detection on a single BGR frame. The frame is handed
// to the detector as-is; colorspace conversion is the detector's concern.
// The input frame is only touched when annotate is set and at least one
// hand was found, in which case the skeleton overlay is drawn in place.
func (t *Tracker) Process(frame *gocv.Mat, annotate bool) (Result, error) {
	hands, err := t.det.Detect(frame)
	if err != nil {
		return Result{}, fmt.Errorf("detect hands: %w", err)
	}

	result := Result{
		Hands:  hands,
		Width:  frame.Cols(),
		Height: frame.Rows(),
	}

	if annotate {
		for _, hand := range hands {
			DrawSkeleton(frame, hand)
		}
	}

	return result, nil
}

// Close releases the underlying detector.
func (t *Tracker) Close() error {
	return t.det.Close()
}
