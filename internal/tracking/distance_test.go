package tracking

import (
	"errors"
	"math"
	"testing"

	"github.com/ayusman/hasta/internal/detector"
)

func TestDistance(t *testing.T) {
	landmarks := make([]Landmark, detector.NumLandmarks)
	for i := range landmarks {
		landmarks[i] = Landmark{ID: i, X: i * 10, Y: i * 5}
	}
	landmarks[detector.ThumbTip] = Landmark{ID: detector.ThumbTip, X: 100, Y: 200}
	landmarks[detector.IndexTip] = Landmark{ID: detector.IndexTip, X: 103, Y: 204}

	t.Run("euclidean distance and midpoint", func(t *testing.T) {
		length, span, err := Distance(landmarks, detector.ThumbTip, detector.IndexTip)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if math.Abs(length-5.0) > 1e-9 {
			t.Errorf("length = %f, want 5.0", length)
		}

		want := Span{X1: 100, Y1: 200, X2: 103, Y2: 204, CX: 101, CY: 202}
		if span != want {
			t.Errorf("span = %+v, want %+v", span, want)
		}
	})

	t.Run("same landmark twice yields zero distance at the point", func(t *testing.T) {
		length, span, err := Distance(landmarks, detector.ThumbTip, detector.ThumbTip)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if length != 0 {
			t.Errorf("length = %f, want 0", length)
		}
		if span.CX != 100 || span.CY != 200 {
			t.Errorf("midpoint = (%d,%d), want (100,200)", span.CX, span.CY)
		}
	})

	t.Run("id outside the skeleton fails", func(t *testing.T) {
		for _, id := range []int{-1, detector.NumLandmarks, 100} {
			_, span, err := Distance(landmarks, id, detector.IndexTip)
			if !errors.Is(err, ErrInvalidLandmark) {
				t.Errorf("id %d: expected ErrInvalidLandmark, got %v", id, err)
			}
			if span != (Span{}) {
				t.Errorf("id %d: expected zero span on error, got %+v", id, span)
			}
		}
	})

	t.Run("second id is validated too", func(t *testing.T) {
		_, _, err := Distance(landmarks, detector.ThumbTip, detector.NumLandmarks)
		if !errors.Is(err, ErrInvalidLandmark) {
			t.Errorf("expected ErrInvalidLandmark, got %v", err)
		}
	})

	t.Run("empty landmark list fails", func(t *testing.T) {
		_, _, err := Distance(nil, detector.ThumbTip, detector.IndexTip)
		if !errors.Is(err, ErrInvalidLandmark) {
			t.Errorf("expected ErrInvalidLandmark for empty list, got %v", err)
		}
	})
}
