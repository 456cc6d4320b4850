package tracking

import (
	"testing"

	"github.com/ayusman/hasta/internal/detector"
)

func positionsFor(t *testing.T, hand detector.Hand) []Landmark {
	t.Helper()

	r := Result{
		Hands:  []detector.Hand{hand},
		Width:  frameWidth,
		Height: frameHeight,
	}
	landmarks, _ := r.Positions(0)
	if len(landmarks) != detector.NumLandmarks {
		t.Fatalf("expected %d landmarks, got %d", detector.NumLandmarks, len(landmarks))
	}
	return landmarks
}

func TestFingersUp(t *testing.T) {
	tests := []struct {
		name       string
		hand       detector.Hand
		handedness detector.Handedness
		want       [NumFingers]bool
	}{
		{
			name:       "open right palm has all fingers up",
			hand:       detector.OpenPalmHand(),
			handedness: detector.HandednessRight,
			want:       [NumFingers]bool{true, true, true, true, true},
		},
		{
			name:       "fist has all fingers down",
			hand:       detector.FistHand(),
			handedness: detector.HandednessRight,
			want:       [NumFingers]bool{false, false, false, false, false},
		},
		{
			name:       "pointing hand has only the index up",
			hand:       detector.PointingHand(),
			handedness: detector.HandednessRight,
			want:       [NumFingers]bool{false, true, false, false, false},
		},
		{
			name:       "thumbs up has only the thumb up",
			hand:       detector.ThumbsUpHand(),
			handedness: detector.HandednessRight,
			want:       [NumFingers]bool{true, false, false, false, false},
		},
		{
			name:       "mirrored thumbs up reads as left thumb up",
			hand:       detector.MirrorHand(detector.ThumbsUpHand()),
			handedness: detector.HandednessLeft,
			want:       [NumFingers]bool{true, false, false, false, false},
		},
		{
			name:       "mirrored open palm reads as open left hand",
			hand:       detector.MirrorHand(detector.OpenPalmHand()),
			handedness: detector.HandednessLeft,
			want:       [NumFingers]bool{true, true, true, true, true},
		},
		{
			name:       "mirrored fist reads as closed left hand",
			hand:       detector.MirrorHand(detector.FistHand()),
			handedness: detector.HandednessLeft,
			want:       [NumFingers]bool{false, false, false, false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			landmarks := positionsFor(t, tt.hand)

			got := FingersUp(landmarks, tt.handedness)
			if got != tt.want {
				t.Errorf("FingersUp() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFingersUp_UsesDetectedHandedness(t *testing.T) {
	// The same mirrored-palm geometry flips the thumb verdict with the side.
	landmarks := positionsFor(t, detector.MirrorHand(detector.OpenPalmHand()))

	asLeft := FingersUp(landmarks, detector.HandednessLeft)
	if !asLeft[0] {
		t.Error("thumb should read up for a left hand")
	}

	asRight := FingersUp(landmarks, detector.HandednessRight)
	if asRight[0] {
		t.Error("thumb should read down when the same geometry is treated as a right hand")
	}
}

func TestFingersUp_NoLandmarks(t *testing.T) {
	t.Run("nil list", func(t *testing.T) {
		got := FingersUp(nil, detector.HandednessRight)
		if got != ([NumFingers]bool{}) {
			t.Errorf("expected all fingers down, got %v", got)
		}
	})

	t.Run("truncated list", func(t *testing.T) {
		landmarks := positionsFor(t, detector.OpenPalmHand())

		got := FingersUp(landmarks[:10], detector.HandednessRight)
		if got != ([NumFingers]bool{}) {
			t.Errorf("expected all fingers down for truncated list, got %v", got)
		}
	})
}

func TestFingersUp_Deterministic(t *testing.T) {
	landmarks := positionsFor(t, detector.PointingHand())

	first := FingersUp(landmarks, detector.HandednessRight)
	for i := 0; i < 10; i++ {
		if got := FingersUp(landmarks, detector.HandednessRight); got != first {
			t.Fatalf("run %d produced %v, first run produced %v", i, got, first)
		}
	}
}

func TestCountUp(t *testing.T) {
	tests := []struct {
		fingers [NumFingers]bool
		want    int
	}{
		{[NumFingers]bool{}, 0},
		{[NumFingers]bool{true, true, true, true, true}, 5},
		{[NumFingers]bool{false, true, false, true, false}, 2},
	}

	for _, tt := range tests {
		if got := CountUp(tt.fingers); got != tt.want {
			t.Errorf("CountUp(%v) = %d, want %d", tt.fingers, got, tt.want)
		}
	}
}
