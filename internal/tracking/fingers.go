package tracking

import (
	"github.com/ayusman/hasta/internal/detector"
)

// NumFingers is the number of fingers reported by FingersUp, thumb first.
const NumFingers = 5

// fingerTolerance is the minimum pixel separation between a fingertip and
// its reference joint before the finger counts as extended. It absorbs
// jitter in the model output.
const fingerTolerance = 2

// Tip landmark ids for each finger, thumb to pinky.
var fingerTips = [NumFingers]int{
	detector.ThumbTip,
	detector.IndexTip,
	detector.MiddleTip,
	detector.RingTip,
	detector.PinkyTip,
}

// FingersUp reports which fingers are extended, thumb first.
//
// Index through pinky count as up when the fingertip sits above its PIP
// joint in image coordinates. The thumb extends sideways rather than
// upward, so it is compared horizontally against its IP joint, with the
// direction depending on which hand was detected. An unknown handedness
// falls back to the right-hand rule.
//
// A list with fewer than the full 21 landmarks yields all fingers down.
func FingersUp(landmarks []Landmark, handedness detector.Handedness) [NumFingers]bool {
	var fingers [NumFingers]bool

	if len(landmarks) < detector.NumLandmarks {
		return fingers
	}

	// Thumb: horizontal comparison of tip vs IP joint.
	tip := landmarks[detector.ThumbTip]
	ip := landmarks[detector.ThumbIP]
	if handedness == detector.HandednessLeft {
		fingers[0] = tip.X < ip.X-fingerTolerance
	} else {
		fingers[0] = tip.X > ip.X+fingerTolerance
	}

	// Remaining fingers: tip above the PIP joint (two landmarks below the tip).
	for f := 1; f < NumFingers; f++ {
		tip := landmarks[fingerTips[f]]
		pip := landmarks[fingerTips[f]-2]
		fingers[f] = tip.Y < pip.Y-fingerTolerance
	}

	return fingers
}

// CountUp returns how many entries of a finger state vector are up.
func CountUp(fingers [NumFingers]bool) int {
	count := 0
	for _, up := range fingers {
		if up {
			count++
		}
	}
	return count
}
