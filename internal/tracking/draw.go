package tracking

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/hasta/internal/detector"
)

// Overlay colors and sizes, matching the usual MediaPipe-style annotations.
var (
	colorSkeleton = color.RGBA{R: 0, G: 255, B: 0}
	colorMarker   = color.RGBA{R: 0, G: 255, B: 0}
	colorSpan     = color.RGBA{R: 255, G: 0, B: 255}
	colorMidpoint = color.RGBA{R: 0, G: 0, B: 255}
)

const (
	skeletonThickness = 2
	markerRadius      = 5
	positionRadius    = 7
	spanRadius        = 10
	spanThickness     = 3
	bboxThickness     = 2
)

// Connections lists the landmark index pairs forming the 21-point hand
// skeleton (MediaPipe HAND_CONNECTIONS).
var Connections = [][2]int{
	{detector.Wrist, detector.ThumbCMC},
	{detector.ThumbCMC, detector.ThumbMCP},
	{detector.ThumbMCP, detector.ThumbIP},
	{detector.ThumbIP, detector.ThumbTip},
	{detector.Wrist, detector.IndexMCP},
	{detector.IndexMCP, detector.IndexPIP},
	{detector.IndexPIP, detector.IndexDIP},
	{detector.IndexDIP, detector.IndexTip},
	{detector.IndexMCP, detector.MiddleMCP},
	{detector.MiddleMCP, detector.MiddlePIP},
	{detector.MiddlePIP, detector.MiddleDIP},
	{detector.MiddleDIP, detector.MiddleTip},
	{detector.MiddleMCP, detector.RingMCP},
	{detector.RingMCP, detector.RingPIP},
	{detector.RingPIP, detector.RingDIP},
	{detector.RingDIP, detector.RingTip},
	{detector.RingMCP, detector.PinkyMCP},
	{detector.Wrist, detector.PinkyMCP},
	{detector.PinkyMCP, detector.PinkyPIP},
	{detector.PinkyPIP, detector.PinkyDIP},
	{detector.PinkyDIP, detector.PinkyTip},
}

// DrawSkeleton overlays the hand skeleton and per-landmark markers onto the
// frame in place.
func DrawSkeleton(frame *gocv.Mat, hand detector.Hand) {
	w := float64(frame.Cols())
	h := float64(frame.Rows())

	var pts [detector.NumLandmarks]image.Point
	for i, p := range hand.Points {
		pts[i] = image.Pt(int(p.X*w), int(p.Y*h))
	}

	for _, c := range Connections {
		gocv.Line(frame, pts[c[0]], pts[c[1]], colorSkeleton, skeletonThickness)
	}
	for _, pt := range pts {
		gocv.Circle(frame, pt, markerRadius, colorMarker, -1)
	}
}

// DrawLandmarks draws a filled marker at each pixel-space landmark in place.
func DrawLandmarks(frame *gocv.Mat, landmarks []Landmark) {
	for _, lm := range landmarks {
		gocv.Circle(frame, image.Pt(lm.X, lm.Y), positionRadius, colorMarker, -1)
	}
}

// DrawBBox draws the bounding box rectangle onto the frame in place.
// A zero box draws nothing.
func DrawBBox(frame *gocv.Mat, box BBox) {
	if box == (BBox{}) {
		return
	}
	rect := image.Rect(box.MinX, box.MinY, box.MaxX, box.MaxY)
	gocv.Rectangle(frame, rect, colorSkeleton, bboxThickness)
}

// DrawSpan draws the segment between two landmarks: markers at both
// endpoints, the connecting line, and the midpoint.
func DrawSpan(frame *gocv.Mat, span Span) {
	p1 := image.Pt(span.X1, span.Y1)
	p2 := image.Pt(span.X2, span.Y2)
	mid := image.Pt(span.CX, span.CY)

	gocv.Circle(frame, p1, spanRadius, colorMarker, -1)
	gocv.Circle(frame, p2, spanRadius, colorMarker, -1)
	gocv.Line(frame, p1, p2, colorSpan, spanThickness)
	gocv.Circle(frame, mid, spanRadius, colorMidpoint, -1)
}
