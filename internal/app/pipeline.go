package app

import (
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/hasta/internal/detector"
	"github.com/ayusman/hasta/internal/tracking"
)

// runPipeline is the main loop that processes frames from the camera.
// It manages the transitions between idle and active modes based on motion
// detection:
//
//  1. Start in idle mode (IdleFPS)
//  2. On motion detected, switch to active mode (ActiveFPS)
//  3. Run hand detection and annotate the frame (skeleton, landmark
//     markers, bounding box, pinch span)
//  4. Derive the tracking state (positions, fingers, pinch) and publish it
//  5. After 2s without motion, switch back to idle mode
func (a *App) runPipeline(stopCh chan struct{}) {
	activeMode := false
	lastMotionTime := time.Now()

	frameInterval := time.Second / time.Duration(IdleFPS)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			// Skip processing if tracking is disabled
			if !a.IsEnabled() {
				continue
			}

			camera := a.Camera()
			frame, err := camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			// Step 1: Motion detection
			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				if !activeMode {
					activeMode = true
					camera.SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				if time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					camera.SetFPS(IdleFPS)
					frameInterval = time.Second / time.Duration(IdleFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to idle mode")
				}
			}

			if !activeMode {
				frame.Close()
				continue
			}

			// Step 2: Hand detection with annotation
			a.mu.RLock()
			tracker := a.tracker
			a.mu.RUnlock()

			result, err := tracker.Process(frame, true)
			if err != nil {
				frame.Close()
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			// Step 3: Derive the tracking state and overlay the
			// primary-hand markers, bounding box, and pinch span
			state := stateFromResult(result, nowMs())
			if state.Hands > 0 {
				tracking.DrawLandmarks(frame, state.Landmarks)
				tracking.DrawBBox(frame, state.BBox)
				if _, span, err := tracking.Distance(state.Landmarks, detector.ThumbTip, detector.IndexTip); err == nil {
					tracking.DrawSpan(frame, span)
				}
			}

			// Step 4: Encode the annotated frame for the MJPEG stream
			var jpeg []byte
			if buf, err := gocv.IMEncode(".jpg", *frame); err == nil {
				jpeg = append([]byte(nil), buf.GetBytes()...)
				buf.Close()
			}
			frame.Close()

			// Step 5: Publish the tracking state
			a.publishState(state, jpeg)
		}
	}
}
