// Package app wires the camera, motion gate, and hand tracker into the
// main Hasta processing pipeline.
package app

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/hasta/internal/capture"
	"github.com/ayusman/hasta/internal/detector"
	"github.com/ayusman/hasta/internal/store"
	"github.com/ayusman/hasta/internal/tracking"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active tracking.
	ActiveFPS = 15
	// IdleTimeoutMs is the time in milliseconds to wait before switching back to idle mode.
	IdleTimeoutMs = 2000
)

// ErrNoState is returned when a snapshot is requested before the pipeline
// has produced any tracking state.
var ErrNoState = fmt.Errorf("no tracking state available")

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	CameraID     int
	MotionThresh float64
	Detector     detector.Config
}

// App is the main application that runs the tracking pipeline and exposes
// its latest state.
type App struct {
	config  Config
	camera  capture.Camera
	motion  *capture.MotionDetector
	tracker *tracking.Tracker

	enabled bool
	mu      sync.RWMutex
	stopCh  chan struct{}

	latestState State
	hasState    bool
	latestJPEG  []byte

	stateCallbacks []func(State)
}

// New creates a new App instance with the given configuration.
// The detector configuration is validated before anything else starts.
func New(config Config) (*App, error) {
	if config.Detector == (detector.Config{}) {
		config.Detector = detector.DefaultConfig()
	}
	if err := config.Detector.Validate(); err != nil {
		return nil, err
	}

	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	a := &App{
		config: config,
		camera: capture.NewCamera(config.CameraID),
		motion: capture.NewMotionDetector(motionThreshold),
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(config.Detector); err == nil {
		a.tracker = tracking.New(mp)
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.tracker = tracking.New(detector.NewMockDetector())
	}

	return a, nil
}

// SetEnabled enables or disables hand tracking.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether hand tracking is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector replaces the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tracker = tracking.New(d)
}

// SetCamera replaces the camera implementation to use.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// OnState registers a callback invoked for every tracking state the
// pipeline produces. Callbacks run on the pipeline goroutine.
func (a *App) OnState(fn func(State)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stateCallbacks = append(a.stateCallbacks, fn)
}

// LatestState returns the most recent tracking state, if any was produced.
func (a *App) LatestState() (State, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.latestState, a.hasState
}

// LatestFrame returns the most recent annotated frame as JPEG bytes,
// or nil if no frame has been processed.
func (a *App) LatestFrame() []byte {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.latestJPEG
}

// Snapshot persists the current tracking state and its landmarks.
func (a *App) Snapshot() (*store.Snapshot, error) {
	state, ok := a.LatestState()
	if !ok {
		return nil, ErrNoState
	}
	if a.config.Store == nil {
		return nil, fmt.Errorf("no store configured")
	}

	snap := &store.Snapshot{
		ID:          uuid.NewString(),
		Handedness:  state.Handedness.String(),
		Fingers:     state.FingerBits(),
		FingerCount: state.FingerCount,
		Pinch:       state.Pinch,
	}

	landmarks := make([]store.Landmark, 0, len(state.Landmarks))
	for _, lm := range state.Landmarks {
		landmarks = append(landmarks, store.Landmark{Index: lm.ID, X: lm.X, Y: lm.Y})
	}

	if err := a.config.Store.Snapshots().Create(snap, landmarks); err != nil {
		return nil, err
	}

	return snap, nil
}

// Start begins the tracking pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.camera.SetFPS(IdleFPS)

	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Println("Tracking pipeline started")
	return nil
}

// Stop halts the tracking pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.tracker != nil {
		if err := a.tracker.Close(); err != nil {
			log.Printf("Error closing tracker: %v", err)
		}
	}

	log.Println("Tracking pipeline stopped")
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// publishState records the latest state and encoded frame, then notifies
// registered callbacks.
func (a *App) publishState(state State, jpeg []byte) {
	a.mu.Lock()
	a.latestState = state
	a.hasState = true
	if jpeg != nil {
		a.latestJPEG = jpeg
	}
	callbacks := a.stateCallbacks
	a.mu.Unlock()

	for _, fn := range callbacks {
		fn(state)
	}
}

// nowMs returns the current wall clock in milliseconds.
func nowMs() int64 {
	return time.Now().UnixMilli()
}
