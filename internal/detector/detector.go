package detector

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

// ErrInvalidConfig is returned when detector configuration values are out of range.
var ErrInvalidConfig = errors.New("invalid detector config")

// Detector defines the interface for hand landmark detection implementations.
type Detector interface {
	// Detect analyzes a BGR video frame and returns the detected hands.
	// Any colorspace conversion the underlying model needs is the
	// implementation's concern. Returns an empty slice if no hands are
	// present; absence of a hand is a normal outcome, not an error.
	Detect(frame *gocv.Mat) ([]Hand, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for hand detection.
type Config struct {
	// MaxHands is the maximum number of hands to detect (default: 2).
	MaxHands int

	// MinDetectionConf is the minimum detection confidence threshold (0.0-1.0).
	MinDetectionConf float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MaxHands:         2,
		MinDetectionConf: 0.5,
		MinTrackingConf:  0.5,
	}
}

// Validate checks the configuration ranges. It returns an error wrapping
// ErrInvalidConfig rather than silently clamping out-of-range values.
func (c Config) Validate() error {
	if c.MaxHands <= 0 {
		return fmt.Errorf("%w: max hands must be positive, got %d", ErrInvalidConfig, c.MaxHands)
	}
	if c.MinDetectionConf < 0 || c.MinDetectionConf > 1 {
		return fmt.Errorf("%w: detection confidence must be in [0,1], got %f", ErrInvalidConfig, c.MinDetectionConf)
	}
	if c.MinTrackingConf < 0 || c.MinTrackingConf > 1 {
		return fmt.Errorf("%w: tracking confidence must be in [0,1], got %f", ErrInvalidConfig, c.MinTrackingConf)
	}
	return nil
}
