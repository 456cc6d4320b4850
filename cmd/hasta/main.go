package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/ayusman/hasta/internal/app"
	"github.com/ayusman/hasta/internal/detector"
	"github.com/ayusman/hasta/internal/server"
	"github.com/ayusman/hasta/internal/store"
	"github.com/ayusman/hasta/internal/tray"
)

const serverAddr = ":8080"

func main() {
	fmt.Println("Hasta - Hand Tracking")

	// Initialize the store
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dbDir := filepath.Join(homeDir, ".hasta")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dbDir, "hasta.db")
	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Build the tracking pipeline from stored settings
	application, err := app.New(loadAppConfig(st))
	if err != nil {
		log.Fatalf("Failed to initialize pipeline: %v", err)
	}
	defer application.Stop()
	application.Start()

	// Find web directory
	webDir := findWebDir()
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	// Configure and start server
	cfg := server.Config{
		StaticDir: webDir,
		Store:     st,
		Pipeline:  application,
	}

	srv := server.New(cfg)

	go func() {
		fmt.Printf("Starting server on %s\n", serverAddr)
		if err := srv.ListenAndServe(serverAddr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// The tray owns the main goroutine; it blocks until quit.
	tr := tray.New()
	tr.OnToggle(func(enabled bool) {
		application.SetEnabled(enabled)
	})
	tr.OnDashboard(func() {
		openBrowser("http://localhost" + serverAddr)
	})
	application.OnState(func(state app.State) {
		if state.Hands == 0 {
			tr.SetHandState("", 0)
			return
		}
		tr.SetHandState(state.Handedness.String(), state.FingerCount)
	})
	tr.Run()
}

// loadAppConfig builds the pipeline configuration from stored settings.
// Missing or unparsable settings fall back to the defaults.
func loadAppConfig(st *store.Store) app.Config {
	cfg := app.Config{Store: st, Detector: detector.DefaultConfig()}

	if v, err := st.Settings().Get("camera_id"); err == nil {
		if id, err := strconv.Atoi(v); err == nil {
			cfg.CameraID = id
		}
	}
	if v, err := st.Settings().Get("motion_threshold"); err == nil {
		if thresh, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MotionThresh = thresh
		}
	}
	if v, err := st.Settings().Get("max_hands"); err == nil {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Detector.MaxHands = n
		}
	}
	if v, err := st.Settings().Get("min_detection_conf"); err == nil {
		if conf, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Detector.MinDetectionConf = conf
		}
	}
	if v, err := st.Settings().Get("min_tracking_conf"); err == nil {
		if conf, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Detector.MinTrackingConf = conf
		}
	}

	return cfg
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.hasta/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	// Check relative paths from current working directory
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".hasta", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}
