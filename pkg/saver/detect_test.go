package saver

import (
	"fmt"
	"testing"

	"github.com/saverctl/saverctl/pkg/testutil"
	"github.com/saverctl/saverctl/pkg/types"
)

func TestProbeDetector_Detect(t *testing.T) {
	tests := []struct {
		name            string
		processes       []string
		qdbusOnPath     bool
		qdbusErr        error
		expectedBackend types.Backend
		expectedFound   bool
	}{
		{
			name:            "xscreensaver running",
			processes:       []string{"xscreensaver"},
			expectedBackend: types.BackendXScreensaver,
			expectedFound:   true,
		},
		{
			name:            "KDE service answering",
			qdbusOnPath:     true,
			expectedBackend: types.BackendKDE,
			expectedFound:   true,
		},
		{
			name:            "gnome-screensaver running",
			processes:       []string{"gnome-screensaver"},
			expectedBackend: types.BackendGNOME,
			expectedFound:   true,
		},
		{
			name:            "cinnamon-screensaver running",
			processes:       []string{"cinnamon-screensaver"},
			expectedBackend: types.BackendCinnamon,
			expectedFound:   true,
		},
		{
			name:            "all signatures present - xscreensaver wins",
			processes:       []string{"xscreensaver", "gnome-screensaver", "cinnamon-screensaver"},
			qdbusOnPath:     true,
			expectedBackend: types.BackendXScreensaver,
			expectedFound:   true,
		},
		{
			name:            "KDE beats gnome and cinnamon",
			processes:       []string{"gnome-screensaver", "cinnamon-screensaver"},
			qdbusOnPath:     true,
			expectedBackend: types.BackendKDE,
			expectedFound:   true,
		},
		{
			name:            "qdbus on path but service not answering",
			processes:       []string{"cinnamon-screensaver"},
			qdbusOnPath:     true,
			qdbusErr:        fmt.Errorf("service unknown"),
			expectedBackend: types.BackendCinnamon,
			expectedFound:   true,
		},
		{
			name:          "nothing present",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := testutil.NewMockRunner()
			runner.SetOnPath("qdbus", tt.qdbusOnPath)
			runner.Respond("qdbus org.kde.screensaver", testutil.RunResponse{Err: tt.qdbusErr})

			detector := NewProbeDetector(runner, testutil.NewMockProcessTable(tt.processes...))
			backend, found := detector.Detect()

			if found != tt.expectedFound {
				t.Fatalf("Detect() found = %v, want %v", found, tt.expectedFound)
			}
			if found && backend != tt.expectedBackend {
				t.Errorf("Detect() = %v, want %v", backend, tt.expectedBackend)
			}
		})
	}
}

func TestProbeDetector_KDEProbeRequiresQdbusOnPath(t *testing.T) {
	runner := testutil.NewMockRunner()
	runner.SetOnPath("qdbus", false)

	detector := NewProbeDetector(runner, testutil.NewMockProcessTable())
	if _, found := detector.Detect(); found {
		t.Error("Detect() found a backend without any signature present")
	}

	// The control call must never run when qdbus is not resolvable.
	if runner.CallCount() != 0 {
		t.Errorf("Run called %d times, want 0", runner.CallCount())
	}
}
