package saver

import (
	"errors"
	"reflect"
	"testing"

	"github.com/saverctl/saverctl/pkg/testutil"
	"github.com/saverctl/saverctl/pkg/types"
)

func TestGNOMESaver_GetTimeout(t *testing.T) {
	tests := []struct {
		name            string
		stdout          string
		runErr          error
		expectedSeconds int
		expectedStatus  types.Status
	}{
		{
			name:            "plain uint32 value",
			stdout:          "uint32 300\n",
			expectedSeconds: 300,
			expectedStatus:  types.StatusSuccess,
		},
		{
			name:            "zero is valid",
			stdout:          "uint32 0\n",
			expectedSeconds: 0,
			expectedStatus:  types.StatusSuccess,
		},
		{
			name:           "unexpected shape",
			stdout:         "300\n",
			expectedStatus: types.StatusParseFailure,
		},
		{
			name:           "wrong type tag",
			stdout:         "int32 300\n",
			expectedStatus: types.StatusParseFailure,
		},
		{
			name:           "command failure",
			runErr:         errors.New("no such schema"),
			expectedStatus: types.StatusExecFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := testutil.NewMockRunner()
			runner.Respond("gsettings get org.gnome.desktop.session idle-delay",
				testutil.RunResponse{Stdout: []byte(tt.stdout), Err: tt.runErr})

			seconds, err := NewGNOMESaver(runner).GetTimeout()

			if got := Classify(err); got != tt.expectedStatus {
				t.Fatalf("GetTimeout() status = %v (err %v), want %v", got, err, tt.expectedStatus)
			}
			if err == nil && seconds != tt.expectedSeconds {
				t.Errorf("GetTimeout() = %d, want %d", seconds, tt.expectedSeconds)
			}
		})
	}
}

func TestGNOMESaver_SetTimeout(t *testing.T) {
	runner := testutil.NewMockRunner()
	s := NewGNOMESaver(runner)

	if err := s.SetTimeout(300); err != nil {
		t.Fatalf("SetTimeout() error = %v", err)
	}

	want := []string{"gsettings", "set", "org.gnome.desktop.session", "idle-delay", "300"}
	calls := runner.Calls()
	if len(calls) != 1 || !reflect.DeepEqual(calls[0], want) {
		t.Errorf("Run calls = %v, want [%v]", calls, want)
	}
}

// GNOME keeps second granularity, so a set/get round trip returns the exact
// value that was written.
func TestGNOMESaver_TimeoutRoundTrip(t *testing.T) {
	runner := testutil.NewMockRunner()
	runner.Respond("gsettings get org.gnome.desktop.session idle-delay",
		testutil.RunResponse{Stdout: []byte("uint32 300\n")})
	s := NewGNOMESaver(runner)

	if err := s.SetTimeout(300); err != nil {
		t.Fatalf("SetTimeout() error = %v", err)
	}
	seconds, err := s.GetTimeout()
	if err != nil {
		t.Fatalf("GetTimeout() error = %v", err)
	}
	if seconds != 300 {
		t.Errorf("round trip = %d, want 300", seconds)
	}
}

func TestGNOMESaver_LockdownKey(t *testing.T) {
	tests := []struct {
		name     string
		op       func(*GNOMESaver) error
		expected []string
	}{
		{
			name:     "enable clears disable-lock-screen",
			op:       (*GNOMESaver).Enable,
			expected: []string{"gsettings", "set", "org.gnome.desktop.lockdown", "disable-lock-screen", "false"},
		},
		{
			name:     "disable sets disable-lock-screen",
			op:       (*GNOMESaver).Disable,
			expected: []string{"gsettings", "set", "org.gnome.desktop.lockdown", "disable-lock-screen", "true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := testutil.NewMockRunner()
			if err := tt.op(NewGNOMESaver(runner)); err != nil {
				t.Fatalf("operation error = %v", err)
			}

			calls := runner.Calls()
			if len(calls) != 1 || !reflect.DeepEqual(calls[0], tt.expected) {
				t.Errorf("Run calls = %v, want [%v]", calls, tt.expected)
			}
		})
	}
}

func TestGNOMESaver_IsEnabled(t *testing.T) {
	tests := []struct {
		name            string
		stdout          string
		expectedEnabled bool
		expectedStatus  types.Status
	}{
		{
			name:            "lock screen not suppressed",
			stdout:          "false\n",
			expectedEnabled: true,
			expectedStatus:  types.StatusSuccess,
		},
		{
			name:            "lock screen suppressed",
			stdout:          "true\n",
			expectedEnabled: false,
			expectedStatus:  types.StatusSuccess,
		},
		{
			name:           "unrecognized value",
			stdout:         "banana\n",
			expectedStatus: types.StatusParseFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := testutil.NewMockRunner()
			runner.Respond("gsettings get org.gnome.desktop.lockdown disable-lock-screen",
				testutil.RunResponse{Stdout: []byte(tt.stdout)})

			enabled, err := NewGNOMESaver(runner).IsEnabled()

			if got := Classify(err); got != tt.expectedStatus {
				t.Fatalf("IsEnabled() status = %v (err %v), want %v", got, err, tt.expectedStatus)
			}
			if err == nil && enabled != tt.expectedEnabled {
				t.Errorf("IsEnabled() = %v, want %v", enabled, tt.expectedEnabled)
			}
		})
	}
}

func TestGNOMESaver_IsActive(t *testing.T) {
	tests := []struct {
		name           string
		stdout         string
		expectedActive bool
		expectedStatus types.Status
	}{
		{
			name:           "active",
			stdout:         "The screensaver is active\n",
			expectedActive: true,
			expectedStatus: types.StatusSuccess,
		},
		{
			name:           "inactive",
			stdout:         "The screensaver is inactive\n",
			expectedActive: false,
			expectedStatus: types.StatusSuccess,
		},
		{
			name:           "unrecognized output",
			stdout:         "cannot connect to screensaver\n",
			expectedStatus: types.StatusParseFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := testutil.NewMockRunner()
			runner.Respond("gnome-screensaver-command -q",
				testutil.RunResponse{Stdout: []byte(tt.stdout)})

			active, err := NewGNOMESaver(runner).IsActive()

			if got := Classify(err); got != tt.expectedStatus {
				t.Fatalf("IsActive() status = %v (err %v), want %v", got, err, tt.expectedStatus)
			}
			if err == nil && active != tt.expectedActive {
				t.Errorf("IsActive() = %v, want %v", active, tt.expectedActive)
			}
		})
	}
}

func TestGNOMESaver_ActivateDeactivate(t *testing.T) {
	tests := []struct {
		name     string
		op       func(*GNOMESaver) error
		expected []string
	}{
		{
			name:     "activate",
			op:       (*GNOMESaver).Activate,
			expected: []string{"gnome-screensaver-command", "-l"},
		},
		{
			name:     "deactivate",
			op:       (*GNOMESaver).Deactivate,
			expected: []string{"gnome-screensaver-command", "-d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := testutil.NewMockRunner()
			if err := tt.op(NewGNOMESaver(runner)); err != nil {
				t.Fatalf("operation error = %v", err)
			}

			calls := runner.Calls()
			if len(calls) != 1 || !reflect.DeepEqual(calls[0], tt.expected) {
				t.Errorf("Run calls = %v, want [%v]", calls, tt.expected)
			}
		})
	}
}
