package system

import (
	"errors"
	"strings"
	"testing"

	"github.com/saverctl/saverctl/pkg/testutil"
)

func TestQDBusCaller_Call(t *testing.T) {
	runner := testutil.NewMockRunner()
	runner.Respond("qdbus org.kde.screensaver /ScreenSaver GetActive",
		testutil.RunResponse{Stdout: []byte("true\n")})

	caller := NewQDBusCaller(runner, "")
	reply, err := caller.Call("org.kde.screensaver", "/ScreenSaver", "GetActive")
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if reply != "true" {
		t.Errorf("Call() = %q, want trimmed %q", reply, "true")
	}

	calls := runner.Calls()
	if len(calls) != 1 {
		t.Fatalf("Run invoked %d times, want 1", len(calls))
	}
	expected := "qdbus org.kde.screensaver /ScreenSaver GetActive"
	if got := strings.Join(calls[0], " "); got != expected {
		t.Errorf("argv = %q, want %q", got, expected)
	}
}

func TestQDBusCaller_CustomBinary(t *testing.T) {
	runner := testutil.NewMockRunner()
	caller := NewQDBusCaller(runner, "/usr/lib/qt6/bin/qdbus")

	if _, err := caller.Call("org.kde.screensaver", "/ScreenSaver", "Lock"); err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	calls := runner.Calls()
	if len(calls) != 1 || calls[0][0] != "/usr/lib/qt6/bin/qdbus" {
		t.Errorf("calls = %v, want custom binary in argv[0]", calls)
	}
}

func TestQDBusCaller_ErrorIncludesStderr(t *testing.T) {
	runner := testutil.NewMockRunner()
	execErr := errors.New("exit status 2")
	runner.Respond("qdbus org.kde.screensaver /ScreenSaver GetActive",
		testutil.RunResponse{Stderr: []byte("Service 'org.kde.screensaver' does not exist.\n"), Err: execErr})

	caller := NewQDBusCaller(runner, "")
	_, err := caller.Call("org.kde.screensaver", "/ScreenSaver", "GetActive")
	if err == nil {
		t.Fatal("Call() succeeded, want error")
	}
	if !errors.Is(err, execErr) {
		t.Errorf("error %v does not wrap the exec error", err)
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("error %q does not carry stderr", err)
	}
}
