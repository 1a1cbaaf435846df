package saver

import (
	"strconv"
	"strings"

	"github.com/saverctl/saverctl/pkg/interfaces"
	"github.com/saverctl/saverctl/pkg/types"
)

const (
	gnomeSessionSchema  = "org.gnome.desktop.session"
	gnomeLockdownSchema = "org.gnome.desktop.lockdown"
	gnomeIdleDelayKey   = "idle-delay"
	gnomeDisableLockKey = "disable-lock-screen"

	gnomeCommand = "gnome-screensaver-command"
)

// GNOMESaver drives the legacy gnome-screensaver (GNOME 3.6 and earlier)
// through gsettings and gnome-screensaver-command.
type GNOMESaver struct {
	runner interfaces.CommandRunner
}

// NewGNOMESaver creates a GNOME adapter over the given command runner.
func NewGNOMESaver(runner interfaces.CommandRunner) *GNOMESaver {
	return &GNOMESaver{runner: runner}
}

// Backend returns the backend identifier.
func (s *GNOMESaver) Backend() types.Backend {
	return types.BackendGNOME
}

// GetTimeout reads the idle-delay settings key, which gsettings prints as
// "uint32 N".
func (s *GNOMESaver) GetTimeout() (int, error) {
	stdout, _, err := s.runner.Run([]string{"gsettings", "get", gnomeSessionSchema, gnomeIdleDelayKey})
	if err != nil {
		return 0, &ExecError{Op: "reading " + gnomeIdleDelayKey, Err: err}
	}

	out := strings.TrimSpace(string(stdout))
	fields := strings.Fields(out)
	if len(fields) != 2 || fields[0] != "uint32" {
		return 0, &ParseError{What: gnomeIdleDelayKey + " value", Raw: out}
	}
	seconds, err := strconv.Atoi(fields[1])
	if err != nil || seconds < 0 {
		return 0, &ParseError{What: gnomeIdleDelayKey + " value", Raw: out}
	}
	return seconds, nil
}

// SetTimeout writes the idle-delay settings key in seconds; GNOME keeps
// second granularity, so the value round-trips exactly.
func (s *GNOMESaver) SetTimeout(seconds int) error {
	argv := []string{"gsettings", "set", gnomeSessionSchema, gnomeIdleDelayKey, strconv.Itoa(seconds)}
	if _, _, err := s.runner.Run(argv); err != nil {
		return &ExecError{Op: "writing " + gnomeIdleDelayKey, Err: err}
	}
	return nil
}

// Enable clears the lockdown key that suppresses the lock screen.
func (s *GNOMESaver) Enable() error {
	return s.setDisableLock("false")
}

// Disable sets the lockdown key that suppresses the lock screen.
func (s *GNOMESaver) Disable() error {
	return s.setDisableLock("true")
}

func (s *GNOMESaver) setDisableLock(value string) error {
	argv := []string{"gsettings", "set", gnomeLockdownSchema, gnomeDisableLockKey, value}
	if _, _, err := s.runner.Run(argv); err != nil {
		return &ExecError{Op: "writing " + gnomeDisableLockKey, Err: err}
	}
	return nil
}

// IsEnabled reads the lockdown key; the screensaver counts as enabled when
// disable-lock-screen is false.
func (s *GNOMESaver) IsEnabled() (bool, error) {
	stdout, _, err := s.runner.Run([]string{"gsettings", "get", gnomeLockdownSchema, gnomeDisableLockKey})
	if err != nil {
		return false, &ExecError{Op: "reading " + gnomeDisableLockKey, Err: err}
	}

	switch strings.TrimSpace(string(stdout)) {
	case "false":
		return true, nil
	case "true":
		return false, nil
	}
	return false, &ParseError{What: gnomeDisableLockKey + " value", Raw: strings.TrimSpace(string(stdout))}
}

// Activate locks the screen.
func (s *GNOMESaver) Activate() error {
	if _, _, err := s.runner.Run([]string{gnomeCommand, "-l"}); err != nil {
		return &ExecError{Op: "locking via " + gnomeCommand, Err: err}
	}
	return nil
}

// Deactivate unlocks the screen.
func (s *GNOMESaver) Deactivate() error {
	if _, _, err := s.runner.Run([]string{gnomeCommand, "-d"}); err != nil {
		return &ExecError{Op: "unlocking via " + gnomeCommand, Err: err}
	}
	return nil
}

// IsActive queries the screensaver state and parses the textual answer.
func (s *GNOMESaver) IsActive() (bool, error) {
	stdout, _, err := s.runner.Run([]string{gnomeCommand, "-q"})
	if err != nil {
		return false, &ExecError{Op: "querying via " + gnomeCommand, Err: err}
	}
	return parseQueryOutput(string(stdout))
}

// PreventActivation is not supported on GNOME.
func (s *GNOMESaver) PreventActivation() error {
	return &UnsupportedError{Backend: s.Backend(), Op: "prevent-activation"}
}

// parseQueryOutput interprets the "-q" output of the GNOME and Cinnamon
// screensaver commands. "is inactive" is checked before "is active" so the
// substring match cannot misread a negated answer; any other text is an
// unrecognized response, never a silent false.
func parseQueryOutput(out string) (bool, error) {
	switch {
	case strings.Contains(out, "is inactive"):
		return false, nil
	case strings.Contains(out, "is active"):
		return true, nil
	}
	return false, &ParseError{What: "screensaver query output", Raw: strings.TrimSpace(out)}
}
