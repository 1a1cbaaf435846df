package saver

import (
	"github.com/saverctl/saverctl/pkg/interfaces"
	"github.com/saverctl/saverctl/pkg/types"
)

const cinnamonCommand = "cinnamon-screensaver-command"

// CinnamonSaver drives cinnamon-screensaver through its command line tool.
// Cinnamon exposes no timeout or lockdown control surface to this tool, so
// only the lock/unlock/query operations are supported.
type CinnamonSaver struct {
	runner interfaces.CommandRunner
}

// NewCinnamonSaver creates a Cinnamon adapter over the given command runner.
func NewCinnamonSaver(runner interfaces.CommandRunner) *CinnamonSaver {
	return &CinnamonSaver{runner: runner}
}

// Backend returns the backend identifier.
func (s *CinnamonSaver) Backend() types.Backend {
	return types.BackendCinnamon
}

// GetTimeout is not supported on Cinnamon.
func (s *CinnamonSaver) GetTimeout() (int, error) {
	return 0, &UnsupportedError{Backend: s.Backend(), Op: "get-timeout"}
}

// SetTimeout is not supported on Cinnamon.
func (s *CinnamonSaver) SetTimeout(int) error {
	return &UnsupportedError{Backend: s.Backend(), Op: "set-timeout"}
}

// Enable is not supported on Cinnamon.
func (s *CinnamonSaver) Enable() error {
	return &UnsupportedError{Backend: s.Backend(), Op: "enable"}
}

// Disable is not supported on Cinnamon.
func (s *CinnamonSaver) Disable() error {
	return &UnsupportedError{Backend: s.Backend(), Op: "disable"}
}

// IsEnabled is not supported on Cinnamon.
func (s *CinnamonSaver) IsEnabled() (bool, error) {
	return false, &UnsupportedError{Backend: s.Backend(), Op: "is-enabled"}
}

// Activate locks the screen.
func (s *CinnamonSaver) Activate() error {
	if _, _, err := s.runner.Run([]string{cinnamonCommand, "-l"}); err != nil {
		return &ExecError{Op: "locking via " + cinnamonCommand, Err: err}
	}
	return nil
}

// Deactivate unlocks the screen.
func (s *CinnamonSaver) Deactivate() error {
	if _, _, err := s.runner.Run([]string{cinnamonCommand, "-d"}); err != nil {
		return &ExecError{Op: "unlocking via " + cinnamonCommand, Err: err}
	}
	return nil
}

// IsActive queries the screensaver state, sharing GNOME's answer format.
func (s *CinnamonSaver) IsActive() (bool, error) {
	stdout, _, err := s.runner.Run([]string{cinnamonCommand, "-q"})
	if err != nil {
		return false, &ExecError{Op: "querying via " + cinnamonCommand, Err: err}
	}
	return parseQueryOutput(string(stdout))
}

// PreventActivation is not supported on Cinnamon.
func (s *CinnamonSaver) PreventActivation() error {
	return &UnsupportedError{Backend: s.Backend(), Op: "prevent-activation"}
}
