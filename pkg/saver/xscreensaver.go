package saver

import (
	"regexp"
	"strings"

	"github.com/saverctl/saverctl/pkg/interfaces"
	"github.com/saverctl/saverctl/pkg/types"
)

const xscreensaverCommand = "xscreensaver-command"

// xsTimeoutLine matches the timeout entry of the ~/.xscreensaver dotfile,
// capturing its H:MM:SS value.
var xsTimeoutLine = regexp.MustCompile(`^timeout:\s*(\S+)\s*$`)

// XScreensaverSaver controls a running xscreensaver through its dotfile and
// xscreensaver-command. Timeout changes only take effect once the running
// process is told to reload, so SetTimeout signals it with SIGHUP after a
// successful write.
type XScreensaverSaver struct {
	runner  interfaces.CommandRunner
	files   interfaces.FileStore
	dotfile string
}

// NewXScreensaverSaver creates an xscreensaver adapter over the given
// collaborators and dotfile path.
func NewXScreensaverSaver(runner interfaces.CommandRunner, files interfaces.FileStore, dotfile string) *XScreensaverSaver {
	return &XScreensaverSaver{runner: runner, files: files, dotfile: dotfile}
}

// Backend returns the backend identifier.
func (s *XScreensaverSaver) Backend() types.Backend {
	return types.BackendXScreensaver
}

// GetTimeout parses the timeout entry's H:MM:SS value into seconds.
func (s *XScreensaverSaver) GetTimeout() (int, error) {
	content, err := s.files.ReadText(s.dotfile)
	if err != nil {
		return 0, &ExecError{Op: "reading " + s.dotfile, Err: err}
	}

	for _, line := range strings.Split(content, "\n") {
		if m := xsTimeoutLine.FindStringSubmatch(line); m != nil {
			return parseClock(m[1])
		}
	}
	return 0, &ParseError{What: "timeout entry in " + s.dotfile}
}

// SetTimeout rewrites the timeout entry and signals the running xscreensaver
// to reload it. The dotfile stores whole minutes, so seconds are truncated
// with a one-minute floor. A failed signal is reported as an execution error
// even though the file write already succeeded.
func (s *XScreensaverSaver) SetTimeout(seconds int) error {
	content, err := s.files.ReadText(s.dotfile)
	if err != nil {
		return &ExecError{Op: "reading " + s.dotfile, Err: err}
	}

	clock := formatClock(minutesFor(seconds) * 60)
	lines := strings.Split(content, "\n")
	replaced := false
	for i, line := range lines {
		if loc := xsTimeoutLine.FindStringSubmatchIndex(line); loc != nil {
			// Keep the original prefix up to the value, replacing only the
			// H:MM:SS field.
			lines[i] = line[:loc[2]] + clock
			replaced = true
			break
		}
	}
	if !replaced {
		return &ParseError{What: "timeout entry in " + s.dotfile}
	}

	if err := s.files.WriteText(s.dotfile, strings.Join(lines, "\n")); err != nil {
		return &ExecError{Op: "writing " + s.dotfile, Err: err}
	}

	if _, _, err := s.runner.Run([]string{"killall", "-HUP", "xscreensaver"}); err != nil {
		return &ExecError{Op: "signaling xscreensaver to reload", Err: err}
	}
	return nil
}

// Enable is not supported on xscreensaver.
func (s *XScreensaverSaver) Enable() error {
	return &UnsupportedError{Backend: s.Backend(), Op: "enable"}
}

// Disable is not supported on xscreensaver.
func (s *XScreensaverSaver) Disable() error {
	return &UnsupportedError{Backend: s.Backend(), Op: "disable"}
}

// IsEnabled is not supported on xscreensaver.
func (s *XScreensaverSaver) IsEnabled() (bool, error) {
	return false, &UnsupportedError{Backend: s.Backend(), Op: "is-enabled"}
}

// Activate blanks the screen now.
func (s *XScreensaverSaver) Activate() error {
	if _, _, err := s.runner.Run([]string{xscreensaverCommand, "-activate"}); err != nil {
		return &ExecError{Op: "activating via " + xscreensaverCommand, Err: err}
	}
	return nil
}

// Deactivate unblanks the screen; the command's chatter on stdout is
// discarded.
func (s *XScreensaverSaver) Deactivate() error {
	if _, _, err := s.runner.Run([]string{xscreensaverCommand, "-deactivate"}); err != nil {
		return &ExecError{Op: "deactivating via " + xscreensaverCommand, Err: err}
	}
	return nil
}

// IsActive is not supported on xscreensaver.
func (s *XScreensaverSaver) IsActive() (bool, error) {
	return false, &UnsupportedError{Backend: s.Backend(), Op: "is-active"}
}

// PreventActivation resets the idle timer. xscreensaver has no dedicated
// call for this; -deactivate pokes the idle timer without requiring an
// unlock when the saver is not running.
func (s *XScreensaverSaver) PreventActivation() error {
	if _, _, err := s.runner.Run([]string{xscreensaverCommand, "-deactivate"}); err != nil {
		return &ExecError{Op: "poking via " + xscreensaverCommand, Err: err}
	}
	return nil
}
