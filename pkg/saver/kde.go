package saver

import (
	"strconv"
	"strings"

	"github.com/saverctl/saverctl/pkg/interfaces"
	"github.com/saverctl/saverctl/pkg/types"
)

const (
	kdeService    = "org.kde.screensaver"
	kdeObjectPath = "/ScreenSaver"

	// Plasma's screen locker defaults to five minutes when kscreenlockerrc
	// carries no Timeout entry.
	kdeDefaultTimeoutSeconds = 300

	kdeDaemonSection = "Daemon"
	kdeTimeoutKey    = "Timeout"
)

// KDESaver controls the KDE Plasma screen locker through its D-Bus service
// and the kscreensaverrc/kscreenlockerrc configuration files. The legacy
// kscreensaverrc stores the timeout in seconds; the modern kscreenlockerrc
// stores whole minutes under a [Daemon] section.
type KDESaver struct {
	dbus       interfaces.DBusCaller
	files      interfaces.FileStore
	legacyPath string
	modernPath string
}

// NewKDESaver creates a KDE adapter over the given collaborators and
// configuration file paths.
func NewKDESaver(dbus interfaces.DBusCaller, files interfaces.FileStore, legacyPath, modernPath string) *KDESaver {
	return &KDESaver{
		dbus:       dbus,
		files:      files,
		legacyPath: legacyPath,
		modernPath: modernPath,
	}
}

// Backend returns the backend identifier.
func (s *KDESaver) Backend() types.Backend {
	return types.BackendKDE
}

// GetTimeout reads the idle timeout in seconds. The legacy file wins when it
// exists; otherwise the modern file's minute value is scaled, defaulting to
// five minutes when the file or its Timeout entry is absent.
func (s *KDESaver) GetTimeout() (int, error) {
	if s.files.Exists(s.legacyPath) {
		content, err := s.files.ReadText(s.legacyPath)
		if err != nil {
			return 0, &ExecError{Op: "reading " + s.legacyPath, Err: err}
		}

		value, ok := parseConf(content).get("", kdeTimeoutKey)
		if !ok {
			return 0, &ParseError{What: "Timeout entry in " + s.legacyPath}
		}
		seconds, err := strconv.Atoi(value)
		if err != nil || seconds < 0 {
			return 0, &ParseError{What: "Timeout value in " + s.legacyPath, Raw: value}
		}
		return seconds, nil
	}

	if !s.files.Exists(s.modernPath) {
		return kdeDefaultTimeoutSeconds, nil
	}

	content, err := s.files.ReadText(s.modernPath)
	if err != nil {
		return 0, &ExecError{Op: "reading " + s.modernPath, Err: err}
	}

	value, ok := parseConf(content).get(kdeDaemonSection, kdeTimeoutKey)
	if !ok {
		return kdeDefaultTimeoutSeconds, nil
	}
	minutes, err := strconv.Atoi(value)
	if err != nil || minutes < 0 {
		return 0, &ParseError{What: "Timeout value in " + s.modernPath, Raw: value}
	}
	return minutes * 60, nil
}

// SetTimeout writes the idle timeout. The legacy file, when present, must
// already hold a Timeout entry; the modern file gets the [Daemon] section and
// Timeout key appended when missing, and is created when absent.
func (s *KDESaver) SetTimeout(seconds int) error {
	if s.files.Exists(s.legacyPath) {
		return s.setLegacyTimeout(seconds)
	}
	return s.setModernTimeout(seconds)
}

func (s *KDESaver) setLegacyTimeout(seconds int) error {
	content, err := s.files.ReadText(s.legacyPath)
	if err != nil {
		return &ExecError{Op: "reading " + s.legacyPath, Err: err}
	}

	f := parseConf(content)
	if !f.set("", kdeTimeoutKey, strconv.Itoa(seconds)) {
		return &ParseError{What: "Timeout entry in " + s.legacyPath}
	}
	if err := s.files.WriteText(s.legacyPath, f.String()); err != nil {
		return &ExecError{Op: "writing " + s.legacyPath, Err: err}
	}
	return nil
}

func (s *KDESaver) setModernTimeout(seconds int) error {
	minutes := strconv.Itoa(minutesFor(seconds))

	content := ""
	if s.files.Exists(s.modernPath) {
		var err error
		content, err = s.files.ReadText(s.modernPath)
		if err != nil {
			return &ExecError{Op: "reading " + s.modernPath, Err: err}
		}
	}

	f := parseConf(content)
	if !f.set(kdeDaemonSection, kdeTimeoutKey, minutes) {
		f.appendKey(kdeDaemonSection, kdeTimeoutKey, minutes)
	}
	if err := s.files.WriteText(s.modernPath, f.String()); err != nil {
		return &ExecError{Op: "writing " + s.modernPath, Err: err}
	}
	return nil
}

// Enable is not supported on KDE; the lockdown key is a GNOME facility.
func (s *KDESaver) Enable() error {
	return &UnsupportedError{Backend: s.Backend(), Op: "enable"}
}

// Disable is not supported on KDE.
func (s *KDESaver) Disable() error {
	return &UnsupportedError{Backend: s.Backend(), Op: "disable"}
}

// IsEnabled is not supported on KDE.
func (s *KDESaver) IsEnabled() (bool, error) {
	return false, &UnsupportedError{Backend: s.Backend(), Op: "is-enabled"}
}

// Activate locks the screen through the screensaver D-Bus service.
func (s *KDESaver) Activate() error {
	if _, err := s.dbus.Call(kdeService, kdeObjectPath, "Lock"); err != nil {
		return &ExecError{Op: "calling Lock on " + kdeService, Err: err}
	}
	return nil
}

// Deactivate is not supported on KDE; the locker requires user interaction.
func (s *KDESaver) Deactivate() error {
	return &UnsupportedError{Backend: s.Backend(), Op: "deactivate"}
}

// IsActive queries the screensaver D-Bus service and parses its textual
// boolean reply.
func (s *KDESaver) IsActive() (bool, error) {
	reply, err := s.dbus.Call(kdeService, kdeObjectPath, "GetActive")
	if err != nil {
		return false, &ExecError{Op: "calling GetActive on " + kdeService, Err: err}
	}

	switch strings.TrimSpace(reply) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, &ParseError{What: "GetActive reply", Raw: reply}
}

// PreventActivation resets the idle timer through SimulateUserActivity.
func (s *KDESaver) PreventActivation() error {
	if _, err := s.dbus.Call(kdeService, kdeObjectPath, "SimulateUserActivity"); err != nil {
		return &ExecError{Op: "calling SimulateUserActivity on " + kdeService, Err: err}
	}
	return nil
}
