// Package saver provides a uniform control surface over the screensaver and
// screenlocker backends found on Linux desktops: KDE Plasma, GNOME, Cinnamon
// and xscreensaver. A Client resolves which backend is active, either from an
// explicit caller choice or by probing the host, and routes each operation to
// the matching adapter. The Client itself performs no I/O and holds no state
// across calls; detection runs afresh for every auto-resolved operation.
package saver

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/saverctl/saverctl/pkg/interfaces"
	"github.com/saverctl/saverctl/pkg/system"
	"github.com/saverctl/saverctl/pkg/types"
)

// Options configures the collaborators and file paths behind a Client. Nil
// collaborators and empty paths fall back to the real host environment.
type Options struct {
	Runner interfaces.CommandRunner
	Procs  interfaces.ProcessTable
	Files  interfaces.FileStore
	DBus   interfaces.DBusCaller

	// Detector overrides the default ordered probe sequence when set.
	Detector interfaces.Detector

	XScreensaverFile string
	KDELegacyFile    string
	KDEModernFile    string
}

// Client dispatches uniform screensaver operations to backend adapters.
type Client struct {
	detector interfaces.Detector
	savers   map[types.Backend]interfaces.Saver
}

// New builds a Client from opts.
func New(opts Options) *Client {
	if opts.Runner == nil {
		opts.Runner = system.ExecRunner{}
	}
	if opts.Procs == nil {
		opts.Procs = system.ProcTable{}
	}
	if opts.Files == nil {
		opts.Files = system.AtomicFileStore{}
	}
	if opts.DBus == nil {
		opts.DBus = system.NewQDBusCaller(opts.Runner, "")
	}
	if opts.Detector == nil {
		opts.Detector = NewProbeDetector(opts.Runner, opts.Procs)
	}

	home, _ := os.UserHomeDir()
	if opts.XScreensaverFile == "" {
		opts.XScreensaverFile = filepath.Join(home, ".xscreensaver")
	}
	if opts.KDELegacyFile == "" {
		opts.KDELegacyFile = filepath.Join(home, ".kde", "share", "config", "kscreensaverrc")
	}
	if opts.KDEModernFile == "" {
		opts.KDEModernFile = filepath.Join(home, ".config", "kscreenlockerrc")
	}

	return &Client{
		detector: opts.Detector,
		savers: map[types.Backend]interfaces.Saver{
			types.BackendKDE:          NewKDESaver(opts.DBus, opts.Files, opts.KDELegacyFile, opts.KDEModernFile),
			types.BackendGNOME:        NewGNOMESaver(opts.Runner),
			types.BackendCinnamon:     NewCinnamonSaver(opts.Runner),
			types.BackendXScreensaver: NewXScreensaverSaver(opts.Runner, opts.Files, opts.XScreensaverFile),
		},
	}
}

// Detect reports which backend is active on the host. The second return
// value is false, not an error, when nothing was identified.
func (c *Client) Detect() (types.Backend, bool) {
	return c.detector.Detect()
}

// resolve picks the adapter serving explicit, or the detected backend when
// explicit is empty. Detection never runs when a backend is given.
func (c *Client) resolve(explicit string) (interfaces.Saver, error) {
	if explicit != "" {
		backend := types.Backend(explicit)
		if !backend.Known() {
			return nil, &UnknownBackendError{Name: explicit}
		}
		return c.savers[backend], nil
	}

	backend, ok := c.detector.Detect()
	if !ok {
		return nil, ErrNotDetected
	}
	return c.savers[backend], nil
}

// GetTimeout returns the idle timeout in seconds and the backend that
// answered.
func (c *Client) GetTimeout(explicit string) (int, types.Backend, error) {
	s, err := c.resolve(explicit)
	if err != nil {
		return 0, "", err
	}
	seconds, err := s.GetTimeout()
	return seconds, s.Backend(), err
}

// SetTimeout sets the idle timeout in seconds. Backends with minute
// granularity truncate, keeping a one-minute floor.
func (c *Client) SetTimeout(explicit string, seconds int) (types.Backend, error) {
	if seconds < 0 {
		return "", &ParseError{What: "timeout seconds", Raw: strconv.Itoa(seconds)}
	}
	s, err := c.resolve(explicit)
	if err != nil {
		return "", err
	}
	return s.Backend(), s.SetTimeout(seconds)
}

// Enable turns the lock screen back on.
func (c *Client) Enable(explicit string) (types.Backend, error) {
	s, err := c.resolve(explicit)
	if err != nil {
		return "", err
	}
	return s.Backend(), s.Enable()
}

// Disable turns the lock screen off.
func (c *Client) Disable(explicit string) (types.Backend, error) {
	s, err := c.resolve(explicit)
	if err != nil {
		return "", err
	}
	return s.Backend(), s.Disable()
}

// IsEnabled reports whether the lock screen is enabled.
func (c *Client) IsEnabled(explicit string) (bool, types.Backend, error) {
	s, err := c.resolve(explicit)
	if err != nil {
		return false, "", err
	}
	enabled, err := s.IsEnabled()
	return enabled, s.Backend(), err
}

// Activate starts the screensaver, locking the screen where the backend
// locks.
func (c *Client) Activate(explicit string) (types.Backend, error) {
	s, err := c.resolve(explicit)
	if err != nil {
		return "", err
	}
	return s.Backend(), s.Activate()
}

// Deactivate stops the screensaver.
func (c *Client) Deactivate(explicit string) (types.Backend, error) {
	s, err := c.resolve(explicit)
	if err != nil {
		return "", err
	}
	return s.Backend(), s.Deactivate()
}

// IsActive reports whether the screensaver is currently active.
func (c *Client) IsActive(explicit string) (bool, types.Backend, error) {
	s, err := c.resolve(explicit)
	if err != nil {
		return false, "", err
	}
	active, err := s.IsActive()
	return active, s.Backend(), err
}

// PreventActivation resets the backend's idle timer, postponing activation.
func (c *Client) PreventActivation(explicit string) (types.Backend, error) {
	s, err := c.resolve(explicit)
	if err != nil {
		return "", err
	}
	return s.Backend(), s.PreventActivation()
}
