package system

import (
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog/log"

	"github.com/saverctl/saverctl/pkg/interfaces"
)

// screensaverInterface is the D-Bus interface the screensaver services expose
// their control methods on.
const screensaverInterface = "org.freedesktop.ScreenSaver"

// QDBusCaller issues D-Bus method calls through the qdbus command line
// utility and returns its trimmed stdout.
type QDBusCaller struct {
	runner interfaces.CommandRunner
	binary string
}

// NewQDBusCaller creates a caller that shells out to the given qdbus binary.
// An empty binary name defaults to "qdbus".
func NewQDBusCaller(runner interfaces.CommandRunner, binary string) *QDBusCaller {
	if binary == "" {
		binary = "qdbus"
	}
	return &QDBusCaller{runner: runner, binary: binary}
}

// Call invokes a no-argument method on the given service and object path.
func (c *QDBusCaller) Call(service, objectPath, method string) (string, error) {
	stdout, stderr, err := c.runner.Run([]string{c.binary, service, objectPath, method})
	if err != nil {
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			return "", fmt.Errorf("%s %s %s %s: %s: %w", c.binary, service, objectPath, method, msg, err)
		}
		return "", fmt.Errorf("%s %s %s %s: %w", c.binary, service, objectPath, method, err)
	}
	return strings.TrimSpace(string(stdout)), nil
}

// SessionBusCaller issues D-Bus method calls directly on the session bus.
// Replies are rendered to the same textual form qdbus prints, so callers
// parse both transports identically.
type SessionBusCaller struct{}

// Call invokes a no-argument method on the given service and object path.
func (SessionBusCaller) Call(service, objectPath, method string) (string, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return "", fmt.Errorf("connecting to session bus: %w", err)
	}
	defer func() { _ = conn.Close() }()

	log.Debug().
		Str("service", service).
		Str("path", objectPath).
		Str("method", method).
		Msg("session bus call")

	obj := conn.Object(service, dbus.ObjectPath(objectPath))
	call := obj.Call(screensaverInterface+"."+method, 0)
	if call.Err != nil {
		return "", fmt.Errorf("calling %s.%s on %s: %w", screensaverInterface, method, service, call.Err)
	}
	if len(call.Body) == 0 {
		return "", nil
	}
	return fmt.Sprint(call.Body[0]), nil
}
