// Package interfaces defines the core interfaces used throughout the application.
package interfaces

import "github.com/saverctl/saverctl/pkg/types"

// CommandRunner executes external commands with captured output.
type CommandRunner interface {
	// Run executes argv and returns captured stdout and stderr. A non-zero
	// exit status is reported as an error alongside any captured output.
	Run(argv []string) (stdout, stderr []byte, err error)

	// LookPath reports whether an executable is resolvable on the search path.
	LookPath(name string) bool
}

// ProcessTable answers process-existence queries by name.
type ProcessTable interface {
	ProcessExists(name string) bool
}

// FileStore reads and rewrites small text configuration files. Writes are
// all-or-nothing: a failed write never leaves a partially written file behind.
type FileStore interface {
	ReadText(path string) (string, error)
	WriteText(path, content string) error
	Exists(path string) bool
}

// DBusCaller issues a single no-argument method call against a session-bus
// service and returns the textual form of the reply.
type DBusCaller interface {
	Call(service, objectPath, method string) (string, error)
}

// Detector determines which screensaver backend is active on the host.
// The second return value is false when no backend could be identified.
type Detector interface {
	Detect() (types.Backend, bool)
}

// Saver is the uniform operation set implemented by every backend adapter.
// Operations a backend cannot perform return an unsupported-operation error.
type Saver interface {
	Backend() types.Backend
	GetTimeout() (int, error)
	SetTimeout(seconds int) error
	Enable() error
	Disable() error
	IsEnabled() (bool, error)
	Activate() error
	Deactivate() error
	IsActive() (bool, error)
	PreventActivation() error
}
