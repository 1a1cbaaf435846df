// Package types contains shared data structures used across the application.
package types

// Backend identifies one supported screensaver/screenlocker implementation.
type Backend string

// The closed set of supported backends.
const (
	BackendKDE          Backend = "kde"
	BackendGNOME        Backend = "gnome"
	BackendCinnamon     Backend = "cinnamon"
	BackendXScreensaver Backend = "xscreensaver"
)

// Backends returns every supported backend in a stable order.
func Backends() []Backend {
	return []Backend{BackendKDE, BackendGNOME, BackendCinnamon, BackendXScreensaver}
}

// Known reports whether b is one of the supported backends.
func (b Backend) Known() bool {
	switch b {
	case BackendKDE, BackendGNOME, BackendCinnamon, BackendXScreensaver:
		return true
	}
	return false
}

// String returns the backend name.
func (b Backend) String() string {
	return string(b)
}

// Status classifies the outcome of one uniform operation.
type Status string

// The status classes an operation can report.
const (
	StatusSuccess        Status = "success"
	StatusUnsupported    Status = "unsupported"
	StatusNotDetected    Status = "not-detected"
	StatusExecFailure    Status = "exec-failure"
	StatusParseFailure   Status = "parse-failure"
	StatusUnknownBackend Status = "unknown-backend"
)

// Result is the normalized outcome of one uniform operation. Payload fields
// are meaningful only when Status is StatusSuccess.
type Result struct {
	Status  Status  `json:"status"`
	Backend Backend `json:"backend,omitempty"` // backend that served the operation, when resolved
	Seconds int     `json:"seconds"`           // payload for timeout operations
	Flag    bool    `json:"value"`             // payload for boolean operations (is-active, is-enabled)
	Raw     string  `json:"raw,omitempty"`     // raw value observed from the backend, when any
	Message string  `json:"message,omitempty"` // human-readable diagnostic
}
