package saver

import (
	"errors"
	"fmt"

	"github.com/saverctl/saverctl/pkg/types"
)

// ErrNotDetected is returned when detection finds no active screensaver and
// the caller supplied no explicit backend.
var ErrNotDetected = errors.New("no screensaver backend detected")

// UnsupportedError reports an operation that has no implementation on the
// resolved backend.
type UnsupportedError struct {
	Backend types.Backend
	Op      string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s is not supported on %s", e.Op, e.Backend)
}

// UnknownBackendError reports an explicit backend name outside the known set.
type UnknownBackendError struct {
	Name string
}

func (e *UnknownBackendError) Error() string {
	return fmt.Sprintf("unknown screensaver backend %q", e.Name)
}

// ExecError reports a failed external command or file write.
type ExecError struct {
	Op  string
	Err error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// ParseError reports text that matched none of the expected patterns. Raw is
// empty when the expected pattern was missing entirely.
type ParseError struct {
	What string
	Raw  string
}

func (e *ParseError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("%s not found", e.What)
	}
	return fmt.Sprintf("unrecognized %s: %q", e.What, e.Raw)
}

// Classify maps an operation error to its status class. A nil error is
// success; errors outside the taxonomy count as execution failures.
func Classify(err error) types.Status {
	if err == nil {
		return types.StatusSuccess
	}
	if errors.Is(err, ErrNotDetected) {
		return types.StatusNotDetected
	}

	var (
		unsupported *UnsupportedError
		unknown     *UnknownBackendError
		parse       *ParseError
	)
	switch {
	case errors.As(err, &unsupported):
		return types.StatusUnsupported
	case errors.As(err, &unknown):
		return types.StatusUnknownBackend
	case errors.As(err, &parse):
		return types.StatusParseFailure
	default:
		return types.StatusExecFailure
	}
}

// NewResult normalizes an operation outcome into the common result shape.
// Payload fields are left to the caller, which knows the operation's type.
func NewResult(backend types.Backend, err error) types.Result {
	r := types.Result{
		Status:  Classify(err),
		Backend: backend,
	}
	if err != nil {
		r.Message = err.Error()
		var parse *ParseError
		if errors.As(err, &parse) {
			r.Raw = parse.Raw
		}
	}
	return r
}
