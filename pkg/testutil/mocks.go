// Package testutil provides shared mock implementations for testing.
package testutil

import (
	"strings"
	"sync"

	"github.com/saverctl/saverctl/pkg/types"
)

// RunResponse scripts one Run outcome on a MockRunner.
type RunResponse struct {
	Stdout []byte
	Stderr []byte
	Err    error
}

// MockRunner is a thread-safe mock implementation of interfaces.CommandRunner.
// Responses are scripted per exact argv; unscripted commands succeed with
// empty output unless a default response is set.
type MockRunner struct {
	mu          sync.Mutex
	responses   map[string]RunResponse
	defaultResp RunResponse
	calls       [][]string
	onPath      map[string]bool
	lookups     []string
}

// NewMockRunner creates a new mock command runner.
func NewMockRunner() *MockRunner {
	return &MockRunner{
		responses: map[string]RunResponse{},
		onPath:    map[string]bool{},
	}
}

// Respond scripts the response for the exact argv given as a single
// space-joined string.
func (m *MockRunner) Respond(argv string, resp RunResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[argv] = resp
}

// SetDefault sets the response returned for unscripted commands.
func (m *MockRunner) SetDefault(resp RunResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultResp = resp
}

// Run implements the CommandRunner interface.
func (m *MockRunner) Run(argv []string) ([]byte, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, append([]string(nil), argv...))

	if resp, ok := m.responses[strings.Join(argv, " ")]; ok {
		return resp.Stdout, resp.Stderr, resp.Err
	}
	return m.defaultResp.Stdout, m.defaultResp.Stderr, m.defaultResp.Err
}

// SetOnPath scripts a LookPath result for an executable name.
func (m *MockRunner) SetOnPath(name string, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onPath[name] = ok
}

// LookPath implements the CommandRunner interface.
func (m *MockRunner) LookPath(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups = append(m.lookups, name)
	return m.onPath[name]
}

// Calls returns a copy of every argv passed to Run.
func (m *MockRunner) Calls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([][]string, len(m.calls))
	copy(result, m.calls)
	return result
}

// CallCount returns the number of Run invocations.
func (m *MockRunner) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// LookupCount returns the number of LookPath invocations.
func (m *MockRunner) LookupCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lookups)
}

// MockProcessTable is a mock implementation of interfaces.ProcessTable backed
// by a set of running process names.
type MockProcessTable struct {
	mu        sync.Mutex
	running   map[string]bool
	callCount int
}

// NewMockProcessTable creates a mock process table with the given processes
// running.
func NewMockProcessTable(names ...string) *MockProcessTable {
	running := map[string]bool{}
	for _, name := range names {
		running[name] = true
	}
	return &MockProcessTable{running: running}
}

// ProcessExists implements the ProcessTable interface.
func (m *MockProcessTable) ProcessExists(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++
	return m.running[name]
}

// SetRunning marks a process name as running or stopped.
func (m *MockProcessTable) SetRunning(name string, running bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.running[name] = running
}

// CallCount returns the number of ProcessExists invocations.
func (m *MockProcessTable) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// MockFileStore is a mock implementation of interfaces.FileStore holding file
// contents in memory.
type MockFileStore struct {
	mu       sync.Mutex
	files    map[string]string
	readErr  error
	writeErr error
	writes   int
}

// NewMockFileStore creates a mock file store seeded with the given files.
func NewMockFileStore(files map[string]string) *MockFileStore {
	if files == nil {
		files = map[string]string{}
	}
	return &MockFileStore{files: files}
}

// ReadText implements the FileStore interface.
func (m *MockFileStore) ReadText(path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.readErr != nil {
		return "", m.readErr
	}
	content, ok := m.files[path]
	if !ok {
		return "", &notFoundError{path: path}
	}
	return content, nil
}

// WriteText implements the FileStore interface.
func (m *MockFileStore) WriteText(path, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[path] = content
	return nil
}

// Exists implements the FileStore interface.
func (m *MockFileStore) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[path]
	return ok
}

// Content returns the current content of a file.
func (m *MockFileStore) Content(path string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.files[path]
}

// SetReadError makes every ReadText call fail with err.
func (m *MockFileStore) SetReadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
}

// SetWriteError makes every WriteText call fail with err.
func (m *MockFileStore) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// WriteCount returns the number of WriteText invocations, including failures.
func (m *MockFileStore) WriteCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

type notFoundError struct {
	path string
}

func (e *notFoundError) Error() string {
	return "file not found: " + e.path
}

// MockDBusCaller is a mock implementation of interfaces.DBusCaller returning
// a scripted reply.
type MockDBusCaller struct {
	mu    sync.Mutex
	reply string
	err   error
	calls []string
}

// NewMockDBusCaller creates a mock caller answering with reply.
func NewMockDBusCaller(reply string) *MockDBusCaller {
	return &MockDBusCaller{reply: reply}
}

// Call implements the DBusCaller interface.
func (m *MockDBusCaller) Call(service, objectPath, method string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, service+" "+objectPath+" "+method)
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

// SetError makes every Call fail with err.
func (m *MockDBusCaller) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns every "service path method" triple passed to Call.
func (m *MockDBusCaller) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]string, len(m.calls))
	copy(result, m.calls)
	return result
}

// CallCount returns the number of Call invocations.
func (m *MockDBusCaller) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// MockDetector is a mock implementation of interfaces.Detector.
type MockDetector struct {
	mu        sync.Mutex
	backend   types.Backend
	found     bool
	callCount int
}

// NewMockDetector creates a mock detector reporting the given outcome.
func NewMockDetector(backend types.Backend, found bool) *MockDetector {
	return &MockDetector{backend: backend, found: found}
}

// Detect implements the Detector interface.
func (m *MockDetector) Detect() (types.Backend, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++
	return m.backend, m.found
}

// CallCount returns the number of Detect invocations.
func (m *MockDetector) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}
