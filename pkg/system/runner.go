// Package system provides the concrete process, file and D-Bus collaborators
// used against a real host environment.
package system

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// ExecRunner runs external commands synchronously with captured output.
type ExecRunner struct{}

// Run executes argv, waiting for completion. Stdout and stderr are always
// captured; a non-zero exit status is returned as an error.
func (ExecRunner) Run(argv []string) ([]byte, []byte, error) {
	if len(argv) == 0 {
		return nil, nil, fmt.Errorf("empty command")
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(argv[0], argv[1:]...) // #nosec G204 - argv shapes are fixed by the backend adapters
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug().Strs("argv", argv).Msg("running command")
	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), stderr.Bytes(), fmt.Errorf("running %s: %w", argv[0], err)
	}
	return stdout.Bytes(), stderr.Bytes(), nil
}

// LookPath reports whether name resolves to an executable on the search path.
func (ExecRunner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
