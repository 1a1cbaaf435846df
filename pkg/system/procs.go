package system

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ProcTable looks up running processes by name in /proc.
type ProcTable struct{}

// ProcessExists reports whether a process with the given executable name is
// currently running. The /proc/<pid>/cmdline entry is checked first because
// /proc/<pid>/comm is truncated to 15 bytes, which would misreport names like
// cinnamon-screensaver.
func (ProcTable) ProcessExists(name string) bool {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return false
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := strconv.Atoi(entry.Name()); err != nil {
			continue
		}

		if matchesCmdline(entry.Name(), name) || matchesComm(entry.Name(), name) {
			return true
		}
	}
	return false
}

func matchesCmdline(pid, name string) bool {
	data, err := os.ReadFile(filepath.Join("/proc", pid, "cmdline"))
	if err != nil || len(data) == 0 {
		return false
	}

	// cmdline is NUL-separated; the first field is the executable.
	argv0, _, _ := strings.Cut(string(data), "\x00")
	return filepath.Base(argv0) == name
}

func matchesComm(pid, name string) bool {
	data, err := os.ReadFile(filepath.Join("/proc", pid, "comm"))
	if err != nil {
		return false
	}

	comm := strings.TrimSpace(string(data))
	// comm holds at most 15 bytes of the name.
	if len(name) > 15 {
		return comm == name[:15]
	}
	return comm == name
}
