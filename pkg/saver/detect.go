package saver

import (
	"github.com/rs/zerolog/log"

	"github.com/saverctl/saverctl/pkg/interfaces"
	"github.com/saverctl/saverctl/pkg/types"
)

// ProbeDetector identifies the active screensaver backend by running an
// ordered probe sequence; the first probe whose signature is present wins.
type ProbeDetector struct {
	runner interfaces.CommandRunner
	procs  interfaces.ProcessTable
}

// NewProbeDetector creates a detector over the given process collaborators.
func NewProbeDetector(runner interfaces.CommandRunner, procs interfaces.ProcessTable) *ProbeDetector {
	return &ProbeDetector{runner: runner, procs: procs}
}

// Detect probes for each backend in order and returns the first hit. The
// ordering matters: xscreensaver is a long-running, unambiguous process;
// KDE's D-Bus service can answer even without a dedicated screensaver
// process; GNOME and Cinnamon are identified by process name alone, the
// weakest evidence, so they come last. Nothing is cached across calls.
func (d *ProbeDetector) Detect() (types.Backend, bool) {
	probes := []struct {
		backend types.Backend
		present func() bool
	}{
		{types.BackendXScreensaver, d.xscreensaverPresent},
		{types.BackendKDE, d.kdePresent},
		{types.BackendGNOME, d.gnomePresent},
		{types.BackendCinnamon, d.cinnamonPresent},
	}

	for _, p := range probes {
		if p.present() {
			log.Debug().Str("backend", p.backend.String()).Msg("screensaver backend detected")
			return p.backend, true
		}
	}

	log.Debug().Msg("no screensaver backend detected")
	return "", false
}

func (d *ProbeDetector) xscreensaverPresent() bool {
	return d.procs.ProcessExists("xscreensaver")
}

// kdePresent confirms KDE by asking its D-Bus screensaver service to answer,
// rather than trusting qdbus availability alone.
func (d *ProbeDetector) kdePresent() bool {
	if !d.runner.LookPath("qdbus") {
		return false
	}
	_, _, err := d.runner.Run([]string{"qdbus", "org.kde.screensaver"})
	return err == nil
}

func (d *ProbeDetector) gnomePresent() bool {
	return d.procs.ProcessExists("gnome-screensaver")
}

func (d *ProbeDetector) cinnamonPresent() bool {
	return d.procs.ProcessExists("cinnamon-screensaver")
}
