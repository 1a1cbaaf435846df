// Package watch drives periodic polling loops on behalf of the synchronous
// saver core: state-transition recording and keepalive.
package watch

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/saverctl/saverctl/pkg/history"
	"github.com/saverctl/saverctl/pkg/saver"
	"github.com/saverctl/saverctl/pkg/types"
)

// Controller is the subset of the saver client the loops drive.
type Controller interface {
	IsActive(explicit string) (bool, types.Backend, error)
	PreventActivation(explicit string) (types.Backend, error)
}

// Recorder is the subset of the history store the watcher writes to.
type Recorder interface {
	Record(backend string, active bool, at time.Time) error
	LastEvent() (*history.Event, error)
}

// Watcher polls the screensaver's active state and records transitions.
type Watcher struct {
	controller Controller
	recorder   Recorder
	explicit   string
	interval   time.Duration

	last *bool
}

// New creates a watcher polling at the given interval. An empty explicit
// backend means auto-detection on every poll.
func New(controller Controller, recorder Recorder, explicit string, interval time.Duration) *Watcher {
	return &Watcher{
		controller: controller,
		recorder:   recorder,
		explicit:   explicit,
		interval:   interval,
	}
}

// Run polls until ctx is cancelled. The first poll happens immediately; the
// last recorded state is used as the starting point so restarting the
// watcher does not duplicate the current state.
func (w *Watcher) Run(ctx context.Context) error {
	if ev, err := w.recorder.LastEvent(); err == nil && ev != nil {
		state := ev.Active
		w.last = &state
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.poll()

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// poll performs one is-active query and records a transition if the state
// changed since the last observation.
func (w *Watcher) poll() {
	active, backend, err := w.controller.IsActive(w.explicit)
	if err != nil {
		log.Warn().Err(err).Msg("is-active poll failed")
		return
	}

	if w.last != nil && *w.last == active {
		return
	}

	now := time.Now()
	if err := w.recorder.Record(backend.String(), active, now); err != nil {
		log.Warn().Err(err).Msg("failed to record transition")
		return
	}

	log.Info().
		Str("backend", backend.String()).
		Bool("active", active).
		Msg("screensaver state changed")
	w.last = &active
}

// Keepalive calls prevent-activation on a fixed interval until ctx is
// cancelled. Transient execution failures are logged and retried on the next
// tick; caller-correctable failures (unsupported operation, unknown backend,
// nothing detected) abort the loop since no later tick can succeed.
func Keepalive(ctx context.Context, controller Controller, explicit string, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		backend, err := controller.PreventActivation(explicit)
		if err != nil {
			switch saver.Classify(err) {
			case types.StatusUnsupported, types.StatusUnknownBackend, types.StatusNotDetected:
				return err
			default:
				log.Warn().Err(err).Msg("prevent-activation failed")
			}
		} else {
			log.Debug().Str("backend", backend.String()).Msg("idle timer reset")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
