package periodicrunner

import (
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/domain/logging"
	"apptrack/internal/core/services"
	"context"
	"sync"
	"time"
)

// Runner drives a service once per tick until stopped. The tick source is
// injectable so tests can advance time explicitly; by default a time.Ticker
// with the given period is used.
type Runner[T any, S any] struct {
	log      logging.Logger
	service  services.Service[T, S]
	input    T
	period   time.Duration
	ticks    <-chan time.Time
	stopTick func()

	startOnce sync.Once
	stopOnce  sync.Once
	started   bool
	stopCh    chan struct{}
	doneCh    chan struct{}
}

func New[T any, S any](
	log logging.Logger,
	service services.Service[T, S],
	input T,
	period time.Duration,
) *Runner[T, S] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	if period <= 0 {
		panic(e.NewInvalidStateError("period must be positive"))
	}
	return &Runner[T, S]{
		log:     log,
		service: service,
		input:   input,
		period:  period,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// WithTicks replaces the wall-clock ticker. Must be called before Start.
func (r *Runner[T, S]) WithTicks(ticks <-chan time.Time) *Runner[T, S] {
	r.ticks = ticks
	return r
}

func (r *Runner[T, S]) Start(ctx context.Context) {
	r.startOnce.Do(func() {
		if r.ticks == nil {
			ticker := time.NewTicker(r.period)
			r.ticks = ticker.C
			r.stopTick = ticker.Stop
		}
		r.started = true
		go r.loop(ctx)
	})
}

// Stop halts the loop and waits for any in-flight run to finish, so no
// partial or duplicate events are emitted after it returns.
func (r *Runner[T, S]) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
		if r.started {
			<-r.doneCh
		}
		if r.stopTick != nil {
			r.stopTick()
		}
	})
}

func (r *Runner[T, S]) loop(ctx context.Context) {
	defer close(r.doneCh)
	for {
		select {
		case <-r.stopCh:
			r.log.Info(ctx, "Stopping periodic runner.")
			return
		case <-ctx.Done():
			r.log.Info(ctx, "Periodic runner context done.")
			return
		case <-r.ticks:
			if _, err := r.service.Run(ctx, r.input); err != nil {
				r.log.Error(ctx, "Periodic service returned an error.", logging.Entry("err", err))
			}
		}
	}
}
