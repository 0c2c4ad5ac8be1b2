package services

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/peopledesk/peopledesk/pkg/configuration"
)

// AttendancePoller keeps the day board fresh: a slow ticker re-dispatches
// the fetch, a fast ticker drives elapsed-time observers. Start is
// idempotent per poller; Stop waits for the loop to drain.
type AttendancePoller struct {
	svc  *AttendanceService
	log  *logrus.Logger
	opts configuration.AttendanceOptions

	mu        sync.Mutex
	observers []func(now time.Time)
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewAttendancePoller(svc *AttendanceService, opts configuration.AttendanceOptions, log *logrus.Logger) *AttendancePoller {
	return &AttendancePoller{svc: svc, opts: opts, log: log}
}

// OnTick registers an observer invoked every tick interval, used to
// recompute elapsed working time without refetching.
func (p *AttendancePoller) OnTick(fn func(now time.Time)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, fn)
}

func (p *AttendancePoller) Start(ctx context.Context) error {
	if err := p.opts.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	go p.run(ctx, p.done)
	return nil
}

func (p *AttendancePoller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (p *AttendancePoller) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	poll := time.NewTicker(p.opts.PollInterval)
	defer poll.Stop()
	tick := time.NewTicker(p.opts.TickInterval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-poll.C:
			if err := p.svc.Fetch(ctx); err != nil && ctx.Err() == nil {
				p.log.WithError(err).Warn("attendance: background refresh failed")
			}
		case now := <-tick.C:
			p.notify(now)
		}
	}
}

func (p *AttendancePoller) notify(now time.Time) {
	p.mu.Lock()
	observers := make([]func(time.Time), len(p.observers))
	copy(observers, p.observers)
	p.mu.Unlock()

	for _, fn := range observers {
		fn(now)
	}
}
