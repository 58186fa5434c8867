package crew

import (
	"context"
	"time"
)

// Poller runs Refresh every Interval unless the gate is busy.
type Poller struct {
	Interval time.Duration
	Gate     *SyncGate
	Refresh  func(ctx context.Context) error
	// OnSkip and OnError are optional observers.
	OnSkip  func(reason string)
	OnError func(err error)
}

// Tick performs a single scheduling decision.
func (p *Poller) Tick(ctx context.Context) (ran bool, err error) {
	if p.Gate != nil {
		if busy, reason := p.Gate.Busy(); busy {
			if p.OnSkip != nil {
				p.OnSkip(reason)
			}
			return false, nil
		}
	}
	if err := p.Refresh(ctx); err != nil {
		if p.OnError != nil {
			p.OnError(err)
		}
		return true, err
	}
	return true, nil
}

// Run ticks until ctx is cancelled. Refresh errors do not stop the loop.
func (p *Poller) Run(ctx context.Context) error {
	interval := p.Interval
	if interval <= 0 {
		interval = 45 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			_, _ = p.Tick(ctx)
		}
	}
}
