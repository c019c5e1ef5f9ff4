// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkms-go/diary-keeper/internal/logger"
)

// DefaultJanitorInterval is the pause between two expiry sweeps.
const DefaultJanitorInterval = 300 * time.Second

// Sweeper evicts expired sessions and reports how many it removed.
type Sweeper interface {
	Sweep() int
}

// Janitor runs [Sweeper.Sweep] on a fixed interval in a background
// goroutine until stopped. A panicking sweep is logged and the loop goes on.
type Janitor struct {
	sweeper  Sweeper
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewJanitor creates an idle janitor. A non-positive interval falls back to
// [DefaultJanitorInterval].
func NewJanitor(sweeper Sweeper, interval time.Duration, l *logger.Logger) *Janitor {
	if interval <= 0 {
		interval = DefaultJanitorInterval
	}
	if l == nil {
		l = logger.Nop()
	}
	return &Janitor{
		sweeper:  sweeper,
		interval: interval,
		logger:   l,
	}
}

// Start launches the sweep loop, stopping a previously started one first.
// The first sweep happens one interval after Start. The loop exits when ctx
// is cancelled or Stop is called.
func (j *Janitor) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Dur("interval", j.interval).Msg("diary session janitor started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				j.sweep()
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit. Safe to call when the
// janitor is not running.
func (j *Janitor) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// sweep runs one pass and swallows panics so a bug in a single scan cannot
// end the loop.
func (j *Janitor) sweep() {
	defer func() {
		if r := recover(); r != nil {
			j.logger.Error().Err(fmt.Errorf("%v", r)).Msg("diary session sweep failed")
		}
	}()

	if evicted := j.sweeper.Sweep(); evicted > 0 {
		j.logger.Info().Int("evicted", evicted).Msg("expired diary sessions cleaned up")
	}
}
