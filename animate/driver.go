// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package animate

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Driver runs one rotation tween at a time for a single wheel. Starting a
// new tween cancels the previous one and resets the wheel to 0° first.
type Driver struct {
	duration time.Duration
	interval time.Duration
	ease     EaseFunc

	mu       sync.Mutex
	rotation float64
	spinning bool
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewDriver(duration time.Duration, fps int) *Driver {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Driver{
		duration: duration,
		interval: time.Second / time.Duration(fps),
		ease:     EaseOutCubic,
	}
}

// Rotation is the wheel's current visual rotation in degrees.
func (d *Driver) Rotation() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rotation
}

func (d *Driver) Spinning() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.spinning
}

// Start tweens from 0° to target. onFrame receives every intermediate
// rotation; onDone runs once when target is reached, and not at all if
// the tween is cancelled. Callbacks run on the driver goroutine and must
// not call Start or Cancel.
func (d *Driver) Start(ctx context.Context, target float64, onFrame func(rotation float64), onDone func()) {
	d.Cancel()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	d.mu.Lock()
	d.rotation = 0
	d.spinning = true
	d.cancel = cancel
	d.done = done
	d.mu.Unlock()

	slog.Debug("tween started", "target", target, "duration_ms", d.duration.Milliseconds())

	go d.run(ctx, done, target, onFrame, onDone)
}

// Cancel stops any in-flight tween and waits for it to exit. The wheel
// keeps whatever rotation it had reached.
func (d *Driver) Cancel() {
	d.mu.Lock()
	cancel, done := d.cancel, d.done
	d.cancel, d.done = nil, nil
	d.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (d *Driver) run(ctx context.Context, done chan struct{}, target float64, onFrame func(float64), onDone func()) {
	defer close(done)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			d.mu.Lock()
			d.spinning = false
			d.mu.Unlock()
			return
		case <-ticker.C:
		}

		elapsed := time.Since(start)
		rot := RotationAt(0, target, elapsed, d.duration, d.ease)
		finished := elapsed >= d.duration
		if finished {
			rot = target
		}

		d.mu.Lock()
		d.rotation = rot
		if finished {
			d.spinning = false
		}
		d.mu.Unlock()

		if onFrame != nil {
			onFrame(rot)
		}
		if finished {
			if onDone != nil {
				onDone()
			}
			return
		}
	}
}
