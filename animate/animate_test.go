// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package animate

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestEaseOutCubic(t *testing.T) {
	if EaseOutCubic(0) != 0 {
		t.Errorf("Expected 0 at start, got %f", EaseOutCubic(0))
	}
	if EaseOutCubic(1) != 1 {
		t.Errorf("Expected 1 at end, got %f", EaseOutCubic(1))
	}
	if EaseOutCubic(0.5) <= 0.5 {
		t.Errorf("Ease-out should be ahead of linear at midpoint, got %f", EaseOutCubic(0.5))
	}

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseOutCubic(float64(i) / 100)
		if v < prev {
			t.Fatalf("EaseOutCubic not monotonic at step %d", i)
		}
		prev = v
	}
}

func TestProgress(t *testing.T) {
	testCases := []struct {
		name     string
		elapsed  time.Duration
		duration time.Duration
		expected float64
	}{
		{"before start", -time.Second, time.Second, 0},
		{"start", 0, time.Second, 0},
		{"half", 500 * time.Millisecond, time.Second, 0.5},
		{"end", time.Second, time.Second, 1},
		{"past end", 2 * time.Second, time.Second, 1},
		{"zero duration", 0, 0, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Progress(tc.elapsed, tc.duration); got != tc.expected {
				t.Errorf("Expected %f, got %f", tc.expected, got)
			}
		})
	}
}

func TestRotationAt(t *testing.T) {
	if got := RotationAt(0, 1845, 0, time.Second, nil); got != 0 {
		t.Errorf("Expected 0 at start, got %f", got)
	}
	if got := RotationAt(0, 1845, time.Second, time.Second, nil); got != 1845 {
		t.Errorf("Expected target at end, got %f", got)
	}
	if got := RotationAt(100, 200, 500*time.Millisecond, time.Second, Linear); got != 150 {
		t.Errorf("Expected 150 halfway linear, got %f", got)
	}
}

func TestKeyframes(t *testing.T) {
	frames := Keyframes(2034, time.Second, 10, nil)
	if len(frames) != 11 {
		t.Fatalf("Expected 11 frames, got %d", len(frames))
	}
	if frames[0] != 0 {
		t.Errorf("Expected first frame 0, got %f", frames[0])
	}
	if frames[len(frames)-1] != 2034 {
		t.Errorf("Expected last frame 2034, got %f", frames[len(frames)-1])
	}
	for i := 1; i < len(frames); i++ {
		if frames[i] < frames[i-1] {
			t.Errorf("Frame %d goes backwards: %f < %f", i, frames[i], frames[i-1])
		}
	}

	if got := Keyframes(90, 0, 60, nil); len(got) != 1 || got[0] != 90 {
		t.Errorf("Expected single target frame for zero duration, got %v", got)
	}
}

func TestDriver_Completes(t *testing.T) {
	d := NewDriver(50*time.Millisecond, 200)

	var frames atomic.Int32
	done := make(chan struct{})
	d.Start(context.Background(), 1845, func(float64) { frames.Add(1) }, func() { close(done) })

	if !d.Spinning() {
		t.Error("Expected driver to report spinning right after Start")
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Tween did not finish")
	}

	if d.Rotation() != 1845 {
		t.Errorf("Expected rotation 1845, got %f", d.Rotation())
	}
	if d.Spinning() {
		t.Error("Expected driver idle after completion")
	}
	if frames.Load() == 0 {
		t.Error("Expected at least one frame")
	}
}

func TestDriver_RestartCancelsPrevious(t *testing.T) {
	d := NewDriver(200*time.Millisecond, 200)

	var firstDone atomic.Bool
	d.Start(context.Background(), 5000, nil, func() { firstDone.Store(true) })
	time.Sleep(20 * time.Millisecond)

	secondDone := make(chan struct{})
	var mu sync.Mutex
	var seen []float64
	d.Start(context.Background(), 1890, func(r float64) {
		mu.Lock()
		seen = append(seen, r)
		mu.Unlock()
	}, func() { close(secondDone) })

	select {
	case <-secondDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Second tween did not finish")
	}

	if firstDone.Load() {
		t.Error("Cancelled tween must not report completion")
	}
	if d.Rotation() != 1890 {
		t.Errorf("Expected rotation 1890, got %f", d.Rotation())
	}

	mu.Lock()
	defer mu.Unlock()
	for _, r := range seen {
		if r > 1890+1e-9 {
			t.Errorf("Frame %f overshoots second target; first tween leaked", r)
		}
	}
}

func TestDriver_StartResetsRotation(t *testing.T) {
	d := NewDriver(time.Hour, 1)
	d.mu.Lock()
	d.rotation = 720
	d.mu.Unlock()

	d.Start(context.Background(), 90, nil, nil)
	defer d.Cancel()

	if got := d.Rotation(); math.Abs(got) > 1e-9 {
		t.Errorf("Expected rotation reset to 0, got %f", got)
	}
}

func TestDriver_CancelKeepsRotation(t *testing.T) {
	d := NewDriver(time.Second, 100)

	var doneCalled atomic.Bool
	d.Start(context.Background(), 3600, nil, func() { doneCalled.Store(true) })
	time.Sleep(50 * time.Millisecond)
	d.Cancel()

	r := d.Rotation()
	if r <= 0 || r >= 3600 {
		t.Errorf("Expected partial rotation, got %f", r)
	}
	if d.Spinning() {
		t.Error("Expected driver idle after Cancel")
	}

	time.Sleep(30 * time.Millisecond)
	if doneCalled.Load() {
		t.Error("onDone must not run after Cancel")
	}
	if d.Rotation() != r {
		t.Error("Rotation changed after Cancel")
	}

	// Cancel with nothing running is a no-op
	d.Cancel()
}

func TestDriver_ContextCancel(t *testing.T) {
	d := NewDriver(time.Hour, 100)
	ctx, cancel := context.WithCancel(context.Background())

	d.Start(ctx, 360, nil, nil)
	cancel()

	deadline := time.Now().Add(time.Second)
	for d.Spinning() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if d.Spinning() {
		t.Error("Expected driver to stop when context is cancelled")
	}
	d.Cancel()
}
