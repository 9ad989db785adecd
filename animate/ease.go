// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package animate

import (
	"math"
	"time"
)

// Default tween timing
const (
	DefaultDuration = 4000 * time.Millisecond
	DefaultFPS      = 60
)

// EaseFunc maps linear progress in [0, 1] to eased progress in [0, 1].
type EaseFunc func(t float64) float64

func Linear(t float64) float64 {
	return t
}

// EaseOutCubic starts fast and settles gently.
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Progress clamps elapsed/duration into [0, 1]. A non-positive duration
// is already finished.
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed >= duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(duration)
}

// RotationAt interpolates between start and target.
func RotationAt(start, target float64, elapsed, duration time.Duration, ease EaseFunc) float64 {
	if ease == nil {
		ease = EaseOutCubic
	}
	return start + (target-start)*ease(Progress(elapsed, duration))
}

// Keyframes samples a tween from 0° to target at fps. The last frame is
// always exactly target.
func Keyframes(target float64, duration time.Duration, fps int, ease EaseFunc) []float64 {
	if fps <= 0 {
		fps = DefaultFPS
	}
	frames := int(math.Ceil(duration.Seconds() * float64(fps)))
	if frames < 1 {
		return []float64{target}
	}

	out := make([]float64, 0, frames+1)
	step := time.Second / time.Duration(fps)
	for i := 0; i < frames; i++ {
		out = append(out, RotationAt(0, target, time.Duration(i)*step, duration, ease))
	}
	return append(out, target)
}
