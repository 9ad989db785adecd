// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wheel

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSpinRequest is returned when there is nothing to spin for, or
// the chosen winner is not one of the options.
var ErrInvalidSpinRequest = errors.New("invalid spin request")

// Spin defaults
const (
	DefaultNumFullSpins       = 5
	DefaultPointerPositionDeg = 0.0
)

type SpinConfig struct {
	// NumFullSpins is the number of whole turns before settling.
	NumFullSpins int
	// PointerPositionDeg is where the fixed pointer sits, 0° = top.
	PointerPositionDeg float64
}

func DefaultSpinConfig() SpinConfig {
	return SpinConfig{
		NumFullSpins:       DefaultNumFullSpins,
		PointerPositionDeg: DefaultPointerPositionDeg,
	}
}

// SpinOutcome is produced once per spin and handed to the animation driver.
type SpinOutcome struct {
	WinningIndex         int     `json:"winning_index"`
	FinalRotationDegrees float64 `json:"final_rotation_degrees"`
}

// ResolveSpin returns the absolute rotation, counted from 0°, that puts
// the center of sector winningIndex under the pointer after
// cfg.NumFullSpins whole turns.
func ResolveSpin(cfg SpinConfig, optionCount, winningIndex int) (float64, error) {
	if optionCount <= 0 {
		return 0, fmt.Errorf("%w: no options to spin", ErrInvalidSpinRequest)
	}
	if winningIndex < 0 || winningIndex >= optionCount {
		return 0, fmt.Errorf("%w: winning index %d out of range [0, %d)",
			ErrInvalidSpinRequest, winningIndex, optionCount)
	}

	segment := SegmentAngle(optionCount)
	targetCenter := float64(winningIndex)*segment + segment/2

	return float64(cfg.NumFullSpins)*360 + AlignmentOffset(targetCenter, cfg.PointerPositionDeg), nil
}

// AlignmentOffset is the rotation in [0, 360) that brings the wheel-frame
// angle targetCenter under a pointer at pointerDeg.
// With pointerDeg == 0 this is (360 - ((targetCenter + 90) mod 360)) mod 360.
func AlignmentOffset(targetCenter, pointerDeg float64) float64 {
	return Normalize(pointerDeg + 360 - Normalize(targetCenter+90))
}

// Resolve is ResolveSpin packaged as a SpinOutcome.
func Resolve(cfg SpinConfig, optionCount, winningIndex int) (SpinOutcome, error) {
	deg, err := ResolveSpin(cfg, optionCount, winningIndex)
	if err != nil {
		return SpinOutcome{}, err
	}
	return SpinOutcome{WinningIndex: winningIndex, FinalRotationDegrees: deg}, nil
}

// Normalize maps any angle into [0, 360).
func Normalize(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	// math.Mod can hand back 360 for tiny negative inputs after the add.
	if d >= 360 {
		d -= 360
	}
	return d
}
