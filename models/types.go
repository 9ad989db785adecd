// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Wheel state constants
const (
	StateIdle     = "idle"
	StateSpinning = "spinning"
)

// Request types

type CreateWheelRequest struct {
	Options []string `json:"options"`
}

type AddOptionRequest struct {
	Name string `json:"name"`
}

// Response types

type CreateWheelResponse struct {
	WheelID string   `json:"wheel_id"`
	Options []Option `json:"options"`
}

type AddOptionResponse struct {
	Option Option `json:"option"`
}

type SpinResponse struct {
	WinningIndex         int       `json:"winning_index"`
	Option               Option    `json:"option"`
	FinalRotationDegrees float64   `json:"final_rotation_degrees"`
	DurationMs           int64     `json:"duration_ms"`
	StartedAt            time.Time `json:"started_at"`
	Keyframes            []float64 `json:"keyframes,omitempty"`
}

// Domain types

// Option is one entry on the wheel. Identity is ID; Name is what is shown.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SpinRecord describes the most recent spin of a wheel. The wheel is
// spinning until StartedAt + Duration.
type SpinRecord struct {
	WinningIndex         int           `json:"winning_index"`
	Option               Option        `json:"option"`
	FinalRotationDegrees float64       `json:"final_rotation_degrees"`
	StartedAt            time.Time     `json:"started_at"`
	Duration             time.Duration `json:"-"`
	DurationMs           int64         `json:"duration_ms"`
}

type WheelView struct {
	ID              string      `json:"id"`
	State           string      `json:"state"`
	RotationDegrees float64     `json:"rotation_degrees"`
	Options         []Option    `json:"options"`
	LastSpin        *SpinRecord `json:"last_spin,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
