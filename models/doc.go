// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateWheelRequest: options (optional initial names)
  - AddOptionRequest: name

# Response Types

Types for JSON responses:

  - CreateWheelResponse: wheel_id, options
  - AddOptionResponse: option
  - SpinResponse: winning_index, option, final_rotation_degrees, duration_ms, keyframes
  - WheelView: options, current rotation, last spin
  - ErrorResponse: error, message

# Domain Types

  - Option: id and display name, ordered on the wheel
  - SpinRecord: the most recent spin of a wheel

# Constants

Wheel states:

	StateIdle     = "idle"
	StateSpinning = "spinning"
*/
package models
