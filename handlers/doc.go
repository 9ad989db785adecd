// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Spin API.

# Handler Types

WheelHandler serves every wheel route. It is created with the wheel
store and config:

	wheelHandler := handlers.NewWheelHandler(st, cfg)

# Wheel Lifecycle

	POST   /wheels                           → CreateWheel (optional initial options)
	GET    /wheels/{id}                      → GetWheel (options, sectors, rotation)
	DELETE /wheels/{id}                      → DeleteWheel
	POST   /wheels/{id}/options              → AddOption
	DELETE /wheels/{id}/options/{optionID}   → RemoveOption

# Geometry and Rendering

	GET /wheels/{id}/sectors?radius=&cx=&cy= → GetSectors
	GET /wheels/{id}/svg?radius=&rotation=   → GetSVG

radius defaults to the configured wheel radius; the center defaults to
(radius, radius).

# Spinning

	POST /wheels/{id}/spin?keyframes=true&fps=30 → Spin

The winner comes from the store's random.Picker. The response carries the
absolute target rotation and animation length; keyframes=true adds eased
samples from 0° to the target.

# Errors

Domain errors map to statuses in writeStoreError:

	ErrEmptyInput          → 400
	ErrWheelNotFound       → 404
	ErrOptionNotFound      → 404
	ErrDuplicateOption     → 409
	ErrInvalidSpinRequest  → 422
	ErrTooManyOptions      → 422
	ErrTooManyWheels       → 503
*/
package handlers
