// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store keeps wheel sessions in memory for the HTTP API.

Each wheel owns an immutable options.List and its last spin. Edits swap
in a new List under the store lock; readers get snapshots.

# Spins

Spin picks a winner with the injected random.Picker, resolves the target
rotation with wheel.Resolve and records the start time. A wheel counts as
spinning until the configured duration has passed; its rotation at any
moment comes from animate.RotationAt. Only one spin exists per wheel, and
a new spin replaces the old one from 0°.

Adding or removing an option drops the last spin, whether it is still in
flight or has settled. Its winning index and rotation only make sense for
the layout it was resolved against, so the wheel goes back to 0°.

# Limits

Config.MaxWheels and Config.MaxOptions bound memory use:

	ErrTooManyWheels  - Create when the store is full
	ErrTooManyOptions - Create/AddOption past the per-wheel cap
*/
package store
