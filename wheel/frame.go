// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wheel

// GroupRotationDeg is the fixed rotation applied to the sector group so
// sector 0 starts beside the pointer.
const GroupRotationDeg = -90.0

// ScreenFrameDeg is the total frame rotation renderers apply to the
// sector group. The extra half turn is the label frame that the +90 term
// in AlignmentOffset compensates for.
const ScreenFrameDeg = GroupRotationDeg + 180

// ScreenAngle maps a wheel-frame angle to where it appears on screen
// (0° = up, clockwise) when the wheel is turned by rotation.
func ScreenAngle(wheelAngle, rotation float64) float64 {
	return Normalize(wheelAngle + ScreenFrameDeg + rotation)
}

// SectorAt reports which of n sectors sits at screenAngle for a wheel
// turned by rotation. Returns -1 when n <= 0.
func SectorAt(screenAngle, rotation float64, n int) int {
	if n <= 0 {
		return -1
	}
	a := Normalize(screenAngle - ScreenFrameDeg - rotation)
	idx := int(a / SegmentAngle(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}
