// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package wheel holds the geometry and spin math for the decision wheel.

Everything here is a pure function of its inputs. Nothing is cached and
no rotation state is kept between calls; callers thread the current
rotation through explicitly.

# Geometry

ComputeSectors splits the circle into N equal sectors, one per option,
in option order. Sector i spans [i*360/N, (i+1)*360/N). Angles use the
"0° points up, clockwise" convention:

	sectors := wheel.ComputeSectors(opts, 150, wheel.Point{X: 160, Y: 160})
	for _, s := range sectors {
		fmt.Println(s.PathData())
	}

Each sector carries its outline as path commands (move, arc, line,
close) plus a label anchor at 0.6×radius on the sector midpoint.

# Spin Resolution

ResolveSpin turns an already chosen winner into the absolute rotation
the wheel must be animated to, counting from 0°:

	deg, err := wheel.ResolveSpin(wheel.DefaultSpinConfig(), 5, 0)
	// deg == 2034

The result is always NumFullSpins*360 plus an alignment offset in
[0, 360). A zero option count returns ErrInvalidSpinRequest.

# Frames

Sectors are rotated as a group by GroupRotationDeg at render time.
ScreenFrameDeg is the rotation renderers apply so that ResolveSpin's
alignment term lands the winner under the pointer. SectorAt maps a
screen angle back to the sector underneath it.
*/
package wheel
