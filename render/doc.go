// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render draws a wheel as SVG.

The sector group is rotated by wheel.ScreenFrameDeg plus the current
rotation, so a rotation returned by wheel.ResolveSpin puts the winner
under the pointer:

	err := render.WheelSVG(w, opts, render.Options{
		Radius:      150,
		RotationDeg: 1845,
	})

Labels are XML-escaped. An empty wheel renders a placeholder prompt.
*/
package render
