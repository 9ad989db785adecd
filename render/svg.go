// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/danielhkuo/quickly-spin/models"
	"github.com/danielhkuo/quickly-spin/wheel"
)

// Palette cycles through these fills, one per sector.
var Palette = []string{
	"#f94144", "#f3722c", "#f8961e", "#f9c74f",
	"#90be6d", "#43aa8b", "#4d908e", "#577590",
	"#277da1", "#9b5de5", "#f15bb5", "#00bbf9",
}

const (
	pointerSize = 14.0
	margin      = 20.0
)

type Options struct {
	Radius             float64
	RotationDeg        float64
	PointerPositionDeg float64
}

// Fill returns the palette color for sector i of n. The last sector
// borders the first, so it skips the first sector's color when the
// palette wraps onto it.
func Fill(i, n int) string {
	c := Palette[i%len(Palette)]
	if n > 1 && i == n-1 && i%len(Palette) == 0 {
		c = Palette[(i+1)%len(Palette)]
	}
	return c
}

// WheelSVG draws the options as a wheel turned by opts.RotationDeg with a
// fixed pointer at opts.PointerPositionDeg.
func WheelSVG(w io.Writer, options []models.Option, opts Options) error {
	size := 2 * (opts.Radius + margin)
	center := wheel.Point{X: size / 2, Y: size / 2}
	sectors := wheel.ComputeSectors(options, opts.Radius, center)

	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		num(size), num(size), num(size), num(size))
	b.WriteByte('\n')

	fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s" fill="#eeeeee" stroke="#333333" stroke-width="2"/>`,
		num(center.X), num(center.Y), num(opts.Radius))
	b.WriteByte('\n')

	if len(sectors) == 0 {
		fmt.Fprintf(&b, `<text x="%s" y="%s" text-anchor="middle" dominant-baseline="middle">Add some options</text>`,
			num(center.X), num(center.Y))
		b.WriteByte('\n')
	} else {
		fmt.Fprintf(&b, `<g transform="rotate(%s %s %s)">`,
			num(wheel.ScreenFrameDeg+opts.RotationDeg), num(center.X), num(center.Y))
		b.WriteByte('\n')
		for _, s := range sectors {
			writeSector(&b, s, len(sectors), center, opts.Radius)
		}
		b.WriteString("</g>\n")
	}

	writePointer(&b, center, opts.Radius, opts.PointerPositionDeg)
	b.WriteString("</svg>\n")

	_, err := w.Write(b.Bytes())
	return err
}

func writeSector(b *bytes.Buffer, s wheel.Sector, n int, center wheel.Point, radius float64) {
	fill := Fill(s.Index, n)
	// A lone sector's arc starts and ends on the same point, which SVG
	// draws as nothing.
	if n == 1 {
		fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="%s" data-index="0"/>`,
			num(center.X), num(center.Y), num(radius), fill)
	} else {
		fmt.Fprintf(b, `<path d="%s" fill="%s" stroke="#ffffff" stroke-width="1" data-index="%d"/>`,
			s.PathData(), fill, s.Index)
	}
	b.WriteByte('\n')

	fmt.Fprintf(b, `<text x="%s" y="%s" transform="rotate(%s %s %s)" text-anchor="middle" dominant-baseline="middle" font-size="14" fill="#ffffff">`,
		num(s.LabelPosition.X), num(s.LabelPosition.Y), num(s.LabelRotationDeg),
		num(s.LabelPosition.X), num(s.LabelPosition.Y))
	xml.EscapeText(b, []byte(s.Label))
	b.WriteString("</text>\n")
}

// writePointer draws a triangle just outside the rim pointing at the
// center.
func writePointer(b *bytes.Buffer, center wheel.Point, radius, angleDeg float64) {
	tip := wheel.PolarToCartesian(center, radius-4, angleDeg)
	left := wheel.PolarToCartesian(center, radius+pointerSize, angleDeg-4)
	right := wheel.PolarToCartesian(center, radius+pointerSize, angleDeg+4)

	fmt.Fprintf(b, `<polygon points="%s,%s %s,%s %s,%s" fill="#222222" class="pointer"/>`,
		num(tip.X), num(tip.Y), num(left.X), num(left.Y), num(right.X), num(right.Y))
	b.WriteByte('\n')
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
