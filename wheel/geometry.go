// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wheel

import (
	"math"
	"strconv"
	"strings"

	"github.com/danielhkuo/quickly-spin/models"
)

// LabelRadiusFactor places labels at this fraction of the wheel radius.
const LabelRadiusFactor = 0.6

// Path command operators, SVG letters.
const (
	OpMoveTo    = "M"
	OpArcTo     = "A"
	OpLineTo    = "L"
	OpClosePath = "Z"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PathCommand is one drawing step. Args follow SVG ordering:
// M x y | A rx ry rotation large-arc sweep x y | L x y | Z
type PathCommand struct {
	Op   string    `json:"op"`
	Args []float64 `json:"args,omitempty"`
}

type Sector struct {
	Index            int           `json:"index"`
	OptionID         string        `json:"option_id"`
	Label            string        `json:"label"`
	StartAngleDeg    float64       `json:"start_angle_deg"`
	EndAngleDeg      float64       `json:"end_angle_deg"`
	LargeArc         int           `json:"large_arc"`
	Path             []PathCommand `json:"path"`
	LabelPosition    Point         `json:"label_position"`
	LabelRotationDeg float64       `json:"label_rotation_deg"`
}

// SegmentAngle returns the angular width of one sector for n options.
// Returns 0 when n <= 0.
func SegmentAngle(n int) float64 {
	if n <= 0 {
		return 0
	}
	return 360 / float64(n)
}

// PolarToCartesian converts an angle where 0° points up and grows
// clockwise (screen y grows downward).
func PolarToCartesian(center Point, radius, angleDeg float64) Point {
	rad := (angleDeg - 90) * math.Pi / 180
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

// ComputeSectors partitions the wheel into one equal sector per option.
// An empty option list yields an empty (non-nil) slice.
func ComputeSectors(options []models.Option, radius float64, center Point) []Sector {
	n := len(options)
	sectors := make([]Sector, 0, n)
	if n == 0 {
		return sectors
	}

	segment := SegmentAngle(n)
	for i, opt := range options {
		start := float64(i) * segment
		end := float64(i+1) * segment
		textAngle := start + segment/2

		largeArc := 0
		if end-start > 180 {
			largeArc = 1
		}

		sectors = append(sectors, Sector{
			Index:            i,
			OptionID:         opt.ID,
			Label:            opt.Name,
			StartAngleDeg:    start,
			EndAngleDeg:      end,
			LargeArc:         largeArc,
			Path:             sectorPath(center, radius, start, end, largeArc),
			LabelPosition:    PolarToCartesian(center, radius*LabelRadiusFactor, textAngle),
			LabelRotationDeg: textAngle + 90,
		})
	}

	return sectors
}

// sectorPath outlines a pie slice: arc from end back to start, then
// through the center.
func sectorPath(center Point, radius, start, end float64, largeArc int) []PathCommand {
	from := PolarToCartesian(center, radius, end)
	to := PolarToCartesian(center, radius, start)

	return []PathCommand{
		{Op: OpMoveTo, Args: []float64{from.X, from.Y}},
		{Op: OpArcTo, Args: []float64{radius, radius, 0, float64(largeArc), 0, to.X, to.Y}},
		{Op: OpLineTo, Args: []float64{center.X, center.Y}},
		{Op: OpClosePath},
	}
}

// PathData renders the sector outline as an SVG "d" attribute.
func (s Sector) PathData() string {
	var b strings.Builder
	for i, cmd := range s.Path {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(cmd.Op)
		for _, arg := range cmd.Args {
			b.WriteByte(' ')
			b.WriteString(strconv.FormatFloat(arg, 'f', -1, 64))
		}
	}
	return b.String()
}

// MidAngleDeg is the angular center of the sector in the wheel frame.
func (s Sector) MidAngleDeg() float64 {
	return (s.StartAngleDeg + s.EndAngleDeg) / 2
}
