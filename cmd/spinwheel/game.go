// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/danielhkuo/quickly-spin/animate"
	"github.com/danielhkuo/quickly-spin/cliparse"
	"github.com/danielhkuo/quickly-spin/models"
	"github.com/danielhkuo/quickly-spin/options"
	"github.com/danielhkuo/quickly-spin/random"
	"github.com/danielhkuo/quickly-spin/render"
	"github.com/danielhkuo/quickly-spin/wheel"
)

const (
	listWidth = 32
	// Terminal cells are roughly twice as tall as they are wide
	cellAspect = 2.0
)

// spinDone is posted to the screen when a tween reaches its target.
type spinDone struct {
	seq    int
	option models.Option
}

type Game struct {
	screen        tcell.Screen
	width, height int

	cfg    cliparse.Config
	picker random.Picker
	driver *animate.Driver
	ctx    context.Context

	list     options.List
	selected int

	// Spin state; seq ties a completion event to the spin that started it
	seq     int
	pending *spinDone
	winner  *models.Option

	// post delivers events to the main loop
	post func(tcell.Event) error

	// Inline text entry
	entering bool
	input    []rune

	status    string
	statusErr bool
}

func NewGame(ctx context.Context, screen tcell.Screen, cfg cliparse.Config, picker random.Picker) *Game {
	g := &Game{
		screen: screen,
		cfg:    cfg,
		picker: picker,
		driver: animate.NewDriver(cfg.AnimationDuration(), animate.DefaultFPS),
		ctx:    ctx,
		status: "Press a to add an option",
		post:   screen.PostEvent,
	}
	g.width, g.height = screen.Size()
	return g
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusErr = false
}

func (g *Game) setError(err error) {
	g.statusErr = true
	switch {
	case errors.Is(err, options.ErrEmptyInput):
		g.status = "Please enter an option"
	case errors.Is(err, options.ErrDuplicateOption):
		g.status = "This option already exists"
	case errors.Is(err, wheel.ErrInvalidSpinRequest):
		g.status = "Please add some options first"
	default:
		g.status = err.Error()
	}
}

// interruptSpin drops an in-flight spin. The wheel geometry it was aimed
// at is about to change.
func (g *Game) interruptSpin() {
	if !g.driver.Spinning() {
		return
	}
	g.driver.Cancel()
	g.seq++
	g.pending = nil
	slog.Info("spin interrupted by edit")
}

func (g *Game) addOption(name string) {
	if g.cfg.MaxOptions > 0 && g.list.Len() >= g.cfg.MaxOptions {
		g.statusErr = true
		g.status = fmt.Sprintf("Wheel is full (%d options)", g.cfg.MaxOptions)
		return
	}

	next, opt, err := g.list.Add(name)
	if err != nil {
		g.setError(err)
		return
	}

	g.interruptSpin()
	g.list = next
	g.selected = g.list.Len() - 1
	g.winner = nil
	g.setStatus("Added " + opt.Name)
	slog.Info("option added", "option_id", opt.ID, "options", g.list.Len())
}

func (g *Game) removeSelected() {
	if g.list.Len() == 0 {
		return
	}

	opt := g.list.At(g.selected)
	next, err := g.list.Remove(opt.ID)
	if err != nil {
		g.setError(err)
		return
	}

	g.interruptSpin()
	g.list = next
	if g.selected >= g.list.Len() && g.selected > 0 {
		g.selected--
	}
	g.winner = nil
	g.setStatus("Removed " + opt.Name)
	slog.Info("option removed", "option_id", opt.ID, "options", g.list.Len())
}

func (g *Game) spin() {
	n := g.list.Len()
	if n == 0 {
		g.setError(fmt.Errorf("spin: %w", wheel.ErrInvalidSpinRequest))
		return
	}

	idx, err := g.picker.Pick(n)
	if err != nil {
		g.setError(err)
		return
	}
	target, err := wheel.ResolveSpin(g.cfg.SpinConfig(), n, idx)
	if err != nil {
		g.setError(err)
		return
	}

	g.seq++
	done := spinDone{seq: g.seq, option: g.list.At(idx)}
	g.winner = nil
	g.pending = &done
	g.setStatus("Spinning...")

	slog.Info("wheel spun", "winning_index", idx, "option", done.option.Name, "final_rotation_degrees", target)

	g.driver.Start(g.ctx, target, nil, func() {
		if err := g.post(tcell.NewEventInterrupt(done)); err != nil {
			slog.Warn("spin completion event dropped", "seq", done.seq, "error", err)
		}
	})
}

// tick settles a finished spin whose completion event never arrived.
func (g *Game) tick() {
	if g.pending != nil && !g.driver.Spinning() {
		g.finishSpin(*g.pending)
	}
}

func (g *Game) finishSpin(done spinDone) {
	if done.seq != g.seq {
		return
	}
	g.pending = nil
	g.winner = &done.option
	g.setStatus("Winner: " + done.option.Name)
}

// handleKey returns false when the program should exit.
func (g *Game) handleKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyCtrlC {
		return false
	}

	if g.entering {
		switch key {
		case tcell.KeyEnter:
			g.entering = false
			g.addOption(string(g.input))
			g.input = g.input[:0]
		case tcell.KeyEscape:
			g.entering = false
			g.input = g.input[:0]
			g.setStatus("")
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(g.input) > 0 {
				g.input = g.input[:len(g.input)-1]
			}
		case tcell.KeyRune:
			g.input = append(g.input, r)
		}
		return true
	}

	switch key {
	case tcell.KeyEscape:
		return false
	case tcell.KeyEnter:
		g.spin()
	case tcell.KeyUp:
		if g.selected > 0 {
			g.selected--
		}
	case tcell.KeyDown:
		if g.selected < g.list.Len()-1 {
			g.selected++
		}
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'a':
			g.entering = true
			g.setStatus("New option (Enter to add, Esc to cancel)")
		case 'd':
			g.removeSelected()
		case ' ':
			g.spin()
		}
	}
	return true
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev.Key(), ev.Rune())

	case *tcell.EventInterrupt:
		if done, ok := ev.Data().(spinDone); ok {
			g.finishSpin(done)
		}

	case *tcell.EventResize:
		g.width, g.height = g.screen.Size()
		g.screen.Sync()
	}
	return true
}

// wheelLayout returns the wheel center and radius in cells. Radius is
// measured in rows; columns are stretched by cellAspect.
func (g *Game) wheelLayout() (cx, cy, radius int) {
	rows := g.height - 3
	cols := g.width - listWidth
	radius = min(rows/2, int(float64(cols)/(2*cellAspect))) - 1
	cx = int(float64(radius+1)*cellAspect) + 1
	cy = rows/2 + 1
	return cx, cy, radius
}

// cellAngle is the screen angle (0° = up, clockwise) of a cell offset
// from the wheel center.
func cellAngle(dx, dy float64) float64 {
	return wheel.Normalize(math.Atan2(dx, -dy) * 180 / math.Pi)
}

// sectorAtCell reports which sector covers cell (x, y), or -1 when the
// cell is off the wheel.
func (g *Game) sectorAtCell(x, y int, rotation float64) int {
	cx, cy, radius := g.wheelLayout()
	dx := float64(x-cx) / cellAspect
	dy := float64(y - cy)
	if math.Hypot(dx, dy) > float64(radius)+0.5 {
		return -1
	}
	return wheel.SectorAt(cellAngle(dx, dy), rotation, g.list.Len())
}

func (g *Game) drawText(x, y int, style tcell.Style, s string) int {
	for _, r := range s {
		if x >= g.width {
			break
		}
		g.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func (g *Game) drawWheel() {
	cx, cy, radius := g.wheelLayout()
	if radius < 2 {
		g.drawText(0, 0, tcell.StyleDefault, "Terminal too small")
		return
	}

	n := g.list.Len()
	rotation := g.driver.Rotation()

	if n == 0 {
		msg := "Add some options"
		g.drawText(cx-runewidth.StringWidth(msg)/2, cy, tcell.StyleDefault.Dim(true), msg)
	} else {
		for y := cy - radius; y <= cy+radius; y++ {
			for x := cx - int(float64(radius)*cellAspect); x <= cx+int(float64(radius)*cellAspect); x++ {
				idx := g.sectorAtCell(x, y, rotation)
				if idx < 0 {
					continue
				}
				color := tcell.GetColor(render.Fill(idx, n))
				g.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(color))
			}
		}
	}

	// Pointer sits just outside the rim and points inward
	p := wheel.PolarToCartesian(wheel.Point{}, float64(radius)+1, g.cfg.PointerPositionDeg)
	px := cx + int(math.Round(p.X*cellAspect))
	py := cy + int(math.Round(p.Y))
	g.screen.SetContent(px, py, pointerGlyph(g.cfg.PointerPositionDeg), nil, tcell.StyleDefault.Bold(true))
}

func pointerGlyph(deg float64) rune {
	switch a := wheel.Normalize(deg); {
	case a < 45 || a >= 315:
		return '▼'
	case a < 135:
		return '◀'
	case a < 225:
		return '▲'
	default:
		return '▶'
	}
}

func (g *Game) drawList() {
	x := g.width - listWidth + 1
	g.drawText(x, 0, tcell.StyleDefault.Bold(true), fmt.Sprintf("Options (%d)", g.list.Len()))

	n := g.list.Len()
	for i, opt := range g.list.Options() {
		y := i + 2
		if y >= g.height-2 {
			break
		}
		swatch := tcell.StyleDefault.Background(tcell.GetColor(render.Fill(i, n)))
		g.screen.SetContent(x, y, ' ', nil, swatch)
		g.screen.SetContent(x+1, y, ' ', nil, swatch)

		style := tcell.StyleDefault
		if i == g.selected {
			style = style.Reverse(true)
		}
		if g.winner != nil && g.winner.ID == opt.ID {
			style = style.Bold(true)
		}
		g.drawText(x+3, y, style, runewidth.Truncate(opt.Name, listWidth-4, "…"))
	}
}

func (g *Game) drawFooter() {
	help := "a add  d delete  ↑↓ select  space spin  q quit"
	if g.entering {
		help = "> " + string(g.input)
	}
	g.drawText(0, g.height-2, tcell.StyleDefault, help)

	style := tcell.StyleDefault
	if g.statusErr {
		style = style.Foreground(tcell.ColorRed)
	}
	g.drawText(0, g.height-1, style, g.status)
}

func (g *Game) draw() {
	g.screen.Clear()
	g.drawWheel()
	g.drawList()
	g.drawFooter()
	g.screen.Show()
}
