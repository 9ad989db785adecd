// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-spin/animate"
	"github.com/danielhkuo/quickly-spin/models"
	"github.com/danielhkuo/quickly-spin/options"
	"github.com/danielhkuo/quickly-spin/random"
	"github.com/danielhkuo/quickly-spin/wheel"
)

var (
	ErrWheelNotFound  = errors.New("wheel not found")
	ErrTooManyWheels  = errors.New("wheel limit reached")
	ErrTooManyOptions = errors.New("option limit reached")
)

// Wheel is a snapshot of one wheel session. Options is immutable, so a
// snapshot stays consistent after the store moves on.
type Wheel struct {
	ID        string
	Options   options.List
	LastSpin  *models.SpinRecord
	CreatedAt time.Time
}

// RotationAt reports the wheel's visual rotation at now and whether a
// spin is still in flight.
func (w Wheel) RotationAt(now time.Time) (float64, bool) {
	if w.LastSpin == nil {
		return 0, false
	}
	elapsed := now.Sub(w.LastSpin.StartedAt)
	rot := animate.RotationAt(0, w.LastSpin.FinalRotationDegrees, elapsed, w.LastSpin.Duration, animate.EaseOutCubic)
	return rot, elapsed < w.LastSpin.Duration
}

// View builds the API representation at now.
func (w Wheel) View(now time.Time) models.WheelView {
	rot, spinning := w.RotationAt(now)
	state := models.StateIdle
	if spinning {
		state = models.StateSpinning
	}
	return models.WheelView{
		ID:              w.ID,
		State:           state,
		RotationDegrees: rot,
		Options:         w.Options.Options(),
		LastSpin:        w.LastSpin,
		CreatedAt:       w.CreatedAt,
	}
}

type Config struct {
	MaxWheels  int
	MaxOptions int
	Spin       wheel.SpinConfig
	Duration   time.Duration
}

// Store holds wheel sessions in memory. They are lost on restart.
type Store struct {
	cfg    Config
	picker random.Picker
	now    func() time.Time

	mu     sync.RWMutex
	wheels map[string]*Wheel
}

func New(cfg Config, picker random.Picker) *Store {
	return &Store{
		cfg:    cfg,
		picker: picker,
		now:    time.Now,
		wheels: make(map[string]*Wheel),
	}
}

// Create starts a wheel, optionally seeded with names.
func (s *Store) Create(names []string) (Wheel, error) {
	if len(names) > s.cfg.MaxOptions {
		return Wheel{}, fmt.Errorf("%w: %d options, max %d", ErrTooManyOptions, len(names), s.cfg.MaxOptions)
	}
	list, err := options.NewList(names...)
	if err != nil {
		return Wheel{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.wheels) >= s.cfg.MaxWheels {
		return Wheel{}, ErrTooManyWheels
	}

	w := &Wheel{
		ID:        uuid.NewString(),
		Options:   list,
		CreatedAt: s.now(),
	}
	s.wheels[w.ID] = w

	return *w, nil
}

func (s *Store) Get(id string) (Wheel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.wheels[id]
	if !ok {
		return Wheel{}, ErrWheelNotFound
	}
	return *w, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.wheels[id]; !ok {
		return ErrWheelNotFound
	}
	delete(s.wheels, id)
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.wheels)
}

// AddOption appends an option. The last spin is dropped, settled or not,
// because its target and winning index describe the old layout.
func (s *Store) AddOption(id, name string) (models.Option, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wheels[id]
	if !ok {
		return models.Option{}, ErrWheelNotFound
	}
	if w.Options.Len() >= s.cfg.MaxOptions {
		return models.Option{}, fmt.Errorf("%w: max %d", ErrTooManyOptions, s.cfg.MaxOptions)
	}

	list, opt, err := w.Options.Add(name)
	if err != nil {
		return models.Option{}, err
	}
	w.Options = list
	s.clearSpinLocked(w)

	return opt, nil
}

func (s *Store) RemoveOption(id, optionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wheels[id]
	if !ok {
		return ErrWheelNotFound
	}

	list, err := w.Options.Remove(optionID)
	if err != nil {
		return err
	}
	w.Options = list
	s.clearSpinLocked(w)

	return nil
}

func (s *Store) clearSpinLocked(w *Wheel) {
	if w.LastSpin == nil {
		return
	}
	_, spinning := w.RotationAt(s.now())
	slog.Info("spin cleared by edit", "wheel_id", w.ID, "in_flight", spinning)
	w.LastSpin = nil
}

// Spin picks a winner and replaces any previous spin. The new spin
// starts from 0°.
func (s *Store) Spin(id string) (models.SpinRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wheels[id]
	if !ok {
		return models.SpinRecord{}, ErrWheelNotFound
	}

	n := w.Options.Len()
	if n == 0 {
		return models.SpinRecord{}, fmt.Errorf("%w: wheel has no options", wheel.ErrInvalidSpinRequest)
	}

	idx, err := s.picker.Pick(n)
	if err != nil {
		return models.SpinRecord{}, fmt.Errorf("failed to pick winner: %w", err)
	}

	outcome, err := wheel.Resolve(s.cfg.Spin, n, idx)
	if err != nil {
		return models.SpinRecord{}, err
	}

	rec := models.SpinRecord{
		WinningIndex:         outcome.WinningIndex,
		Option:               w.Options.At(outcome.WinningIndex),
		FinalRotationDegrees: outcome.FinalRotationDegrees,
		StartedAt:            s.now(),
		Duration:             s.cfg.Duration,
		DurationMs:           s.cfg.Duration.Milliseconds(),
	}
	w.LastSpin = &rec

	return rec, nil
}
