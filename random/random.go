// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"math/rand/v2"
	"sync"
)

var ErrNoChoices = errors.New("nothing to pick from")

// Picker chooses a uniformly random index in [0, n).
type Picker interface {
	Pick(n int) (int, error)
}

// CryptoPicker draws from crypto/rand.
type CryptoPicker struct{}

func (CryptoPicker) Pick(n int) (int, error) {
	if n <= 0 {
		return 0, ErrNoChoices
	}
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to pick random index: %w", err)
	}
	return int(v.Int64()), nil
}

// SeededPicker is reproducible for a given seed. Safe for concurrent use.
type SeededPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSeededPicker(seed uint64) *SeededPicker {
	return &SeededPicker{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *SeededPicker) Pick(n int) (int, error) {
	if n <= 0 {
		return 0, ErrNoChoices
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.IntN(n), nil
}

// NewSeed reads a seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("failed to read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// FromSeed returns a SeededPicker for a non-zero seed and a CryptoPicker
// otherwise.
func FromSeed(seed uint64) Picker {
	if seed == 0 {
		return CryptoPicker{}
	}
	return NewSeededPicker(seed)
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(n int) (int, error)

func (f PickerFunc) Pick(n int) (int, error) {
	return f(n)
}
