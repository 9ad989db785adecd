// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package options

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/danielhkuo/quickly-spin/models"
)

var (
	ErrEmptyInput      = errors.New("option name is empty")
	ErrDuplicateOption = errors.New("option already exists")
	ErrOptionNotFound  = errors.New("option not found")
)

// List is an ordered, immutable set of options. Add and Remove return a
// new List and leave the receiver untouched. The zero value is empty.
type List struct {
	items []models.Option
}

// NewList builds a list from names in order, applying the same rules as Add.
func NewList(names ...string) (List, error) {
	var l List
	for _, name := range names {
		next, _, err := l.Add(name)
		if err != nil {
			return List{}, err
		}
		l = next
	}
	return l, nil
}

// Key folds a name for case-insensitive comparison.
func Key(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Add appends a trimmed name with a fresh ID.
func (l List) Add(name string) (List, models.Option, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return l, models.Option{}, ErrEmptyInput
	}

	key := Key(name)
	for _, opt := range l.items {
		if Key(opt.Name) == key {
			return l, models.Option{}, fmt.Errorf("%w: %q", ErrDuplicateOption, opt.Name)
		}
	}

	opt := models.Option{ID: uuid.NewString(), Name: name}

	items := make([]models.Option, len(l.items), len(l.items)+1)
	copy(items, l.items)
	return List{items: append(items, opt)}, opt, nil
}

// Remove drops the option with the given ID.
func (l List) Remove(id string) (List, error) {
	for i, opt := range l.items {
		if opt.ID != id {
			continue
		}
		items := make([]models.Option, 0, len(l.items)-1)
		items = append(items, l.items[:i]...)
		items = append(items, l.items[i+1:]...)
		return List{items: items}, nil
	}
	return l, ErrOptionNotFound
}

func (l List) Len() int {
	return len(l.items)
}

// At returns the option at position i.
func (l List) At(i int) models.Option {
	return l.items[i]
}

// Options returns a copy of the options in wheel order.
func (l List) Options() []models.Option {
	out := make([]models.Option, len(l.items))
	copy(out, l.items)
	return out
}

func (l List) Names() []string {
	names := make([]string, len(l.items))
	for i, opt := range l.items {
		names[i] = opt.Name
	}
	return names
}
