// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package options maintains the ordered option list shown on the wheel.

A List is a value. Add and Remove build a new List and never modify the
one they are called on, so a render holding an older List keeps a
consistent view:

	l, _ := options.NewList("Pizza", "Sushi")
	l2, opt, err := l.Add("read a book")
	if errors.Is(err, options.ErrDuplicateOption) {
		// l2 == l, nothing changed
	}

# Validation

  - Names are trimmed; blank names return ErrEmptyInput.
  - Names are unique under Unicode case folding; "Read a Book" collides
    with "read a book" and returns ErrDuplicateOption.

Option IDs are random UUIDs.
*/
package options
