// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package random picks the winning option. The wheel math never chooses a
// winner itself; callers inject a Picker so spins stay testable.
package random
