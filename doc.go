// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Spin API server.

Quickly Spin is a decision wheel: enter some options, spin, and the
pointer picks one. The server keeps wheels in memory and hands clients
everything they need to draw and animate the spin themselves.

# Starting the Server

No configuration is required:

	go run .

Or with flags:

	go run . -p 3318 -spins 5 -duration 4000

A terminal front end lives in cmd/spinwheel.

# Configuration

All settings are optional (env var, then flag):

  - PORT (-p): Server port (default: 3318)
  - NUM_FULL_SPINS (-spins): Full turns before settling (default: 5)
  - ANIMATION_DURATION_MS (-duration): Spin length (default: 4000)
  - POINTER_POSITION_DEG (-pointer): Pointer angle, 0 = top (default: 0)
  - WHEEL_RADIUS (-radius): Default geometry radius (default: 150)
  - MAX_OPTIONS (-max-options): Options per wheel (default: 24)
  - MAX_WHEELS (-max-wheels): Wheels held in memory (default: 1000)
  - LOG_LEVEL (-log-level): debug, info, warn, error (default: info)
  - SEED (-seed): Reproducible winners when non-zero (default: 0)

A .env file in the working directory is loaded first when present.

# Architecture

  - wheel: Sector geometry and spin resolution (pure)
  - options: Immutable option list with duplicate checks
  - random: Winner selection
  - animate: Easing, keyframes, tween driver
  - render: SVG output
  - store: In-memory wheels
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
