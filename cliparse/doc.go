// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - NumFullSpins: Whole turns before the wheel settles (default: 5)
  - AnimationDurationMs: Spin animation length (default: 4000)
  - PointerPositionDeg: Fixed pointer angle, 0 = top (default: 0)
  - WheelRadius: Radius used when a request does not give one (default: 150)
  - MaxOptions: Options per wheel (default: 24)
  - MaxWheels: Wheels held in memory (default: 1000)
  - LogLevel: debug, info, warn, error (default: info)
  - Seed: Reproducible winner selection, 0 = crypto randomness

# CLI Flags

	-p            Server port
	-spins        Full turns
	-duration     Animation length in ms
	-pointer      Pointer position in degrees
	-radius       Default wheel radius
	-max-options  Options per wheel
	-max-wheels   Wheels in memory
	-log-level    Log level
	-seed         Random seed

# Environment Variables

Flags fall back to environment variables, read with caarlos0/env:

	PORT                  → -p
	NUM_FULL_SPINS        → -spins
	ANIMATION_DURATION_MS → -duration
	POINTER_POSITION_DEG  → -pointer
	WHEEL_RADIUS          → -radius
	MAX_OPTIONS           → -max-options
	MAX_WHEELS            → -max-wheels
	LOG_LEVEL             → -log-level
	SEED                  → -seed

A .env file in the working directory is loaded first when it exists;
variables already set in the environment are not overwritten.

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error for out-of-range values:

  - port outside 1..65535
  - spins, max-options, max-wheels below 1
  - non-positive duration or radius
  - unknown log level
*/
package cliparse
