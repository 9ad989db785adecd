// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Spin API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

Wheels:

	POST   /wheels        - Create wheel
	GET    /wheels/{id}   - Options, sectors, current rotation
	DELETE /wheels/{id}   - Drop wheel

Options:

	POST   /wheels/{id}/options            - Add option
	DELETE /wheels/{id}/options/{optionID} - Remove option

Geometry:

	GET /wheels/{id}/sectors - Sector paths and label anchors
	GET /wheels/{id}/svg     - Rendered wheel

Spin:

	POST /wheels/{id}/spin - Pick a winner and get the target rotation

All wheel routes are wrapped with middleware.WithLogging.
*/
package router
