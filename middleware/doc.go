// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware holds the small HTTP layer shared by every wheel route:
request logs, the JSON envelope, and the browser-facing CORS wrapper.

# Logged Routes

router.NewRouter wraps each wheel handler:

	mux.HandleFunc("POST /wheels/{id}/spin", middleware.WithLogging(wheelHandler.Spin))

Two slog lines per request. "request started" carries method, path and
the caller's address from GetClientIP; "request completed" adds the
status the handler wrote and duration_ms, so a 422 from spinning an empty
wheel is visible without reading the body.

# Response Envelope

Successful wheel responses go out through JSONResponse. Failures use
ErrorResponse, which fills models.ErrorResponse with the status text and
a short message a wheel UI can show as-is:

	middleware.ErrorResponse(w, http.StatusConflict, "This option already exists")

# Request Bodies

Option names arrive as small JSON objects. ParseJSONBody decodes at most
MaxBodyBytes, so an oversized body fails to decode and becomes a 400:

	var req models.AddOptionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Browser Clients

main wraps the whole mux in CORS so a page on another origin can fetch
/wheels/{id}/svg and drive spins. Preflight OPTIONS requests are answered
directly; only GET, POST and DELETE with a Content-Type header are
advertised, matching the routes that exist.
*/
package middleware
