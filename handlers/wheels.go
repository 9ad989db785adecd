// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/quickly-spin/animate"
	"github.com/danielhkuo/quickly-spin/cliparse"
	"github.com/danielhkuo/quickly-spin/middleware"
	"github.com/danielhkuo/quickly-spin/models"
	"github.com/danielhkuo/quickly-spin/options"
	"github.com/danielhkuo/quickly-spin/render"
	"github.com/danielhkuo/quickly-spin/store"
	"github.com/danielhkuo/quickly-spin/wheel"
)

type WheelHandler struct {
	store *store.Store
	cfg   cliparse.Config
	now   func() time.Time
}

func NewWheelHandler(st *store.Store, cfg cliparse.Config) *WheelHandler {
	return &WheelHandler{store: st, cfg: cfg, now: time.Now}
}

// wheelResponse is a WheelView plus geometry for the requested size
type wheelResponse struct {
	models.WheelView
	Sectors []wheel.Sector `json:"sectors"`
}

// CreateWheel handles POST /wheels
func (h *WheelHandler) CreateWheel(w http.ResponseWriter, r *http.Request) {
	var req models.CreateWheelRequest
	if r.ContentLength != 0 {
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
	}

	wh, err := h.store.Create(req.Options)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	slog.Info("wheel created", "wheel_id", wh.ID, "options", wh.Options.Len())

	middleware.JSONResponse(w, http.StatusCreated, models.CreateWheelResponse{
		WheelID: wh.ID,
		Options: wh.Options.Options(),
	})
}

// GetWheel handles GET /wheels/{id}
func (h *WheelHandler) GetWheel(w http.ResponseWriter, r *http.Request) {
	wh, ok := h.lookup(w, r)
	if !ok {
		return
	}

	radius, center, err := h.geometryParams(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, wheelResponse{
		WheelView: wh.View(h.now()),
		Sectors:   wheel.ComputeSectors(wh.Options.Options(), radius, center),
	})
}

// DeleteWheel handles DELETE /wheels/{id}
func (h *WheelHandler) DeleteWheel(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.PathValue("id")); err != nil {
		h.writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddOption handles POST /wheels/{id}/options
func (h *WheelHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	wheelID := r.PathValue("id")

	var req models.AddOptionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	opt, err := h.store.AddOption(wheelID, req.Name)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	slog.Info("option added", "wheel_id", wheelID, "option_id", opt.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddOptionResponse{Option: opt})
}

// RemoveOption handles DELETE /wheels/{id}/options/{optionID}
func (h *WheelHandler) RemoveOption(w http.ResponseWriter, r *http.Request) {
	wheelID := r.PathValue("id")
	optionID := r.PathValue("optionID")

	if err := h.store.RemoveOption(wheelID, optionID); err != nil {
		h.writeStoreError(w, err)
		return
	}

	slog.Info("option removed", "wheel_id", wheelID, "option_id", optionID)

	w.WriteHeader(http.StatusNoContent)
}

// GetSectors handles GET /wheels/{id}/sectors?radius=&cx=&cy=
func (h *WheelHandler) GetSectors(w http.ResponseWriter, r *http.Request) {
	wh, ok := h.lookup(w, r)
	if !ok {
		return
	}

	radius, center, err := h.geometryParams(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, wheel.ComputeSectors(wh.Options.Options(), radius, center))
}

// GetSVG handles GET /wheels/{id}/svg?radius=&rotation=
// Without rotation the wheel is drawn where it currently is.
func (h *WheelHandler) GetSVG(w http.ResponseWriter, r *http.Request) {
	wh, ok := h.lookup(w, r)
	if !ok {
		return
	}

	radius, _, err := h.geometryParams(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	rotation, _ := wh.RotationAt(h.now())
	if s := r.URL.Query().Get("rotation"); s != "" {
		rotation, err = parseFinite(s)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "rotation must be a number")
			return
		}
	}

	var buf bytes.Buffer
	err = render.WheelSVG(&buf, wh.Options.Options(), render.Options{
		Radius:             radius,
		RotationDeg:        rotation,
		PointerPositionDeg: h.cfg.PointerPositionDeg,
	})
	if err != nil {
		slog.Error("failed to render wheel", "wheel_id", wh.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render wheel")
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Spin handles POST /wheels/{id}/spin?keyframes=true&fps=
func (h *WheelHandler) Spin(w http.ResponseWriter, r *http.Request) {
	wheelID := r.PathValue("id")

	rec, err := h.store.Spin(wheelID)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	slog.Info("wheel spun",
		"wheel_id", wheelID,
		"winning_index", rec.WinningIndex,
		"option", rec.Option.Name,
		"final_rotation_degrees", rec.FinalRotationDegrees,
	)

	resp := models.SpinResponse{
		WinningIndex:         rec.WinningIndex,
		Option:               rec.Option,
		FinalRotationDegrees: rec.FinalRotationDegrees,
		DurationMs:           rec.DurationMs,
		StartedAt:            rec.StartedAt,
	}

	q := r.URL.Query()
	if q.Get("keyframes") == "true" {
		fps := animate.DefaultFPS
		if s := q.Get("fps"); s != "" {
			fps, err = strconv.Atoi(s)
			if err != nil || fps < 1 || fps > 120 {
				middleware.ErrorResponse(w, http.StatusBadRequest, "fps must be between 1 and 120")
				return
			}
		}
		resp.Keyframes = animate.Keyframes(rec.FinalRotationDegrees, rec.Duration, fps, animate.EaseOutCubic)
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

func (h *WheelHandler) lookup(w http.ResponseWriter, r *http.Request) (store.Wheel, bool) {
	wh, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		h.writeStoreError(w, err)
		return store.Wheel{}, false
	}
	return wh, true
}

// geometryParams reads radius, cx, cy. The center defaults to a square
// canvas just large enough for the wheel.
func (h *WheelHandler) geometryParams(r *http.Request) (float64, wheel.Point, error) {
	q := r.URL.Query()

	radius := h.cfg.WheelRadius
	if s := q.Get("radius"); s != "" {
		v, err := parseFinite(s)
		if err != nil || v <= 0 {
			return 0, wheel.Point{}, errors.New("radius must be a positive number")
		}
		radius = v
	}

	center := wheel.Point{X: radius, Y: radius}
	for _, p := range []struct {
		key string
		dst *float64
	}{{"cx", &center.X}, {"cy", &center.Y}} {
		s := q.Get(p.key)
		if s == "" {
			continue
		}
		v, err := parseFinite(s)
		if err != nil {
			return 0, wheel.Point{}, errors.New(p.key + " must be a number")
		}
		*p.dst = v
	}

	return radius, center, nil
}

// parseFinite parses a query number. NaN and Inf are rejected; they
// cannot be encoded as JSON or drawn.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not a finite number")
	}
	return v, nil
}

// writeStoreError maps domain errors to HTTP statuses
func (h *WheelHandler) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrWheelNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Wheel not found")
	case errors.Is(err, options.ErrOptionNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Option not found")
	case errors.Is(err, options.ErrEmptyInput):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Please enter an option")
	case errors.Is(err, options.ErrDuplicateOption):
		middleware.ErrorResponse(w, http.StatusConflict, "This option already exists")
	case errors.Is(err, store.ErrTooManyOptions):
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, wheel.ErrInvalidSpinRequest):
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "Please add some options first")
	case errors.Is(err, store.ErrTooManyWheels):
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Too many wheels, try again later")
	default:
		slog.Error("wheel operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
