// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-spin/cliparse"
	"github.com/danielhkuo/quickly-spin/handlers"
	"github.com/danielhkuo/quickly-spin/middleware"
	"github.com/danielhkuo/quickly-spin/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	wheelHandler := handlers.NewWheelHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Wheel lifecycle
	mux.HandleFunc("POST /wheels", middleware.WithLogging(wheelHandler.CreateWheel))
	mux.HandleFunc("GET /wheels/{id}", middleware.WithLogging(wheelHandler.GetWheel))
	mux.HandleFunc("DELETE /wheels/{id}", middleware.WithLogging(wheelHandler.DeleteWheel))

	// Option list
	mux.HandleFunc("POST /wheels/{id}/options", middleware.WithLogging(wheelHandler.AddOption))
	mux.HandleFunc("DELETE /wheels/{id}/options/{optionID}", middleware.WithLogging(wheelHandler.RemoveOption))

	// Geometry and rendering
	mux.HandleFunc("GET /wheels/{id}/sectors", middleware.WithLogging(wheelHandler.GetSectors))
	mux.HandleFunc("GET /wheels/{id}/svg", middleware.WithLogging(wheelHandler.GetSVG))

	// Spinning
	mux.HandleFunc("POST /wheels/{id}/spin", middleware.WithLogging(wheelHandler.Spin))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-spin API v1"))
	})

	return mux
}
