// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-spin/cliparse"
	"github.com/danielhkuo/quickly-spin/random"
	"github.com/danielhkuo/quickly-spin/store"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:                3318,
		NumFullSpins:        5,
		AnimationDurationMs: 4000,
		PointerPositionDeg:  0,
		WheelRadius:         150,
		MaxOptions:          8,
		MaxWheels:           10,
		LogLevel:            "info",
	}
}

// FixedPicker always picks idx (mod n)
func FixedPicker(idx int) random.Picker {
	return random.PickerFunc(func(n int) (int, error) {
		if n <= 0 {
			return 0, random.ErrNoChoices
		}
		return idx % n, nil
	})
}

// SetupTestStore creates an empty store wired from cfg
func SetupTestStore(t *testing.T, cfg cliparse.Config, picker random.Picker) *store.Store {
	t.Helper()

	return store.New(store.Config{
		MaxWheels:  cfg.MaxWheels,
		MaxOptions: cfg.MaxOptions,
		Spin:       cfg.SpinConfig(),
		Duration:   cfg.AnimationDuration(),
	}, picker)
}

// CreateTestWheel creates a wheel with the given option names and returns it
func CreateTestWheel(t *testing.T, st *store.Store, names ...string) store.Wheel {
	t.Helper()

	wh, err := st.Create(names)
	if err != nil {
		t.Fatalf("Failed to create test wheel: %v", err)
	}
	return wh
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
