// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/quickly-spin/models"
	"github.com/danielhkuo/quickly-spin/random"
	"github.com/danielhkuo/quickly-spin/testutil"
)

// TestConcurrentAddAndSpin verifies that simultaneous edits and spins on
// one wheel neither lose options nor produce out-of-range winners
func TestConcurrentAddAndSpin(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cfg.MaxOptions = 50
	h := NewWheelHandler(testutil.SetupTestStore(t, cfg, random.NewSeededPicker(7)), cfg)
	wh := testutil.CreateTestWheel(t, h.store, "first")

	const workers = 20
	var added, spun atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(2)

		go func(i int) {
			defer wg.Done()
			req := testutil.MakeRequest("POST", "/", models.AddOptionRequest{Name: fmt.Sprintf("Option %d", i)}, nil)
			req.SetPathValue("id", wh.ID)
			w := httptest.NewRecorder()
			h.AddOption(w, req)
			if w.Code == http.StatusCreated {
				added.Add(1)
			}
		}(i)

		go func() {
			defer wg.Done()
			req := testutil.MakeRequest("POST", "/", nil, nil)
			req.SetPathValue("id", wh.ID)
			w := httptest.NewRecorder()
			h.Spin(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("Spin returned %d: %s", w.Code, w.Body.String())
				return
			}
			spun.Add(1)
		}()
	}

	wg.Wait()

	if added.Load() != workers {
		t.Errorf("Expected %d options added, got %d", workers, added.Load())
	}
	if spun.Load() != workers {
		t.Errorf("Expected %d spins, got %d", workers, spun.Load())
	}

	got, _ := h.store.Get(wh.ID)
	if got.Options.Len() != workers+1 {
		t.Errorf("Expected %d options, got %d", workers+1, got.Options.Len())
	}
}

// TestConcurrentDuplicateAdds verifies exactly one of many identical
// names (differing only in case) is accepted
func TestConcurrentDuplicateAdds(t *testing.T) {
	h := newTestHandler(t, 0)
	wh := testutil.CreateTestWheel(t, h.store)

	names := []string{"read a book", "Read a book", "READ A BOOK", "Read A Book", "rEAD a bOOK"}
	var created, conflicts atomic.Int32
	var wg sync.WaitGroup

	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			req := testutil.MakeRequest("POST", "/", models.AddOptionRequest{Name: name}, nil)
			req.SetPathValue("id", wh.ID)
			w := httptest.NewRecorder()
			h.AddOption(w, req)
			switch w.Code {
			case http.StatusCreated:
				created.Add(1)
			case http.StatusConflict:
				conflicts.Add(1)
			}
		}(name)
	}

	wg.Wait()

	if created.Load() != 1 {
		t.Errorf("Expected exactly 1 created, got %d", created.Load())
	}
	if conflicts.Load() != int32(len(names)-1) {
		t.Errorf("Expected %d conflicts, got %d", len(names)-1, conflicts.Load())
	}
}
