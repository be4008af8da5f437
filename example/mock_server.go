package main

import (
	"log/slog"
	"math/rand"
	"net/http"
	"sync/atomic"
	"time"
)

// newMockSiteHandler returns a handler with one route per check outcome:
//
//	/ok      200 after 50-200ms
//	/moved   301 to https://example.com/
//	/missing 404
//	/slow    answers after 3s, longer than the demo timeout
//	/flaky   alternates between 200 and 503
func newMockSiteHandler() http.Handler {
	var flips atomic.Int64
	mux := http.NewServeMux()

	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		// simulate small latency variance
		time.Sleep(time.Duration(50+rand.Intn(150)) * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/moved", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "https://example.com/", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(3 * time.Second):
			w.WriteHeader(http.StatusOK)
		}
	})
	mux.HandleFunc("/flaky", func(w http.ResponseWriter, r *http.Request) {
		if flips.Add(1)%2 == 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	return mux
}

// StartMockSiteServer serves the mock friend sites on addr.
// Call this in a goroutine before running the checker.
func StartMockSiteServer(addr string) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newMockSiteHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		slog.Error("mock server error", "error", err)
	}
}
