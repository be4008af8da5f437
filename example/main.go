// Command example runs a one-shot health check against a local mock server
// using the friends SDK directly.
//
// Usage:
//
//	go run ./example
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	friends "github.com/Eofs791/tcdw-friends"
)

func main() {
	// start mock server (see mock_server.go)
	go StartMockSiteServer(":9999")
	time.Sleep(100 * time.Millisecond)

	base := "http://localhost:9999"
	sites := []struct {
		name, path string
		hidden     bool
	}{
		{"Alice", "/ok", false},
		{"Bob", "/moved", false},
		{"Carol", "/missing", false},
		{"Dave", "/slow", false},
		{"Eve", "/flaky", false},
		{"Frank", "/ok", false},
		{"Ghost", "/missing", true},
	}

	var endpoints []friends.Endpoint
	for _, s := range sites {
		ep, err := friends.NewEndpoint(s.name, base+s.path, friends.WithHidden(s.hidden))
		if err != nil {
			slog.Error("failed to create endpoint", "name", s.name, "error", err)
			os.Exit(1)
		}
		endpoints = append(endpoints, ep)
	}

	checker, err := friends.New(
		friends.WithEndpoints(endpoints...),
		friends.WithBatchSize(3),
		friends.WithTimeout(time.Second),
		friends.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))),
	)
	if err != nil {
		slog.Error("failed to create checker", "error", err)
		os.Exit(1)
	}

	fmt.Println("6 visible sites in batches of 3, 1s timeout; Ghost is hidden and skipped.")
	fmt.Println()

	summary := checker.Run(context.Background(), friends.NewReporter(os.Stdout))
	if !summary.Healthy() {
		os.Exit(1)
	}
}
