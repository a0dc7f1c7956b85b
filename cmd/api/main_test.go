package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"leadscore_backend/platform/logger"
)

func TestWithRetryPreservesErrorChain(t *testing.T) {
	sentinel := errors.New("connection refused")

	err := withRetry(context.Background(), logger.New("test"), "database connection", 2, time.Millisecond, func() error {
		return sentinel
	})
	if err == nil {
		t.Fatal("expected an error after exhausting attempts")
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want chain containing %v", err, sentinel)
	}
}

func TestWithRetrySucceedsAfterFailures(t *testing.T) {
	attempts := 0

	err := withRetry(context.Background(), logger.New("test"), "flaky operation", 3, time.Millisecond, func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("withRetry: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}
}

func TestWithRetryStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := withRetry(ctx, logger.New("test"), "cancelled operation", 5, time.Millisecond, func() error {
		return errors.New("should not matter")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
