// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*JanitorService)(nil)

func TestNewJanitorService(t *testing.T) {
	if _, err := NewJanitorService(time.Second, zerolog.Nop(), JanitorTask{Name: "broken"}); err == nil {
		t.Error("NewJanitorService() accepted a task without Run")
	}

	svc, err := NewJanitorService(0, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if svc.interval != time.Minute {
		t.Errorf("default interval = %v, want 1m", svc.interval)
	}
	if svc.String() != "janitor" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestJanitorService_RunOnce(t *testing.T) {
	svc, _ := NewJanitorService(time.Minute, zerolog.Nop(),
		JanitorTask{Name: "sessions", Run: func() int { return 2 }},
		JanitorTask{Name: "rates", Run: func() int { return 0 }},
		JanitorTask{Name: "cache", Run: func() int { return 5 }},
	)
	if got := svc.RunOnce(); got != 7 {
		t.Errorf("RunOnce() = %d, want 7", got)
	}
}

func TestJanitorService_Serve(t *testing.T) {
	var runs atomic.Int32
	svc, _ := NewJanitorService(10*time.Millisecond, zerolog.Nop(),
		JanitorTask{Name: "count", Run: func() int { runs.Add(1); return 1 }},
	)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want DeadlineExceeded", err)
	}
	if runs.Load() < 2 {
		t.Errorf("task ran %d times, want at least 2", runs.Load())
	}
}
