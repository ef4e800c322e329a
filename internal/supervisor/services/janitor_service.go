// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// JanitorTask is one cleanup step. It returns how many entries it removed.
type JanitorTask struct {
	Name string
	Run  func() int
}

// JanitorService runs cleanup tasks on a fixed interval: idle conversation
// sessions, stale swipe-rate windows and expired ranking cache entries.
//
// Tasks run sequentially on the service goroutine. A task that panics takes
// the service down and suture restarts it with the same task list.
//
// Example usage:
//
//	janitor, err := services.NewJanitorService(time.Minute, logging.WithComponent("janitor"),
//	    services.JanitorTask{Name: "conversations", Run: manager.Sweep},
//	    services.JanitorTask{Name: "ranking-cache", Run: ranker.CleanupExpired},
//	)
//	if err != nil {
//	    return err
//	}
//	tree.AddMaintenanceService(janitor)
type JanitorService struct {
	tasks    []JanitorTask
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewJanitorService creates the service. A non-positive interval means one
// minute.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewJanitorService(interval time.Duration, logger zerolog.Logger, tasks ...JanitorTask) (*JanitorService, error) {
	for i, task := range tasks {
		if task.Run == nil {
			return nil, fmt.Errorf("janitor task %d (%q) has no Run function", i, task.Name)
		}
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &JanitorService{
		tasks:    tasks,
		interval: interval,
		logger:   logger.With().Str("service", "janitor").Logger(),
		name:     "janitor",
	}, nil
}

// Serve implements suture.Service.
func (s *JanitorService) Serve(ctx context.Context) error {
	s.logger.Info().
		Int("tasks", len(s.tasks)).
		Dur("interval", s.interval).
		Msg("janitor starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("janitor shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.RunOnce()
		}
	}
}

// RunOnce runs every task once and returns the total removed.
// Serve calls it on each tick; tests call it directly.
func (s *JanitorService) RunOnce() int {
	total := 0
	for _, task := range s.tasks {
		start := time.Now()
		removed := task.Run()
		total += removed
		if removed > 0 {
			s.logger.Debug().
				Str("task", task.Name).
				Int("removed", removed).
				Dur("duration", time.Since(start)).
				Msg("cleanup pass")
		}
	}
	return total
}

// String returns the service name for logging.
func (s *JanitorService) String() string {
	return s.name
}
