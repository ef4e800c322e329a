// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package services

import (
	"context"
	"fmt"
	"time"
)

// EventRouter is the lifecycle of eventprocessor.Router.
type EventRouter interface {
	Run(ctx context.Context) error
	Close() error
}

// EventRouterService runs the domain event router under supervision.
//
// A Watermill router cannot run twice, so the service is built from a
// factory and creates a fresh router on every (re)start.
//
// Example usage:
//
//	svc := services.NewEventRouterService(func() (services.EventRouter, error) {
//	    r, err := eventprocessor.NewRouter(cfg, bus.Logger())
//	    if err != nil {
//	        return nil, err
//	    }
//	    eventprocessor.RegisterActivityHandlers(r, bus.Subscriber(), activity)
//	    return r, nil
//	}, 10*time.Second)
//	tree.AddEventService(svc)
type EventRouterService struct {
	newRouter    func() (EventRouter, error)
	closeTimeout time.Duration
	name         string
}

// NewEventRouterService creates the service. A non-positive timeout means 10s.
func NewEventRouterService(newRouter func() (EventRouter, error), closeTimeout time.Duration) *EventRouterService {
	if closeTimeout <= 0 {
		closeTimeout = 10 * time.Second
	}
	return &EventRouterService{
		newRouter:    newRouter,
		closeTimeout: closeTimeout,
		name:         "event-router",
	}
}

// Serve implements suture.Service.
func (s *EventRouterService) Serve(ctx context.Context) error {
	router, err := s.newRouter()
	if err != nil {
		return fmt.Errorf("build event router: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- router.Run(ctx)
	}()

	select {
	case err := <-errCh:
		_ = router.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			return fmt.Errorf("event router stopped: %w", err)
		}
		return fmt.Errorf("event router stopped unexpectedly")

	case <-ctx.Done():
		closed := make(chan error, 1)
		go func() { closed <- router.Close() }()
		select {
		case err := <-closed:
			<-errCh
			if err != nil {
				return fmt.Errorf("close event router: %w", err)
			}
		case <-time.After(s.closeTimeout):
			return fmt.Errorf("event router did not close within %s", s.closeTimeout)
		}
		return ctx.Err()
	}
}

// String implements fmt.Stringer for suture's log events.
func (s *EventRouterService) String() string {
	return s.name
}
