// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/lovesync/internal/api"
	"github.com/tomtom215/lovesync/internal/compat"
	"github.com/tomtom215/lovesync/internal/config"
	"github.com/tomtom215/lovesync/internal/conversation"
	"github.com/tomtom215/lovesync/internal/directory"
	"github.com/tomtom215/lovesync/internal/eventprocessor"
	"github.com/tomtom215/lovesync/internal/logging"
	"github.com/tomtom215/lovesync/internal/preference"
	"github.com/tomtom215/lovesync/internal/recommend"
	"github.com/tomtom215/lovesync/internal/storage"
	"github.com/tomtom215/lovesync/internal/supervisor"
	"github.com/tomtom215/lovesync/internal/supervisor/services"
	"github.com/tomtom215/lovesync/internal/swipe"
)

// app holds the wired components of one server process.
type app struct {
	cfg *config.Config

	store    *storage.Store
	bus      *eventprocessor.Bus
	activity *eventprocessor.ActivityHandler

	users         *directory.Directory
	prefs         *preference.Store
	swipes        *swipe.Service
	ranker        *recommend.Engine
	compat        *compat.Service
	conversations *conversation.Manager

	server *http.Server
}

// newApp opens storage, loads the user directory and wires every component.
//
//nolint:gocyclo // sequential setup steps
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg}

	store, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	a.store = store

	bus, err := eventprocessor.NewBus(eventprocessor.ConfigFrom(cfg.Events))
	if err != nil {
		a.close()
		return nil, fmt.Errorf("create event bus: %w", err)
	}
	a.bus = bus
	publisher := bus.Publisher()

	a.users = directory.New(store, cfg.Recommend.SpatialCellKm)
	if err := a.users.Load(ctx); err != nil {
		a.close()
		return nil, fmt.Errorf("load users: %w", err)
	}

	if a.activity, err = eventprocessor.NewActivityHandler(a.users); err != nil {
		a.close()
		return nil, err
	}

	if a.prefs, err = preference.NewStore(store, cfg.Preference, publisher); err != nil {
		a.close()
		return nil, fmt.Errorf("create preference store: %w", err)
	}
	a.swipes = swipe.NewService(store, a.users, a.prefs, cfg.Swipe, publisher)

	if a.ranker, err = recommend.NewEngine(recommend.ConfigFrom(cfg.Recommend), a.users, a.prefs, a.swipes); err != nil {
		a.close()
		return nil, fmt.Errorf("create ranker: %w", err)
	}
	a.compat = compat.NewService(a.prefs)

	if a.conversations, err = conversation.NewManager(a.users, a.prefs, cfg.Conversation, nil, publisher); err != nil {
		a.close()
		return nil, fmt.Errorf("create conversation manager: %w", err)
	}

	a.prefs.OnUpdate(a.ranker.Invalidate)
	a.swipes.OnRecorded(a.ranker.ForgetRankings)
	a.users.OnDelete(a.prefs.Forget)
	a.users.OnDelete(a.swipes.Forget)
	a.users.OnDelete(func(userID string) { a.conversations.ForgetUser(userID) })

	handler := api.NewHandler(api.Services{
		Users:         a.users,
		Swipes:        a.swipes,
		Preferences:   a.prefs,
		Ranker:        a.ranker,
		Compatibility: a.compat,
		Conversations: a.conversations,
		Readiness: map[string]api.ReadinessCheck{
			"storage": store.Ping,
		},
	})
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFrom(cfg.Security))

	a.server = &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	logging.Info().
		Int("users", a.users.Size()).
		Str("storage", storageMode(cfg.Storage)).
		Msg("Components initialized")
	return a, nil
}

// supervise adds the long-running services to tree.
func (a *app) supervise(tree *supervisor.SupervisorTree) error {
	janitor, err := services.NewJanitorService(a.cfg.Conversation.SweepInterval, logging.WithComponent("janitor"),
		services.JanitorTask{Name: "conversations", Run: a.conversations.Sweep},
		services.JanitorTask{Name: "swipe-rates", Run: a.swipes.CleanupInactive},
		services.JanitorTask{Name: "ranking-cache", Run: a.ranker.CleanupExpired},
	)
	if err != nil {
		return err
	}
	tree.AddMaintenanceService(janitor)

	eventsCfg := eventprocessor.ConfigFrom(a.cfg.Events)
	tree.AddEventService(services.NewEventRouterService(func() (services.EventRouter, error) {
		r, err := eventprocessor.NewRouter(eventsCfg, a.bus.Logger())
		if err != nil {
			return nil, err
		}
		eventprocessor.RegisterActivityHandlers(r, a.bus.Subscriber(), a.activity)
		return r, nil
	}, eventsCfg.CloseTimeout))

	tree.AddAPIService(services.NewHTTPServerService(a.server, a.cfg.Server.ShutdownTimeout))
	return nil
}

// close releases the bus and storage. Safe on a partially built app.
func (a *app) close() {
	if a.bus != nil {
		if err := a.bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing storage")
		}
	}
}

func storageMode(cfg config.StorageConfig) string {
	if cfg.InMemory {
		return "memory"
	}
	return cfg.Path
}
