package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/GrowRoom_Go/internal/bootstrap"
	"github.com/osse101/GrowRoom_Go/internal/clock"
	"github.com/osse101/GrowRoom_Go/internal/config"
	"github.com/osse101/GrowRoom_Go/internal/game"
	"github.com/osse101/GrowRoom_Go/internal/handler"
	"github.com/osse101/GrowRoom_Go/internal/persistence"
	"github.com/osse101/GrowRoom_Go/internal/scheduler"
	"github.com/osse101/GrowRoom_Go/internal/server"
	"github.com/osse101/GrowRoom_Go/internal/session"
	"github.com/osse101/GrowRoom_Go/internal/sse"
	"github.com/osse101/GrowRoom_Go/internal/utils"
	"github.com/osse101/GrowRoom_Go/internal/worker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "growroom: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg, handler.VersionString())
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := bootstrap.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		store.Close()
		return err
	}

	report := game.LogReporter
	if cfg.StrictInvariants {
		report = game.PanicReporter
	}
	engine := game.NewEngine(cat, utils.NewSeededSource(cfg.RNGSeed),
		game.WithInvariantReporter(session.InvariantReporter(report)))

	clk := clock.NewRealClock()
	adapter := persistence.NewAdapter(store, persistence.NewCodec(cat), cfg.StoreKey, clk)
	sess := session.New(engine, adapter, publisher, clk)

	hub := sse.NewHub()
	hub.Start()

	expiry := worker.NewEventExpiryWorker(sess, clk)
	bootstrap.RegisterEventHandlers(bus, expiry, sse.NewSubscriber(hub, clk.Now))

	sess.Load(ctx)
	expiry.Start(sess.State().ActiveEvent)

	pool := worker.NewPool(worker.DefaultWorkerCount, worker.DefaultQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(worker.TickJob{}.Name(), cfg.TickInterval, worker.TickJob{Sim: sess})
	sched.Schedule(worker.AutosaveJob{}.Name(), cfg.AutosaveInterval, worker.AutosaveJob{Sim: sess})
	sched.Schedule(worker.EventRollJob{}.Name(), cfg.EventInterval, worker.EventRollJob{Sim: sess})

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, sess, cat, store, hub)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return sched.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Hub:                hub,
			Server:             srv,
			Scheduler:          sched,
			Pool:               pool,
			ExpiryWorker:       expiry,
			Session:            sess,
			ResilientPublisher: publisher,
			Store:              store,
		})
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
