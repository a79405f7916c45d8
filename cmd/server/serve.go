package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"hrms/internal/access"
	"hrms/internal/audit"
	auditpostgres "hrms/internal/audit/store/postgres"
	"hrms/internal/events"
	hrmetrics "hrms/internal/hr/metrics"
	"hrms/internal/hr/service"
	hrpostgres "hrms/internal/hr/store/postgres"
	"hrms/internal/platform/httpserver"
	"hrms/internal/platform/postgres"
	platformredis "hrms/internal/platform/redis"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

// deps holds the long-lived resources the router is built from.
type deps struct {
	db        *sqlx.DB
	redis     *platformredis.Client
	publisher events.Publisher
	hr        *service.Service
	audit     *audit.Recorder
}

func (a *app) serve(ctx context.Context) error {
	d, closeDeps, err := a.wire(ctx)
	if err != nil {
		return err
	}
	defer closeDeps()

	srv := httpserver.New(a.cfg.Server.Addr, a.router(d), a.cfg.Server.RequestTimeout)

	errCh := make(chan error, 1)
	go func() {
		a.log.InfoContext(ctx, "starting hrms", "addr", a.cfg.Server.Addr, "env", a.cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// wire connects to the backing services and assembles the HR and audit
// services. The returned func releases everything that was opened.
func (a *app) wire(ctx context.Context) (*deps, func(), error) {
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	db, err := postgres.Connect(ctx, a.cfg.Database.Pool())
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, func() { _ = db.Close() })

	if a.cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(a.cfg.Database.URL); err != nil {
			closeAll()
			return nil, nil, err
		}
		a.log.InfoContext(ctx, "migrations applied")
	}

	rc, err := platformredis.New(ctx, a.cfg.Redis)
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	if rc != nil {
		closers = append(closers, func() { _ = rc.Close() })
	}

	publisher, err := a.publisher(ctx)
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	if kp, ok := publisher.(*events.KafkaPublisher); ok {
		closers = append(closers, kp.Close)
	}

	recorder := audit.NewRecorder(auditpostgres.New(db),
		audit.WithLogger(a.log),
		audit.WithMetrics(audit.NewMetrics()),
		audit.WithTopN(a.cfg.Audit.SummaryTopN),
	)

	store := hrpostgres.New(db)
	opts := []service.Option{
		service.WithLogger(a.log),
		service.WithMetrics(hrmetrics.New()),
		service.WithPublisher(publisher),
	}
	var directory access.Directory = store
	if rc != nil {
		cached := access.NewRedisDirectory(rc.Client, store,
			access.WithTTL(a.cfg.Redis.HierarchyTTL),
			access.WithDirectoryLogger(a.log),
		)
		directory = cached
		opts = append(opts, service.WithHierarchyCache(cached))
	}
	resolver := access.NewResolver(directory, access.WithLogger(a.log))

	return &deps{
		db:        db,
		redis:     rc,
		publisher: publisher,
		hr:        service.New(store, resolver, recorder, opts...),
		audit:     recorder,
	}, closeAll, nil
}

func (a *app) publisher(ctx context.Context) (events.Publisher, error) {
	if !a.cfg.Kafka.Enabled {
		return events.NewLogPublisher(a.log), nil
	}
	p, err := events.NewKafkaPublisher(ctx, a.cfg.Kafka.Publisher(), a.log)
	if err != nil {
		return nil, fmt.Errorf("kafka publisher: %w", err)
	}
	return p, nil
}
