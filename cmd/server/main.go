package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"go.uber.org/zap"

	httpadapter "infernocorp/internal/adapter/http"
	"infernocorp/internal/adapter/notify"
	lifecycleapp "infernocorp/internal/app/lifecycle"
	"infernocorp/internal/bootstrap"
	"infernocorp/internal/domain/lifecycle"
	"infernocorp/internal/platform/config"
	"infernocorp/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("load config", zap.Error(err))
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	feed := notify.NewFeed(notify.DefaultFeedSize)
	hub := notify.NewHub(logger.Named("notify"))
	notifier := notify.Multi{notify.LogSink{Logger: logger.Named("notice")}, feed, hub}

	a, err := bootstrap.Build(ctx, cfg, logger, notifier)
	if err != nil {
		logger.Fatal("bootstrap", zap.Error(err))
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("close storage", zap.Error(err))
		}
	}()

	go hub.Run(ctx)
	go newScheduler(a, logger).Run(ctx)
	if cfg.NotifyAddr != "" {
		go serveNotifications(ctx, cfg.NotifyAddr, hub, logger)
	}

	h := httpadapter.Handler{
		StatusUC:     a.Status,
		ManagementUC: a.Management,
		MissionUC:    a.Mission,
		LifecycleUC:  a.Lifecycle,
		HistoryUC:    a.History,
		Feed:         feed,
		KPI:          a.Metrics,
		AllowOrigin:  cfg.CORSOrigin,
	}

	s := server.Default(server.WithHostPorts(cfg.HTTPAddr))
	h.RegisterRoutes(s)

	logger.Info("infernocorp server listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("backend", string(cfg.SaveBackend)),
		zap.Duration("day", cfg.DayDuration),
	)
	s.Spin()
}

// newScheduler anchors day boundaries at the moment the current game was
// created, following resets.
func newScheduler(a *bootstrap.App, logger *zap.Logger) *lifecycleapp.Scheduler {
	createdAt := func() time.Time { return a.Session.Meta().CreatedAt }
	return &lifecycleapp.Scheduler{
		Ticker:   a.Lifecycle,
		Calendar: lifecycle.NewCalendar(createdAt(), a.Config.DayDuration),
		Anchor:   createdAt,
		Logger:   logger.Named("scheduler"),
	}
}

func notificationMux(hub http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	return mux
}

func serveNotifications(ctx context.Context, addr string, hub *notify.Hub, logger *zap.Logger) {
	srv := &http.Server{Addr: addr, Handler: notificationMux(hub), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	logger.Info("notification stream listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("notification stream stopped", zap.Error(err))
	}
}
