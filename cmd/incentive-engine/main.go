package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/Guardian-Global/guardianchain-app-sub001/internal/clock"
	"github.com/Guardian-Global/guardianchain-app-sub001/internal/eventstore"
	"github.com/Guardian-Global/guardianchain-app-sub001/internal/ledger"
	"github.com/Guardian-Global/guardianchain-app-sub001/internal/metrics"
	"github.com/Guardian-Global/guardianchain-app-sub001/internal/model"
	"github.com/Guardian-Global/guardianchain-app-sub001/internal/orchestrator"
	"github.com/Guardian-Global/guardianchain-app-sub001/internal/repository/clickhouse"
	"github.com/Guardian-Global/guardianchain-app-sub001/internal/settlement"
	"github.com/Guardian-Global/guardianchain-app-sub001/internal/transport"
	"github.com/Guardian-Global/guardianchain-app-sub001/internal/vault"
	"github.com/Guardian-Global/guardianchain-app-sub001/pkg/batcher"
)

type config struct {
	Addr           string        `long:"addr" env:"ENGINE_ADDR" description:"HTTP listen address" default:":8000"`
	ClickhouseDSN  string        `long:"clickhouse-dsn" env:"ENGINE_CLICKHOUSE_DSN" description:"ClickHouse DSN; empty runs in-memory only"`
	InitialBalance uint64        `long:"initial-balance" env:"ENGINE_INITIAL_BALANCE" description:"starting treasury balance in GTT" default:"50000"`
	FlushSize      int           `long:"flush-size" env:"ENGINE_FLUSH_SIZE" description:"write-behind batch size" default:"500"`
	FlushInterval  time.Duration `long:"flush-interval" env:"ENGINE_FLUSH_INTERVAL" description:"write-behind flush interval" default:"5s"`
	FlushRPS       int           `long:"flush-rps" env:"ENGINE_FLUSH_RPS" description:"write-behind flushes per second, 0 for unlimited" default:"0"`
	WeeklyCheck    time.Duration `long:"weekly-check" env:"ENGINE_WEEKLY_CHECK" description:"how often to check the weekly distribution schedule" default:"1h"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("incentive engine failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	store := eventstore.New()

	var (
		eventSink ledger.EventSink
		txSink    vault.TransactionSink
	)
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Error("close repository", zap.Error(err))
			}
		}()

		events, err := repo.AllEvents(ctx)
		if err != nil {
			return fmt.Errorf("load events: %w", err)
		}
		for _, event := range events {
			if _, err := store.Append(event); err != nil {
				return fmt.Errorf("replay event %s: %w", event.ID, err)
			}
		}
		logger.Info("replayed events from storage", zap.Int("count", len(events)))

		eventBatcher := batcher.New(logger, repo.InsertEvents, cfg.FlushSize, cfg.FlushInterval, cfg.FlushRPS)
		eventBatcher.Start(ctx)
		defer eventBatcher.Stop()
		eventSink = eventBatcher

		txBatcher := batcher.New(logger, repo.InsertTransactions, cfg.FlushSize, cfg.FlushInterval, cfg.FlushRPS)
		txBatcher.Start(ctx)
		defer txBatcher.Stop()
		txSink = txBatcher
	}

	vaultMetrics := metrics.NewVault()
	treasury, err := vault.New(
		cfg.InitialBalance,
		model.DefaultDistributionPolicy(),
		txSink,
		settlement.NewReceipts(),
		logger,
		vaultMetrics,
		clock.System{},
	)
	if err != nil {
		return fmt.Errorf("init vault: %w", err)
	}

	ledgerSvc := ledger.NewService(store, eventSink, treasury, logger, metrics.NewLedger(), clock.System{})
	if err := ledgerSvc.Rebuild(store.All()); err != nil {
		return fmt.Errorf("rebuild ledger: %w", err)
	}
	treasury.SetActiveValidators(ledgerSvc.Summary().ActiveValidators)

	settler := orchestrator.New(ledgerSvc, treasury, logger, metrics.NewOrchestrator())

	go weeklyDistributionLoop(ctx, treasury, vaultMetrics, cfg.WeeklyCheck, logger)

	mux := http.NewServeMux()
	handler := transport.NewHandler(ledgerSvc, store, treasury, settler, logger)
	handler.Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting incentive engine", zap.String("addr", cfg.Addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// weeklyDistributionLoop fires the scheduled weekly distribution and keeps
// the treasury gauges fresh.
func weeklyDistributionLoop(ctx context.Context, treasury *vault.Vault, vaultMetrics *metrics.Vault, interval time.Duration, logger *zap.Logger) {
	for {
		if err := clock.SleepWithContext(ctx, interval); err != nil {
			return
		}

		result := treasury.ProcessWeeklyDistribution(ctx)
		if result.Success {
			logger.Info("weekly distribution processed",
				zap.Uint64("total_distributed", result.TotalDistributed))
		} else if result.Reason != "not yet time" {
			logger.Warn("weekly distribution skipped", zap.String("reason", result.Reason))
		}

		stats := treasury.Stats()
		vaultMetrics.SetState(stats.State)
		vaultMetrics.SetHealthScore(treasury.HealthScore())
	}
}
