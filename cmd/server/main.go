package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"nursery/db/migrations"
	httpadapter "nursery/internal/adapter/http"
	metricsinmem "nursery/internal/adapter/metrics/inmemory"
	metricsprom "nursery/internal/adapter/metrics/prom"
	gormrepo "nursery/internal/adapter/repo/gorm"
	"nursery/internal/adapter/repo/memory"
	"nursery/internal/app/caretasks"
	"nursery/internal/app/daycycle"
	"nursery/internal/app/ports"
	"nursery/internal/app/replay"
	"nursery/internal/app/shared/journal"
	"nursery/internal/app/status"
	"nursery/internal/app/stock"
	"nursery/internal/app/transfer"
	"nursery/internal/config"
	"nursery/internal/domain/catalog"
	"nursery/internal/domain/nursery"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	events, txManager := mustBuildJournal(cfg.Database)
	kpiRecorder := metricsinmem.NewRecorder()
	registry := prometheus.NewRegistry()
	promRecorder, err := metricsprom.NewRecorder(registry)
	if err != nil {
		log.Fatalf("register metrics: %v", err)
	}

	facility, err := nursery.NewFacility(nursery.Config{
		GrowingRows:  cfg.Facility.GrowingRows,
		GrowingCols:  cfg.Facility.GrowingCols,
		DisplayRows:  cfg.Facility.DisplayRows,
		DisplayCols:  cfg.Facility.DisplayCols,
		AutoRelocate: cfg.Facility.AutoRelocate,
		Logger:       log.Default(),
		Now:          time.Now,
	}, catalog.New(cfg.IDGenerator(), cfg.CatalogSpecs()))
	if err != nil {
		log.Fatalf("build facility: %v", err)
	}

	rec := journal.Recorder{
		TxManager: txManager,
		Events:    events,
		Metrics:   ports.MultiMetrics{kpiRecorder, promRecorder},
	}
	h := httpadapter.Handler{
		StockUC:     stock.UseCase{Facility: facility, Journal: rec},
		DayCycleUC:  daycycle.UseCase{Facility: facility, Journal: rec, MaxDays: cfg.Facility.MaxAdvanceDays},
		CareTasksUC: caretasks.UseCase{Facility: facility, Journal: rec},
		TransferUC:  transfer.UseCase{Facility: facility, Journal: rec},
		ReplayUC:    replay.UseCase{Events: events},
		StatusUC:    status.UseCase{Facility: facility},
		KPI:         kpiRecorder,

		AllowOrigins: cfg.Server.AllowOrigins,
	}

	if cfg.Server.MetricsAddr != "" {
		go serveMetrics(cfg.Server.MetricsAddr, registry)
	}

	s := server.Default(server.WithHostPorts(cfg.Server.Addr))
	h.RegisterRoutes(s)
	s.OnShutdown = append(s.OnShutdown, func(context.Context) {
		facility.Close()
	})

	log.Printf("nursery server listening on %s (growing %dx%d, display %dx%d)",
		cfg.Server.Addr, cfg.Facility.GrowingRows, cfg.Facility.GrowingCols, cfg.Facility.DisplayRows, cfg.Facility.DisplayCols)
	s.Spin()
}

// mustBuildJournal picks postgres when a DSN is configured and falls back to
// the in-process store otherwise.
func mustBuildJournal(cfg config.DatabaseConfig) (ports.EventRepository, ports.TxManager) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		log.Println("no database dsn configured, journal kept in memory")
		store := memory.NewStore()
		return memory.NewEventRepo(store), memory.NewTxManager(store)
	}
	db, err := gormrepo.OpenPostgres(dsn, gormrepo.PoolOptions{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: 30 * time.Minute,
	})
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	var applied []string
	if cfg.MigrationsDir != "" {
		applied, err = gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir)
	} else {
		applied, err = gormrepo.ApplyMigrationsFS(context.Background(), db, migrations.FS)
	}
	if err != nil {
		log.Fatalf("apply migrations: %v", err)
	}
	if len(applied) > 0 {
		log.Printf("applied journal migrations %v", applied)
	}
	return gormrepo.NewEventRepo(db), gormrepo.NewTxManager(db)
}

func serveMetrics(addr string, gatherer prometheus.Gatherer) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	log.Printf("metrics listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("metrics server stopped: %v", err)
	}
}

func resolveConfigPath() string {
	if v := strings.TrimSpace(os.Getenv("NURSERY_CONFIG")); v != "" {
		return v
	}
	if _, err := os.Stat("nursery.yaml"); err == nil {
		return "nursery.yaml"
	}
	return ""
}
