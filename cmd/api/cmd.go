package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/salesboard/salesboard/internal/bootstrap"
	"github.com/salesboard/salesboard/internal/config"
	"github.com/salesboard/salesboard/internal/handlers"
	"github.com/salesboard/salesboard/internal/response"
	"github.com/salesboard/salesboard/internal/router"
	"github.com/salesboard/salesboard/internal/services"
	"github.com/salesboard/salesboard/internal/store"
	"github.com/salesboard/salesboard/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)

	// stores
	dstore := store.NewDatasetStore()

	// services
	inserv := services.NewIngestService(bs.Upstream, dstore)
	anserv := services.NewAnalyticsService(dstore)
	dserv := services.NewDashboardService(dstore, anserv)
	exserv := services.NewExportService(dstore, anserv)

	// one-shot data load; the server still starts on empty/failed so the
	// dashboard can show the state
	ctx := logger.ToContext(context.Background(), bs.Log)
	inserv.Load(ctx)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.DashboardSvc = dserv
	deps.ExportSvc = exserv
	deps.CORSOrigins = cfg.CORSOrigins

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
