package handlers

import (
	"log/slog"

	"github.com/salesboard/salesboard/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	DashboardSvc    DashboardService
	ExportSvc       ExportService
	CORSOrigins     []string
}
