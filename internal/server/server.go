package server

import (
	"log/slog"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/spendlens/spendlens/internal/export"
	"github.com/spendlens/spendlens/internal/ingest"
	"github.com/spendlens/spendlens/internal/repository"
)

// Server wires the HTTP surface: receipt upload and CRUD, spending
// insights, and filtered exports.
type Server struct {
	ingest         *ingest.Service
	repo           repository.ReceiptRepository
	export         *export.Service
	logger         *slog.Logger
	maxUploadBytes int64
}

func New(ing *ingest.Service, repo repository.ReceiptRepository, exp *export.Service, maxUploadBytes int64, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = 16 << 20
	}
	return &Server{
		ingest:         ing,
		repo:           repo,
		export:         exp,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

// NewEcho builds the echo instance with middleware and all routes
// registered.
func (s *Server) NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.BodyLimit(strByteSize(s.maxUploadBytes)))
	s.Register(e)
	return e
}

// Register attaches all routes to e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/healthz", s.handleHealth)

	e.POST("/receipts/upload", s.handleUpload)
	e.GET("/receipts", s.handleList)
	e.GET("/receipts/:id", s.handleGet)
	e.PUT("/receipts/:id", s.handleUpdate)
	e.DELETE("/receipts/:id", s.handleDelete)

	e.GET("/insights/aggregates", s.handleAggregates)
	e.GET("/insights/vendor-frequency", s.handleVendorFrequency)
	e.GET("/insights/monthly-spend", s.handleMonthlySpend)

	e.GET("/export/csv", s.handleExportCSV)
	e.GET("/export/xlsx", s.handleExportXLSX)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(200, map[string]string{"status": "ok"})
}

// strByteSize renders a byte count in the "<n>B" form the body limit
// middleware parses.
func strByteSize(n int64) string {
	return strconv.FormatInt(n, 10) + "B"
}
