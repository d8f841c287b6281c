package export

import (
	"errors"
	"fmt"
	"strconv"

	"showroom-audit/core/logger"
	"showroom-audit/core/reconcile"
	"showroom-audit/feature/scan"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for report exports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the export routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/report/:category/export", h.HandleDownloadReport)
	app.Post("/report/:category/export", h.HandleSaveReport)
	app.Get("/history/:id/export", h.HandleDownloadHistory)
	app.Post("/history/:id/export", h.HandleSaveHistory)
	app.Get("/exports/sinks", h.HandleSinks)
}

// HandleDownloadReport downloads one category of the last report as CSV.
// @Summary Download report CSV
// @Tags export
// @Produce text/csv
// @Param category path string true "missing or new"
// @Success 200 {string} string "CSV file"
// @Failure 422 {object} map[string]string "No items to export"
// @Router /report/{category}/export [get]
func (h *Handler) HandleDownloadReport(c *fiber.Ctx) error {
	cat, err := reconcile.ParseCategory(c.Params("category"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	report, err := h.service.ReportCSV(cat)
	if err != nil {
		return h.exportError(c, err)
	}
	return download(c, report)
}

// HandleSaveReport stores one category of the last report through a sink.
// @Summary Save report CSV
// @Tags export
// @Produce json
// @Param category path string true "missing or new"
// @Param sink query string false "file or object"
// @Success 201 {object} Receipt
// @Failure 422 {object} map[string]string "No items to export"
// @Router /report/{category}/export [post]
func (h *Handler) HandleSaveReport(c *fiber.Ctx) error {
	cat, err := reconcile.ParseCategory(c.Params("category"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	receipt, err := h.service.ExportReport(c.Context(), cat, c.Query("sink"))
	if err != nil {
		return h.exportError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(receipt)
}

// HandleDownloadHistory downloads the missing items of a history entry.
// @Summary Download history CSV
// @Tags export
// @Produce text/csv
// @Param id path int true "Entry ID"
// @Success 200 {string} string "CSV file"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 422 {object} map[string]string "No items to export"
// @Router /history/{id}/export [get]
func (h *Handler) HandleDownloadHistory(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid history id"})
	}
	report, err := h.service.HistoryCSV(id)
	if err != nil {
		return h.exportError(c, err)
	}
	return download(c, report)
}

// HandleSaveHistory stores the missing items of a history entry.
// @Summary Save history CSV
// @Tags export
// @Produce json
// @Param id path int true "Entry ID"
// @Param sink query string false "file or object"
// @Success 201 {object} Receipt
// @Failure 422 {object} map[string]string "No items to export"
// @Router /history/{id}/export [post]
func (h *Handler) HandleSaveHistory(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid history id"})
	}
	receipt, err := h.service.ExportHistory(c.Context(), id, c.Query("sink"))
	if err != nil {
		return h.exportError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(receipt)
}

// HandleSinks lists the configured sinks.
// @Summary Export sinks
// @Tags export
// @Produce json
// @Success 200 {array} string
// @Router /exports/sinks [get]
func (h *Handler) HandleSinks(c *fiber.Ctx) error {
	return c.JSON(h.service.Sinks())
}

func download(c *fiber.Ctx, report *Report) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.Filename))
	return c.Send(report.Data)
}

func (h *Handler) exportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrEmptyExportSet):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"notice": Notice})
	case errors.Is(err, ErrNoReport), errors.Is(err, scan.ErrEntryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrNotExportable), errors.Is(err, ErrUnknownSink):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		logger.WithRayID(h.service.logger, c).Error("Export failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
}
