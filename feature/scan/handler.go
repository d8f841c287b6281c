package scan

import (
	"errors"
	"strconv"

	"showroom-audit/core/logger"
	"showroom-audit/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for scan sessions and history.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the scan routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/scan")
	group.Get("/", h.HandleStatus)
	group.Post("/start", h.HandleStart)
	group.Post("/stop", h.HandleStop)
	group.Post("/finish", h.HandleFinish)

	app.Get("/history", h.HandleListHistory)
	app.Get("/history/:id", h.HandleGetHistory)
	app.Get("/report", h.HandleLastReport)
	app.Get("/report/:category", h.HandleReportCategory)
	app.Get("/dashboard", h.HandleDashboard)
}

// HandleStart starts a scan session.
// @Summary Start scan
// @Description Snapshot the master inventory and start collecting tag reads. A no-op when a scan is already running.
// @Tags scan
// @Produce json
// @Success 200 {object} Status
// @Failure 502 {object} map[string]string "Reader failure"
// @Router /scan/start [post]
func (h *Handler) HandleStart(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	if err := h.service.Start(c.Context()); err != nil {
		l.Error("Failed to start scan", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(h.service.Status())
}

// HandleStop pauses the scan session.
// @Summary Stop scan
// @Tags scan
// @Produce json
// @Success 200 {object} Status
// @Router /scan/stop [post]
func (h *Handler) HandleStop(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	if err := h.service.Stop(c.Context()); err != nil {
		l.Warn("Reader did not stop cleanly", zap.Error(err))
	}
	return c.JSON(h.service.Status())
}

// HandleFinish finishes the scan and returns the reconciled result.
// @Summary Finish scan
// @Tags scan
// @Produce json
// @Success 200 {object} Entry
// @Failure 409 {object} map[string]string "Already finalizing"
// @Router /scan/finish [post]
func (h *Handler) HandleFinish(c *fiber.Ctx) error {
	entry, err := h.service.Finish(c.Context())
	if err != nil {
		if errors.Is(err, ErrFinalizing) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(entry)
}

// HandleStatus returns the session state and the scanned items.
// @Summary Scan status
// @Tags scan
// @Produce json
// @Success 200 {object} Status
// @Router /scan [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

// HandleListHistory returns finished scans, newest first.
// @Summary Scan history
// @Tags history
// @Produce json
// @Success 200 {array} Entry
// @Router /history [get]
func (h *Handler) HandleListHistory(c *fiber.Ctx) error {
	return c.JSON(h.service.History().List())
}

// HandleGetHistory returns one history entry.
// @Summary Scan history entry
// @Tags history
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} Entry
// @Failure 404 {object} map[string]string "Not found"
// @Router /history/{id} [get]
func (h *Handler) HandleGetHistory(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid history id"})
	}
	entry, err := h.service.History().Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(entry)
}

// HandleLastReport returns the last finished scan.
// @Summary Last report
// @Tags report
// @Produce json
// @Success 200 {object} Entry
// @Failure 404 {object} map[string]string "No scan finished yet"
// @Router /report [get]
func (h *Handler) HandleLastReport(c *fiber.Ctx) error {
	entry, ok := h.service.LastResult()
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No scan has been finished yet"})
	}
	return c.JSON(entry)
}

// HandleReportCategory returns one category of the last finished scan.
// @Summary Last report category
// @Tags report
// @Produce json
// @Param category path string true "found, missing or new"
// @Success 200 {array} item.Record
// @Failure 400 {object} map[string]string "Unknown category"
// @Router /report/{category} [get]
func (h *Handler) HandleReportCategory(c *fiber.Ctx) error {
	cat, err := reconcile.ParseCategory(c.Params("category"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	entry, ok := h.service.LastResult()
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No scan has been finished yet"})
	}
	return c.JSON(entry.Result.Items(cat))
}

// HandleDashboard returns the home screen figures.
// @Summary Dashboard
// @Tags report
// @Produce json
// @Success 200 {object} Dashboard
// @Router /dashboard [get]
func (h *Handler) HandleDashboard(c *fiber.Ctx) error {
	return c.JSON(h.service.Dashboard())
}
