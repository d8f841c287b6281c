package inventory

import (
	"bytes"
	"errors"

	"showroom-audit/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the master inventory.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Get("/", h.HandleList)
	group.Get("/stats", h.HandleStats)
	group.Post("/import", h.HandleImport)
	group.Get("/import/objects", h.HandleListObjects)
	group.Post("/import/object", h.HandleImportObject)
	group.Post("/import/database", h.HandleImportDatabase)
	group.Get("/:epc", h.HandleGet)
}

// HandleImport replaces the master inventory with an uploaded CSV.
// @Summary Import inventory CSV
// @Description Upload a CSV as multipart field "file" or as the raw request body. Replaces the master inventory and clears scan history.
// @Tags inventory
// @Accept multipart/form-data,text/csv
// @Produce json
// @Param file formData file false "Inventory CSV"
// @Success 200 {object} ImportReport "Import report"
// @Failure 400 {object} map[string]string "Malformed CSV"
// @Failure 422 {object} map[string]string "No valid items"
// @Router /inventory/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			l.Error("Failed to open uploaded file", zap.Error(err))
			return h.importError(c, ErrRead)
		}
		defer f.Close()

		report, err := h.service.ImportCSV(c.Context(), f)
		if err != nil {
			return h.importError(c, err)
		}
		return c.JSON(report)
	}

	report, err := h.service.ImportCSV(c.Context(), bytes.NewReader(c.Body()))
	if err != nil {
		return h.importError(c, err)
	}
	return c.JSON(report)
}

// HandleListObjects lists CSV uploads in object storage.
// @Summary List importable objects
// @Tags inventory
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /inventory/import/objects [get]
func (h *Handler) HandleListObjects(c *fiber.Ctx) error {
	names, err := h.service.ListImportObjects(c.Context())
	if err != nil {
		if errors.Is(err, ErrSourceUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": UserMessage(err)})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if names == nil {
		names = []string{}
	}
	return c.JSON(fiber.Map{"objects": names})
}

// HandleImportObject imports a CSV from object storage.
// @Summary Import inventory from object storage
// @Tags inventory
// @Produce json
// @Param name query string true "Object name"
// @Success 200 {object} ImportReport "Import report"
// @Failure 400 {object} map[string]string "Malformed CSV"
// @Router /inventory/import/object [post]
func (h *Handler) HandleImportObject(c *fiber.Ctx) error {
	report, err := h.service.ImportObject(c.Context(), c.Query("name"))
	if err != nil {
		return h.importError(c, err)
	}
	return c.JSON(report)
}

// HandleImportDatabase imports the master inventory from the POS database.
// @Summary Import inventory from the POS database
// @Tags inventory
// @Produce json
// @Success 200 {object} ImportReport "Import report"
// @Failure 503 {object} map[string]string "Database not configured"
// @Router /inventory/import/database [post]
func (h *Handler) HandleImportDatabase(c *fiber.Ctx) error {
	report, err := h.service.ImportDatabase(c.Context())
	if err != nil {
		return h.importError(c, err)
	}
	return c.JSON(report)
}

// HandleList returns the master inventory, optionally filtered.
// @Summary List inventory
// @Tags inventory
// @Produce json
// @Param q query string false "Search term (name, EPC, area, counter, category)"
// @Success 200 {array} item.Record
// @Router /inventory [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.service.List(c.Query("q")))
}

// HandleStats returns master inventory totals.
// @Summary Inventory stats
// @Tags inventory
// @Produce json
// @Success 200 {object} Stats
// @Router /inventory/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats())
}

// HandleGet returns one master record.
// @Summary Get inventory item
// @Tags inventory
// @Produce json
// @Param epc path string true "Tag identifier"
// @Success 200 {object} item.Record
// @Failure 404 {object} map[string]string "Not found"
// @Router /inventory/{epc} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	rec, err := h.service.Get(c.Params("epc"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rec)
}

func (h *Handler) importError(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	switch {
	case errors.Is(err, ErrNoValidItems):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrSourceUnavailable):
		status = fiber.StatusServiceUnavailable
	case errors.Is(err, ErrRead), errors.Is(err, ErrTableNotFound):
		status = fiber.StatusBadGateway
	}
	return c.Status(status).JSON(fiber.Map{"error": UserMessage(err)})
}
