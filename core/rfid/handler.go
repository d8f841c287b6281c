package rfid

import (
	"showroom-audit/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EventBatch is the payload posted by the native reader wrapper.
type EventBatch struct {
	Events []Event `json:"events"`
}

// HTTPHandler handles HTTP requests from the native reader wrapper.
type HTTPHandler struct {
	bridge   *Bridge
	logger   *zap.Logger
	maxBatch int
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(bridge *Bridge, logger *zap.Logger, maxBatch int) *HTTPHandler {
	if maxBatch <= 0 {
		maxBatch = 256
	}
	return &HTTPHandler{bridge: bridge, logger: logger, maxBatch: maxBatch}
}

// RegisterRoutes registers the rfid routes.
func (h *HTTPHandler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/rfid")
	group.Post("/events", h.HandlePostEvents)
	group.Get("/status", h.HandleStatus)
}

// HandlePostEvents accepts a batch of tag reads.
// @Summary Post tag events
// @Description Push tag reads from the native reader wrapper. Events are dropped while no scan is active.
// @Tags rfid
// @Accept json
// @Produce json
// @Param batch body EventBatch true "Tag events"
// @Success 202 {object} map[string]int "Accepted and dropped counts"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Router /rfid/events [post]
func (h *HTTPHandler) HandlePostEvents(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var batch EventBatch
	if err := c.BodyParser(&batch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if len(batch.Events) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No events"})
	}
	if len(batch.Events) > h.maxBatch {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "Too many events"})
	}
	for _, ev := range batch.Events {
		if err := ValidateEvent(ev); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(FormatValidationError(err))
		}
	}

	accepted, dropped := 0, 0
	for _, ev := range batch.Events {
		if h.bridge.Publish(ev) {
			accepted++
		} else {
			dropped++
		}
	}
	if dropped > 0 {
		l.Debug("Tag events dropped", zap.Int("dropped", dropped))
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"accepted": accepted,
		"dropped":  dropped,
	})
}

// HandleStatus reports whether a scan is running.
// @Summary Reader status
// @Tags rfid
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /rfid/status [get]
func (h *HTTPHandler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"scanning": h.bridge.Scanning()})
}
