package rfid

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface for the reader bridge.
type Feature struct {
	handler *HTTPHandler
}

// NewFeature creates the reader bridge feature.
func NewFeature(bridge *Bridge, logger *zap.Logger, cfg Config) *Feature {
	return &Feature{handler: NewHTTPHandler(bridge, logger, cfg.MaxBatch)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "rfid"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
