package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Path is where the Prometheus scrape endpoint is mounted.
const Path = "/metrics"

// Feature exposes the default Prometheus registry over Fiber.
type Feature struct{}

// NewFeature creates the metrics feature.
func NewFeature() *Feature {
	return &Feature{}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "metrics"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the scrape endpoint.
func (f *Feature) Load(app fiber.Router) error {
	app.Get(Path, adaptor.HTTPHandler(promhttp.Handler()))
	return nil
}
