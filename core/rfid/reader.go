package rfid

import (
	"context"
	"errors"
)

// Event is one tag read reported by the hardware.
type Event struct {
	// EPC is the tag identifier.
	EPC string `json:"epc" validate:"required,max=128,epc"`
	// RSSI is the signal strength in dBm. Informational only.
	RSSI int `json:"rssi"`
}

// Handler receives tag events.
type Handler func(Event)

// Reader is the hardware boundary. Implementations must deliver events to
// subscribers one at a time, in arrival order, and only while scanning.
type Reader interface {
	// Initialize prepares the reader. It is safe to call more than once.
	Initialize(ctx context.Context) error
	// StartScan begins reporting tag events.
	StartScan(ctx context.Context) error
	// StopScan stops reporting tag events.
	StopScan(ctx context.Context) error
	// Subscribe registers h and returns a function that removes it.
	// The returned function may be called any number of times.
	Subscribe(h Handler) (unsubscribe func())
}

// ErrNotInitialized is returned by StartScan before Initialize succeeded.
var ErrNotInitialized = errors.New("rfid reader is not initialized")

// Config holds configuration for the reader bridge.
type Config struct {
	// MaxBatch caps the number of events accepted in one POST.
	MaxBatch int `mapstructure:"max_batch" default:"256"`
}
