package inventory

import (
	"errors"
	"fmt"

	"showroom-audit/feature/inventory/csvimport"
)

var (
	// ErrNoValidItems is returned when an import yields zero records.
	// The master inventory is left unchanged.
	ErrNoValidItems = errors.New("no valid items found")

	// ErrSourceUnavailable is returned when an import source is not configured.
	ErrSourceUnavailable = errors.New("import source unavailable")

	// ErrRead wraps failures reading the import source itself.
	ErrRead = errors.New("failed to read import source")

	// ErrNotFound is returned when an EPC is not in the master inventory.
	ErrNotFound = errors.New("item not found")
)

// UserMessage converts an import error into a single message for the operator.
// Only file format errors carry their own text; anything else gets a generic
// message so internal details stay in the logs.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoValidItems):
		return "No valid items found in the provided CSV file."
	case errors.Is(err, ErrSourceUnavailable):
		return "This import source is not configured."
	case errors.Is(err, ErrRead), errors.Is(err, csvimport.ErrRead), errors.Is(err, ErrTableNotFound):
		return "An error occurred while reading the file."
	case errors.Is(err, csvimport.ErrEmptyOrTooShort), errors.Is(err, csvimport.ErrMalformedHeader):
		return fmt.Sprintf("Failed to import inventory. Please check the file format. Error: %s", err.Error())
	default:
		return "Failed to import inventory. Please check the file format."
	}
}

// SuccessMessage is shown after a successful import.
func SuccessMessage(count int) string {
	return fmt.Sprintf("Inventory updated successfully! Total stock is now %d. Scan history has been cleared.", count)
}
