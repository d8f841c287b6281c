// Package utils provides common utility functions for the showroom-audit application.
// It includes lenient numeric parsing used by the inventory importers and
// loose type conversion for values scanned from database rows.
package utils
