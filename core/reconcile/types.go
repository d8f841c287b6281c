package reconcile

import (
	"fmt"

	"showroom-audit/core/item"

	"github.com/shopspring/decimal"
)

// Category names one of the three buckets of a scan result.
type Category string

const (
	// CategoryFound holds master items that were scanned.
	CategoryFound Category = "found"
	// CategoryMissing holds master items that were not scanned.
	CategoryMissing Category = "missing"
	// CategoryNew holds scanned items absent from the master.
	CategoryNew Category = "new"
)

// Categories lists every category in report order.
var Categories = []Category{CategoryFound, CategoryMissing, CategoryNew}

// ParseCategory converts a string into a Category.
// "scanned" is accepted as an alias of "found".
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryFound, "scanned":
		return CategoryFound, nil
	case CategoryMissing:
		return CategoryMissing, nil
	case CategoryNew:
		return CategoryNew, nil
	default:
		return "", fmt.Errorf("unknown report category %q", s)
	}
}

// ScanResult is the outcome of reconciling one scan session.
// The three sequences are disjoint by EPC.
type ScanResult struct {
	// Found contains master records that were scanned.
	Found []item.Record `json:"found"`

	// Missing contains master records that were not scanned.
	Missing []item.Record `json:"missing"`

	// New contains scanned records unknown to the master.
	New []item.Record `json:"new"`
}

// Items returns the records of a category.
func (r ScanResult) Items(cat Category) []item.Record {
	switch cat {
	case CategoryFound:
		return r.Found
	case CategoryMissing:
		return r.Missing
	case CategoryNew:
		return r.New
	default:
		return nil
	}
}

// Summary provides aggregate figures for a scan result.
type Summary struct {
	// Found counts master items that were scanned.
	Found int `json:"found"`

	// Missing counts master items that were not scanned.
	Missing int `json:"missing"`

	// New counts scanned items unknown to the master.
	New int `json:"new"`

	// FoundValue is the summed price of found items.
	FoundValue decimal.Decimal `json:"found_value"`

	// MissingValue is the summed price of missing items.
	MissingValue decimal.Decimal `json:"missing_value"`
}
