package reconcile

import (
	"showroom-audit/core/item"

	"github.com/shopspring/decimal"
)

// Reconcile computes the found/missing/new diff between the master inventory
// and the scanned records. Neither input is modified; the returned slices are
// never nil.
func Reconcile(master, scanned []item.Record) ScanResult {
	scannedSet := item.EPCSet(scanned)
	masterSet := item.EPCSet(master)

	result := ScanResult{
		Found:   make([]item.Record, 0, len(scanned)),
		Missing: make([]item.Record, 0),
		New:     make([]item.Record, 0),
	}

	for _, rec := range master {
		if _, ok := scannedSet[rec.EPC]; ok {
			result.Found = append(result.Found, rec)
		} else {
			result.Missing = append(result.Missing, rec)
		}
	}

	for _, rec := range scanned {
		if _, ok := masterSet[rec.EPC]; !ok {
			result.New = append(result.New, rec)
		}
	}

	return result
}

// Summarize returns counts and stock values for a result.
func Summarize(result ScanResult) Summary {
	return Summary{
		Found:        len(result.Found),
		Missing:      len(result.Missing),
		New:          len(result.New),
		FoundValue:   TotalValue(result.Found),
		MissingValue: TotalValue(result.Missing),
	}
}

// TotalValue sums the prices of records.
func TotalValue(records []item.Record) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range records {
		total = total.Add(decimal.NewFromFloat(rec.Price))
	}
	return total
}
