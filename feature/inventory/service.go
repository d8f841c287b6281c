package inventory

import (
	"context"
	"fmt"
	"io"

	"showroom-audit/core/item"
	"showroom-audit/core/metrics"
	"showroom-audit/core/reconcile"
	"showroom-audit/core/storage"
	"showroom-audit/feature/inventory/csvimport"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Import sources
const (
	SourceUpload   = "upload"
	SourceObject   = "object"
	SourceDatabase = "database"
)

// ImportReport describes a successful import.
type ImportReport struct {
	// Source is where the records came from.
	Source string `json:"source"`
	// Count is the new master inventory size.
	Count int `json:"count"`
	// Warnings lists numeric cells read as 0.
	Warnings []csvimport.Warning `json:"warnings"`
	// Dropped counts rows skipped for lacking a tag identifier.
	Dropped int `json:"dropped"`
	// Message is the operator-facing confirmation.
	Message string `json:"message"`
}

// Stats summarizes the master inventory.
type Stats struct {
	TotalItems int             `json:"total_items"`
	TotalValue decimal.Decimal `json:"total_value"`
	// Categories counts items per category.
	Categories map[string]int `json:"categories"`
	// Areas counts items per showroom area.
	Areas map[string]int `json:"areas"`
}

// Service handles master inventory operations.
type Service struct {
	store  *Store
	logger *zap.Logger
	cfg    Config

	client storage.Client
	bucket string

	db    *gorm.DB
	table string
}

// NewService creates a new inventory service. client and db may be nil, in
// which case the matching import source reports ErrSourceUnavailable.
func NewService(store *Store, logger *zap.Logger, cfg Config, client storage.Client, bucket string, db *gorm.DB, table string) *Service {
	return &Service{
		store:  store,
		logger: logger,
		cfg:    cfg,
		client: client,
		bucket: bucket,
		db:     db,
		table:  table,
	}
}

// Store returns the master inventory store.
func (s *Service) Store() *Store {
	return s.store
}

// ImportCSV parses CSV text and replaces the master inventory with it.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (*ImportReport, error) {
	return s.apply(SourceUpload, func() (*csvimport.Result, error) {
		return csvimport.ParseDetailed(r)
	})
}

// ImportObject imports a CSV stored in the object storage bucket.
func (s *Service) ImportObject(ctx context.Context, objectName string) (*ImportReport, error) {
	return s.apply(SourceObject, func() (*csvimport.Result, error) {
		return s.readObject(ctx, objectName)
	})
}

// ImportDatabase imports the master inventory from the point-of-sale stock table.
func (s *Service) ImportDatabase(ctx context.Context) (*ImportReport, error) {
	return s.apply(SourceDatabase, func() (*csvimport.Result, error) {
		return s.readTable(ctx)
	})
}

// ListImportObjects lists CSV files available under the import prefix.
func (s *Service) ListImportObjects(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrSourceUnavailable
	}
	return storage.ListNames(ctx, s.client, s.bucket, s.cfg.ImportPrefix, ".csv")
}

func (s *Service) apply(source string, load func() (*csvimport.Result, error)) (*ImportReport, error) {
	res, err := load()
	if err != nil {
		metrics.Imports.WithLabelValues(source, metrics.OutcomeFailed).Inc()
		s.logger.Warn("Inventory import failed", zap.String("source", source), zap.Error(err))
		return nil, err
	}
	if len(res.Records) == 0 {
		metrics.Imports.WithLabelValues(source, metrics.OutcomeEmpty).Inc()
		s.logger.Warn("Inventory import had no valid items",
			zap.String("source", source),
			zap.Int("dropped", res.Dropped),
		)
		return nil, ErrNoValidItems
	}

	s.store.Replace(res.Records)

	metrics.Imports.WithLabelValues(source, metrics.OutcomeSuccess).Inc()
	metrics.ImportWarnings.Add(float64(len(res.Warnings)))
	s.logger.Info("Inventory imported",
		zap.String("source", source),
		zap.Int("count", len(res.Records)),
		zap.Int("warnings", len(res.Warnings)),
		zap.Int("dropped", res.Dropped),
	)

	warnings := res.Warnings
	if warnings == nil {
		warnings = []csvimport.Warning{}
	}
	return &ImportReport{
		Source:   source,
		Count:    len(res.Records),
		Warnings: warnings,
		Dropped:  res.Dropped,
		Message:  SuccessMessage(len(res.Records)),
	}, nil
}

// List returns the master records matching term.
func (s *Service) List(term string) []item.Record {
	return item.Filter(s.store.Snapshot(), term)
}

// Get returns the master record with the given EPC.
func (s *Service) Get(epc string) (item.Record, error) {
	for _, rec := range s.store.Snapshot() {
		if rec.EPC == epc {
			return rec, nil
		}
	}
	return item.Record{}, fmt.Errorf("%w: %s", ErrNotFound, epc)
}

// Stats summarizes the master inventory.
func (s *Service) Stats() Stats {
	records := s.store.Snapshot()
	stats := Stats{
		TotalItems: len(records),
		TotalValue: reconcile.TotalValue(records),
		Categories: make(map[string]int),
		Areas:      make(map[string]int),
	}
	for _, rec := range records {
		stats.Categories[rec.Category]++
		stats.Areas[rec.ShowroomArea]++
	}
	return stats
}
