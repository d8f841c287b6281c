package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"showroom-audit/core/metrics"
	"showroom-audit/core/reconcile"
	"showroom-audit/core/storage"
	"showroom-audit/feature/scan"

	"go.uber.org/zap"
)

var (
	// ErrNoReport is returned when no scan has been finished yet.
	ErrNoReport = errors.New("no scan has been finished yet")
	// ErrNotExportable is returned for categories that cannot be exported.
	ErrNotExportable = errors.New("only missing and new items can be exported")
	// ErrUnknownSink is returned when a sink is not configured.
	ErrUnknownSink = errors.New("unknown or unconfigured export sink")
)

// Report is a rendered CSV ready to be downloaded or stored.
type Report struct {
	Filename string
	Data     []byte
	Count    int
	Category reconcile.Category
}

// Service renders scan reports as CSV and stores them through sinks.
type Service struct {
	scans  *scan.Service
	cache  *Cache
	sinks  map[string]Sink
	logger *zap.Logger
}

// NewService creates a new export service. The object sink is only
// registered when client is not nil.
func NewService(scans *scan.Service, logger *zap.Logger, cfg Config, client storage.Client, bucket string) *Service {
	s := &Service{
		scans:  scans,
		cache:  NewCache(cfg.CacheSize, time.Duration(cfg.CacheTTLSeconds)*time.Second),
		sinks:  map[string]Sink{SinkFile: &FileSink{Dir: cfg.Dir}},
		logger: logger,
	}
	if client != nil {
		s.sinks[SinkObject] = &ObjectSink{Client: client, Bucket: bucket, Prefix: cfg.Prefix}
	}
	scans.History().OnClear(s.cache.Purge)
	return s
}

// Cache returns the rendered report cache.
func (s *Service) Cache() *Cache {
	return s.cache
}

// Sinks returns the names of the configured sinks.
func (s *Service) Sinks() []string {
	names := []string{SinkFile}
	if _, ok := s.sinks[SinkObject]; ok {
		names = append(names, SinkObject)
	}
	return names
}

// ReportCSV renders one category of the last finished scan.
func (s *Service) ReportCSV(cat reconcile.Category) (*Report, error) {
	if !Exportable(cat) {
		return nil, ErrNotExportable
	}
	entry, ok := s.scans.LastResult()
	if !ok {
		return nil, ErrNoReport
	}
	return s.render(entry, cat, SessionFilename(cat))
}

// HistoryCSV renders the missing items of a history entry.
func (s *Service) HistoryCSV(id int64) (*Report, error) {
	entry, err := s.scans.History().Get(id)
	if err != nil {
		return nil, err
	}
	return s.render(entry, reconcile.CategoryMissing, HistoryFilename(entry.ID, entry.CreatedAt))
}

// ExportReport stores one category of the last finished scan through a sink.
func (s *Service) ExportReport(ctx context.Context, cat reconcile.Category, sinkName string) (*Receipt, error) {
	report, err := s.ReportCSV(cat)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, report, sinkName)
}

// ExportHistory stores the missing items of a history entry through a sink.
func (s *Service) ExportHistory(ctx context.Context, id int64, sinkName string) (*Receipt, error) {
	report, err := s.HistoryCSV(id)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, report, sinkName)
}

func (s *Service) render(entry scan.Entry, cat reconcile.Category, filename string) (*Report, error) {
	records := entry.Result.Items(cat)
	if len(records) == 0 {
		return nil, ErrEmptyExportSet
	}

	key := fmt.Sprintf("%d/%s", entry.ID, cat)
	data, err := s.cache.GetOrRender(key, func() ([]byte, error) {
		return Render(records)
	})
	if err != nil {
		return nil, err
	}
	return &Report{Filename: filename, Data: data, Count: len(records), Category: cat}, nil
}

func (s *Service) save(ctx context.Context, report *Report, sinkName string) (*Receipt, error) {
	if sinkName == "" {
		sinkName = SinkFile
	}
	sink, ok := s.sinks[sinkName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSink, sinkName)
	}

	receipt, err := store(ctx, sink, report.Data, report.Filename, report.Count)
	if err != nil {
		s.logger.Error("Export failed",
			zap.String("sink", sinkName),
			zap.String("filename", report.Filename),
			zap.Error(err))
		return nil, err
	}

	metrics.Exports.WithLabelValues(sinkName, string(report.Category)).Inc()
	s.logger.Info("Report exported",
		zap.String("sink", sinkName),
		zap.String("location", string(receipt.Location)),
		zap.Int("count", receipt.Count))
	return receipt, nil
}
