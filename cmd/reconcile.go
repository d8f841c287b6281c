package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"showroom-audit/core/config"
	"showroom-audit/core/logger"
	"showroom-audit/core/reconcile"
	"showroom-audit/core/rfid"
	"showroom-audit/feature/export"
	"showroom-audit/feature/inventory"
	"showroom-audit/feature/inventory/csvimport"
	"showroom-audit/feature/scan"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the offline reconcile command
	masterPath string
	tagsPath   string
	exportDir  string
)

// reconcileCmd reconciles a tag dump against a master inventory file.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a tag dump against a master inventory CSV",
	Long: `Replays a file of tag identifiers (one per line) as a scan session against
a master inventory CSV and reports found, missing and new items.

Examples:
  # Report only
  reconcile --master stock.csv --tags floor.txt

  # Also write missing_items_report.csv and new_items_report.csv
  reconcile --master stock.csv --tags floor.txt --export-dir ./reports`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&masterPath, "master", "", "Master inventory CSV file")
	reconcileCmd.Flags().StringVar(&tagsPath, "tags", "", "Tag dump, one identifier per line")
	reconcileCmd.Flags().StringVar(&exportDir, "export-dir", "", "Write missing and new item reports to this directory")
	_ = reconcileCmd.MarkFlagRequired("master")
	_ = reconcileCmd.MarkFlagRequired("tags")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	master, err := readMaster(masterPath)
	if err != nil {
		return err
	}
	epcs, err := readTags(tagsPath)
	if err != nil {
		return err
	}
	l.Info("Starting reconciliation", zap.Int("master", len(master.Records)), zap.Int("tags", len(epcs)))

	replay := rfid.NewReplay(epcs, l)
	session := scan.NewSession(replay, inventory.NewStore(master.Records), scan.NewHistory(0), l)
	defer session.Close()

	if err := session.Start(ctx); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	if _, err := replay.Play(ctx); err != nil {
		return fmt.Errorf("failed to replay tags: %w", err)
	}
	entry, err := session.Finish(ctx)
	if err != nil {
		return fmt.Errorf("failed to finish session: %w", err)
	}

	printScanReport(l, entry)

	if exportDir == "" {
		return nil
	}
	sink := &export.FileSink{Dir: exportDir}
	for _, cat := range []reconcile.Category{reconcile.CategoryMissing, reconcile.CategoryNew} {
		receipt, err := export.Export(ctx, sink, entry.Result.Items(cat), export.SessionFilename(cat))
		if errors.Is(err, export.ErrEmptyExportSet) {
			l.Info(export.Notice, zap.String("category", string(cat)))
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to export %s items: %w", cat, err)
		}
		l.Info("Report written", zap.String("path", string(receipt.Location)), zap.Int("count", receipt.Count))
	}
	return nil
}

func readMaster(path string) (*csvimport.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open master inventory: %w", err)
	}
	defer f.Close()

	result, err := csvimport.ParseDetailed(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse master inventory: %w", err)
	}
	if len(result.Records) == 0 {
		return nil, inventory.ErrNoValidItems
	}
	return result, nil
}

// readTags reads one tag identifier per line, skipping blanks.
func readTags(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tag dump: %w", err)
	}
	defer f.Close()

	var epcs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if epc := strings.TrimSpace(scanner.Text()); epc != "" {
			epcs = append(epcs, epc)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tag dump: %w", err)
	}
	return epcs, nil
}

// printScanReport prints a reconciliation summary using logger.
func printScanReport(l *zap.Logger, entry scan.Entry) {
	s := entry.Summary
	l.Info("Reconciliation report",
		zap.Int("found", s.Found),
		zap.Int("missing", s.Missing),
		zap.Int("new", s.New),
		zap.String("found_value", s.FoundValue.String()),
		zap.String("missing_value", s.MissingValue.String()),
	)

	// Show a sample of missing items (max 5 for logger)
	missing := entry.Result.Missing
	maxShow := 5
	if len(missing) < maxShow {
		maxShow = len(missing)
	}
	for _, rec := range missing[:maxShow] {
		l.Info("Missing item",
			zap.String("epc", rec.EPC),
			zap.String("name", rec.Name),
			zap.String("area", rec.ShowroomArea),
			zap.String("counter", rec.CounterName),
		)
	}
	if len(missing) > maxShow {
		l.Info("Additional missing items not shown", zap.Int("count", len(missing)-maxShow))
	}
}
