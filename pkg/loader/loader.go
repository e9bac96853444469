// CSV to PostgreSQL import pipeline.
//
// An import runs in stages: parse, validate, clean, load in batches,
// refresh aggregate tables, report.
package loader

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/cartload/cartload/pkg/domain"
	korder "github.com/cartload/cartload/pkg/domain/order/db"
	xe "github.com/cartload/cartload/pkg/errors"
	kcsv "github.com/cartload/cartload/pkg/loader/csv"
	"github.com/cartload/cartload/pkg/loader/clean"
	"github.com/cartload/cartload/pkg/loader/validate"
)

const (
	DefaultBatchSize = 1000

	// progressEvery is how many loaded records pass between progress logs.
	progressEvery = 5000
)

type Importer struct {
	orders       korder.OrderInterface
	batchSize    int
	truncate     bool
	trimOutliers bool
	logger       logrus.FieldLogger
}

type Option func(*Importer) *Importer

// WithBatchSize sets how many records go into one bulk insert.
// Values below 1 fall back to DefaultBatchSize.
func WithBatchSize(n int) Option {
	return func(im *Importer) *Importer {
		if 0 < n {
			im.batchSize = n
		}
		return im
	}
}

// WithTruncate empties the sales tables before loading.
func WithTruncate(truncate bool) Option {
	return func(im *Importer) *Importer {
		im.truncate = truncate
		return im
	}
}

// WithOutlierTrimming drops records with outlying total values
// during cleaning.
func WithOutlierTrimming(trim bool) Option {
	return func(im *Importer) *Importer {
		im.trimOutliers = trim
		return im
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(im *Importer) *Importer {
		im.logger = logger
		return im
	}
}

func New(orders korder.OrderInterface, options ...Option) *Importer {
	im := &Importer{
		orders:    orders,
		batchSize: DefaultBatchSize,
		logger:    logrus.StandardLogger(),
	}
	for _, opt := range options {
		im = opt(im)
	}
	return im
}

// Result is what an import run produced.
type Result struct {
	// Issues found by validation. They did not stop the import.
	Issues []string

	// Cleaning counts records dropped, deduplicated or repaired.
	Cleaning clean.Stats

	// Imported is how many records reached the database.
	Imported int

	Summary    domain.ImportSummary
	Categories []domain.CategoryStat
}

// ImportFile runs the pipeline over a CSV file on disk.
func (im *Importer) ImportFile(ctx context.Context, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, xe.Wrap(err)
	}
	defer f.Close()
	return im.Import(ctx, f)
}

// Import runs the pipeline over CSV content.
//
// Validation issues are logged and recorded in the Result but do not
// abort the run; missing required columns do.
func (im *Importer) Import(ctx context.Context, r io.Reader) (Result, error) {
	table, err := kcsv.Read(r)
	if err != nil {
		return Result{}, xe.WrapWithNote("parsing csv", err)
	}
	im.logger.WithField("records", len(table.Records)).Info("csv parsed")

	issues, err := validate.Structure(table)
	if err != nil {
		return Result{}, err
	}
	for _, issue := range issues {
		im.logger.Warn(issue)
	}

	orders, stats := clean.Records(table.Records, clean.Options{
		TrimOutliers: im.trimOutliers,
	})
	im.logger.WithFields(logrus.Fields{
		"kept":    stats.Kept,
		"dropped": stats.Dropped(),
		"fixed":   stats.FixedTotals,
	}).Info("records cleaned")

	if im.truncate {
		if err := im.orders.Truncate(ctx); err != nil {
			return Result{}, xe.WrapWithNote("truncating sales tables", err)
		}
		im.logger.Info("sales tables truncated")
	}

	imported := 0
	lastProgress := 0
	for start := 0; start < len(orders); start += im.batchSize {
		end := start + im.batchSize
		if len(orders) < end {
			end = len(orders)
		}
		n, err := im.orders.BulkPut(ctx, orders[start:end])
		imported += n
		if err != nil {
			return Result{}, xe.WrapWithNote(
				fmt.Sprintf("loading batch at record %d", start), err,
			)
		}
		if progressEvery <= imported-lastProgress {
			lastProgress = imported
			im.logger.WithFields(logrus.Fields{
				"imported": imported,
				"total":    len(orders),
			}).Info("loading")
		}
	}
	im.logger.WithField("imported", imported).Info("load finished")

	total, err := im.orders.Count(ctx)
	if err != nil {
		return Result{}, xe.WrapWithNote("verifying row count", err)
	}
	if im.truncate && total != imported {
		im.logger.WithFields(logrus.Fields{
			"imported": imported,
			"stored":   total,
		}).Warn("row count mismatch after load")
	}

	if err := im.orders.RefreshAggregates(ctx); err != nil {
		return Result{}, xe.WrapWithNote("refreshing aggregates", err)
	}

	summary, err := im.orders.Summary(ctx)
	if err != nil {
		return Result{}, xe.Wrap(err)
	}
	categories, err := im.orders.CategoryBreakdown(ctx)
	if err != nil {
		return Result{}, xe.Wrap(err)
	}

	return Result{
		Issues:     issues,
		Cleaning:   stats,
		Imported:   imported,
		Summary:    summary,
		Categories: categories,
	}, nil
}

// Render formats the result as a plain text report.
func (r Result) Render() string {
	sb := new(strings.Builder)

	fmt.Fprintln(sb, "=== import report ===")
	fmt.Fprintf(sb, "records read:       %d\n", r.Cleaning.Read)
	fmt.Fprintf(sb, "records dropped:    %d (incomplete %d, invalid %d, duplicate %d, outlier %d)\n",
		r.Cleaning.Dropped(),
		r.Cleaning.DroppedIncomplete, r.Cleaning.DroppedInvalid,
		r.Cleaning.DroppedDuplicate, r.Cleaning.DroppedOutlier,
	)
	fmt.Fprintf(sb, "totals recomputed:  %d\n", r.Cleaning.FixedTotals)
	fmt.Fprintf(sb, "records imported:   %d\n", r.Imported)
	if 0 < len(r.Issues) {
		fmt.Fprintln(sb, "issues:")
		for _, issue := range r.Issues {
			fmt.Fprintf(sb, "  - %s\n", issue)
		}
	}

	fmt.Fprintln(sb)
	fmt.Fprintf(sb, "orders in database: %d\n", r.Summary.TotalRecords)
	fmt.Fprintf(sb, "total revenue:      %.2f\n", r.Summary.TotalRevenue)
	fmt.Fprintf(sb, "average order:      %.2f\n", r.Summary.AvgOrderValue())
	fmt.Fprintf(sb, "customers:          %d\n", r.Summary.UniqueCustomers)
	fmt.Fprintf(sb, "products:           %d\n", r.Summary.UniqueProducts)
	if !r.Summary.MinOrderDate.IsZero() {
		fmt.Fprintf(sb, "date range:         %s .. %s\n",
			r.Summary.MinOrderDate.Format("2006-01-02"),
			r.Summary.MaxOrderDate.Format("2006-01-02"),
		)
	}

	if 0 < len(r.Categories) {
		fmt.Fprintln(sb)
		fmt.Fprintln(sb, "revenue by category:")
		tw := tabwriter.NewWriter(sb, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  category\torders\trevenue")
		for _, c := range r.Categories {
			fmt.Fprintf(tw, "  %s\t%d\t%.2f\n", c.Category, c.Orders, c.Revenue)
		}
		tw.Flush()
	}

	return sb.String()
}
