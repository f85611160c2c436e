package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/libraryapp/lending/book"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/libraryapp/lending/lending"
	"github.com/libraryapp/lending/loan"
)

// Exporter provides OpenTelemetry metrics export in Prometheus format.
type Exporter struct {
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter
	catalog       book.Reader

	booksGauge metric.Int64ObservableGauge
}

// NewExporter creates the exporter and registers the catalog gauge. The
// gauge reads the catalog on each scrape and reports book counts per
// category.
func NewExporter(catalog book.Reader) (*Exporter, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	meter := meterProvider.Meter(
		"library-lending",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	e := &Exporter{
		meterProvider: meterProvider,
		meter:         meter,
		catalog:       catalog,
	}

	e.booksGauge, err = meter.Int64ObservableGauge(
		"lending.catalog.books",
		metric.WithDescription("Number of registered books per category"),
		metric.WithUnit("{books}"),
		metric.WithInt64Callback(e.observeCatalog),
	)
	if err != nil {
		return nil, fmt.Errorf("creating catalog gauge: %w", err)
	}

	return e, nil
}

// observeCatalog is a callback that reports per-category book counts.
func (e *Exporter) observeCatalog(ctx context.Context, observer metric.Int64Observer) error {
	books, err := e.catalog.SelectAll(ctx)
	if err != nil {
		return err
	}

	counts := make(map[book.Category]int64)
	for _, b := range books {
		counts[b.Category]++
	}

	for category, count := range counts {
		observer.Observe(count, metric.WithAttributes(
			attribute.String("book.category", category.String()),
		))
	}

	return nil
}

// Handler serves Prometheus-formatted metrics.
func (e *Exporter) Handler() http.Handler {
	return promhttp.Handler()
}

// Shutdown gracefully shuts down the meter provider.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e.meterProvider != nil {
		return e.meterProvider.Shutdown(ctx)
	}
	return nil
}

/* Recorder decorates a lending.UseCase, counting loans, returns and
 * rejected loans. The wrapped service stays unaware of instrumentation.
 */

type Recorder struct {
	lending.UseCase

	loans     metric.Int64Counter
	returns   metric.Int64Counter
	conflicts metric.Int64Counter
}

// NewRecorder wraps the given UseCase with counters created on the
// exporter's meter.
func (e *Exporter) NewRecorder(next lending.UseCase) (*Recorder, error) {
	loans, err := e.meter.Int64Counter(
		"lending.loans.total",
		metric.WithDescription("Number of successful loans"),
		metric.WithUnit("{loans}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating loans counter: %w", err)
	}

	returns, err := e.meter.Int64Counter(
		"lending.returns.total",
		metric.WithDescription("Number of successful returns"),
		metric.WithUnit("{returns}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating returns counter: %w", err)
	}

	conflicts, err := e.meter.Int64Counter(
		"lending.loan_conflicts.total",
		metric.WithDescription("Number of loans rejected because the book was already on loan"),
		metric.WithUnit("{loans}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating conflicts counter: %w", err)
	}

	return &Recorder{
		UseCase:   next,
		loans:     loans,
		returns:   returns,
		conflicts: conflicts,
	}, nil
}

// LoanBook counts successful loans and already-loaned rejections.
func (r *Recorder) LoanBook(ctx context.Context, userName, bookName string) (loan.History, error) {
	h, err := r.UseCase.LoanBook(ctx, userName, bookName)
	switch {
	case err == nil:
		r.loans.Add(ctx, 1)
	case errors.Is(err, lending.ErrBookAlreadyLoaned):
		r.conflicts.Add(ctx, 1)
	}
	return h, err
}

// ReturnBook counts successful returns.
func (r *Recorder) ReturnBook(ctx context.Context, userName, bookName string) error {
	err := r.UseCase.ReturnBook(ctx, userName, bookName)
	if err == nil {
		r.returns.Add(ctx, 1)
	}
	return err
}

var _ lending.UseCase = (*Recorder)(nil)
