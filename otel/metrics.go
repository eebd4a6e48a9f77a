package otel

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the instruments recorded per conversion operation.
type Metrics struct {
	OperationCount   metric.Int64Counter
	ErrorCount       metric.Int64Counter
	OperationLatency metric.Float64Histogram
}

// initMetrics creates the conversion instruments on the given meter.
func initMetrics(meter metric.Meter) (*Metrics, error) {
	operationCount, err := meter.Int64Counter(
		"relish.operations.total",
		metric.WithDescription("Total number of conversion operations"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create operation counter: %w", err)
	}

	errorCount, err := meter.Int64Counter(
		"relish.errors.total",
		metric.WithDescription("Total number of failed conversion operations"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create error counter: %w", err)
	}

	operationLatency, err := meter.Float64Histogram(
		"relish.operation.duration",
		metric.WithDescription("Conversion operation duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create latency histogram: %w", err)
	}

	return &Metrics{
		OperationCount:   operationCount,
		ErrorCount:       errorCount,
		OperationLatency: operationLatency,
	}, nil
}
