package storage

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/member-roster/internal/platform/telemetry"
	"github.com/jsamuelsen11/member-roster/internal/ports"
)

// Compile-time interface check.
var _ ports.MemberStore = (*Instrumented)(nil)

// Store operation names used for span names and metric attributes.
const (
	OpLoadAll    = "load_all"
	OpAppend     = "append"
	OpReplaceAll = "replace_all"
)

// Instrumented decorates a MemberStore with an OTEL span per operation and
// the member.store.operation.* metrics. If metrics is nil, only spans are
// recorded.
type Instrumented struct {
	next    ports.MemberStore
	driver  string
	metrics *telemetry.Metrics
}

// NewInstrumented wraps next. The driver name is attached to every span and
// metric so that file and postgres deployments can be told apart.
func NewInstrumented(next ports.MemberStore, driver string, metrics *telemetry.Metrics) *Instrumented {
	return &Instrumented{next: next, driver: driver, metrics: metrics}
}

// LoadAll implements ports.MemberStore.
func (s *Instrumented) LoadAll(ctx context.Context) ([]string, error) {
	ctx, done := s.start(ctx, OpLoadAll)
	names, err := s.next.LoadAll(ctx)
	done(err, attribute.Int("store.names", len(names)))
	return names, err
}

// Append implements ports.MemberStore.
func (s *Instrumented) Append(ctx context.Context, name string) error {
	ctx, done := s.start(ctx, OpAppend)
	err := s.next.Append(ctx, name)
	done(err)
	return err
}

// ReplaceAll implements ports.MemberStore.
func (s *Instrumented) ReplaceAll(ctx context.Context, names []string) error {
	ctx, done := s.start(ctx, OpReplaceAll)
	err := s.next.ReplaceAll(ctx, names)
	done(err, attribute.Int("store.names", len(names)))
	return err
}

// start opens a span for op and returns a func that closes it and records
// the operation metrics.
func (s *Instrumented) start(ctx context.Context, op string) (context.Context, func(error, ...attribute.KeyValue)) {
	begin := time.Now()

	tracer := otel.GetTracerProvider().Tracer("storage")
	ctx, span := tracer.Start(ctx, "store "+op,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			telemetry.AttrStoreDriver.String(s.driver),
			telemetry.AttrStoreOperation.String(op),
		),
	)

	return ctx, func(err error, attrs ...attribute.KeyValue) {
		span.SetAttributes(attrs...)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()

		s.recordMetrics(ctx, op, begin, err)
	}
}

func (s *Instrumented) recordMetrics(ctx context.Context, op string, begin time.Time, err error) {
	if s.metrics == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrStoreDriver.String(s.driver),
		telemetry.AttrStoreOperation.String(op),
		telemetry.AttrResult.String(result),
	)

	s.metrics.StoreOperationDuration.Record(ctx, time.Since(begin).Seconds(), attrs)
	s.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}
