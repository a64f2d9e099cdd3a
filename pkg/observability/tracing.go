package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the name of the tracer for lumio operations.
const TracerName = "lumio"

// Span attribute keys
const (
	AttrRequestID  = "request_id"
	AttrModel      = "model"
	AttrTemplate   = "template"
	AttrFormat     = "format"
	AttrRecipients = "recipients"
	AttrChars      = "chars"
)

// Span names
const (
	SpanSummarize = "lumio.summarize"
	SpanShare     = "lumio.share"
	SpanSendMail  = "lumio.send_mail"
)

// Tracer provides distributed tracing for lumio operations.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a new lumio tracer.
func NewTracer() *Tracer {
	return &Tracer{
		tracer: otel.Tracer(TracerName),
	}
}

// StartSummarizeSpan starts a span for a summary generation.
func (t *Tracer) StartSummarizeSpan(ctx context.Context, model, template string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, SpanSummarize,
		trace.WithAttributes(
			attribute.String(AttrModel, model),
			attribute.String(AttrTemplate, template),
		),
	)
}

// StartShareSpan starts a span for an email share.
func (t *Tracer) StartShareSpan(ctx context.Context, format string, recipients int) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, SpanShare,
		trace.WithAttributes(
			attribute.String(AttrFormat, format),
			attribute.Int(AttrRecipients, recipients),
		),
	)
}

// EndSpan records the error state and ends the span.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
