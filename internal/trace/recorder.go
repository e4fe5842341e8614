// Package trace records stack navigation as OpenTelemetry spans: one span
// per push or pop, from the will-event to the matching did-event, exported
// over OTLP when an endpoint is configured.
package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"navstack/internal/nav"
)

// Recorder is a nav.ControllerDelegate that measures transitions. It
// forwards every callback to Next (when set), so it can sit in front of an
// application delegate without changing the ordering contract.
type Recorder struct {
	tracer oteltrace.Tracer
	span   oteltrace.Span

	// Next receives every callback after it has been recorded.
	Next nav.ControllerDelegate
}

var _ nav.ControllerDelegate = (*Recorder)(nil)

// NewRecorder creates a recorder on the given tracer. See NewOTLPRecorder
// for the environment-gated production setup.
func NewRecorder(tracer oteltrace.Tracer) *Recorder {
	return &Recorder{tracer: tracer}
}

func (r *Recorder) next() nav.ControllerDelegate {
	if r.Next == nil {
		return nav.NopControllerDelegate{}
	}
	return r.Next
}

func (r *Recorder) start(op string, c *nav.Controller, subject nav.Unit, animated bool) {
	if r.tracer == nil {
		return
	}
	_, r.span = r.tracer.Start(context.Background(), "nav."+op,
		oteltrace.WithAttributes(
			attribute.String("nav.op", op),
			attribute.String("nav.unit", unitTitle(subject)),
			attribute.Bool("nav.animated", animated),
			attribute.Int("nav.depth", c.Count()),
		))
}

func (r *Recorder) end() {
	if r.span == nil {
		return
	}
	r.span.End()
	r.span = nil
}

func unitTitle(u nav.Unit) string {
	if t, ok := u.(nav.Titled); ok {
		return t.Title()
	}
	return "untitled"
}

// WillPush implements nav.ControllerDelegate.
func (r *Recorder) WillPush(c *nav.Controller, pushed, covered nav.Unit, animated bool) {
	r.start("push", c, pushed, animated)
	r.next().WillPush(c, pushed, covered, animated)
}

// WillShow implements nav.ControllerDelegate.
func (r *Recorder) WillShow(c *nav.Controller, u nav.Unit, animated bool) {
	r.next().WillShow(c, u, animated)
}

// DidShow implements nav.ControllerDelegate.
func (r *Recorder) DidShow(c *nav.Controller, u nav.Unit, animated bool) {
	r.next().DidShow(c, u, animated)
}

// DidPush implements nav.ControllerDelegate.
func (r *Recorder) DidPush(c *nav.Controller, pushed, covered nav.Unit, animated bool) {
	r.end()
	r.next().DidPush(c, pushed, covered, animated)
}

// WillPop implements nav.ControllerDelegate.
func (r *Recorder) WillPop(c *nav.Controller, popped, revealed nav.Unit, animated bool) {
	r.start("pop", c, popped, animated)
	r.next().WillPop(c, popped, revealed, animated)
}

// WillHide implements nav.ControllerDelegate.
func (r *Recorder) WillHide(c *nav.Controller, u nav.Unit, animated bool) {
	r.next().WillHide(c, u, animated)
}

// DidHide implements nav.ControllerDelegate.
func (r *Recorder) DidHide(c *nav.Controller, u nav.Unit, animated bool) {
	r.next().DidHide(c, u, animated)
}

// DidPop implements nav.ControllerDelegate.
func (r *Recorder) DidPop(c *nav.Controller, popped, revealed nav.Unit, animated bool) {
	r.end()
	r.next().DidPop(c, popped, revealed, animated)
}
