package bot

import (
	"context"
	"log/slog"
)

// apologyReply is returned when processing fails unexpectedly. Users are
// pointed at a human instead of seeing internal detail.
const apologyReply = "Sorry, I had trouble processing that. Could you try asking again? If the issue persists, contact support@pneuma.com"

// Result is the outcome of processing one message.
type Result struct {
	Success bool   `json:"success"`
	Intent  string `json:"intent,omitempty"`
	Reply   string `json:"reply"`
}

// Responder runs the classify → generate → fallback pipeline. It holds no
// per-request state, so one instance serves any number of concurrent calls.
type Responder struct {
	catalog    *Catalog
	classifier *Classifier
	generator  TextGenerator
}

// NewResponder builds a responder over the given catalog. generator may be
// nil when no generation credential is configured; every request then answers
// from the fallback table.
func NewResponder(catalog *Catalog, generator TextGenerator) *Responder {
	return &Responder{
		catalog:    catalog,
		classifier: NewClassifier(catalog),
		generator:  generator,
	}
}

// Process classifies the message and produces a reply, either from the
// generation service or from the canned fallback table. Generation failures
// are absorbed here: the caller always receives a well-formed Result, and
// only an unexpected internal failure yields Success false.
func (r *Responder) Process(ctx context.Context, message string) (result Result) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("Unexpected failure while processing message",
				"panic", rec,
				"message", excerpt(message),
			)
			result = Result{Success: false, Reply: apologyReply}
		}
	}()

	intent := r.classifier.Classify(message)
	slog.Info("Classified intent", "intent", intent, "message", excerpt(message))

	reply := r.generate(ctx, message, intent)

	return Result{Success: true, Intent: intent, Reply: reply}
}

// generate resolves to a live completion when a generator is configured, and
// to the fallback table otherwise or on any generation failure.
func (r *Responder) generate(ctx context.Context, message, intent string) string {
	if r.generator == nil {
		// Unconfigured is an expected state, not an error
		slog.Debug("No generator configured, using fallback reply", "intent", intent)
		return r.catalog.Fallback(message, intent)
	}

	directive := ""
	if in, err := r.catalog.Get(intent); err == nil {
		directive = in.Directive
	}

	reply, err := r.generator.Generate(ctx, directive, message)
	if err != nil {
		slog.Error("Generation failed, using fallback reply",
			"error", err,
			"intent", intent,
			"message", excerpt(message),
		)
		return r.catalog.Fallback(message, intent)
	}

	return reply
}

// excerpt trims a message for log context.
func excerpt(message string) string {
	const max = 80
	if len(message) > max {
		return message[:max] + "..."
	}
	return message
}
