package bot

import (
	"context"
	"log/slog"
	"sync"
	"testing"
)

// fakeGenerator is a TextGenerator that deterministically succeeds or fails.
type fakeGenerator struct {
	reply string
	err   error

	mu    sync.Mutex
	calls int
}

func (f *fakeGenerator) Generate(ctx context.Context, directive, message string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// panicGenerator simulates an unexpected internal failure.
type panicGenerator struct{}

func (panicGenerator) Generate(ctx context.Context, directive, message string) (string, error) {
	panic("generator blew up")
}

// recordingHandler captures slog records so tests can assert that an
// error-level event happened without asserting its content.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) errorCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, r := range h.records {
		if r.Level == slog.LevelError {
			n++
		}
	}
	return n
}

func captureLogs(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	prev := slog.Default()
	slog.SetDefault(slog.New(h))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return h
}

// fallbackReplies collects every canned reply an intent can produce.
func fallbackReplies(t *testing.T, catalog *Catalog, intentName string) map[string]bool {
	t.Helper()
	intent, err := catalog.Get(intentName)
	if err != nil {
		t.Fatalf("catalog has no intent %q", intentName)
	}
	set := map[string]bool{intent.FallbackDefault: true}
	for _, keyed := range intent.FallbackKeyed {
		set[keyed.Reply] = true
	}
	return set
}

func TestProcessWithLiveGeneration(t *testing.T) {
	captureLogs(t)
	catalog := DefaultCatalog()
	gen := &fakeGenerator{reply: "Here are today's offers!"}
	responder := NewResponder(catalog, gen)

	result := responder.Process(context.Background(), "What deals do you have today?")

	if !result.Success {
		t.Fatal("Process should succeed")
	}
	if result.Intent != "deals_and_offers" {
		t.Errorf("Intent = %q, want deals_and_offers", result.Intent)
	}
	if result.Reply != "Here are today's offers!" {
		t.Errorf("Reply = %q, want the generated reply", result.Reply)
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
}

func TestProcessUnconfiguredUsesFallbackTable(t *testing.T) {
	captureLogs(t)
	catalog := DefaultCatalog()
	responder := NewResponder(catalog, nil)

	messages := []string{
		"What deals do you have today?",
		"How do I transfer my miles to Delta?",
		"How do I sign up?",
		"asdkjasd random text",
		"",
	}

	classifier := NewClassifier(catalog)
	for _, message := range messages {
		result := responder.Process(context.Background(), message)
		if !result.Success {
			t.Fatalf("Process(%q) should succeed in fallback-only mode", message)
		}
		replies := fallbackReplies(t, catalog, classifier.Classify(message))
		if !replies[result.Reply] {
			t.Errorf("Process(%q) reply %q is not in the fallback table for %q",
				message, result.Reply, result.Intent)
		}
	}
}

func TestProcessGenerationFailureFallsBack(t *testing.T) {
	logs := captureLogs(t)
	catalog := DefaultCatalog()
	gen := &fakeGenerator{err: context.DeadlineExceeded}
	responder := NewResponder(catalog, gen)

	result := responder.Process(context.Background(), "What deals do you have today?")

	if !result.Success {
		t.Fatal("generation failure must not surface to the caller")
	}
	if result.Intent != "deals_and_offers" {
		t.Errorf("Intent = %q, want deals_and_offers", result.Intent)
	}
	replies := fallbackReplies(t, catalog, "deals_and_offers")
	if !replies[result.Reply] {
		t.Errorf("Reply %q is not a canned fallback", result.Reply)
	}
	if logs.errorCount() == 0 {
		t.Error("a generation failure must be logged at error level")
	}
}

func TestProcessRecoversFromPanic(t *testing.T) {
	logs := captureLogs(t)
	responder := NewResponder(DefaultCatalog(), panicGenerator{})

	result := responder.Process(context.Background(), "What deals do you have today?")

	if result.Success {
		t.Error("an unexpected internal failure must report Success false")
	}
	if result.Reply == "" {
		t.Error("the caller must still receive a user-facing apology")
	}
	if logs.errorCount() == 0 {
		t.Error("the internal failure must be logged at error level")
	}

	// A single bad request must not destabilize later ones
	again := responder.Process(context.Background(), "another message")
	if again.Success {
		t.Error("generator still panics, expected Success false")
	}
	if again.Reply == "" {
		t.Error("later requests must still get a well-formed result")
	}
}
