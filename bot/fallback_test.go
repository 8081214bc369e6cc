package bot

import "testing"

func TestFallbackKeyedTriggers(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name    string
		message string
		intent  string
		trigger string // keyed trigger expected to match, empty for default
	}{
		{
			name:    "keyed trigger beats default",
			message: "What deals do you have today?",
			intent:  "deals_and_offers",
			trigger: "today",
		},
		{
			name:    "delta keyed reply",
			message: "How do I transfer my miles to Delta?",
			intent:  "mileage_and_rewards",
			trigger: "transfer", // defined before delta, so it wins first
		},
		{
			name:    "trigger match is case-insensitive",
			message: "Can I move points to DELTA?",
			intent:  "mileage_and_rewards",
			trigger: "delta",
		},
		{
			name:    "no trigger returns intent default",
			message: "asdkjasd random text",
			intent:  "account_and_setup",
		},
		{
			name:    "unknown intent resolves to default intent entry",
			message: "asdkjasd random text",
			intent:  "no_such_intent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Fallback(tt.message, tt.intent)

			intent, err := catalog.Get(tt.intent)
			if err != nil {
				intent, _ = catalog.Get(catalog.DefaultIntent())
			}

			want := intent.FallbackDefault
			if tt.trigger != "" {
				found := false
				for _, keyed := range intent.FallbackKeyed {
					if keyed.Trigger == tt.trigger {
						want = keyed.Reply
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("test setup: trigger %q not in intent %q", tt.trigger, tt.intent)
				}
			}

			if got != want {
				t.Errorf("Fallback(%q, %q) = %q, want %q", tt.message, tt.intent, got, want)
			}
		})
	}
}

func TestFallbackIsPure(t *testing.T) {
	catalog := DefaultCatalog()

	first := catalog.Fallback("what's the best deal today", "deals_and_offers")
	for i := 0; i < 10; i++ {
		if got := catalog.Fallback("what's the best deal today", "deals_and_offers"); got != first {
			t.Fatalf("call %d: Fallback returned %q, expected %q every time", i, got, first)
		}
	}
}

func TestFallbackKeyedOrderIsDefinitionOrder(t *testing.T) {
	catalog := NewCatalog("only", []Intent{
		{
			Name:            "only",
			FallbackDefault: "default",
			FallbackKeyed: []KeyedReply{
				{Trigger: "alpha", Reply: "first"},
				{Trigger: "alp", Reply: "second"},
			},
		},
	})

	// Both triggers are contained in the message, the earlier entry wins
	if got := catalog.Fallback("alphabet soup", "only"); got != "first" {
		t.Errorf("Fallback = %q, want %q", got, "first")
	}
}

func TestCatalogGet(t *testing.T) {
	catalog := DefaultCatalog()

	intent, err := catalog.Get("deals_and_offers")
	if err != nil {
		t.Fatalf("Get(deals_and_offers) returned error: %v", err)
	}
	if intent.Name != "deals_and_offers" {
		t.Errorf("Get returned intent %q", intent.Name)
	}
	if intent.FallbackDefault == "" {
		t.Error("every intent must carry a default fallback reply")
	}

	if _, err := catalog.Get("missing"); err == nil {
		t.Error("Get(missing) should fail")
	}
}
