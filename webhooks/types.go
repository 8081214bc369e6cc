package webhooks

import "encoding/json"

// WebhookPayload represents an incoming webhook body. Providers disagree on
// the envelope, so every supported shape is declared here and resolved by
// MessageText/Sender:
//   - Twilio:  {"Body": "...", "From": "+123..."}
//   - nested:  {"message": {"text": "..."}, "from": "..."}
//   - flat:    {"message": "...", "from": "..."}
type WebhookPayload struct {
	// Twilio format
	Body string `json:"Body"`
	From string `json:"From"`

	// Generic formats: message is either a plain string or an object
	// with a text field
	Message    json.RawMessage `json:"message"`
	SenderName string          `json:"from"`
}

// nestedMessage is the object form of the message field
type nestedMessage struct {
	Text string `json:"text"`
}

// MessageText extracts the user message from whichever shape was sent.
// Returns the empty string when no text is present.
func (p *WebhookPayload) MessageText() string {
	// Twilio format
	if p.Body != "" {
		return p.Body
	}

	if len(p.Message) == 0 {
		return ""
	}

	// Nested webhook format
	var nested nestedMessage
	if err := json.Unmarshal(p.Message, &nested); err == nil && nested.Text != "" {
		return nested.Text
	}

	// Direct message format for testing
	var flat string
	if err := json.Unmarshal(p.Message, &flat); err == nil {
		return flat
	}

	return ""
}

// Sender returns the sender identifier for the detected shape.
func (p *WebhookPayload) Sender() string {
	if p.Body != "" {
		if p.From != "" {
			return p.From
		}
		return "unknown"
	}

	if p.SenderName != "" {
		return p.SenderName
	}

	// The flat test format defaults to a test user
	var flat string
	if err := json.Unmarshal(p.Message, &flat); err == nil {
		return "test_user"
	}

	return "unknown"
}

// WebhookResponse is the JSON body returned for a processed message.
type WebhookResponse struct {
	Success bool   `json:"success"`
	Reply   string `json:"reply"`
	Intent  string `json:"intent"`
	From    string `json:"from"`
}
