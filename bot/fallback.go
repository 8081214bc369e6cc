package bot

import "strings"

// Fallback returns the canned reply for a message under the given intent.
// Keyed triggers are checked in definition order and the first one contained
// in the lowercased message wins; otherwise the intent's default reply is
// returned. An unknown intent name resolves to the catalog's default intent
// rather than failing. Pure function: same inputs, same output.
func (c *Catalog) Fallback(message, intentName string) string {
	intent, err := c.Get(intentName)
	if err != nil {
		intent, _ = c.Get(c.defaultIntent)
	}

	messageLower := strings.ToLower(message)
	for _, keyed := range intent.FallbackKeyed {
		if strings.Contains(messageLower, keyed.Trigger) {
			return keyed.Reply
		}
	}

	return intent.FallbackDefault
}
