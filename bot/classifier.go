package bot

import "strings"

// Classifier assigns a message to one intent by keyword scoring.
type Classifier struct {
	catalog *Catalog
}

func NewClassifier(catalog *Catalog) *Classifier {
	return &Classifier{catalog: catalog}
}

// Classify scores the message against every intent and returns the name of
// the best match. A keyword counts when it appears anywhere in the lowercased
// message, word boundaries ignored ("save" matches "saved"). Ties go to the
// intent declared first in the catalog. When nothing matches at all, the
// catalog's default intent is returned regardless of declaration order.
// Classify never fails, the empty string included.
func (c *Classifier) Classify(message string) string {
	messageLower := strings.ToLower(message)

	best := ""
	bestScore := 0
	for _, intent := range c.catalog.Intents() {
		score := 0
		for _, keyword := range intent.Keywords {
			if strings.Contains(messageLower, keyword) {
				score++
			}
		}
		// Strictly greater keeps the earliest intent on a tie
		if score > bestScore {
			best = intent.Name
			bestScore = score
		}
	}

	if bestScore == 0 {
		return c.catalog.DefaultIntent()
	}
	return best
}
