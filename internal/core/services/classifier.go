package services

import (
	"regexp"
	"strings"
)

// Conversational query patterns. All are matched against the trimmed,
// lowercased query. Bare greetings must match the entire string so a
// longer query like "hi, how do I use react" still reaches the
// matchers; every other category matches anywhere in the query.
var (
	greetingPattern   = regexp.MustCompile(`^(hi|hello|hey|greetings|good morning|good afternoon|good evening)$`)
	wellBeingPattern  = regexp.MustCompile(`how are you|how's it going|how do you do|what's up`)
	identityPattern   = regexp.MustCompile(`what is your name|what's your name|who are you|introduce yourself`)
	capabilityPattern = regexp.MustCompile(`what do you do|what can you do|what are you|your purpose|your function`)
	gratitudePattern  = regexp.MustCompile(`thank|thanks|thank you|appreciate`)
	farewellPattern   = regexp.MustCompile(`bye|goodbye|see you|farewell`)
)

// conversationalPatterns is the full ordered set used by the classifier.
var conversationalPatterns = []*regexp.Regexp{
	greetingPattern,
	wellBeingPattern,
	identityPattern,
	capabilityPattern,
	gratitudePattern,
	farewellPattern,
}

// Classifier decides whether a query is small talk that needs no
// citation lookup.
type Classifier struct{}

// NewClassifier creates a new conversational-intent classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// IsConversational reports whether the query is a greeting, well-being
// question, identity question, capability question, gratitude
// expression, or farewell. When true, citation lookup is skipped for
// the turn.
func (c *Classifier) IsConversational(query string) bool {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	for _, pattern := range conversationalPatterns {
		if pattern.MatchString(queryLower) {
			return true
		}
	}
	return false
}
