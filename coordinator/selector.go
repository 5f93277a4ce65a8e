package coordinator

import (
	"strings"

	"github.com/tripmesh/tripmesh/agent"
	"github.com/tripmesh/tripmesh/log"
)

// DefaultSelectionThreshold is the minimum score-to-max ratio an agent needs
// to be selected in score-based selection.
const DefaultSelectionThreshold = 0.3

// itineraryKeywords mark planning-style queries. Keyword-weight scoring alone
// under-selects agents for broad "tell me about my trip" queries, so any hit
// here forces all four agents at the cost of precision.
var itineraryKeywords = []string{
	"itinerary", "plan", "planning", "schedule", "day", "trip", "visit",
	"spend a day", "what to do", "things to do", "recommendations",
	"guide", "tour", "explore", "experience", "activities", "attractions",
	"plan a day", "day in", "travel to", "going to", "trip to",
	"vacation", "holiday", "sightseeing", "must see", "top places",
	"best places", "where to go", "what to see", "places to visit",
}

// travelIndicators mark destination-centric queries that also warrant full
// coverage: known destination names plus generic travel words.
var travelIndicators = []string{
	"vietnam", "ho chi minh", "hanoi", "hoi an", "saigon",
	"visit", "travel", "trip", "vacation", "holiday", "destination",
}

// AgentSelector picks which agents handle a query. The returned order is the
// invocation priority and is stable: culture, activity, food, language when
// all four are selected.
type AgentSelector struct {
	scorer    KeywordScorer
	threshold float64
	logger    log.Logger
}

// SelectorOption configures an AgentSelector.
type SelectorOption func(*AgentSelector)

// WithSelectionThreshold overrides the score-ratio threshold.
func WithSelectionThreshold(threshold float64) SelectorOption {
	return func(s *AgentSelector) {
		s.threshold = threshold
	}
}

// WithSelectorLogger sets the selector's logger.
func WithSelectorLogger(logger log.Logger) SelectorOption {
	return func(s *AgentSelector) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewAgentSelector creates a selector with the default threshold.
func NewAgentSelector(opts ...SelectorOption) *AgentSelector {
	s := &AgentSelector{
		threshold: DefaultSelectionThreshold,
		logger:    log.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select returns the agents that should handle the query, in invocation
// order. The result is never empty.
func (s *AgentSelector) Select(query string) []agent.ID {
	if s.IsItineraryQuery(query) {
		s.logger.Info("detected itinerary query: %q - using all agents for comprehensive planning", query)
		return agent.All()
	}

	lower := strings.ToLower(query)
	for _, indicator := range travelIndicators {
		if strings.Contains(lower, indicator) {
			s.logger.Info("detected travel query: %q - using all agents for comprehensive guidance", query)
			return agent.All()
		}
	}

	scores := s.scorer.Score(query)
	max := 0
	for _, score := range scores {
		if score > max {
			max = score
		}
	}

	if max == 0 {
		return inferFromContext(lower)
	}

	var selected []agent.ID
	for _, id := range agent.All() {
		if score := scores[id]; score > 0 && float64(score)/float64(max) >= s.threshold {
			selected = append(selected, id)
		}
	}
	if len(selected) == 0 {
		return []agent.ID{agent.Culture}
	}
	return selected
}

// IsItineraryQuery reports whether the query asks for a day/trip plan.
func (s *AgentSelector) IsItineraryQuery(query string) bool {
	lower := strings.ToLower(query)
	for _, keyword := range itineraryKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// inferFromContext resolves queries with zero keyword hits. It always
// terminates in a non-empty agent list, culture alone at worst.
func inferFromContext(lower string) []agent.ID {
	switch {
	case containsAny(lower, "visit", "travel", "trip", "destination"):
		return []agent.ID{agent.Culture, agent.Activity}
	case containsAny(lower, "recommend", "suggest", "best"):
		return []agent.ID{agent.Culture, agent.Activity, agent.Food}
	case containsAny(lower, "plan", "itinerary", "schedule"):
		return agent.All()
	default:
		return []agent.ID{agent.Culture}
	}
}

func containsAny(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
