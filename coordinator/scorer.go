package coordinator

import (
	"strings"

	"github.com/tripmesh/tripmesh/agent"
)

// keywordWeights are the static per-agent relevance tables. Weights are small
// positive integers; generic words ("day", "local") weigh less than words
// that unambiguously name the subdomain.
var keywordWeights = map[agent.ID]map[string]int{
	agent.Culture: {
		"culture": 2, "cultural": 2, "tradition": 2, "customs": 2, "etiquette": 2,
		"festival": 2, "ceremony": 2, "heritage": 2, "wedding": 1, "ritual": 1,
		"local": 1, "regional": 1, "taboo": 1, "sacred": 1, "religious": 1,
	},
	agent.Activity: {
		"activities": 2, "attractions": 2, "things to do": 2, "sightseeing": 2,
		"tour": 2, "visit": 2, "explore": 2, "museums": 2, "temples": 2,
		"parks": 2, "hiking": 2, "adventure": 2, "itinerary": 3, "plan": 2,
		"schedule": 2, "day": 1, "morning": 1, "afternoon": 1, "evening": 1,
	},
	agent.Food: {
		"food": 2, "cuisine": 2, "restaurant": 2, "dining": 2, "eat": 2,
		"dish": 2, "street food": 2, "vegetarian": 1, "vegan": 1, "halal": 1,
		"kosher": 1, "allergies": 1, "menu": 1, "breakfast": 1, "lunch": 1,
		"dinner": 1, "snacks": 1, "drinks": 1,
	},
	agent.Language: {
		"language": 2, "translate": 2, "phrases": 2, "speak": 2, "communication": 2,
		"pronunciation": 2, "greetings": 2, "directions": 2, "help": 2,
		"emergency": 2, "polite": 1, "formal": 1, "informal": 1,
	},
}

// KeywordScorer maps a raw query to per-agent relevance scores by summing
// static keyword weights. Matching is case-insensitive substring containment,
// not tokenized, so partial matches count ("plan" matches inside "planning").
// Score is a pure function of the tables and the input string.
type KeywordScorer struct{}

// Score returns a non-negative score for every agent. Agents with no keyword
// hits score zero.
func (KeywordScorer) Score(query string) map[agent.ID]int {
	lower := strings.ToLower(query)

	scores := make(map[agent.ID]int, len(keywordWeights))
	for id, weights := range keywordWeights {
		score := 0
		for keyword, weight := range weights {
			if strings.Contains(lower, keyword) {
				score += weight
			}
		}
		scores[id] = score
	}
	return scores
}
