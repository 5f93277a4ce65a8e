package coordinator

import "github.com/tripmesh/tripmesh/agent"

// followUps holds the per-agent follow-up question pools. The questions are
// static: suggestion is a cheap post-processing step, not a generation call.
var followUps = map[agent.ID][]string{
	agent.Culture: {
		"What cultural etiquette should I know about?",
		"Are there any cultural festivals happening?",
		"What are the important local customs?",
	},
	agent.Activity: {
		"What are the must-see attractions?",
		"Can you suggest a day itinerary?",
		"What outdoor activities are available?",
	},
	agent.Food: {
		"What local dishes should I try?",
		"Where can I find the best street food?",
		"Are there vegetarian-friendly restaurants?",
	},
	agent.Language: {
		"How do I say basic greetings?",
		"What phrases are useful for shopping?",
		"How do I ask for directions?",
	},
}

// FollowUpSuggester proposes follow-up questions based on which agents
// contributed to a response.
type FollowUpSuggester struct{}

// Suggest returns up to three follow-up questions drawn from the question
// pools of the agents used, walking agents in the fixed priority order so the
// output is deterministic regardless of invocation order.
func (FollowUpSuggester) Suggest(agentsUsed []agent.ID) []string {
	used := make(map[agent.ID]bool, len(agentsUsed))
	for _, id := range agentsUsed {
		used[id] = true
	}

	var suggestions []string
	for _, id := range agent.All() {
		if !used[id] {
			continue
		}
		for _, question := range followUps[id] {
			suggestions = append(suggestions, question)
			if len(suggestions) == 3 {
				return suggestions
			}
		}
	}
	return suggestions
}
