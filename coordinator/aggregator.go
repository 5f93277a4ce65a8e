package coordinator

import (
	"fmt"
	"strings"

	"github.com/tripmesh/tripmesh/agent"
)

const (
	// simpleThreshold filters results out of simple-mode aggregation.
	simpleThreshold = 0.3
	// itineraryThreshold is more lenient: itineraries aim for coverage, not
	// just the highest-confidence answer.
	itineraryThreshold = 0.1
)

const noInformationApology = "I'm sorry, I couldn't find relevant information for your query."

// genericItinerary is the scripted fallback when every agent came back below
// the itinerary threshold. It is canned text, not a generation call.
const genericItinerary = `I'm sorry, I couldn't find specific information for your itinerary request in my knowledge base.

However, I can still help you plan your day! Here's what I recommend:

**🏛️ Cultural Insights**
- Research local customs and etiquette before your visit
- Check for any cultural events or festivals happening
- Learn about appropriate dress codes and behavior

**🎯 Activities & Attractions**
- Visit major landmarks and tourist attractions
- Explore local neighborhoods and markets
- Consider guided tours for better cultural understanding

**🍽️ Food & Dining**
- Try local specialties and traditional dishes
- Ask locals for restaurant recommendations
- Be adventurous with street food (safely)

**🗣️ Language & Communication**
- Learn basic greetings and polite phrases
- Download a translation app
- Carry a phrasebook for emergencies

Would you like me to provide more specific guidance for any particular aspect of your trip?`

// itinerarySections maps each agent to its itinerary heading, in render
// order (the fixed agent priority order).
var itinerarySections = map[agent.ID]string{
	agent.Culture:  "### 🏛️ Cultural Insights",
	agent.Activity: "### 🎯 Activities & Attractions",
	agent.Food:     "### 🍽️ Food & Dining",
	agent.Language: "### 🗣️ Language & Communication",
}

var practicalTips = []string{
	"- Book tickets in advance for popular attractions",
	"- Check opening hours and seasonal availability",
	"- Download offline maps and translation apps",
	"- Carry local currency and have backup payment methods",
	"- Respect local customs and dress codes",
}

// Response is the final output of one coordination request.
type Response struct {
	// Response is the merged answer text.
	Response string
	// Sources is the deduplicated union of the surviving results' sources.
	Sources []string
	// AgentsUsed lists the invoked agents in invocation order.
	AgentsUsed []agent.ID
	// Collaboration is true iff more than one agent was invoked.
	Collaboration bool
	// Individual holds the raw per-agent results on the collaboration path.
	Individual []agent.Result
}

// ResponseAggregator merges agent results into one response. Aggregate is a
// pure function over its inputs: same results, same output.
type ResponseAggregator struct{}

// Aggregate merges multi-agent results. Itinerary queries get a structured
// Markdown document; everything else gets concatenated expert sections.
// Aggregation never fails — when nothing survives the confidence filter a
// fixed apology or scripted template is returned.
func (ResponseAggregator) Aggregate(results []agent.Result, query string, isItinerary bool) *Response {
	var text string
	var surviving []agent.Result
	if isItinerary {
		surviving = filterByConfidence(results, itineraryThreshold)
		text = combineItinerary(surviving, query)
	} else {
		surviving = filterByConfidence(results, simpleThreshold)
		text = combineSimple(surviving)
	}

	agentsUsed := make([]agent.ID, len(results))
	for i, result := range results {
		agentsUsed[i] = result.Agent
	}

	return &Response{
		Response:      text,
		Sources:       dedupeSources(surviving),
		AgentsUsed:    agentsUsed,
		Collaboration: true,
		Individual:    results,
	}
}

func filterByConfidence(results []agent.Result, threshold float64) []agent.Result {
	surviving := make([]agent.Result, 0, len(results))
	for _, result := range results {
		if result.Confidence > threshold {
			surviving = append(surviving, result)
		}
	}
	return surviving
}

// combineSimple concatenates surviving answers under per-agent expert
// headings.
func combineSimple(surviving []agent.Result) string {
	if len(surviving) == 0 {
		return noInformationApology
	}
	if len(surviving) == 1 {
		return surviving[0].Response
	}

	var parts []string
	for i, result := range surviving {
		parts = append(parts, fmt.Sprintf("**%s Expert:**", result.Agent.Name()))
		parts = append(parts, result.Response)
		if i < len(surviving)-1 {
			parts = append(parts, "")
		}
	}
	parts = append(parts, fmt.Sprintf("\n*This response combines insights from %d specialized agents to provide comprehensive travel guidance.*", len(surviving)))

	return strings.Join(parts, "\n")
}

// combineItinerary builds a structured Markdown itinerary with a fixed
// section order. Sections whose agent did not survive filtering are omitted.
func combineItinerary(surviving []agent.Result, query string) string {
	if len(surviving) == 0 {
		return genericItinerary
	}

	byAgent := make(map[agent.ID]string, len(surviving))
	for _, result := range surviving {
		byAgent[result.Agent] = result.Response
	}

	parts := []string{"## 🌍 Comprehensive Travel Itinerary", ""}

	if destination := agent.ExtractDestination(query); destination != "" {
		parts = append(parts, "**Destination:** "+destination, "")
	}

	for _, id := range agent.All() {
		if response, ok := byAgent[id]; ok {
			parts = append(parts, itinerarySections[id], response, "")
		}
	}

	parts = append(parts, "### 💡 Practical Travel Tips")
	parts = append(parts, practicalTips...)
	parts = append(parts, "")

	parts = append(parts, "---")
	parts = append(parts, fmt.Sprintf("*This comprehensive itinerary was created by collaborating %d specialized AI agents to provide you with complete travel guidance.*", len(surviving)))

	return strings.Join(parts, "\n")
}

// dedupeSources unions sources across results, first-seen order preserved.
func dedupeSources(results []agent.Result) []string {
	seen := make(map[string]bool)
	var sources []string
	for _, result := range results {
		for _, src := range result.Sources {
			if !seen[src] {
				seen[src] = true
				sources = append(sources, src)
			}
		}
	}
	return sources
}
