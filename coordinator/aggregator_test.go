package coordinator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripmesh/tripmesh/agent"
)

func result(id agent.ID, response string, confidence float64, sources ...string) agent.Result {
	return agent.Result{
		Agent:      id,
		Response:   response,
		Sources:    sources,
		Confidence: confidence,
	}
}

func TestAggregateSimple(t *testing.T) {
	var aggregator ResponseAggregator

	t.Run("nothing above threshold yields the apology", func(t *testing.T) {
		results := []agent.Result{
			result(agent.Culture, "weak", 0.1),
			result(agent.Food, "weak", 0.3),
		}
		resp := aggregator.Aggregate(results, "q", false)
		assert.Equal(t, noInformationApology, resp.Response)
		assert.Empty(t, resp.Sources)
	})

	t.Run("single survivor answers verbatim", func(t *testing.T) {
		results := []agent.Result{
			result(agent.Culture, "the one answer", 0.8, "guide.md"),
			result(agent.Food, "noise", 0.2),
		}
		resp := aggregator.Aggregate(results, "q", false)
		assert.Equal(t, "the one answer", resp.Response)
		assert.Equal(t, []string{"guide.md"}, resp.Sources)
	})

	t.Run("multiple survivors get expert sections and a footer", func(t *testing.T) {
		results := []agent.Result{
			result(agent.Culture, "culture answer", 0.8),
			result(agent.Food, "food answer", 0.7),
		}
		resp := aggregator.Aggregate(results, "q", false)
		assert.Contains(t, resp.Response, "**Culture Expert:**\nculture answer")
		assert.Contains(t, resp.Response, "**Food Expert:**\nfood answer")
		assert.Contains(t, resp.Response,
			"*This response combines insights from 2 specialized agents to provide comprehensive travel guidance.*")
	})

	t.Run("sources come only from survivors, deduplicated in order", func(t *testing.T) {
		results := []agent.Result{
			result(agent.Culture, "a", 0.8, "guide.md", "web"),
			result(agent.Activity, "b", 0.7, "web", "maps.md"),
			result(agent.Food, "filtered out", 0.2, "junk.md"),
		}
		resp := aggregator.Aggregate(results, "q", false)
		assert.Equal(t, []string{"guide.md", "web", "maps.md"}, resp.Sources)
	})

	t.Run("aggregation is a pure function", func(t *testing.T) {
		results := []agent.Result{
			result(agent.Culture, "a", 0.8, "guide.md"),
			result(agent.Food, "b", 0.7, "web"),
		}
		first := aggregator.Aggregate(results, "q", false)
		second := aggregator.Aggregate(results, "q", false)
		assert.Equal(t, first, second)
	})

	t.Run("metadata reflects every invoked agent", func(t *testing.T) {
		results := []agent.Result{
			result(agent.Culture, "a", 0.8),
			result(agent.Food, "filtered out", 0.1),
		}
		resp := aggregator.Aggregate(results, "q", false)
		assert.Equal(t, []agent.ID{agent.Culture, agent.Food}, resp.AgentsUsed)
		assert.True(t, resp.Collaboration)
		assert.Equal(t, results, resp.Individual)
	})
}

func TestAggregateItinerary(t *testing.T) {
	var aggregator ResponseAggregator

	t.Run("nothing above threshold yields the scripted template", func(t *testing.T) {
		results := []agent.Result{result(agent.Culture, "weak", 0.1)}
		resp := aggregator.Aggregate(results, "Plan a day in Rome", true)
		assert.Contains(t, resp.Response, "I can still help you plan your day!")
		assert.Contains(t, resp.Response, "**🏛️ Cultural Insights**")
	})

	t.Run("itinerary threshold is more lenient than simple", func(t *testing.T) {
		results := []agent.Result{result(agent.Culture, "barely relevant", 0.2)}
		resp := aggregator.Aggregate(results, "Plan a day in Rome", true)
		assert.Contains(t, resp.Response, "barely relevant")
	})

	t.Run("structured document with destination and ordered sections", func(t *testing.T) {
		results := []agent.Result{
			result(agent.Language, "language tips", 0.8),
			result(agent.Culture, "culture notes", 0.8),
			result(agent.Food, "food picks", 0.8),
		}
		resp := aggregator.Aggregate(results, "Plan a day in Rome", true)

		assert.True(t, strings.HasPrefix(resp.Response, "## 🌍 Comprehensive Travel Itinerary"))
		assert.Contains(t, resp.Response, "**Destination:** Rome")

		// Sections render in the fixed agent order, not result order.
		culturePos := strings.Index(resp.Response, "### 🏛️ Cultural Insights")
		foodPos := strings.Index(resp.Response, "### 🍽️ Food & Dining")
		languagePos := strings.Index(resp.Response, "### 🗣️ Language & Communication")
		assert.Greater(t, culturePos, -1)
		assert.Greater(t, foodPos, culturePos)
		assert.Greater(t, languagePos, foodPos)
		assert.NotContains(t, resp.Response, "### 🎯 Activities & Attractions")

		assert.Contains(t, resp.Response, "### 💡 Practical Travel Tips")
		assert.Contains(t, resp.Response,
			"*This comprehensive itinerary was created by collaborating 3 specialized AI agents to provide you with complete travel guidance.*")
	})

	t.Run("all four agents at low confidence still fill every section", func(t *testing.T) {
		results := []agent.Result{
			result(agent.Culture, "c", 0.15),
			result(agent.Activity, "a", 0.15),
			result(agent.Food, "f", 0.15),
			result(agent.Language, "l", 0.15),
		}
		resp := aggregator.Aggregate(results, "Plan a day in Rome", true)
		assert.Contains(t, resp.Response, "**Destination:** Rome")
		for _, heading := range itinerarySections {
			assert.Contains(t, resp.Response, heading)
		}
	})

	t.Run("no extractable destination omits the destination line", func(t *testing.T) {
		results := []agent.Result{result(agent.Culture, "notes", 0.8)}
		resp := aggregator.Aggregate(results, "plan a relaxing day somewhere", true)
		assert.NotContains(t, resp.Response, "**Destination:**")
	})
}
