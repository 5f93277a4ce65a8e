package coordinator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripmesh/tripmesh/agent"
)

func TestAgentSelectorSelect(t *testing.T) {
	selector := NewAgentSelector()

	t.Run("itinerary query selects all agents", func(t *testing.T) {
		selected := selector.Select("Plan a day in Kyoto")
		assert.Equal(t, agent.All(), selected)
	})

	t.Run("travel indicator selects all agents", func(t *testing.T) {
		selected := selector.Select("customs in Hanoi")
		assert.Equal(t, agent.All(), selected)
	})

	t.Run("score-based selection keeps agents above the ratio threshold", func(t *testing.T) {
		// "street food etiquette" scores food and culture, no planning words.
		selected := selector.Select("street food etiquette")
		assert.Contains(t, selected, agent.Food)
		assert.Contains(t, selected, agent.Culture)
		assert.NotContains(t, selected, agent.Language)
	})

	t.Run("selection order follows the fixed priority order", func(t *testing.T) {
		selected := selector.Select("local etiquette and street food")
		indexOf := func(id agent.ID) int {
			for i, s := range selected {
				if s == id {
					return i
				}
			}
			return -1
		}
		assert.Less(t, indexOf(agent.Culture), indexOf(agent.Food))
	})

	t.Run("no hits at all falls back to culture", func(t *testing.T) {
		assert.Equal(t, []agent.ID{agent.Culture}, selector.Select("zzz qux blah"))
	})

	t.Run("recommendation wording without keyword hits infers three agents", func(t *testing.T) {
		assert.Equal(t,
			[]agent.ID{agent.Culture, agent.Activity, agent.Food},
			selector.Select("recommend something nice"))
	})

	t.Run("never returns an empty selection", func(t *testing.T) {
		for _, query := range []string{"", "?!", "zzz", "asdf ghjk"} {
			assert.NotEmpty(t, selector.Select(query), "query %q", query)
		}
	})

	t.Run("custom threshold widens the selection", func(t *testing.T) {
		loose := NewAgentSelector(WithSelectionThreshold(0.01))
		strict := NewAgentSelector(WithSelectionThreshold(0.99))
		query := "etiquette at dinner"
		assert.GreaterOrEqual(t,
			len(loose.Select(query)), len(strict.Select(query)))
	})
}

func TestIsItineraryQuery(t *testing.T) {
	selector := NewAgentSelector()

	itinerary := []string{
		"Plan a day in Rome",
		"what to do in Lisbon",
		"best places for photos",
		"a quick sightseeing route",
		"My VACATION next month",
	}
	for _, query := range itinerary {
		assert.True(t, selector.IsItineraryQuery(query), "query %q", query)
	}

	notItinerary := []string{
		"how do I say thank you",
		"is tap water safe",
		"",
	}
	for _, query := range notItinerary {
		assert.False(t, selector.IsItineraryQuery(query), "query %q", query)
	}
}
