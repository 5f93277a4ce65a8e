package coordinator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripmesh/tripmesh/agent"
)

func TestFollowUpSuggesterSuggest(t *testing.T) {
	var suggester FollowUpSuggester

	t.Run("single agent gets its full pool", func(t *testing.T) {
		suggestions := suggester.Suggest([]agent.ID{agent.Food})
		assert.Equal(t, []string{
			"What local dishes should I try?",
			"Where can I find the best street food?",
			"Are there vegetarian-friendly restaurants?",
		}, suggestions)
	})

	t.Run("capped at three questions", func(t *testing.T) {
		suggestions := suggester.Suggest(agent.All())
		assert.Len(t, suggestions, 3)
	})

	t.Run("priority order wins regardless of input order", func(t *testing.T) {
		forward := suggester.Suggest([]agent.ID{agent.Culture, agent.Language})
		reversed := suggester.Suggest([]agent.ID{agent.Language, agent.Culture})
		assert.Equal(t, forward, reversed)
		assert.Equal(t, "What cultural etiquette should I know about?", forward[0])
	})

	t.Run("no agents means no suggestions", func(t *testing.T) {
		assert.Empty(t, suggester.Suggest(nil))
	})
}
