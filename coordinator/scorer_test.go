package coordinator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripmesh/tripmesh/agent"
)

func TestKeywordScorerScore(t *testing.T) {
	var scorer KeywordScorer

	t.Run("every agent gets an entry", func(t *testing.T) {
		scores := scorer.Score("hello")
		assert.Len(t, scores, len(agent.All()))
		for _, id := range agent.All() {
			assert.Contains(t, scores, id)
		}
	})

	t.Run("no keyword hits score zero", func(t *testing.T) {
		scores := scorer.Score("zzz qux blah")
		for id, score := range scores {
			assert.Equal(t, 0, score, "agent %s", id)
		}
	})

	t.Run("weights accumulate per hit", func(t *testing.T) {
		// "culture" weighs 2 and "festival" weighs 2 for the culture agent.
		scores := scorer.Score("tell me about the culture and a festival")
		assert.Equal(t, 4, scores[agent.Culture])
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		assert.Equal(t,
			scorer.Score("FOOD and RESTAURANT"),
			scorer.Score("food and restaurant"))
	})

	t.Run("substring matching is deliberate", func(t *testing.T) {
		// "day" appears inside "holiday", so the activity keyword fires.
		scores := scorer.Score("holidays abroad")
		assert.Greater(t, scores[agent.Activity], 0)
	})

	t.Run("deterministic", func(t *testing.T) {
		query := "plan a food tour with local phrases"
		first := scorer.Score(query)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, scorer.Score(query))
		}
	})
}
