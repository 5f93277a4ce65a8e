package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfiles(t *testing.T) {
	profiles := Profiles()
	require.Len(t, profiles, len(All()))

	for _, id := range All() {
		p := profiles[id]
		require.NotNil(t, p, "profile %s", id)
		assert.Equal(t, id, p.ID)
		assert.NotEmpty(t, p.Keywords)
		assert.NotEmpty(t, p.SystemPrompt)
		assert.NotEmpty(t, p.SearchSuffix)
		assert.NotEmpty(t, p.Fallback)
	}
}

func TestProfileRelevant(t *testing.T) {
	t.Run("keyword hit makes the query relevant", func(t *testing.T) {
		assert.True(t, FoodProfile().Relevant("best street food stalls"))
		assert.True(t, CultureProfile().Relevant("wedding etiquette"))
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		assert.True(t, LanguageProfile().Relevant("HOW DO I TRANSLATE this"))
	})

	t.Run("no keyword means not relevant", func(t *testing.T) {
		assert.False(t, FoodProfile().Relevant("train timetable"))
	})
}

func TestEnhanceQuery(t *testing.T) {
	t.Run("activity query picks up destination, types and budget", func(t *testing.T) {
		enhanced := ActivityProfile().EnhanceQuery("cheap hiking near Hanoi")
		assert.Contains(t, enhanced, "cheap hiking near Hanoi")
		assert.Contains(t, enhanced, "in Hanoi")
		assert.Contains(t, enhanced, "outdoor")
		assert.Contains(t, enhanced, "with budget budget")
	})

	t.Run("food query annotates dietary needs", func(t *testing.T) {
		enhanced := FoodProfile().EnhanceQuery("vegetarian places, no peanuts")
		assert.Contains(t, enhanced, "(vegetarian options)")
		assert.Contains(t, enhanced, "(avoiding: peanut)")
	})

	t.Run("language query always carries context and formality", func(t *testing.T) {
		enhanced := LanguageProfile().EnhanceQuery("polite phrases for shopping")
		assert.Contains(t, enhanced, "(context: shopping, formality: formal)")
	})

	t.Run("culture profile has no enhancer", func(t *testing.T) {
		assert.Nil(t, CultureProfile().EnhanceQuery)
	})
}
