package service

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededSuggestionService(seed int64) *SuggestionService {
	return NewSuggestionService(SuggestionWithRand(rand.New(rand.NewSource(seed))))
}

func TestSuggestionServiceSuggest(t *testing.T) {
	ctx := context.Background()

	t.Run("Should cap suggestions at six", func(t *testing.T) {
		svc := seededSuggestionService(1)
		suggestions := svc.Suggest(ctx, "businessDescription", "", "Acme", "Technology")
		assert.LessOrEqual(t, len(suggestions), maxSuggestions)
		assert.NotEmpty(t, suggestions)
	})

	t.Run("Should personalize starters with the company name", func(t *testing.T) {
		svc := seededSuggestionService(2)
		suggestions := svc.Suggest(ctx, "companyName", "", "Bluewater Ltd", "Finance")
		require.NotEmpty(t, suggestions)

		personalized := false
		for _, s := range suggestions {
			if strings.Contains(s, "Bluewater Ltd") {
				personalized = true
			}
		}
		assert.True(t, personalized)
	})

	t.Run("Should fall back to generic wording without a company name", func(t *testing.T) {
		svc := seededSuggestionService(3)
		suggestions := svc.Suggest(ctx, "companyName", "", "", "")
		require.NotEmpty(t, suggestions)
		for _, s := range suggestions {
			assert.NotContains(t, s, "%s")
		}
	})

	t.Run("Should steer continuations by keyword context", func(t *testing.T) {
		svc := seededSuggestionService(4)
		current := "Our revenue model relies on subscription funding."
		require.Less(t, len(current), 200)

		suggestions := svc.Suggest(ctx, "statusProgress", current, "Acme", "Technology")
		require.NotEmpty(t, suggestions)
		assert.LessOrEqual(t, len(suggestions), maxSuggestions)
	})

	t.Run("Should switch to enhancements for long text", func(t *testing.T) {
		svc := seededSuggestionService(5)
		long := strings.Repeat("Our operations are steadily maturing across all units. ", 5)
		require.GreaterOrEqual(t, len(long), 200)

		suggestions := svc.Suggest(ctx, "businessDescription", long, "Acme", "Technology")
		assert.Len(t, suggestions, maxSuggestions)
	})

	t.Run("Should be deterministic for a fixed seed", func(t *testing.T) {
		a := seededSuggestionService(42).Suggest(ctx, "sector", "", "Acme", "Retail")
		b := seededSuggestionService(42).Suggest(ctx, "sector", "", "Acme", "Retail")
		assert.Equal(t, a, b)
	})

	t.Run("Should handle unknown field keys with generic starters", func(t *testing.T) {
		svc := seededSuggestionService(6)
		suggestions := svc.Suggest(ctx, "somethingNew", "", "Acme", "Energy")
		assert.NotEmpty(t, suggestions)
	})
}

func TestAnalyzeContext(t *testing.T) {
	t.Run("Should flag financial vocabulary", func(t *testing.T) {
		tc := analyzeContext("our revenue and profit targets", "Acme", "Finance")
		assert.True(t, tc.hasFinancial)
		assert.False(t, tc.hasTech)
	})

	t.Run("Should flag market vocabulary", func(t *testing.T) {
		tc := analyzeContext("the target customer segment", "", "")
		assert.True(t, tc.hasMarket)
	})

	t.Run("Should match whole words only", func(t *testing.T) {
		tc := analyzeContext("marketing plans", "", "")
		assert.False(t, tc.hasMarket, "'marketing' is not the keyword 'market'")
	})
}

func TestHumanizeField(t *testing.T) {
	assert.Equal(t, "sales forecast", humanizeField("salesForecast"))
	assert.Equal(t, "funding", humanizeField("funding"))
	assert.Equal(t, "swot analysis", humanizeField("swotAnalysis"))
}
