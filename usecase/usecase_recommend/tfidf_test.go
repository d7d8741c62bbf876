package usecase_recommend

import (
	"math"
	"testing"

	"github.com/ninelens/reviewrec/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewed(product, title, text string) domain.ReviewRecord {
	return domain.ReviewRecord{
		UserID: "u", ProductID: product, Rating: 4, Title: title, Text: text,
	}
}

func contentDataset(records ...domain.ReviewRecord) *domain.Dataset {
	return &domain.Dataset{Records: records, Fingerprint: "test"}
}

func TestBuildContentIndexFiltersStopWords(t *testing.T) {
	idx := BuildContentIndex(contentDataset(
		reviewed("p1", "", "the tablet is great for reading"),
		reviewed("p2", "", "a great tablet"),
	), TFIDFOptions{})

	assert.NotContains(t, idx.Vocabulary, "the")
	assert.NotContains(t, idx.Vocabulary, "is")
	assert.NotContains(t, idx.Vocabulary, "for")
	assert.Contains(t, idx.Vocabulary, "tablet")
	assert.Contains(t, idx.Vocabulary, "reading")
}

func TestBuildContentIndexIncludesBigrams(t *testing.T) {
	idx := BuildContentIndex(contentDataset(
		reviewed("p1", "", "battery life impressive"),
	), TFIDFOptions{})

	assert.Contains(t, idx.Vocabulary, "battery life")
	assert.Contains(t, idx.Vocabulary, "life impressive")
}

func TestBuildContentIndexMaxFeaturesCap(t *testing.T) {
	// "tablet" appears in every document, so it must survive the cap
	idx := BuildContentIndex(contentDataset(
		reviewed("p1", "", "tablet screen bright"),
		reviewed("p2", "", "tablet battery weak"),
		reviewed("p3", "", "tablet speaker loud"),
	), TFIDFOptions{MaxFeatures: 3})

	assert.Len(t, idx.Vocabulary, 3)
	assert.Contains(t, idx.Vocabulary, "tablet")
}

func TestBuildContentIndexMinDocFreq(t *testing.T) {
	idx := BuildContentIndex(contentDataset(
		reviewed("p1", "", "sturdy kickstand"),
		reviewed("p2", "", "sturdy casing"),
	), TFIDFOptions{MinDocFreq: 2})

	assert.Contains(t, idx.Vocabulary, "sturdy")
	assert.NotContains(t, idx.Vocabulary, "kickstand")
	assert.NotContains(t, idx.Vocabulary, "casing")
}

func TestBuildContentIndexMaxDocRatio(t *testing.T) {
	// "tablet" is in all four documents and gets cut by the 0.8 ceiling
	idx := BuildContentIndex(contentDataset(
		reviewed("p1", "", "tablet screen"),
		reviewed("p2", "", "tablet battery"),
		reviewed("p3", "", "tablet speaker"),
		reviewed("p4", "", "tablet casing"),
	), TFIDFOptions{MaxDocRatio: 0.8})

	assert.NotContains(t, idx.Vocabulary, "tablet")
	assert.Contains(t, idx.Vocabulary, "screen")
}

func TestBuildContentIndexVectorsAreUnitLength(t *testing.T) {
	idx := BuildContentIndex(contentDataset(
		reviewed("p1", "Great tablet", "battery lasts forever"),
		reviewed("p2", "", "screen cracked after drop"),
	), TFIDFOptions{})

	for p, vector := range idx.Vectors {
		require.NotEmpty(t, vector, "product %s has an empty vector", idx.Products[p])
		var normSq float64
		for _, w := range vector {
			normSq += w * w
		}
		assert.InDelta(t, 1.0, math.Sqrt(normSq), 1e-9)
	}
}

func TestBuildContentIndexEmptyTextKeepsZeroVector(t *testing.T) {
	idx := BuildContentIndex(contentDataset(
		reviewed("p1", "", "solid build quality"),
		reviewed("p2", "", ""),
	), TFIDFOptions{})

	p2 := idx.ProductIndex["p2"]
	assert.Empty(t, idx.Vectors[p2])
	// the product is still indexed, just similar to nothing
	assert.Contains(t, idx.ProductIndex, "p2")
}

func TestBuildContentIndexAggregatesReviewsPerProduct(t *testing.T) {
	idx := BuildContentIndex(contentDataset(
		reviewed("p1", "", "vivid display"),
		reviewed("p1", "", "terrible speakers"),
		reviewed("p2", "", "vivid display"),
	), TFIDFOptions{})

	require.Len(t, idx.Products, 2)
	p1 := idx.ProductIndex["p1"]
	speakers, ok := idx.Vocabulary["speakers"]
	require.True(t, ok)
	assert.Greater(t, idx.Vectors[p1][speakers], 0.0)
}

func TestTokenizeFoldsDiacritics(t *testing.T) {
	tokens := tokenize("Café crème", map[string]bool{})
	assert.Contains(t, tokens, "cafe")
	assert.Contains(t, tokens, "creme")
}
