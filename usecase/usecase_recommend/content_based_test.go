package usecase_recommend

import (
	"testing"

	"github.com/ninelens/reviewrec/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarByContentRanksMatchingTextFirst(t *testing.T) {
	idx := BuildContentIndex(contentDataset(
		reviewed("p1", "", "bright tablet screen vivid colors"),
		reviewed("p2", "", "bright tablet screen vivid colors"),
		reviewed("p3", "", "leather wallet stitching"),
	), TFIDFOptions{})

	recs, err := SimilarByContent(idx, "p1", 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "p2", recs[0].ProductID)
	assert.InDelta(t, 1.0, recs[0].Score, 1e-9)
	assert.Equal(t, "p3", recs[1].ProductID)
	assert.Less(t, recs[1].Score, recs[0].Score)
}

func TestSimilarByContentExcludesTarget(t *testing.T) {
	idx := BuildContentIndex(contentDataset(
		reviewed("p1", "", "wireless headphones comfortable"),
		reviewed("p2", "", "wireless headphones heavy"),
	), TFIDFOptions{})

	recs, err := SimilarByContent(idx, "p1", 10)
	require.NoError(t, err)

	for _, r := range recs {
		assert.NotEqual(t, "p1", r.ProductID)
	}
}

func TestSimilarByContentZeroTextProductSortsLast(t *testing.T) {
	idx := BuildContentIndex(contentDataset(
		reviewed("p1", "", "compact camera sharp lens"),
		reviewed("p2", "", "compact camera blurry lens"),
		reviewed("p3", "", ""),
	), TFIDFOptions{})

	recs, err := SimilarByContent(idx, "p1", 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// the textless product is a valid candidate with zero similarity
	assert.Equal(t, "p3", recs[1].ProductID)
	assert.Zero(t, recs[1].Score)
}

func TestSimilarByContentZeroTextTargetIsValid(t *testing.T) {
	idx := BuildContentIndex(contentDataset(
		reviewed("p1", "", ""),
		reviewed("p2", "", "mechanical keyboard clicky"),
	), TFIDFOptions{})

	recs, err := SimilarByContent(idx, "p1", 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Zero(t, recs[0].Score)
}

func TestSimilarByContentUnknownProduct(t *testing.T) {
	idx := BuildContentIndex(contentDataset(
		reviewed("p1", "", "usb charger fast"),
	), TFIDFOptions{})

	_, err := SimilarByContent(idx, "missing", 10)
	require.Error(t, err)

	var unknownErr *domain.UnknownProductError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "missing", unknownErr.ProductID)
}
