package usecase_preprocess

import (
	"testing"

	"github.com/ninelens/reviewrec/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawRow(user, asins string, rating interface{}, text string) domain.RawRecord {
	return domain.RawRecord{
		domain.ColumnUsername: user,
		domain.ColumnASINs:    asins,
		domain.ColumnRating:   rating,
		domain.ColumnText:     text,
	}
}

func TestNormalizeSchemaError(t *testing.T) {
	rows := []domain.RawRecord{
		{domain.ColumnUsername: "alice", domain.ColumnASINs: "B001"},
		{domain.ColumnUsername: "bob", domain.ColumnASINs: "B002"},
	}

	_, err := Normalize(rows)
	require.Error(t, err)

	var schemaErr *domain.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{domain.ColumnRating}, schemaErr.Missing)
}

func TestNormalizeColumnPresentButEmptyIsNotSchemaError(t *testing.T) {
	rows := []domain.RawRecord{
		rawRow("alice", "B001", 5, "great"),
		{domain.ColumnUsername: "", domain.ColumnASINs: "", domain.ColumnRating: nil},
	}

	ds, err := Normalize(rows)
	require.NoError(t, err)
	assert.Len(t, ds.Records, 1)
}

func TestNormalizeRatingCoercion(t *testing.T) {
	tests := []struct {
		name   string
		rating interface{}
		kept   bool
		want   float64
	}{
		{"float", 4.0, true, 4},
		{"int", 3, true, 3},
		{"int64", int64(5), true, 5},
		{"numeric string", " 2 ", true, 2},
		{"garbage string", "five", false, 0},
		{"below range", 0.5, false, 0},
		{"above range", 6, false, 0},
		{"nil", nil, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Normalize([]domain.RawRecord{rawRow("alice", "B001", tt.rating, "")})
			require.NoError(t, err)
			if !tt.kept {
				assert.Empty(t, ds.Records)
				return
			}
			require.Len(t, ds.Records, 1)
			assert.Equal(t, tt.want, ds.Records[0].Rating)
		})
	}
}

func TestNormalizeFirstASINAndTrimming(t *testing.T) {
	ds, err := Normalize([]domain.RawRecord{
		rawRow("  alice  ", " B001,B002,B003 ", 5, "good"),
	})
	require.NoError(t, err)
	require.Len(t, ds.Records, 1)

	assert.Equal(t, "alice", ds.Records[0].UserID)
	assert.Equal(t, "B001", ds.Records[0].ProductID)
}

func TestNormalizeDeduplicatesExactRows(t *testing.T) {
	ds, err := Normalize([]domain.RawRecord{
		rawRow("alice", "B001", 5, "good"),
		rawRow("alice", "B001", 5, "good"),
		rawRow("alice", "B001", 5, "different text"),
		rawRow("alice", "B001", 4, "good"),
	})
	require.NoError(t, err)

	// same (user, product, rating, text) collapses; distinct text or rating survives
	assert.Len(t, ds.Records, 3)
}

func TestNormalizeFingerprintIsStable(t *testing.T) {
	rows := []domain.RawRecord{
		rawRow("alice", "B001", 5, "good"),
		rawRow("bob", "B002", 3, "ok"),
	}

	first, err := Normalize(rows)
	require.NoError(t, err)
	second, err := Normalize(rows)
	require.NoError(t, err)

	assert.Equal(t, first.Fingerprint, second.Fingerprint)

	changed, err := Normalize([]domain.RawRecord{
		rawRow("alice", "B001", 5, "good"),
		rawRow("bob", "B002", 4, "ok"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.Fingerprint, changed.Fingerprint)
}
