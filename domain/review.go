package domain

import "context"

// Source column names of the raw review table. Case-sensitive.
const (
	ColumnUsername = "reviews.username"
	ColumnASINs    = "asins"
	ColumnRating   = "reviews.rating"
	ColumnText     = "reviews.text"
	ColumnTitle    = "reviews.title"
	ColumnDate     = "reviews.date"
)

// RequiredColumns are the columns that must exist in the raw table before
// normalization can run.
var RequiredColumns = []string{ColumnUsername, ColumnASINs, ColumnRating}

// RawRecord is one row of the raw review table exactly as supplied by the
// uploader, keyed by source column name.
type RawRecord map[string]interface{}

// ReviewRecord is one canonical review after normalization.
type ReviewRecord struct {
	UserID    string  `json:"user_id"`
	ProductID string  `json:"product_id"`
	Rating    float64 `json:"rating"`
	Title     string  `json:"title"`
	Text      string  `json:"text"`
	Date      string  `json:"date"`
}

// Dataset is the ordered, deduplicated sequence of canonical reviews built
// from one load of the raw table. Immutable once built.
type Dataset struct {
	Records []ReviewRecord

	// Fingerprint identifies the dataset contents and keys all derived
	// computation caches.
	Fingerprint string
}

// FilteredDataset is the subset of a Dataset surviving sparsity filtering.
// Every retained user has at least MinUserReviews records and every retained
// product at least MinProductReviews records, simultaneously.
type FilteredDataset struct {
	Records  []ReviewRecord
	Users    map[string]struct{}
	Products map[string]struct{}

	RowsRemoved int
	Iterations  int
}

// DatasetStats mirrors the diagnostic counts the preprocessing pipeline
// reports to the caller.
type DatasetStats struct {
	RowsAfterCleaning int  `json:"rows_after_cleaning"`
	UniqueUsers       int  `json:"unique_users"`
	UniqueProducts    int  `json:"unique_products"`
	NumRatings        int  `json:"num_ratings"`
	RowsRemoved       int  `json:"rows_removed"`
	FilterIterations  int  `json:"filter_iterations"`
	HeavilyFiltered   bool `json:"heavily_filtered"`
}

type ReviewRepository interface {
	CreateMany(ctx context.Context, rows []RawRecord) (int, error)
	GetAll(ctx context.Context) ([]RawRecord, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
