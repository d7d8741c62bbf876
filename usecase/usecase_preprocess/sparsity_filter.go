package usecase_preprocess

import (
	"github.com/ninelens/reviewrec/domain"
)

// FilterSparse removes users and products with too few reviews until a fixed
// point: every retained user has >= minUserReviews records and every retained
// product >= minProductReviews records in the surviving set, simultaneously.
//
// Each pass recounts from scratch over the current retained set; an
// incremental decrement would go stale when the two thresholds interact
// across passes. The retained set shrinks monotonically and is bounded below
// by empty, so the loop terminates in at most len(records) passes.
func FilterSparse(ds *domain.Dataset, minUserReviews, minProductReviews int) (*domain.FilteredDataset, error) {
	records := ds.Records
	iterations := 0

	for {
		userCounts := make(map[string]int)
		productCounts := make(map[string]int)
		for _, r := range records {
			userCounts[r.UserID]++
			productCounts[r.ProductID]++
		}

		kept := make([]domain.ReviewRecord, 0, len(records))
		for _, r := range records {
			if userCounts[r.UserID] >= minUserReviews && productCounts[r.ProductID] >= minProductReviews {
				kept = append(kept, r)
			}
		}
		iterations++

		if len(kept) == len(records) {
			break
		}
		records = kept
	}

	if len(records) == 0 {
		return nil, &domain.InsufficientDataError{
			MinUserReviews:    minUserReviews,
			MinProductReviews: minProductReviews,
		}
	}

	users := make(map[string]struct{})
	products := make(map[string]struct{})
	for _, r := range records {
		users[r.UserID] = struct{}{}
		products[r.ProductID] = struct{}{}
	}

	return &domain.FilteredDataset{
		Records:     records,
		Users:       users,
		Products:    products,
		RowsRemoved: len(ds.Records) - len(records),
		Iterations:  iterations,
	}, nil
}
