package usecase_preprocess

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/ninelens/reviewrec/domain"
)

// Normalize converts raw table rows into the canonical, deduplicated Dataset.
//
// Row policy: rows missing any required field are dropped, ratings that do not
// coerce to a number in [1,5] are dropped, user_id is the trimmed username,
// product_id is the first comma-separated token of the asins field, and
// missing text fields become empty strings. Exact duplicates over
// (user_id, product_id, rating, text) keep the first occurrence.
func Normalize(rows []domain.RawRecord) (*domain.Dataset, error) {
	if err := checkSchema(rows); err != nil {
		return nil, err
	}

	records := make([]domain.ReviewRecord, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))

	for _, row := range rows {
		userID := strings.TrimSpace(stringField(row, domain.ColumnUsername))
		if userID == "" {
			continue
		}

		productID := firstASIN(stringField(row, domain.ColumnASINs))
		if productID == "" {
			continue
		}

		rating, ok := coerceRating(row[domain.ColumnRating])
		if !ok || rating < 1 || rating > 5 {
			continue
		}

		record := domain.ReviewRecord{
			UserID:    userID,
			ProductID: productID,
			Rating:    rating,
			Title:     stringField(row, domain.ColumnTitle),
			Text:      stringField(row, domain.ColumnText),
			Date:      stringField(row, domain.ColumnDate),
		}

		key := dedupKey(record)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		records = append(records, record)
	}

	return &domain.Dataset{
		Records:     records,
		Fingerprint: fingerprint(records),
	}, nil
}

// checkSchema fails only when a required column is absent from every row.
// Empty values in individual rows are a per-row concern, not a schema one.
func checkSchema(rows []domain.RawRecord) error {
	var missing []string
	for _, column := range domain.RequiredColumns {
		found := false
		for _, row := range rows {
			if _, ok := row[column]; ok {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return &domain.SchemaError{Missing: missing}
	}
	return nil
}

func stringField(row domain.RawRecord, column string) string {
	value, ok := row[column]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// firstASIN extracts the first comma-separated token of the asins field.
func firstASIN(asins string) string {
	asins = strings.TrimSpace(asins)
	if idx := strings.IndexByte(asins, ','); idx >= 0 {
		asins = asins[:idx]
	}
	return strings.TrimSpace(asins)
}

func coerceRating(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func dedupKey(r domain.ReviewRecord) string {
	return r.UserID + "\x00" + r.ProductID + "\x00" +
		strconv.FormatFloat(r.Rating, 'g', -1, 64) + "\x00" + r.Text
}

// fingerprint hashes the canonical records in order; it is the dataset
// identity that keys every derived computation cache.
func fingerprint(records []domain.ReviewRecord) string {
	h := fnv.New64a()
	for _, r := range records {
		h.Write([]byte(r.UserID))
		h.Write([]byte{0})
		h.Write([]byte(r.ProductID))
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatFloat(r.Rating, 'g', -1, 64)))
		h.Write([]byte{0})
		h.Write([]byte(r.Title))
		h.Write([]byte{0})
		h.Write([]byte(r.Text))
		h.Write([]byte{0xff})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
