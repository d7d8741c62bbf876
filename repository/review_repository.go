package repository

import (
	"context"
	"fmt"

	"github.com/ninelens/reviewrec/domain"
	"github.com/ninelens/reviewrec/mongo"
	"go.mongodb.org/mongo-driver/bson"
)

type reviewRepository struct {
	db         mongo.Database
	collection string
}

func NewReviewRepository(db mongo.Database, collection string) domain.ReviewRepository {
	return &reviewRepository{
		db:         db,
		collection: collection,
	}
}

// CreateMany stores raw rows exactly as supplied, original column names
// included. Normalization happens downstream, never at write time.
func (r *reviewRepository) CreateMany(ctx context.Context, rows []domain.RawRecord) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	coll := r.db.Collection(r.collection)
	documents := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		doc := bson.M{}
		for key, value := range row {
			doc[key] = value
		}
		documents = append(documents, doc)
	}

	ids, err := coll.InsertMany(ctx, documents)
	if err != nil {
		return 0, fmt.Errorf("failed to insert raw reviews: %w", err)
	}
	return len(ids), nil
}

func (r *reviewRepository) GetAll(ctx context.Context) ([]domain.RawRecord, error) {
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query raw reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []domain.RawRecord
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode raw review: %w", err)
		}
		row := domain.RawRecord{}
		for key, value := range doc {
			if key == "_id" {
				continue
			}
			row[key] = value
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (r *reviewRepository) Count(ctx context.Context) (int64, error) {
	coll := r.db.Collection(r.collection)
	return coll.CountDocuments(ctx, bson.M{})
}

func (r *reviewRepository) DeleteAll(ctx context.Context) (int64, error) {
	coll := r.db.Collection(r.collection)
	deleted, err := coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete raw reviews: %w", err)
	}
	return deleted, nil
}
