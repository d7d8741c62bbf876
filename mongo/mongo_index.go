package mongo

import (
	"context"
	"log"
	"time"

	"github.com/ninelens/reviewrec/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes builds the collection indexes at startup. Index creation is
// idempotent, so rerunning on an already-indexed database is harmless.
func CreateIndexes(db Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	reviewCollection := db.Collection(domain.CollectionRawReview)
	createIndex(ctx, reviewCollection, bson.D{{Key: domain.ColumnUsername, Value: 1}}, "reviews_username", false)
	createIndex(ctx, reviewCollection, bson.D{{Key: domain.ColumnASINs, Value: 1}}, "asins", false)

	userCollection := db.Collection(domain.CollectionUser)
	createIndex(ctx, userCollection, bson.D{{Key: "email", Value: 1}}, "email_unique", true)
}

func createIndex(
	ctx context.Context,
	collection Collection,
	keys bson.D,
	name string,
	unique bool,
) {
	opts := options.Index().SetName(name)
	if unique {
		opts = opts.SetUnique(true)
	}
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		log.Printf("failed to create index %q: %v", name, err)
	}
}
