package repository

import (
	"context"
	"fmt"

	"github.com/ninelens/reviewrec/domain"
	"github.com/ninelens/reviewrec/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userRepository struct {
	db         mongo.Database
	collection string
}

func NewUserRepository(db mongo.Database, collection string) domain.UserRepository {
	return &userRepository{
		db:         db,
		collection: collection,
	}
}

func (u *userRepository) Create(ctx context.Context, user *domain.User) error {
	coll := u.db.Collection(u.collection)
	_, err := coll.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (u *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	coll := u.db.Collection(u.collection)
	var user domain.User
	if err := coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	coll := u.db.Collection(u.collection)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", id, err)
	}

	var user domain.User
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
