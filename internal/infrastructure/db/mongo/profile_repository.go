package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

const profileCollection = "profileCollection"

// ProfileRepository stores free-form profile documents as submitted.
type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profileCollection)}
}

func (r *ProfileRepository) Insert(ctx context.Context, doc map[string]any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert profile: %w", err)
	}
	return objectIDHex(res.InsertedID), nil
}
