package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nahidahmed02/hungry-den-server/internal/core/domain"
	"github.com/nahidahmed02/hungry-den-server/internal/core/ports"
)

const reviewsCollection = "reviewsCollection"

type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{coll: db.Collection(reviewsCollection)}
}

type mongoReview struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name,omitempty"`
	Rating    int                `bson:"rating"`
	Comment   string             `bson:"comment,omitempty"`
	CreatedAt time.Time          `bson:"created_at,omitempty"`
}

func (mr *mongoReview) toDomain() domain.Review {
	return domain.Review{
		ID:        mr.ID.Hex(),
		Email:     mr.Email,
		Name:      mr.Name,
		Rating:    mr.Rating,
		Comment:   mr.Comment,
		CreatedAt: mr.CreatedAt,
	}
}

func (r *ReviewRepository) FindAll(ctx context.Context) ([]domain.Review, error) {
	return r.find(ctx, bson.M{})
}

func (r *ReviewRepository) FindByEmail(ctx context.Context, email string) ([]domain.Review, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *ReviewRepository) find(ctx context.Context, filter bson.M) ([]domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	var docs []mongoReview
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	reviews := make([]domain.Review, 0, len(docs))
	for i := range docs {
		reviews = append(reviews, docs[i].toDomain())
	}
	return reviews, nil
}

func (r *ReviewRepository) Insert(ctx context.Context, review *domain.Review) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoReview{
		Email:     review.Email,
		Name:      review.Name,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert review: %w", err)
	}
	return objectIDHex(res.InsertedID), nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) (*ports.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete review: %w", err)
	}
	return &ports.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
