package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nahidahmed02/hungry-den-server/internal/core/domain"
	"github.com/nahidahmed02/hungry-den-server/internal/core/ports"
)

const foodsCollection = "foodsCollection"

type FoodRepository struct {
	coll *mongo.Collection
}

func NewFoodRepository(db *mongo.Database) *FoodRepository {
	return &FoodRepository{coll: db.Collection(foodsCollection)}
}

type mongoFood struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Price       float64            `bson:"price"`
	Category    string             `bson:"category,omitempty"`
	Image       string             `bson:"image,omitempty"`
	Description string             `bson:"description,omitempty"`
}

func (r *FoodRepository) FindAll(ctx context.Context) ([]domain.Food, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}

	var docs []mongoFood
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode foods: %w", err)
	}

	foods := make([]domain.Food, 0, len(docs))
	for _, d := range docs {
		foods = append(foods, domain.Food{
			ID:          d.ID.Hex(),
			Name:        d.Name,
			Price:       d.Price,
			Category:    d.Category,
			Image:       d.Image,
			Description: d.Description,
		})
	}
	return foods, nil
}

func (r *FoodRepository) Insert(ctx context.Context, food *domain.Food) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoFood{
		Name:        food.Name,
		Price:       food.Price,
		Category:    food.Category,
		Image:       food.Image,
		Description: food.Description,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert food: %w", err)
	}
	return objectIDHex(res.InsertedID), nil
}

func (r *FoodRepository) Delete(ctx context.Context, id string) (*ports.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete food: %w", err)
	}
	return &ports.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
