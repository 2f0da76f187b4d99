package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"petadoption/internal/models"
)

// MongoUserRepository is a MongoDB-backed implementation of UserRepository.
type MongoUserRepository struct {
	col *mongo.Collection
}

// NewMongoUserRepository creates a repository over the "users" collection and
// ensures the unique email index exists.
func NewMongoUserRepository(ctx context.Context, db *mongo.Database) (*MongoUserRepository, error) {
	col := db.Collection("users")

	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create email index: %w", err)
	}

	return &MongoUserRepository{col: col}, nil
}

// GetAll returns a page of users.
func (r *MongoUserRepository) GetAll(ctx context.Context, opts ListOptions) ([]models.User, error) {
	findOpts := options.Find().
		SetLimit(int64(opts.Limit)).
		SetSkip(int64(opts.Skip)).
		SetSort(bson.D{{Key: opts.Sort, Value: -1}})

	cur, err := r.col.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo find users: %w", err)
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("mongo decode users: %w", err)
	}
	return users, nil
}

// GetByID returns the user with the given id, or nil if it does not exist.
func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find user %s: %w", id, err)
	}
	return &user, nil
}

// GetByIDs returns the users matching any of the given ids.
func (r *MongoUserRepository) GetByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("mongo find users by ids: %w", err)
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("mongo decode users: %w", err)
	}
	return users, nil
}

// Create inserts a new user. The store assigns the id and timestamps when the
// caller leaves them zero.
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}
	if user.Pets == nil {
		user.Pets = []string{}
	}

	if _, err := r.col.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("mongo insert user: %w", err)
	}
	return nil
}

// Update replaces an existing user document.
func (r *MongoUserRepository) Update(ctx context.Context, user *models.User) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return fmt.Errorf("mongo update user %s: %w", user.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user with ID %s not found for update", user.ID)
	}
	return nil
}

// Count returns the total number of users.
func (r *MongoUserRepository) Count(ctx context.Context) (int64, error) {
	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("mongo count users: %w", err)
	}
	return total, nil
}

// CountWithPets returns the number of users owning at least one pet.
func (r *MongoUserRepository) CountWithPets(ctx context.Context) (int64, error) {
	filter := bson.M{"pets": bson.M{"$exists": true, "$ne": bson.A{}}}
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("mongo count users with pets: %w", err)
	}
	return total, nil
}
