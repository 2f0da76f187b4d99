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

// MongoPetRepository is a MongoDB-backed implementation of PetRepository.
type MongoPetRepository struct {
	col *mongo.Collection
}

// NewMongoPetRepository creates a repository over the "pets" collection.
func NewMongoPetRepository(db *mongo.Database) *MongoPetRepository {
	return &MongoPetRepository{col: db.Collection("pets")}
}

// petFilterQuery translates a PetFilter into a bson filter document.
func petFilterQuery(f PetFilter) bson.M {
	filter := bson.M{}

	if f.Species != "" {
		filter["species"] = primitive.Regex{Pattern: f.Species, Options: "i"}
	}
	if f.AgeMin != nil || f.AgeMax != nil {
		age := bson.M{}
		if f.AgeMin != nil {
			age["$gte"] = *f.AgeMin
		}
		if f.AgeMax != nil {
			age["$lte"] = *f.AgeMax
		}
		filter["age"] = age
	}
	if f.Owner != nil {
		filter["owner"] = *f.Owner
	}
	if f.HasOwner != nil {
		if *f.HasOwner {
			filter["owner"] = bson.M{"$ne": nil}
		} else {
			filter["owner"] = nil
		}
	}

	return filter
}

// List returns a page of pets matching the filter.
func (r *MongoPetRepository) List(ctx context.Context, filter PetFilter, opts ListOptions) ([]models.Pet, error) {
	findOpts := options.Find().
		SetLimit(int64(opts.Limit)).
		SetSkip(int64(opts.Skip)).
		SetSort(bson.D{{Key: opts.Sort, Value: -1}})

	cur, err := r.col.Find(ctx, petFilterQuery(filter), findOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo find pets: %w", err)
	}
	defer cur.Close(ctx)

	pets := []models.Pet{}
	if err := cur.All(ctx, &pets); err != nil {
		return nil, fmt.Errorf("mongo decode pets: %w", err)
	}
	return pets, nil
}

// GetByID returns the pet with the given id, or nil if it does not exist.
func (r *MongoPetRepository) GetByID(ctx context.Context, id string) (*models.Pet, error) {
	var pet models.Pet
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&pet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find pet %s: %w", id, err)
	}
	return &pet, nil
}

// GetByIDs returns the pets matching any of the given ids.
func (r *MongoPetRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Pet, error) {
	if len(ids) == 0 {
		return []models.Pet{}, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("mongo find pets by ids: %w", err)
	}
	defer cur.Close(ctx)

	pets := []models.Pet{}
	if err := cur.All(ctx, &pets); err != nil {
		return nil, fmt.Errorf("mongo decode pets: %w", err)
	}
	return pets, nil
}

// Create inserts a new pet. The store assigns the id and timestamps when the
// caller leaves them zero.
func (r *MongoPetRepository) Create(ctx context.Context, pet *models.Pet) error {
	if pet.ID == "" {
		pet.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	if pet.CreatedAt.IsZero() {
		pet.CreatedAt = now
	}
	if pet.UpdatedAt.IsZero() {
		pet.UpdatedAt = now
	}

	if _, err := r.col.InsertOne(ctx, pet); err != nil {
		return fmt.Errorf("mongo insert pet: %w", err)
	}
	return nil
}

// Update replaces an existing pet document.
func (r *MongoPetRepository) Update(ctx context.Context, pet *models.Pet) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": pet.ID}, pet)
	if err != nil {
		return fmt.Errorf("mongo update pet %s: %w", pet.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("pet with ID %s not found for update", pet.ID)
	}
	return nil
}

// Count returns the number of pets matching the filter.
func (r *MongoPetRepository) Count(ctx context.Context, filter PetFilter) (int64, error) {
	total, err := r.col.CountDocuments(ctx, petFilterQuery(filter))
	if err != nil {
		return 0, fmt.Errorf("mongo count pets: %w", err)
	}
	return total, nil
}

// SpeciesStats aggregates total/adopted/available counts per species.
func (r *MongoPetRepository) SpeciesStats(ctx context.Context) ([]SpeciesStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$species"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "adopted", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{
					bson.D{{Key: "$ne", Value: bson.A{"$owner", nil}}}, 1, 0,
				}},
			}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "species", Value: "$_id"},
			{Key: "total", Value: 1},
			{Key: "adopted", Value: 1},
			{Key: "available", Value: bson.D{{Key: "$subtract", Value: bson.A{"$total", "$adopted"}}}},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("mongo aggregate species stats: %w", err)
	}
	defer cur.Close(ctx)

	stats := []SpeciesStat{}
	if err := cur.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("mongo decode species stats: %w", err)
	}
	return stats, nil
}
