package stores

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"showcase-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when no record exists for a well-formed id.
	ErrNotFound = errors.New("work not found")
	// ErrInvalidID is returned when an id does not fit the store's key format.
	ErrInvalidID = errors.New("invalid work id")
)

// WorkFilter narrows and orders a listing. The zero value lists everything,
// newest first.
type WorkFilter struct {
	// Category restricts to an exact category when non-empty.
	Category string
	// Search matches name or title case-insensitively when non-empty.
	Search string
	// SortAscending orders by timestamp ascending (oldest first).
	SortAscending bool
}

// WorkStore persists submitted works.
type WorkStore interface {
	Create(ctx context.Context, work *models.Work) (*models.Work, error)
	List(ctx context.Context, filter WorkFilter) ([]models.Work, error)
	GetByID(ctx context.Context, id string) (*models.Work, error)
	DeleteByID(ctx context.Context, id string) error
}

const worksCollection = "works"

// MongoWorkStore implements WorkStore on a MongoDB collection.
type MongoWorkStore struct {
	col *mongo.Collection
}

// NewMongoWorkStore returns a store backed by the "works" collection of db.
func NewMongoWorkStore(db *mongo.Database) *MongoWorkStore {
	return &MongoWorkStore{col: db.Collection(worksCollection)}
}

func (s *MongoWorkStore) Create(ctx context.Context, work *models.Work) (*models.Work, error) {
	now := time.Now().UTC()
	if work.Timestamp.IsZero() {
		work.Timestamp = now
	}
	work.CreatedAt = now
	work.UpdatedAt = now

	res, err := s.col.InsertOne(ctx, work)
	if err != nil {
		return nil, fmt.Errorf("insert work: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		work.ID = oid
	}
	return work, nil
}

func (s *MongoWorkStore) List(ctx context.Context, filter WorkFilter) ([]models.Work, error) {
	query := bson.M{}

	if filter.Category != "" {
		query["category"] = filter.Category
	}

	if filter.Search != "" {
		// Substring match, so regex metacharacters in the search term are
		// taken literally.
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"title": pattern},
		}
	}

	sortOrder := -1
	if filter.SortAscending {
		sortOrder = 1
	}

	cursor, err := s.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "timestamp", Value: sortOrder}}))
	if err != nil {
		return nil, fmt.Errorf("find works: %w", err)
	}
	defer cursor.Close(ctx)

	works := []models.Work{}
	if err := cursor.All(ctx, &works); err != nil {
		return nil, fmt.Errorf("decode works: %w", err)
	}
	return works, nil
}

func (s *MongoWorkStore) GetByID(ctx context.Context, id string) (*models.Work, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var work models.Work
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&work)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get work %s: %w", id, err)
	}
	return &work, nil
}

func (s *MongoWorkStore) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete work %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	// The associated blob is intentionally left in place.
	return nil
}
