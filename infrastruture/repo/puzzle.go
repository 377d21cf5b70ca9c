package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/hashi-api/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PuzzleRepo handles the persistence of puzzle records.
type PuzzleRepo struct {
	collection *mongo.Collection
}

// NewPuzzleRepo creates a new PuzzleRepo with the given MongoDB client, database name, and collection name.
func NewPuzzleRepo(client *mongo.Client, dbName, collectionName string) *PuzzleRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &PuzzleRepo{
		collection: collection,
	}
}

// Save inserts or updates a puzzle record in the repository.
func (p *PuzzleRepo) Save(record *dmn.PuzzleRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": record.ID}
	update := bson.M{
		"$set": bson.M{
			"day":        record.Day,
			"difficulty": record.Difficulty,
			"puzzle":     record.Puzzle,
			"createdAt":  record.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := p.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a puzzle record by its ID.
// Returns an error if the record is not found or if an unexpected error occurs.
func (p *PuzzleRepo) ByID(id uuid.UUID) (*dmn.PuzzleRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var record dmn.PuzzleRecord
	if err := p.collection.FindOne(ctx, filter).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("puzzle not found")
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &record, nil
}

// ByDay retrieves the puzzle record published for the given day.
// Returns an error if no record exists for the day.
func (p *PuzzleRepo) ByDay(day string) (*dmn.PuzzleRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"day": day}
	var record dmn.PuzzleRecord
	if err := p.collection.FindOne(ctx, filter).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("puzzle not found")
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &record, nil
}
