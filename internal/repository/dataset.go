package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/diazeddy/dataset-api/internal/domain"
)

const datasetCollection = "dataset"

// DatasetRepo persists uploaded datasets in the "dataset" collection.
// Mongo assigns the id; the upload date is set from the server clock at
// insert time.
type DatasetRepo struct {
	collection *mongo.Collection
}

func NewDatasetRepo(db *mongo.Database) *DatasetRepo {
	return &DatasetRepo{collection: db.Collection(datasetCollection)}
}

// Insert stores a dataset document in a single write.
func (r *DatasetRepo) Insert(ctx context.Context, filename string, size int64, content string) error {
	_, err := r.collection.InsertOne(ctx, bson.M{
		"filename":    filename,
		"size":        size,
		"content":     content,
		"upload_date": time.Now(),
	})
	return err
}

// FindAll returns metadata for every stored dataset. Content is projected
// out; listings never carry it.
func (r *DatasetRepo) FindAll(ctx context.Context) ([]domain.DatasetMeta, error) {
	opts := options.Find().SetProjection(bson.M{"content": 0})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var datasets []domain.DatasetMeta
	if err := cursor.All(ctx, &datasets); err != nil {
		return nil, err
	}
	return datasets, nil
}

// FindByID returns only the content of the dataset with the given hex id.
// A malformed id is an error, as is a missing document.
func (r *DatasetRepo) FindByID(ctx context.Context, id string) (string, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", fmt.Errorf("invalid dataset id %q: %w", id, err)
	}

	opts := options.FindOne().SetProjection(bson.M{"content": 1})

	var doc struct {
		Content string `bson:"content"`
	}
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}, opts).Decode(&doc); err != nil {
		return "", err
	}
	return doc.Content, nil
}

// DeleteByID removes the dataset with the given hex id. Deleting an id
// that does not exist is a no-op; a malformed id is still an error.
func (r *DatasetRepo) DeleteByID(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid dataset id %q: %w", id, err)
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
