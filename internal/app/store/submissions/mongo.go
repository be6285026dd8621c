// internal/app/store/submissions/mongo.go
package submissionstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStore writes submissions to MongoDB. Each collection path maps to one
// collection whose name is the path with "/" replaced by "."
// (artifacts.empodera.public.data.quotes).
type MongoStore struct {
	db *mongo.Database
}

// NewMongo creates a submissions store over db.
func NewMongo(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

// CollectionName maps a slash-separated collection path to a MongoDB
// collection name.
func CollectionName(collectionPath string) string {
	return strings.ReplaceAll(collectionPath, "/", ".")
}

// Add inserts doc with a fresh UUID as _id and returns that id.
func (s *MongoStore) Add(ctx context.Context, collectionPath string, doc any) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode %T: %w", doc, err)
	}
	var fields bson.D
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return "", fmt.Errorf("decode %T: %w", doc, err)
	}

	id := uuid.NewString()
	row := append(bson.D{{Key: "_id", Value: id}}, fields...)

	if _, err := s.db.Collection(CollectionName(collectionPath)).InsertOne(ctx, row); err != nil {
		return "", fmt.Errorf("insert into %s: %w", collectionPath, err)
	}
	return id, nil
}
