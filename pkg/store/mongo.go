package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mshaler/isogrid/pkg/errors"
)

const (
	defaultDatabase   = "isogrid"
	defaultCollection = "layouts"
)

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// MongoStore persists documents in a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.URI == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "mongo URI is required")
	}
	if cfg.Database == "" {
		cfg.Database = defaultDatabase
	}
	if cfg.Collection == "" {
		cfg.Collection = defaultCollection
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to connect to MongoDB")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to ping MongoDB")
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Save stores a document, replacing any existing one with the same ID.
func (s *MongoStore) Save(ctx context.Context, doc Document) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": doc.ID},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to save layout document %q", doc.ID)
	}
	return nil
}

// Get retrieves a document by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (Document, error) {
	var doc Document
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return Document{}, NotFound(id)
	}
	if err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInternal, err, "failed to load layout document %q", id)
	}
	return doc, nil
}

// List returns summaries of all documents, newest first.
func (s *MongoStore) List(ctx context.Context) ([]Summary, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1, "name": 1, "created_at": 1}).
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to list layout documents")
	}
	defer cursor.Close(ctx)

	var summaries []Summary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to decode layout documents")
	}
	return summaries, nil
}

// Delete removes a document. Missing IDs are ignored.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to delete layout document %q", id)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
