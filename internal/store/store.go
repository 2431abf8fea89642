package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	CollContacts = "contacts"
	CollQuotes   = "quotes"
)

// Store persists form submissions in MongoDB.
type Store struct {
	db *mongo.Database
}

func New(client *mongo.Client, name string) *Store {
	return &Store{db: client.Database(name)}
}

// CreateContact inserts a contact submission. The timestamp is assigned
// here, at persistence time, and never revised.
func (s *Store) CreateContact(ctx context.Context, c *ContactSubmission) (*ContactSubmission, error) {
	c.Timestamp = time.Now().UTC()

	res, err := s.db.Collection(CollContacts).InsertOne(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}

	c.ID = res.InsertedID.(primitive.ObjectID)
	return c, nil
}

// CreateQuote inserts a quote request, assigning its timestamp.
func (s *Store) CreateQuote(ctx context.Context, q *QuoteSubmission) (*QuoteSubmission, error) {
	q.Timestamp = time.Now().UTC()

	res, err := s.db.Collection(CollQuotes).InsertOne(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("insert quote: %w", err)
	}

	q.ID = res.InsertedID.(primitive.ObjectID)
	return q, nil
}

// GetContact reads a contact submission back by ID.
func (s *Store) GetContact(ctx context.Context, id primitive.ObjectID) (*ContactSubmission, error) {
	var c ContactSubmission
	err := s.db.Collection(CollContacts).FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		return nil, fmt.Errorf("find contact %s: %w", id.Hex(), err)
	}
	return &c, nil
}

// GetQuote reads a quote request back by ID.
func (s *Store) GetQuote(ctx context.Context, id primitive.ObjectID) (*QuoteSubmission, error) {
	var q QuoteSubmission
	err := s.db.Collection(CollQuotes).FindOne(ctx, bson.M{"_id": id}).Decode(&q)
	if err != nil {
		return nil, fmt.Errorf("find quote %s: %w", id.Hex(), err)
	}
	return &q, nil
}

// Ping verifies the backing database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the indexes both collections are queried by
// from the operator tooling. Safe to call repeatedly.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("email_idx")},
	}

	for _, coll := range []string{CollContacts, CollQuotes} {
		if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes for %s: %w", coll, err)
		}
	}
	return nil
}
