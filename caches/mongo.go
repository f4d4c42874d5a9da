package caches

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const ENTRY_COLL = "cache_entries"

// MongoCache stores entries in a MongoDB collection with a TTL index on
// the expiration field
type MongoCache struct {
	client *mongo.Client
	db     string
}

var _ Cache = (*MongoCache)(nil)

type mongoEntry struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	ExpiresAt time.Time `bson:"expires_at"`
}

// NewMongoCache connects to MongoDB at conn, verifies the connection and
// ensures the TTL index on the entry collection exists
func NewMongoCache(conn string, db string) (*MongoCache, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(conn))
	if err != nil {
		return nil, err
	}

	err = retry.Do(
		func() error { return client.Ping(context.TODO(), nil) },
		retry.Attempts(connectAttempts),
		retry.Delay(connectInitialDelay),
		retry.MaxDelay(connectMaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("mongodb ping failed", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return nil, err
	}

	c := &MongoCache{client: client, db: db}

	// Mongo's TTL monitor removes expired documents on its own schedule.
	_, err = c.collection().Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (c *MongoCache) collection() *mongo.Collection {
	return c.client.Database(c.db).Collection(ENTRY_COLL)
}

func (c *MongoCache) SetValue(key string, value []byte, ttl time.Duration) error {
	entry := mongoEntry{
		Key:       key,
		Value:     normalizeValue(value),
		ExpiresAt: time.Now().Add(ttl),
	}

	_, err := c.collection().ReplaceOne(context.TODO(),
		bson.D{{Key: "_id", Value: key}},
		entry,
		options.Replace().SetUpsert(true))
	return err
}

func (c *MongoCache) GetValue(key string) ([]byte, error) {
	var entry mongoEntry

	// The TTL monitor runs with minute granularity, so reads filter on
	// the expiration themselves.
	filter := bson.D{
		{Key: "_id", Value: key},
		{Key: "expires_at", Value: bson.D{{Key: "$gt", Value: time.Now()}}},
	}

	err := c.collection().FindOne(context.TODO(), filter).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return normalizeValue(entry.Value), nil
}

func (c *MongoCache) DeleteValue(key string) error {
	result, err := c.collection().DeleteOne(context.TODO(), bson.D{{Key: "_id", Value: key}})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (c *MongoCache) Connected() bool {
	return c.client.Ping(context.TODO(), nil) == nil
}

// Close disconnects from the MongoDB server
func (c *MongoCache) Close() error {
	return c.client.Disconnect(context.TODO())
}
