package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/sketch3d/pkg/errors"
	"github.com/matzehuels/sketch3d/pkg/observability"
)

// MongoStore is a MongoDB-backed scene store for production
// multi-instance deployments.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoConfig holds MongoDB connection parameters.
type MongoConfig struct {
	URI        string // e.g. mongodb://localhost:27017
	Database   string // defaults to "sketch3d"
	Collection string // defaults to "scenes"
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "sketch3d"
	}
	if cfg.Collection == "" {
		cfg.Collection = "scenes"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "connecting to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "pinging mongodb")
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Get implements Store.
func (s *MongoStore) Get(ctx context.Context, name string) (*Scene, error) {
	started := time.Now()

	var sc Scene
	err := s.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&sc)
	if err == mongo.ErrNoDocuments {
		observability.Store().OnStoreGet(name, false, time.Since(started))
		return nil, errors.New(errors.ErrCodeSceneNotFound, "scene %q not found", name)
	}
	if err != nil {
		observability.Store().OnStoreError("get", name, err)
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "loading scene %q", name)
	}

	observability.Store().OnStoreGet(name, true, time.Since(started))
	return &sc, nil
}

// Put implements Store.
func (s *MongoStore) Put(ctx context.Context, sc *Scene) error {
	started := time.Now()
	now := time.Now()

	update := bson.M{
		"$set": bson.M{
			"source":     sc.Source,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"created_at": now,
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := s.coll.UpdateByID(ctx, sc.Name, update, opts); err != nil {
		observability.Store().OnStoreError("put", sc.Name, err)
		return errors.Wrap(errors.ErrCodeStorage, err, "saving scene %q", sc.Name)
	}

	observability.Store().OnStorePut(sc.Name, len(sc.Source), time.Since(started))
	return nil
}

// Delete implements Store.
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": name})
	if err != nil {
		observability.Store().OnStoreError("delete", name, err)
		return errors.Wrap(errors.ErrCodeStorage, err, "deleting scene %q", name)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeSceneNotFound, "scene %q not found", name)
	}
	return nil
}

// List implements Store.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetSort(bson.M{"_id": 1})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		observability.Store().OnStoreError("list", "", err)
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "listing scenes")
	}
	defer cur.Close(ctx)

	var names []string
	for cur.Next(ctx) {
		var doc struct {
			Name string `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorage, err, "decoding scene name")
		}
		names = append(names, doc.Name)
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "listing scenes")
	}
	return names, nil
}

// Close implements Store.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
