// Package store persists aggregated company records in MongoDB.
package store

import (
	"context"
	"regexp"

	"github.com/rotisserie/eris"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"companyscrapper/model"
)

// Store is the durable-store contract the aggregation handler depends on.
// Concurrent idempotent writes for the same company are tolerated;
// last-write-wins is acceptable.
type Store interface {
	// FindByName looks a company up by exact, case-insensitive name and
	// returns (nil, nil) when absent.
	FindByName(ctx context.Context, name string) (*model.Company, error)
	Insert(ctx context.Context, c model.Company) error
}

// Mongo implements Store on a MongoDB collection.
type Mongo struct {
	coll *mongo.Collection
}

// NewMongo connects to uri and binds the configured database/collection.
func NewMongo(ctx context.Context, uri, db, collection string) (*Mongo, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, eris.Wrap(err, "store: connecting to mongo")
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, eris.Wrap(err, "store: pinging mongo")
	}
	return &Mongo{coll: client.Database(db).Collection(collection)}, nil
}

func (m *Mongo) FindByName(ctx context.Context, name string) (*model.Company, error) {
	filter := bson.D{{Key: "company", Value: bson.D{
		{Key: "$regex", Value: "^" + regexp.QuoteMeta(name) + "$"},
		{Key: "$options", Value: "i"},
	}}}

	var c model.Company
	err := m.coll.FindOne(ctx, filter).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "store: finding company %q", name)
	}
	return &c, nil
}

func (m *Mongo) Insert(ctx context.Context, c model.Company) error {
	if _, err := m.coll.InsertOne(ctx, c); err != nil {
		return eris.Wrapf(err, "store: inserting company %q", c.Company)
	}
	return nil
}

// Disconnect closes the underlying client.
func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.coll.Database().Client().Disconnect(ctx)
}
