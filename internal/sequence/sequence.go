package sequence

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kunjcreation/internal/models"
)

// Generator hands out monotonically increasing integers per named counter.
// The increment happens server-side in a single findAndModify, so it stays
// correct with any number of concurrent callers or server instances.
type Generator struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Generator {
	return &Generator{db: db}
}

// Next atomically increments the named counter and returns the new value.
// A missing counter is created by the upsert, so the first call returns 1.
func (g *Generator) Next(ctx context.Context, name string) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter models.Counter
	err := g.db.Collection("counters").FindOneAndUpdate(
		ctx,
		bson.M{"name": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}

	return counter.Seq, nil
}

// Reset sets the named counter back to 0 unconditionally. Only the admin
// "reset all orders" action uses this.
func (g *Generator) Reset(ctx context.Context, name string) error {
	_, err := g.db.Collection("counters").UpdateOne(
		ctx,
		bson.M{"name": name},
		bson.M{"$set": bson.M{"seq": 0}},
		options.Update().SetUpsert(true),
	)
	return err
}
