package mongodb

import (
	// Go Internal Packages
	"context"
	"fmt"
	"time"

	// Local Packages
	errors "recon-stream/errors"
	models "recon-stream/models"

	// External Packages
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ItemsRepository struct {
	client     *mongo.Client
	database   string
	collection string
}

func NewItemsRepository(client *mongo.Client) *ItemsRepository {
	return &ItemsRepository{client: client, database: "reconciliation", collection: "items"}
}

// InsertItems inserts a batch of classified reconciliation items.
func (r *ItemsRepository) InsertItems(ctx context.Context, items []models.ReconciliationItem) error {
	if len(items) == 0 {
		return nil
	}

	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = item
	}

	collection := r.client.Database(r.database).Collection(r.collection)
	_, err := collection.InsertMany(ctx, docs)
	if err != nil {
		return err
	}
	return nil
}

// ListByPeriod returns items whose record was created inside [from, to),
// optionally narrowed to one connector and one currency. Results are sorted
// by creation time so downstream filtering sees a deterministic order.
func (r *ItemsRepository) ListByPeriod(ctx context.Context, from, to time.Time, connector, currency string) ([]models.ReconciliationItem, error) {
	if from.IsZero() || to.IsZero() {
		return nil, errors.InvalidParamsErr(fmt.Errorf("period bounds cannot be zero"))
	}

	filter := bson.M{"record.created_at": bson.M{"$gte": from, "$lt": to}}
	if connector != "" {
		filter["record.connector"] = connector
	}
	if currency != "" {
		filter["record.currency"] = currency
	}

	opts := options.Find().SetSort(bson.D{{Key: "record.created_at", Value: 1}})
	collection := r.client.Database(r.database).Collection(r.collection)

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.ReconciliationItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
