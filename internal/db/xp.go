package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/360method/homekeep/internal/models"
)

// XPEventCollection defines the interface for gamification event storage
type XPEventCollection interface {
	InsertXPEvent(ctx context.Context, event models.XPEvent) error
	FindXPEventsByUser(ctx context.Context, userID string) ([]models.XPEvent, error)
}

// MongoXPEventCollection implements XPEventCollection for MongoDB
type MongoXPEventCollection struct {
	Collection *mongo.Collection
}

// InsertXPEvent appends one gamification award record
func (c *MongoXPEventCollection) InsertXPEvent(ctx context.Context, event models.XPEvent) error {
	event.CreatedAt = time.Now()
	_, err := c.Collection.InsertOne(ctx, event)
	return err
}

// FindXPEventsByUser lists a user's award history
func (c *MongoXPEventCollection) FindXPEventsByUser(ctx context.Context, userID string) ([]models.XPEvent, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.XPEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
