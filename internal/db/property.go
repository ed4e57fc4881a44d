package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/360method/homekeep/internal/models"
)

// PropertyCollection defines the interface for property database operations
type PropertyCollection interface {
	InsertProperty(ctx context.Context, property models.Property) (string, error)
	FindPropertyByID(ctx context.Context, id string) (*models.Property, error)
	FindPropertiesByOwner(ctx context.Context, ownerID string) ([]models.Property, error)
	UpdateProperty(ctx context.Context, id string, property models.Property) error
	DeleteProperty(ctx context.Context, id string) error
}

// MongoPropertyCollection implements PropertyCollection for MongoDB
type MongoPropertyCollection struct {
	Collection *mongo.Collection
}

// InsertProperty inserts a new property and returns its id
func (c *MongoPropertyCollection) InsertProperty(ctx context.Context, property models.Property) (string, error) {
	property.CreatedAt = time.Now()
	property.UpdatedAt = time.Now()

	res, err := c.Collection.InsertOne(ctx, property)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindPropertyByID finds a property by its ID
func (c *MongoPropertyCollection) FindPropertyByID(ctx context.Context, id string) (*models.Property, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID: %w", err)
	}

	var property models.Property
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("property not found")
		}
		return nil, err
	}
	return &property, nil
}

// FindPropertiesByOwner lists all properties belonging to an owner
func (c *MongoPropertyCollection) FindPropertiesByOwner(ctx context.Context, ownerID string) ([]models.Property, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// UpdateProperty updates a property by its ID
func (c *MongoPropertyCollection) UpdateProperty(ctx context.Context, id string, property models.Property) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid property ID: %w", err)
	}

	property.UpdatedAt = time.Now()
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": property})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("property not found")
	}
	return nil
}

// DeleteProperty deletes a property by its ID
func (c *MongoPropertyCollection) DeleteProperty(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid property ID: %w", err)
	}

	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("property not found")
	}
	return nil
}
