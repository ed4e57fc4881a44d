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

// ProjectCollection defines the interface for upgrade project operations
type ProjectCollection interface {
	InsertProject(ctx context.Context, project models.Project) (string, error)
	FindProjectByID(ctx context.Context, id string) (*models.Project, error)
	FindProjectsByProperty(ctx context.Context, propertyID string) ([]models.Project, error)
	UpdateProject(ctx context.Context, id string, project models.Project) error
}

// MongoProjectCollection implements ProjectCollection for MongoDB
type MongoProjectCollection struct {
	Collection *mongo.Collection
}

// InsertProject inserts a new project and returns its id
func (c *MongoProjectCollection) InsertProject(ctx context.Context, project models.Project) (string, error) {
	project.CreatedAt = time.Now()
	project.UpdatedAt = time.Now()

	res, err := c.Collection.InsertOne(ctx, project)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindProjectByID finds a project by its ID
func (c *MongoProjectCollection) FindProjectByID(ctx context.Context, id string) (*models.Project, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid project ID: %w", err)
	}

	var project models.Project
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("project not found")
		}
		return nil, err
	}
	return &project, nil
}

// FindProjectsByProperty lists all projects for a property
func (c *MongoProjectCollection) FindProjectsByProperty(ctx context.Context, propertyID string) ([]models.Project, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{"property_id": propertyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateProject updates a project by its ID
func (c *MongoProjectCollection) UpdateProject(ctx context.Context, id string, project models.Project) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid project ID: %w", err)
	}

	project.UpdatedAt = time.Now()
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": project})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("project not found")
	}
	return nil
}
