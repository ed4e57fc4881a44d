package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property represents a home tracked by an owner.
type Property struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID       string             `bson:"owner_id" json:"owner_id"`
	Name          string             `bson:"name" json:"name"`
	Address       string             `bson:"address" json:"address"`
	City          string             `bson:"city" json:"city"`
	State         string             `bson:"state" json:"state"`
	ZipCode       string             `bson:"zip_code" json:"zip_code"`
	Location      Location           `bson:"location" json:"location"`
	YearBuilt     int                `bson:"year_built" json:"year_built"`
	SquareFootage int                `bson:"square_footage" json:"square_footage"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
