package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task statuses.
const (
	TaskIdentified = "Identified"
	TaskScheduled  = "Scheduled"
	TaskCompleted  = "Completed"
)

// Task priorities.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// MaintenanceTask represents a maintenance item raised from an inspection issue.
type MaintenanceTask struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PropertyID      string             `bson:"property_id" json:"property_id"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	SystemType      string             `bson:"system_type" json:"system_type"`
	Priority        string             `bson:"priority" json:"priority"` // "High", "Medium", "Low"
	Status          string             `bson:"status" json:"status"`     // "Identified", "Scheduled", "Completed"
	PhotoURLs       []string           `bson:"photo_urls,omitempty" json:"photo_urls,omitempty"`
	HasCascadeAlert bool               `bson:"has_cascade_alert,omitempty" json:"has_cascade_alert,omitempty"`
	Source          string             `bson:"source,omitempty" json:"source,omitempty"` // "quick_check", "full_walkthrough"
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}
