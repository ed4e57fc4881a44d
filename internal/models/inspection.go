package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Inspection statuses.
const (
	InspectionInProgress = "In Progress"
	InspectionCompleted  = "Completed"
)

// Inspection represents a persisted inspection run over a property.
type Inspection struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PropertyID           string             `bson:"property_id" json:"property_id"`
	UserID               string             `bson:"user_id" json:"user_id"`
	InspectionType       string             `bson:"inspection_type" json:"inspection_type"` // "Quick Spot Check", "Full Walkthrough"
	RouteMode            string             `bson:"route_mode" json:"route_mode"`           // "quick", "full"
	Status               string             `bson:"status" json:"status"`                   // "In Progress", "Completed"
	Notes                string             `bson:"notes" json:"notes"`
	ChecklistItems       []ChecklistItem    `bson:"checklist_items" json:"checklist_items"`
	CompletionPercentage int                `bson:"completion_percentage" json:"completion_percentage"`
	IssuesFound          int                `bson:"issues_found" json:"issues_found"`
	InspectionDate       time.Time          `bson:"inspection_date" json:"inspection_date"`
	CreatedAt            time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time          `bson:"updated_at" json:"updated_at"`
}

// InspectionProgress carries the fields a running session rewrites on its
// inspection record. Insert-time fields such as created_at never travel with
// an update.
type InspectionProgress struct {
	Status               string
	ChecklistItems       []ChecklistItem
	CompletionPercentage int
	IssuesFound          int
}

// ChecklistItem is one answered checkpoint stored on an inspection.
type ChecklistItem struct {
	CheckpointID string   `bson:"checkpoint_id" json:"checkpoint_id"`
	AreaID       string   `bson:"area_id" json:"area_id"`
	Question     string   `bson:"question" json:"question"`
	Answer       string   `bson:"answer" json:"answer"` // "good", "bad", "" when never answered
	Note         string   `bson:"note,omitempty" json:"note,omitempty"`
	Photos       []string `bson:"photos,omitempty" json:"photos,omitempty"`
	IsIssue      bool     `bson:"is_issue" json:"is_issue"`
	Severity     string   `bson:"severity,omitempty" json:"severity,omitempty"` // set only when IsIssue
}
