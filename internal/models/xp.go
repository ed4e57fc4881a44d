package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// XP event names fired along the inspection path.
const (
	EventStartInspection    = "start_inspection"
	EventCompleteRoom       = "complete_room"
	EventFindIssue          = "find_issue"
	EventCompleteInspection = "complete_inspection"
)

// XPEvent records one gamification award for a user.
type XPEvent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Event     string             `bson:"event" json:"event"`
	Points    int                `bson:"points" json:"points"`
	Metadata  map[string]string  `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
