package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project statuses.
const (
	ProjectPlanning   = "planning"
	ProjectInProgress = "in_progress"
	ProjectOnHold     = "on_hold"
	ProjectCompleted  = "completed"
)

// Quote statuses.
const (
	QuoteReceived = "received"
	QuoteAccepted = "accepted"
	QuoteDeclined = "declined"
)

// Project represents an upgrade project tracked against a property.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PropertyID  string             `bson:"property_id" json:"property_id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Status      string             `bson:"status" json:"status"` // "planning", "in_progress", "on_hold", "completed"
	Budget      decimal.Decimal    `bson:"budget" json:"budget"`
	Spent       decimal.Decimal    `bson:"spent" json:"spent"`
	Milestones  []Milestone        `bson:"milestones" json:"milestones"`
	Quotes      []Quote            `bson:"quotes" json:"quotes"`
	AIGuidance  *Guidance          `bson:"ai_guidance,omitempty" json:"ai_guidance,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// Remaining returns the budget left after spend to date.
func (p *Project) Remaining() decimal.Decimal {
	return p.Budget.Sub(p.Spent)
}

// Milestone is one ordered step of a project plan.
type Milestone struct {
	Title         string          `bson:"title" json:"title"`
	Description   string          `bson:"description" json:"description"`
	Status        string          `bson:"status" json:"status"` // "pending", "in_progress", "done"
	EstimatedCost decimal.Decimal `bson:"estimated_cost" json:"estimated_cost"`
	ActualCost    decimal.Decimal `bson:"actual_cost" json:"actual_cost"`
	CompletedAt   *time.Time      `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// Quote is a contractor quote attached to a project.
type Quote struct {
	Contractor string          `bson:"contractor" json:"contractor"`
	Amount     decimal.Decimal `bson:"amount" json:"amount"`
	Status     string          `bson:"status" json:"status"` // "received", "accepted", "declined"
	Notes      string          `bson:"notes,omitempty" json:"notes,omitempty"`
	ReceivedAt time.Time       `bson:"received_at" json:"received_at"`
}

// Guidance is AI-generated guidance attached to a project or task.
type Guidance struct {
	Summary string   `json:"summary"`
	Steps   []string `json:"steps,omitempty"`
	Risks   []string `json:"risks,omitempty"`
}

// GuidanceFromRaw normalizes a guidance payload that may arrive either as a
// JSON object or as a JSON string holding an encoded object.
func GuidanceFromRaw(raw json.RawMessage) (*Guidance, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty guidance payload")
	}

	var g Guidance
	if err := json.Unmarshal(raw, &g); err == nil {
		return &g, nil
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, fmt.Errorf("guidance is neither object nor string: %w", err)
	}
	if err := json.Unmarshal([]byte(encoded), &g); err != nil {
		return nil, fmt.Errorf("guidance string is not valid JSON: %w", err)
	}
	return &g, nil
}
