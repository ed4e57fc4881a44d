package flow

import (
	"context"

	"github.com/360method/homekeep/internal/models"
)

// InspectionStore persists inspection records.
type InspectionStore interface {
	InsertInspection(ctx context.Context, inspection models.Inspection) (string, error)
	UpdateInspectionProgress(ctx context.Context, id string, progress models.InspectionProgress) error
}

// TaskStore persists maintenance tasks materialized from issues.
type TaskStore interface {
	InsertTask(ctx context.Context, task models.MaintenanceTask) error
}

// Awarder grants gamification XP. Callers on the inspection path treat it as
// best-effort and never let its failure surface.
type Awarder interface {
	AwardXP(ctx context.Context, userID, event string, metadata map[string]string) error
}

// CompletionNote is the payload sent when an inspection finishes.
type CompletionNote struct {
	InspectionID string `json:"inspection_id"`
	PropertyID   string `json:"property_id"`
	UserID       string `json:"user_id"`
	IssueCount   int    `json:"issue_count"`
}

// Notifier dispatches completion notifications, fire-and-forget.
type Notifier interface {
	InspectionCompleted(ctx context.Context, note CompletionNote) error
}
