package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/360method/homekeep/internal/models"
)

// InspectionCollection defines the interface for inspection data operations.
type InspectionCollection interface {
	InsertInspection(ctx context.Context, inspection models.Inspection) (string, error)
	UpdateInspectionProgress(ctx context.Context, id string, progress models.InspectionProgress) error
	FindInspectionByID(ctx context.Context, id string) (*models.Inspection, error)
	FindInspections(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (InspectionCursor, error)
}

// InspectionCursor defines the interface for inspection cursor operations.
type InspectionCursor interface {
	All(ctx context.Context, out interface{}) error
	Close(ctx context.Context) error
}

// TaskCollection defines the interface for maintenance task operations.
type TaskCollection interface {
	InsertTask(ctx context.Context, task models.MaintenanceTask) error
	FindTaskByID(ctx context.Context, id string) (*models.MaintenanceTask, error)
	FindTasks(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (TaskCursor, error)
	UpdateTask(ctx context.Context, id string, task models.MaintenanceTask) error
}

// TaskCursor defines the interface for task cursor operations.
type TaskCursor interface {
	All(ctx context.Context, out interface{}) error
	Close(ctx context.Context) error
}
