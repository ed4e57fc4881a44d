package flow

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/360method/homekeep/internal/catalog"
	"github.com/360method/homekeep/internal/models"
)

// PriorityForSeverity maps a checkpoint severity to a task priority. It is
// total: anything that is not Urgent or Flag is Low.
func PriorityForSeverity(s catalog.Severity) string {
	switch s {
	case catalog.SeverityUrgent:
		return "High"
	case catalog.SeverityFlag:
		return "Medium"
	default:
		return "Low"
	}
}

// BuildTask synthesizes the MaintenanceTask for one issue. Full walkthroughs
// carry a cascade alert on urgent issues; quick checks tag their source
// instead.
func BuildTask(mode catalog.Mode, flowType, propertyID string, issue Issue) models.MaintenanceTask {
	systemType := issue.AreaID
	if a, ok := catalog.AreaByID(issue.AreaID); ok && len(a.SystemTypes) > 0 {
		systemType = a.SystemTypes[0]
	}

	task := models.MaintenanceTask{
		PropertyID:  propertyID,
		Title:       issue.Question,
		Description: fmt.Sprintf("%s issue in %s.\n\n%s", flowType, issue.AreaName, issue.Note),
		SystemType:  systemType,
		Priority:    PriorityForSeverity(issue.Severity),
		Status:      models.TaskIdentified,
		PhotoURLs:   issue.Photos,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if mode == catalog.ModeFull {
		task.HasCascadeAlert = issue.Severity == catalog.SeverityUrgent
	} else {
		task.Source = "quick_check"
	}
	return task
}

// MaterializeTasks creates one MaintenanceTask per issue, sequentially and
// best-effort: a failed create is logged and the loop carries on, so a
// single bad task never blocks inspection completion. Returns how many
// tasks were created.
func MaterializeTasks(ctx context.Context, store TaskStore, mode catalog.Mode, flowType, propertyID string, issues []Issue) int {
	created := 0
	for _, issue := range issues {
		task := BuildTask(mode, flowType, propertyID, issue)
		if err := store.InsertTask(ctx, task); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"checkpoint_id": issue.CheckpointID,
				"property_id":   propertyID,
			}).Warn("failed to create maintenance task for issue")
			continue
		}
		created++
	}
	return created
}
