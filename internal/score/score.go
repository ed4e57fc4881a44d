// Package score computes a property's home-health score from its open
// maintenance tasks and inspection recency.
package score

import (
	"time"

	"github.com/360method/homekeep/internal/models"
)

const (
	base = 100

	highPenalty   = 15
	mediumPenalty = 7
	lowPenalty    = 3

	staleAfter       = 90 * 24 * time.Hour
	stalePenaltyStep = 2 // per 30 days past the threshold
	stalePenaltyCap  = 20
)

// Breakdown explains how a score was derived.
type Breakdown struct {
	Score            int `json:"score"`
	OpenTasks        int `json:"open_tasks"`
	TaskPenalty      int `json:"task_penalty"`
	StalenessPenalty int `json:"staleness_penalty"`
}

// Compute scores a property 0-100. Open tasks subtract by priority; a last
// completed inspection older than ninety days adds a staleness penalty. A
// nil lastInspection means the property was never inspected and takes the
// maximum staleness penalty.
func Compute(tasks []models.MaintenanceTask, lastInspection *time.Time, now time.Time) Breakdown {
	b := Breakdown{}

	for _, task := range tasks {
		if task.Status == models.TaskCompleted {
			continue
		}
		b.OpenTasks++
		switch task.Priority {
		case "High":
			b.TaskPenalty += highPenalty
		case "Medium":
			b.TaskPenalty += mediumPenalty
		default:
			b.TaskPenalty += lowPenalty
		}
	}

	if lastInspection == nil {
		b.StalenessPenalty = stalePenaltyCap
	} else if age := now.Sub(*lastInspection); age > staleAfter {
		over := age - staleAfter
		b.StalenessPenalty = (int(over.Hours()/24)/30 + 1) * stalePenaltyStep
		if b.StalenessPenalty > stalePenaltyCap {
			b.StalenessPenalty = stalePenaltyCap
		}
	}

	b.Score = base - b.TaskPenalty - b.StalenessPenalty
	if b.Score < 0 {
		b.Score = 0
	}
	return b
}
