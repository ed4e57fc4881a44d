package flow

import (
	"math"

	"github.com/360method/homekeep/internal/catalog"
	"github.com/360method/homekeep/internal/models"
)

// Answer is one checkpoint's recorded answer within a session. A checkpoint
// with no entry in the map is unanswered and never counts as an issue.
type Answer struct {
	Answer string   `json:"answer"` // "good" or "bad"
	Note   string   `json:"note,omitempty"`
	Photos []string `json:"photos,omitempty"`
}

// Issue is a transient record of one "bad" answer. It exists only until it
// is materialized into a MaintenanceTask.
type Issue struct {
	CheckpointID string
	AreaID       string
	AreaName     string
	Question     string
	Note         string
	Severity     catalog.Severity
	Photos       []string
}

// SeverityTally holds the severity breakdown of a set of issues. Monitor is
// derived implicitly: whatever is neither Urgent nor Flag.
type SeverityTally struct {
	Urgent  int `json:"urgent"`
	Flag    int `json:"flag"`
	Monitor int `json:"monitor"`
	Total   int `json:"total"`
}

// ResultsForArea converts a session answer map into checklist items for one
// area. Every checkpoint of the area appears in the output; unanswered ones
// keep an empty answer and are never issues.
func ResultsForArea(area catalog.Area, mode catalog.Mode, answers map[string]Answer) []models.ChecklistItem {
	checkpoints := catalog.CheckpointsForArea(area.ID, mode)
	results := make([]models.ChecklistItem, 0, len(checkpoints))
	for _, cp := range checkpoints {
		item := models.ChecklistItem{
			CheckpointID: cp.ID,
			AreaID:       area.ID,
			Question:     cp.Question,
		}
		if a, ok := answers[cp.ID]; ok {
			item.Answer = a.Answer
			item.Note = a.Note
			item.Photos = a.Photos
			if a.Answer == "bad" {
				item.IsIssue = true
				item.Severity = string(cp.Severity)
			}
		}
		results = append(results, item)
	}
	return results
}

// IssuesFrom extracts the issues from a set of checklist items.
func IssuesFrom(items []models.ChecklistItem) []Issue {
	var issues []Issue
	for _, item := range items {
		if !item.IsIssue {
			continue
		}
		areaName := item.AreaID
		if a, ok := catalog.AreaByID(item.AreaID); ok {
			areaName = a.Name
		}
		issues = append(issues, Issue{
			CheckpointID: item.CheckpointID,
			AreaID:       item.AreaID,
			AreaName:     areaName,
			Question:     item.Question,
			Note:         item.Note,
			Severity:     catalog.Severity(item.Severity),
			Photos:       item.Photos,
		})
	}
	return issues
}

// Tally re-derives severity counts from scratch over the supplied issues.
// It is called at every summary point rather than maintained incrementally.
func Tally(issues []Issue) SeverityTally {
	t := SeverityTally{Total: len(issues)}
	for _, issue := range issues {
		switch issue.Severity {
		case catalog.SeverityUrgent:
			t.Urgent++
		case catalog.SeverityFlag:
			t.Flag++
		}
	}
	t.Monitor = t.Total - t.Urgent - t.Flag
	return t
}

// CompletionPercentage is the rounded percentage of completed areas. For
// quick mode the denominator is the selected area count; for full mode it is
// the full catalog length.
func CompletionPercentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
