// Package catalog holds the static area, zone and checkpoint tables that
// drive guided inspections. The tables are immutable; everything here is
// loaded once at startup and only read afterwards.
package catalog

// Mode selects which independently authored checkpoint set applies.
type Mode string

const (
	ModeQuick Mode = "quick"
	ModeFull  Mode = "full"
)

// Severity classifies what a "bad" answer on a checkpoint means.
type Severity string

const (
	SeverityUrgent  Severity = "Urgent"
	SeverityFlag    Severity = "Flag"
	SeverityMonitor Severity = "Monitor"
)

// EstimatedMinutes holds per-mode time estimates for an area.
type EstimatedMinutes struct {
	Quick int `json:"quick"`
	Full  int `json:"full"`
}

// Area is a physically or functionally distinct part of a property.
type Area struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Icon             string           `json:"icon"`
	Color            string           `json:"color"`
	Zone             string           `json:"zone"`
	EstimatedMinutes EstimatedMinutes `json:"estimated_minutes"`
	WhatToCheck      string           `json:"what_to_check"`
	SystemTypes      []string         `json:"system_types"`
}

// Zone groups areas into a physically sensible walkthrough order.
type Zone struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Areas         []string `json:"areas"`
	EstimatedTime int      `json:"estimated_time"`
	Description   string   `json:"description"`
}

// Checkpoint is a single yes/no inspection question tied to one area and mode.
type Checkpoint struct {
	ID              string   `json:"id"`
	Question        string   `json:"question"`
	GoodDescription string   `json:"good_description"`
	BadDescription  string   `json:"bad_description"`
	Severity        Severity `json:"severity"`
	PhotoExample    bool     `json:"photo_example"`
}

// AreaByID looks up an area in the catalog.
func AreaByID(id string) (Area, bool) {
	for _, a := range Areas {
		if a.ID == id {
			return a, true
		}
	}
	return Area{}, false
}

// CheckpointsForArea returns the checkpoint list for an area and mode.
// Unknown area or mode yields an empty list.
func CheckpointsForArea(areaID string, mode Mode) []Checkpoint {
	switch mode {
	case ModeQuick:
		return quickCheckpoints[areaID]
	case ModeFull:
		return fullCheckpoints[areaID]
	default:
		return nil
	}
}

// WalkthroughOrder returns every area in full-walkthrough sequence: zones in
// declared order, areas in declared order within each zone. This ordering is
// the sole source of the physical walkthrough sequence.
func WalkthroughOrder() []Area {
	var out []Area
	for _, z := range Zones {
		for _, areaID := range z.Areas {
			if a, ok := AreaByID(areaID); ok {
				out = append(out, a)
			}
		}
	}
	return out
}
